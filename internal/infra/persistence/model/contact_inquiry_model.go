package model

import "time"

// ContactInquiryModel mirrors the 'contact_inquiries' table.
type ContactInquiryModel struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Email       string `gorm:"type:varchar(255);not null"`
	PhoneNumber string `gorm:"type:varchar(20)"`
	Subject     string `gorm:"type:varchar(255);not null"`
	Message     string `gorm:"type:text;not null"`
	Status      string `gorm:"type:varchar(20);default:new"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactInquiryModel) TableName() string {
	return "contact_inquiries"
}
