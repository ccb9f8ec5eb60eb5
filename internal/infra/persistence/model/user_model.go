// Package model contains the GORM persistence models mirroring the
// database tables.
package model

import "time"

// UserModel mirrors the 'users' table. Identifiers come from the external
// identity provider, so the column is a plain varchar primary key.
type UserModel struct {
	ID              string `gorm:"type:varchar(64);primaryKey"`
	Email           string `gorm:"type:varchar(255);uniqueIndex"`
	FirstName       string `gorm:"type:varchar(100)"`
	LastName        string `gorm:"type:varchar(100)"`
	ProfileImageURL string `gorm:"type:varchar(512)"`
	PhoneNumber     string `gorm:"type:varchar(20)"`
	Address         string `gorm:"type:text"`
	City            string `gorm:"type:varchar(100)"`
	State           string `gorm:"type:varchar(100)"`
	Pincode         string `gorm:"type:varchar(10)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
