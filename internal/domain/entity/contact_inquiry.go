package entity

import "time"

// InquiryStatus is the triage state of a contact inquiry.
type InquiryStatus string

const (
	InquiryStatusNew        InquiryStatus = "new"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusResolved   InquiryStatus = "resolved"
)

// ContactInquiry is a message submitted through the public contact form.
// New inquiries default to the "new" status; no further lifecycle is
// exposed by this core.
type ContactInquiry struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber string // Optional.
	Subject     string
	Message     string
	Status      InquiryStatus
	CreatedAt   time.Time
}
