package entity

import "time"

// User represents an account provisioned by the external authentication
// collaborator. The core never creates users on its own; it only reads them
// and merges claim updates supplied by the collaborator.
type User struct {
	ID              string // Opaque identifier issued by the identity provider.
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
	PhoneNumber     string
	Address         string
	City            string
	State           string
	Pincode         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
