package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationStatus is the lifecycle state of a policy application.
// Status transitions have no endpoint in this core; applications are
// created as pending and reviewed out of band.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// PolicyApplication is a user's submission for a catalog policy. The
// ApplicationData payload is stored opaquely as submitted; CalculatedPremium
// is fixed at submission time and never re-derived.
type PolicyApplication struct {
	ID                string
	UserID            string
	PolicyID          string
	ApplicationData   map[string]any
	CalculatedPremium decimal.Decimal
	Status            ApplicationStatus
	ApplicationDate   time.Time
	ApprovalDate      *time.Time // Set by the out-of-band review flow, nil until then.
}
