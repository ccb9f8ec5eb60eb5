// Package service declares capability interfaces implemented by the
// infrastructure layer.
package service

// IdentityClaims is the verified identity attached to an inbound request by
// the session collaborator. UserID is the stable opaque identifier; the
// profile fields mirror whatever the provider chose to embed and may be
// empty.
type IdentityClaims struct {
	UserID          string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// TokenService abstracts the external session mechanism behind a "current
// user id or none" capability. Any session implementation (JWT bearer,
// cookie store, OAuth proxy) can satisfy it.
type TokenService interface {
	// ValidateToken checks a credential string and returns the identity it
	// asserts, or an error when the credential is missing, malformed,
	// expired, or signed by an unknown party.
	ValidateToken(tokenString string) (*IdentityClaims, error)
}
