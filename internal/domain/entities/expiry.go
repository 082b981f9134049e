package entities

import "time"

// CredentialKind distinguishes the secrets whose expiration is tracked.
type CredentialKind string

const (
	CredentialCertificate  CredentialKind = "certificate"
	CredentialClientSecret CredentialKind = "client-secret"
)

// ExpiryAlert is raised when a tracked credential is inside its warning
// window or already expired.
type ExpiryAlert struct {
	Kind      CredentialKind
	ExpiresAt time.Time
	DaysLeft  int
	Expired   bool
}
