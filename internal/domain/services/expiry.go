package services

import (
	"fmt"
	"time"

	"titlectl/internal/domain/entities"
)

// ExpiryChecker evaluates certificate and client-secret expiration dates
// against a warning threshold.
type ExpiryChecker struct {
	warningDays int
	now         func() time.Time
}

// NewExpiryChecker creates a checker that alerts when a credential expires
// within warningDays. A non-positive threshold falls back to 30 days.
func NewExpiryChecker(warningDays int) *ExpiryChecker {
	if warningDays <= 0 {
		warningDays = 30
	}
	return &ExpiryChecker{warningDays: warningDays, now: time.Now}
}

// Check returns an alert when the credential is expired or inside the
// warning window, nil otherwise. A zero expiration date means the credential
// is not tracked.
func (c *ExpiryChecker) Check(kind entities.CredentialKind, expiresAt time.Time) *entities.ExpiryAlert {
	if expiresAt.IsZero() {
		return nil
	}

	now := c.now()
	if !expiresAt.After(now) {
		return &entities.ExpiryAlert{Kind: kind, ExpiresAt: expiresAt, Expired: true}
	}

	daysLeft := int(expiresAt.Sub(now).Hours() / 24)
	if daysLeft > c.warningDays {
		return nil
	}
	return &entities.ExpiryAlert{Kind: kind, ExpiresAt: expiresAt, DaysLeft: daysLeft}
}

// FormatAlert renders an alert as a one-line notification message.
func FormatAlert(a entities.ExpiryAlert) string {
	if a.Expired {
		return fmt.Sprintf("%s expired on %s", a.Kind, a.ExpiresAt.Format("2006-01-02"))
	}
	return fmt.Sprintf("%s expires in %d days (%s)", a.Kind, a.DaysLeft, a.ExpiresAt.Format("2006-01-02"))
}
