// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the shared auth schema. The same credentials work on
// every peer service that reads the schema, so this service never hard-deletes
// a row.
type User struct {
	ID           uuid.UUID  // The global unique identifier for the account.
	Email        string     // Unique login identifier, stored case-sensitively.
	PasswordHash string     // bcrypt hash of the password. Never serialized outward.
	Name         string     // Display name, defaulted from the email local part at registration.
	Type         UserType   // Account role: hotel owner or superadmin.
	Status       UserStatus // Lifecycle status driven by superadmin review.

	TermsAcceptedAt    *time.Time // When the Terms of Service were accepted.
	TermsVersion       string     // Version string of the accepted Terms.
	PrivacyAcceptedAt  *time.Time // When the Privacy Policy was accepted.
	PrivacyVersion     string     // Version string of the accepted Privacy Policy.
	MarketingConsent   bool       // Whether marketing consent was explicitly given.
	MarketingConsentAt *time.Time // When marketing consent was given, if ever.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSuperadmin reports whether the account bypasses ownership-based checks.
func (u *User) IsSuperadmin() bool {
	return u.Type == UserTypeAdmin
}
