// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsentType identifies a consent dimension in the audit ledger.
type ConsentType string

const (
	// ConsentTerms records acceptance of the Terms of Service.
	ConsentTerms ConsentType = "terms"
	// ConsentPrivacy records acceptance of the Privacy Policy.
	ConsentPrivacy ConsentType = "privacy"
	// ConsentMarketing records an explicit marketing opt-in.
	ConsentMarketing ConsentType = "marketing"
)

// ConsentRecord is one append-only audit entry. Rows are written once at the
// moment of the consent event and never updated or deleted.
type ConsentRecord struct {
	ID        uuid.UUID   // The unique ID of this ledger entry.
	UserID    uuid.UUID   // The account the consent event belongs to.
	Type      ConsentType // Which consent dimension this entry records.
	Given     bool        // Whether consent was given or declined.
	Version   string      // Version of the accepted document, empty for marketing.
	CreatedAt time.Time   // When the consent event happened.
}
