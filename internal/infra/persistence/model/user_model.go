package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the shared 'users' table in the auth schema. The table is
// shared with peer services, so columns are never dropped and rows are never
// hard-deleted from here.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Type         string    `gorm:"type:varchar(20);not null;default:'hotel'"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'"`

	TermsAcceptedAt    *time.Time
	TermsVersion       string `gorm:"type:varchar(20)"`
	PrivacyAcceptedAt  *time.Time
	PrivacyVersion     string `gorm:"type:varchar(20)"`
	MarketingConsent   bool
	MarketingConsentAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ConsentModel mirrors the append-only 'consent_history' table.
// Rows are inserted once and never updated.
type ConsentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ConsentType string    `gorm:"type:varchar(20);not null"`
	Given       bool      `gorm:"not null"`
	Version     string    `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConsentModel) TableName() string {
	return "consent_history"
}

// ResetTokenModel mirrors the 'password_reset_tokens' table.
type ResetTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
