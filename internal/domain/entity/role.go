// Package entity contains the core business objects of the project.
package entity

// UserType represents the role of an account in the system.
type UserType string

const (
	// UserTypeHotel indicates a hotel-owner account.
	UserTypeHotel UserType = "hotel"
	// UserTypeAdmin indicates a superadmin account that may act on any tenant.
	UserTypeAdmin UserType = "admin"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeHotel, UserTypeAdmin:
		return true
	default:
		return false
	}
}

// UserStatus represents the lifecycle state of an account.
type UserStatus string

const (
	// StatusPending indicates a freshly registered account awaiting review.
	StatusPending UserStatus = "pending"
	// StatusVerified indicates a reviewed, fully active account.
	StatusVerified UserStatus = "verified"
	// StatusRejected indicates an account that failed review.
	StatusRejected UserStatus = "rejected"
	// StatusSuspended indicates an account that has been shut off.
	StatusSuspended UserStatus = "suspended"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected, StatusSuspended:
		return true
	default:
		return false
	}
}
