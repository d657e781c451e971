package entity

import (
	"time"
)

// Role values assignable to a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the aggregate root for the credential store.
// PasswordHash holds a bcrypt hash; the plaintext is never persisted.
//
// Rentals are not embedded here: the rentals table is the single source of
// truth and the per-user view is derived by query.
type User struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	PhoneNumber    string
	DOB            time.Time
	IsForeigner    bool
	Role           string
	Verified       bool
	DrivingLicense string // relative upload path, empty when absent
	Passport       string // relative upload path, empty when absent
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// HasVerificationDocs reports whether the documents required for
// verification are on file: a driving license for everyone, plus a
// passport for foreigners.
func (u *User) HasVerificationDocs() bool {
	if u.DrivingLicense == "" {
		return false
	}
	if u.IsForeigner && u.Passport == "" {
		return false
	}
	return true
}
