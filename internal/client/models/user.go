// Package models defines the client-side data models of the inkwell CLI:
// users and their preferences, articles, and the request payloads sent to
// the backend.
package models

import (
	"slices"
	"time"
)

// User is the authenticated account as returned by the backend.
// A nil *User means the session is anonymous.
type User struct {
	ID          string    `json:"_id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth time.Time `json:"dob"`
	// Preferences is a set of category names; order carries no meaning
	// but is kept as received so feed queries stay stable.
	Preferences []string  `json:"preferences"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of u. Clone of nil is nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Preferences = slices.Clone(u.Preferences)
	return &c
}

// HasPreferences reports whether the user opted into at least one category.
func (u *User) HasPreferences() bool {
	return u != nil && len(u.Preferences) > 0
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
