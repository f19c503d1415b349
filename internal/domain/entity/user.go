// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is one registrant within one application.
// The pair (AppID, Mobile) is unique; the same mobile may exist in another application.
type User struct {
	ID             string     // Backend-native identity rendered as a string (numeric id or ObjectID hex).
	Name           string     // Display name, trimmed.
	Email          string     // Optional contact email, lower-cased.
	Mobile         string     // Mobile number, required.
	PinHash        string     // bcrypt hash of the optional PIN. Never leaves the service.
	AppID          string     // Owning application identifier.
	TotalCount     int64      // Running total across all days.
	LastActiveDate *time.Time // Last counter increment, nil until the first one.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserSummary is the slice of a user attached to admin activity listings.
type UserSummary struct {
	ID    string
	Name  string
	Email string
}
