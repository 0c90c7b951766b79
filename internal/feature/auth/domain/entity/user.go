// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Roles a user can hold. Admins create and manage surveys,
// respondents only answer them.
const (
	RoleAdmin     = "admin"
	RoleResponden = "responden"
)

// User represents a registered user in the system.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown in the mobile client.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role is either "admin" or "responden".
	Role string `gorm:"size:32;not null;default:responden"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
