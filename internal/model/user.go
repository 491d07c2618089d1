// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a registered account.
//
// Accounts come from two places: credential registration (POST /api/register)
// and Google OAuth sign-in. Credential accounts carry a bcrypt password hash;
// OAuth accounts have no password at all.
//
// WHY PasswordHash with json:"-"?
// The hash must never leave the server, not even by accident. Tagging the
// field json:"-" means encoding/json skips it on every serialization path,
// so no handler can leak it by returning the struct directly. This is the
// one strict security invariant in the API.
//
// WHY plain strings instead of *string for nullable columns?
// The name, email and image columns are nullable in the DB, but in Go we use
// the empty string as the zero value. The repository translates between the
// two (empty string ↔ NULL). Simpler to work with and safe to display.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`     // bcrypt hash, empty for OAuth accounts
	Image        string    `json:"image"` // avatar URL
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Posts is filled by profile lookups (GET /api/users/{id}); every other
	// read path leaves it as an empty slice so it serializes as [].
	Posts []Post `json:"posts"`
}
