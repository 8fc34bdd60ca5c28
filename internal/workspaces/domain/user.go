package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string // globally unique, lowercased
	FullName     string
	PasswordHash string // argon2id encoded
	IsVerified   bool
	IsActive     bool

	// Set between registration and email verification, nil afterwards.
	VerificationToken        *string
	VerificationTokenExpires *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FirstName returns the first whitespace-separated token of the full name,
// used when deriving the personal workspace name. Falls back to "User".
func (u User) FirstName() string {
	fields := strings.Fields(u.FullName)
	if len(fields) == 0 {
		return "User"
	}
	return fields[0]
}
