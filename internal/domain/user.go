package domain

import "time"

// User is the domain model for platform accounts. The password hash is opaque
// to every layer above the repository and is never serialized outward.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Active       bool
	Superuser    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
