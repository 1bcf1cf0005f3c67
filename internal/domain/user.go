package domain

import "time"

// User is the domain model for accounts that may authenticate.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}
