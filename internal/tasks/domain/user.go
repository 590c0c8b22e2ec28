package domain

import "time"

// User is an account identified by email. Users are created on register and
// never mutated or deleted through any exposed operation.
type User struct {
	ID           string
	Email        string // stored case-sensitively, unique
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
}
