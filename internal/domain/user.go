package domain

import (
	"context"
	"time"
)

// User mirrors the account record of the source system. No exposed route uses
// it yet; it exists so the schema and repository contract are in place when
// authentication lands.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash []byte
	GoogleID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}
