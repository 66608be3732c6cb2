package domain

import (
	"context"
	"time"
)

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateUserData is the normalized creation payload. IsActive defaults to
// true when nil.
type CreateUserData struct {
	Email    string
	Name     string
	IsActive *bool
}

// UpdateUserData is a sparse patch: nil means "leave unchanged".
type UpdateUserData struct {
	Email    *string
	Name     *string
	IsActive *bool
}

type UserRepository interface {
	Create(ctx context.Context, data CreateUserData) (*User, error)
	// FindAll returns active users only, newest first.
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id uint, data UpdateUserData) (*User, error)
	// SoftDelete flips IsActive off and keeps the row.
	SoftDelete(ctx context.Context, id uint) (*User, error)
	HardDelete(ctx context.Context, id uint) (*User, error)
	// Purge removes the user and its settings row in one transaction.
	Purge(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Count counts active users, matching FindAll's scope.
	Count(ctx context.Context) (int64, error)
	// List is the admin view: optionally includes inactive rows, paged.
	List(ctx context.Context, includeInactive bool, offset, limit int) ([]User, int64, error)
}
