package domain

import (
	"context"
	"time"
)

type Partner struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Website   *string   `json:"website"`
	Address   *string   `json:"address"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatePartnerData struct {
	Name     string
	Email    string
	Phone    *string
	Website  *string
	Address  *string
	IsActive *bool
}

// UpdatePartnerData: pointers mean "absent = unchanged"; nullable columns
// use Field so an explicit null clears them.
type UpdatePartnerData struct {
	Name     *string
	Email    *string
	Phone    Field[string]
	Website  Field[string]
	Address  Field[string]
	IsActive *bool
}

type PartnerRepository interface {
	Create(ctx context.Context, data CreatePartnerData) (*Partner, error)
	// FindAll returns active partners only, newest first.
	FindAll(ctx context.Context) ([]Partner, error)
	FindByID(ctx context.Context, id uint) (*Partner, error)
	FindByEmail(ctx context.Context, email string) (*Partner, error)
	Update(ctx context.Context, id uint, data UpdatePartnerData) (*Partner, error)
	SoftDelete(ctx context.Context, id uint) (*Partner, error)
	HardDelete(ctx context.Context, id uint) (*Partner, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, includeInactive bool, offset, limit int) ([]Partner, int64, error)
}
