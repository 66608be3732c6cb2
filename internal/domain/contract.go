package domain

import (
	"context"
	"time"
)

type ContractStatus string

const (
	ContractActive    ContractStatus = "active"
	ContractExpired   ContractStatus = "expired"
	ContractCancelled ContractStatus = "cancelled"
)

func (s ContractStatus) Valid() bool {
	return s == ContractActive || s == ContractExpired || s == ContractCancelled
}

type Contract struct {
	ID          uint           `json:"id"`
	PartnerID   uint           `json:"partnerId"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Amount      *float64       `json:"amount"`
	Currency    string         `json:"currency"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     *time.Time     `json:"endDate"`
	Status      ContractStatus `json:"status"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CreateContractData defaults: currency=USD, status=active, isActive=true.
type CreateContractData struct {
	PartnerID   uint
	Title       string
	Description *string
	Amount      *float64
	Currency    *string
	StartDate   time.Time
	EndDate     *time.Time
	Status      *ContractStatus
	IsActive    *bool
}

type UpdateContractData struct {
	Title       *string
	Description Field[string]
	Amount      Field[float64]
	Currency    *string
	StartDate   *time.Time
	EndDate     Field[time.Time]
	Status      *ContractStatus
	IsActive    *bool
}

type ContractRepository interface {
	Create(ctx context.Context, data CreateContractData) (*Contract, error)
	// FindAll is unfiltered; contracts have no soft-delete scope.
	FindAll(ctx context.Context) ([]Contract, error)
	FindByID(ctx context.Context, id uint) (*Contract, error)
	FindByPartnerID(ctx context.Context, partnerID uint) ([]Contract, error)
	FindByStatus(ctx context.Context, status ContractStatus) ([]Contract, error)
	Update(ctx context.Context, id uint, data UpdateContractData) (*Contract, error)
	// Delete is a hard delete.
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
