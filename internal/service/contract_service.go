package service

import (
	"context"

	"partnerdesk/internal/domain"
)

type ContractService struct {
	contracts domain.ContractRepository
}

func NewContractService(contracts domain.ContractRepository) *ContractService {
	return &ContractService{contracts: contracts}
}

type ContractStats struct {
	TotalContracts int64 `json:"totalContracts"`
}

// Create has no uniqueness invariant; the FK on partner_id covers the
// referenced partner's existence.
func (s *ContractService) Create(ctx context.Context, data domain.CreateContractData) (*domain.Contract, error) {
	return s.contracts.Create(ctx, data)
}

func (s *ContractService) FindAll(ctx context.Context) ([]domain.Contract, error) {
	return s.contracts.FindAll(ctx)
}

func (s *ContractService) FindOne(ctx context.Context, id uint) (*domain.Contract, error) {
	contract, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.NotFound("contract", id)
	}
	return contract, nil
}

func (s *ContractService) FindByPartnerID(ctx context.Context, partnerID uint) ([]domain.Contract, error) {
	return s.contracts.FindByPartnerID(ctx, partnerID)
}

func (s *ContractService) FindByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error) {
	return s.contracts.FindByStatus(ctx, status)
}

func (s *ContractService) Update(ctx context.Context, id uint, data domain.UpdateContractData) (*domain.Contract, error) {
	existing, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NotFound("contract", id)
	}
	return s.contracts.Update(ctx, id, data)
}

// Delete hard-removes the row; contracts have no soft-delete lifecycle.
func (s *ContractService) Delete(ctx context.Context, id uint) error {
	existing, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NotFound("contract", id)
	}
	return s.contracts.Delete(ctx, id)
}

func (s *ContractService) Stats(ctx context.Context) (*ContractStats, error) {
	total, err := s.contracts.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ContractStats{TotalContracts: total}, nil
}
