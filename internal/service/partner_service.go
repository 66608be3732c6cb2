package service

import (
	"context"

	"partnerdesk/internal/domain"
)

type PartnerService struct {
	partners domain.PartnerRepository
}

func NewPartnerService(partners domain.PartnerRepository) *PartnerService {
	return &PartnerService{partners: partners}
}

type PartnerStats struct {
	TotalPartners int64 `json:"totalPartners"`
}

func (s *PartnerService) Create(ctx context.Context, data domain.CreatePartnerData) (*domain.Partner, error) {
	existing, err := s.partners.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("partner", "email", data.Email)
	}
	return s.partners.Create(ctx, data)
}

func (s *PartnerService) FindAll(ctx context.Context) ([]domain.Partner, error) {
	return s.partners.FindAll(ctx)
}

func (s *PartnerService) FindOne(ctx context.Context, id uint) (*domain.Partner, error) {
	partner, err := s.partners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.NotFound("partner", id)
	}
	return partner, nil
}

func (s *PartnerService) FindByEmail(ctx context.Context, email string) (*domain.Partner, error) {
	partner, err := s.partners.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.NotFoundBy("partner", "email", email)
	}
	return partner, nil
}

func (s *PartnerService) Update(ctx context.Context, id uint, data domain.UpdatePartnerData) (*domain.Partner, error) {
	existing, err := s.partners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NotFound("partner", id)
	}
	if data.Email != nil && *data.Email != existing.Email {
		taken, err := s.partners.ExistsByEmail(ctx, *data.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.Conflict("partner", "email", *data.Email)
		}
	}
	return s.partners.Update(ctx, id, data)
}

// Remove soft-deletes; contracts referencing the partner stay untouched
// (no cascading soft-delete).
func (s *PartnerService) Remove(ctx context.Context, id uint) (*domain.Partner, error) {
	existing, err := s.partners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NotFound("partner", id)
	}
	return s.partners.SoftDelete(ctx, id)
}

func (s *PartnerService) Stats(ctx context.Context) (*PartnerStats, error) {
	total, err := s.partners.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &PartnerStats{TotalPartners: total}, nil
}

func (s *PartnerService) List(ctx context.Context, includeInactive bool, offset, limit int) ([]domain.Partner, int64, error) {
	return s.partners.List(ctx, includeInactive, offset, limit)
}
