package repo

import (
	"context"
	"errors"

	"partnerdesk/internal/domain"
	"partnerdesk/internal/store"
	"partnerdesk/internal/store/partnerstore"
)

type ContractRepo struct {
	g *partnerstore.Gateway
}

func NewContractRepo(g *partnerstore.Gateway) *ContractRepo { return &ContractRepo{g: g} }

var _ domain.ContractRepository = (*ContractRepo)(nil)

func (r *ContractRepo) Create(ctx context.Context, data domain.CreateContractData) (*domain.Contract, error) {
	rec := partnerstore.ContractRecordFromCreate(data)
	if err := r.g.Contracts().Create(ctx, rec); err != nil {
		if errors.Is(err, store.ErrForeignKey) {
			// partner_id must reference an existing partner.
			return nil, domain.NotFound("partner", data.PartnerID)
		}
		return nil, wrap(err)
	}
	return partnerstore.ContractToDomain(rec), nil
}

func (r *ContractRepo) FindAll(ctx context.Context) ([]domain.Contract, error) {
	recs, err := r.g.Contracts().FindMany(ctx, nil, "", 0, 0)
	if err != nil {
		return nil, wrap(err)
	}
	return partnerstore.ContractsToDomain(recs), nil
}

func (r *ContractRepo) FindByID(ctx context.Context, id uint) (*domain.Contract, error) {
	rec, err := r.g.Contracts().FindUnique(ctx, store.Patch{"id": id})
	if err != nil {
		return nil, wrap(err)
	}
	if rec == nil {
		return nil, nil
	}
	return partnerstore.ContractToDomain(rec), nil
}

func (r *ContractRepo) FindByPartnerID(ctx context.Context, partnerID uint) ([]domain.Contract, error) {
	recs, err := r.g.Contracts().FindMany(ctx, store.Patch{"partner_id": partnerID}, "", 0, 0)
	if err != nil {
		return nil, wrap(err)
	}
	return partnerstore.ContractsToDomain(recs), nil
}

func (r *ContractRepo) FindByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error) {
	recs, err := r.g.Contracts().FindMany(ctx, store.Patch{"status": string(status)}, "", 0, 0)
	if err != nil {
		return nil, wrap(err)
	}
	return partnerstore.ContractsToDomain(recs), nil
}

func (r *ContractRepo) Update(ctx context.Context, id uint, data domain.UpdateContractData) (*domain.Contract, error) {
	rec, err := r.g.Contracts().Update(ctx, store.Patch{"id": id}, partnerstore.ContractPatchFromUpdate(data))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("contract", id)
		}
		return nil, wrap(err)
	}
	return partnerstore.ContractToDomain(rec), nil
}

func (r *ContractRepo) Delete(ctx context.Context, id uint) error {
	if err := r.g.Contracts().Delete(ctx, store.Patch{"id": id}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.NotFound("contract", id)
		}
		return wrap(err)
	}
	return nil
}

func (r *ContractRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.g.Contracts().Count(ctx, nil)
	if err != nil {
		return 0, wrap(err)
	}
	return n, nil
}
