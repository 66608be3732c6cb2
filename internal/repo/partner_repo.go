package repo

import (
	"context"
	"errors"

	"partnerdesk/internal/domain"
	"partnerdesk/internal/store"
	"partnerdesk/internal/store/partnerstore"
)

type PartnerRepo struct {
	g *partnerstore.Gateway
}

func NewPartnerRepo(g *partnerstore.Gateway) *PartnerRepo { return &PartnerRepo{g: g} }

var _ domain.PartnerRepository = (*PartnerRepo)(nil)

func (r *PartnerRepo) Create(ctx context.Context, data domain.CreatePartnerData) (*domain.Partner, error) {
	rec := partnerstore.PartnerRecordFromCreate(data)
	if err := r.g.Partners().Create(ctx, rec); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, domain.Conflict("partner", "email", data.Email)
		}
		return nil, wrap(err)
	}
	return partnerstore.PartnerToDomain(rec), nil
}

func (r *PartnerRepo) FindAll(ctx context.Context) ([]domain.Partner, error) {
	recs, err := r.g.Partners().FindMany(ctx, store.Patch{"is_active": true}, "created_at DESC", 0, 0)
	if err != nil {
		return nil, wrap(err)
	}
	return partnerstore.PartnersToDomain(recs), nil
}

func (r *PartnerRepo) FindByID(ctx context.Context, id uint) (*domain.Partner, error) {
	rec, err := r.g.Partners().FindUnique(ctx, store.Patch{"id": id})
	if err != nil {
		return nil, wrap(err)
	}
	if rec == nil {
		return nil, nil
	}
	return partnerstore.PartnerToDomain(rec), nil
}

func (r *PartnerRepo) FindByEmail(ctx context.Context, email string) (*domain.Partner, error) {
	rec, err := r.g.Partners().FindUnique(ctx, store.Patch{"email": email})
	if err != nil {
		return nil, wrap(err)
	}
	if rec == nil {
		return nil, nil
	}
	return partnerstore.PartnerToDomain(rec), nil
}

func (r *PartnerRepo) Update(ctx context.Context, id uint, data domain.UpdatePartnerData) (*domain.Partner, error) {
	rec, err := r.g.Partners().Update(ctx, store.Patch{"id": id}, partnerstore.PartnerPatchFromUpdate(data))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, domain.NotFound("partner", id)
		case errors.Is(err, store.ErrDuplicateKey):
			return nil, domain.Conflict("partner", "email", deref(data.Email))
		}
		return nil, wrap(err)
	}
	return partnerstore.PartnerToDomain(rec), nil
}

func (r *PartnerRepo) SoftDelete(ctx context.Context, id uint) (*domain.Partner, error) {
	rec, err := r.g.Partners().Update(ctx, store.Patch{"id": id}, store.Patch{"is_active": false})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("partner", id)
		}
		return nil, wrap(err)
	}
	return partnerstore.PartnerToDomain(rec), nil
}

func (r *PartnerRepo) HardDelete(ctx context.Context, id uint) (*domain.Partner, error) {
	rec, err := r.g.Partners().FindUnique(ctx, store.Patch{"id": id})
	if err != nil {
		return nil, wrap(err)
	}
	if rec == nil {
		return nil, domain.NotFound("partner", id)
	}
	if err := r.g.Partners().Delete(ctx, store.Patch{"id": id}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("partner", id)
		}
		return nil, wrap(err)
	}
	return partnerstore.PartnerToDomain(rec), nil
}

func (r *PartnerRepo) Exists(ctx context.Context, id uint) (bool, error) {
	n, err := r.g.Partners().Count(ctx, store.Patch{"id": id})
	if err != nil {
		return false, wrap(err)
	}
	return n > 0, nil
}

func (r *PartnerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.g.Partners().Count(ctx, store.Patch{"email": email})
	if err != nil {
		return false, wrap(err)
	}
	return n > 0, nil
}

func (r *PartnerRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.g.Partners().Count(ctx, store.Patch{"is_active": true})
	if err != nil {
		return 0, wrap(err)
	}
	return n, nil
}

func (r *PartnerRepo) List(ctx context.Context, includeInactive bool, offset, limit int) ([]domain.Partner, int64, error) {
	where := store.Patch{}
	if !includeInactive {
		where["is_active"] = true
	}
	total, err := r.g.Partners().Count(ctx, where)
	if err != nil {
		return nil, 0, wrap(err)
	}
	recs, err := r.g.Partners().FindMany(ctx, where, "created_at DESC", limit, offset)
	if err != nil {
		return nil, 0, wrap(err)
	}
	return partnerstore.PartnersToDomain(recs), total, nil
}
