package repo

import (
	"context"
	"errors"

	"partnerdesk/internal/domain"
	"partnerdesk/internal/store"
	"partnerdesk/internal/store/userstore"
)

type UserRepo struct {
	g *userstore.Gateway
}

func NewUserRepo(g *userstore.Gateway) *UserRepo { return &UserRepo{g: g} }

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, data domain.CreateUserData) (*domain.User, error) {
	rec := userstore.UserRecordFromCreate(data)
	if err := r.g.Users().Create(ctx, rec); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			// Backstop beneath the service pre-check: the loser of a
			// concurrent create still gets a conflict, not a 500.
			return nil, domain.Conflict("user", "email", data.Email)
		}
		return nil, wrap(err)
	}
	return userstore.UserToDomain(rec), nil
}

func (r *UserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	recs, err := r.g.Users().FindMany(ctx, store.Patch{"is_active": true}, "created_at DESC", 0, 0)
	if err != nil {
		return nil, wrap(err)
	}
	return userstore.UsersToDomain(recs), nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	rec, err := r.g.Users().FindUnique(ctx, store.Patch{"id": id})
	if err != nil {
		return nil, wrap(err)
	}
	if rec == nil {
		return nil, nil
	}
	return userstore.UserToDomain(rec), nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	rec, err := r.g.Users().FindUnique(ctx, store.Patch{"email": email})
	if err != nil {
		return nil, wrap(err)
	}
	if rec == nil {
		return nil, nil
	}
	return userstore.UserToDomain(rec), nil
}

func (r *UserRepo) Update(ctx context.Context, id uint, data domain.UpdateUserData) (*domain.User, error) {
	rec, err := r.g.Users().Update(ctx, store.Patch{"id": id}, userstore.UserPatchFromUpdate(data))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, domain.NotFound("user", id)
		case errors.Is(err, store.ErrDuplicateKey):
			return nil, domain.Conflict("user", "email", deref(data.Email))
		}
		return nil, wrap(err)
	}
	return userstore.UserToDomain(rec), nil
}

func (r *UserRepo) SoftDelete(ctx context.Context, id uint) (*domain.User, error) {
	rec, err := r.g.Users().Update(ctx, store.Patch{"id": id}, store.Patch{"is_active": false})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("user", id)
		}
		return nil, wrap(err)
	}
	return userstore.UserToDomain(rec), nil
}

func (r *UserRepo) HardDelete(ctx context.Context, id uint) (*domain.User, error) {
	rec, err := r.g.Users().FindUnique(ctx, store.Patch{"id": id})
	if err != nil {
		return nil, wrap(err)
	}
	if rec == nil {
		return nil, domain.NotFound("user", id)
	}
	if err := r.g.Users().Delete(ctx, store.Patch{"id": id}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("user", id)
		}
		return nil, wrap(err)
	}
	return userstore.UserToDomain(rec), nil
}

// Purge removes the user together with its settings row; both deletes
// commit or neither does.
func (r *UserRepo) Purge(ctx context.Context, id uint) error {
	return r.g.InTransaction(ctx, func(s userstore.Scope) error {
		err := s.Settings.Delete(ctx, store.Patch{"user_id": id})
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return wrap(err)
		}
		if err := s.Users.Delete(ctx, store.Patch{"id": id}); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.NotFound("user", id)
			}
			return wrap(err)
		}
		return nil
	})
}

func (r *UserRepo) Exists(ctx context.Context, id uint) (bool, error) {
	n, err := r.g.Users().Count(ctx, store.Patch{"id": id})
	if err != nil {
		return false, wrap(err)
	}
	return n > 0, nil
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.g.Users().Count(ctx, store.Patch{"email": email})
	if err != nil {
		return false, wrap(err)
	}
	return n > 0, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.g.Users().Count(ctx, store.Patch{"is_active": true})
	if err != nil {
		return 0, wrap(err)
	}
	return n, nil
}

func (r *UserRepo) List(ctx context.Context, includeInactive bool, offset, limit int) ([]domain.User, int64, error) {
	where := store.Patch{}
	if !includeInactive {
		where["is_active"] = true
	}
	total, err := r.g.Users().Count(ctx, where)
	if err != nil {
		return nil, 0, wrap(err)
	}
	recs, err := r.g.Users().FindMany(ctx, where, "created_at DESC", limit, offset)
	if err != nil {
		return nil, 0, wrap(err)
	}
	return userstore.UsersToDomain(recs), total, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
