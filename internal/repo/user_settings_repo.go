package repo

import (
	"context"
	"errors"

	"partnerdesk/internal/domain"
	"partnerdesk/internal/store"
	"partnerdesk/internal/store/userstore"
)

type UserSettingsRepo struct {
	g *userstore.Gateway
}

func NewUserSettingsRepo(g *userstore.Gateway) *UserSettingsRepo {
	return &UserSettingsRepo{g: g}
}

var _ domain.UserSettingsRepository = (*UserSettingsRepo)(nil)

func (r *UserSettingsRepo) Create(ctx context.Context, data domain.CreateUserSettingsData) (*domain.UserSettings, error) {
	rec := userstore.SettingsRecordFromCreate(data)
	if err := r.g.Settings().Create(ctx, rec); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateKey):
			return nil, domain.Conflict("user settings", "userId", data.UserID)
		case errors.Is(err, store.ErrForeignKey):
			// The FK to users is the referential-integrity check; a missing
			// user surfaces here, not as a pre-check.
			return nil, domain.NotFound("user", data.UserID)
		}
		return nil, wrap(err)
	}
	return userstore.SettingsToDomain(rec), nil
}

func (r *UserSettingsRepo) FindAll(ctx context.Context) ([]domain.UserSettings, error) {
	recs, err := r.g.Settings().FindMany(ctx, nil, "", 0, 0)
	if err != nil {
		return nil, wrap(err)
	}
	return userstore.SettingsListToDomain(recs), nil
}

func (r *UserSettingsRepo) FindByUserID(ctx context.Context, userID uint) (*domain.UserSettings, error) {
	rec, err := r.g.Settings().FindUnique(ctx, store.Patch{"user_id": userID})
	if err != nil {
		return nil, wrap(err)
	}
	if rec == nil {
		return nil, nil
	}
	return userstore.SettingsToDomain(rec), nil
}

func (r *UserSettingsRepo) Update(ctx context.Context, userID uint, data domain.UpdateUserSettingsData) (*domain.UserSettings, error) {
	rec, err := r.g.Settings().Update(ctx, store.Patch{"user_id": userID}, userstore.SettingsPatchFromUpdate(data))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFoundBy("user settings", "userId", userID)
		}
		return nil, wrap(err)
	}
	return userstore.SettingsToDomain(rec), nil
}

func (r *UserSettingsRepo) Delete(ctx context.Context, userID uint) error {
	if err := r.g.Settings().Delete(ctx, store.Patch{"user_id": userID}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.NotFoundBy("user settings", "userId", userID)
		}
		return wrap(err)
	}
	return nil
}

func (r *UserSettingsRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.g.Settings().Count(ctx, nil)
	if err != nil {
		return 0, wrap(err)
	}
	return n, nil
}
