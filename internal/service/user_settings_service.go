package service

import (
	"context"

	"partnerdesk/internal/domain"
)

type UserSettingsService struct {
	settings domain.UserSettingsRepository
}

func NewUserSettingsService(settings domain.UserSettingsRepository) *UserSettingsService {
	return &UserSettingsService{settings: settings}
}

// Create relies on the store for both invariants: the unique index on
// user_id (one settings row per user) and the FK to users.
func (s *UserSettingsService) Create(ctx context.Context, userID uint, data domain.CreateUserSettingsData) (*domain.UserSettings, error) {
	data.UserID = userID
	return s.settings.Create(ctx, data)
}

func (s *UserSettingsService) FindByUserID(ctx context.Context, userID uint) (*domain.UserSettings, error) {
	settings, err := s.settings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, domain.NotFoundBy("user settings", "userId", userID)
	}
	return settings, nil
}

func (s *UserSettingsService) Update(ctx context.Context, userID uint, data domain.UpdateUserSettingsData) (*domain.UserSettings, error) {
	existing, err := s.settings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NotFoundBy("user settings", "userId", userID)
	}
	return s.settings.Update(ctx, userID, data)
}

// Delete hard-removes the row; settings have no soft-delete lifecycle.
func (s *UserSettingsService) Delete(ctx context.Context, userID uint) error {
	existing, err := s.settings.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NotFoundBy("user settings", "userId", userID)
	}
	return s.settings.Delete(ctx, userID)
}

func (s *UserSettingsService) FindAll(ctx context.Context) ([]domain.UserSettings, error) {
	return s.settings.FindAll(ctx)
}

func (s *UserSettingsService) Count(ctx context.Context) (int64, error) {
	return s.settings.Count(ctx)
}
