// Package service holds the entity services: the layer that enforces
// invariants spanning more than one repository call (uniqueness and
// existence pre-checks, delete policy) and the only layer that hands
// business-meaningful error kinds to the transport.
package service

import (
	"context"

	"partnerdesk/internal/domain"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

type UserStats struct {
	TotalUsers int64 `json:"totalUsers"`
}

// Create pre-checks email uniqueness for a friendly conflict message. The
// check races with concurrent creates; the unique index in the store is
// the real guard and the repo reports its violation as the same kind.
func (s *UserService) Create(ctx context.Context, data domain.CreateUserData) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("user", "email", data.Email)
	}
	return s.users.Create(ctx, data)
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) FindOne(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user", id)
	}
	return user, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFoundBy("user", "email", email)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, data domain.UpdateUserData) (*domain.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NotFound("user", id)
	}
	// Re-check uniqueness only when the email actually changes.
	if data.Email != nil && *data.Email != existing.Email {
		taken, err := s.users.ExistsByEmail(ctx, *data.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.Conflict("user", "email", *data.Email)
		}
	}
	return s.users.Update(ctx, id, data)
}

// Remove soft-deletes: users stay resolvable by id after removal.
func (s *UserService) Remove(ctx context.Context, id uint) (*domain.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NotFound("user", id)
	}
	return s.users.SoftDelete(ctx, id)
}

// Purge hard-removes the user and its settings atomically (admin only).
func (s *UserService) Purge(ctx context.Context, id uint) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("user", id)
	}
	return s.users.Purge(ctx, id)
}

func (s *UserService) Stats(ctx context.Context) (*UserStats, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &UserStats{TotalUsers: total}, nil
}

func (s *UserService) List(ctx context.Context, includeInactive bool, offset, limit int) ([]domain.User, int64, error) {
	return s.users.List(ctx, includeInactive, offset, limit)
}
