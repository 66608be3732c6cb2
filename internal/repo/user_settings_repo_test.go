package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerdesk/internal/domain"
)

func TestSettingsCreateDefaults(t *testing.T) {
	g := newUserGateway(t)
	users := NewUserRepo(g)
	settings := NewUserSettingsRepo(g)
	ctx := context.Background()

	user, err := users.Create(ctx, domain.CreateUserData{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	created, err := settings.Create(ctx, domain.CreateUserSettingsData{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, created.Theme)
	assert.Equal(t, "en", created.Language)
	assert.Equal(t, "UTC", created.Timezone)
	assert.True(t, created.Notifications)
	assert.True(t, created.EmailNotifications)
}

func TestSettingsCreateExplicitFalsePersists(t *testing.T) {
	g := newUserGateway(t)
	users := NewUserRepo(g)
	settings := NewUserSettingsRepo(g)
	ctx := context.Background()

	user, err := users.Create(ctx, domain.CreateUserData{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	off := false
	created, err := settings.Create(ctx, domain.CreateUserSettingsData{
		UserID:             user.ID,
		Notifications:      &off,
		EmailNotifications: &off,
	})
	require.NoError(t, err)
	assert.False(t, created.Notifications)
	assert.False(t, created.EmailNotifications)

	got, err := settings.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Notifications)
	assert.False(t, got.EmailNotifications)
}

func TestSettingsCreateForMissingUserFails(t *testing.T) {
	settings := NewUserSettingsRepo(newUserGateway(t))
	ctx := context.Background()

	_, err := settings.Create(ctx, domain.CreateUserSettingsData{UserID: 999})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingsOnePerUser(t *testing.T) {
	g := newUserGateway(t)
	users := NewUserRepo(g)
	settings := NewUserSettingsRepo(g)
	ctx := context.Background()

	user, err := users.Create(ctx, domain.CreateUserData{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)
	_, err = settings.Create(ctx, domain.CreateUserSettingsData{UserID: user.ID})
	require.NoError(t, err)

	_, err = settings.Create(ctx, domain.CreateUserSettingsData{UserID: user.ID})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestSettingsUpdateByUserID(t *testing.T) {
	g := newUserGateway(t)
	users := NewUserRepo(g)
	settings := NewUserSettingsRepo(g)
	ctx := context.Background()

	user, err := users.Create(ctx, domain.CreateUserData{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)
	_, err = settings.Create(ctx, domain.CreateUserSettingsData{UserID: user.ID})
	require.NoError(t, err)

	dark := domain.ThemeDark
	updated, err := settings.Update(ctx, user.ID, domain.UpdateUserSettingsData{Theme: &dark, Timezone: strptr("Europe/Berlin")})
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, updated.Theme)
	assert.Equal(t, "Europe/Berlin", updated.Timezone)
	// Untouched fields keep their values.
	assert.Equal(t, "en", updated.Language)
}

func TestSettingsUpdateMissing(t *testing.T) {
	settings := NewUserSettingsRepo(newUserGateway(t))
	ctx := context.Background()

	dark := domain.ThemeDark
	_, err := settings.Update(ctx, 999, domain.UpdateUserSettingsData{Theme: &dark})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingsDelete(t *testing.T) {
	g := newUserGateway(t)
	users := NewUserRepo(g)
	settings := NewUserSettingsRepo(g)
	ctx := context.Background()

	user, err := users.Create(ctx, domain.CreateUserData{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)
	_, err = settings.Create(ctx, domain.CreateUserSettingsData{UserID: user.ID})
	require.NoError(t, err)

	require.NoError(t, settings.Delete(ctx, user.ID))
	require.ErrorIs(t, settings.Delete(ctx, user.ID), domain.ErrNotFound)

	// The user survives its settings row.
	got, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
