package domain

import (
	"context"
	"time"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeAuto
}

// UserSettings is a one-to-one companion of User keyed by UserID.
type UserSettings struct {
	ID                 uint      `json:"id"`
	UserID             uint      `json:"userId"`
	Theme              Theme     `json:"theme"`
	Language           string    `json:"language"`
	Timezone           string    `json:"timezone"`
	Notifications      bool      `json:"notifications"`
	EmailNotifications bool      `json:"emailNotifications"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// CreateUserSettingsData defaults: theme=light, language=en, timezone=UTC,
// notifications=true, emailNotifications=true.
type CreateUserSettingsData struct {
	UserID             uint
	Theme              *Theme
	Language           *string
	Timezone           *string
	Notifications      *bool
	EmailNotifications *bool
}

type UpdateUserSettingsData struct {
	Theme              *Theme
	Language           *string
	Timezone           *string
	Notifications      *bool
	EmailNotifications *bool
}

type UserSettingsRepository interface {
	Create(ctx context.Context, data CreateUserSettingsData) (*UserSettings, error)
	FindAll(ctx context.Context) ([]UserSettings, error)
	FindByUserID(ctx context.Context, userID uint) (*UserSettings, error)
	Update(ctx context.Context, userID uint, data UpdateUserSettingsData) (*UserSettings, error)
	// Delete is a hard delete; settings have no soft-delete lifecycle.
	Delete(ctx context.Context, userID uint) error
	Count(ctx context.Context) (int64, error)
}
