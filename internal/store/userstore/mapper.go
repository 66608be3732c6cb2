package userstore

import (
	"partnerdesk/internal/domain"
	"partnerdesk/internal/store"
)

// Pure translators between domain payloads and persistence records. The
// update mappers build sparse patches: a field absent from the payload
// produces no patch entry at all, never a default.

func UserToDomain(rec *UserRecord) *domain.User {
	return &domain.User{
		ID:        rec.ID,
		Email:     rec.Email,
		Name:      rec.Name,
		IsActive:  rec.IsActive,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func UsersToDomain(recs []UserRecord) []domain.User {
	out := make([]domain.User, 0, len(recs))
	for i := range recs {
		out = append(out, *UserToDomain(&recs[i]))
	}
	return out
}

func UserRecordFromCreate(d domain.CreateUserData) *UserRecord {
	rec := &UserRecord{
		Email:    d.Email,
		Name:     d.Name,
		IsActive: true,
	}
	if d.IsActive != nil {
		rec.IsActive = *d.IsActive
	}
	return rec
}

func UserPatchFromUpdate(d domain.UpdateUserData) store.Patch {
	p := store.Patch{}
	if d.Email != nil {
		p["email"] = *d.Email
	}
	if d.Name != nil {
		p["name"] = *d.Name
	}
	if d.IsActive != nil {
		p["is_active"] = *d.IsActive
	}
	return p
}

func SettingsToDomain(rec *UserSettingsRecord) *domain.UserSettings {
	return &domain.UserSettings{
		ID:                 rec.ID,
		UserID:             rec.UserID,
		Theme:              domain.Theme(rec.Theme),
		Language:           rec.Language,
		Timezone:           rec.Timezone,
		Notifications:      rec.Notifications,
		EmailNotifications: rec.EmailNotifications,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
}

func SettingsListToDomain(recs []UserSettingsRecord) []domain.UserSettings {
	out := make([]domain.UserSettings, 0, len(recs))
	for i := range recs {
		out = append(out, *SettingsToDomain(&recs[i]))
	}
	return out
}

func SettingsRecordFromCreate(d domain.CreateUserSettingsData) *UserSettingsRecord {
	rec := &UserSettingsRecord{
		UserID:             d.UserID,
		Theme:              string(domain.ThemeLight),
		Language:           "en",
		Timezone:           "UTC",
		Notifications:      true,
		EmailNotifications: true,
	}
	if d.Theme != nil {
		rec.Theme = string(*d.Theme)
	}
	if d.Language != nil {
		rec.Language = *d.Language
	}
	if d.Timezone != nil {
		rec.Timezone = *d.Timezone
	}
	if d.Notifications != nil {
		rec.Notifications = *d.Notifications
	}
	if d.EmailNotifications != nil {
		rec.EmailNotifications = *d.EmailNotifications
	}
	return rec
}

func SettingsPatchFromUpdate(d domain.UpdateUserSettingsData) store.Patch {
	p := store.Patch{}
	if d.Theme != nil {
		p["theme"] = string(*d.Theme)
	}
	if d.Language != nil {
		p["language"] = *d.Language
	}
	if d.Timezone != nil {
		p["timezone"] = *d.Timezone
	}
	if d.Notifications != nil {
		p["notifications"] = *d.Notifications
	}
	if d.EmailNotifications != nil {
		p["email_notifications"] = *d.EmailNotifications
	}
	return p
}
