package userstore

import "time"

// Persistence records for the users bounded context. Soft delete is the
// is_active flag rather than gorm's DeletedAt: inactive rows must stay
// readable by id. Column defaults live in the mappers, never in the
// schema: a DB-side default would make gorm skip explicit false/zero
// values on insert.
type UserRecord struct {
	ID        uint                `gorm:"primaryKey"`
	Email     string              `gorm:"uniqueIndex;size:191;not null"`
	Name      string              `gorm:"size:191;not null"`
	IsActive  bool                `gorm:"not null"`
	CreatedAt time.Time           `gorm:"autoCreateTime"`
	UpdatedAt time.Time           `gorm:"autoUpdateTime"`
	Settings  *UserSettingsRecord `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserRecord) TableName() string { return "users" }

// UserSettingsRecord is a one-to-one companion of UserRecord; user_id
// carries both the unique index and the FK back to users.
type UserSettingsRecord struct {
	ID                 uint      `gorm:"primaryKey"`
	UserID             uint      `gorm:"uniqueIndex;not null"`
	Theme              string    `gorm:"size:16;not null"`
	Language           string    `gorm:"size:16;not null"`
	Timezone           string    `gorm:"size:64;not null"`
	Notifications      bool      `gorm:"not null"`
	EmailNotifications bool      `gorm:"not null"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (UserSettingsRecord) TableName() string { return "user_settings" }
