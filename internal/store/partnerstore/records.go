package partnerstore

import "time"

// Persistence records for the partners bounded context. Partners soft-delete
// through is_active; contracts are plain rows with a hard-delete lifecycle.
// Column defaults live in the mappers, never in the schema, so explicit
// false/zero values survive the insert.
type PartnerRecord struct {
	ID        uint             `gorm:"primaryKey"`
	Name      string           `gorm:"size:191;not null"`
	Email     string           `gorm:"uniqueIndex;size:191;not null"`
	Phone     *string          `gorm:"size:32"`
	Website   *string          `gorm:"size:191"`
	Address   *string          `gorm:"size:255"`
	IsActive  bool             `gorm:"not null"`
	CreatedAt time.Time        `gorm:"autoCreateTime"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime"`
	Contracts []ContractRecord `gorm:"foreignKey:PartnerID"`
}

func (PartnerRecord) TableName() string { return "partners" }

type ContractRecord struct {
	ID          uint       `gorm:"primaryKey"`
	PartnerID   uint       `gorm:"index;not null"`
	Title       string     `gorm:"size:191;not null"`
	Description *string    `gorm:"size:1024"`
	Amount      *float64   `gorm:"type:decimal(12,2)"`
	Currency    string     `gorm:"size:8;not null"`
	StartDate   time.Time  `gorm:"not null"`
	EndDate     *time.Time
	Status      string    `gorm:"size:16;not null;index"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (ContractRecord) TableName() string { return "contracts" }
