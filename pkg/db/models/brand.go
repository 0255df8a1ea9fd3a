package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a device manufacturer shown at the top of the catalog tree.
type Brand struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null;uniqueIndex"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex"`
	LogoURL   *string   `gorm:"column:logo_url"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	Devices   []Device  `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
