package models

import (
	"time"

	"github.com/google/uuid"
)

// Device is a sellable model belonging to a brand.
type Device struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BrandID   uuid.UUID       `gorm:"column:brand_id;type:uuid;not null;index"`
	Name      string          `gorm:"column:name;not null"`
	Slug      string          `gorm:"column:slug;not null;uniqueIndex"`
	ImageURL  *string         `gorm:"column:image_url"`
	IsActive  bool            `gorm:"column:is_active;not null;default:true"`
	Variants  []DeviceVariant `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
