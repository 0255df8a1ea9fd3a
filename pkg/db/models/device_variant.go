package models

import (
	"time"

	"github.com/google/uuid"
)

// DeviceVariant is a storage/memory configuration of a device. Pricing hangs
// off the variant, never the device.
type DeviceVariant struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	DeviceID  uuid.UUID      `gorm:"column:device_id;type:uuid;not null;index"`
	Label     string         `gorm:"column:label;not null"`
	StorageGB int            `gorm:"column:storage_gb;not null"`
	RAMGB     *int           `gorm:"column:ram_gb"`
	IsActive  bool           `gorm:"column:is_active;not null;default:true"`
	Pricing   *PricingRecord `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
