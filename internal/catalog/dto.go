package catalog

import (
	"github.com/google/uuid"

	"github.com/recellhq/recell-backend/pkg/db/models"
)

// BrandDTO is the public brand representation.
type BrandDTO struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	LogoURL *string   `json:"logo_url,omitempty"`
}

// DeviceDTO is the public device representation.
type DeviceDTO struct {
	ID       uuid.UUID `json:"id"`
	BrandID  uuid.UUID `json:"brand_id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	ImageURL *string   `json:"image_url,omitempty"`
}

// VariantDTO is the public variant representation.
type VariantDTO struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  uuid.UUID `json:"device_id"`
	Label     string    `json:"label"`
	StorageGB int       `json:"storage_gb"`
	RAMGB     *int      `json:"ram_gb,omitempty"`
}

// CityDTO is the public pickup city representation.
type CityDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// NewBrandDTO maps a brand model to its DTO.
func NewBrandDTO(brand *models.Brand) BrandDTO {
	return BrandDTO{
		ID:      brand.ID,
		Name:    brand.Name,
		Slug:    brand.Slug,
		LogoURL: brand.LogoURL,
	}
}

// NewDeviceDTO maps a device model to its DTO.
func NewDeviceDTO(device *models.Device) DeviceDTO {
	return DeviceDTO{
		ID:       device.ID,
		BrandID:  device.BrandID,
		Name:     device.Name,
		Slug:     device.Slug,
		ImageURL: device.ImageURL,
	}
}

// NewVariantDTO maps a variant model to its DTO.
func NewVariantDTO(variant *models.DeviceVariant) VariantDTO {
	return VariantDTO{
		ID:        variant.ID,
		DeviceID:  variant.DeviceID,
		Label:     variant.Label,
		StorageGB: variant.StorageGB,
		RAMGB:     variant.RAMGB,
	}
}

// NewCityDTO maps a city model to its DTO.
func NewCityDTO(city *models.City) CityDTO {
	return CityDTO{
		ID:   city.ID,
		Name: city.Name,
		Slug: city.Slug,
	}
}
