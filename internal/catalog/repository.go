package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recellhq/recell-backend/pkg/db/models"
)

// Repository wires together catalog read persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// ListBrands returns active brands ordered by name.
func (r *Repository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// ListDevicesByBrand returns active devices for one brand ordered by name.
func (r *Repository) ListDevicesByBrand(ctx context.Context, brandID uuid.UUID) ([]models.Device, error) {
	var devices []models.Device
	if err := r.db.WithContext(ctx).
		Where("brand_id = ? AND is_active = ?", brandID, true).
		Order("name ASC").
		Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// ListVariantsByDevice returns active variants for one device ordered by storage size.
func (r *Repository) ListVariantsByDevice(ctx context.Context, deviceID uuid.UUID) ([]models.DeviceVariant, error) {
	var variants []models.DeviceVariant
	if err := r.db.WithContext(ctx).
		Where("device_id = ? AND is_active = ?", deviceID, true).
		Order("storage_gb ASC, label ASC").
		Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// FindVariantByID loads a single variant without associations.
func (r *Repository) FindVariantByID(ctx context.Context, id uuid.UUID) (*models.DeviceVariant, error) {
	var variant models.DeviceVariant
	if err := r.db.WithContext(ctx).First(&variant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

// FindPricingByVariantID loads the pricing record attached to a variant.
func (r *Repository) FindPricingByVariantID(ctx context.Context, variantID uuid.UUID) (*models.PricingRecord, error) {
	var record models.PricingRecord
	if err := r.db.WithContext(ctx).First(&record, "variant_id = ?", variantID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListCities returns active pickup cities ordered by name.
func (r *Repository) ListCities(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}
