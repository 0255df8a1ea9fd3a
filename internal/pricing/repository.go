package pricing

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recellhq/recell-backend/pkg/db/models"
)

// Repository manages pricing record persistence for admin writes.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindVariantByID(ctx context.Context, id uuid.UUID) (*models.DeviceVariant, error)
	FindByVariantID(ctx context.Context, variantID uuid.UUID) (*models.PricingRecord, error)
	FindByVariantIDForUpdate(ctx context.Context, variantID uuid.UUID) (*models.PricingRecord, error)
	Save(ctx context.Context, record *models.PricingRecord) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a pricing repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindVariantByID(ctx context.Context, id uuid.UUID) (*models.DeviceVariant, error) {
	var variant models.DeviceVariant
	if err := r.db.WithContext(ctx).First(&variant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *repository) FindByVariantID(ctx context.Context, variantID uuid.UUID) (*models.PricingRecord, error) {
	var record models.PricingRecord
	if err := r.db.WithContext(ctx).First(&record, "variant_id = ?", variantID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByVariantIDForUpdate takes a row lock so concurrent edits to the same
// variant serialize instead of interleaving partial updates.
func (r *repository) FindByVariantIDForUpdate(ctx context.Context, variantID uuid.UUID) (*models.PricingRecord, error) {
	var record models.PricingRecord
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&record, "variant_id = ?", variantID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) Save(ctx context.Context, record *models.PricingRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}
