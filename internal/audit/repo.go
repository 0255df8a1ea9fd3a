package audit

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recellhq/recell-backend/pkg/db/models"
)

// Repository manages persistence for audit records. Records are append-only;
// there is deliberately no update or delete.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, record *models.AuditRecord) error
	ListByEntity(ctx context.Context, entityTable, entityID string) ([]models.AuditRecord, error)
	ListByActor(ctx context.Context, actorID uuid.UUID) ([]models.AuditRecord, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an audit repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, record *models.AuditRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) ListByEntity(ctx context.Context, entityTable, entityID string) ([]models.AuditRecord, error) {
	var records []models.AuditRecord
	if err := r.db.WithContext(ctx).
		Where("entity_table = ? AND entity_id = ?", entityTable, entityID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) ListByActor(ctx context.Context, actorID uuid.UUID) ([]models.AuditRecord, error) {
	var records []models.AuditRecord
	if err := r.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
