package pickups

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recellhq/recell-backend/pkg/db/models"
	"github.com/recellhq/recell-backend/pkg/enums"
	"github.com/recellhq/recell-backend/pkg/pagination"
)

// Repository manages pickup request persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, request *models.PickupRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.PickupRequest, error)
	List(ctx context.Context, filter ListFilter, limit int, cursor *pagination.Cursor) ([]models.PickupRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.PickupStatus) error
}

// ListFilter narrows admin pickup listings.
type ListFilter struct {
	Status *enums.PickupStatus
	Phone  string
	City   string
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a pickup repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, request *models.PickupRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.PickupRequest, error) {
	var request models.PickupRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// List pages newest-first on (created_at, id) so the cursor stays stable under
// concurrent inserts.
func (r *repository) List(ctx context.Context, filter ListFilter, limit int, cursor *pagination.Cursor) ([]models.PickupRequest, error) {
	query := r.db.WithContext(ctx).Model(&models.PickupRequest{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Phone != "" {
		query = query.Where("phone = ?", filter.Phone)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if cursor != nil {
		query = query.Where(
			"(created_at, id) < (?, ?)",
			cursor.CreatedAt, cursor.ID,
		)
	}

	var requests []models.PickupRequest
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.PickupStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.PickupRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
