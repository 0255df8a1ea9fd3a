package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recellhq/recell-backend/pkg/db/models"
	"github.com/recellhq/recell-backend/pkg/enums"
)

// Service defines operations that record administrative changes.
type Service interface {
	Record(ctx context.Context, input RecordInput) (*models.AuditRecord, error)
	WithTx(tx *gorm.DB) Service
	ListByEntity(ctx context.Context, entityTable, entityID string) ([]models.AuditRecord, error)
}

// RecordInput captures one immutable audit entry. ActorID stays nil for
// system-initiated changes.
type RecordInput struct {
	ActorID     *uuid.UUID        `json:"actor_id"`
	Action      enums.AuditAction `json:"action"`
	EntityTable string            `json:"entity_table"`
	EntityID    string            `json:"entity_id"`
	Before      json.RawMessage   `json:"before"`
	After       json.RawMessage   `json:"after"`
}

type service struct {
	repo Repository
}

// NewService wires an audit service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("audit repository required")
	}
	return &service{repo: repo}, nil
}

// WithTx returns a service whose writes join the provided transaction, so an
// audit entry commits or rolls back with the change it describes.
func (s *service) WithTx(tx *gorm.DB) Service {
	return &service{repo: s.repo.WithTx(tx)}
}

func (s *service) Record(ctx context.Context, input RecordInput) (*models.AuditRecord, error) {
	if !input.Action.IsValid() {
		return nil, fmt.Errorf("invalid audit action %q", input.Action)
	}
	if input.EntityTable == "" {
		return nil, fmt.Errorf("entity table is required")
	}
	if input.EntityID == "" {
		return nil, fmt.Errorf("entity id is required")
	}

	record := &models.AuditRecord{
		ActorID:     input.ActorID,
		Action:      input.Action,
		EntityTable: input.EntityTable,
		EntityID:    input.EntityID,
		Before:      input.Before,
		After:       input.After,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) ListByEntity(ctx context.Context, entityTable, entityID string) ([]models.AuditRecord, error) {
	return s.repo.ListByEntity(ctx, entityTable, entityID)
}
