package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/recellhq/recell-backend/pkg/enums"
)

// AuditRecord is an append-only trace of an administrative change. ActorID is
// nullable so deleting an admin never erases history.
type AuditRecord struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ActorID     *uuid.UUID        `gorm:"column:actor_id;type:uuid;index"`
	Action      enums.AuditAction `gorm:"column:action;not null"`
	EntityTable string            `gorm:"column:entity_table;not null;index:idx_audit_entity"`
	EntityID    string            `gorm:"column:entity_id;not null;index:idx_audit_entity"`
	Before      json.RawMessage   `gorm:"column:before;type:jsonb"`
	After       json.RawMessage   `gorm:"column:after;type:jsonb"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
}
