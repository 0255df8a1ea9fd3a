package audit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recellhq/recell-backend/pkg/db/models"
	"github.com/recellhq/recell-backend/pkg/enums"
)

type fakeRepository struct {
	createFn func(ctx context.Context, record *models.AuditRecord) error
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository {
	return f
}

func (f *fakeRepository) Create(ctx context.Context, record *models.AuditRecord) error {
	if f.createFn != nil {
		return f.createFn(ctx, record)
	}
	return nil
}

func (f *fakeRepository) ListByEntity(ctx context.Context, entityTable, entityID string) ([]models.AuditRecord, error) {
	return nil, nil
}

func (f *fakeRepository) ListByActor(ctx context.Context, actorID uuid.UUID) ([]models.AuditRecord, error) {
	return nil, nil
}

func TestService_Record(t *testing.T) {
	repo := &fakeRepository{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	actor := uuid.New()
	input := RecordInput{
		ActorID:     &actor,
		Action:      enums.AuditActionUpdate,
		EntityTable: "pricing_records",
		EntityID:    uuid.NewString(),
		Before:      json.RawMessage(`{"box_deduction":"100"}`),
		After:       json.RawMessage(`{"box_deduction":"120"}`),
	}

	var created *models.AuditRecord
	repo.createFn = func(ctx context.Context, record *models.AuditRecord) error {
		created = record
		return nil
	}

	got, err := svc.Record(context.Background(), input)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if created == nil {
		t.Fatal("expected repository create to be called")
	}
	if got.Action != enums.AuditActionUpdate {
		t.Fatalf("unexpected action %s", got.Action)
	}
	if got.ActorID == nil || *got.ActorID != actor {
		t.Fatal("expected actor id to be preserved")
	}
}

func TestService_RecordAllowsNilActor(t *testing.T) {
	svc, err := NewService(&fakeRepository{})
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	got, err := svc.Record(context.Background(), RecordInput{
		Action:      enums.AuditActionStatusChange,
		EntityTable: "pickup_requests",
		EntityID:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if got.ActorID != nil {
		t.Fatal("expected nil actor id")
	}
}

func TestService_RecordValidation(t *testing.T) {
	svc, err := NewService(&fakeRepository{})
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	cases := []struct {
		name  string
		input RecordInput
	}{
		{"invalid action", RecordInput{Action: "nope", EntityTable: "t", EntityID: "1"}},
		{"missing table", RecordInput{Action: enums.AuditActionCreate, EntityID: "1"}},
		{"missing entity id", RecordInput{Action: enums.AuditActionCreate, EntityTable: "t"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Record(context.Background(), tc.input); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestService_RecordPropagatesRepoError(t *testing.T) {
	want := errors.New("insert failed")
	repo := &fakeRepository{createFn: func(ctx context.Context, record *models.AuditRecord) error {
		return want
	}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	if _, err := svc.Record(context.Background(), RecordInput{
		Action:      enums.AuditActionCreate,
		EntityTable: "pricing_records",
		EntityID:    "1",
	}); !errors.Is(err, want) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
