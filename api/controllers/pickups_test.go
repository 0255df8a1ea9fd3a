package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/recellhq/recell-backend/api/middleware"
	"github.com/recellhq/recell-backend/internal/pickups"
	"github.com/recellhq/recell-backend/internal/valuation"
	"github.com/recellhq/recell-backend/pkg/enums"
	pkgerrors "github.com/recellhq/recell-backend/pkg/errors"
	"github.com/recellhq/recell-backend/pkg/logger"
)

type fakePickupService struct {
	quoteInput  *pickups.QuoteInput
	submitInput *pickups.SubmitInput
	statusCall  *enums.PickupStatus
	actorID     uuid.UUID
	err         error
}

func (f *fakePickupService) Quote(_ context.Context, input pickups.QuoteInput) (*pickups.QuoteResult, error) {
	f.quoteInput = &input
	if f.err != nil {
		return nil, f.err
	}
	return &pickups.QuoteResult{
		Tier: enums.ConditionTierAverage,
		Breakdown: valuation.Result{
			AgeAdjustedPrice:   decimal.NewFromInt(10000),
			ConditionDeduction: decimal.NewFromInt(1000),
			AccessoryDeduction: decimal.NewFromInt(100),
			FinalPrice:         decimal.NewFromInt(8900),
		},
	}, nil
}

func (f *fakePickupService) Submit(_ context.Context, input pickups.SubmitInput) (*pickups.RequestDTO, error) {
	f.submitInput = &input
	if f.err != nil {
		return nil, f.err
	}
	return &pickups.RequestDTO{
		ID:         uuid.New(),
		VariantID:  input.VariantID,
		FinalPrice: decimal.NewFromInt(8900),
		Status:     enums.PickupStatusPending,
	}, nil
}

func (f *fakePickupService) GetByID(_ context.Context, id uuid.UUID) (*pickups.RequestDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pickups.RequestDTO{ID: id}, nil
}

func (f *fakePickupService) List(_ context.Context, _ pickups.ListInput) (*pickups.ListResult, error) {
	return &pickups.ListResult{}, nil
}

func (f *fakePickupService) UpdateStatus(_ context.Context, actorID, id uuid.UUID, status enums.PickupStatus) (*pickups.RequestDTO, error) {
	f.statusCall = &status
	f.actorID = actorID
	if f.err != nil {
		return nil, f.err
	}
	return &pickups.RequestDTO{ID: id, Status: status}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{Level: zerolog.Disabled})
}

func TestQuotePickupReturnsBreakdown(t *testing.T) {
	svc := &fakePickupService{}
	handler := QuotePickup(svc, testLogger())

	payload := map[string]any{
		"variant_id":     uuid.NewString(),
		"age_bracket":    "0_3",
		"condition_tier": "average",
		"accessories":    map[string]bool{"has_charger": true, "has_bill": true},
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.quoteInput == nil {
		t.Fatal("service was not invoked")
	}
	if svc.quoteInput.Tier == nil || *svc.quoteInput.Tier != enums.ConditionTierAverage {
		t.Fatalf("tier not forwarded: %+v", svc.quoteInput.Tier)
	}
	if !svc.quoteInput.Accessories.HasCharger || svc.quoteInput.Accessories.HasBox {
		t.Fatalf("accessories not forwarded: %+v", svc.quoteInput.Accessories)
	}
}

func TestQuotePickupRejectsMalformedVariantID(t *testing.T) {
	svc := &fakePickupService{}
	handler := QuotePickup(svc, testLogger())

	body := []byte(`{"variant_id":"not-a-uuid","age_bracket":"0_3"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.quoteInput != nil {
		t.Fatal("service should not be invoked on invalid input")
	}
}

func TestSubmitPickupRequiresCustomerFields(t *testing.T) {
	svc := &fakePickupService{}
	handler := SubmitPickup(svc, testLogger())

	payload := map[string]any{
		"variant_id":  uuid.NewString(),
		"age_bracket": "0_3",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pickups", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.submitInput != nil {
		t.Fatal("service should not be invoked on invalid input")
	}
}

func TestSubmitPickupReturnsCreated(t *testing.T) {
	svc := &fakePickupService{}
	handler := SubmitPickup(svc, testLogger())

	payload := map[string]any{
		"variant_id":     uuid.NewString(),
		"age_bracket":    "3_6",
		"condition_tier": "good",
		"accessories":    map[string]bool{"has_charger": true, "has_box": true, "has_bill": true},
		"customer_name":  "Asha Verma",
		"phone":          "9876500000",
		"address":        "12 Main Road",
		"city":           "Pune",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pickups", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.submitInput == nil || svc.submitInput.City != "Pune" {
		t.Fatalf("submission not forwarded: %+v", svc.submitInput)
	}
}

func TestUpdatePickupStatusUsesAuthenticatedActor(t *testing.T) {
	svc := &fakePickupService{}
	actor := uuid.New()
	pickupID := uuid.New()

	router := chi.NewRouter()
	router.Patch("/api/v1/admin/pickups/{pickupID}/status", UpdatePickupStatus(svc, testLogger()))

	body := []byte(`{"status":"confirmed"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/pickups/"+pickupID.String()+"/status", bytes.NewReader(body))
	req = req.WithContext(middleware.WithAdminID(req.Context(), actor.String()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.actorID != actor {
		t.Fatalf("expected actor %s, got %s", actor, svc.actorID)
	}
	if svc.statusCall == nil || *svc.statusCall != enums.PickupStatusConfirmed {
		t.Fatalf("status not forwarded: %+v", svc.statusCall)
	}
}

func TestUpdatePickupStatusRequiresAuth(t *testing.T) {
	svc := &fakePickupService{}
	router := chi.NewRouter()
	router.Patch("/api/v1/admin/pickups/{pickupID}/status", UpdatePickupStatus(svc, testLogger()))

	body := []byte(`{"status":"confirmed"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/pickups/"+uuid.NewString()+"/status", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGetPickupPropagatesNotFound(t *testing.T) {
	svc := &fakePickupService{err: pkgerrors.New(pkgerrors.CodeNotFound, "pickup request not found")}
	router := chi.NewRouter()
	router.Get("/api/v1/admin/pickups/{pickupID}", GetPickup(svc, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/pickups/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
