package validators

import (
	"bytes"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/recellhq/recell-backend/pkg/errors"
)

type samplePayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
}

func TestDecodeJSONBodyAccepts(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{"email":"ops@recell.example","name":"Ops"}`)))
	var payload samplePayload
	if err := DecodeJSONBody(req, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Email != "ops@recell.example" {
		t.Fatalf("email not decoded: %s", payload.Email)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{"email":"ops@recell.example","name":"Ops","extra":1}`)))
	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldsByJSONName(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{"email":"not-an-email","name":"x"}`)))
	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message: %q", details["email"])
	}
	if details["name"] != "must be at least 2" {
		t.Fatalf("unexpected name message: %q", details["name"])
	}
}
