package pickups

import (
	"testing"

	"github.com/recellhq/recell-backend/internal/valuation"
	"github.com/recellhq/recell-backend/pkg/enums"
	pkgerrors "github.com/recellhq/recell-backend/pkg/errors"
)

func TestResolveTierSignalsWin(t *testing.T) {
	tier := enums.ConditionTierGood
	signals := &valuation.ConditionSignals{
		PowersOn: false, // forces below_average regardless of the submitted tier
	}

	got, err := resolveTier(signals, &tier)
	if err != nil {
		t.Fatalf("resolveTier error: %v", err)
	}
	if got != enums.ConditionTierBelowAverage {
		t.Fatalf("expected signals to override submitted tier, got %s", got)
	}
}

func TestResolveTierAcceptsPreClassified(t *testing.T) {
	tier := enums.ConditionTierAverage
	got, err := resolveTier(nil, &tier)
	if err != nil {
		t.Fatalf("resolveTier error: %v", err)
	}
	if got != enums.ConditionTierAverage {
		t.Fatalf("expected average, got %s", got)
	}
}

func TestResolveTierRejectsUnknownTier(t *testing.T) {
	bad := enums.ConditionTier("mint")
	_, err := resolveTier(nil, &bad)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolveTierRequiresCondition(t *testing.T) {
	_, err := resolveTier(nil, nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateSubmit(t *testing.T) {
	input := SubmitInput{
		CustomerName: "  ",
		Phone:        "9876500000",
		Address:      "12 Main Road",
		City:         "",
	}
	details := validateSubmit(input)
	if details["customer_name"] == "" {
		t.Fatalf("expected customer_name detail, got %v", details)
	}
	if details["city"] == "" {
		t.Fatalf("expected city detail, got %v", details)
	}
	if _, ok := details["phone"]; ok {
		t.Fatal("phone should be valid")
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 details, got %v", details)
	}
}
