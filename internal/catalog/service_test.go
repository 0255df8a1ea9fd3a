package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/recellhq/recell-backend/pkg/config"
	"github.com/recellhq/recell-backend/pkg/db/models"
	"github.com/recellhq/recell-backend/pkg/enums"
)

func testDefaults() config.ValuationConfig {
	return config.ValuationConfig{
		DefaultChargerDeduction: 200,
		DefaultBoxDeduction:     100,
		DefaultBillDeduction:    150,
		DefaultGoodPct:          0,
		DefaultAveragePct:       10,
		DefaultBelowAveragePct:  20,
	}
}

func decimalPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestResolveParamsAppliesDefaults(t *testing.T) {
	svc := &service{defaults: testDefaults()}
	record := &models.PricingRecord{
		Price0To3:   decimal.NewFromInt(10000),
		Price3To6:   decimal.NewFromInt(8000),
		Price6To11:  decimal.NewFromInt(6000),
		Price12Plus: decimal.NewFromInt(4000),
	}

	params := svc.resolveParams(record)

	if !params.ChargerDeduction.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected default charger deduction 200, got %s", params.ChargerDeduction)
	}
	if !params.BoxDeduction.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected default box deduction 100, got %s", params.BoxDeduction)
	}
	if !params.BillDeduction.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected default bill deduction 150, got %s", params.BillDeduction)
	}
	if !params.TierPcts[enums.ConditionTierGood].IsZero() {
		t.Fatalf("expected default good pct 0, got %s", params.TierPcts[enums.ConditionTierGood])
	}
	if !params.TierPcts[enums.ConditionTierAverage].Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected default average pct 10, got %s", params.TierPcts[enums.ConditionTierAverage])
	}
	if !params.TierPcts[enums.ConditionTierBelowAverage].Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected default below average pct 20, got %s", params.TierPcts[enums.ConditionTierBelowAverage])
	}
	if !params.AgePrices[enums.AgeBracket12Plus].Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("expected 12_plus price 4000, got %s", params.AgePrices[enums.AgeBracket12Plus])
	}
}

func TestResolveParamsPrefersOverrides(t *testing.T) {
	svc := &service{defaults: testDefaults()}
	record := &models.PricingRecord{
		Price0To3:        decimal.NewFromInt(10000),
		ChargerDeduction: decimalPtr(350),
		AveragePct:       decimalPtr(12.5),
	}

	params := svc.resolveParams(record)

	if !params.ChargerDeduction.Equal(decimal.NewFromFloat(350)) {
		t.Fatalf("expected charger override 350, got %s", params.ChargerDeduction)
	}
	if !params.TierPcts[enums.ConditionTierAverage].Equal(decimal.NewFromFloat(12.5)) {
		t.Fatalf("expected average pct override 12.5, got %s", params.TierPcts[enums.ConditionTierAverage])
	}
	// Untouched fields still fall back.
	if !params.BoxDeduction.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected default box deduction 100, got %s", params.BoxDeduction)
	}
}
