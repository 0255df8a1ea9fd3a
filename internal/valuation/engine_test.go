package valuation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/recellhq/recell-backend/pkg/enums"
)

func testParams() PricingParams {
	return PricingParams{
		AgePrices: map[enums.AgeBracket]decimal.Decimal{
			enums.AgeBracket0To3:   decimal.NewFromInt(10000),
			enums.AgeBracket3To6:   decimal.NewFromInt(8000),
			enums.AgeBracket6To11:  decimal.NewFromInt(6000),
			enums.AgeBracket12Plus: decimal.NewFromInt(4000),
		},
		TierPcts: map[enums.ConditionTier]decimal.Decimal{
			enums.ConditionTierGood:         decimal.Zero,
			enums.ConditionTierAverage:      decimal.NewFromInt(10),
			enums.ConditionTierBelowAverage: decimal.NewFromInt(20),
		},
		ChargerDeduction: decimal.NewFromInt(200),
		BoxDeduction:     decimal.NewFromInt(100),
		BillDeduction:    decimal.NewFromInt(150),
	}
}

func allAccessories() Accessories {
	return Accessories{HasCharger: true, HasBox: true, HasBill: true}
}

func TestComputeFinalPriceAverageMissingBox(t *testing.T) {
	acc := allAccessories()
	acc.HasBox = false

	res := ComputeFinalPrice(testParams(), enums.AgeBracket0To3, enums.ConditionTierAverage, acc)

	if !res.ConditionDeduction.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected condition deduction 1000, got %s", res.ConditionDeduction)
	}
	if !res.AccessoryDeduction.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected accessory deduction 100, got %s", res.AccessoryDeduction)
	}
	if !res.FinalPrice.Equal(decimal.NewFromInt(8900)) {
		t.Fatalf("expected final price 8900, got %s", res.FinalPrice)
	}
}

func TestComputeFinalPriceZeroAgePriceShortCircuits(t *testing.T) {
	params := testParams()
	params.AgePrices[enums.AgeBracket12Plus] = decimal.Zero

	res := ComputeFinalPrice(params, enums.AgeBracket12Plus, enums.ConditionTierBelowAverage, Accessories{})

	if !res.FinalPrice.IsZero() {
		t.Fatalf("expected final price 0, got %s", res.FinalPrice)
	}
	if !res.ConditionDeduction.IsZero() || !res.AccessoryDeduction.IsZero() {
		t.Fatalf("expected zero deductions, got %s / %s", res.ConditionDeduction, res.AccessoryDeduction)
	}
}

func TestComputeFinalPriceMissingBracketIsZero(t *testing.T) {
	params := testParams()
	delete(params.AgePrices, enums.AgeBracket6To11)

	res := ComputeFinalPrice(params, enums.AgeBracket6To11, enums.ConditionTierGood, allAccessories())
	if !res.FinalPrice.IsZero() {
		t.Fatalf("expected final price 0 for missing bracket, got %s", res.FinalPrice)
	}
}

func TestComputeFinalPriceFloorsAtZero(t *testing.T) {
	params := testParams()
	params.AgePrices[enums.AgeBracket12Plus] = decimal.NewFromInt(300)

	res := ComputeFinalPrice(params, enums.AgeBracket12Plus, enums.ConditionTierBelowAverage, Accessories{})

	// 300 - 60 condition = 240, accessories 450 -> floor at zero.
	if !res.FinalPrice.IsZero() {
		t.Fatalf("expected floored final price 0, got %s", res.FinalPrice)
	}
	if !res.AccessoryDeduction.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("expected accessory deduction 450, got %s", res.AccessoryDeduction)
	}
}

func TestComputeFinalPriceClampsPctAbove100(t *testing.T) {
	params := testParams()
	params.TierPcts[enums.ConditionTierBelowAverage] = decimal.NewFromInt(140)

	res := ComputeFinalPrice(params, enums.AgeBracket0To3, enums.ConditionTierBelowAverage, allAccessories())

	if !res.ConditionDeduction.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected full condition deduction, got %s", res.ConditionDeduction)
	}
	if !res.FinalPrice.IsZero() {
		t.Fatalf("expected final price 0, got %s", res.FinalPrice)
	}
}

func TestComputeFinalPriceRoundsConditionDeductionHalfUp(t *testing.T) {
	params := testParams()
	params.AgePrices[enums.AgeBracket0To3] = decimal.NewFromFloat(1000.05)
	params.TierPcts[enums.ConditionTierAverage] = decimal.NewFromFloat(12.5)

	res := ComputeFinalPrice(params, enums.AgeBracket0To3, enums.ConditionTierAverage, allAccessories())

	// 1000.05 * 12.5% = 125.00625 -> 125.01
	if !res.ConditionDeduction.Equal(decimal.NewFromFloat(125.01)) {
		t.Fatalf("expected condition deduction 125.01, got %s", res.ConditionDeduction)
	}
	if !res.FinalPrice.Equal(decimal.NewFromFloat(875.04)) {
		t.Fatalf("expected final price 875.04, got %s", res.FinalPrice)
	}
}

func TestComputeFinalPriceNeverExceedsAgePrice(t *testing.T) {
	params := testParams()
	for _, bracket := range enums.AgeBrackets() {
		for _, tier := range []enums.ConditionTier{
			enums.ConditionTierGood,
			enums.ConditionTierAverage,
			enums.ConditionTierBelowAverage,
		} {
			for _, acc := range []Accessories{
				{},
				{HasCharger: true},
				{HasBox: true, HasBill: true},
				allAccessories(),
			} {
				res := ComputeFinalPrice(params, bracket, tier, acc)
				if res.FinalPrice.IsNegative() {
					t.Fatalf("negative final price for %s/%s: %s", bracket, tier, res.FinalPrice)
				}
				if res.FinalPrice.GreaterThan(params.AgePrices[bracket]) {
					t.Fatalf("final price %s exceeds age price %s for %s/%s",
						res.FinalPrice, params.AgePrices[bracket], bracket, tier)
				}
			}
		}
	}
}

func TestComputeFinalPriceMonotonicInTier(t *testing.T) {
	acc := allAccessories()
	good := ComputeFinalPrice(testParams(), enums.AgeBracket0To3, enums.ConditionTierGood, acc)
	average := ComputeFinalPrice(testParams(), enums.AgeBracket0To3, enums.ConditionTierAverage, acc)
	below := ComputeFinalPrice(testParams(), enums.AgeBracket0To3, enums.ConditionTierBelowAverage, acc)

	if good.FinalPrice.LessThan(average.FinalPrice) || average.FinalPrice.LessThan(below.FinalPrice) {
		t.Fatalf("expected good >= average >= below, got %s / %s / %s",
			good.FinalPrice, average.FinalPrice, below.FinalPrice)
	}
}

func TestComputeFinalPriceAccessoriesApplyIndependently(t *testing.T) {
	res := ComputeFinalPrice(testParams(), enums.AgeBracket0To3, enums.ConditionTierGood, Accessories{})
	if !res.AccessoryDeduction.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("expected 450 for all missing accessories, got %s", res.AccessoryDeduction)
	}

	res = ComputeFinalPrice(testParams(), enums.AgeBracket0To3, enums.ConditionTierGood, allAccessories())
	if !res.AccessoryDeduction.IsZero() {
		t.Fatalf("expected no accessory deduction, got %s", res.AccessoryDeduction)
	}
}

func TestComputeFinalPriceIdempotent(t *testing.T) {
	acc := Accessories{HasCharger: true}
	first := ComputeFinalPrice(testParams(), enums.AgeBracket3To6, enums.ConditionTierBelowAverage, acc)
	second := ComputeFinalPrice(testParams(), enums.AgeBracket3To6, enums.ConditionTierBelowAverage, acc)

	if !first.AgeAdjustedPrice.Equal(second.AgeAdjustedPrice) ||
		!first.ConditionDeduction.Equal(second.ConditionDeduction) ||
		!first.AccessoryDeduction.Equal(second.AccessoryDeduction) ||
		!first.FinalPrice.Equal(second.FinalPrice) {
		t.Fatalf("identical inputs must yield identical breakdowns, got %+v vs %+v", first, second)
	}
}
