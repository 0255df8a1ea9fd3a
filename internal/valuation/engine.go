package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/recellhq/recell-backend/pkg/enums"
)

var oneHundred = decimal.NewFromInt(100)

// PricingParams is the fully resolved parameter set for one variant: every
// deduction field is present, catalog resolution has already applied defaults.
type PricingParams struct {
	AgePrices map[enums.AgeBracket]decimal.Decimal
	TierPcts  map[enums.ConditionTier]decimal.Decimal

	ChargerDeduction decimal.Decimal
	BoxDeduction     decimal.Decimal
	BillDeduction    decimal.Decimal
}

// Accessories declares which items accompany the device. A missing item
// triggers its flat deduction.
type Accessories struct {
	HasCharger bool `json:"has_charger"`
	HasBox     bool `json:"has_box"`
	HasBill    bool `json:"has_bill"`
}

// Result is the full payout breakdown, kept so it can be frozen and audited.
type Result struct {
	AgeAdjustedPrice   decimal.Decimal `json:"age_adjusted_price"`
	ConditionDeduction decimal.Decimal `json:"condition_deduction"`
	AccessoryDeduction decimal.Decimal `json:"accessory_deduction"`
	FinalPrice         decimal.Decimal `json:"final_price"`
}

// ComputeFinalPrice runs the deterministic valuation sequence:
// age-tier lookup, percentage condition deduction, flat accessory
// deductions, then a zero floor. It is pure; persistence and parameter
// resolution happen elsewhere.
func ComputeFinalPrice(params PricingParams, bracket enums.AgeBracket, tier enums.ConditionTier, acc Accessories) Result {
	ageAdjusted := params.AgePrices[bracket]
	if !ageAdjusted.IsPositive() {
		return Result{
			AgeAdjustedPrice:   decimal.Zero.Round(2),
			ConditionDeduction: decimal.Zero.Round(2),
			AccessoryDeduction: decimal.Zero.Round(2),
			FinalPrice:         decimal.Zero.Round(2),
		}
	}

	pct := params.TierPcts[tier]
	if pct.IsNegative() {
		pct = decimal.Zero
	}
	if pct.GreaterThan(oneHundred) {
		pct = oneHundred
	}

	// Round half up to 2 decimals; amounts are never negative here, so
	// decimal's round-half-away-from-zero is exactly round-half-up.
	conditionDeduction := ageAdjusted.Mul(pct).Div(oneHundred).Round(2)
	priceAfterCondition := ageAdjusted.Sub(conditionDeduction)

	accessoryDeduction := decimal.Zero
	if !acc.HasCharger {
		accessoryDeduction = accessoryDeduction.Add(params.ChargerDeduction)
	}
	if !acc.HasBox {
		accessoryDeduction = accessoryDeduction.Add(params.BoxDeduction)
	}
	if !acc.HasBill {
		accessoryDeduction = accessoryDeduction.Add(params.BillDeduction)
	}

	finalPrice := priceAfterCondition.Sub(accessoryDeduction)
	if finalPrice.IsNegative() {
		finalPrice = decimal.Zero
	}

	return Result{
		AgeAdjustedPrice:   ageAdjusted.Round(2),
		ConditionDeduction: conditionDeduction,
		AccessoryDeduction: accessoryDeduction.Round(2),
		FinalPrice:         finalPrice.Round(2),
	}
}
