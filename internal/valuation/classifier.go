package valuation

import "github.com/recellhq/recell-backend/pkg/enums"

// ConditionSignals is the customer's multi-factor condition declaration.
// Boolean fields are phrased so true means healthy.
type ConditionSignals struct {
	PowersOn       bool                 `json:"powers_on"`
	MakesCalls     bool                 `json:"makes_calls"`
	TouchWorks     bool                 `json:"touch_works"`
	OriginalScreen bool                 `json:"original_screen"`
	BatteryHealthy bool                 `json:"battery_healthy"`
	DisplayGrade   enums.ConditionGrade `json:"display_grade"`
	BodyGrade      enums.ConditionGrade `json:"body_grade"`
}

// NegativeCount tallies how many signals count against the device.
func (s ConditionSignals) NegativeCount() int {
	count := 0
	if !s.MakesCalls {
		count++
	}
	if !s.TouchWorks {
		count++
	}
	if !s.OriginalScreen {
		count++
	}
	if !s.BatteryHealthy {
		count++
	}
	if s.DisplayGrade.IsNegative() {
		count++
	}
	if s.BodyGrade.IsNegative() {
		count++
	}
	return count
}

// Classify maps raw condition signals onto a deduction tier. A device that
// does not power on is below average no matter what else is declared.
func Classify(signals ConditionSignals) enums.ConditionTier {
	if !signals.PowersOn {
		return enums.ConditionTierBelowAverage
	}
	switch negatives := signals.NegativeCount(); {
	case negatives == 0:
		return enums.ConditionTierGood
	case negatives <= 2:
		return enums.ConditionTierAverage
	default:
		return enums.ConditionTierBelowAverage
	}
}
