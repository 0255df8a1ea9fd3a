package enums

import "fmt"

// ConditionTier is the coarse condition classification used in deduction lookup.
type ConditionTier string

const (
	ConditionTierGood         ConditionTier = "good"
	ConditionTierAverage      ConditionTier = "average"
	ConditionTierBelowAverage ConditionTier = "below_average"
)

var validConditionTiers = []ConditionTier{
	ConditionTierGood,
	ConditionTierAverage,
	ConditionTierBelowAverage,
}

// String implements fmt.Stringer.
func (c ConditionTier) String() string {
	return string(c)
}

// IsValid reports whether the tier is recognized.
func (c ConditionTier) IsValid() bool {
	for _, candidate := range validConditionTiers {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseConditionTier converts a raw string into a ConditionTier.
func ParseConditionTier(value string) (ConditionTier, error) {
	for _, candidate := range validConditionTiers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid condition tier %q", value)
}
