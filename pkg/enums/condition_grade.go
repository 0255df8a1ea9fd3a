package enums

import "fmt"

// ConditionGrade is a raw per-signal grade for display and body condition.
type ConditionGrade string

const (
	ConditionGradeExcellent ConditionGrade = "excellent"
	ConditionGradeGood      ConditionGrade = "good"
	ConditionGradeFair      ConditionGrade = "fair"
	ConditionGradePoor      ConditionGrade = "poor"
)

var validConditionGrades = []ConditionGrade{
	ConditionGradeExcellent,
	ConditionGradeGood,
	ConditionGradeFair,
	ConditionGradePoor,
}

// String implements fmt.Stringer.
func (g ConditionGrade) String() string {
	return string(g)
}

// IsValid reports whether the grade is recognized.
func (g ConditionGrade) IsValid() bool {
	for _, candidate := range validConditionGrades {
		if candidate == g {
			return true
		}
	}
	return false
}

// IsNegative reports whether the grade counts as a negative condition signal.
func (g ConditionGrade) IsNegative() bool {
	return g != ConditionGradeExcellent && g != ConditionGradeGood
}

// ParseConditionGrade converts a raw string into a ConditionGrade.
func ParseConditionGrade(value string) (ConditionGrade, error) {
	for _, candidate := range validConditionGrades {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid condition grade %q", value)
}
