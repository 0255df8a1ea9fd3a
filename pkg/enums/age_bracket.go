package enums

import "fmt"

// AgeBracket represents the declared age range of a device being sold back.
type AgeBracket string

const (
	AgeBracket0To3   AgeBracket = "0_3"
	AgeBracket3To6   AgeBracket = "3_6"
	AgeBracket6To11  AgeBracket = "6_11"
	AgeBracket12Plus AgeBracket = "12_plus"
)

var validAgeBrackets = []AgeBracket{
	AgeBracket0To3,
	AgeBracket3To6,
	AgeBracket6To11,
	AgeBracket12Plus,
}

// String implements fmt.Stringer.
func (a AgeBracket) String() string {
	return string(a)
}

// IsValid reports whether the bracket is recognized.
func (a AgeBracket) IsValid() bool {
	for _, candidate := range validAgeBrackets {
		if candidate == a {
			return true
		}
	}
	return false
}

// Ordinal returns the bracket position, oldest bracket last.
func (a AgeBracket) Ordinal() int {
	for i, candidate := range validAgeBrackets {
		if candidate == a {
			return i
		}
	}
	return -1
}

// AgeBrackets returns all brackets in ascending age order.
func AgeBrackets() []AgeBracket {
	out := make([]AgeBracket, len(validAgeBrackets))
	copy(out, validAgeBrackets)
	return out
}

// ParseAgeBracket converts a raw string into an AgeBracket.
func ParseAgeBracket(value string) (AgeBracket, error) {
	for _, candidate := range validAgeBrackets {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid age bracket %q", value)
}
