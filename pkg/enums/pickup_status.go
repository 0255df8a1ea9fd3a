package enums

import "fmt"

// PickupStatus tracks the lifecycle of a pickup request.
type PickupStatus string

const (
	PickupStatusPending   PickupStatus = "pending"
	PickupStatusConfirmed PickupStatus = "confirmed"
	PickupStatusPickedUp  PickupStatus = "picked_up"
	PickupStatusCancelled PickupStatus = "cancelled"
)

var validPickupStatuses = []PickupStatus{
	PickupStatusPending,
	PickupStatusConfirmed,
	PickupStatusPickedUp,
	PickupStatusCancelled,
}

var pickupStatusTransitions = map[PickupStatus][]PickupStatus{
	PickupStatusPending:   {PickupStatusConfirmed, PickupStatusCancelled},
	PickupStatusConfirmed: {PickupStatusPickedUp, PickupStatusCancelled},
	PickupStatusPickedUp:  {},
	PickupStatusCancelled: {},
}

// String implements fmt.Stringer.
func (s PickupStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is recognized.
func (s PickupStatus) IsValid() bool {
	for _, candidate := range validPickupStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether the status may move to next.
func (s PickupStatus) CanTransitionTo(next PickupStatus) bool {
	for _, candidate := range pickupStatusTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status allows no further transitions.
func (s PickupStatus) IsTerminal() bool {
	return len(pickupStatusTransitions[s]) == 0
}

// ParsePickupStatus converts a raw string into a PickupStatus.
func ParsePickupStatus(value string) (PickupStatus, error) {
	for _, candidate := range validPickupStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pickup status %q", value)
}
