package projectile

import (
	"fmt"
	"strings"
)

// UnitSystem selects display labels. The formulas are unit-agnostic.
type UnitSystem string

// Supported unit systems.
const (
	SI UnitSystem = "SI"
	US UnitSystem = "US"
)

// ParseUnitSystem accepts "SI" or "US" in any case.
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch u := UnitSystem(strings.ToUpper(strings.TrimSpace(s))); u {
	case SI, US:
		return u, nil
	default:
		return "", fmt.Errorf("%w: unknown unit system %q (want SI or US)", ErrInvalidInput, s)
	}
}

// Velocity returns the speed label. Anything other than SI is labelled in feet.
func (u UnitSystem) Velocity() string {
	if u == SI {
		return "m/s"
	}
	return "ft/s"
}

// Acceleration returns the gravity label.
func (u UnitSystem) Acceleration() string {
	if u == SI {
		return "m/s^2"
	}
	return "ft/s^2"
}

// Time returns the time label, seconds in both systems.
func (u UnitSystem) Time() string { return "s" }

// Length returns the distance label.
func (u UnitSystem) Length() string {
	if u == SI {
		return "m"
	}
	return "ft"
}
