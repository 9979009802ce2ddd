package core

import (
	"fmt"
	"log"
)

const (
	// Tolerance bounds enforced at configuration time and re-checked when a
	// policy is resolved.
	MinToleranceMinutes     = 0
	MaxToleranceMinutes     = 60
	DefaultToleranceMinutes = 10

	// Lateness beyond tolerance*AbsentMultiplier counts as absent under the
	// late policy.
	AbsentMultiplier = 3

	// Fixed margins for the margin policy. Tolerance is ignored there.
	MarginPresentMinutes = 10
	MarginLateMinutes    = 30
)

// Policy maps a check-in time, a scheduled start time and a tolerance (in
// minutes) to an attendance status. Implementations are total: malformed
// input is logged and mapped to the variant's safe default, it never
// escapes as an error or a panic.
type Policy interface {
	Evaluate(checkIn, start string, toleranceMinutes int) Status
}

// LatePolicy is the parameterized default. Within tolerance (or early) is
// present, up to three times the tolerance is late, beyond that is absent.
type LatePolicy struct{}

func (LatePolicy) Evaluate(checkIn, start string, toleranceMinutes int) Status {
	diff, err := Difference(checkIn, start)
	if err != nil {
		// A timestamp we can't read must never grant presence.
		log.Printf("late policy: %v, defaulting to %s", err, StatusAbsent)
		return StatusAbsent
	}

	switch {
	case diff > toleranceMinutes*AbsentMultiplier:
		return StatusAbsent
	case diff > toleranceMinutes:
		return StatusLate
	default:
		return StatusPresent
	}
}

// PresentPolicy marks everyone present regardless of timing. Used by groups
// with no punctuality enforcement. Malformed input changes nothing since
// the outcome is constant.
type PresentPolicy struct{}

func (PresentPolicy) Evaluate(checkIn, start string, toleranceMinutes int) Status {
	return StatusPresent
}

// MarginPolicy grades against fixed 10/30 minute margins and ignores the
// group tolerance: up to 10 minutes late is present, 11-30 is late, more is
// absent.
type MarginPolicy struct{}

func (MarginPolicy) Evaluate(checkIn, start string, toleranceMinutes int) Status {
	diff, err := Difference(checkIn, start)
	if err != nil {
		log.Printf("margin policy: %v, defaulting to %s", err, StatusAbsent)
		return StatusAbsent
	}

	switch {
	case diff > MarginLateMinutes:
		return StatusAbsent
	case diff > MarginPresentMinutes:
		return StatusLate
	default:
		return StatusPresent
	}
}

// SelectPolicy resolves a group's configured kind to a concrete policy.
// An unknown kind is an error rather than a silent default.
func SelectPolicy(kind PolicyKind) (Policy, error) {
	switch kind {
	case PolicyKindPresent:
		return PresentPolicy{}, nil
	case PolicyKindLate:
		return LatePolicy{}, nil
	case PolicyKindAbsent:
		return MarginPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown policy kind %q", kind)
	}
}

// ValidateTolerance rejects tolerances outside the configured bounds.
func ValidateTolerance(minutes int) error {
	if minutes < MinToleranceMinutes || minutes > MaxToleranceMinutes {
		return fmt.Errorf("tolerance %d out of range [%d,%d]",
			minutes, MinToleranceMinutes, MaxToleranceMinutes)
	}
	return nil
}
