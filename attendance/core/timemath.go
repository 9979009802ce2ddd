package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockLayout is the wire format for times of day throughout the app ("08:05").
// Fixed-width 24h means lexicographic comparison of two values agrees with
// chronological order, which the eligibility check relies on.
const ClockLayout = "15:04"

// ToMinutes converts an "HH:mm" string to minutes since midnight.
func ToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:mm", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: bad hour: %w", clock, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: bad minute: %w", clock, err)
	}

	return hour*60 + minute, nil
}

// NormalizeClock checks a clock string against the 24h day and returns it
// zero padded. Lexicographic ordering only agrees with chronological
// ordering on the padded form, so every stored time goes through here.
func NormalizeClock(clock string) (string, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid clock time %q: expected HH:mm", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid clock time %q: bad hour: %w", clock, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid clock time %q: bad minute: %w", clock, err)
	}
	if hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid clock time %q: hour out of range", clock)
	}
	if minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid clock time %q: minute out of range", clock)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// Difference returns checkIn minus start in minutes. Positive means the
// student arrived after the scheduled start, negative means before it.
func Difference(checkIn, start string) (int, error) {
	in, err := ToMinutes(checkIn)
	if err != nil {
		return 0, err
	}
	ref, err := ToMinutes(start)
	if err != nil {
		return 0, err
	}
	return in - ref, nil
}

// FormatClock renders a time.Time as "HH:mm" in its own location.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}
