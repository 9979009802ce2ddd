package core

import (
	"fmt"
	"strings"
)

// Status is the outcome of an attendance evaluation.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusAbsent  Status = "ABSENT"
)

// Valid returns true when the status is one of the three supported values.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent:
		return true
	default:
		return false
	}
}

// ParseStatus maps a stored string to a Status, rejecting anything outside
// the closed set.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown attendance status %q", s)
	}
	return st, nil
}

// PolicyKind names which evaluation policy a group is configured with.
type PolicyKind string

const (
	PolicyKindPresent PolicyKind = "PRESENT"
	PolicyKindLate    PolicyKind = "LATE"
	PolicyKindAbsent  PolicyKind = "ABSENT"
)

// Valid returns true when the kind is one of the three supported values.
func (k PolicyKind) Valid() bool {
	switch k {
	case PolicyKindPresent, PolicyKindLate, PolicyKindAbsent:
		return true
	default:
		return false
	}
}

// ParsePolicyKind maps a stored string to a PolicyKind. An empty value
// defaults to LATE so groups created before the field existed keep the
// behaviour they always had; any other unrecognized value is an error so
// configuration corruption surfaces immediately instead of at marking time.
func ParsePolicyKind(s string) (PolicyKind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return PolicyKindLate, nil
	}
	k := PolicyKind(strings.ToUpper(trimmed))
	if !k.Valid() {
		return "", fmt.Errorf("unknown policy kind %q", s)
	}
	return k, nil
}
