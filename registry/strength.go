package registry

import (
	"fmt"
	"strings"
)

// Strength ranks how trustworthy an observation is when arbitrating overwrites.
type Strength int

const (
	// Fallback observations come from request-completion events and only fill gaps.
	Fallback Strength = iota
	// Primary observations come from request-initiation events and always win.
	Primary
)

func (s Strength) String() string {
	switch s {
	case Primary:
		return "primary"
	case Fallback:
		return "fallback"
	default:
		return fmt.Sprintf("strength(%d)", int(s))
	}
}

// ParseStrength maps the wire names "primary" and "fallback" to a Strength.
func ParseStrength(s string) (Strength, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "":
		return Primary, nil
	case "fallback":
		return Fallback, nil
	default:
		return Fallback, fmt.Errorf("unknown observation phase %q", s)
	}
}
