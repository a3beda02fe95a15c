package command

import (
	"fmt"
	"strings"
)

// Policy decides what happens to a stream URL that cannot be placed in single quotes verbatim.
type Policy string

const (
	// Reject refuses such URLs with ErrUnsafeInput.
	Reject Policy = "reject"
	// Escape quotes them with POSIX shell escaping instead.
	Escape Policy = "escape"
)

// ParsePolicy validates a configured policy name. Empty means Reject.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case Reject, "":
		return Reject, nil
	case Escape:
		return Escape, nil
	default:
		return Reject, fmt.Errorf("unknown quote policy %q", s)
	}
}
