package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Org-scoped serial numbers are human-readable identifiers like "CL-0007"
// or "DL-0042": a fixed prefix, a dash, and a zero-padded counter that is
// allocated per organization.

// FormatSerial renders a serial number with the given prefix.
func FormatSerial(prefix string, serial int) string {
	return fmt.Sprintf("%s-%04d", prefix, serial)
}

// ParseSerial extracts the numeric part of a serial number. It tolerates
// any prefix so renumbered organizations keep working.
func ParseSerial(value string) (int, error) {
	idx := strings.LastIndex(value, "-")
	if idx < 0 || idx == len(value)-1 {
		return 0, fmt.Errorf("malformed serial %q", value)
	}
	n, err := strconv.Atoi(value[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("malformed serial %q: %w", value, err)
	}
	return n, nil
}
