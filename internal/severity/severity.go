// Package severity provides the severity levels attached to rewrite
// diagnostics and verifier findings.
//
// The levels are ordered from least to most severe:
// Info < Warning < Error
package severity

import (
	"fmt"
	"strings"
)

// Severity indicates how much attention a diagnostic needs.
type Severity int

const (
	// SeverityInfo marks a notice about a choice the rewriter made.
	SeverityInfo Severity = iota

	// SeverityWarning marks a rewrite that was skipped, for example because
	// a reference could not be resolved. The document is still usable.
	SeverityWarning

	// SeverityError marks a condition that leaves the output short of the
	// protobuf-ready shape, such as a generated name colliding with an
	// existing component.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities render by
// name in JSON and YAML reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AtLeast reports whether s is as severe as min or more.
func (s Severity) AtLeast(min Severity) bool {
	return s >= min
}

// Parse converts a level name to a Severity. Matching is case-insensitive.
func Parse(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q", name)
	}
}
