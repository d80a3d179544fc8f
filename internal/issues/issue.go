// Package issues provides the diagnostic record shared by the rewriter and
// the invariant verifier.
package issues

import (
	"fmt"

	"github.com/erraggy/oasproto/internal/severity"
)

// Issue is a single note about a location in a document.
type Issue struct {
	// Path is the JSON pointer of the node (e.g., "#/components/schemas/Pet").
	Path string `json:"path" yaml:"path"`
	// Rule names the rewrite or invariant that produced the issue.
	Rule string `json:"rule,omitempty" yaml:"rule,omitempty"`
	// Message is a human-readable description of the issue.
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue.
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Err is the underlying error, if any.
	Err error `json:"-" yaml:"-"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	if i.Rule != "" {
		return fmt.Sprintf("%s %s [%s]: %s", symbol, i.Path, i.Rule, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
}

// Unwrap returns the underlying error.
func (i Issue) Unwrap() error {
	return i.Err
}

// CountBySeverity counts issues at each level.
func CountBySeverity(list []Issue) map[severity.Severity]int {
	counts := make(map[severity.Severity]int)
	for _, i := range list {
		counts[i.Severity]++
	}
	return counts
}

// HasAtLeast reports whether any issue is at min severity or above.
func HasAtLeast(list []Issue, min severity.Severity) bool {
	for _, i := range list {
		if i.Severity.AtLeast(min) {
			return true
		}
	}
	return false
}
