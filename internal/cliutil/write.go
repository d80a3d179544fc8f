// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oasproto/internal/issues"
	"github.com/erraggy/oasproto/internal/severity"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteIssues prints one line per issue at min severity or above and
// returns how many were printed.
func WriteIssues(w io.Writer, list []issues.Issue, min severity.Severity) int {
	n := 0
	for _, i := range list {
		if !i.Severity.AtLeast(min) {
			continue
		}
		Writef(w, "%s\n", i.String())
		n++
	}
	return n
}

// Plural returns word with an "s" appended unless n is 1.
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
