package cliutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasproto/internal/issues"
	"github.com/erraggy/oasproto/internal/severity"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d items, %v active", "Status", 42, true)
	assert.Equal(t, "Status: 42 items, true active", buf.String())
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() { Writef(errorWriter{}, "This will fail") })
}

func TestWriteIssues(t *testing.T) {
	list := []issues.Issue{
		{Path: "#/a", Message: "generated", Severity: severity.SeverityInfo},
		{Path: "#/b", Message: "skipped", Severity: severity.SeverityWarning},
	}

	var buf bytes.Buffer
	n := WriteIssues(&buf, list, severity.SeverityWarning)
	assert.Equal(t, 1, n)
	assert.Equal(t, "⚠ #/b: skipped\n", buf.String())

	buf.Reset()
	assert.Equal(t, 2, WriteIssues(&buf, list, severity.SeverityInfo))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "rewrite", Plural(1, "rewrite"))
	assert.Equal(t, "rewrites", Plural(0, "rewrite"))
	assert.Equal(t, "rewrites", Plural(3, "rewrite"))
}
