package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasproto/oaserrors"
	"github.com/erraggy/oasproto/parser"
	"github.com/erraggy/oasproto/rewriter"
)

const sampleSpec = `openapi: 3.0.3
info: {title: sample, version: "1"}
paths: {}
components:
  schemas:
    SortOrder:
      type: string
      enum: [asc, desc]
    Query:
      type: object
      properties:
        sort:
          type: object
          minProperties: 1
          maxProperties: 1
          additionalProperties:
            $ref: '#/components/schemas/SortOrder'
        labels:
          type: object
          additionalProperties: true
`

// execute runs the root command with args and returns stdout, stderr and
// the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, _, err := execute(t, "", "rewrite", "--unknown-flag", "x.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUsage))
	assert.Contains(t, err.Error(), "unknown flag")
	assert.Contains(t, err.Error(), "Usage:")
}

func TestMissingArgumentIsUsageError(t *testing.T) {
	for _, cmd := range []string{"rewrite", "verify"} {
		_, _, err := execute(t, "", cmd)
		assert.True(t, errors.Is(err, ErrUsage), cmd)
	}
}

func TestRootShowsHelp(t *testing.T) {
	out, _, err := execute(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "rewrite")
	assert.Contains(t, out, "verify")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "oasproto dev\n", out)

	out, _, err = execute(t, "", "version", "--long")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Version:")
}

func TestRewriteToStdout(t *testing.T) {
	path := writeSpec(t, sampleSpec)
	out, stderr, err := execute(t, "", "rewrite", path)
	require.NoError(t, err)

	result, err := parser.ParseBytes([]byte(out))
	require.NoError(t, err)
	doc := result.Document
	boxed, ok := doc.ComponentSchema("SortOrderSingleMap")
	require.True(t, ok)
	assert.Contains(t, boxed.Properties, "field")
	assert.Empty(t, rewriter.Verify(doc))

	assert.Contains(t, stderr, "Specification: "+path)
	assert.Contains(t, stderr, "[single-map]")
	assert.Contains(t, stderr, "Generated Components (1):")
	assert.Contains(t, stderr, "✓ Applied")
}

func TestRewriteFlags(t *testing.T) {
	path := writeSpec(t, sampleSpec)
	outPath := filepath.Join(t.TempDir(), "out.json")

	stdout, stderr, err := execute(t, "", "rewrite",
		"--format", "json",
		"--single-map-suffix", "Entry",
		"--exempt", "Other",
		"-o", outPath,
		path)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Output written to: "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")))
	result, err := parser.ParseBytes(data)
	require.NoError(t, err)
	_, ok := result.Document.ComponentSchema("SortOrderEntry")
	assert.True(t, ok)
}

func TestRewriteExemptAndOnly(t *testing.T) {
	path := writeSpec(t, sampleSpec)
	out, _, err := execute(t, "", "rewrite", "-q", "--exempt", "Query.sort", "--only", "single-map", path)
	require.NoError(t, err)

	result, err := parser.ParseBytes([]byte(out))
	require.NoError(t, err)
	query, ok := result.Document.ComponentSchema("Query")
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/SortOrder", query.Properties["sort"].Ref)
	assert.NotNil(t, query.Properties["labels"].AdditionalProperties, "any-additional-properties was not enabled")
}

func TestRewriteStdin(t *testing.T) {
	out, stderr, err := execute(t, sampleSpec, "rewrite", "-q", "-")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, out, "SortOrderSingleMap")
}

func TestRewriteVerbose(t *testing.T) {
	path := writeSpec(t, sampleSpec)
	_, stderr, err := execute(t, "", "--verbose", "rewrite", "-q", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "phase=restructure")
}

func TestRewriteInvalidFlags(t *testing.T) {
	path := writeSpec(t, sampleSpec)
	tests := []struct {
		name string
		args []string
	}{
		{"format", []string{"--format", "toml"}},
		{"severity", []string{"--min-severity", "loud"}},
		{"rule", []string{"--only", "nope"}},
		{"suffix", []string{"--single-map-suffix", ""}},
		{"null type", []string{"--null-type", "null"}},
		{"overwrite input", []string{"-o", path}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"rewrite"}, tt.args...)
			_, _, err := execute(t, "", append(args, path)...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUsage), "got %v", err)
		})
	}
}

func TestRewriteStrict(t *testing.T) {
	conflicting := sampleSpec + `    SortOrderSingleMap:
      type: string
`
	path := writeSpec(t, conflicting)

	_, stderr, err := execute(t, "", "rewrite", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "✗")

	_, _, err = execute(t, "", "rewrite", "--strict", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skipped with errors")
}

func TestRewriteMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "rewrite", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUsage))
}

func TestRewriteErrorClassification(t *testing.T) {
	cfg := rewriteError(fmt.Errorf("rewriter: invalid options: %w", &oaserrors.ConfigError{Option: "WithSingleMapSuffix", Message: "suffix cannot be empty"}))
	assert.True(t, errors.Is(cfg, ErrUsage))

	cause := errors.New("phase restructure: boom")
	other := rewriteError(cause)
	assert.False(t, errors.Is(other, ErrUsage))
	assert.True(t, errors.Is(other, cause))
	assert.Contains(t, other.Error(), "rewriting")
}

func TestVerify(t *testing.T) {
	t.Run("violations", func(t *testing.T) {
		path := writeSpec(t, sampleSpec)
		out, _, err := execute(t, "", "verify", path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrViolations))
		assert.Contains(t, out, "[additional-properties]")
		assert.Contains(t, out, "✗ 1 violation\n")
	})

	t.Run("clean after rewrite", func(t *testing.T) {
		rewritten, _, err := execute(t, "", "rewrite", "-q", writeSpec(t, sampleSpec))
		require.NoError(t, err)

		out, _, err := execute(t, rewritten, "verify", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "✓ <stdin> satisfies every invariant")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, "", "verify", "--format", "json", writeSpec(t, sampleSpec))
		assert.True(t, errors.Is(err, ErrViolations))
		assert.Contains(t, out, `"rule": "additional-properties"`)
		assert.Contains(t, out, `"severity": "error"`)
	})

	t.Run("quiet", func(t *testing.T) {
		out, _, err := execute(t, "", "verify", "-q", writeSpec(t, sampleSpec))
		assert.True(t, errors.Is(err, ErrViolations))
		assert.Empty(t, out)
	})

	t.Run("bad format", func(t *testing.T) {
		_, _, err := execute(t, "", "verify", "--format", "xml", "x.yaml")
		assert.True(t, errors.Is(err, ErrUsage))
	})
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.yaml")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))
	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.Symlink(target, link))

	assert.Error(t, RejectSymlinkOutput(link))
	assert.NoError(t, RejectSymlinkOutput(target))
	assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "new.yaml")))
}

func TestValidateOutputPathWarnsOnExisting(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, ValidateOutputPath(&buf, existing, StdinFilePath))
	assert.Contains(t, buf.String(), "already exists")
}

func TestOutputStructured(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputStructured(&buf, map[string]int{"a": 1}, FormatYAML))
	assert.Equal(t, "a: 1\n", buf.String())
	assert.Error(t, OutputStructured(io.Discard, 1, FormatText))
}
