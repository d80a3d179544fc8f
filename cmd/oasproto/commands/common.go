package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasproto/internal/cliutil"
	"github.com/erraggy/oasproto/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat returns an error unless format is one of valid.
func ValidateOutputFormat(format string, valid ...string) error {
	if slices.Contains(valid, format) {
		return nil
	}
	return newUsageError(fmt.Sprintf("invalid format '%s'. Valid formats: %v", format, valid))
}

// OutputStructured writes data to w as indented JSON or YAML.
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = w.Write(out)
	return err
}

// ValidateOutputPath checks that the output path does not overwrite an
// input, and warns on stderr when it replaces an existing file.
func ValidateOutputPath(stderr io.Writer, outputPath string, inputPaths ...string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return newUsageError(fmt.Sprintf("output file %s would overwrite input file %s", outputPath, inputPath))
		}
	}

	if err := RejectSymlinkOutput(filepath.Clean(outputPath)); err != nil {
		return err
	}
	if _, err := os.Stat(outputPath); err == nil {
		cliutil.Writef(stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}
	return nil
}

// RejectSymlinkOutput returns an error if cleanedPath is a symlink.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatSpecPath returns "<stdin>" for StdinFilePath and the path otherwise.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// parseSource loads specPath, or stdin when it is StdinFilePath.
func parseSource(stdin io.Reader, specPath string, log parser.Logger) (*parser.ParseResult, error) {
	src := parser.WithFilePath(specPath)
	if specPath == StdinFilePath {
		src = parser.WithReader(stdin)
	}
	result, err := parser.ParseWithOptions(src, parser.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}
	return result, nil
}

// writeOutput writes data to outputPath, or to stdout when it is empty.
func writeOutput(stdout io.Writer, outputPath string, data []byte) error {
	if outputPath == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("writing document to stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
