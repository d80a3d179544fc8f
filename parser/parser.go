package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasproto/oaserrors"
)

// Parser handles OpenAPI specification parsing
type Parser struct {
	// UpgradeSwagger converts Swagger 2.0 input to OpenAPI 3 on load.
	// When false, a Swagger 2.0 document is rejected with a ParseError.
	UpgradeSwagger bool
	// Logger receives debug output. Defaults to NopLogger.
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		UpgradeSwagger: true,
	}
}

func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source OpenAPI specification file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
)

// ParseResult contains the parsed OpenAPI document and metadata about its
// source.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// If the source was not a file, this is the name of the method and ends
	// in '.yaml' or '.json' based on the detected format.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the declared version of the source ("2.0", "3.0.3", "3.1.0")
	Version string
	// Upgraded is true when a Swagger 2.0 source was converted to OpenAPI 3
	Upgraded bool
	// Document is the parsed OpenAPI 3.x document
	Document *Document
	// Warnings contains non-fatal issues found while loading
	Warnings []string
	// LoadTime is the time taken to read and decode the source
	LoadTime time.Duration
}

// ParseFile parses a file with default settings.
func ParseFile(path string) (*ParseResult, error) {
	return New().Parse(path)
}

// ParseBytes parses a byte slice with default settings.
func ParseBytes(data []byte) (*ParseResult, error) {
	return New().ParseBytes(data)
}

// ParseReader parses the contents of r with default settings.
func ParseReader(r io.Reader) (*ParseResult, error) {
	return New().ParseReader(r)
}

// Parse parses an OpenAPI specification file.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	start := time.Now()
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	res, err := p.parseBytes(data, specPath)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	res.LoadTime = time.Since(start)
	return res, nil
}

// ParseReader parses an OpenAPI specification from an io.Reader.
// SourcePath is set to ParseReader.yaml or ParseReader.json.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parseBytes(data, "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	res.LoadTime = time.Since(start)
	return res, nil
}

// ParseBytes parses an OpenAPI specification from a byte slice.
// SourcePath is set to ParseBytes.yaml or ParseBytes.json.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	start := time.Now()
	res, err := p.parseBytes(data, "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	res.LoadTime = time.Since(start)
	return res, nil
}

func (p *Parser) parseBytes(data []byte, source string) (*ParseResult, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.ParseError{Path: source, Message: "empty document"}
	}

	format := detectFormat(data, source)
	raw, err := decodeRaw(data, format)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "failed to decode " + string(format), Cause: err}
	}

	result := &ParseResult{SourceFormat: format}

	switch {
	case isOpenAPI3(raw):
		result.Version, _ = getString(raw["openapi"])
		result.Document = decodeDocument(raw)
	case isSwagger2(raw):
		result.Version, _ = getString(raw["swagger"])
		if !p.UpgradeSwagger {
			return nil, &oaserrors.ParseError{Path: source, Message: "Swagger 2.0 input requires UpgradeSwagger"}
		}
		doc, err := upgradeSwagger(raw)
		if err != nil {
			return nil, err
		}
		result.Document = doc
		result.Upgraded = true
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("upgraded Swagger %s document to OpenAPI %s", result.Version, doc.OpenAPI))
	default:
		return nil, &oaserrors.ParseError{Path: source, Message: "missing 'openapi' or 'swagger' version field"}
	}

	p.log().Debug("parsed document",
		"source", source,
		"format", string(format),
		"version", result.Version,
		"schemas", len(result.Document.SchemaNames()))

	return result, nil
}

// detectFormat guesses the format from the file extension, falling back
// to sniffing the first non-space byte.
func detectFormat(data []byte, source string) SourceFormat {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

func decodeRaw(data []byte, format SourceFormat) (map[string]any, error) {
	var raw map[string]any
	if format == SourceFormatJSON {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("document is not a mapping")
	}
	return raw, nil
}

func isOpenAPI3(raw map[string]any) bool {
	v, ok := getString(raw["openapi"])
	return ok && strings.HasPrefix(v, "3.")
}

func isSwagger2(raw map[string]any) bool {
	v, ok := getString(raw["swagger"])
	return ok && strings.HasPrefix(v, "2.")
}

// Encode serializes a document as YAML or JSON. JSON output is indented
// with two spaces.
func Encode(doc *Document, format SourceFormat) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("parser: cannot encode nil document")
	}
	if format == SourceFormatJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("parser: encoding json: %w", err)
		}
		return append(data, '\n'), nil
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("parser: encoding yaml: %w", err)
	}
	return data, nil
}
