package rewriter

import (
	"fmt"

	"github.com/erraggy/oasproto/oaserrors"
	"github.com/erraggy/oasproto/parser"
)

// Option is a function that configures a rewrite operation
type Option func(*rewriteConfig) error

// rewriteConfig holds configuration for a rewrite operation
type rewriteConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	bytes    []byte
	document *parser.Document
	parsed   *parser.ParseResult

	exemptions      []string
	suffix          string
	nullTypeName    string
	wrapperKey      string
	style           SingleMapStyle
	enabledRewrites []RewriteType
	logger          parser.Logger
}

// RewriteWithOptions rewrites an OpenAPI document using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := rewriter.RewriteWithOptions(
//	    rewriter.WithFilePath("openapi.yaml"),
//	    rewriter.WithSingleMapExemptions("LegacyFilter"),
//	)
func RewriteWithOptions(opts ...Option) (*RewriteResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("rewriter: invalid options: %w", err)
	}

	rw := &Rewriter{
		SingleMapExemptions: cfg.exemptions,
		SingleMapSuffix:     cfg.suffix,
		NullTypeName:        cfg.nullTypeName,
		DefaultWrapperKey:   cfg.wrapperKey,
		SingleMapStyle:      cfg.style,
		EnabledRewrites:     cfg.enabledRewrites,
		Logger:              cfg.logger,
	}

	if cfg.document != nil {
		return rw.Rewrite(cfg.document)
	}
	if cfg.parsed != nil {
		return rw.RewriteParsed(cfg.parsed)
	}

	p := parser.New()
	p.Logger = cfg.logger
	var parsed *parser.ParseResult
	if cfg.filePath != nil {
		parsed, err = p.Parse(*cfg.filePath)
	} else {
		parsed, err = p.ParseBytes(cfg.bytes)
	}
	if err != nil {
		return nil, fmt.Errorf("rewriter: failed to parse specification: %w", err)
	}
	return rw.RewriteParsed(parsed)
}

// RewriteParsed rewrites an already-parsed document and carries its source
// metadata and load warnings into the result.
func (rw *Rewriter) RewriteParsed(parsed *parser.ParseResult) (*RewriteResult, error) {
	if parsed == nil || parsed.Document == nil {
		return nil, fmt.Errorf("rewriter: specification could not be parsed (nil document)")
	}
	result, err := rw.Rewrite(parsed.Document)
	if err != nil {
		return nil, err
	}
	result.SourcePath = parsed.SourcePath
	result.SourceFormat = parsed.SourceFormat
	for _, w := range parsed.Warnings {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{Path: "#", Message: w, Severity: SeverityInfo})
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*rewriteConfig, error) {
	cfg := &rewriteConfig{
		suffix:       DefaultSingleMapSuffix,
		nullTypeName: DefaultNullTypeName,
		wrapperKey:   DefaultWrapperProperty,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.bytes != nil {
		sources++
	}
	if cfg.document != nil {
		sources++
	}
	if cfg.parsed != nil {
		sources++
	}

	if sources == 0 {
		return nil, &oaserrors.ConfigError{Option: "input", Message: "no input source specified: use WithFilePath, WithBytes, WithDocument or WithParsed"}
	}
	if sources > 1 {
		return nil, &oaserrors.ConfigError{Option: "input", Value: sources, Message: "multiple input sources specified"}
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *rewriteConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "WithFilePath", Message: "file path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies YAML or JSON content as the input source
func WithBytes(data []byte) Option {
	return func(cfg *rewriteConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithDocument specifies an in-memory document, rewritten in place
func WithDocument(doc *parser.Document) Option {
	return func(cfg *rewriteConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "WithDocument", Message: "document cannot be nil"}
		}
		cfg.document = doc
		return nil
	}
}

// WithParsed specifies a parse result as the input source. Its document
// is rewritten in place and its warnings become diagnostics.
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *rewriteConfig) error {
		if result == nil || result.Document == nil {
			return &oaserrors.ConfigError{Option: "WithParsed", Message: "parse result has no document"}
		}
		cfg.parsed = result
		return nil
	}
}

// WithSingleMapExemptions sets the contexts that keep a plain reference
// instead of a generated single-map wrapper
func WithSingleMapExemptions(contexts ...string) Option {
	return func(cfg *rewriteConfig) error {
		cfg.exemptions = append(cfg.exemptions, contexts...)
		return nil
	}
}

// WithSingleMapSuffix sets the suffix of generated single-map components
func WithSingleMapSuffix(suffix string) Option {
	return func(cfg *rewriteConfig) error {
		if suffix == "" {
			return &oaserrors.ConfigError{Option: "WithSingleMapSuffix", Message: "suffix cannot be empty"}
		}
		cfg.suffix = suffix
		return nil
	}
}

// WithNullTypeName sets the type name substituted for null
func WithNullTypeName(name string) Option {
	return func(cfg *rewriteConfig) error {
		if name == "" || name == "null" {
			return &oaserrors.ConfigError{Option: "WithNullTypeName", Value: name, Message: "must be a non-null type name"}
		}
		cfg.nullTypeName = name
		return nil
	}
}

// WithDefaultWrapperKey sets the property name used to wrap an untitled
// primitive during field injection
func WithDefaultWrapperKey(key string) Option {
	return func(cfg *rewriteConfig) error {
		if key == "" {
			return &oaserrors.ConfigError{Option: "WithDefaultWrapperKey", Message: "key cannot be empty"}
		}
		cfg.wrapperKey = key
		return nil
	}
}

// WithSingleMapStyle selects boxed or injected single-map output
func WithSingleMapStyle(style SingleMapStyle) Option {
	return func(cfg *rewriteConfig) error {
		if style != SingleMapBoxed && style != SingleMapInjected {
			return &oaserrors.ConfigError{Option: "WithSingleMapStyle", Value: int(style), Message: "unknown style"}
		}
		cfg.style = style
		return nil
	}
}

// WithEnabledRewrites restricts the run to the given rules
func WithEnabledRewrites(types ...RewriteType) Option {
	return func(cfg *rewriteConfig) error {
		cfg.enabledRewrites = types
		return nil
	}
}

// WithLogger sets the logger for the rewrite operation
func WithLogger(l parser.Logger) Option {
	return func(cfg *rewriteConfig) error {
		cfg.logger = l
		return nil
	}
}

// ParseSingleMapStyle converts "boxed" or "injected" to a SingleMapStyle.
func ParseSingleMapStyle(name string) (SingleMapStyle, error) {
	switch name {
	case "boxed", "":
		return SingleMapBoxed, nil
	case "injected":
		return SingleMapInjected, nil
	default:
		return SingleMapBoxed, &oaserrors.ConfigError{Option: "single-map-style", Value: name, Message: "expected boxed or injected"}
	}
}
