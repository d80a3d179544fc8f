package rewriter

import (
	"fmt"
	"slices"
	"time"

	"github.com/erraggy/oasproto/internal/issues"
	"github.com/erraggy/oasproto/internal/severity"
	"github.com/erraggy/oasproto/oaserrors"
	"github.com/erraggy/oasproto/parser"
)

// Vendor extensions written by the annotation phase.
const (
	// ExtensionOneOfSchema marks a schema whose properties are mutually
	// exclusive.
	ExtensionOneOfSchema = "x-oneof-schema"
	// ExtensionOneOfProperty marks each property of such a schema.
	ExtensionOneOfProperty = "x-oneof-property"
)

// Defaults for the Rewriter configuration fields.
const (
	DefaultSingleMapSuffix = "SingleMap"
	DefaultNullTypeName    = "NullValue"
	DefaultWrapperProperty = "value"
)

// KeyField is the property that carries a single-map key.
const KeyField = "field"

// Severity is an alias for the shared severity type.
type Severity = severity.Severity

const (
	// SeverityInfo marks a notice, such as a generated component.
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning marks a rewrite skipped for an unresolvable reference.
	SeverityWarning = severity.SeverityWarning
	// SeverityError marks a naming conflict that left a node unrewritten.
	SeverityError = severity.SeverityError
)

// Diagnostic is a non-fatal note recorded during a rewrite.
type Diagnostic = issues.Issue

// RewriteType identifies a rewrite rule.
type RewriteType string

const (
	// RewriteConstToEnum folds a oneOf of literals into an enum.
	RewriteConstToEnum RewriteType = "const-to-enum"
	// RewriteArrayDedup drops a oneOf member subsumed by an array member.
	RewriteArrayDedup RewriteType = "array-dedup"
	// RewriteCollapseComposite merges a single-member allOf/anyOf/oneOf into its parent.
	RewriteCollapseComposite RewriteType = "collapse-composite"
	// RewriteAnyAdditionalProperties replaces an any-value additionalProperties with type object.
	RewriteAnyAdditionalProperties RewriteType = "any-additional-properties"
	// RewriteEnumDedup removes enum entries equal under case folding.
	RewriteEnumDedup RewriteType = "enum-dedup"
	// RewriteNullType substitutes the null type.
	RewriteNullType RewriteType = "null-type"
	// RewriteRedundantUnion collapses a union whose titled alternative is already a property of the other.
	RewriteRedundantUnion RewriteType = "redundant-union"
	// RewriteSingleMap materializes the one-key map pattern.
	RewriteSingleMap RewriteType = "single-map"
	// RewriteTitledAdditionalProperties moves a titled additionalProperties schema into properties.
	RewriteTitledAdditionalProperties RewriteType = "titled-additional-properties"
	// RewriteOneOfExclusive turns a oneOf of single-property objects into a maxProperties 1 object.
	RewriteOneOfExclusive RewriteType = "oneof-exclusive"
	// RewriteOneOfAnnotation tags mutually exclusive properties.
	RewriteOneOfAnnotation RewriteType = "oneof-annotation"
	// RewriteInjectField adds the key field to a single-map value type.
	RewriteInjectField RewriteType = "inject-field"
)

// AllRewriteTypes lists every rule in pipeline order.
var AllRewriteTypes = []RewriteType{
	RewriteConstToEnum,
	RewriteArrayDedup,
	RewriteCollapseComposite,
	RewriteAnyAdditionalProperties,
	RewriteEnumDedup,
	RewriteNullType,
	RewriteRedundantUnion,
	RewriteSingleMap,
	RewriteTitledAdditionalProperties,
	RewriteOneOfExclusive,
	RewriteOneOfAnnotation,
}

// ParseRewriteType returns the rule named name.
func ParseRewriteType(name string) (RewriteType, error) {
	t := RewriteType(name)
	if slices.Contains(AllRewriteTypes, t) {
		return t, nil
	}
	return "", &oaserrors.ConfigError{Option: "rewrite", Value: name, Message: "unknown rewrite rule"}
}

// Rewrite records a single rewrite applied to the document.
type Rewrite struct {
	// Type identifies the rule that fired
	Type RewriteType
	// Path is the JSON pointer of the rewritten node
	Path string
	// Description is a human-readable description of the rewrite
	Description string
}

// RewriteResult contains the results of a rewrite operation
type RewriteResult struct {
	// Document is the rewritten document. It is the same pointer that was
	// passed in; the rewrite happens in place.
	Document *parser.Document
	// SourcePath is the path the document was read from, if any
	SourcePath string
	// SourceFormat is the format of the source, if it was parsed here
	SourceFormat parser.SourceFormat
	// Rewrites contains all rewrites applied, in the order they happened
	Rewrites []Rewrite
	// RewriteCount is the total number of rewrites applied
	RewriteCount int
	// Diagnostics contains skipped rewrites and other notes
	Diagnostics []Diagnostic
	// Generated lists the names of components synthesized by the run, in
	// creation order
	Generated []string
	// Duration is the time the phases took
	Duration time.Duration
}

// HasRewrites returns true if any rewrites were applied
func (r *RewriteResult) HasRewrites() bool {
	return r.RewriteCount > 0
}

// CountByType returns how many rewrites each rule applied.
func (r *RewriteResult) CountByType() map[RewriteType]int {
	counts := make(map[RewriteType]int)
	for _, rw := range r.Rewrites {
		counts[rw.Type]++
	}
	return counts
}

// SingleMapStyle selects how the single-map pattern is materialized.
type SingleMapStyle int

const (
	// SingleMapBoxed generates a two-field wrapper component per value type.
	SingleMapBoxed SingleMapStyle = iota
	// SingleMapInjected adds the key field to the value type itself.
	SingleMapInjected
)

// String returns the flag spelling of the style.
func (s SingleMapStyle) String() string {
	switch s {
	case SingleMapBoxed:
		return "boxed"
	case SingleMapInjected:
		return "injected"
	default:
		return fmt.Sprintf("SingleMapStyle(%d)", int(s))
	}
}

// Rewriter normalizes OpenAPI documents for protobuf code generation.
// A Rewriter only holds configuration and may be reused across documents.
type Rewriter struct {
	// SingleMapExemptions lists enclosing contexts where the single-map
	// pattern is replaced by a plain reference to the value type instead of
	// a generated wrapper. An entry matches a component schema name, or
	// "Component.property" for one property of it.
	SingleMapExemptions []string
	// SingleMapSuffix is appended to the value type name to name generated
	// single-map components. Defaults to "SingleMap".
	SingleMapSuffix string
	// NullTypeName replaces the JSON null type. Defaults to "NullValue".
	NullTypeName string
	// DefaultWrapperKey names the property used to wrap an untitled
	// primitive during field injection. Defaults to "value".
	DefaultWrapperKey string
	// SingleMapStyle selects boxed or injected single-map output.
	SingleMapStyle SingleMapStyle
	// EnabledRewrites specifies which rules to apply.
	// If nil or empty, all rules are enabled.
	EnabledRewrites []RewriteType
	// Logger receives debug output. Defaults to parser.NopLogger.
	Logger parser.Logger
}

// New creates a new Rewriter instance with default settings
func New() *Rewriter {
	return &Rewriter{
		SingleMapSuffix:   DefaultSingleMapSuffix,
		NullTypeName:      DefaultNullTypeName,
		DefaultWrapperKey: DefaultWrapperProperty,
	}
}

// Rewrite runs the full pipeline on doc in place.
//
// The pipeline favors forward progress: unresolvable references and naming
// conflicts are recorded as diagnostics and never abort the run. An error
// is only returned for a nil document.
func (rw *Rewriter) Rewrite(doc *parser.Document) (*RewriteResult, error) {
	return rw.RewritePhases(doc, DefaultPhases...)
}

// RewritePhases runs the given phases, in the given order, on doc in place.
// Phases after the first assume the invariants of the ones before them, so
// running them out of order is only useful for tests.
func (rw *Rewriter) RewritePhases(doc *parser.Document, phases ...Phase) (*RewriteResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("rewriter: nil document")
	}

	start := time.Now()
	r := newRun(rw, doc)
	for _, phase := range phases {
		if err := r.runPhase(phase); err != nil {
			return nil, fmt.Errorf("rewriter: phase %s: %w", phase, err)
		}
	}

	r.result.RewriteCount = len(r.result.Rewrites)
	r.result.Duration = time.Since(start)
	r.log.Debug("rewrite complete",
		"rewrites", r.result.RewriteCount,
		"generated", len(r.result.Generated),
		"diagnostics", len(r.result.Diagnostics))
	return r.result, nil
}

// RewriteDocument runs the full pipeline with default settings on doc in
// place and returns the same document.
func RewriteDocument(doc *parser.Document) (*parser.Document, error) {
	result, err := New().Rewrite(doc)
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

func (rw *Rewriter) isEnabled(t RewriteType) bool {
	if len(rw.EnabledRewrites) == 0 {
		return true
	}
	return slices.Contains(rw.EnabledRewrites, t)
}

func (rw *Rewriter) isExempt(component, property string) bool {
	for _, e := range rw.SingleMapExemptions {
		if e == "" {
			continue
		}
		if e == component || (property != "" && e == component+"."+property) {
			return true
		}
	}
	return false
}

func (rw *Rewriter) suffix() string {
	if rw.SingleMapSuffix != "" {
		return rw.SingleMapSuffix
	}
	return DefaultSingleMapSuffix
}

func (rw *Rewriter) nullTypeName() string {
	if rw.NullTypeName != "" {
		return rw.NullTypeName
	}
	return DefaultNullTypeName
}

func (rw *Rewriter) wrapperKey() string {
	if rw.DefaultWrapperKey != "" {
		return rw.DefaultWrapperKey
	}
	return DefaultWrapperProperty
}
