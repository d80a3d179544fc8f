package rewriter

import (
	"fmt"

	"github.com/erraggy/oasproto/internal/schemautil"
	"github.com/erraggy/oasproto/oaserrors"
	"github.com/erraggy/oasproto/parser"
)

// Injector adds a string key field to value types so a map entry can be
// carried as a message with named fields. It follows references, and its
// visited set makes repeated and cyclic injection a no-op.
//
// An Injector belongs to one document and one pipeline run.
type Injector struct {
	// DefaultWrapperKey names the property of a wrapper around an untitled
	// primitive. Defaults to "value".
	DefaultWrapperKey string
	// Logger receives debug output. Defaults to parser.NopLogger.
	Logger parser.Logger

	// Rewrites records each schema patched, with Path set to the reference
	// followed when there was one.
	Rewrites []Rewrite
	// Diagnostics records unresolvable references and field conflicts.
	Diagnostics []Diagnostic

	doc     *parser.Document
	visited map[*parser.Schema]struct{}
}

// NewInjector returns an Injector resolving references against doc.
func NewInjector(doc *parser.Document) *Injector {
	return &Injector{
		DefaultWrapperKey: DefaultWrapperProperty,
		doc:               doc,
		visited:           make(map[*parser.Schema]struct{}),
	}
}

func (in *Injector) log() parser.Logger {
	if in.Logger != nil {
		return in.Logger
	}
	return parser.NopLogger{}
}

// Inject patches the schema s denotes and returns what should stand in
// its place:
//
//   - allOf: a fresh {properties: {field: string}} member is appended
//   - properties: a field string property is added, unless one exists
//   - object without properties: the field becomes its first property
//   - oneOf/anyOf: each member is injected and its slot replaced
//   - primitive: a fresh object wrapping s under its title, or
//     DefaultWrapperKey when it has none
//
// In every case but the primitive one s itself is returned, since the
// patch happened on the resolved target. A schema already visited, or one
// whose reference cannot be resolved, is returned unchanged.
func (in *Injector) Inject(s *parser.Schema) *parser.Schema {
	if s == nil {
		return nil
	}
	target, err := in.doc.ResolveSchema(s)
	if err != nil {
		in.diagnose(SeverityWarning, s.Ref, "unresolvable reference; field not injected", err)
		return s
	}
	if _, seen := in.visited[target]; seen {
		return s
	}
	in.visited[target] = struct{}{}

	switch {
	case len(target.AllOf) > 0:
		target.AllOf = append(target.AllOf, fieldWrapper())
		in.record(s.Ref, "appended allOf member carrying the key field")
	case len(target.Properties) > 0:
		if _, exists := target.Properties[KeyField]; exists {
			err := &oaserrors.ConflictError{Kind: "property", Name: KeyField, Path: s.Ref, Message: "property already exists"}
			in.diagnose(SeverityError, s.Ref, err.Error(), err)
			return s
		}
		target.SetProperty(KeyField, &parser.Schema{Type: schemautil.TypeString})
		in.record(s.Ref, fmt.Sprintf("added %q property", KeyField))
	case len(target.OneOf) > 0 || len(target.AnyOf) > 0:
		for i, m := range target.OneOf {
			target.OneOf[i] = in.Inject(m)
		}
		for i, m := range target.AnyOf {
			target.AnyOf[i] = in.Inject(m)
		}
	case schemautil.IsObject(target) || schemautil.IsAnySchema(target):
		target.SetProperty(KeyField, &parser.Schema{Type: schemautil.TypeString})
		in.record(s.Ref, fmt.Sprintf("added %q property to an object without properties", KeyField))
	case schemautil.IsPrimitive(target):
		key := target.Title
		if key == "" {
			key = in.wrapperKey()
		}
		in.record(s.Ref, fmt.Sprintf("wrapped primitive under property %q", key))
		return &parser.Schema{
			Type:       schemautil.TypeObject,
			Properties: map[string]*parser.Schema{key: s},
		}
	}
	return s
}

// fieldWrapper returns a new object holding only the key field. Each call
// allocates, so no two schemas share one.
func fieldWrapper() *parser.Schema {
	return &parser.Schema{
		Type: schemautil.TypeObject,
		Properties: map[string]*parser.Schema{
			KeyField: {Type: schemautil.TypeString},
		},
	}
}

func (in *Injector) wrapperKey() string {
	if in.DefaultWrapperKey != "" {
		return in.DefaultWrapperKey
	}
	return DefaultWrapperProperty
}

func (in *Injector) record(path, desc string) {
	in.Rewrites = append(in.Rewrites, Rewrite{Type: RewriteInjectField, Path: path, Description: desc})
	in.log().Debug("field injected", "ref", path)
}

func (in *Injector) diagnose(sev Severity, path, msg string, err error) {
	in.Diagnostics = append(in.Diagnostics, Diagnostic{
		Path:     path,
		Rule:     string(RewriteInjectField),
		Message:  msg,
		Severity: sev,
		Err:      err,
	})
	in.log().Debug(msg, "ref", path, "error", err)
}
