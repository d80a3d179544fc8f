package rewriter

import (
	"fmt"

	"github.com/erraggy/oasproto/internal/naming"
	"github.com/erraggy/oasproto/internal/pathutil"
	"github.com/erraggy/oasproto/internal/schemautil"
	"github.com/erraggy/oasproto/oaserrors"
	"github.com/erraggy/oasproto/parser"
	"github.com/erraggy/oasproto/walker"
)

// singleMap materializes an object holding exactly one arbitrarily named
// key whose value is a referenced type T.
//
// In an exempt context the node becomes a plain reference to T. Otherwise
// it becomes a reference to a component generated at most once per T.
func (r *run) singleMap(wc *walker.WalkContext, s *parser.Schema) (string, bool) {
	ap, ok := singleMapValue(s)
	if !ok {
		return "", false
	}

	if r.cfg.isExempt(wc.Component, wc.Property) {
		*s = parser.Schema{Ref: ap.Ref, Description: s.Description}
		return fmt.Sprintf("replaced single-key map with %s (exempt context)", ap.Ref), true
	}

	target, ok := r.resolve(RewriteSingleMap, wc.JSONPointer, ap)
	if !ok {
		return "", false
	}
	if name, seen := r.generated[target]; seen {
		replaceWithRef(s, pathutil.SchemaRef(name))
		return fmt.Sprintf("replaced single-key map with existing %s", name), true
	}

	if r.cfg.SingleMapStyle == SingleMapInjected {
		return r.injectSingleMap(wc, s, ap, target)
	}
	return r.boxSingleMap(wc, s, ap, target)
}

func (r *run) boxSingleMap(wc *walker.WalkContext, s, ap, target *parser.Schema) (string, bool) {
	typeName := naming.TypeNameFromRef(ap.Ref)
	name := naming.GeneratedName(typeName, r.cfg.suffix())
	valueField := naming.ToSnakeCase(typeName)
	if valueField == KeyField || valueField == "" {
		r.conflict("property", valueField, wc.JSONPointer, "value field would shadow the key field")
		return "", false
	}

	key := &parser.Schema{Type: schemautil.TypeString}
	if s.PropertyNames != nil && s.PropertyNames.Ref != "" {
		key = &parser.Schema{Ref: s.PropertyNames.Ref}
	}
	boxed := &parser.Schema{
		Type:     schemautil.TypeObject,
		Required: []string{KeyField, valueField},
		Properties: map[string]*parser.Schema{
			KeyField:   key,
			valueField: {Ref: ap.Ref},
		},
	}
	if !r.register(wc.JSONPointer, name, target, boxed) {
		return "", false
	}
	replaceWithRef(s, pathutil.SchemaRef(name))
	return fmt.Sprintf("replaced single-key map with generated %s", name), true
}

func (r *run) injectSingleMap(wc *walker.WalkContext, s, ap, target *parser.Schema) (string, bool) {
	out := r.injector.Inject(ap)
	r.drainInjector(wc.JSONPointer)
	if out == ap {
		replaceWithRef(s, ap.Ref)
		return fmt.Sprintf("replaced single-key map with %s carrying a %q field", ap.Ref, KeyField), true
	}

	// A primitive T comes back wrapped; the wrapper needs a name.
	name := naming.GeneratedName(naming.TypeNameFromRef(ap.Ref), r.cfg.suffix())
	if !r.register(wc.JSONPointer, name, target, out) {
		return "", false
	}
	replaceWithRef(s, pathutil.SchemaRef(name))
	return fmt.Sprintf("replaced single-key map with generated wrapper %s", name), true
}

// register adds a generated component for the value type target. A name
// already present in the document is a conflict and nothing is added.
func (r *run) register(path, name string, target, schema *parser.Schema) bool {
	if !r.doc.AddComponentSchema(name, schema) {
		r.conflict("component", name, path, "a component with this name already exists")
		return false
	}
	r.generated[target] = name
	r.result.Generated = append(r.result.Generated, name)
	r.diagnose(SeverityInfo, RewriteSingleMap, pathutil.SchemaRef(name), "generated component "+name, nil)
	return true
}

func (r *run) conflict(kind, name, path, msg string) {
	err := &oaserrors.ConflictError{Kind: kind, Name: name, Path: path, Message: msg}
	r.diagnose(SeverityError, RewriteSingleMap, path, err.Error(), err)
}

func (r *run) drainInjector(path string) {
	for _, rw := range r.injector.Rewrites {
		if rw.Path == "" {
			rw.Path = path
		}
		r.result.Rewrites = append(r.result.Rewrites, rw)
	}
	for _, d := range r.injector.Diagnostics {
		if d.Path == "" {
			d.Path = path
		}
		r.result.Diagnostics = append(r.result.Diagnostics, d)
	}
	r.injector.Rewrites = r.injector.Rewrites[:0]
	r.injector.Diagnostics = r.injector.Diagnostics[:0]
}

func replaceWithRef(s *parser.Schema, ref string) {
	*s = parser.Schema{Ref: ref, Description: s.Description}
}

// titledAdditionalProperties moves a titled additionalProperties schema
// into properties under its title.
func (r *run) titledAdditionalProperties(_ *walker.WalkContext, s *parser.Schema) (string, bool) {
	if _, single := singleMapValue(s); single {
		return "", false
	}
	ap, ok := s.AdditionalPropertiesSchema()
	if !ok || ap.Title == "" {
		return "", false
	}
	key := ap.Title
	if _, exists := s.Properties[key]; exists {
		return "", false
	}

	prop := schemautil.Clone(ap)
	prop.Title = ""
	s.SetProperty(key, prop)
	s.AdditionalProperties = nil
	s.MinProperties = nil
	s.MaxProperties = nil
	s.PropertyNames = nil
	return fmt.Sprintf("moved titled additionalProperties into property %q", key), true
}

// oneOfExclusive merges a oneOf of single-property objects into one object
// allowing exactly one of those properties.
func (r *run) oneOfExclusive(_ *walker.WalkContext, s *parser.Schema) (string, bool) {
	if len(s.OneOf) == 0 {
		return "", false
	}
	merged := make(map[string]*parser.Schema, len(s.OneOf))
	order := make([]string, 0, len(s.OneOf))
	for _, m := range s.OneOf {
		if !schemautil.IsObject(m) || len(m.Properties) != 1 {
			return "", false
		}
		for k, v := range m.Properties {
			if _, dup := merged[k]; dup {
				return "", false
			}
			if _, exists := s.Properties[k]; exists {
				return "", false
			}
			merged[k] = v
			order = append(order, k)
		}
	}

	for _, k := range order {
		s.SetProperty(k, merged[k])
	}
	s.OneOf = nil
	s.MinProperties = parser.IntPtr(1)
	s.MaxProperties = parser.IntPtr(1)
	s.UnevaluatedProperties = nil
	if schemautil.GetPrimaryType(s) == "" {
		s.Type = schemautil.TypeObject
	}
	return fmt.Sprintf("merged %d single-property oneOf members into exclusive properties %v", len(order), order), true
}
