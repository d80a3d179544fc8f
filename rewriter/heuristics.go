package rewriter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/erraggy/oasproto/internal/schemautil"
	"github.com/erraggy/oasproto/parser"
)

// The predicates in this file match shapes by their serialized text rather
// than by structural equality. A miss leaves the document untouched.

// oneOfLiterals collects the enum values a oneOf folds into: each non-ref
// member's const, or, for a member without one, its primitive type name
// used as a literal. The second result reports whether any member carried
// a const; without one there is nothing to fold.
func oneOfLiterals(members []*parser.Schema) ([]any, bool) {
	var literals []any
	hasConst := false
	for _, m := range members {
		if m == nil || m.Ref != "" {
			continue
		}
		if m.Const != nil {
			literals = append(literals, m.Const)
			hasConst = true
			continue
		}
		if t := schemautil.GetPrimaryType(m); schemautil.IsPrimitiveType(t) {
			literals = append(literals, t)
		}
	}
	return literals, hasConst
}

// literalType returns the JSON type shared by all literals, "number" for a
// mix of integers and numbers, and "string" otherwise.
func literalType(literals []any) string {
	shared := ""
	for _, v := range literals {
		t := schemautil.JSONType(v)
		switch {
		case shared == "":
			shared = t
		case shared == t:
		case isNumeric(shared) && isNumeric(t):
			shared = schemautil.TypeNumber
		default:
			return schemautil.TypeString
		}
	}
	if !schemautil.IsPrimitiveType(shared) {
		return schemautil.TypeString
	}
	return shared
}

func isNumeric(t string) bool {
	return t == schemautil.TypeInteger || t == schemautil.TypeNumber
}

// shapeKey names what a oneOf member holds for array deduplication: its
// reference, else its additionalProperties shape, else its full fragment
// for an object with properties, else its primary type.
func shapeKey(s *parser.Schema) string {
	if s == nil {
		return ""
	}
	if s.Ref != "" {
		return "$ref:" + s.Ref
	}
	if ap, ok := s.AdditionalPropertiesSchema(); ok {
		return "additionalProperties:" + schemautil.Fragment(ap)
	}
	if v, ok := s.AdditionalPropertiesBool(); ok && v {
		return "additionalProperties:true"
	}
	if len(s.Properties) > 0 {
		return "object:" + schemautil.Fragment(s)
	}
	if t := schemautil.GetPrimaryType(s); t != "" {
		return "type:" + t
	}
	return ""
}

// isTitledAlternative reports whether a union member is a short named
// alternative: a primitive or a reference carrying a title.
func isTitledAlternative(s *parser.Schema) bool {
	if s == nil || s.Title == "" {
		return false
	}
	return s.Ref != "" || schemautil.IsPrimitive(s)
}

// propertyOverlaps reports whether prop's declared type or reference
// appears in the serialized form of the titled alternative.
func propertyOverlaps(titled, prop *parser.Schema) bool {
	if titled == nil || prop == nil {
		return false
	}
	shape := schemautil.DeclaredShape(prop)
	if shape == "" {
		return false
	}
	return strings.Contains(schemautil.Fragment(titled), shape)
}

// foldKey returns the key under which enum values are considered equal.
// Strings fold case; other values are keyed by type and JSON text.
func foldKey(caser cases.Caser, v any) string {
	if s, ok := v.(string); ok {
		return "s:" + caser.String(s)
	}
	return schemautil.JSONType(v) + ":" + schemautil.ValueFragment(v)
}

// isSingleMapShape reports the minProperties 1 / maxProperties 1 object
// constraint shared by the single-map pattern.
func isSingleMapShape(s *parser.Schema) bool {
	return s.MinProperties != nil && *s.MinProperties == 1 &&
		s.MaxProperties != nil && *s.MaxProperties == 1
}

// singleMapValue returns the value reference of a single-map pattern node.
func singleMapValue(s *parser.Schema) (*parser.Schema, bool) {
	if !schemautil.HasType(s, schemautil.TypeObject) || !isSingleMapShape(s) {
		return nil, false
	}
	ap, ok := s.AdditionalPropertiesSchema()
	if !ok || ap.Ref == "" {
		return nil, false
	}
	return ap, true
}

// isExclusive reports whether at most one property may be present.
func isExclusive(s *parser.Schema) bool {
	return s != nil && s.MaxProperties != nil && *s.MaxProperties == 1
}
