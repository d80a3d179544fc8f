package parser

import (
	"strconv"

	"github.com/erraggy/oasproto/internal/pathutil"
	"github.com/erraggy/oasproto/oaserrors"
)

// ResolveSchema returns the schema s denotes. A non-reference schema is
// returned unchanged. A reference is followed exactly one level: if the
// target is itself a reference it is returned as-is, and the caller
// resolves it again on demand.
//
// Only local pointers into components.schemas are supported. Anything else,
// including external references, yields a *oaserrors.ReferenceError.
func (d *Document) ResolveSchema(s *Schema) (*Schema, error) {
	if s == nil || s.Ref == "" {
		return s, nil
	}
	ref := s.Ref
	if !pathutil.IsLocalRef(ref) {
		return nil, &oaserrors.ReferenceError{Ref: ref, RefType: "external", Message: "external references are not resolved"}
	}

	segments := pathutil.ParsePointer(ref).Segments()
	if len(segments) < 3 || segments[0] != "components" || segments[1] != "schemas" {
		return nil, &oaserrors.ReferenceError{Ref: ref, RefType: "local", Message: "only component schema references are supported"}
	}

	current, ok := d.ComponentSchema(segments[2])
	if !ok {
		return nil, &oaserrors.ReferenceError{Ref: ref, RefType: "local", Message: "schema not found"}
	}

	rest := segments[3:]
	for len(rest) > 0 {
		next, consumed := schemaChild(current, rest)
		if next == nil {
			return nil, &oaserrors.ReferenceError{
				Ref:     ref,
				RefType: "local",
				Message: "no schema at token " + strconv.Quote(rest[0]),
			}
		}
		current = next
		rest = rest[consumed:]
	}
	return current, nil
}

// schemaChild steps from s along the leading tokens and reports how many
// were consumed. It returns nil when the tokens name nothing.
func schemaChild(s *Schema, tokens []string) (*Schema, int) {
	switch tokens[0] {
	case "items":
		return s.Items, 1
	case "not":
		return s.Not, 1
	case "propertyNames":
		return s.PropertyNames, 1
	case "additionalProperties":
		ap, _ := s.AdditionalPropertiesSchema()
		return ap, 1
	case "properties":
		if len(tokens) < 2 {
			return nil, 0
		}
		return s.Properties[tokens[1]], 2
	case "allOf", "anyOf", "oneOf":
		if len(tokens) < 2 {
			return nil, 0
		}
		idx, err := strconv.Atoi(tokens[1])
		if err != nil || idx < 0 {
			return nil, 0
		}
		var members []*Schema
		switch tokens[0] {
		case "allOf":
			members = s.AllOf
		case "anyOf":
			members = s.AnyOf
		default:
			members = s.OneOf
		}
		if idx >= len(members) {
			return nil, 0
		}
		return members[idx], 2
	}
	return nil, 0
}
