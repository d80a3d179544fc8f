package rewriter

import (
	"fmt"

	"golang.org/x/text/cases"

	"github.com/erraggy/oasproto/internal/schemautil"
	"github.com/erraggy/oasproto/parser"
	"github.com/erraggy/oasproto/walker"
)

// maxCollapse bounds repeated collapsing of a composite whose single member
// is itself a single-member composite.
const maxCollapse = 32

// constToEnum replaces a oneOf of literals with an enum.
//
// A member without a const contributes its primitive type name as a value.
// Existing consumers depend on this, so it is kept as is.
func (r *run) constToEnum(_ *walker.WalkContext, s *parser.Schema) (string, bool) {
	if len(s.OneOf) == 0 {
		return "", false
	}
	literals, hasConst := oneOfLiterals(s.OneOf)
	if !hasConst {
		return "", false
	}
	members := len(s.OneOf)
	s.OneOf = nil
	s.Type = literalType(literals)
	s.Enum = literals
	return fmt.Sprintf("folded %d oneOf members into a %s enum of %d values", members, s.Type, len(literals)), true
}

// arrayDedup drops a oneOf member whose shape is already the item shape of
// an array member.
func (r *run) arrayDedup(_ *walker.WalkContext, s *parser.Schema) (string, bool) {
	if len(s.OneOf) < 2 {
		return "", false
	}
	itemKeys := make(map[string]bool)
	for _, m := range s.OneOf {
		if schemautil.IsArray(m) {
			if k := shapeKey(m.Items); k != "" {
				itemKeys[k] = true
			}
		}
	}
	if len(itemKeys) == 0 {
		return "", false
	}

	kept := make([]*parser.Schema, 0, len(s.OneOf))
	for _, m := range s.OneOf {
		if !schemautil.IsArray(m) && itemKeys[shapeKey(m)] {
			continue
		}
		kept = append(kept, m)
	}
	dropped := len(s.OneOf) - len(kept)
	if dropped == 0 {
		return "", false
	}
	s.OneOf = kept
	return fmt.Sprintf("dropped %d oneOf %s subsumed by an array member", dropped, plural(dropped, "member")), true
}

// collapseComposites merges every single-member allOf, anyOf or oneOf into
// the node. The member's fields win on conflict.
func (r *run) collapseComposites(_ *walker.WalkContext, s *parser.Schema) (string, bool) {
	var collapsed []string
	for i := 0; i < maxCollapse; i++ {
		keyword, member := takeSingleMember(s)
		if keyword == "" {
			break
		}
		if member != nil && member != s {
			schemautil.MergeInto(s, member)
		}
		collapsed = append(collapsed, keyword)
	}
	if len(collapsed) == 0 {
		return "", false
	}
	return fmt.Sprintf("collapsed single-member %v into parent", collapsed), true
}

// takeSingleMember removes the first length-1 composite keyword from s and
// returns it with its member.
func takeSingleMember(s *parser.Schema) (string, *parser.Schema) {
	switch {
	case len(s.OneOf) == 1:
		m := s.OneOf[0]
		s.OneOf = nil
		return "oneOf", m
	case len(s.AnyOf) == 1:
		m := s.AnyOf[0]
		s.AnyOf = nil
		return "anyOf", m
	case len(s.AllOf) == 1:
		m := s.AllOf[0]
		s.AllOf = nil
		return "allOf", m
	}
	return "", nil
}

// anyAdditionalProperties turns a map of arbitrary values into a plain
// object.
func (r *run) anyAdditionalProperties(_ *walker.WalkContext, s *parser.Schema) (string, bool) {
	if v, ok := s.AdditionalPropertiesBool(); ok && v {
		s.AdditionalProperties = nil
		s.Type = schemautil.TypeObject
		return "replaced additionalProperties: true with type object", true
	}
	if ap, ok := s.AdditionalPropertiesSchema(); ok && schemautil.IsAnySchema(ap) {
		s.AdditionalProperties = nil
		s.Type = schemautil.TypeObject
		return "replaced unconstrained additionalProperties schema with type object", true
	}
	return "", false
}

// enumDedup folds enum values equal under case folding. The last casing
// seen wins; positions follow first appearance.
func (r *run) enumDedup(_ *walker.WalkContext, s *parser.Schema) (string, bool) {
	if len(s.Enum) < 2 {
		return "", false
	}
	caser := cases.Fold()
	index := make(map[string]int, len(s.Enum))
	out := make([]any, 0, len(s.Enum))
	for _, v := range s.Enum {
		k := foldKey(caser, v)
		if i, seen := index[k]; seen {
			out[i] = v
			continue
		}
		index[k] = len(out)
		out = append(out, v)
	}
	if len(out) == len(s.Enum) {
		return "", false
	}
	removed := len(s.Enum) - len(out)
	s.Enum = out
	return fmt.Sprintf("removed %d case-insensitive duplicate enum %s", removed, plural(removed, "value")), true
}

// nullType substitutes the null type. A type list that also names other
// types drops null and marks the node nullable instead.
func (r *run) nullType(_ *walker.WalkContext, s *parser.Schema) (string, bool) {
	if !schemautil.HasType(s, schemautil.TypeNull) {
		return "", false
	}
	sentinel := r.cfg.nullTypeName()
	var rest []any
	for _, t := range schemautil.GetSchemaTypes(s) {
		if t != schemautil.TypeNull {
			rest = append(rest, t)
		}
	}
	switch len(rest) {
	case 0:
		s.Type = sentinel
		return fmt.Sprintf("replaced null type with %s", sentinel), true
	case 1:
		s.Type = rest[0]
	default:
		s.Type = rest
	}
	s.Nullable = true
	return "removed null from type list and marked nullable", true
}

// redundantUnion collapses a two-member oneOf or anyOf when one member is
// a titled alternative that the other already carries as a property of
// the same name.
func (r *run) redundantUnion(wc *walker.WalkContext, s *parser.Schema) (string, bool) {
	for _, keyword := range []string{"oneOf", "anyOf"} {
		list := s.OneOf
		if keyword == "anyOf" {
			list = s.AnyOf
		}
		if len(list) != 2 {
			continue
		}
		for i := range list {
			titled, other := list[i], list[1-i]
			if !isTitledAlternative(titled) || other == nil {
				continue
			}
			prop := r.unionProperty(wc.JSONPointer, other, titled.Title)
			if !propertyOverlaps(titled, prop) {
				continue
			}
			if keyword == "oneOf" {
				s.OneOf = nil
			} else {
				s.AnyOf = nil
			}
			schemautil.MergeInto(s, other)
			return fmt.Sprintf("dropped %s alternative %q already carried as a property", keyword, titled.Title), true
		}
	}
	return "", false
}

// unionProperty finds the property named title on other, directly or on a
// member of its allOf, following at most one reference at each level.
func (r *run) unionProperty(path string, other *parser.Schema, title string) *parser.Schema {
	target, ok := r.resolve(RewriteRedundantUnion, path, other)
	if !ok {
		return nil
	}
	if p := target.Properties[title]; p != nil {
		return p
	}
	for _, m := range target.AllOf {
		if m == nil {
			continue
		}
		mt, ok := r.resolve(RewriteRedundantUnion, path, m)
		if !ok {
			continue
		}
		if p := mt.Properties[title]; p != nil {
			return p
		}
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
