package rewriter

import (
	"github.com/erraggy/oasproto/parser"
	"github.com/erraggy/oasproto/walker"
)

// oneOfAnnotation tags an object allowing at most one property, and each
// of its properties, for oneof generation. An allOf whose member carries
// the constraint gets the schema tag too.
func (r *run) oneOfAnnotation(wc *walker.WalkContext, s *parser.Schema) (string, bool) {
	tagged := 0
	if isExclusive(s) {
		if !s.HasFlag(ExtensionOneOfSchema) {
			s.SetExtension(ExtensionOneOfSchema, true)
			tagged++
		}
		for _, k := range s.PropertyKeys() {
			p := s.Properties[k]
			if p != nil && !p.HasFlag(ExtensionOneOfProperty) {
				p.SetExtension(ExtensionOneOfProperty, true)
				tagged++
			}
		}
	}
	if !s.HasFlag(ExtensionOneOfSchema) && r.hasExclusiveAllOfMember(wc.JSONPointer, s) {
		s.SetExtension(ExtensionOneOfSchema, true)
		return "tagged allOf composition of an exclusive member", true
	}
	if tagged == 0 {
		return "", false
	}
	return "tagged mutually exclusive properties", true
}

func (r *run) hasExclusiveAllOfMember(path string, s *parser.Schema) bool {
	for _, m := range s.AllOf {
		if m == nil {
			continue
		}
		target, ok := r.resolve(RewriteOneOfAnnotation, path, m)
		if ok && isExclusive(target) {
			return true
		}
	}
	return false
}
