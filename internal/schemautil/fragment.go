package schemautil

import (
	"github.com/goccy/go-json"

	"github.com/erraggy/oasproto/parser"
)

// Fragment renders a schema as compact, deterministic JSON. It is used
// for textual shape comparisons, so a marshal failure yields "" rather than
// an error: the caller's comparison then simply fails to match.
func Fragment(s *parser.Schema) string {
	if s == nil {
		return ""
	}
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(data)
}

// ValueFragment renders an arbitrary decoded value as compact JSON.
func ValueFragment(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// DeclaredShape returns the part of a schema that names what it holds: its
// reference when it is one, else its primary type. Empty when neither is set.
func DeclaredShape(s *parser.Schema) string {
	if s == nil {
		return ""
	}
	if s.Ref != "" {
		return s.Ref
	}
	return GetPrimaryType(s)
}
