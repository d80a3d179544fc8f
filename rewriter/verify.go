package rewriter

import (
	"fmt"

	"golang.org/x/text/cases"

	"github.com/erraggy/oasproto/internal/issues"
	"github.com/erraggy/oasproto/internal/schemautil"
	"github.com/erraggy/oasproto/parser"
	"github.com/erraggy/oasproto/walker"
)

// Invariant names reported by Verify.
const (
	InvariantAdditionalProperties = "additional-properties"
	InvariantCompositeLength      = "composite-length"
	InvariantOneOfConst           = "oneof-const"
	InvariantNullType             = "null-type"
	InvariantEnumCase             = "enum-case"
)

// Violation is a node that breaks an invariant of rewritten output.
type Violation struct {
	// Rule is the invariant broken (one of the Invariant constants)
	Rule string
	// Location is the JSON pointer of the node
	Location string
	// Message describes the violation
	Message string
}

// String returns a formatted string representation of the violation.
func (v Violation) String() string {
	return fmt.Sprintf("%s [%s]: %s", v.Location, v.Rule, v.Message)
}

// Issue converts the violation to a diagnostic at error severity.
func (v Violation) Issue() issues.Issue {
	return issues.Issue{Path: v.Location, Rule: v.Rule, Message: v.Message, Severity: SeverityError}
}

// Verify walks doc and reports every node that breaks an invariant the
// pipeline establishes:
//
//   - additionalProperties is neither true nor an unconstrained schema
//   - no allOf, anyOf or oneOf has exactly one member
//   - no oneOf member carries a const
//   - no type is null
//   - no two enum values are equal ignoring case
//
// A nil document has no violations.
func Verify(doc *parser.Document) []Violation {
	if doc == nil {
		return nil
	}
	var out []Violation
	add := func(wc *walker.WalkContext, rule, format string, args ...any) {
		out = append(out, Violation{Rule: rule, Location: wc.JSONPointer, Message: fmt.Sprintf(format, args...)})
	}

	_ = walker.Walk(doc, walker.WithSchemaPostHandler(func(wc *walker.WalkContext, s *parser.Schema) {
		if v, ok := s.AdditionalPropertiesBool(); ok && v {
			add(wc, InvariantAdditionalProperties, "additionalProperties is true")
		} else if ap, ok := s.AdditionalPropertiesSchema(); ok && schemautil.IsAnySchema(ap) {
			add(wc, InvariantAdditionalProperties, "additionalProperties accepts any value")
		}

		if len(s.AllOf) == 1 {
			add(wc, InvariantCompositeLength, "allOf has a single member")
		}
		if len(s.AnyOf) == 1 {
			add(wc, InvariantCompositeLength, "anyOf has a single member")
		}
		if len(s.OneOf) == 1 {
			add(wc, InvariantCompositeLength, "oneOf has a single member")
		}

		for i, m := range s.OneOf {
			if m != nil && m.Const != nil {
				add(wc, InvariantOneOfConst, "oneOf member %d carries const %s", i, schemautil.ValueFragment(m.Const))
			}
		}

		if schemautil.HasType(s, schemautil.TypeNull) {
			add(wc, InvariantNullType, "type includes null")
		}

		if len(s.Enum) > 1 {
			caser := cases.Fold()
			seen := make(map[string]bool, len(s.Enum))
			for _, v := range s.Enum {
				k := foldKey(caser, v)
				if seen[k] {
					add(wc, InvariantEnumCase, "enum value %s duplicates another ignoring case", schemautil.ValueFragment(v))
					break
				}
				seen[k] = true
			}
		}
	}))
	return out
}
