package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oasproto/internal/pathutil"
)

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || r == ' '
}

// ToSnakeCase converts a string to snake_case.
// Word boundaries are separators, lower-to-upper transitions, and the last
// capital of an acronym followed by a lowercase letter.
// Example: "SortOrder" -> "sort_order"
// Example: "APIClient" -> "api_client"
// Example: "user-profile" -> "user_profile"
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	var result strings.Builder
	lastUnderscore := true // suppress a leading underscore
	for i, r := range runes {
		if isSeparator(r) {
			if !lastUnderscore {
				result.WriteRune('_')
				lastUnderscore = true
			}
			continue
		}
		if unicode.IsUpper(r) && i > 0 && !lastUnderscore {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				result.WriteRune('_')
			}
		}
		result.WriteRune(r)
		lastUnderscore = false
	}

	// A Caser is stateful, so each call gets its own.
	lower := cases.Lower(language.Und)
	return lower.String(strings.TrimSuffix(result.String(), "_"))
}

// TypeNameFromRef extracts the type name from a reference: the last JSON
// Pointer token, unescaped.
// Example: "#/components/schemas/SortOrder" -> "SortOrder"
func TypeNameFromRef(ref string) string {
	if name := pathutil.SchemaNameFromRef(ref); name != "" {
		return name
	}
	if ref == "" {
		return ""
	}
	idx := strings.LastIndex(ref, "/")
	return pathutil.Unescape(ref[idx+1:])
}

// GeneratedName builds the component name for a synthesized schema by
// appending suffix to base unchanged, so distinct bases never collide.
// Example: GeneratedName("SortOrder", "SingleMap") -> "SortOrderSingleMap"
func GeneratedName(base, suffix string) string {
	return base + suffix
}
