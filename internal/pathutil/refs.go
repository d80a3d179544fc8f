package pathutil

import "strings"

// OAS 3.x reference prefixes
const (
	RefPrefixSchemas       = "#/components/schemas/"
	RefPrefixParameters    = "#/components/parameters/"
	RefPrefixResponses     = "#/components/responses/"
	RefPrefixRequestBodies = "#/components/requestBodies/"
	RefPrefixHeaders       = "#/components/headers/"
)

// SchemaRef builds "#/components/schemas/{name}", escaping the name.
func SchemaRef(name string) string {
	return RefPrefixSchemas + Escape(name)
}

// IsLocalRef returns true if the reference is a local JSON pointer (starts with "#/").
func IsLocalRef(ref string) bool {
	return strings.HasPrefix(ref, "#/")
}

// SchemaNameFromRef returns the component name for a direct schema
// reference ("#/components/schemas/Pet" -> "Pet"). Deeper pointers and
// non-schema references return "".
func SchemaNameFromRef(ref string) string {
	name, ok := strings.CutPrefix(ref, RefPrefixSchemas)
	if !ok || name == "" || strings.Contains(name, "/") {
		return ""
	}
	return Unescape(name)
}
