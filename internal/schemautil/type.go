// Package schemautil holds predicates and helpers shared by the walker and
// the rewrite phases: type inspection for the string and array forms of
// "type", shallow merging and serialized fragments.
package schemautil

import "github.com/erraggy/oasproto/parser"

// JSON Schema primitive type names.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
	TypeNull    = "null"
)

// GetSchemaTypes returns the type(s) from a schema, handling both
// string (OAS 3.0) and []any (OAS 3.1+) representations.
//
// Examples:
//   - {"type": "string"} returns ["string"]
//   - {"type": ["string", "null"]} returns ["string", "null"]
func GetSchemaTypes(schema *parser.Schema) []string {
	if schema == nil {
		return nil
	}
	switch t := schema.Type.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		result := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				result = append(result, s)
			}
		}
		return result
	case []string:
		return t
	}
	return nil
}

// GetPrimaryType returns the first non-null type from a schema.
//
// Returns an empty string if the schema is nil or has no types.
func GetPrimaryType(schema *parser.Schema) string {
	types := GetSchemaTypes(schema)
	for _, t := range types {
		if t != TypeNull {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return ""
}

// HasType checks if the schema includes the specified type.
func HasType(schema *parser.Schema, targetType string) bool {
	for _, t := range GetSchemaTypes(schema) {
		if t == targetType {
			return true
		}
	}
	return false
}

// IsPrimitiveType reports whether t names a scalar JSON type.
func IsPrimitiveType(t string) bool {
	switch t {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean:
		return true
	}
	return false
}

// IsPrimitive reports whether the schema is a scalar: a primitive type and
// no object, array or composite structure.
func IsPrimitive(schema *parser.Schema) bool {
	if schema == nil || schema.Ref != "" || HasComposite(schema) {
		return false
	}
	return IsPrimitiveType(GetPrimaryType(schema))
}

// IsObject reports whether the schema describes an object, either by its
// declared type or by carrying object keywords.
func IsObject(schema *parser.Schema) bool {
	if schema == nil || schema.Ref != "" {
		return false
	}
	if HasType(schema, TypeObject) {
		return true
	}
	return GetPrimaryType(schema) == "" && (len(schema.Properties) > 0 || schema.AdditionalProperties != nil)
}

// IsArray reports whether the schema describes an array.
func IsArray(schema *parser.Schema) bool {
	if schema == nil || schema.Ref != "" {
		return false
	}
	return HasType(schema, TypeArray) || (GetPrimaryType(schema) == "" && schema.Items != nil)
}

// HasComposite reports whether any of allOf, anyOf or oneOf is non-empty.
func HasComposite(schema *parser.Schema) bool {
	return schema != nil && (len(schema.AllOf) > 0 || len(schema.AnyOf) > 0 || len(schema.OneOf) > 0)
}

// IsAnySchema reports whether the schema accepts any value as an object
// member: no properties, no composition, no reference, no enum or const and
// no nested map or item shape. Annotations do not narrow it.
func IsAnySchema(schema *parser.Schema) bool {
	if schema == nil {
		return true
	}
	if schema.Ref != "" || len(schema.Properties) > 0 || HasComposite(schema) || schema.Items != nil {
		return false
	}
	if len(schema.Enum) > 0 || schema.Const != nil {
		return false
	}
	if _, ok := schema.AdditionalPropertiesSchema(); ok {
		return false
	}
	if v, ok := schema.AdditionalPropertiesBool(); ok && !v {
		return false
	}
	t := GetPrimaryType(schema)
	return t == "" || t == TypeObject
}

// JSONType returns the JSON type name of a decoded literal.
func JSONType(v any) string {
	switch n := v.(type) {
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInteger
	case float32:
		if float32(int64(n)) == n {
			return TypeInteger
		}
		return TypeNumber
	case float64:
		if float64(int64(n)) == n {
			return TypeInteger
		}
		return TypeNumber
	case nil:
		return TypeNull
	case map[string]any:
		return TypeObject
	case []any:
		return TypeArray
	}
	return ""
}
