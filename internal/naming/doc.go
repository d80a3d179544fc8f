// Package naming provides deterministic identifier derivation for generated
// schema components and properties.
//
// ToSnakeCase derives property names, TypeNameFromRef extracts a type name
// from a $ref, and GeneratedName names synthesized components.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
