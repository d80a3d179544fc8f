// Package pathutil provides location tracking and reference helpers for
// OpenAPI document traversal.
//
// [Location] is an immutable JSON Pointer address. Extending it never
// changes the receiver, so a walker can hand the same parent location to
// several children:
//
//	loc := pathutil.Root().Child("components").Child("schemas").Child("Pet")
//	loc.String() // "#/components/schemas/Pet"
//
// Tokens are escaped per RFC 6901 when rendered ("~" becomes "~0" and "/"
// becomes "~1"), which matters for path templates:
//
//	pathutil.Root().Child("paths").Child("/pets/{id}").String()
//	// "#/paths/~1pets~1{id}"
//
// # Reference Builders
//
//	ref := pathutil.SchemaRef("Pet") // "#/components/schemas/Pet"
package pathutil
