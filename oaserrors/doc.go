// Package oaserrors provides structured error types for oasproto.
//
// These error types enable programmatic error handling via [errors.Is] and
// [errors.As]. Most of them never abort a rewrite: the rewriter records them
// as diagnostics and moves on, so callers typically meet them while
// inspecting a result rather than as a returned error.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON decoding failures and unsupported documents
//   - [ReferenceError]: a $ref that names nothing in the document, or an
//     external ref the engine does not follow
//   - [ConflictError]: a generated property or component name that collides
//     with an existing one
//   - [ConversionError]: Swagger 2.0 to OpenAPI 3 upgrade failures
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel for errors.Is():
//
//   - [ErrParse], [ErrReference], [ErrCircularReference], [ErrConflict],
//     [ErrConversion], [ErrConfig]
//
// # Usage
//
//	result, err := rewriter.RewriteWithOptions(rewriter.WithFilePath("api.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range result.Diagnostics {
//	    var conflict *oaserrors.ConflictError
//	    if errors.As(d.Err, &conflict) {
//	        fmt.Println("name collision:", conflict.Name)
//	    }
//	}
package oaserrors
