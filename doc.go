// Package oasproto rewrites OpenAPI 3.x documents into a shape that maps
// cleanly onto Protocol Buffers.
//
// Generators that turn OpenAPI into .proto files struggle with a handful of
// JSON Schema constructs: maps of arbitrary values, the null type, unions
// of const literals, single-entry maps used as tagged values, and
// anonymous oneOf alternatives. oasproto runs a fixed rewrite pipeline
// over the document so each of those becomes something a generator can
// express as a message, an enum or a oneof.
//
// # Packages
//
//   - parser: Load YAML or JSON documents (Swagger 2.0 is upgraded on load)
//     and encode them back without losing unmodeled keys.
//   - walker: Post-order traversal of every schema with location context.
//   - rewriter: The three-phase rewrite pipeline and the invariant verifier.
//   - oaserrors: Error types and sentinels shared by the packages above.
//
// # Quick Start
//
//	result, err := rewriter.RewriteWithOptions(
//		rewriter.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, d := range result.Diagnostics {
//		fmt.Println(d)
//	}
//	out, err := parser.Encode(result.Document, result.SourceFormat)
//
// # Command Line
//
// The oasproto command wraps the same pipeline:
//
//	oasproto rewrite -o rewritten.yaml openapi.yaml
//	oasproto verify rewritten.yaml
//
// Build metadata is available through [Version] and [BuildInfo].
package oasproto
