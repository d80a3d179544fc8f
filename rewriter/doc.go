// Package rewriter normalizes an OpenAPI 3.x document into the shape a
// protobuf code generator can consume: no arbitrary-value maps, no null
// type, and no anonymous unions without a marker.
//
// # Quick Start
//
//	result, err := rewriter.RewriteWithOptions(
//	    rewriter.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Applied %d rewrites\n", result.RewriteCount)
//
// Or, with a document already in memory:
//
//	doc, err = rewriter.RewriteDocument(doc)
//
// # Phases
//
// The pipeline is three full post-order walks of the document. Children
// are rewritten before their parent, and within a node the rules run in
// the order listed, each seeing the output of the one before.
//
// [PhaseLocal]:
//   - const-to-enum: a oneOf whose members carry const values becomes an enum.
//     A member without a const contributes its type name as a value.
//   - array-dedup: a oneOf member whose shape an array member already holds
//     as its items is dropped.
//   - collapse-composite: a single-member allOf, anyOf or oneOf is merged
//     into the node.
//   - any-additional-properties: additionalProperties that accepts anything
//     becomes type object.
//   - enum-dedup: enum values equal ignoring case are folded.
//   - null-type: the null type becomes [Rewriter.NullTypeName].
//   - redundant-union: a two-member union whose titled member is already a
//     property of the other member collapses to the other member.
//
// [PhaseRestructure]:
//   - single-map: an object with minProperties 1, maxProperties 1 and a
//     referenced additionalProperties type T becomes a reference to a
//     generated "<T>SingleMap" component with a key field and a value field.
//   - titled-additional-properties: a titled additionalProperties schema
//     becomes a property named by its title.
//   - oneof-exclusive: a oneOf of single-property objects becomes one object
//     with maxProperties 1.
//
// [PhaseAnnotate]:
//   - oneof-annotation: objects with maxProperties 1 get x-oneof-schema and
//     their properties get x-oneof-property.
//
// # Heuristics
//
// redundant-union and const-to-enum match on serialized schema text, not
// on structural equality. A miss leaves the node as it was.
//
// # Diagnostics
//
// Unresolvable references and name conflicts never stop the pipeline. The
// affected rewrite is skipped and a [Diagnostic] is added to the result.
//
// # Verification
//
// [Verify] reports nodes that break the invariants the pipeline
// establishes, which is useful on documents produced elsewhere.
package rewriter
