// Package parser loads OpenAPI documents into a schema-centric object model.
//
// The model covers the parts of an OpenAPI 3.x document that carry schemas:
// components (schemas, parameters, request bodies, responses, headers) and
// the operations under paths. Every other key, including vendor extensions,
// is kept in the Extra map of the nearest modeled object so a document can be
// decoded, rewritten and encoded again without losing content.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, name := range result.Document.SchemaNames() {
//		fmt.Println(name)
//	}
//
// YAML and JSON input are both accepted; the format is taken from the file
// extension or sniffed from the content. Swagger 2.0 input is upgraded to
// OpenAPI 3 through kin-openapi and a warning is added to the result.
// Documents already loaded with kin-openapi can be converted with [FromKin].
//
// # References
//
// [Document.ResolveSchema] follows a single $ref into components.schemas,
// including pointers into nested keywords such as
// "#/components/schemas/Pet/properties/owner". External references are not
// resolved; they produce an [oaserrors.ReferenceError] that callers treat
// as a soft failure.
//
// # Encoding
//
// [Encode] writes a document as YAML or indented JSON. Map keys are emitted
// in sorted order so repeated runs produce identical output.
package parser
