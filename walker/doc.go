// Package walker traverses every schema-bearing location of an OpenAPI
// document.
//
// Schemas are reached from components (schemas, parameters, request bodies,
// responses, headers) and from every operation under paths. Inside a schema
// the walker descends into properties, additionalProperties and
// unevaluatedProperties in their schema form, propertyNames, items, allOf,
// anyOf, oneOf and not. References are visited as nodes but never followed.
//
// # Quick Start
//
// Count the inline property schemas of each component:
//
//	counts := map[string]int{}
//	err := walker.Walk(doc,
//	    walker.WithPropertyHandler(func(wc *walker.WalkContext, owner, property string, s *parser.Schema) {
//	        counts[owner]++
//	    }),
//	)
//
// # Post-Order Handlers
//
// [WithSchemaPostHandler], [WithComponentSchemaHandler] and
// [WithPropertyHandler] run after a node's children, so a handler that
// rewrites a node already sees rewritten children. Handlers may replace a
// node's contents in place (*schema = ...); pointer identity is kept.
//
// # Flow Control
//
// Pre-visit handlers return an [Action]:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// Post handlers are not called if the pre-visit handler returned SkipChildren or Stop.
//
// # Cycles and Depth
//
// A schema already on the current descent path is skipped with reason
// "cycle"; a schema nested deeper than [WithMaxDepth] is skipped with
// reason "depth". Both are reported to [WithSchemaSkippedHandler].
//
// # Determinism
//
// Map entries are visited in sorted key order. Keys are read once before
// iterating, so entries added by a handler are not visited by that walk.
package walker
