package walker

import "github.com/erraggy/oasproto/parser"

// walkSchema walks a schema and every schema nested in it, calling the
// post handlers once the children are done. It reports whether the schema
// was fully visited (not skipped, not cut short by SkipChildren or Stop).
func (w *Walker) walkSchema(schema *parser.Schema, depth int, state walkState) bool {
	if schema == nil || w.stopped {
		return false
	}

	if depth > w.maxDepth {
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped(state.buildContext(), "depth", schema)
		}
		return false
	}

	if w.visitedSchemas[schema] {
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped(state.buildContext(), "cycle", schema)
		}
		return false
	}
	w.visitedSchemas[schema] = true
	defer delete(w.visitedSchemas, schema)

	if w.onSchema != nil {
		if !w.handleAction(w.onSchema(state.buildContext(), schema)) {
			return false
		}
	}

	nested := state.withParent(schema)
	w.walkSchemaChildren(schema, depth+1, nested)
	if w.stopped {
		return false
	}

	if w.onSchemaPost != nil || w.onProperty != nil {
		wc := state.buildContext()
		if w.onSchemaPost != nil {
			w.onSchemaPost(wc, schema)
		}
		if w.onProperty != nil && state.property != "" {
			w.onProperty(wc, state.component, state.property, schema)
		}
	}
	return true
}

func (w *Walker) walkSchemaChildren(schema *parser.Schema, depth int, state walkState) {
	for _, name := range parser.SortedKeys(schema.Properties) {
		if w.stopped {
			return
		}
		prop := schema.Properties[name]
		if prop == nil {
			continue
		}
		propState := state.entry("properties", name)
		propState.property = name
		w.walkSchema(prop, depth, propState)
	}

	if ap, ok := schema.AdditionalPropertiesSchema(); ok {
		w.walkSchema(ap, depth, state.child("additionalProperties"))
	}
	if schema.PropertyNames != nil {
		w.walkSchema(schema.PropertyNames, depth, state.child("propertyNames"))
	}
	if up, ok := schema.UnevaluatedProperties.(*parser.Schema); ok && up != nil {
		w.walkSchema(up, depth, state.child("unevaluatedProperties"))
	}
	if schema.Items != nil {
		w.walkSchema(schema.Items, depth, state.child("items"))
	}

	w.walkSchemaList("allOf", schema.AllOf, depth, state)
	w.walkSchemaList("anyOf", schema.AnyOf, depth, state)
	w.walkSchemaList("oneOf", schema.OneOf, depth, state)

	if schema.Not != nil {
		w.walkSchema(schema.Not, depth, state.child("not"))
	}
}

func (w *Walker) walkSchemaList(keyword string, list []*parser.Schema, depth int, state walkState) {
	for i, sub := range list {
		if w.stopped {
			return
		}
		w.walkSchema(sub, depth, state.child(keyword).item(i))
	}
}
