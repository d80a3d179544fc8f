package walker

import (
	"github.com/erraggy/oasproto/internal/pathutil"
	"github.com/erraggy/oasproto/parser"
)

// SchemaInfo contains information about a collected schema.
type SchemaInfo struct {
	// Schema is the collected schema.
	Schema *parser.Schema

	// Name is the map key of the schema, if any.
	Name string

	// Component is the enclosing components.schemas entry name.
	Component string

	// Property is set when the schema is directly a property value.
	Property string

	// Location is the schema's position in the document.
	Location pathutil.Location

	// IsComponent is true when the schema is defined under components.
	IsComponent bool
}

// SchemaCollector holds schemas collected during a walk.
type SchemaCollector struct {
	// All contains all schemas in post-order.
	All []*SchemaInfo

	// Components contains only the named components.schemas entries.
	Components []*SchemaInfo

	// ByPointer provides lookup by JSON pointer.
	ByPointer map[string]*SchemaInfo
}

// CollectSchemas walks the document and collects every schema in the
// order the post handlers see them.
func CollectSchemas(doc *parser.Document) (*SchemaCollector, error) {
	collector := &SchemaCollector{
		ByPointer: make(map[string]*SchemaInfo),
	}

	err := Walk(doc,
		WithSchemaPostHandler(func(wc *WalkContext, schema *parser.Schema) {
			info := &SchemaInfo{
				Schema:      schema,
				Name:        wc.Name,
				Component:   wc.Component,
				Property:    wc.Property,
				Location:    wc.Location,
				IsComponent: wc.IsComponent,
			}
			collector.All = append(collector.All, info)
			collector.ByPointer[wc.JSONPointer] = info
			if wc.IsNamedComponent() {
				collector.Components = append(collector.Components, info)
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	return collector, nil
}

// CollectComponentSchemas returns the named component schemas in sorted
// name order.
func CollectComponentSchemas(doc *parser.Document) ([]*SchemaInfo, error) {
	var out []*SchemaInfo
	err := Walk(doc,
		WithComponentSchemaHandler(func(wc *WalkContext, name string, schema *parser.Schema) {
			out = append(out, &SchemaInfo{
				Schema:      schema,
				Name:        name,
				Component:   name,
				Location:    wc.Location,
				IsComponent: true,
			})
		}),
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}
