package walker

import (
	"fmt"

	"github.com/erraggy/oasproto/internal/pathutil"
	"github.com/erraggy/oasproto/parser"
)

// DefaultMaxDepth is the schema nesting depth beyond which the walker stops
// descending.
const DefaultMaxDepth = 100

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// SchemaHandler is called before a schema's children are visited.
type SchemaHandler func(wc *WalkContext, schema *parser.Schema) Action

// SchemaPostHandler is called after all of a schema's children have been
// visited. It may rewrite the schema in place.
type SchemaPostHandler func(wc *WalkContext, schema *parser.Schema)

// ComponentSchemaHandler is called, post-order, for each entry of
// components.schemas.
type ComponentSchemaHandler func(wc *WalkContext, name string, schema *parser.Schema)

// PropertyHandler is called, post-order, for each schema that is directly
// the value of a properties entry. owner is the enclosing component schema
// name, empty outside components.schemas.
type PropertyHandler func(wc *WalkContext, owner, property string, schema *parser.Schema)

// OperationHandler is called for each operation before its parameters,
// request body and responses are visited.
type OperationHandler func(wc *WalkContext, op *parser.Operation) Action

// SchemaSkippedHandler is called when a schema is skipped due to depth limit or cycle detection.
// The reason parameter is either "depth" when the schema exceeds maxDepth,
// or "cycle" when the schema is already on the current descent path.
type SchemaSkippedHandler func(wc *WalkContext, reason string, schema *parser.Schema)

// Walker traverses the schema-bearing locations of a document.
type Walker struct {
	onSchema          SchemaHandler
	onSchemaPost      SchemaPostHandler
	onComponentSchema ComponentSchemaHandler
	onProperty        PropertyHandler
	onOperation       OperationHandler
	onSchemaSkipped   SchemaSkippedHandler

	maxDepth int

	// visitedSchemas holds the schemas on the current descent path.
	visitedSchemas map[*parser.Schema]bool
	stopped        bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxDepth: DefaultMaxDepth,
	}
}

// Option configures the Walker.
type Option func(*Walker)

// WithSchemaHandler sets the pre-visit handler for every schema.
func WithSchemaHandler(fn SchemaHandler) Option {
	return func(w *Walker) { w.onSchema = fn }
}

// WithSchemaPostHandler sets the post-visit handler for every schema.
// It is not called for a schema whose pre-visit handler returned
// SkipChildren or Stop.
func WithSchemaPostHandler(fn SchemaPostHandler) Option {
	return func(w *Walker) { w.onSchemaPost = fn }
}

// WithComponentSchemaHandler sets the post-visit handler for named
// component schemas.
func WithComponentSchemaHandler(fn ComponentSchemaHandler) Option {
	return func(w *Walker) { w.onComponentSchema = fn }
}

// WithPropertyHandler sets the post-visit handler for inline property schemas.
func WithPropertyHandler(fn PropertyHandler) Option {
	return func(w *Walker) { w.onProperty = fn }
}

// WithOperationHandler sets the handler for operations.
func WithOperationHandler(fn OperationHandler) Option {
	return func(w *Walker) { w.onOperation = fn }
}

// WithSchemaSkippedHandler sets the handler called when schemas are skipped.
func WithSchemaSkippedHandler(fn SchemaSkippedHandler) Option {
	return func(w *Walker) { w.onSchemaSkipped = fn }
}

// WithMaxDepth sets the maximum recursion depth for schema traversal.
// Default is 100. If depth is <= 0, the default is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// Walk traverses doc and calls the registered handlers.
//
// Component schemas are visited first, in sorted name order, followed by
// the schemas of component parameters, request bodies, responses and
// headers, and finally every path in sorted order. Keys are snapshotted
// before iteration, so components added by a handler are not visited by
// the same walk.
func Walk(doc *parser.Document, opts ...Option) error {
	if doc == nil {
		return fmt.Errorf("walker: nil Document")
	}

	w := New()
	for _, opt := range opts {
		opt(w)
	}
	return w.walk(doc)
}

func (w *Walker) walk(doc *parser.Document) error {
	w.visitedSchemas = make(map[*parser.Schema]bool)
	w.stopped = false

	root := walkState{loc: pathutil.Root()}
	if doc.Components != nil {
		w.walkComponents(doc.Components, root)
	}
	if !w.stopped && doc.Paths != nil {
		w.walkPaths(doc.Paths, root)
	}
	return nil
}

// handleAction processes the action returned by a handler.
// Returns true if walking should continue to children.
func (w *Walker) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}
