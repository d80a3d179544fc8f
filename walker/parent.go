package walker

import (
	"github.com/erraggy/oasproto/internal/pathutil"
	"github.com/erraggy/oasproto/parser"
)

// ParentInfo describes an ancestor of the node being visited.
type ParentInfo struct {
	// Node is the ancestor (*parser.Schema, *parser.Operation, *parser.PathItem,
	// *parser.Parameter, *parser.RequestBody, *parser.Response,
	// *parser.MediaType or *parser.Header).
	Node any

	// Location is the ancestor's position in the document.
	Location pathutil.Location

	// Parent is the next ancestor up, nil at the top.
	Parent *ParentInfo
}

// ParentSchema returns the nearest ancestor that is a Schema, if any.
func (wc *WalkContext) ParentSchema() (*parser.Schema, bool) {
	for p := wc.Parent; p != nil; p = p.Parent {
		if s, ok := p.Node.(*parser.Schema); ok {
			return s, true
		}
	}
	return nil, false
}

// ParentOperation returns the nearest ancestor that is an Operation, if any.
func (wc *WalkContext) ParentOperation() (*parser.Operation, bool) {
	for p := wc.Parent; p != nil; p = p.Parent {
		if op, ok := p.Node.(*parser.Operation); ok {
			return op, true
		}
	}
	return nil, false
}

// Ancestors returns all ancestors from immediate parent to root.
func (wc *WalkContext) Ancestors() []*ParentInfo {
	var ancestors []*ParentInfo
	for p := wc.Parent; p != nil; p = p.Parent {
		ancestors = append(ancestors, p)
	}
	return ancestors
}

// Depth returns the number of ancestors.
func (wc *WalkContext) Depth() int {
	depth := 0
	for p := wc.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}
