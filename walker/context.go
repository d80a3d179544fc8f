package walker

import "github.com/erraggy/oasproto/internal/pathutil"

// WalkContext provides contextual information about the current node being visited.
type WalkContext struct {
	// Location is the position of the current node.
	Location pathutil.Location

	// JSONPointer is Location rendered as a fragment, for example
	// "#/components/schemas/Pet/properties/name".
	JSONPointer string

	// Name is the map key of the current node when it is a map entry
	// (component name, property name, media type, status code, ...).
	// Empty for list members and keyword children such as items.
	Name string

	// Component is the name of the enclosing components.schemas entry.
	// Empty outside components.schemas.
	Component string

	// Property is set when the current schema is directly the value of a
	// properties entry.
	Property string

	// IsComponent is true anywhere under the components section.
	IsComponent bool

	// PathTemplate is the URL path template when walking within paths.
	// Example: "/pets/{petId}"
	PathTemplate string

	// Method is the HTTP method when walking within an operation.
	Method string

	// Parent is the nearest ancestor node.
	Parent *ParentInfo
}

// IsNamedComponent reports whether the current node is a components.schemas
// entry itself rather than something nested in one.
func (wc *WalkContext) IsNamedComponent() bool {
	if wc.Location.Len() != 3 {
		return false
	}
	segments := wc.Location.Segments()
	return segments[0] == "components" && segments[1] == "schemas"
}

// InOperationScope returns true if currently walking within an operation.
func (wc *WalkContext) InOperationScope() bool {
	return wc.Method != ""
}

// walkState tracks context as we descend through the document. It is
// passed by value, so a child never alters its parent's state.
type walkState struct {
	loc          pathutil.Location
	name         string
	component    string
	property     string
	isComponent  bool
	pathTemplate string
	method       string
	parent       *ParentInfo
}

// buildContext creates a WalkContext from the current walk state.
func (s walkState) buildContext() *WalkContext {
	return &WalkContext{
		Location:     s.loc,
		JSONPointer:  s.loc.String(),
		Name:         s.name,
		Component:    s.component,
		Property:     s.property,
		IsComponent:  s.isComponent,
		PathTemplate: s.pathTemplate,
		Method:       s.method,
		Parent:       s.parent,
	}
}

// child returns the state for a keyword child such as items or oneOf/2.
func (s walkState) child(keys ...string) walkState {
	c := s
	for _, k := range keys {
		c.loc = c.loc.Child(k)
	}
	c.name = ""
	c.property = ""
	return c
}

// item returns the state for element i of a list.
func (s walkState) item(i int) walkState {
	c := s.child()
	c.loc = c.loc.ChildIndex(i)
	return c
}

// entry returns the state for a map entry under the given keyword.
func (s walkState) entry(keyword, key string) walkState {
	c := s.child(keyword, key)
	c.name = key
	return c
}

// withParent returns the state with node pushed as the nearest ancestor.
func (s walkState) withParent(node any) walkState {
	c := s
	c.parent = &ParentInfo{Node: node, Location: s.loc, Parent: s.parent}
	return c
}
