package walker

import "github.com/erraggy/oasproto/parser"

func (w *Walker) walkComponents(c *parser.Components, root walkState) {
	state := root.child("components")
	state.isComponent = true

	for _, name := range parser.SortedKeys(c.Schemas) {
		if w.stopped {
			return
		}
		schema := c.Schemas[name]
		if schema == nil {
			continue
		}
		s := state.entry("schemas", name)
		s.component = name
		if w.walkSchema(schema, 0, s) && w.onComponentSchema != nil && !w.stopped {
			w.onComponentSchema(s.buildContext(), name, schema)
		}
	}

	for _, name := range parser.SortedKeys(c.Parameters) {
		if w.stopped {
			return
		}
		w.walkParameter(c.Parameters[name], state.entry("parameters", name))
	}
	for _, name := range parser.SortedKeys(c.RequestBodies) {
		if w.stopped {
			return
		}
		w.walkRequestBody(c.RequestBodies[name], state.entry("requestBodies", name))
	}
	for _, name := range parser.SortedKeys(c.Responses) {
		if w.stopped {
			return
		}
		w.walkResponse(c.Responses[name], state.entry("responses", name))
	}
	if len(c.Headers) > 0 {
		w.walkHeaders(c.Headers, state.child("headers"))
	}
}

func (w *Walker) walkPaths(paths map[string]*parser.PathItem, root walkState) {
	for _, tmpl := range parser.SortedKeys(paths) {
		if w.stopped {
			return
		}
		item := paths[tmpl]
		if item == nil {
			continue
		}
		state := root.entry("paths", tmpl)
		state.pathTemplate = tmpl
		w.walkPathItem(item, state)
	}
}

func (w *Walker) walkPathItem(item *parser.PathItem, state walkState) {
	state = state.withParent(item)

	w.walkParameters(item.Parameters, state.child("parameters"))

	for _, mo := range item.Operations() {
		if w.stopped {
			return
		}
		opState := state.child(mo.Method)
		opState.name = mo.Method
		opState.method = mo.Method
		w.walkOperation(mo.Operation, opState)
	}
}

func (w *Walker) walkOperation(op *parser.Operation, state walkState) {
	if w.onOperation != nil {
		if !w.handleAction(w.onOperation(state.buildContext(), op)) {
			return
		}
	}
	state = state.withParent(op)

	w.walkParameters(op.Parameters, state.child("parameters"))
	if w.stopped {
		return
	}
	if op.RequestBody != nil {
		w.walkRequestBody(op.RequestBody, state.child("requestBody"))
	}
	for _, code := range parser.SortedKeys(op.Responses) {
		if w.stopped {
			return
		}
		w.walkResponse(op.Responses[code], state.entry("responses", code))
	}
}

func (w *Walker) walkParameters(params []*parser.Parameter, state walkState) {
	for i, p := range params {
		if w.stopped {
			return
		}
		w.walkParameter(p, state.item(i))
	}
}

func (w *Walker) walkParameter(p *parser.Parameter, state walkState) {
	if p == nil || p.Ref != "" {
		return
	}
	state = state.withParent(p)
	if p.Schema != nil {
		w.walkSchema(p.Schema, 0, state.child("schema"))
	}
	w.walkContent(p.Content, state.child("content"))
}

func (w *Walker) walkRequestBody(rb *parser.RequestBody, state walkState) {
	if rb == nil || rb.Ref != "" {
		return
	}
	w.walkContent(rb.Content, state.withParent(rb).child("content"))
}

func (w *Walker) walkResponse(r *parser.Response, state walkState) {
	if r == nil || r.Ref != "" {
		return
	}
	state = state.withParent(r)
	w.walkHeaders(r.Headers, state.child("headers"))
	w.walkContent(r.Content, state.child("content"))
}

func (w *Walker) walkHeaders(headers map[string]*parser.Header, state walkState) {
	for _, name := range parser.SortedKeys(headers) {
		if w.stopped {
			return
		}
		h := headers[name]
		if h == nil || h.Ref != "" {
			continue
		}
		hState := state.child(name)
		hState.name = name
		hState = hState.withParent(h)
		if h.Schema != nil {
			w.walkSchema(h.Schema, 0, hState.child("schema"))
		}
		w.walkContent(h.Content, hState.child("content"))
	}
}

func (w *Walker) walkContent(content map[string]*parser.MediaType, state walkState) {
	for _, mediaType := range parser.SortedKeys(content) {
		if w.stopped {
			return
		}
		mt := content[mediaType]
		if mt == nil || mt.Schema == nil {
			continue
		}
		mtState := state.child(mediaType)
		mtState.name = mediaType
		w.walkSchema(mt.Schema, 0, mtState.withParent(mt).child("schema"))
	}
}
