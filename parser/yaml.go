package parser

import "go.yaml.in/yaml/v4"

// The MarshalYAML methods encode the typed fields first and then append
// Extra entries whose keys were not emitted. Appending by hand instead of
// relying on yaml:",inline" lets a keyword that failed typed decoding (for
// example "items: false") round-trip through Extra without colliding with
// the struct field of the same name.

// yamlWithExtra encodes v into a mapping node and appends extra.
func yamlWithExtra(v any, extra map[string]any) (any, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	if len(extra) == 0 || node.Kind != yaml.MappingNode {
		return &node, nil
	}

	emitted := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		emitted[node.Content[i].Value] = true
	}
	for _, k := range SortedKeys(extra) {
		if emitted[k] {
			continue
		}
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		valueNode := new(yaml.Node)
		if err := valueNode.Encode(extra[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return &node, nil
}

// MarshalYAML implements yaml.Marshaler.
func (s *Schema) MarshalYAML() (any, error) {
	type alias Schema
	cp := alias(*s)
	cp.Extra = nil
	return yamlWithExtra(&cp, s.Extra)
}

// MarshalYAML implements yaml.Marshaler.
func (d *Discriminator) MarshalYAML() (any, error) {
	type alias Discriminator
	cp := alias(*d)
	cp.Extra = nil
	return yamlWithExtra(&cp, d.Extra)
}

// MarshalYAML implements yaml.Marshaler.
func (d *Document) MarshalYAML() (any, error) {
	type alias Document
	cp := alias(*d)
	cp.Extra = nil
	return yamlWithExtra(&cp, d.Extra)
}

// MarshalYAML implements yaml.Marshaler.
func (i *Info) MarshalYAML() (any, error) {
	type alias Info
	cp := alias(*i)
	cp.Extra = nil
	return yamlWithExtra(&cp, i.Extra)
}

// MarshalYAML implements yaml.Marshaler.
func (c *Components) MarshalYAML() (any, error) {
	type alias Components
	cp := alias(*c)
	cp.Extra = nil
	return yamlWithExtra(&cp, c.Extra)
}

// MarshalYAML implements yaml.Marshaler.
func (p *PathItem) MarshalYAML() (any, error) {
	type alias PathItem
	cp := alias(*p)
	cp.Extra = nil
	return yamlWithExtra(&cp, p.Extra)
}

// MarshalYAML implements yaml.Marshaler.
func (o *Operation) MarshalYAML() (any, error) {
	type alias Operation
	cp := alias(*o)
	cp.Extra = nil
	return yamlWithExtra(&cp, o.Extra)
}

// MarshalYAML implements yaml.Marshaler.
func (p *Parameter) MarshalYAML() (any, error) {
	type alias Parameter
	cp := alias(*p)
	cp.Extra = nil
	return yamlWithExtra(&cp, p.Extra)
}

// MarshalYAML implements yaml.Marshaler.
func (rb *RequestBody) MarshalYAML() (any, error) {
	type alias RequestBody
	cp := alias(*rb)
	cp.Extra = nil
	return yamlWithExtra(&cp, rb.Extra)
}

// MarshalYAML implements yaml.Marshaler.
func (r *Response) MarshalYAML() (any, error) {
	type alias Response
	cp := alias(*r)
	cp.Extra = nil
	return yamlWithExtra(&cp, r.Extra)
}

// MarshalYAML implements yaml.Marshaler.
func (mt *MediaType) MarshalYAML() (any, error) {
	type alias MediaType
	cp := alias(*mt)
	cp.Extra = nil
	return yamlWithExtra(&cp, mt.Extra)
}

// MarshalYAML implements yaml.Marshaler.
func (h *Header) MarshalYAML() (any, error) {
	type alias Header
	cp := alias(*h)
	cp.Extra = nil
	return yamlWithExtra(&cp, h.Extra)
}
