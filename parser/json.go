package parser

import "github.com/goccy/go-json"

// The MarshalJSON methods below flatten Extra into the enclosing JSON
// object, since encoding/json-compatible encoders have no equivalent of
// yaml:",inline". Typed fields win over an Extra entry with the same key.

// marshalWithExtra marshals v and merges extra into the resulting object.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, exists := fields[k]; exists {
			continue
		}
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		fields[k] = raw
	}
	return json.Marshal(fields)
}

// MarshalJSON implements json.Marshaler.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type alias Schema
	return marshalWithExtra((*alias)(s), s.Extra)
}

// MarshalJSON implements json.Marshaler.
func (d *Discriminator) MarshalJSON() ([]byte, error) {
	type alias Discriminator
	return marshalWithExtra((*alias)(d), d.Extra)
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	return marshalWithExtra((*alias)(d), d.Extra)
}

// MarshalJSON implements json.Marshaler.
func (i *Info) MarshalJSON() ([]byte, error) {
	type alias Info
	return marshalWithExtra((*alias)(i), i.Extra)
}

// MarshalJSON implements json.Marshaler.
func (c *Components) MarshalJSON() ([]byte, error) {
	type alias Components
	return marshalWithExtra((*alias)(c), c.Extra)
}

// MarshalJSON implements json.Marshaler.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	type alias PathItem
	return marshalWithExtra((*alias)(p), p.Extra)
}

// MarshalJSON implements json.Marshaler.
func (o *Operation) MarshalJSON() ([]byte, error) {
	type alias Operation
	return marshalWithExtra((*alias)(o), o.Extra)
}

// MarshalJSON implements json.Marshaler.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	type alias Parameter
	return marshalWithExtra((*alias)(p), p.Extra)
}

// MarshalJSON implements json.Marshaler.
func (rb *RequestBody) MarshalJSON() ([]byte, error) {
	type alias RequestBody
	return marshalWithExtra((*alias)(rb), rb.Extra)
}

// MarshalJSON implements json.Marshaler.
func (r *Response) MarshalJSON() ([]byte, error) {
	type alias Response
	return marshalWithExtra((*alias)(r), r.Extra)
}

// MarshalJSON implements json.Marshaler.
func (mt *MediaType) MarshalJSON() ([]byte, error) {
	type alias MediaType
	return marshalWithExtra((*alias)(mt), mt.Extra)
}

// MarshalJSON implements json.Marshaler.
func (h *Header) MarshalJSON() ([]byte, error) {
	type alias Header
	return marshalWithExtra((*alias)(h), h.Extra)
}
