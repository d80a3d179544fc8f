package schemautil

import (
	"reflect"

	"github.com/erraggy/oasproto/parser"
)

var extraFieldIndex = func() int {
	f, ok := reflect.TypeOf(parser.Schema{}).FieldByName("Extra")
	if !ok {
		panic("schemautil: parser.Schema has no Extra field")
	}
	return f.Index[0]
}()

// MergeInto copies every non-zero field of src onto dst. Fields set on both
// take src's value. Extra is merged key by key with the same precedence.
// Nested values are shared, not copied; pass a Clone when src is reachable
// from elsewhere in the document.
func MergeInto(dst, src *parser.Schema) {
	if dst == nil || src == nil || dst == src {
		return
	}
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src).Elem()
	for i := 0; i < sv.NumField(); i++ {
		if i == extraFieldIndex {
			continue
		}
		f := sv.Field(i)
		if !f.IsZero() {
			dv.Field(i).Set(f)
		}
	}
	for k, v := range src.Extra {
		dst.SetExtension(k, v)
	}
}

// Clone returns a deep copy of s. Shared subtrees in s become independent
// copies, and a cycle through pointers is cut by reusing the copy already
// made for that pointer.
func Clone(s *parser.Schema) *parser.Schema {
	return cloneSchema(s, make(map[*parser.Schema]*parser.Schema))
}

func cloneSchema(s *parser.Schema, seen map[*parser.Schema]*parser.Schema) *parser.Schema {
	if s == nil {
		return nil
	}
	if c, ok := seen[s]; ok {
		return c
	}
	c := new(parser.Schema)
	seen[s] = c
	*c = *s

	c.Default = cloneValue(s.Default)
	c.Example = cloneValue(s.Example)
	c.Type = cloneValue(s.Type)
	c.Const = cloneValue(s.Const)
	c.ExclusiveMinimum = cloneValue(s.ExclusiveMinimum)
	c.ExclusiveMaximum = cloneValue(s.ExclusiveMaximum)
	if s.Examples != nil {
		c.Examples = cloneValue(s.Examples).([]any)
	}
	if s.Enum != nil {
		c.Enum = cloneValue(s.Enum).([]any)
	}
	c.MultipleOf = clonePtr(s.MultipleOf)
	c.Minimum = clonePtr(s.Minimum)
	c.Maximum = clonePtr(s.Maximum)
	c.MinLength = clonePtr(s.MinLength)
	c.MaxLength = clonePtr(s.MaxLength)
	c.MinItems = clonePtr(s.MinItems)
	c.MaxItems = clonePtr(s.MaxItems)
	c.MinProperties = clonePtr(s.MinProperties)
	c.MaxProperties = clonePtr(s.MaxProperties)

	c.Items = cloneSchema(s.Items, seen)
	c.PropertyNames = cloneSchema(s.PropertyNames, seen)
	c.Not = cloneSchema(s.Not, seen)
	c.AdditionalProperties = cloneSchemaOrBool(s.AdditionalProperties, seen)
	c.UnevaluatedProperties = cloneSchemaOrBool(s.UnevaluatedProperties, seen)

	if s.Properties != nil {
		c.Properties = make(map[string]*parser.Schema, len(s.Properties))
		for k, v := range s.Properties {
			c.Properties[k] = cloneSchema(v, seen)
		}
	}
	if s.Required != nil {
		c.Required = append([]string(nil), s.Required...)
	}
	c.AllOf = cloneList(s.AllOf, seen)
	c.AnyOf = cloneList(s.AnyOf, seen)
	c.OneOf = cloneList(s.OneOf, seen)

	if s.Discriminator != nil {
		d := *s.Discriminator
		if d.Mapping != nil {
			d.Mapping = make(map[string]string, len(s.Discriminator.Mapping))
			for k, v := range s.Discriminator.Mapping {
				d.Mapping[k] = v
			}
		}
		if d.Extra != nil {
			d.Extra = cloneValue(d.Extra).(map[string]any)
		}
		c.Discriminator = &d
	}
	if s.Extra != nil {
		c.Extra = cloneValue(s.Extra).(map[string]any)
	}
	return c
}

func cloneList(list []*parser.Schema, seen map[*parser.Schema]*parser.Schema) []*parser.Schema {
	if list == nil {
		return nil
	}
	out := make([]*parser.Schema, len(list))
	for i, s := range list {
		out[i] = cloneSchema(s, seen)
	}
	return out
}

func cloneSchemaOrBool(v any, seen map[*parser.Schema]*parser.Schema) any {
	if s, ok := v.(*parser.Schema); ok {
		return cloneSchema(s, seen)
	}
	return v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneValue deep-copies the map and slice shapes produced by YAML and JSON
// decoding. Scalars are returned as-is.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	}
	return v
}
