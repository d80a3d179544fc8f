package parser

// The decoders below build typed structs from the map[string]any that
// yaml.Unmarshal or json.Unmarshal produce. A key is decoded into its typed
// field only when the value has the expected shape; anything else, and any
// key not modeled, is kept verbatim in Extra.

// decodeDocument creates a Document from a raw map.
func decodeDocument(m map[string]any) *Document {
	doc := new(Document)
	for k, v := range m {
		switch k {
		case "openapi":
			if s, ok := getString(v); ok {
				doc.OpenAPI = s
				continue
			}
		case "info":
			if sub, ok := asMap(v); ok {
				doc.Info = decodeInfo(sub)
				continue
			}
		case "paths":
			if sub, ok := asMap(v); ok {
				doc.Paths = decodePaths(sub)
				continue
			}
		case "components":
			if sub, ok := asMap(v); ok {
				doc.Components = decodeComponents(sub)
				continue
			}
		}
		doc.Extra = putExtra(doc.Extra, k, v)
	}
	return doc
}

func decodeInfo(m map[string]any) *Info {
	info := new(Info)
	for k, v := range m {
		switch k {
		case "title":
			if s, ok := getString(v); ok {
				info.Title = s
				continue
			}
		case "version":
			if s, ok := getString(v); ok {
				info.Version = s
				continue
			}
		case "description":
			if s, ok := getString(v); ok {
				info.Description = s
				continue
			}
		}
		info.Extra = putExtra(info.Extra, k, v)
	}
	return info
}

func decodeComponents(m map[string]any) *Components {
	c := new(Components)
	for k, v := range m {
		sub, isMap := asMap(v)
		if !isMap {
			c.Extra = putExtra(c.Extra, k, v)
			continue
		}
		switch k {
		case "schemas":
			c.Schemas = decodeSchemaMap(sub)
		case "responses":
			c.Responses = make(map[string]*Response, len(sub))
			for name, raw := range sub {
				if rm, ok := asMap(raw); ok {
					c.Responses[name] = decodeResponse(rm)
				}
			}
		case "parameters":
			c.Parameters = make(map[string]*Parameter, len(sub))
			for name, raw := range sub {
				if pm, ok := asMap(raw); ok {
					c.Parameters[name] = decodeParameter(pm)
				}
			}
		case "requestBodies":
			c.RequestBodies = make(map[string]*RequestBody, len(sub))
			for name, raw := range sub {
				if rm, ok := asMap(raw); ok {
					c.RequestBodies[name] = decodeRequestBody(rm)
				}
			}
		case "headers":
			c.Headers = decodeHeaders(sub)
		default:
			c.Extra = putExtra(c.Extra, k, v)
		}
	}
	return c
}

func decodePaths(m map[string]any) map[string]*PathItem {
	paths := make(map[string]*PathItem, len(m))
	for path, raw := range m {
		sub, ok := asMap(raw)
		if !ok {
			continue
		}
		paths[path] = decodePathItem(sub)
	}
	return paths
}

func decodePathItem(m map[string]any) *PathItem {
	pi := new(PathItem)
	for k, v := range m {
		switch k {
		case "$ref", "summary", "description":
			s, ok := getString(v)
			if !ok {
				break
			}
			switch k {
			case "$ref":
				pi.Ref = s
			case "summary":
				pi.Summary = s
			default:
				pi.Description = s
			}
			continue
		case MethodGet, MethodPut, MethodPost, MethodDelete, MethodOptions, MethodHead, MethodPatch, MethodTrace:
			sub, ok := asMap(v)
			if !ok {
				break
			}
			op := decodeOperation(sub)
			switch k {
			case MethodGet:
				pi.Get = op
			case MethodPut:
				pi.Put = op
			case MethodPost:
				pi.Post = op
			case MethodDelete:
				pi.Delete = op
			case MethodOptions:
				pi.Options = op
			case MethodHead:
				pi.Head = op
			case MethodPatch:
				pi.Patch = op
			default:
				pi.Trace = op
			}
			continue
		case "parameters":
			if params, ok := decodeParameters(v); ok {
				pi.Parameters = params
				continue
			}
		}
		pi.Extra = putExtra(pi.Extra, k, v)
	}
	return pi
}

func decodeOperation(m map[string]any) *Operation {
	op := new(Operation)
	for k, v := range m {
		switch k {
		case "operationId":
			if s, ok := getString(v); ok {
				op.OperationID = s
				continue
			}
		case "summary":
			if s, ok := getString(v); ok {
				op.Summary = s
				continue
			}
		case "description":
			if s, ok := getString(v); ok {
				op.Description = s
				continue
			}
		case "parameters":
			if params, ok := decodeParameters(v); ok {
				op.Parameters = params
				continue
			}
		case "requestBody":
			if sub, ok := asMap(v); ok {
				op.RequestBody = decodeRequestBody(sub)
				continue
			}
		case "responses":
			if sub, ok := asMap(v); ok {
				op.Responses = make(map[string]*Response, len(sub))
				for code, raw := range sub {
					if rm, ok := asMap(raw); ok {
						op.Responses[code] = decodeResponse(rm)
					}
				}
				continue
			}
		}
		op.Extra = putExtra(op.Extra, k, v)
	}
	return op
}

func decodeParameters(v any) ([]*Parameter, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	params := make([]*Parameter, 0, len(arr))
	for _, raw := range arr {
		m, ok := asMap(raw)
		if !ok {
			return nil, false
		}
		params = append(params, decodeParameter(m))
	}
	return params, true
}

func decodeParameter(m map[string]any) *Parameter {
	p := new(Parameter)
	for k, v := range m {
		switch k {
		case "$ref", "name", "in", "description":
			s, ok := getString(v)
			if !ok {
				break
			}
			switch k {
			case "$ref":
				p.Ref = s
			case "name":
				p.Name = s
			case "in":
				p.In = s
			default:
				p.Description = s
			}
			continue
		case "required":
			if b, ok := getBool(v); ok {
				p.Required = b
				continue
			}
		case "schema":
			if sub, ok := asMap(v); ok {
				p.Schema = decodeSchema(sub)
				continue
			}
		case "content":
			if sub, ok := asMap(v); ok {
				p.Content = decodeContent(sub)
				continue
			}
		}
		p.Extra = putExtra(p.Extra, k, v)
	}
	return p
}

func decodeRequestBody(m map[string]any) *RequestBody {
	rb := new(RequestBody)
	for k, v := range m {
		switch k {
		case "$ref":
			if s, ok := getString(v); ok {
				rb.Ref = s
				continue
			}
		case "description":
			if s, ok := getString(v); ok {
				rb.Description = s
				continue
			}
		case "required":
			if b, ok := getBool(v); ok {
				rb.Required = b
				continue
			}
		case "content":
			if sub, ok := asMap(v); ok {
				rb.Content = decodeContent(sub)
				continue
			}
		}
		rb.Extra = putExtra(rb.Extra, k, v)
	}
	return rb
}

func decodeResponse(m map[string]any) *Response {
	r := new(Response)
	for k, v := range m {
		switch k {
		case "$ref":
			if s, ok := getString(v); ok {
				r.Ref = s
				continue
			}
		case "description":
			if s, ok := getString(v); ok {
				r.Description = s
				continue
			}
		case "headers":
			if sub, ok := asMap(v); ok {
				r.Headers = decodeHeaders(sub)
				continue
			}
		case "content":
			if sub, ok := asMap(v); ok {
				r.Content = decodeContent(sub)
				continue
			}
		}
		r.Extra = putExtra(r.Extra, k, v)
	}
	return r
}

func decodeHeaders(m map[string]any) map[string]*Header {
	headers := make(map[string]*Header, len(m))
	for name, raw := range m {
		hm, ok := asMap(raw)
		if !ok {
			continue
		}
		h := new(Header)
		for k, v := range hm {
			switch k {
			case "$ref":
				if s, ok := getString(v); ok {
					h.Ref = s
					continue
				}
			case "description":
				if s, ok := getString(v); ok {
					h.Description = s
					continue
				}
			case "required":
				if b, ok := getBool(v); ok {
					h.Required = b
					continue
				}
			case "schema":
				if sub, ok := asMap(v); ok {
					h.Schema = decodeSchema(sub)
					continue
				}
			case "content":
				if sub, ok := asMap(v); ok {
					h.Content = decodeContent(sub)
					continue
				}
			}
			h.Extra = putExtra(h.Extra, k, v)
		}
		headers[name] = h
	}
	return headers
}

func decodeContent(m map[string]any) map[string]*MediaType {
	content := make(map[string]*MediaType, len(m))
	for name, raw := range m {
		mm, ok := asMap(raw)
		if !ok {
			continue
		}
		mt := new(MediaType)
		for k, v := range mm {
			if k == "schema" {
				if sub, ok := asMap(v); ok {
					mt.Schema = decodeSchema(sub)
					continue
				}
			}
			mt.Extra = putExtra(mt.Extra, k, v)
		}
		content[name] = mt
	}
	return content
}

func decodeSchemaMap(m map[string]any) map[string]*Schema {
	schemas := make(map[string]*Schema, len(m))
	for name, raw := range m {
		if sub, ok := asMap(raw); ok {
			schemas[name] = decodeSchema(sub)
		}
	}
	return schemas
}

func decodeSchemaList(v any) ([]*Schema, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	schemas := make([]*Schema, 0, len(arr))
	for _, raw := range arr {
		m, ok := asMap(raw)
		if !ok {
			return nil, false
		}
		schemas = append(schemas, decodeSchema(m))
	}
	return schemas, true
}

// decodeSchemaOrBool decodes a value that can be either a *Schema (map) or
// a bool, as used by additionalProperties and unevaluatedProperties.
func decodeSchemaOrBool(v any) (any, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	if m, ok := asMap(v); ok {
		return decodeSchema(m), true
	}
	return nil, false
}

func decodeSchema(m map[string]any) *Schema {
	s := new(Schema)
	for k, v := range m {
		if decodeSchemaKeyword(s, k, v) {
			continue
		}
		s.Extra = putExtra(s.Extra, k, v)
	}
	return s
}

// decodeSchemaKeyword decodes one keyword into s and reports whether it was
// consumed.
//
//nolint:cyclop // one case per JSON Schema keyword
func decodeSchemaKeyword(s *Schema, k string, v any) bool {
	var ok bool
	switch k {
	case "$ref":
		s.Ref, ok = getString(v)
	case "title":
		s.Title, ok = getString(v)
	case "description":
		s.Description, ok = getString(v)
	case "default":
		s.Default, ok = v, v != nil
	case "example":
		s.Example, ok = v, v != nil
	case "examples":
		s.Examples, ok = v.([]any)
	case "type":
		switch v.(type) {
		case string, []any:
			s.Type, ok = v, true
		}
	case "format":
		s.Format, ok = getString(v)
	case "enum":
		s.Enum, ok = v.([]any)
	case "const":
		s.Const, ok = v, v != nil
	case "nullable":
		s.Nullable, ok = getBool(v)
	case "multipleOf":
		s.MultipleOf, ok = getFloat64Ptr(v)
	case "minimum":
		s.Minimum, ok = getFloat64Ptr(v)
	case "maximum":
		s.Maximum, ok = getFloat64Ptr(v)
	case "exclusiveMinimum":
		s.ExclusiveMinimum, ok = v, v != nil
	case "exclusiveMaximum":
		s.ExclusiveMaximum, ok = v, v != nil
	case "minLength":
		s.MinLength, ok = getIntPtr(v)
	case "maxLength":
		s.MaxLength, ok = getIntPtr(v)
	case "pattern":
		s.Pattern, ok = getString(v)
	case "items":
		var sub map[string]any
		if sub, ok = asMap(v); ok {
			s.Items = decodeSchema(sub)
		}
	case "minItems":
		s.MinItems, ok = getIntPtr(v)
	case "maxItems":
		s.MaxItems, ok = getIntPtr(v)
	case "uniqueItems":
		s.UniqueItems, ok = getBool(v)
	case "properties":
		var sub map[string]any
		if sub, ok = asMap(v); ok {
			s.Properties = decodeSchemaMap(sub)
		}
	case "additionalProperties":
		s.AdditionalProperties, ok = decodeSchemaOrBool(v)
	case "propertyNames":
		var sub map[string]any
		if sub, ok = asMap(v); ok {
			s.PropertyNames = decodeSchema(sub)
		}
	case "unevaluatedProperties":
		s.UnevaluatedProperties, ok = decodeSchemaOrBool(v)
	case "required":
		s.Required, ok = getStringSlice(v)
	case "minProperties":
		s.MinProperties, ok = getIntPtr(v)
	case "maxProperties":
		s.MaxProperties, ok = getIntPtr(v)
	case "allOf":
		s.AllOf, ok = decodeSchemaList(v)
	case "anyOf":
		s.AnyOf, ok = decodeSchemaList(v)
	case "oneOf":
		s.OneOf, ok = decodeSchemaList(v)
	case "not":
		var sub map[string]any
		if sub, ok = asMap(v); ok {
			s.Not = decodeSchema(sub)
		}
	case "discriminator":
		var sub map[string]any
		if sub, ok = asMap(v); ok {
			s.Discriminator = decodeDiscriminator(sub)
		}
	case "readOnly":
		s.ReadOnly, ok = getBool(v)
	case "writeOnly":
		s.WriteOnly, ok = getBool(v)
	case "deprecated":
		s.Deprecated, ok = getBool(v)
	}
	return ok
}

func decodeDiscriminator(m map[string]any) *Discriminator {
	d := new(Discriminator)
	for k, v := range m {
		switch k {
		case "propertyName":
			if s, ok := getString(v); ok {
				d.PropertyName = s
				continue
			}
		case "mapping":
			if sm, ok := getStringMap(v); ok {
				d.Mapping = sm
				continue
			}
		}
		d.Extra = putExtra(d.Extra, k, v)
	}
	return d
}
