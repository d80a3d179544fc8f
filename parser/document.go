package parser

import "sort"

// Document represents an OpenAPI Specification 3.x document.
//
// Only the parts that carry schemas are modeled. Servers, tags, security and
// every other top-level key are kept verbatim in Extra.
type Document struct {
	OpenAPI    string               `yaml:"openapi" json:"openapi"`
	Info       *Info                `yaml:"info,omitempty" json:"info,omitempty"`
	Paths      map[string]*PathItem `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components          `yaml:"components,omitempty" json:"components,omitempty"`

	// Extra captures specification extensions and unmodeled top-level keys.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info provides metadata about the API.
type Info struct {
	Title       string         `yaml:"title" json:"title"`
	Version     string         `yaml:"version" json:"version"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects for different aspects of the OAS.
type Components struct {
	Schemas       map[string]*Schema      `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses     map[string]*Response    `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters    map[string]*Parameter   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBodies map[string]*RequestBody `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers       map[string]*Header      `yaml:"headers,omitempty" json:"headers,omitempty"`

	// Extra captures specification extensions and unmodeled component kinds
	// (examples, securitySchemes, links, callbacks, ...).
	Extra map[string]any `yaml:",inline" json:"-"`
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref         string       `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation   `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation   `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation   `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation   `yaml:"trace,omitempty" json:"trace,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// HTTP methods in the order the walker visits them.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// MethodOperation pairs an HTTP method with its operation.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operations returns the non-nil operations of the path item in a fixed
// method order.
func (p *PathItem) Operations() []MethodOperation {
	if p == nil {
		return nil
	}
	all := []MethodOperation{
		{MethodGet, p.Get},
		{MethodPut, p.Put},
		{MethodPost, p.Post},
		{MethodDelete, p.Delete},
		{MethodOptions, p.Options},
		{MethodHead, p.Head},
		{MethodPatch, p.Patch},
		{MethodTrace, p.Trace},
	}
	ops := all[:0]
	for _, mo := range all {
		if mo.Operation != nil {
			ops = append(ops, mo)
		}
	}
	return ops
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID string               `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Summary     string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Parameters  []*Parameter         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   map[string]*Response `yaml:"responses,omitempty" json:"responses,omitempty"`

	// Extra captures tags, security, callbacks, extensions, ...
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name        string                `yaml:"name,omitempty" json:"name,omitempty"`
	In          string                `yaml:"in,omitempty" json:"in,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Response describes a single response from an API operation.
type Response struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     map[string]*Header    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// MediaType provides schema and examples for a media type.
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`

	// Extra captures example, examples, encoding and extensions.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Header describes a single response header.
type Header struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// SchemaNames returns the component schema names in sorted order.
func (d *Document) SchemaNames() []string {
	if d == nil || d.Components == nil {
		return nil
	}
	return SortedKeys(d.Components.Schemas)
}

// ComponentSchema returns a named component schema.
func (d *Document) ComponentSchema(name string) (*Schema, bool) {
	if d == nil || d.Components == nil || d.Components.Schemas == nil {
		return nil, false
	}
	s, ok := d.Components.Schemas[name]
	return s, ok && s != nil
}

// AddComponentSchema registers a named component schema, allocating the
// components section if needed. It reports false and leaves the registry
// untouched if the name is already taken.
func (d *Document) AddComponentSchema(name string, s *Schema) bool {
	if d.Components == nil {
		d.Components = &Components{}
	}
	if d.Components.Schemas == nil {
		d.Components.Schemas = make(map[string]*Schema)
	}
	if _, exists := d.Components.Schemas[name]; exists {
		return false
	}
	d.Components.Schemas[name] = s
	return true
}

// SortedKeys returns sorted keys from any map with string keys.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
