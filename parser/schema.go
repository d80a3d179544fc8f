package parser

import "sort"

// Schema represents a JSON Schema node as used by OAS 3.0 and 3.1.
//
// Keywords the rewrite engine inspects are typed fields. Everything else,
// including vendor extensions ("x-" keys), lands in Extra so a document
// survives a decode/encode cycle unchanged.
type Schema struct {
	// JSON Schema Core
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`
	Examples    []any  `yaml:"examples,omitempty" json:"examples,omitempty"`

	// Type validation
	Type     any    `yaml:"type,omitempty" json:"type,omitempty"` // string or []any (OAS 3.1+)
	Format   string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum     []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const    any    `yaml:"const,omitempty" json:"const,omitempty"`
	Nullable bool   `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0 only

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMinimum any      `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"` // bool in 3.0, number in 3.1
	ExclusiveMaximum any      `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"` // bool in 3.0, number in 3.1

	// String validation
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	MinItems    *int    `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxItems    *int    `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	UniqueItems bool    `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties            map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties  any                `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *Schema or bool
	PropertyNames         *Schema            `yaml:"propertyNames,omitempty" json:"propertyNames,omitempty"`
	UnevaluatedProperties any                `yaml:"unevaluatedProperties,omitempty" json:"unevaluatedProperties,omitempty"` // *Schema or bool
	Required              []string           `yaml:"required,omitempty" json:"required,omitempty"`
	MinProperties         *int               `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`
	MaxProperties         *int               `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`

	// OAS specific
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ReadOnly      bool           `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly     bool           `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Deprecated    bool           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Extra captures specification extensions and keywords not modeled above.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Discriminator represents a discriminator for polymorphism (OAS 3.0+)
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	Extra        map[string]any    `yaml:",inline" json:"-"`
}

// IsRef reports whether the schema is a reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// AdditionalPropertiesSchema returns additionalProperties when it is a schema.
func (s *Schema) AdditionalPropertiesSchema() (*Schema, bool) {
	if s == nil {
		return nil, false
	}
	ap, ok := s.AdditionalProperties.(*Schema)
	return ap, ok && ap != nil
}

// AdditionalPropertiesBool returns additionalProperties when it is a boolean.
func (s *Schema) AdditionalPropertiesBool() (value, ok bool) {
	if s == nil {
		return false, false
	}
	value, ok = s.AdditionalProperties.(bool)
	return value, ok
}

// PropertyKeys returns the property names in sorted order.
func (s *Schema) PropertyKeys() []string {
	if s == nil || len(s.Properties) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetProperty adds or replaces a property, allocating the map if needed.
func (s *Schema) SetProperty(name string, prop *Schema) {
	if s.Properties == nil {
		s.Properties = make(map[string]*Schema)
	}
	s.Properties[name] = prop
}

// Extension returns the value of a vendor extension.
func (s *Schema) Extension(key string) (any, bool) {
	if s == nil || s.Extra == nil {
		return nil, false
	}
	v, ok := s.Extra[key]
	return v, ok
}

// HasFlag reports whether a boolean vendor extension is set to true.
func (s *Schema) HasFlag(key string) bool {
	v, ok := s.Extension(key)
	if !ok {
		return false
	}
	b, isBool := v.(bool)
	return isBool && b
}

// SetExtension sets a vendor extension, allocating Extra if needed.
func (s *Schema) SetExtension(key string, value any) {
	if s.Extra == nil {
		s.Extra = make(map[string]any)
	}
	s.Extra[key] = value
}

// IntPtr returns a pointer to v. Convenience for MinProperties and friends.
func IntPtr(v int) *int {
	return &v
}
