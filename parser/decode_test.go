package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSchemaKeywords(t *testing.T) {
	s := decodeSchema(map[string]any{
		"title":                "Pet",
		"type":                 "object",
		"const":                "x",
		"enum":                 []any{"a", "B"},
		"minProperties":        1,
		"maxProperties":        float64(1),
		"minimum":              2,
		"additionalProperties": map[string]any{"$ref": "#/components/schemas/Tag"},
		"oneOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
		"discriminator": map[string]any{"propertyName": "kind", "x-extra": 1},
		"x-oneof-schema": true,
	})

	assert.Equal(t, "Pet", s.Title)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, "x", s.Const)
	assert.Equal(t, []any{"a", "B"}, s.Enum)
	assert.Equal(t, 1, *s.MinProperties)
	assert.Equal(t, 1, *s.MaxProperties)
	assert.InDelta(t, 2.0, *s.Minimum, 0)
	ap, ok := s.AdditionalPropertiesSchema()
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/Tag", ap.Ref)
	require.Len(t, s.OneOf, 2)
	assert.Equal(t, "integer", s.OneOf[1].Type)
	require.NotNil(t, s.Discriminator)
	assert.Equal(t, "kind", s.Discriminator.PropertyName)
	assert.Contains(t, s.Discriminator.Extra, "x-extra")
	assert.True(t, s.HasFlag("x-oneof-schema"))
}

func TestDecodeSchemaWrongShapesGoToExtra(t *testing.T) {
	s := decodeSchema(map[string]any{
		"items":         false,
		"maxProperties": 1.5,
		"type":          42,
		"oneOf":         []any{"not-a-schema"},
		"required":      []any{"a", 1},
		"unknownKey":    "kept",
	})

	assert.Nil(t, s.Items)
	assert.Nil(t, s.MaxProperties)
	assert.Nil(t, s.Type)
	assert.Nil(t, s.OneOf)
	assert.Nil(t, s.Required)
	assert.Equal(t, map[string]any{
		"items":         false,
		"maxProperties": 1.5,
		"type":          42,
		"oneOf":         []any{"not-a-schema"},
		"required":      []any{"a", 1},
		"unknownKey":    "kept",
	}, s.Extra)
}

func TestDecodeMapAnyKeys(t *testing.T) {
	m, ok := asMap(map[any]any{"type": "string"})
	require.True(t, ok)
	assert.Equal(t, "string", m["type"])

	_, ok = asMap(map[any]any{1: "numeric key"})
	assert.False(t, ok)
}

func TestDecodeDocumentComponents(t *testing.T) {
	doc := decodeDocument(map[string]any{
		"openapi": "3.0.0",
		"components": map[string]any{
			"parameters": map[string]any{
				"Limit": map[string]any{"name": "limit", "in": "query", "schema": map[string]any{"type": "integer"}},
			},
			"requestBodies": map[string]any{
				"Body": map[string]any{"content": map[string]any{"application/json": map[string]any{"schema": map[string]any{"type": "object"}}}},
			},
			"headers": map[string]any{
				"Rate": map[string]any{"schema": map[string]any{"type": "integer"}},
			},
		},
	})

	require.NotNil(t, doc.Components)
	assert.Equal(t, "integer", doc.Components.Parameters["Limit"].Schema.Type)
	assert.Equal(t, "object", doc.Components.RequestBodies["Body"].Content["application/json"].Schema.Type)
	assert.Equal(t, "integer", doc.Components.Headers["Rate"].Schema.Type)
}
