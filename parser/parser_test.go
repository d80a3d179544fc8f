package parser

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasproto/oaserrors"
)

const petstoreYAML = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
x-owner: platform
paths:
  /pets/{id}:
    parameters:
      - name: id
        in: path
        required: true
        schema:
          type: string
    get:
      operationId: getPet
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        name:
          type: string
          x-field-order: 1
        tags:
          type: array
          items:
            type: string
        labels:
          type: object
          additionalProperties:
            type: string
      x-internal: true
    Flexible:
      additionalProperties: true
  securitySchemes:
    apiKey:
      type: apiKey
      in: header
      name: X-API-Key
`

func TestParseBytesYAML(t *testing.T) {
	result, err := ParseBytes([]byte(petstoreYAML))
	require.NoError(t, err)

	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "ParseBytes.yaml", result.SourcePath)
	assert.Equal(t, "3.0.3", result.Version)
	assert.False(t, result.Upgraded)
	assert.Empty(t, result.Warnings)

	doc := result.Document
	require.NotNil(t, doc)
	assert.Equal(t, "Petstore", doc.Info.Title)
	assert.Equal(t, "platform", doc.Extra["x-owner"])
	assert.Equal(t, []string{"Flexible", "Pet"}, doc.SchemaNames())
	assert.Contains(t, doc.Components.Extra, "securitySchemes")

	pet, ok := doc.ComponentSchema("Pet")
	require.True(t, ok)
	assert.Equal(t, "object", pet.Type)
	assert.Equal(t, []string{"name"}, pet.Required)
	assert.Equal(t, []string{"labels", "name", "tags"}, pet.PropertyKeys())
	assert.True(t, pet.HasFlag("x-internal"))
	assert.Equal(t, "string", pet.Properties["tags"].Items.Type)

	ap, ok := pet.Properties["labels"].AdditionalPropertiesSchema()
	require.True(t, ok)
	assert.Equal(t, "string", ap.Type)

	flexible, _ := doc.ComponentSchema("Flexible")
	v, ok := flexible.AdditionalPropertiesBool()
	assert.True(t, ok)
	assert.True(t, v)

	item := doc.Paths["/pets/{id}"]
	require.NotNil(t, item)
	require.Len(t, item.Parameters, 1)
	assert.Equal(t, "id", item.Parameters[0].Name)
	require.NotNil(t, item.Get)
	assert.Equal(t, "#/components/schemas/Pet", item.Get.Responses["200"].Content["application/json"].Schema.Ref)
}

func TestParseBytesJSON(t *testing.T) {
	data := `{"openapi":"3.1.0","info":{"title":"t","version":"1"},
"components":{"schemas":{"Maybe":{"type":["string","null"],"maxLength":10}}}}`

	result, err := ParseBytes([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, "ParseBytes.json", result.SourcePath)

	maybe, ok := result.Document.ComponentSchema("Maybe")
	require.True(t, ok)
	assert.Equal(t, []any{"string", "null"}, maybe.Type)
	require.NotNil(t, maybe.MaxLength)
	assert.Equal(t, 10, *maybe.MaxLength)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.yml")
	require.NoError(t, os.WriteFile(path, []byte(petstoreYAML), 0o600))

	result, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseReader(t *testing.T) {
	result, err := ParseReader(strings.NewReader(petstoreYAML))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.yaml", result.SourcePath)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", "   \n"},
		{"no version", "info:\n  title: x\n"},
		{"unsupported version", "openapi: 4.0.0\n"},
		{"malformed yaml", "openapi: [3.0.0\n"},
		{"malformed json", `{"openapi": "3.0.0",`},
		{"scalar document", "just a string\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrParse)
		})
	}
}

const swaggerYAML = `swagger: "2.0"
info:
  title: Legacy
  version: "1"
paths:
  /items:
    get:
      produces: [application/json]
      responses:
        "200":
          description: ok
          schema:
            $ref: '#/definitions/Item'
definitions:
  Item:
    type: object
    properties:
      id:
        type: integer
`

func TestParseSwaggerUpgrade(t *testing.T) {
	result, err := ParseBytes([]byte(swaggerYAML))
	require.NoError(t, err)

	assert.True(t, result.Upgraded)
	assert.Equal(t, "2.0", result.Version)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "upgraded Swagger 2.0")

	doc := result.Document
	assert.True(t, strings.HasPrefix(doc.OpenAPI, "3."))
	item, ok := doc.ComponentSchema("Item")
	require.True(t, ok)
	assert.Equal(t, "object", item.Type)
	assert.Equal(t, "integer", item.Properties["id"].Type)

	get := doc.Paths["/items"].Get
	require.NotNil(t, get)
	assert.Equal(t, "#/components/schemas/Item", get.Responses["200"].Content["application/json"].Schema.Ref)
}

func TestParseSwaggerUpgradeDisabled(t *testing.T) {
	_, err := ParseWithOptions(WithBytes([]byte(swaggerYAML)), WithUpgradeSwagger(false))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrParse)
}

func TestParseWithOptions(t *testing.T) {
	t.Run("bytes with logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

		result, err := ParseWithOptions(WithBytes([]byte(petstoreYAML)), WithLogger(logger))
		require.NoError(t, err)
		assert.NotNil(t, result.Document)
		assert.Contains(t, buf.String(), "parsed document")
	})

	t.Run("reader", func(t *testing.T) {
		result, err := ParseWithOptions(WithReader(strings.NewReader(petstoreYAML)))
		require.NoError(t, err)
		assert.Equal(t, "ParseReader.yaml", result.SourcePath)
	})

	t.Run("no source", func(t *testing.T) {
		_, err := ParseWithOptions()
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("two sources", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte(petstoreYAML)), WithFilePath("api.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := ParseWithOptions(WithFilePath(""))
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("nil reader", func(t *testing.T) {
		_, err := ParseWithOptions(WithReader(nil))
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormat([]byte("openapi: 3.0.0"), "api.JSON"))
	assert.Equal(t, SourceFormatYAML, detectFormat([]byte(`{"openapi":"3.0.0"}`), "api.yaml"))
	assert.Equal(t, SourceFormatJSON, detectFormat([]byte("  \n{}"), ""))
	assert.Equal(t, SourceFormatYAML, detectFormat([]byte("openapi: 3.0.0"), ""))
}
