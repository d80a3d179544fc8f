package schemautil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasproto/parser"
)

func TestFragment(t *testing.T) {
	s := &parser.Schema{Ref: "#/components/schemas/Tag"}
	assert.Equal(t, `{"$ref":"#/components/schemas/Tag"}`, Fragment(s))
	assert.Equal(t, `{"title":"kind","type":"string"}`, Fragment(&parser.Schema{Title: "kind", Type: "string"}))
	assert.Equal(t, "", Fragment(nil))
}

func TestValueFragment(t *testing.T) {
	assert.Equal(t, `"a"`, ValueFragment("a"))
	assert.Equal(t, `{"k":[1,true]}`, ValueFragment(map[string]any{"k": []any{1, true}}))
}

func TestDeclaredShape(t *testing.T) {
	assert.Equal(t, "#/components/schemas/Tag", DeclaredShape(&parser.Schema{Ref: "#/components/schemas/Tag", Type: "object"}))
	assert.Equal(t, "string", DeclaredShape(&parser.Schema{Type: []any{"null", "string"}}))
	assert.Equal(t, "", DeclaredShape(&parser.Schema{}))
	assert.Equal(t, "", DeclaredShape(nil))
}
