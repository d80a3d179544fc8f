package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationString(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{"root", Root(), "#"},
		{"components", Root().Child("components").Child("schemas").Child("Pet"), "#/components/schemas/Pet"},
		{"slash escaped", Root().Child("paths").Child("/pets/{id}"), "#/paths/~1pets~1{id}"},
		{"tilde escaped", Root().Child("a~b"), "#/a~0b"},
		{"index", Root().Child("allOf").ChildIndex(2), "#/allOf/2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.String())
		})
	}
}

func TestLocationChildDoesNotMutateParent(t *testing.T) {
	parent := Root().Child("components")
	a := parent.Child("a")
	b := parent.Child("b")

	assert.Equal(t, "#/components", parent.String())
	assert.Equal(t, "#/components/a", a.String())
	assert.Equal(t, "#/components/b", b.String())
	assert.Equal(t, 2, b.Len())
}

func TestParsePointer(t *testing.T) {
	loc := ParsePointer("#/paths/~1pets~1{id}/get")
	assert.Equal(t, []string{"paths", "/pets/{id}", "get"}, loc.Segments())
	assert.Equal(t, "#/paths/~1pets~1{id}/get", loc.String())
	assert.Equal(t, 0, ParsePointer("#").Len())
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, token := range []string{"plain", "a/b", "a~b", "~1", "~01/"} {
		assert.Equal(t, token, Unescape(Escape(token)), token)
	}
	assert.Equal(t, "~1", Unescape("~01"))
}

func TestSchemaNameFromRef(t *testing.T) {
	assert.Equal(t, "Pet", SchemaNameFromRef("#/components/schemas/Pet"))
	assert.Equal(t, "a/b", SchemaNameFromRef("#/components/schemas/a~1b"))
	assert.Equal(t, "", SchemaNameFromRef("#/components/schemas/Pet/properties/id"))
	assert.Equal(t, "", SchemaNameFromRef("#/components/parameters/Pet"))
	assert.Equal(t, "#/components/schemas/a~1b", SchemaRef("a/b"))
	assert.True(t, IsLocalRef("#/components/schemas/Pet"))
	assert.False(t, IsLocalRef("other.yaml#/Pet"))
}
