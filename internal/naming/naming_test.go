package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"SortOrder", "sort_order"},
		{"sortOrder", "sort_order"},
		{"APIClient", "api_client"},
		{"HTTPServerError", "http_server_error"},
		{"user-profile", "user_profile"},
		{"already_snake", "already_snake"},
		{"Version2Info", "version2_info"},
		{"ID", "id"},
		{"_Leading", "leading"},
		{"Trailing-", "trailing"},
		{"Double__Under", "double_under"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.input))
		})
	}
}

func TestTypeNameFromRef(t *testing.T) {
	assert.Equal(t, "SortOrder", TypeNameFromRef("#/components/schemas/SortOrder"))
	assert.Equal(t, "a/b", TypeNameFromRef("#/components/schemas/a~1b"))
	assert.Equal(t, "Bare", TypeNameFromRef("Bare"))
	assert.Equal(t, "", TypeNameFromRef(""))
}

func TestGeneratedName(t *testing.T) {
	assert.Equal(t, "SortOrderSingleMap", GeneratedName("SortOrder", "SingleMap"))
	assert.Equal(t, "_common___SortOrderSingleMap", GeneratedName("_common___SortOrder", "SingleMap"))
	assert.Equal(t, "common.SortOrderSingleMap", GeneratedName("common.SortOrder", "SingleMap"))
}
