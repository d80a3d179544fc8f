package rewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasproto/parser"
)

func TestVerify(t *testing.T) {
	doc := mustParse(t, `
openapi: 3.1.0
info: {title: t, version: "1"}
components:
  schemas:
    AnyMap:
      type: object
      additionalProperties: true
    EmptyMap:
      type: object
      additionalProperties: {}
    Single:
      allOf:
        - type: string
    Literal:
      oneOf:
        - const: a
        - type: integer
    Nothing:
      type: ["string", "null"]
    Casing:
      enum: [On, ON, off]
    Clean:
      type: object
      properties:
        name: {type: string}
      additionalProperties:
        type: integer
`)
	violations := Verify(doc)

	byLocation := make(map[string][]string)
	for _, v := range violations {
		byLocation[v.Location] = append(byLocation[v.Location], v.Rule)
	}
	assert.Equal(t, []string{InvariantAdditionalProperties}, byLocation["#/components/schemas/AnyMap"])
	assert.Equal(t, []string{InvariantAdditionalProperties}, byLocation["#/components/schemas/EmptyMap"])
	assert.Equal(t, []string{InvariantCompositeLength}, byLocation["#/components/schemas/Single"])
	assert.Equal(t, []string{InvariantOneOfConst}, byLocation["#/components/schemas/Literal"])
	assert.Equal(t, []string{InvariantNullType}, byLocation["#/components/schemas/Nothing"])
	assert.Equal(t, []string{InvariantEnumCase}, byLocation["#/components/schemas/Casing"])
	assert.NotContains(t, byLocation, "#/components/schemas/Clean")
	assert.Len(t, violations, 6)

	mustRewrite(t, New(), doc)
	assert.Empty(t, Verify(doc))
}

func TestVerifyNil(t *testing.T) {
	assert.Nil(t, Verify(nil))
	assert.Empty(t, Verify(&parser.Document{}))
}

func TestViolationFormatting(t *testing.T) {
	v := Violation{Rule: InvariantNullType, Location: "#/components/schemas/X", Message: "type includes null"}
	assert.Equal(t, "#/components/schemas/X [null-type]: type includes null", v.String())

	issue := v.Issue()
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, v.Location, issue.Path)
	require.Equal(t, InvariantNullType, issue.Rule)
}
