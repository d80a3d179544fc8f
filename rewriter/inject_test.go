package rewriter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasproto/oaserrors"
	"github.com/erraggy/oasproto/parser"
)

func injectDoc(schemas map[string]*parser.Schema) *parser.Document {
	return &parser.Document{
		OpenAPI:    "3.0.3",
		Components: &parser.Components{Schemas: schemas},
	}
}

func ref(name string) *parser.Schema {
	return &parser.Schema{Ref: "#/components/schemas/" + name}
}

func TestInjectProperties(t *testing.T) {
	filter := &parser.Schema{Type: "object", Properties: map[string]*parser.Schema{"name": {Type: "string"}}}
	in := NewInjector(injectDoc(map[string]*parser.Schema{"Filter": filter}))

	r := ref("Filter")
	out := in.Inject(r)
	assert.Same(t, r, out)
	require.Contains(t, filter.Properties, KeyField)
	assert.Equal(t, "string", filter.Properties[KeyField].Type)
	require.Len(t, in.Rewrites, 1)
	assert.Equal(t, "#/components/schemas/Filter", in.Rewrites[0].Path)

	// A second injection of the same target is a no-op.
	again := ref("Filter")
	assert.Same(t, again, in.Inject(again))
	assert.Len(t, in.Rewrites, 1)
	assert.Len(t, filter.Properties, 2)
}

func TestInjectPropertyConflict(t *testing.T) {
	filter := &parser.Schema{Type: "object", Properties: map[string]*parser.Schema{KeyField: {Type: "integer"}}}
	in := NewInjector(injectDoc(map[string]*parser.Schema{"Filter": filter}))

	r := ref("Filter")
	assert.Same(t, r, in.Inject(r))
	assert.Equal(t, "integer", filter.Properties[KeyField].Type)
	assert.Empty(t, in.Rewrites)
	require.Len(t, in.Diagnostics, 1)
	assert.Equal(t, SeverityError, in.Diagnostics[0].Severity)
	assert.True(t, errors.Is(in.Diagnostics[0].Err, oaserrors.ErrConflict))
}

func TestInjectAllOfWrappersAreIndependent(t *testing.T) {
	a := &parser.Schema{AllOf: []*parser.Schema{ref("Base")}}
	b := &parser.Schema{AllOf: []*parser.Schema{ref("Base"), {Type: "object"}}}
	base := &parser.Schema{Type: "object", Properties: map[string]*parser.Schema{"id": {Type: "string"}}}
	in := NewInjector(injectDoc(map[string]*parser.Schema{"A": a, "B": b, "Base": base}))

	in.Inject(ref("A"))
	in.Inject(ref("B"))

	require.Len(t, a.AllOf, 2)
	require.Len(t, b.AllOf, 3)
	wa, wb := a.AllOf[1], b.AllOf[2]
	assert.NotSame(t, wa, wb)
	assert.NotSame(t, wa.Properties[KeyField], wb.Properties[KeyField])
	assert.Equal(t, "string", wa.Properties[KeyField].Type)

	wa.Properties[KeyField].Format = "changed"
	assert.Empty(t, wb.Properties[KeyField].Format)
	assert.NotContains(t, base.Properties, KeyField, "allOf members are not patched")
}

func TestInjectOneOfMembers(t *testing.T) {
	code := &parser.Schema{Type: "integer", Title: "code"}
	detail := &parser.Schema{Type: "object", Properties: map[string]*parser.Schema{"text": {Type: "string"}}}
	inlineStr := &parser.Schema{Type: "string"}
	union := &parser.Schema{OneOf: []*parser.Schema{ref("Code"), ref("Detail"), inlineStr}}
	in := NewInjector(injectDoc(map[string]*parser.Schema{"Code": code, "Detail": detail, "Union": union}))
	in.DefaultWrapperKey = "raw"

	r := ref("Union")
	assert.Same(t, r, in.Inject(r))

	require.Len(t, union.OneOf, 3)
	codeWrapper := union.OneOf[0]
	assert.Equal(t, "object", codeWrapper.Type)
	require.Contains(t, codeWrapper.Properties, "code")
	assert.Equal(t, "#/components/schemas/Code", codeWrapper.Properties["code"].Ref)

	assert.Equal(t, "#/components/schemas/Detail", union.OneOf[1].Ref)
	assert.Contains(t, detail.Properties, KeyField)

	require.Contains(t, union.OneOf[2].Properties, "raw")
	assert.Same(t, inlineStr, union.OneOf[2].Properties["raw"])
	assert.Len(t, in.Rewrites, 3)
}

func TestInjectPrimitiveDefaultKey(t *testing.T) {
	in := NewInjector(injectDoc(nil))
	prim := &parser.Schema{Type: "boolean"}

	out := in.Inject(prim)
	require.NotSame(t, prim, out)
	assert.Equal(t, "object", out.Type)
	assert.Same(t, prim, out.Properties[DefaultWrapperProperty])
}

func TestInjectObjectWithoutProperties(t *testing.T) {
	bag := &parser.Schema{Type: "object"}
	in := NewInjector(injectDoc(map[string]*parser.Schema{"Bag": bag}))

	r := ref("Bag")
	assert.Same(t, r, in.Inject(r))
	require.Contains(t, bag.Properties, KeyField)
	assert.Equal(t, "string", bag.Properties[KeyField].Type)
	require.Len(t, in.Rewrites, 1)
	assert.Equal(t, "#/components/schemas/Bag", in.Rewrites[0].Path)
}

func TestInjectCycle(t *testing.T) {
	node := &parser.Schema{}
	node.OneOf = []*parser.Schema{ref("Node"), {Type: "object", Properties: map[string]*parser.Schema{"x": {Type: "string"}}}}
	in := NewInjector(injectDoc(map[string]*parser.Schema{"Node": node}))

	r := ref("Node")
	assert.Same(t, r, in.Inject(r))
	assert.Equal(t, "#/components/schemas/Node", node.OneOf[0].Ref)
	assert.Contains(t, node.OneOf[1].Properties, KeyField)
}

func TestInjectUnresolvable(t *testing.T) {
	in := NewInjector(injectDoc(nil))
	r := ref("Missing")
	assert.Same(t, r, in.Inject(r))
	require.Len(t, in.Diagnostics, 1)
	assert.Equal(t, SeverityWarning, in.Diagnostics[0].Severity)
	assert.True(t, errors.Is(in.Diagnostics[0].Err, oaserrors.ErrReference))
	assert.Nil(t, in.Inject(nil))
}
