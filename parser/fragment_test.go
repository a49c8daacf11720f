package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fogwing/htmlparse/parser/spec"
)

func TestFragmentInCell(t *testing.T) {
	context := spec.NewElement("td", spec.HTMLNamespace, nil)
	nodes, errs := ParseFragment([]byte("x<p>y"), context, Options{})
	assert.Empty(t, errs)
	require.Len(t, nodes, 2)

	assert.Equal(t, spec.TextNode, nodes[0].Type)
	assert.Equal(t, "x", nodes[0].Data)

	p := nodes[1]
	assert.Equal(t, "p", p.TagName)
	require.Len(t, p.Children, 1)
	assert.Equal(t, "y", p.Children[0].Data)

	// The synthetic root is gone from the results.
	assert.Nil(t, nodes[0].Parent)
	assert.Nil(t, p.Parent)
}

func TestFragmentRCDATAContext(t *testing.T) {
	context := spec.NewElement("title", spec.HTMLNamespace, nil)
	nodes, errs := ParseFragment([]byte("a<b>"), context, Options{})
	assert.Empty(t, errs)
	require.Len(t, nodes, 1)
	assert.Equal(t, spec.TextNode, nodes[0].Type)
	assert.Equal(t, "a<b>", nodes[0].Data)
}

func TestFragmentRawTextContext(t *testing.T) {
	context := spec.NewElement("style", spec.HTMLNamespace, nil)
	nodes, _ := ParseFragment([]byte("p { color: red }"), context, Options{})
	require.Len(t, nodes, 1)
	assert.Equal(t, spec.TextNode, nodes[0].Type)
	assert.Equal(t, "p { color: red }", nodes[0].Data)
}

func TestFragmentScriptingFlipsNoscript(t *testing.T) {
	context := spec.NewElement("noscript", spec.HTMLNamespace, nil)

	nodes, _ := ParseFragment([]byte("<b>x</b>"), context, Options{})
	require.NotEmpty(t, nodes)
	assert.Equal(t, "b", nodes[0].TagName)

	nodes, _ = ParseFragment([]byte("<b>x</b>"), context, Options{ScriptingEnabled: true})
	require.NotEmpty(t, nodes)
	assert.Equal(t, spec.TextNode, nodes[0].Type)
	assert.Equal(t, "<b>x</b>", nodes[0].Data)
}

func TestFragmentTemplateContext(t *testing.T) {
	context := spec.NewElement("template", spec.HTMLNamespace, nil)
	nodes, _ := ParseFragment([]byte("<td>x"), context, Options{})
	require.Len(t, nodes, 1)
	assert.Equal(t, "td", nodes[0].TagName)
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, "x", nodes[0].Children[0].Data)
}

func TestFragmentTableContext(t *testing.T) {
	context := spec.NewElement("table", spec.HTMLNamespace, nil)
	nodes, _ := ParseFragment([]byte("<tr><td>x</td></tr>"), context, Options{})
	require.Len(t, nodes, 1)
	tbody := nodes[0]
	assert.Equal(t, "tbody", tbody.TagName)
	require.Len(t, tbody.Children, 1)
	assert.Equal(t, "tr", tbody.Children[0].TagName)
}

func TestFragmentFormPointerFromAncestors(t *testing.T) {
	form := spec.NewElement("form", spec.HTMLNamespace, nil)
	td := spec.NewElement("td", spec.HTMLNamespace, nil)
	form.AppendChild(td)

	// With an open form in the ancestry, a nested form start tag is
	// ignored.
	nodes, errs := ParseFragment([]byte("<form>x"), td, Options{})
	require.Len(t, nodes, 1)
	assert.Equal(t, spec.TextNode, nodes[0].Type)
	assert.Equal(t, "x", nodes[0].Data)
	assert.Contains(t, errorCodes(errs), ErrUnexpectedStartTag)
}
