package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fogwing/htmlparse/parser/spec"
)

func htmlEl(tag string) *spec.Node {
	return spec.NewElement(tag, spec.HTMLNamespace, nil)
}

func TestElementInScope(t *testing.T) {
	s := nodeStack{htmlEl("html"), htmlEl("body"), htmlEl("button"), htmlEl("p")}
	assert.True(t, s.elementInScope(defaultScope, "p"))
	assert.True(t, s.elementInScope(buttonScope, "p"))
	assert.True(t, s.elementInScope(defaultScope, "body"))

	// A button between the target and the top blocks button scope but
	// not the default scope.
	s = nodeStack{htmlEl("html"), htmlEl("body"), htmlEl("p"), htmlEl("button")}
	assert.False(t, s.elementInScope(buttonScope, "p"))
	assert.True(t, s.elementInScope(defaultScope, "p"))
}

func TestTableScope(t *testing.T) {
	s := nodeStack{htmlEl("html"), htmlEl("body"), htmlEl("table"), htmlEl("tbody"), htmlEl("tr"), htmlEl("td"), htmlEl("p")}
	assert.True(t, s.elementInScope(tableScope, "td"))
	assert.True(t, s.elementInScope(tableScope, "tr"))
	assert.False(t, s.elementInScope(tableScope, "body"))
}

func TestSelectScopeIsInverted(t *testing.T) {
	s := nodeStack{htmlEl("html"), htmlEl("body"), htmlEl("select"), htmlEl("optgroup"), htmlEl("option")}
	assert.True(t, s.elementInScope(selectScope, "select"))

	// Anything but optgroup and option blocks select scope.
	s = nodeStack{htmlEl("html"), htmlEl("select"), htmlEl("div"), htmlEl("option")}
	assert.False(t, s.elementInScope(selectScope, "select"))
}

func TestForeignScopeBoundaries(t *testing.T) {
	title := spec.NewElement("title", spec.SVGNamespace, nil)
	s := nodeStack{htmlEl("html"), htmlEl("body"), title, htmlEl("b")}
	assert.False(t, s.elementInScope(defaultScope, "body"))

	mi := spec.NewElement("mi", spec.MathMLNamespace, nil)
	s = nodeStack{htmlEl("html"), htmlEl("body"), mi, htmlEl("b")}
	assert.False(t, s.elementInScope(defaultScope, "body"))
}

func TestPopUntil(t *testing.T) {
	s := nodeStack{htmlEl("html"), htmlEl("body"), htmlEl("div"), htmlEl("p"), htmlEl("b")}
	assert.True(t, s.popUntil(defaultScope, "p"))
	assert.Equal(t, "div", s.top().TagName)

	assert.False(t, s.popUntil(defaultScope, "span"))
}

func TestNodeInScopeIsExact(t *testing.T) {
	p1 := htmlEl("p")
	p2 := htmlEl("p")
	s := nodeStack{htmlEl("html"), htmlEl("body"), p1}
	assert.True(t, s.nodeInScope(defaultScope, p1))
	assert.False(t, s.nodeInScope(defaultScope, p2))
}
