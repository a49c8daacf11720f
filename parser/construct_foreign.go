package parser

import (
	"strings"

	"github.com/fogwing/htmlparse/parser/spec"
)

// foreignContentHandler processes tokens while the adjusted current
// node sits in SVG or MathML content. It returns true when the token
// must be reprocessed by the regular dispatcher.
func (c *HTMLTreeConstructor) foreignContentHandler(t *Token) bool {
	switch t.Type {
	case characterToken:
		data := t.Data
		if strings.ContainsRune(data, '\u0000') {
			c.errs.add(ErrUnexpectedNullCharacter, t.Span.Start, "")
			data = strings.ReplaceAll(data, "\u0000", "�")
		}
		ct := Token{Type: characterToken, Data: data, Span: t.Span}
		c.insertCharacter(&ct)
		if !ct.isWhitespace() {
			c.framesetOK = false
		}
		return false
	case commentToken:
		c.insertComment(t)
		return false
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false
	case startTagToken:
		if isBreakoutTag(t) {
			c.errs.add(ErrUnexpectedStartTag, t.Span.Start, t.TagName)
			c.popForeignContent()
			return true
		}
		return c.foreignStartTag(t)
	case endTagToken:
		return c.foreignEndTag(t)
	}
	return false
}

// popForeignContent unwinds the stack until the current node can host
// HTML content again.
func (c *HTMLTreeConstructor) popForeignContent() {
	for {
		n := c.currentNode()
		if n == nil || n.Namespace == spec.HTMLNamespace ||
			isMathMLTextIntegrationPoint(n) || isHTMLIntegrationPoint(n) {
			return
		}
		c.oe.pop()
	}
}

func (c *HTMLTreeConstructor) foreignStartTag(t *Token) bool {
	acn := c.adjustedCurrentNode()
	ns := spec.HTMLNamespace
	if acn != nil {
		ns = acn.Namespace
	}
	switch ns {
	case spec.MathMLNamespace:
		adjustMathMLAttributes(t.Attributes)
	case spec.SVGNamespace:
		adjustSVGAttributes(t.Attributes)
	}
	adjustForeignAttributes(t.Attributes)
	element := c.insertForeignElement(t, ns)
	if t.SelfClosing && element != nil {
		c.oe.pop()
		c.acknowledgeSelfClosing(t)
	}
	return false
}

func (c *HTMLTreeConstructor) foreignEndTag(t *Token) bool {
	// br and p break out the same way a breakout start tag does.
	if t.TagName == "br" || t.TagName == "p" {
		c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
		c.popForeignContent()
		return true
	}

	if n := c.currentNode(); n != nil && n.Namespace == spec.SVGNamespace &&
		n.TagName == "script" && t.TagName == "script" {
		c.oe.pop()
		return false
	}

	node := c.currentNode()
	if node != nil && strings.ToLower(node.TagName) != t.TagName {
		c.errs.add(ErrMismatchedEndTag, t.Span.Start, t.TagName)
	}
	for i := len(c.oe) - 1; i > 0; i-- {
		node = c.oe[i]
		if strings.ToLower(node.TagName) == t.TagName {
			for c.oe.pop() != node {
			}
			return false
		}
		if c.oe[i-1].Namespace == spec.HTMLNamespace {
			// Hand the token to the current insertion mode.
			reprocess, next := c.mappings[c.mode](t)
			c.mode = next
			return reprocess
		}
	}
	return false
}
