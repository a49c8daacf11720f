package parser

import (
	"strings"

	"github.com/fogwing/htmlparse/parser/spec"
)

// allowedUnclosed lists the elements allowed to stay open at EOF or
// at a body end tag without an error.
var allowedUnclosed = map[string]bool{
	"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
	"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "body": true, "html": true,
}

func (c *HTMLTreeConstructor) inBodyModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		data := t.Data
		if strings.ContainsRune(data, '\u0000') {
			c.errs.add(ErrUnexpectedNullCharacter, t.Span.Start, "")
			data = strings.ReplaceAll(data, "\u0000", "")
			if data == "" {
				return false, inBody
			}
		}
		c.reconstructActiveFormattingElements()
		c.insertCharacter(&Token{Type: characterToken, Data: data, Span: t.Span})
		if !t.isWhitespace() {
			c.framesetOK = false
		}
		return false, inBody
	case commentToken:
		c.insertComment(t)
		return false, inBody
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, inBody
	case startTagToken:
		return c.inBodyStartTag(t)
	case endTagToken:
		return c.inBodyEndTag(t)
	case endOfFileToken:
		if len(c.templateModes) > 0 {
			return c.useRulesFor(t, inBody, inTemplate)
		}
		for _, n := range c.oe {
			if n.Namespace == spec.HTMLNamespace && !allowedUnclosed[n.TagName] {
				c.errs.add(ErrUnexpectedEOF, t.Span.Start, n.TagName)
				break
			}
		}
		return c.stopParsing()
	}
	return false, inBody
}

func (c *HTMLTreeConstructor) inBodyStartTag(t *Token) (bool, insertionMode) {
	switch t.TagName {
	case "html":
		c.errs.add(ErrUnexpectedStartTag, t.Span.Start, "html")
		if _, i := c.lastInStack("template"); i != -1 {
			return false, inBody
		}
		mergeAttributes(c.oe[0], t.Attributes)
		return false, inBody

	case "base", "basefont", "bgsound", "link", "meta", "noframes",
		"script", "style", "template", "title":
		return c.useRulesFor(t, inBody, inHead)

	case "body":
		c.errs.add(ErrUnexpectedStartTag, t.Span.Start, "body")
		if len(c.oe) < 2 || c.oe[1].TagName != "body" {
			return false, inBody
		}
		if _, i := c.lastInStack("template"); i != -1 {
			return false, inBody
		}
		c.framesetOK = false
		mergeAttributes(c.oe[1], t.Attributes)
		return false, inBody

	case "frameset":
		c.errs.add(ErrUnexpectedStartTag, t.Span.Start, "frameset")
		if len(c.oe) < 2 || c.oe[1].TagName != "body" || !c.framesetOK {
			return false, inBody
		}
		body := c.oe[1]
		if body.Parent != nil {
			body.Parent.RemoveChild(body)
		}
		c.oe = c.oe[:1]
		c.insertHTMLElement(t)
		return false, inFrameset

	case "address", "article", "aside", "blockquote", "center",
		"details", "dialog", "dir", "div", "dl", "fieldset",
		"figcaption", "figure", "footer", "header", "hgroup", "main",
		"menu", "nav", "ol", "p", "search", "section", "summary", "ul":
		c.closePElementIfInButtonScope(t)
		c.insertHTMLElement(t)
		return false, inBody

	case "h1", "h2", "h3", "h4", "h5", "h6":
		c.closePElementIfInButtonScope(t)
		if n := c.currentNode(); n != nil && n.Namespace == spec.HTMLNamespace {
			switch n.TagName {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				c.errs.add(ErrUnexpectedStartTag, t.Span.Start, t.TagName)
				c.oe.pop()
			}
		}
		c.insertHTMLElement(t)
		return false, inBody

	case "pre", "listing":
		c.closePElementIfInButtonScope(t)
		c.insertHTMLElement(t)
		c.ignoreNextLF = true
		c.framesetOK = false
		return false, inBody

	case "form":
		hasTemplate := false
		if _, i := c.lastInStack("template"); i != -1 {
			hasTemplate = true
		}
		if c.formElementPointer != nil && !hasTemplate {
			c.errs.add(ErrUnexpectedStartTag, t.Span.Start, "form")
			return false, inBody
		}
		c.closePElementIfInButtonScope(t)
		element := c.insertHTMLElement(t)
		if !hasTemplate {
			c.formElementPointer = element
		}
		return false, inBody

	case "li":
		c.framesetOK = false
		for i := len(c.oe) - 1; i >= 0; i-- {
			node := c.oe[i]
			if node.Namespace == spec.HTMLNamespace && node.TagName == "li" {
				c.generateImpliedEndTags("li")
				c.errsIfCurrentNot("li", t)
				c.oe.popUntil(listItemScope, "li")
				break
			}
			if isSpecialElement(node) && node.TagName != "address" && node.TagName != "div" && node.TagName != "p" {
				break
			}
		}
		c.closePElementIfInButtonScope(t)
		c.insertHTMLElement(t)
		return false, inBody

	case "dd", "dt":
		c.framesetOK = false
		for i := len(c.oe) - 1; i >= 0; i-- {
			node := c.oe[i]
			if node.Namespace == spec.HTMLNamespace && (node.TagName == "dd" || node.TagName == "dt") {
				c.generateImpliedEndTags(node.TagName)
				c.errsIfCurrentNot(node.TagName, t)
				c.oe.popUntil(defaultScope, node.TagName)
				break
			}
			if isSpecialElement(node) && node.TagName != "address" && node.TagName != "div" && node.TagName != "p" {
				break
			}
		}
		c.closePElementIfInButtonScope(t)
		c.insertHTMLElement(t)
		return false, inBody

	case "plaintext":
		c.closePElementIfInButtonScope(t)
		if c.insertHTMLElement(t) == nil {
			return false, inBody
		}
		state := plaintextState
		c.pendingTokenizerState = &state
		return false, inBody

	case "button":
		if c.oe.elementInScope(defaultScope, "button") {
			c.errs.add(ErrUnexpectedStartTag, t.Span.Start, "button")
			c.generateImpliedEndTags()
			c.oe.popUntil(defaultScope, "button")
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		c.framesetOK = false
		return false, inBody

	case "a":
		for i := len(c.afe) - 1; i >= 0; i-- {
			n := c.afe[i]
			if n.Type == spec.ScopeMarkerNode {
				break
			}
			if n.TagName == "a" {
				c.errs.add(ErrUnexpectedStartTag, t.Span.Start, "a")
				c.adoptionAgency(&Token{Type: endTagToken, TagName: "a", Span: t.Span})
				c.afe.remove(n)
				c.oe.remove(n)
				break
			}
		}
		c.reconstructActiveFormattingElements()
		c.addFormattingElement(t)
		return false, inBody

	case "b", "big", "code", "em", "font", "i", "s", "small", "strike",
		"strong", "tt", "u":
		c.reconstructActiveFormattingElements()
		c.addFormattingElement(t)
		return false, inBody

	case "nobr":
		c.reconstructActiveFormattingElements()
		if c.oe.elementInScope(defaultScope, "nobr") {
			c.errs.add(ErrUnexpectedStartTag, t.Span.Start, "nobr")
			c.adoptionAgency(&Token{Type: endTagToken, TagName: "nobr", Span: t.Span})
			c.reconstructActiveFormattingElements()
		}
		c.addFormattingElement(t)
		return false, inBody

	case "applet", "marquee", "object":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		c.pushFormattingMarker()
		c.framesetOK = false
		return false, inBody

	case "table":
		if c.quirksMode != spec.Quirks {
			c.closePElementIfInButtonScope(t)
		}
		c.insertHTMLElement(t)
		c.framesetOK = false
		return false, inTable

	case "area", "br", "embed", "img", "keygen", "wbr":
		c.reconstructActiveFormattingElements()
		if c.insertHTMLElement(t) != nil {
			c.oe.pop()
		}
		c.acknowledgeSelfClosing(t)
		c.framesetOK = false
		return false, inBody

	case "input":
		c.reconstructActiveFormattingElements()
		if c.insertHTMLElement(t) != nil {
			c.oe.pop()
		}
		c.acknowledgeSelfClosing(t)
		if typ, ok := t.getAttr("type"); !ok || !strings.EqualFold(typ, "hidden") {
			c.framesetOK = false
		}
		return false, inBody

	case "param", "source", "track":
		if c.insertHTMLElement(t) != nil {
			c.oe.pop()
		}
		c.acknowledgeSelfClosing(t)
		return false, inBody

	case "hr":
		c.closePElementIfInButtonScope(t)
		if c.insertHTMLElement(t) != nil {
			c.oe.pop()
		}
		c.acknowledgeSelfClosing(t)
		c.framesetOK = false
		return false, inBody

	case "image":
		c.errs.add(ErrUnexpectedStartTag, t.Span.Start, "image")
		t.TagName = "img"
		return true, inBody

	case "textarea":
		if c.insertHTMLElement(t) == nil {
			return false, inBody
		}
		c.ignoreNextLF = true
		state := rcDataState
		c.pendingTokenizerState = &state
		c.originalInsertionMode = c.mode
		c.framesetOK = false
		return false, text

	case "xmp":
		c.closePElementIfInButtonScope(t)
		c.reconstructActiveFormattingElements()
		c.framesetOK = false
		return false, c.parseGenericRawTextElement(t)

	case "iframe":
		c.framesetOK = false
		return false, c.parseGenericRawTextElement(t)

	case "noembed":
		return false, c.parseGenericRawTextElement(t)

	case "noscript":
		if c.opts.ScriptingEnabled {
			return false, c.parseGenericRawTextElement(t)
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		return false, inBody

	case "select":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		c.framesetOK = false
		switch c.mode {
		case inTable, inCaption, inTableBody, inRow, inCell:
			return false, inSelectInTable
		}
		return false, inSelect

	case "optgroup", "option":
		if n := c.currentNode(); n != nil && n.Namespace == spec.HTMLNamespace && n.TagName == "option" {
			c.oe.pop()
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		return false, inBody

	case "rb", "rtc":
		if c.oe.elementInScope(defaultScope, "ruby") {
			c.generateImpliedEndTags()
			c.errsIfCurrentNot("ruby", t)
		}
		c.insertHTMLElement(t)
		return false, inBody

	case "rp", "rt":
		if c.oe.elementInScope(defaultScope, "ruby") {
			c.generateImpliedEndTags("rtc")
			if n := c.currentNode(); n == nil || (n.TagName != "rtc" && n.TagName != "ruby") {
				c.errs.add(ErrUnexpectedStartTag, t.Span.Start, t.TagName)
			}
		}
		c.insertHTMLElement(t)
		return false, inBody

	case "math":
		c.reconstructActiveFormattingElements()
		adjustMathMLAttributes(t.Attributes)
		adjustForeignAttributes(t.Attributes)
		element := c.insertForeignElement(t, spec.MathMLNamespace)
		if t.SelfClosing && element != nil {
			c.oe.pop()
			c.acknowledgeSelfClosing(t)
		}
		return false, inBody

	case "svg":
		c.reconstructActiveFormattingElements()
		adjustSVGAttributes(t.Attributes)
		adjustForeignAttributes(t.Attributes)
		element := c.insertForeignElement(t, spec.SVGNamespace)
		if t.SelfClosing && element != nil {
			c.oe.pop()
			c.acknowledgeSelfClosing(t)
		}
		return false, inBody

	case "caption", "col", "colgroup", "frame", "head", "tbody", "td",
		"tfoot", "th", "thead", "tr":
		c.errs.add(ErrUnexpectedStartTag, t.Span.Start, t.TagName)
		return false, inBody

	default:
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		return false, inBody
	}
}

func (c *HTMLTreeConstructor) inBodyEndTag(t *Token) (bool, insertionMode) {
	switch t.TagName {
	case "template":
		return c.useRulesFor(t, inBody, inHead)

	case "body", "html":
		if !c.oe.elementInScope(defaultScope, "body") {
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inBody
		}
		for _, n := range c.oe {
			if n.Namespace == spec.HTMLNamespace && !allowedUnclosed[n.TagName] {
				c.errs.add(ErrMismatchedEndTag, t.Span.Start, n.TagName)
				break
			}
		}
		if t.TagName == "html" {
			return true, afterBody
		}
		return false, afterBody

	case "address", "article", "aside", "blockquote", "button",
		"center", "details", "dialog", "dir", "div", "dl", "fieldset",
		"figcaption", "figure", "footer", "header", "hgroup", "listing",
		"main", "menu", "nav", "ol", "pre", "search", "section",
		"summary", "ul":
		if !c.oe.elementInScope(defaultScope, t.TagName) {
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inBody
		}
		c.generateImpliedEndTags()
		c.errsIfCurrentNot(t.TagName, t)
		c.oe.popUntil(defaultScope, t.TagName)
		return false, inBody

	case "form":
		hasTemplate := false
		if _, i := c.lastInStack("template"); i != -1 {
			hasTemplate = true
		}
		if !hasTemplate {
			node := c.formElementPointer
			c.formElementPointer = nil
			if node == nil || !c.oe.nodeInScope(defaultScope, node) {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "form")
				return false, inBody
			}
			c.generateImpliedEndTags()
			if !c.sink.SameNode(c.currentNode(), node) {
				c.errs.add(ErrMismatchedEndTag, t.Span.Start, "form")
			}
			c.oe.remove(node)
			return false, inBody
		}
		if !c.oe.elementInScope(defaultScope, "form") {
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "form")
			return false, inBody
		}
		c.generateImpliedEndTags()
		c.errsIfCurrentNot("form", t)
		c.oe.popUntil(defaultScope, "form")
		return false, inBody

	case "p":
		if !c.oe.elementInScope(buttonScope, "p") {
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "p")
			c.insertHTMLElement(&Token{Type: startTagToken, TagName: "p", Span: t.Span})
		}
		c.closePElement(t)
		return false, inBody

	case "li":
		if !c.oe.elementInScope(listItemScope, "li") {
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "li")
			return false, inBody
		}
		c.generateImpliedEndTags("li")
		c.errsIfCurrentNot("li", t)
		c.oe.popUntil(listItemScope, "li")
		return false, inBody

	case "dd", "dt":
		if !c.oe.elementInScope(defaultScope, t.TagName) {
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inBody
		}
		c.generateImpliedEndTags(t.TagName)
		c.errsIfCurrentNot(t.TagName, t)
		c.oe.popUntil(defaultScope, t.TagName)
		return false, inBody

	case "h1", "h2", "h3", "h4", "h5", "h6":
		headings := []string{"h1", "h2", "h3", "h4", "h5", "h6"}
		if !c.oe.elementInScope(defaultScope, headings...) {
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inBody
		}
		c.generateImpliedEndTags()
		c.errsIfCurrentNot(t.TagName, t)
		c.oe.popUntil(defaultScope, headings...)
		return false, inBody

	case "a", "b", "big", "code", "em", "font", "i", "nobr", "s",
		"small", "strike", "strong", "tt", "u":
		c.adoptionAgency(t)
		return false, inBody

	case "applet", "marquee", "object":
		if !c.oe.elementInScope(defaultScope, t.TagName) {
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inBody
		}
		c.generateImpliedEndTags()
		c.errsIfCurrentNot(t.TagName, t)
		c.oe.popUntil(defaultScope, t.TagName)
		c.clearFormattingToLastMarker()
		return false, inBody

	case "br":
		c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "br")
		c.reconstructActiveFormattingElements()
		if c.insertHTMLElement(&Token{Type: startTagToken, TagName: "br", Span: t.Span}) != nil {
			c.oe.pop()
		}
		c.framesetOK = false
		return false, inBody

	default:
		c.anyOtherEndTag(t)
		return false, inBody
	}
}

// anyOtherEndTag closes the nearest matching open element, or ignores
// the tag when a special element sits in between.
func (c *HTMLTreeConstructor) anyOtherEndTag(t *Token) {
	for i := len(c.oe) - 1; i >= 0; i-- {
		node := c.oe[i]
		if node.Namespace == spec.HTMLNamespace && node.TagName == t.TagName {
			c.generateImpliedEndTags(t.TagName)
			if !c.sink.SameNode(c.currentNode(), node) {
				c.errs.add(ErrMismatchedEndTag, t.Span.Start, t.TagName)
			}
			c.oe = c.oe[:i]
			return
		}
		if isSpecialElement(node) {
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return
		}
	}
}

// closePElement closes a p element known to be in button scope.
func (c *HTMLTreeConstructor) closePElement(t *Token) {
	c.generateImpliedEndTags("p")
	c.errsIfCurrentNot("p", t)
	c.oe.popUntil(buttonScope, "p")
}

func (c *HTMLTreeConstructor) closePElementIfInButtonScope(t *Token) {
	if c.oe.elementInScope(buttonScope, "p") {
		c.closePElement(t)
	}
}

// mergeAttributes copies attributes the element does not already have,
// for the duplicated html and body start tags.
func mergeAttributes(n *spec.Node, attrs []spec.Attribute) {
	for _, a := range attrs {
		if !n.HasAttr(a.Name) {
			n.Attributes = append(n.Attributes, a)
		}
	}
}
