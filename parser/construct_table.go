package parser

import (
	"strings"

	"github.com/fogwing/htmlparse/parser/spec"
)

func (c *HTMLTreeConstructor) clearStackBackToTable() {
	for {
		n := c.currentNode()
		if n == nil || n.Namespace != spec.HTMLNamespace {
			return
		}
		switch n.TagName {
		case "table", "template", "html":
			return
		}
		c.oe.pop()
	}
}

func (c *HTMLTreeConstructor) clearStackBackToTableBody() {
	for {
		n := c.currentNode()
		if n == nil || n.Namespace != spec.HTMLNamespace {
			return
		}
		switch n.TagName {
		case "tbody", "tfoot", "thead", "template", "html":
			return
		}
		c.oe.pop()
	}
}

func (c *HTMLTreeConstructor) clearStackBackToTableRow() {
	for {
		n := c.currentNode()
		if n == nil || n.Namespace != spec.HTMLNamespace {
			return
		}
		switch n.TagName {
		case "tr", "template", "html":
			return
		}
		c.oe.pop()
	}
}

// fosterProcess runs the token through another mode's rules with
// foster parenting enabled, which re-homes mis-nested table content
// before the table.
func (c *HTMLTreeConstructor) fosterProcess(t *Token, currentMode, rulesMode insertionMode) (bool, insertionMode) {
	c.fosterParenting = true
	reprocess, mode := c.useRulesFor(t, currentMode, rulesMode)
	c.fosterParenting = false
	return reprocess, mode
}

func (c *HTMLTreeConstructor) inTableModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		if n := c.currentNode(); n != nil && n.Namespace == spec.HTMLNamespace {
			switch n.TagName {
			case "table", "tbody", "tfoot", "thead", "tr":
				c.pendingTableText = c.pendingTableText[:0]
				// c.mode, not inTable: these rules also run on behalf of
				// the row and section modes.
				c.originalInsertionMode = c.mode
				return true, inTableText
			}
		}
	case commentToken:
		c.insertComment(t)
		return false, inTable
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, inTable
	case startTagToken:
		switch t.TagName {
		case "caption":
			c.clearStackBackToTable()
			if c.insertHTMLElement(t) != nil {
				c.pushFormattingMarker()
			}
			return false, inCaption
		case "colgroup":
			c.clearStackBackToTable()
			c.insertHTMLElement(t)
			return false, inColumnGroup
		case "col":
			c.clearStackBackToTable()
			c.insertHTMLElement(&Token{Type: startTagToken, TagName: "colgroup", Span: t.Span})
			return true, inColumnGroup
		case "tbody", "tfoot", "thead":
			c.clearStackBackToTable()
			c.insertHTMLElement(t)
			return false, inTableBody
		case "td", "th", "tr":
			c.clearStackBackToTable()
			c.insertHTMLElement(&Token{Type: startTagToken, TagName: "tbody", Span: t.Span})
			return true, inTableBody
		case "table":
			c.errs.add(ErrUnexpectedStartTagInTable, t.Span.Start, "table")
			if !c.oe.elementInScope(tableScope, "table") {
				return false, inTable
			}
			c.oe.popUntil(tableScope, "table")
			return true, c.resetInsertionMode()
		case "style", "script", "template":
			return c.useRulesFor(t, inTable, inHead)
		case "input":
			if typ, ok := t.getAttr("type"); ok && strings.EqualFold(typ, "hidden") {
				c.errs.add(ErrUnexpectedStartTagInTable, t.Span.Start, "input")
				if c.insertHTMLElement(t) != nil {
					c.oe.pop()
				}
				c.acknowledgeSelfClosing(t)
				return false, inTable
			}
		case "form":
			c.errs.add(ErrUnexpectedStartTagInTable, t.Span.Start, "form")
			if _, i := c.lastInStack("template"); i != -1 || c.formElementPointer != nil {
				return false, inTable
			}
			if element := c.insertHTMLElement(t); element != nil {
				c.formElementPointer = element
				c.oe.pop()
			}
			return false, inTable
		}
	case endTagToken:
		switch t.TagName {
		case "table":
			if !c.oe.elementInScope(tableScope, "table") {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "table")
				return false, inTable
			}
			c.oe.popUntil(tableScope, "table")
			return false, c.resetInsertionMode()
		case "body", "caption", "col", "colgroup", "html", "tbody",
			"td", "tfoot", "th", "thead", "tr":
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inTable
		case "template":
			return c.useRulesFor(t, inTable, inHead)
		}
	case endOfFileToken:
		return c.useRulesFor(t, inTable, inBody)
	}
	c.errs.add(ErrUnexpectedStartTagInTable, t.Span.Start, t.TagName)
	return c.fosterProcess(t, inTable, inBody)
}

func (c *HTMLTreeConstructor) inTableTextModeHandler(t *Token) (bool, insertionMode) {
	if t.Type == characterToken {
		data := t.Data
		if strings.ContainsRune(data, '\u0000') {
			c.errs.add(ErrUnexpectedNullCharacter, t.Span.Start, "")
			data = strings.ReplaceAll(data, "\u0000", "")
		}
		if data != "" {
			c.pendingTableText = append(c.pendingTableText, Token{Type: characterToken, Data: data, Span: t.Span})
		}
		return false, inTableText
	}

	fosters := false
	for _, ct := range c.pendingTableText {
		if !ct.isWhitespace() {
			fosters = true
			break
		}
	}
	for i := range c.pendingTableText {
		ct := c.pendingTableText[i]
		if fosters {
			c.errs.add(ErrUnexpectedToken, ct.Span.Start, "")
			c.fosterProcess(&ct, inTableText, inBody)
		} else {
			c.insertCharacter(&ct)
		}
	}
	c.pendingTableText = c.pendingTableText[:0]
	return true, c.originalInsertionMode
}

func (c *HTMLTreeConstructor) inCaptionModeHandler(t *Token) (bool, insertionMode) {
	closeCaption := func() bool {
		if !c.oe.elementInScope(tableScope, "caption") {
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false
		}
		c.generateImpliedEndTags()
		c.errsIfCurrentNot("caption", t)
		c.oe.popUntil(tableScope, "caption")
		c.clearFormattingToLastMarker()
		return true
	}

	switch t.Type {
	case startTagToken:
		switch t.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot",
			"th", "thead", "tr":
			if !closeCaption() {
				return false, inCaption
			}
			return true, inTable
		}
	case endTagToken:
		switch t.TagName {
		case "caption":
			if !closeCaption() {
				return false, inCaption
			}
			return false, inTable
		case "table":
			if !closeCaption() {
				return false, inCaption
			}
			return true, inTable
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot",
			"th", "thead", "tr":
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inCaption
		}
	}
	return c.useRulesFor(t, inCaption, inBody)
}

func (c *HTMLTreeConstructor) inColumnGroupModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		if t.isWhitespace() {
			c.insertCharacter(t)
			return false, inColumnGroup
		}
	case commentToken:
		c.insertComment(t)
		return false, inColumnGroup
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, inColumnGroup
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inColumnGroup, inBody)
		case "col":
			if c.insertHTMLElement(t) != nil {
				c.oe.pop()
			}
			c.acknowledgeSelfClosing(t)
			return false, inColumnGroup
		case "template":
			return c.useRulesFor(t, inColumnGroup, inHead)
		}
	case endTagToken:
		switch t.TagName {
		case "colgroup":
			if n := c.currentNode(); n == nil || n.TagName != "colgroup" {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "colgroup")
				return false, inColumnGroup
			}
			c.oe.pop()
			return false, inTable
		case "col":
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "col")
			return false, inColumnGroup
		case "template":
			return c.useRulesFor(t, inColumnGroup, inHead)
		}
	case endOfFileToken:
		return c.useRulesFor(t, inColumnGroup, inBody)
	}
	if n := c.currentNode(); n == nil || n.TagName != "colgroup" {
		c.errs.add(ErrUnexpectedToken, t.Span.Start, "")
		return false, inColumnGroup
	}
	c.oe.pop()
	return true, inTable
}

func (c *HTMLTreeConstructor) inTableBodyModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case startTagToken:
		switch t.TagName {
		case "tr":
			c.clearStackBackToTableBody()
			c.insertHTMLElement(t)
			return false, inRow
		case "th", "td":
			c.errs.add(ErrUnexpectedStartTagInTable, t.Span.Start, t.TagName)
			c.clearStackBackToTableBody()
			c.insertHTMLElement(&Token{Type: startTagToken, TagName: "tr", Span: t.Span})
			return true, inRow
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !c.oe.elementInScope(tableScope, "tbody", "thead", "tfoot") {
				c.errs.add(ErrUnexpectedStartTagInTable, t.Span.Start, t.TagName)
				return false, inTableBody
			}
			c.clearStackBackToTableBody()
			c.oe.pop()
			return true, inTable
		}
	case endTagToken:
		switch t.TagName {
		case "tbody", "tfoot", "thead":
			if !c.oe.elementInScope(tableScope, t.TagName) {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
				return false, inTableBody
			}
			c.clearStackBackToTableBody()
			c.oe.pop()
			return false, inTable
		case "table":
			if !c.oe.elementInScope(tableScope, "tbody", "thead", "tfoot") {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
				return false, inTableBody
			}
			c.clearStackBackToTableBody()
			c.oe.pop()
			return true, inTable
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inTableBody
		}
	}
	return c.useRulesFor(t, inTableBody, inTable)
}

func (c *HTMLTreeConstructor) inRowModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case startTagToken:
		switch t.TagName {
		case "th", "td":
			c.clearStackBackToTableRow()
			if c.insertHTMLElement(t) != nil {
				c.pushFormattingMarker()
			}
			return false, inCell
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !c.oe.elementInScope(tableScope, "tr") {
				c.errs.add(ErrUnexpectedStartTagInTable, t.Span.Start, t.TagName)
				return false, inRow
			}
			c.clearStackBackToTableRow()
			c.oe.pop()
			return true, inTableBody
		}
	case endTagToken:
		switch t.TagName {
		case "tr":
			if !c.oe.elementInScope(tableScope, "tr") {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "tr")
				return false, inRow
			}
			c.clearStackBackToTableRow()
			c.oe.pop()
			return false, inTableBody
		case "table":
			if !c.oe.elementInScope(tableScope, "tr") {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
				return false, inRow
			}
			c.clearStackBackToTableRow()
			c.oe.pop()
			return true, inTableBody
		case "tbody", "tfoot", "thead":
			if !c.oe.elementInScope(tableScope, t.TagName) {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
				return false, inRow
			}
			if !c.oe.elementInScope(tableScope, "tr") {
				return false, inRow
			}
			c.clearStackBackToTableRow()
			c.oe.pop()
			return true, inTableBody
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inRow
		}
	}
	return c.useRulesFor(t, inRow, inTable)
}

func (c *HTMLTreeConstructor) inCellModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case startTagToken:
		switch t.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot",
			"th", "thead", "tr":
			if !c.oe.elementInScope(tableScope, "td", "th") {
				c.errs.add(ErrUnexpectedStartTagInTable, t.Span.Start, t.TagName)
				return false, inCell
			}
			c.closeCell(t)
			return true, inRow
		}
	case endTagToken:
		switch t.TagName {
		case "td", "th":
			if !c.oe.elementInScope(tableScope, t.TagName) {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
				return false, inCell
			}
			c.generateImpliedEndTags()
			c.errsIfCurrentNot(t.TagName, t)
			c.oe.popUntil(tableScope, t.TagName)
			c.clearFormattingToLastMarker()
			return false, inRow
		case "body", "caption", "col", "colgroup", "html":
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inCell
		case "table", "tbody", "tfoot", "thead", "tr":
			if !c.oe.elementInScope(tableScope, t.TagName) {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
				return false, inCell
			}
			c.closeCell(t)
			return true, inRow
		}
	}
	return c.useRulesFor(t, inCell, inBody)
}

// closeCell closes the open td or th and clears the cell's formatting
// marker.
func (c *HTMLTreeConstructor) closeCell(t *Token) {
	c.generateImpliedEndTags()
	if n := c.currentNode(); n == nil || (n.TagName != "td" && n.TagName != "th") {
		c.errs.add(ErrMismatchedEndTag, t.Span.Start, t.TagName)
	}
	c.oe.popUntil(tableScope, "td", "th")
	c.clearFormattingToLastMarker()
}

func (c *HTMLTreeConstructor) inSelectModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		data := t.Data
		if strings.ContainsRune(data, '\u0000') {
			c.errs.add(ErrUnexpectedNullCharacter, t.Span.Start, "")
			data = strings.ReplaceAll(data, "\u0000", "")
			if data == "" {
				return false, inSelect
			}
		}
		c.insertCharacter(&Token{Type: characterToken, Data: data, Span: t.Span})
		return false, inSelect
	case commentToken:
		c.insertComment(t)
		return false, inSelect
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, inSelect
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inSelect, inBody)
		case "option":
			if n := c.currentNode(); n != nil && n.TagName == "option" {
				c.oe.pop()
			}
			c.insertHTMLElement(t)
			return false, inSelect
		case "optgroup":
			if n := c.currentNode(); n != nil && n.TagName == "option" {
				c.oe.pop()
			}
			if n := c.currentNode(); n != nil && n.TagName == "optgroup" {
				c.oe.pop()
			}
			c.insertHTMLElement(t)
			return false, inSelect
		case "hr":
			if n := c.currentNode(); n != nil && n.TagName == "option" {
				c.oe.pop()
			}
			if n := c.currentNode(); n != nil && n.TagName == "optgroup" {
				c.oe.pop()
			}
			if c.insertHTMLElement(t) != nil {
				c.oe.pop()
			}
			c.acknowledgeSelfClosing(t)
			return false, inSelect
		case "select":
			c.errs.add(ErrUnexpectedStartTag, t.Span.Start, "select")
			if !c.oe.elementInScope(selectScope, "select") {
				return false, inSelect
			}
			c.oe.popUntil(selectScope, "select")
			return false, c.resetInsertionMode()
		case "input", "keygen", "textarea":
			c.errs.add(ErrUnexpectedStartTag, t.Span.Start, t.TagName)
			if !c.oe.elementInScope(selectScope, "select") {
				return false, inSelect
			}
			c.oe.popUntil(selectScope, "select")
			return true, c.resetInsertionMode()
		case "script", "template":
			return c.useRulesFor(t, inSelect, inHead)
		}
	case endTagToken:
		switch t.TagName {
		case "optgroup":
			if n := c.currentNode(); n != nil && n.TagName == "option" && len(c.oe) > 1 &&
				c.oe[len(c.oe)-2].TagName == "optgroup" {
				c.oe.pop()
			}
			if n := c.currentNode(); n != nil && n.TagName == "optgroup" {
				c.oe.pop()
			} else {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "optgroup")
			}
			return false, inSelect
		case "option":
			if n := c.currentNode(); n != nil && n.TagName == "option" {
				c.oe.pop()
			} else {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "option")
			}
			return false, inSelect
		case "select":
			if !c.oe.elementInScope(selectScope, "select") {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "select")
				return false, inSelect
			}
			c.oe.popUntil(selectScope, "select")
			return false, c.resetInsertionMode()
		case "template":
			return c.useRulesFor(t, inSelect, inHead)
		}
	case endOfFileToken:
		return c.useRulesFor(t, inSelect, inBody)
	}
	c.errs.add(ErrUnexpectedToken, t.Span.Start, "")
	return false, inSelect
}

func (c *HTMLTreeConstructor) inSelectInTableModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case startTagToken:
		switch t.TagName {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			c.errs.add(ErrUnexpectedStartTagInTable, t.Span.Start, t.TagName)
			c.oe.popUntil(selectScope, "select")
			return true, c.resetInsertionMode()
		}
	case endTagToken:
		switch t.TagName {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			if !c.oe.elementInScope(tableScope, t.TagName) {
				return false, inSelectInTable
			}
			c.oe.popUntil(selectScope, "select")
			return true, c.resetInsertionMode()
		}
	}
	reprocess, mode := c.useRulesFor(t, inSelectInTable, inSelect)
	if mode == inSelect {
		mode = inSelectInTable
	}
	return reprocess, mode
}

func (c *HTMLTreeConstructor) inTemplateModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken, commentToken, doctypeToken:
		return c.useRulesFor(t, inTemplate, inBody)
	case startTagToken:
		switch t.TagName {
		case "base", "basefont", "bgsound", "link", "meta", "noframes",
			"script", "style", "template", "title":
			return c.useRulesFor(t, inTemplate, inHead)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			return true, c.switchTemplateMode(inTable)
		case "col":
			return true, c.switchTemplateMode(inColumnGroup)
		case "tr":
			return true, c.switchTemplateMode(inTableBody)
		case "td", "th":
			return true, c.switchTemplateMode(inRow)
		default:
			return true, c.switchTemplateMode(inBody)
		}
	case endTagToken:
		if t.TagName == "template" {
			return c.useRulesFor(t, inTemplate, inHead)
		}
		c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
		return false, inTemplate
	case endOfFileToken:
		if _, i := c.lastInStack("template"); i == -1 {
			return c.stopParsing()
		}
		c.errs.add(ErrUnexpectedEOF, t.Span.Start, "template")
		for {
			n := c.oe.pop()
			if n == nil || (n.Namespace == spec.HTMLNamespace && n.TagName == "template") {
				break
			}
		}
		c.clearFormattingToLastMarker()
		if len(c.templateModes) > 0 {
			c.templateModes = c.templateModes[:len(c.templateModes)-1]
		}
		return true, c.resetInsertionMode()
	}
	return false, inTemplate
}

// switchTemplateMode replaces the current template insertion mode.
func (c *HTMLTreeConstructor) switchTemplateMode(mode insertionMode) insertionMode {
	if len(c.templateModes) > 0 {
		c.templateModes[len(c.templateModes)-1] = mode
	} else {
		c.templateModes = append(c.templateModes, mode)
	}
	return mode
}
