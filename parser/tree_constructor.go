package parser

import (
	"strings"

	"github.com/fogwing/htmlparse/parser/spec"
)

type insertionMode uint8

const (
	initial insertionMode = iota
	beforeHTML
	beforeHead
	inHead
	inHeadNoScript
	afterHead
	inBody
	text
	inTable
	inTableText
	inCaption
	inColumnGroup
	inTableBody
	inRow
	inCell
	inSelect
	inSelectInTable
	inTemplate
	afterBody
	inFrameset
	afterFrameset
	afterAfterBody
	afterAfterFrameset
)

type treeConstructionModeHandler func(t *Token) (bool, insertionMode)

// HTMLTreeConstructor consumes the token stream and builds the
// document through the sink. One instance handles one parse.
type HTMLTreeConstructor struct {
	sink TreeSink
	errs *errorList
	opts Options

	mode                  insertionMode
	originalInsertionMode insertionMode
	templateModes         []insertionMode
	mappings              map[insertionMode]treeConstructionModeHandler

	oe  nodeStack
	afe formattingList

	headElementPointer *spec.Node
	formElementPointer *spec.Node

	framesetOK      bool
	fosterParenting bool
	quirksMode      spec.QuirksMode

	// pendingTableText holds character tokens seen in a table until it
	// is known whether they foster-parent.
	pendingTableText []Token

	// pendingTokenizerState is handed to the tokenizer before the next
	// token, switching the content model for RAWTEXT, RCDATA, script
	// data and plaintext elements.
	pendingTokenizerState *tokenizerState

	// fragmentContext is the context element of a fragment parse, nil
	// for a document parse.
	fragmentContext *spec.Node
	fragmentRoot    *spec.Node

	// ignoreNextLF drops the newline immediately after a pre, listing
	// or textarea start tag.
	ignoreNextLF bool

	// modeOverride carries a recomputed insertion mode out of a
	// delegated handler; useRulesFor cannot tell a recomputed mode from
	// "stayed put" when the two coincide.
	modeOverride *insertionMode

	selfClosingAcknowledged bool
	done                    bool
}

func NewHTMLTreeConstructor(sink TreeSink, errs *errorList, opts Options) *HTMLTreeConstructor {
	c := &HTMLTreeConstructor{
		sink:       sink,
		errs:       errs,
		opts:       opts,
		framesetOK: true,
	}
	c.createMappings()
	return c
}

func (c *HTMLTreeConstructor) createMappings() {
	c.mappings = map[insertionMode]treeConstructionModeHandler{
		initial:            c.initialModeHandler,
		beforeHTML:         c.beforeHTMLModeHandler,
		beforeHead:         c.beforeHeadModeHandler,
		inHead:             c.inHeadModeHandler,
		inHeadNoScript:     c.inHeadNoScriptModeHandler,
		afterHead:          c.afterHeadModeHandler,
		inBody:             c.inBodyModeHandler,
		text:               c.textModeHandler,
		inTable:            c.inTableModeHandler,
		inTableText:        c.inTableTextModeHandler,
		inCaption:          c.inCaptionModeHandler,
		inColumnGroup:      c.inColumnGroupModeHandler,
		inTableBody:        c.inTableBodyModeHandler,
		inRow:              c.inRowModeHandler,
		inCell:             c.inCellModeHandler,
		inSelect:           c.inSelectModeHandler,
		inSelectInTable:    c.inSelectInTableModeHandler,
		inTemplate:         c.inTemplateModeHandler,
		afterBody:          c.afterBodyModeHandler,
		inFrameset:         c.inFramesetModeHandler,
		afterFrameset:      c.afterFramesetModeHandler,
		afterAfterBody:     c.afterAfterBodyModeHandler,
		afterAfterFrameset: c.afterAfterFramesetModeHandler,
	}
}

// Done reports whether the end-of-file token has been processed.
func (c *HTMLTreeConstructor) Done() bool { return c.done }

// Progress reports what the tokenizer needs for its next token. The
// pending state switch is consumed by the call.
func (c *HTMLTreeConstructor) Progress() Progress {
	progress := Progress{
		AdjustedCurrentNode: c.adjustedCurrentNode(),
		TokenizerState:      c.pendingTokenizerState,
	}
	c.pendingTokenizerState = nil
	return progress
}

func (c *HTMLTreeConstructor) currentNode() *spec.Node {
	return c.oe.top()
}

// adjustedCurrentNode is the context element when only the fragment
// root is open, the current node otherwise.
func (c *HTMLTreeConstructor) adjustedCurrentNode() *spec.Node {
	if c.fragmentContext != nil && len(c.oe) == 1 {
		return c.fragmentContext
	}
	return c.oe.top()
}

// ProcessToken dispatches one token, reprocessing as long as a mode
// asks for it. The tree construction dispatcher picks between the
// insertion modes and the foreign content rules.
func (c *HTMLTreeConstructor) ProcessToken(t *Token) {
	if c.ignoreNextLF {
		c.ignoreNextLF = false
		if t.Type == characterToken && strings.HasPrefix(t.Data, "\n") {
			t.Data = t.Data[1:]
			if t.Data == "" {
				return
			}
		}
	}
	if t.Type == startTagToken {
		c.selfClosingAcknowledged = false
	}
	reprocess := true
	for reprocess {
		if c.dispatchToForeignContent(t) {
			reprocess = c.foreignContentHandler(t)
			continue
		}
		var next insertionMode
		reprocess, next = c.mappings[c.mode](t)
		if c.modeOverride != nil {
			next = *c.modeOverride
			c.modeOverride = nil
		}
		c.mode = next
	}
	if t.Type == startTagToken && t.SelfClosing && !c.selfClosingAcknowledged {
		c.errs.add(ErrUnexpectedSelfClosingTag, t.Span.Start, t.TagName)
	}
	if t.Type == endOfFileToken {
		c.done = true
	}
}

// dispatchToForeignContent decides whether the token is handled by the
// foreign content rules instead of the current insertion mode.
func (c *HTMLTreeConstructor) dispatchToForeignContent(t *Token) bool {
	acn := c.adjustedCurrentNode()
	if acn == nil || acn.Namespace == spec.HTMLNamespace {
		return false
	}
	if t.Type == endOfFileToken {
		return false
	}
	if isMathMLTextIntegrationPoint(acn) {
		if t.Type == characterToken {
			return false
		}
		if t.Type == startTagToken && t.TagName != "mglyph" && t.TagName != "malignmark" {
			return false
		}
	}
	if acn.Namespace == spec.MathMLNamespace && acn.TagName == "annotation-xml" &&
		t.Type == startTagToken && t.TagName == "svg" {
		return false
	}
	if isHTMLIntegrationPoint(acn) && (t.Type == startTagToken || t.Type == characterToken) {
		return false
	}
	return true
}

// useRulesFor processes the token with another mode's rules while
// staying in the current mode unless those rules switch away
// themselves.
func (c *HTMLTreeConstructor) useRulesFor(t *Token, currentMode, rulesMode insertionMode) (bool, insertionMode) {
	reprocess, nextMode := c.mappings[rulesMode](t)
	if nextMode == rulesMode {
		return reprocess, currentMode
	}
	return reprocess, nextMode
}

// insertionPoint is a place in the tree: append to parent, or insert
// before the sibling ref when it is set.
type insertionPoint struct {
	parent *spec.Node
	before *spec.Node
}

// appropriatePlaceForInsertion implements the foster-parenting aware
// insertion location. A nil overrideTarget means the current node.
func (c *HTMLTreeConstructor) appropriatePlaceForInsertion(overrideTarget *spec.Node) insertionPoint {
	target := overrideTarget
	if target == nil {
		target = c.currentNode()
	}
	if c.fosterParenting && isTableFosterTarget(target) {
		lastTemplate, templateIndex := c.lastInStack("template")
		lastTable, tableIndex := c.lastInStack("table")
		if lastTemplate != nil && (lastTable == nil || templateIndex > tableIndex) {
			return insertionPoint{parent: lastTemplate}
		}
		if lastTable == nil {
			return insertionPoint{parent: c.oe[0]}
		}
		if lastTable.Parent != nil {
			return insertionPoint{parent: lastTable.Parent, before: lastTable}
		}
		return insertionPoint{parent: c.oe[tableIndex-1]}
	}
	return insertionPoint{parent: target}
}

func (c *HTMLTreeConstructor) lastInStack(tag string) (*spec.Node, int) {
	for i := len(c.oe) - 1; i >= 0; i-- {
		if c.oe[i].Namespace == spec.HTMLNamespace && c.oe[i].TagName == tag {
			return c.oe[i], i
		}
	}
	return nil, -1
}

// depthOf counts ancestors up to the document.
func depthOf(n *spec.Node) int {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// exceedsDepthLimit reports and records a tree depth overflow at the
// prospective parent. The element for the current token is then never
// created.
func (c *HTMLTreeConstructor) exceedsDepthLimit(ip insertionPoint, tag string, pos spec.Position) bool {
	if c.opts.MaxTreeDepth <= 0 {
		return false
	}
	if depthOf(ip.parent) < c.opts.MaxTreeDepth {
		return false
	}
	c.errs.add(ErrTreeDepthExceeded, pos, tag)
	return true
}

// insertHTMLElement creates an element for the token and inserts it at
// the appropriate place, pushing it onto the stack of open elements.
func (c *HTMLTreeConstructor) insertHTMLElement(t *Token) *spec.Node {
	return c.insertForeignElement(t, spec.HTMLNamespace)
}

func (c *HTMLTreeConstructor) insertForeignElement(t *Token, ns spec.Namespace) *spec.Node {
	ip := c.appropriatePlaceForInsertion(nil)
	if c.exceedsDepthLimit(ip, t.TagName, t.Span.Start) {
		return nil
	}
	tagName := t.TagName
	if ns == spec.SVGNamespace {
		tagName = adjustSVGTagName(tagName)
	}
	element := c.sink.CreateElement(tagName, ns, t.Attributes, t.Span)
	c.sink.InsertBefore(ip.parent, element, ip.before)
	c.oe = append(c.oe, element)
	return element
}

// insertNode inserts an already-created element (a formatting clone)
// at the appropriate place and opens it. It reports whether the clone
// made it into the tree; past the depth cap it is left detached.
func (c *HTMLTreeConstructor) insertNode(n *spec.Node) bool {
	ip := c.appropriatePlaceForInsertion(nil)
	if c.exceedsDepthLimit(ip, n.TagName, n.Span.Start) {
		return false
	}
	c.sink.InsertBefore(ip.parent, n, ip.before)
	c.oe = append(c.oe, n)
	return true
}

// fosterParent re-homes a node the way mis-nested table content moves:
// before the table, or at the end of the enclosing template or root.
func (c *HTMLTreeConstructor) fosterParent(n *spec.Node) {
	saved := c.fosterParenting
	c.fosterParenting = true
	ip := c.appropriatePlaceForInsertion(c.lastTableOrRoot())
	c.fosterParenting = saved
	n.Detach()
	c.sink.InsertBefore(ip.parent, n, ip.before)
}

func (c *HTMLTreeConstructor) lastTableOrRoot() *spec.Node {
	if n, _ := c.lastInStack("table"); n != nil {
		return n
	}
	return c.oe[0]
}

func (c *HTMLTreeConstructor) insertCharacter(t *Token) {
	ip := c.appropriatePlaceForInsertion(nil)
	if ip.parent.Type == spec.DocumentNode {
		return
	}
	c.sink.InsertText(ip.parent, ip.before, t.Data, t.Span)
}

func (c *HTMLTreeConstructor) insertComment(t *Token) {
	ip := c.appropriatePlaceForInsertion(nil)
	c.insertCommentAt(t, ip)
}

func (c *HTMLTreeConstructor) insertCommentAt(t *Token, ip insertionPoint) {
	comment := c.sink.CreateComment(t.Data, t.Span)
	c.sink.InsertBefore(ip.parent, comment, ip.before)
}

// parseGenericRawTextElement switches the content model so everything
// until the matching end tag tokenizes as text.
func (c *HTMLTreeConstructor) parseGenericRawTextElement(t *Token) insertionMode {
	return c.parseGenericTextElement(t, rawTextState)
}

func (c *HTMLTreeConstructor) parseGenericRCDATAElement(t *Token) insertionMode {
	return c.parseGenericTextElement(t, rcDataState)
}

func (c *HTMLTreeConstructor) parseGenericTextElement(t *Token, state tokenizerState) insertionMode {
	if c.insertHTMLElement(t) == nil {
		return c.mode
	}
	c.pendingTokenizerState = &state
	c.originalInsertionMode = c.mode
	return text
}

// generateImpliedEndTags pops elements whose end tags are optional,
// stopping at any of the excepted tag names.
func (c *HTMLTreeConstructor) generateImpliedEndTags(exceptions ...string) {
	for {
		n := c.currentNode()
		if n == nil || n.Namespace != spec.HTMLNamespace {
			return
		}
		switch n.TagName {
		case "dd", "dt", "li", "optgroup", "option", "p", "rb", "rp", "rt", "rtc":
			for _, e := range exceptions {
				if n.TagName == e {
					return
				}
			}
			c.oe.pop()
		default:
			return
		}
	}
}

func (c *HTMLTreeConstructor) generateImpliedEndTagsThoroughly() {
	for {
		n := c.currentNode()
		if n == nil || n.Namespace != spec.HTMLNamespace {
			return
		}
		switch n.TagName {
		case "caption", "colgroup", "dd", "dt", "li", "optgroup", "option",
			"p", "rb", "rp", "rt", "rtc", "tbody", "td", "tfoot", "th", "thead", "tr":
			c.oe.pop()
		default:
			return
		}
	}
}

// resetInsertionMode recomputes the mode from the stack of open
// elements, used after closing a template or mis-nested table content.
func (c *HTMLTreeConstructor) resetInsertionMode() insertionMode {
	for i := len(c.oe) - 1; i >= 0; i-- {
		n := c.oe[i]
		last := i == 0
		if last && c.fragmentContext != nil {
			n = c.fragmentContext
		}
		if n.Namespace != spec.HTMLNamespace {
			continue
		}
		switch n.TagName {
		case "select":
			if !last {
				for j := i - 1; j > 0; j-- {
					switch c.oe[j].TagName {
					case "template":
						return inSelect
					case "table":
						return inSelectInTable
					}
				}
			}
			return inSelect
		case "td", "th":
			if !last {
				return inCell
			}
		case "tr":
			return inRow
		case "tbody", "thead", "tfoot":
			return inTableBody
		case "caption":
			return inCaption
		case "colgroup":
			return inColumnGroup
		case "table":
			return inTable
		case "template":
			if len(c.templateModes) > 0 {
				return c.templateModes[len(c.templateModes)-1]
			}
		case "head":
			if !last {
				return inHead
			}
		case "body":
			return inBody
		case "frameset":
			return inFrameset
		case "html":
			if c.headElementPointer == nil {
				return beforeHead
			}
			return afterHead
		}
		if last {
			return inBody
		}
	}
	return inBody
}

// isSpecialElement reports membership in the special category, which
// bounds the adoption agency and "any other end tag".
func isSpecialElement(n *spec.Node) bool {
	switch n.Namespace {
	case spec.MathMLNamespace:
		switch n.TagName {
		case "mi", "mo", "mn", "ms", "mtext", "annotation-xml":
			return true
		}
		return false
	case spec.SVGNamespace:
		switch n.TagName {
		case "foreignObject", "desc", "title":
			return true
		}
		return false
	}
	switch n.TagName {
	case "address", "applet", "area", "article", "aside", "base",
		"basefont", "bgsound", "blockquote", "body", "br", "button",
		"caption", "center", "col", "colgroup", "dd", "details", "dir",
		"div", "dl", "dt", "embed", "fieldset", "figcaption", "figure",
		"footer", "form", "frame", "frameset", "h1", "h2", "h3", "h4",
		"h5", "h6", "head", "header", "hgroup", "hr", "html", "iframe",
		"img", "input", "keygen", "li", "link", "listing", "main",
		"marquee", "menu", "meta", "nav", "noembed", "noframes",
		"noscript", "object", "ol", "p", "param", "plaintext", "pre",
		"script", "section", "select", "source", "style", "summary",
		"table", "tbody", "td", "template", "textarea", "tfoot", "th",
		"thead", "title", "tr", "track", "ul", "wbr", "xmp":
		return true
	}
	return false
}

func (c *HTMLTreeConstructor) stopParsing() (bool, insertionMode) {
	c.oe = c.oe[:0]
	c.done = true
	return false, c.mode
}

func (c *HTMLTreeConstructor) initialModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		if t.isWhitespace() {
			return false, initial
		}
	case commentToken:
		c.insertCommentAt(t, insertionPoint{parent: c.sink.Document()})
		return false, initial
	case doctypeToken:
		var name, publicID, systemID string
		if t.Name != nil {
			name = *t.Name
		}
		if t.PublicID != nil {
			publicID = *t.PublicID
		}
		if t.SystemID != nil {
			systemID = *t.SystemID
		}
		mode := quirksModeFromDoctype(t)
		if mode != spec.NoQuirks {
			c.errs.add(ErrQuirkyDoctype, t.Span.Start, name)
		}
		c.sink.SetDocumentType(name, publicID, systemID, t.Span)
		c.quirksMode = mode
		c.sink.SetQuirksMode(mode)
		return false, beforeHTML
	}
	c.errs.add(ErrMissingDoctype, t.Span.Start, "")
	c.quirksMode = spec.Quirks
	c.sink.SetQuirksMode(spec.Quirks)
	return true, beforeHTML
}

func (c *HTMLTreeConstructor) beforeHTMLModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, beforeHTML
	case commentToken:
		c.insertCommentAt(t, insertionPoint{parent: c.sink.Document()})
		return false, beforeHTML
	case characterToken:
		if t.isWhitespace() {
			return false, beforeHTML
		}
	case startTagToken:
		if t.TagName == "html" {
			element := c.sink.CreateElement("html", spec.HTMLNamespace, t.Attributes, t.Span)
			c.sink.Append(c.sink.Document(), element)
			c.oe = append(c.oe, element)
			return false, beforeHead
		}
	case endTagToken:
		switch t.TagName {
		case "head", "body", "html", "br":
		default:
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, beforeHTML
		}
	}
	element := c.sink.CreateElement("html", spec.HTMLNamespace, nil, t.Span)
	c.sink.Append(c.sink.Document(), element)
	c.oe = append(c.oe, element)
	return true, beforeHead
}

func (c *HTMLTreeConstructor) beforeHeadModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		if t.isWhitespace() {
			return false, beforeHead
		}
	case commentToken:
		c.insertComment(t)
		return false, beforeHead
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, beforeHead
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, beforeHead, inBody)
		case "head":
			c.headElementPointer = c.insertHTMLElement(t)
			return false, inHead
		}
	case endTagToken:
		switch t.TagName {
		case "head", "body", "html", "br":
		default:
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, beforeHead
		}
	}
	headToken := &Token{Type: startTagToken, TagName: "head", Span: spec.Span{Start: t.Span.Start, End: t.Span.Start}}
	c.headElementPointer = c.insertHTMLElement(headToken)
	return true, inHead
}

func (c *HTMLTreeConstructor) inHeadModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		if t.isWhitespace() {
			c.insertCharacter(t)
			return false, inHead
		}
	case commentToken:
		c.insertComment(t)
		return false, inHead
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, inHead
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inHead, inBody)
		case "base", "basefont", "bgsound", "link", "meta":
			if c.insertHTMLElement(t) != nil {
				c.oe.pop()
			}
			c.acknowledgeSelfClosing(t)
			return false, inHead
		case "title":
			return false, c.parseGenericRCDATAElement(t)
		case "noscript":
			if c.opts.ScriptingEnabled {
				return false, c.parseGenericRawTextElement(t)
			}
			if c.insertHTMLElement(t) == nil {
				return false, inHead
			}
			return false, inHeadNoScript
		case "noframes", "style":
			return false, c.parseGenericRawTextElement(t)
		case "script":
			if c.insertHTMLElement(t) == nil {
				return false, inHead
			}
			state := scriptDataState
			c.pendingTokenizerState = &state
			c.originalInsertionMode = inHead
			return false, text
		case "template":
			if c.insertHTMLElement(t) == nil {
				return false, inHead
			}
			c.pushFormattingMarker()
			c.framesetOK = false
			c.templateModes = append(c.templateModes, inTemplate)
			return false, inTemplate
		case "head":
			c.errs.add(ErrUnexpectedStartTag, t.Span.Start, "head")
			return false, inHead
		}
	case endTagToken:
		switch t.TagName {
		case "head":
			c.popIfCurrentIs("head")
			return false, afterHead
		case "body", "html", "br":
		case "template":
			return c.closeTemplate(t)
		default:
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inHead
		}
	}
	c.popIfCurrentIs("head")
	return true, afterHead
}

// popIfCurrentIs pops the current node only when it is the named HTML
// element. The element a mode implies may be missing when the depth
// cap suppressed its creation.
func (c *HTMLTreeConstructor) popIfCurrentIs(tag string) {
	if n := c.currentNode(); n != nil && n.Namespace == spec.HTMLNamespace && n.TagName == tag {
		c.oe.pop()
	}
}

// closeTemplate pops everything through the nearest template and
// recomputes the mode from the remaining stack.
func (c *HTMLTreeConstructor) closeTemplate(t *Token) (bool, insertionMode) {
	if _, i := c.lastInStack("template"); i == -1 {
		c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "template")
		return false, c.mode
	}
	c.errsIfCurrentNot("template", t)
	c.generateImpliedEndTagsThoroughly()
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
	next := c.resetInsertionMode()
	c.modeOverride = &next
	return false, next
}

func (c *HTMLTreeConstructor) errsIfCurrentNot(tag string, t *Token) {
	if n := c.currentNode(); n == nil || n.Namespace != spec.HTMLNamespace || n.TagName != tag {
		c.errs.add(ErrMismatchedEndTag, t.Span.Start, t.TagName)
	}
}

func (c *HTMLTreeConstructor) acknowledgeSelfClosing(t *Token) {
	if t.SelfClosing {
		c.selfClosingAcknowledged = true
	}
}

func (c *HTMLTreeConstructor) inHeadNoScriptModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, inHeadNoScript
	case characterToken:
		if t.isWhitespace() {
			return c.useRulesFor(t, inHeadNoScript, inHead)
		}
	case commentToken:
		return c.useRulesFor(t, inHeadNoScript, inHead)
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inHeadNoScript, inBody)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return c.useRulesFor(t, inHeadNoScript, inHead)
		case "head", "noscript":
			c.errs.add(ErrUnexpectedStartTag, t.Span.Start, t.TagName)
			return false, inHeadNoScript
		}
	case endTagToken:
		switch t.TagName {
		case "noscript":
			c.popIfCurrentIs("noscript")
			return false, inHead
		case "br":
		default:
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, inHeadNoScript
		}
	}
	c.errs.add(ErrUnexpectedToken, t.Span.Start, "")
	c.popIfCurrentIs("noscript")
	return true, inHead
}

func (c *HTMLTreeConstructor) afterHeadModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		if t.isWhitespace() {
			c.insertCharacter(t)
			return false, afterHead
		}
	case commentToken:
		c.insertComment(t)
		return false, afterHead
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, afterHead
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, afterHead, inBody)
		case "body":
			c.insertHTMLElement(t)
			c.framesetOK = false
			return false, inBody
		case "frameset":
			c.insertHTMLElement(t)
			return false, inFrameset
		case "base", "basefont", "bgsound", "link", "meta", "noframes",
			"script", "style", "template", "title":
			c.errs.add(ErrUnexpectedStartTag, t.Span.Start, t.TagName)
			if c.headElementPointer == nil {
				return c.useRulesFor(t, afterHead, inHead)
			}
			c.oe = append(c.oe, c.headElementPointer)
			reprocess, mode := c.useRulesFor(t, afterHead, inHead)
			c.oe.remove(c.headElementPointer)
			return reprocess, mode
		case "head":
			c.errs.add(ErrUnexpectedStartTag, t.Span.Start, "head")
			return false, afterHead
		}
	case endTagToken:
		switch t.TagName {
		case "template":
			return c.useRulesFor(t, afterHead, inHead)
		case "body", "html", "br":
		default:
			c.errs.add(ErrUnexpectedEndTag, t.Span.Start, t.TagName)
			return false, afterHead
		}
	}
	bodyToken := &Token{Type: startTagToken, TagName: "body", Span: spec.Span{Start: t.Span.Start, End: t.Span.Start}}
	c.insertHTMLElement(bodyToken)
	return true, inBody
}

func (c *HTMLTreeConstructor) textModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		c.insertCharacter(t)
		return false, text
	case endOfFileToken:
		c.errs.add(ErrUnexpectedEOF, t.Span.Start, "")
		c.oe.pop()
		return true, c.originalInsertionMode
	case endTagToken:
		c.oe.pop()
		return false, c.originalInsertionMode
	}
	return false, text
}

func (c *HTMLTreeConstructor) afterBodyModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		if t.isWhitespace() {
			return c.useRulesFor(t, afterBody, inBody)
		}
	case commentToken:
		c.insertCommentAt(t, insertionPoint{parent: c.oe[0]})
		return false, afterBody
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, afterBody
	case startTagToken:
		if t.TagName == "html" {
			return c.useRulesFor(t, afterBody, inBody)
		}
	case endTagToken:
		if t.TagName == "html" {
			if c.fragmentContext != nil {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "html")
				return false, afterBody
			}
			return false, afterAfterBody
		}
	case endOfFileToken:
		return c.stopParsing()
	}
	c.errs.add(ErrUnexpectedToken, t.Span.Start, "")
	return true, inBody
}

func (c *HTMLTreeConstructor) inFramesetModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		if t.isWhitespace() {
			c.insertCharacter(t)
		} else {
			c.errs.add(ErrUnexpectedToken, t.Span.Start, t.Data)
		}
		return false, inFrameset
	case commentToken:
		c.insertComment(t)
		return false, inFrameset
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, inFrameset
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inFrameset, inBody)
		case "frameset":
			c.insertHTMLElement(t)
			return false, inFrameset
		case "frame":
			if c.insertHTMLElement(t) != nil {
				c.oe.pop()
			}
			c.acknowledgeSelfClosing(t)
			return false, inFrameset
		case "noframes":
			return c.useRulesFor(t, inFrameset, inHead)
		}
	case endTagToken:
		if t.TagName == "frameset" {
			if current := c.currentNode(); current != nil && current.TagName == "html" && len(c.oe) == 1 {
				c.errs.add(ErrUnexpectedEndTag, t.Span.Start, "frameset")
				return false, inFrameset
			}
			c.oe.pop()
			if c.fragmentContext == nil {
				if current := c.currentNode(); current != nil && current.TagName != "frameset" {
					return false, afterFrameset
				}
			}
			return false, inFrameset
		}
	case endOfFileToken:
		if current := c.currentNode(); current != nil && !(current.TagName == "html" && len(c.oe) == 1) {
			c.errs.add(ErrUnexpectedEOF, t.Span.Start, "")
		}
		return c.stopParsing()
	}
	c.errs.add(ErrUnexpectedToken, t.Span.Start, "")
	return false, inFrameset
}

func (c *HTMLTreeConstructor) afterFramesetModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case characterToken:
		if t.isWhitespace() {
			c.insertCharacter(t)
			return false, afterFrameset
		}
	case commentToken:
		c.insertComment(t)
		return false, afterFrameset
	case doctypeToken:
		c.errs.add(ErrUnexpectedDoctype, t.Span.Start, "")
		return false, afterFrameset
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, afterFrameset, inBody)
		case "noframes":
			return c.useRulesFor(t, afterFrameset, inHead)
		}
	case endTagToken:
		if t.TagName == "html" {
			return false, afterAfterFrameset
		}
	case endOfFileToken:
		return c.stopParsing()
	}
	c.errs.add(ErrUnexpectedToken, t.Span.Start, "")
	return false, afterFrameset
}

func (c *HTMLTreeConstructor) afterAfterBodyModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case commentToken:
		c.insertCommentAt(t, insertionPoint{parent: c.sink.Document()})
		return false, afterAfterBody
	case doctypeToken:
		return c.useRulesFor(t, afterAfterBody, inBody)
	case characterToken:
		if t.isWhitespace() {
			return c.useRulesFor(t, afterAfterBody, inBody)
		}
	case startTagToken:
		if t.TagName == "html" {
			return c.useRulesFor(t, afterAfterBody, inBody)
		}
	case endOfFileToken:
		return c.stopParsing()
	}
	c.errs.add(ErrUnexpectedToken, t.Span.Start, "")
	return true, inBody
}

func (c *HTMLTreeConstructor) afterAfterFramesetModeHandler(t *Token) (bool, insertionMode) {
	switch t.Type {
	case commentToken:
		c.insertCommentAt(t, insertionPoint{parent: c.sink.Document()})
		return false, afterAfterFrameset
	case doctypeToken:
		return c.useRulesFor(t, afterAfterFrameset, inBody)
	case characterToken:
		if t.isWhitespace() {
			return c.useRulesFor(t, afterAfterFrameset, inBody)
		}
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, afterAfterFrameset, inBody)
		case "noframes":
			return c.useRulesFor(t, afterAfterFrameset, inHead)
		}
	case endOfFileToken:
		return c.stopParsing()
	}
	c.errs.add(ErrUnexpectedToken, t.Span.Start, "")
	return false, afterAfterFrameset
}
