package parser

import (
	"strings"

	"github.com/fogwing/htmlparse/parser/spec"
)

type tokenType uint8

const (
	characterToken tokenType = iota
	startTagToken
	endTagToken
	commentToken
	doctypeToken
	endOfFileToken
)

func (t tokenType) String() string {
	switch t {
	case characterToken:
		return "character"
	case startTagToken:
		return "start-tag"
	case endTagToken:
		return "end-tag"
	case commentToken:
		return "comment"
	case doctypeToken:
		return "doctype"
	case endOfFileToken:
		return "eof"
	}
	return "unknown"
}

type tagKind uint8

const (
	startTag tagKind = iota
	endTag
)

// Token is a finished token ready for the tree constructor. Attribute
// order is source order; names are unique because the tokenizer drops
// duplicates. The doctype identifier fields are nil when the
// identifier was absent, which is distinct from present-but-empty.
type Token struct {
	Type        tokenType
	Data        string // character data or comment text
	TagName     string
	Attributes  []spec.Attribute
	SelfClosing bool
	Name        *string // doctype name
	PublicID    *string
	SystemID    *string
	ForceQuirks bool
	Span        spec.Span
}

// isWhitespace reports whether a character token holds only HTML
// whitespace.
func (t *Token) isWhitespace() bool {
	if t.Type != characterToken {
		return false
	}
	for _, r := range t.Data {
		if !isHTMLWhitespace(r) {
			return false
		}
	}
	return true
}

// getAttr returns the value of the named attribute on a tag token.
func (t *Token) getAttr(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// TokenBuilder accumulates the tokenizer's scratch state: the current
// tag name, attribute, comment text and doctype fields, plus the
// temporary buffer shared by the raw-text lookahead states and the
// numeric character-reference accumulator.
type TokenBuilder struct {
	name       strings.Builder
	data       strings.Builder
	tempBuffer []rune

	attrs     []spec.Attribute
	attrNames map[string]struct{}
	attrName  strings.Builder
	attrValue strings.Builder
	attrStart spec.Position
	dropAttr  bool

	publicID    strings.Builder
	systemID    strings.Builder
	hasName     bool
	hasPublicID bool
	hasSystemID bool
	forceQuirks bool

	selfClosing bool
	kind        tagKind

	charRefCode     int
	charRefOverflow bool

	start spec.Position
}

func newTokenBuilder() *TokenBuilder {
	return &TokenBuilder{attrNames: map[string]struct{}{}}
}

// NewToken clears everything except the temporary buffer, which has
// its own lifecycle across the lookahead states. start becomes the
// span start of the token being built.
func (t *TokenBuilder) NewToken(start spec.Position) {
	t.name.Reset()
	t.data.Reset()
	t.attrs = nil
	t.attrNames = map[string]struct{}{}
	t.attrName.Reset()
	t.attrValue.Reset()
	t.dropAttr = false
	t.publicID.Reset()
	t.systemID.Reset()
	t.hasName = false
	t.hasPublicID = false
	t.hasSystemID = false
	t.forceQuirks = false
	t.selfClosing = false
	t.start = start
}

func (t *TokenBuilder) WriteName(r rune)      { t.name.WriteRune(r) }
func (t *TokenBuilder) WriteData(r rune)      { t.data.WriteRune(r) }
func (t *TokenBuilder) WriteDataString(s string) { t.data.WriteString(s) }
func (t *TokenBuilder) EnableSelfClosing()    { t.selfClosing = true }
func (t *TokenBuilder) EnableForceQuirks()    { t.forceQuirks = true }
func (t *TokenBuilder) NoteName()             { t.hasName = true }
func (t *TokenBuilder) NotePublicID()         { t.hasPublicID = true }
func (t *TokenBuilder) NoteSystemID()         { t.hasSystemID = true }
func (t *TokenBuilder) WritePublicID(r rune)  { t.publicID.WriteRune(r) }
func (t *TokenBuilder) WriteSystemID(r rune)  { t.systemID.WriteRune(r) }

// StartAttribute commits any attribute in progress and begins a fresh
// one at pos.
func (t *TokenBuilder) StartAttribute(pos spec.Position) {
	t.CommitAttribute(pos)
	t.attrStart = pos
}

func (t *TokenBuilder) WriteAttributeName(r rune)  { t.attrName.WriteRune(r) }
func (t *TokenBuilder) WriteAttributeValue(r rune) { t.attrValue.WriteRune(r) }

// WriteAttributeValueString appends a resolved character reference to
// the attribute value.
func (t *TokenBuilder) WriteAttributeValueString(s string) { t.attrValue.WriteString(s) }

// IsDuplicateAttribute checks the attribute name built so far against
// the committed ones and marks the attribute for dropping if it
// collides. The caller reports the parse error.
func (t *TokenBuilder) IsDuplicateAttribute() bool {
	if t.dropAttr {
		return false
	}
	if _, ok := t.attrNames[t.attrName.String()]; ok {
		t.dropAttr = true
		return true
	}
	return false
}

// CommitAttribute finishes the attribute in progress. Duplicates and
// empty names are dropped.
func (t *TokenBuilder) CommitAttribute(end spec.Position) {
	defer func() {
		t.attrName.Reset()
		t.attrValue.Reset()
		t.dropAttr = false
	}()
	name := t.attrName.String()
	if name == "" || t.dropAttr {
		return
	}
	if _, ok := t.attrNames[name]; ok {
		return
	}
	t.attrNames[name] = struct{}{}
	t.attrs = append(t.attrs, spec.Attribute{
		Name:  name,
		Value: t.attrValue.String(),
		Span:  spec.Span{Start: t.attrStart, End: end},
	})
}

func (t *TokenBuilder) WriteTempBuffer(r rune) { t.tempBuffer = append(t.tempBuffer, r) }
func (t *TokenBuilder) ResetTempBuffer()       { t.tempBuffer = t.tempBuffer[:0] }
func (t *TokenBuilder) TempBuffer() string     { return string(t.tempBuffer) }

// TempBufferRunes exposes the buffer contents without copying.
func (t *TokenBuilder) TempBufferRunes() []rune { return t.tempBuffer }

// ResetCharRef zeroes the numeric reference accumulator.
func (t *TokenBuilder) ResetCharRef() {
	t.charRefCode = 0
	t.charRefOverflow = false
}

// AddToCharRef folds one digit of the given base into the accumulator,
// saturating above the Unicode range so overflow cannot wrap.
func (t *TokenBuilder) AddToCharRef(base, digit int) {
	if t.charRefOverflow {
		return
	}
	t.charRefCode = t.charRefCode*base + digit
	if t.charRefCode > 0x10FFFF {
		t.charRefOverflow = true
		t.charRefCode = 0x110000
	}
}

func (t *TokenBuilder) CharRef() int { return t.charRefCode }

func (t *TokenBuilder) StartTagToken(span spec.Span) Token {
	t.CommitAttribute(span.End)
	return Token{
		Type:        startTagToken,
		TagName:     t.name.String(),
		Attributes:  t.attrs,
		SelfClosing: t.selfClosing,
		Span:        span,
	}
}

func (t *TokenBuilder) EndTagToken(span spec.Span) Token {
	return Token{
		Type:    endTagToken,
		TagName: t.name.String(),
		Span:    span,
	}
}

func (t *TokenBuilder) CommentToken(span spec.Span) Token {
	return Token{Type: commentToken, Data: t.data.String(), Span: span}
}

func (t *TokenBuilder) DoctypeToken(span spec.Span) Token {
	tok := Token{Type: doctypeToken, ForceQuirks: t.forceQuirks, Span: span}
	if t.hasName {
		s := t.name.String()
		tok.Name = &s
	}
	if t.hasPublicID {
		s := t.publicID.String()
		tok.PublicID = &s
	}
	if t.hasSystemID {
		s := t.systemID.String()
		tok.SystemID = &s
	}
	return tok
}
