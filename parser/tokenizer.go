package parser

import (
	"github.com/fogwing/htmlparse/parser/spec"
)

type tokenizerState uint8

const (
	dataState tokenizerState = iota
	rcDataState
	rawTextState
	scriptDataState
	plaintextState
	tagOpenState
	endTagOpenState
	tagNameState
	rcDataLessThanSignState
	rcDataEndTagOpenState
	rcDataEndTagNameState
	rawTextLessThanSignState
	rawTextEndTagOpenState
	rawTextEndTagNameState
	scriptDataLessThanSignState
	scriptDataEndTagOpenState
	scriptDataEndTagNameState
	scriptDataEscapeStartState
	scriptDataEscapeStartDashState
	scriptDataEscapedState
	scriptDataEscapedDashState
	scriptDataEscapedDashDashState
	scriptDataEscapedLessThanSignState
	scriptDataEscapedEndTagOpenState
	scriptDataEscapedEndTagNameState
	scriptDataDoubleEscapeStartState
	scriptDataDoubleEscapedState
	scriptDataDoubleEscapedDashState
	scriptDataDoubleEscapedDashDashState
	scriptDataDoubleEscapedLessThanSignState
	scriptDataDoubleEscapeEndState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
	bogusCommentState
	markupDeclarationOpenState
	commentStartState
	commentStartDashState
	commentState
	commentLessThanSignState
	commentLessThanSignBangState
	commentLessThanSignBangDashState
	commentLessThanSignBangDashDashState
	commentEndDashState
	commentEndState
	commentEndBangState
	doctypeState
	beforeDoctypeNameState
	doctypeNameState
	afterDoctypeNameState
	afterDoctypePublicKeywordState
	beforeDoctypePublicIdentifierState
	doctypePublicIdentifierDoubleQuotedState
	doctypePublicIdentifierSingleQuotedState
	afterDoctypePublicIdentifierState
	betweenDoctypePublicAndSystemIdentifiersState
	afterDoctypeSystemKeywordState
	beforeDoctypeSystemIdentifierState
	doctypeSystemIdentifierDoubleQuotedState
	doctypeSystemIdentifierSingleQuotedState
	afterDoctypeSystemIdentifierState
	bogusDoctypeState
	cdataSectionState
	cdataSectionBracketState
	cdataSectionEndState
)

// Progress is what the tree constructor hands back to the tokenizer
// between tokens: the adjusted current node gates CDATA sections, and
// a non-nil TokenizerState switches the content model (RAWTEXT,
// RCDATA, script data, plaintext).
type Progress struct {
	AdjustedCurrentNode *spec.Node
	TokenizerState      *tokenizerState
}

type stateHandler func(r rune, eof bool) (reconsume bool, next tokenizerState)

// Tokenizer turns the input into a token stream, one state method per
// tokenizer state. Each method looks at the current code point and
// says whether to keep the cursor where it is (reconsume) and which
// state runs next.
type Tokenizer struct {
	rd   *reader
	errs *errorList

	currentState tokenizerState
	tokenBuilder *TokenBuilder
	emitted      []Token

	lastEmittedStartTagName string
	adjustedCurrentNode     *spec.Node

	// tagStart is the position of the "<" (or "<!") that opened the
	// construct being built, for token spans.
	tagStart spec.Position

	done bool
}

func NewTokenizer(src []byte, errs *errorList) *Tokenizer {
	return &Tokenizer{
		rd:           newReader(src, errs),
		errs:         errs,
		tokenBuilder: newTokenBuilder(),
	}
}

// Next reports whether the token stream has more tokens. It is false
// once the end-of-file token has been taken.
func (p *Tokenizer) Next() bool {
	return !p.done
}

// Token runs the state machine until at least one token is out and
// returns the oldest pending one.
func (p *Tokenizer) Token(progress Progress) Token {
	p.adjustedCurrentNode = progress.AdjustedCurrentNode
	if progress.TokenizerState != nil {
		p.currentState = *progress.TokenizerState
	}

	for {
		if token, ok := p.takeEmittedToken(); ok {
			return token
		}
		reconsume, next := p.stateToParser(p.currentState)(p.rd.Current(), p.rd.EOF())
		if !reconsume {
			p.rd.Advance()
		}
		p.currentState = next
	}
}

func (p *Tokenizer) takeEmittedToken() (Token, bool) {
	if len(p.emitted) == 0 {
		return Token{}, false
	}
	token := p.emitted[0]
	p.emitted = p.emitted[1:]
	if token.Type == endOfFileToken {
		p.done = true
	}
	return token, true
}

func (p *Tokenizer) emit(tokens ...Token) {
	for _, token := range tokens {
		if token.Type == startTagToken {
			p.lastEmittedStartTagName = token.TagName
		}
		p.emitted = append(p.emitted, token)
	}
}

// emitChar emits the current code point as a character token.
func (p *Tokenizer) emitChar(r rune) {
	pos := p.rd.Position()
	p.emit(Token{
		Type: characterToken,
		Data: string(r),
		Span: spec.Span{Start: pos, End: p.rd.PositionAfter()},
	})
}

// emitString emits already-consumed text, such as a resolved character
// reference, as one character token spanning start to the cursor.
func (p *Tokenizer) emitString(s string, start spec.Position) {
	if s == "" {
		return
	}
	p.emit(Token{
		Type: characterToken,
		Data: s,
		Span: spec.Span{Start: start, End: p.rd.Position()},
	})
}

func (p *Tokenizer) emitEOF() {
	pos := p.rd.Position()
	p.emit(Token{Type: endOfFileToken, Span: spec.Span{Start: pos, End: pos}})
}

// emitCurrentTag finishes the tag under construction. End tags shed
// attributes and the self-closing flag with an error; the tree stage
// never sees either.
func (p *Tokenizer) emitCurrentTag(end spec.Position) {
	tb := p.tokenBuilder
	tb.CommitAttribute(end)
	span := spec.Span{Start: tb.start, End: end}
	if tb.kind == startTag {
		p.emit(tb.StartTagToken(span))
		return
	}
	if len(tb.attrs) > 0 {
		p.errs.add(ErrEndTagWithAttributes, tb.start, tb.name.String())
	}
	if tb.selfClosing {
		p.errs.add(ErrEndTagWithTrailingSolidus, tb.start, tb.name.String())
	}
	p.emit(tb.EndTagToken(span))
}

func (p *Tokenizer) emitComment(end spec.Position) {
	p.emit(p.tokenBuilder.CommentToken(spec.Span{Start: p.tokenBuilder.start, End: end}))
}

func (p *Tokenizer) emitDoctype(end spec.Position) {
	p.emit(p.tokenBuilder.DoctypeToken(spec.Span{Start: p.tokenBuilder.start, End: end}))
}

// isApprEndTagToken reports whether the end tag name built so far
// matches the last emitted start tag, which is what lets "</title>"
// close RCDATA but leaves "</other>" as text.
func (p *Tokenizer) isApprEndTagToken() bool {
	return p.lastEmittedStartTagName == p.tokenBuilder.name.String()
}

// flushTempBufferAsText emits the raw-text lookahead that failed to
// become an end tag, prefixed with the literal markup already
// consumed.
func (p *Tokenizer) flushTempBufferAsText(prefix string) {
	p.emitString(prefix+p.tokenBuilder.TempBuffer(), p.tagStart)
}

func (p *Tokenizer) stateToParser(state tokenizerState) stateHandler {
	switch state {
	case dataState:
		return p.dataStateParser
	case rcDataState:
		return p.rcDataStateParser
	case rawTextState:
		return p.rawTextStateParser
	case scriptDataState:
		return p.scriptDataStateParser
	case plaintextState:
		return p.plaintextStateParser
	case tagOpenState:
		return p.tagOpenStateParser
	case endTagOpenState:
		return p.endTagOpenStateParser
	case tagNameState:
		return p.tagNameStateParser
	case rcDataLessThanSignState:
		return p.rcDataLessThanSignStateParser
	case rcDataEndTagOpenState:
		return p.rcDataEndTagOpenStateParser
	case rcDataEndTagNameState:
		return p.rcDataEndTagNameStateParser
	case rawTextLessThanSignState:
		return p.rawTextLessThanSignStateParser
	case rawTextEndTagOpenState:
		return p.rawTextEndTagOpenStateParser
	case rawTextEndTagNameState:
		return p.rawTextEndTagNameStateParser
	case scriptDataLessThanSignState:
		return p.scriptDataLessThanSignStateParser
	case scriptDataEndTagOpenState:
		return p.scriptDataEndTagOpenStateParser
	case scriptDataEndTagNameState:
		return p.scriptDataEndTagNameStateParser
	case scriptDataEscapeStartState:
		return p.scriptDataEscapeStartStateParser
	case scriptDataEscapeStartDashState:
		return p.scriptDataEscapeStartDashStateParser
	case scriptDataEscapedState:
		return p.scriptDataEscapedStateParser
	case scriptDataEscapedDashState:
		return p.scriptDataEscapedDashStateParser
	case scriptDataEscapedDashDashState:
		return p.scriptDataEscapedDashDashStateParser
	case scriptDataEscapedLessThanSignState:
		return p.scriptDataEscapedLessThanSignStateParser
	case scriptDataEscapedEndTagOpenState:
		return p.scriptDataEscapedEndTagOpenStateParser
	case scriptDataEscapedEndTagNameState:
		return p.scriptDataEscapedEndTagNameStateParser
	case scriptDataDoubleEscapeStartState:
		return p.scriptDataDoubleEscapeStartStateParser
	case scriptDataDoubleEscapedState:
		return p.scriptDataDoubleEscapedStateParser
	case scriptDataDoubleEscapedDashState:
		return p.scriptDataDoubleEscapedDashStateParser
	case scriptDataDoubleEscapedDashDashState:
		return p.scriptDataDoubleEscapedDashDashStateParser
	case scriptDataDoubleEscapedLessThanSignState:
		return p.scriptDataDoubleEscapedLessThanSignStateParser
	case scriptDataDoubleEscapeEndState:
		return p.scriptDataDoubleEscapeEndStateParser
	case beforeAttributeNameState:
		return p.beforeAttributeNameStateParser
	case attributeNameState:
		return p.attributeNameStateParser
	case afterAttributeNameState:
		return p.afterAttributeNameStateParser
	case beforeAttributeValueState:
		return p.beforeAttributeValueStateParser
	case attributeValueDoubleQuotedState:
		return p.attributeValueDoubleQuotedStateParser
	case attributeValueSingleQuotedState:
		return p.attributeValueSingleQuotedStateParser
	case attributeValueUnquotedState:
		return p.attributeValueUnquotedStateParser
	case afterAttributeValueQuotedState:
		return p.afterAttributeValueQuotedStateParser
	case selfClosingStartTagState:
		return p.selfClosingStartTagStateParser
	case bogusCommentState:
		return p.bogusCommentStateParser
	case markupDeclarationOpenState:
		return p.markupDeclarationOpenStateParser
	case commentStartState:
		return p.commentStartStateParser
	case commentStartDashState:
		return p.commentStartDashStateParser
	case commentState:
		return p.commentStateParser
	case commentLessThanSignState:
		return p.commentLessThanSignStateParser
	case commentLessThanSignBangState:
		return p.commentLessThanSignBangStateParser
	case commentLessThanSignBangDashState:
		return p.commentLessThanSignBangDashStateParser
	case commentLessThanSignBangDashDashState:
		return p.commentLessThanSignBangDashDashStateParser
	case commentEndDashState:
		return p.commentEndDashStateParser
	case commentEndState:
		return p.commentEndStateParser
	case commentEndBangState:
		return p.commentEndBangStateParser
	case doctypeState:
		return p.doctypeStateParser
	case beforeDoctypeNameState:
		return p.beforeDoctypeNameStateParser
	case doctypeNameState:
		return p.doctypeNameStateParser
	case afterDoctypeNameState:
		return p.afterDoctypeNameStateParser
	case afterDoctypePublicKeywordState:
		return p.afterDoctypePublicKeywordStateParser
	case beforeDoctypePublicIdentifierState:
		return p.beforeDoctypePublicIdentifierStateParser
	case doctypePublicIdentifierDoubleQuotedState:
		return p.doctypePublicIdentifierQuotedStateParser('"')
	case doctypePublicIdentifierSingleQuotedState:
		return p.doctypePublicIdentifierQuotedStateParser('\'')
	case afterDoctypePublicIdentifierState:
		return p.afterDoctypePublicIdentifierStateParser
	case betweenDoctypePublicAndSystemIdentifiersState:
		return p.betweenDoctypePublicAndSystemIdentifiersStateParser
	case afterDoctypeSystemKeywordState:
		return p.afterDoctypeSystemKeywordStateParser
	case beforeDoctypeSystemIdentifierState:
		return p.beforeDoctypeSystemIdentifierStateParser
	case doctypeSystemIdentifierDoubleQuotedState:
		return p.doctypeSystemIdentifierQuotedStateParser('"')
	case doctypeSystemIdentifierSingleQuotedState:
		return p.doctypeSystemIdentifierQuotedStateParser('\'')
	case afterDoctypeSystemIdentifierState:
		return p.afterDoctypeSystemIdentifierStateParser
	case bogusDoctypeState:
		return p.bogusDoctypeStateParser
	case cdataSectionState:
		return p.cdataSectionStateParser
	case cdataSectionBracketState:
		return p.cdataSectionBracketStateParser
	case cdataSectionEndState:
		return p.cdataSectionEndStateParser
	}
	return p.dataStateParser
}

func (p *Tokenizer) dataStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '&':
		start := p.rd.Position()
		s := resolveCharacterReference(p.rd, p.tokenBuilder, false, p.errs)
		p.emitString(s, start)
		return true, dataState
	case '<':
		p.tagStart = p.rd.Position()
		return false, tagOpenState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.emitChar(r)
		return false, dataState
	default:
		p.emitChar(r)
		return false, dataState
	}
}

func (p *Tokenizer) rcDataStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '&':
		start := p.rd.Position()
		s := resolveCharacterReference(p.rd, p.tokenBuilder, false, p.errs)
		p.emitString(s, start)
		return true, rcDataState
	case '<':
		p.tagStart = p.rd.Position()
		return false, rcDataLessThanSignState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.emitChar('�')
		return false, rcDataState
	default:
		p.emitChar(r)
		return false, rcDataState
	}
}

func (p *Tokenizer) rawTextStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '<':
		p.tagStart = p.rd.Position()
		return false, rawTextLessThanSignState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.emitChar('�')
		return false, rawTextState
	default:
		p.emitChar(r)
		return false, rawTextState
	}
}

func (p *Tokenizer) scriptDataStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '<':
		p.tagStart = p.rd.Position()
		return false, scriptDataLessThanSignState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.emitChar('�')
		return false, scriptDataState
	default:
		p.emitChar(r)
		return false, scriptDataState
	}
}

func (p *Tokenizer) plaintextStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitEOF()
		return false, dataState
	}
	if r == '\u0000' {
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.emitChar('�')
		return false, plaintextState
	}
	p.emitChar(r)
	return false, plaintextState
}

func (p *Tokenizer) tagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofBeforeTagName, p.tagStart, "")
		p.emitString("<", p.tagStart)
		p.emitEOF()
		return false, dataState
	}
	switch {
	case r == '!':
		return false, markupDeclarationOpenState
	case r == '/':
		return false, endTagOpenState
	case isASCIIAlpha(r):
		p.tokenBuilder.NewToken(p.tagStart)
		p.tokenBuilder.kind = startTag
		return true, tagNameState
	case r == '?':
		p.errs.add(ErrUnexpectedQuestionMarkInsteadOfTagName, p.tagStart, "")
		p.tokenBuilder.NewToken(p.tagStart)
		return true, bogusCommentState
	default:
		p.errs.add(ErrInvalidFirstCharacterOfTagName, p.rd.Position(), string(r))
		p.emitString("<", p.tagStart)
		return true, dataState
	}
}

func (p *Tokenizer) endTagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofBeforeTagName, p.tagStart, "")
		p.emitString("</", p.tagStart)
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isASCIIAlpha(r):
		p.tokenBuilder.NewToken(p.tagStart)
		p.tokenBuilder.kind = endTag
		return true, tagNameState
	case r == '>':
		p.errs.add(ErrMissingEndTagName, p.tagStart, "")
		return false, dataState
	default:
		p.errs.add(ErrInvalidFirstCharacterOfTagName, p.rd.Position(), string(r))
		p.tokenBuilder.NewToken(p.tagStart)
		return true, bogusCommentState
	}
}

func (p *Tokenizer) tagNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInTag, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, beforeAttributeNameState
	case r == '/':
		return false, selfClosingStartTagState
	case r == '>':
		p.emitCurrentTag(p.rd.PositionAfter())
		return false, dataState
	case r >= 'A' && r <= 'Z':
		p.tokenBuilder.WriteName(r + 0x20)
		return false, tagNameState
	case r == '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.tokenBuilder.WriteName('�')
		return false, tagNameState
	default:
		p.tokenBuilder.WriteName(r)
		return false, tagNameState
	}
}

func (p *Tokenizer) rcDataLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '/' {
		p.tokenBuilder.ResetTempBuffer()
		return false, rcDataEndTagOpenState
	}
	p.emitString("<", p.tagStart)
	return true, rcDataState
}

func (p *Tokenizer) rcDataEndTagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIAlpha(r) {
		p.tokenBuilder.NewToken(p.tagStart)
		p.tokenBuilder.kind = endTag
		return true, rcDataEndTagNameState
	}
	p.emitString("</", p.tagStart)
	return true, rcDataState
}

func (p *Tokenizer) rcDataEndTagNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.rawEndTagNameStateParser(r, eof, rcDataState)
}

func (p *Tokenizer) rawTextLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '/' {
		p.tokenBuilder.ResetTempBuffer()
		return false, rawTextEndTagOpenState
	}
	p.emitString("<", p.tagStart)
	return true, rawTextState
}

func (p *Tokenizer) rawTextEndTagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIAlpha(r) {
		p.tokenBuilder.NewToken(p.tagStart)
		p.tokenBuilder.kind = endTag
		return true, rawTextEndTagNameState
	}
	p.emitString("</", p.tagStart)
	return true, rawTextState
}

func (p *Tokenizer) rawTextEndTagNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.rawEndTagNameStateParser(r, eof, rawTextState)
}

func (p *Tokenizer) scriptDataEndTagNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.rawEndTagNameStateParser(r, eof, scriptDataState)
}

// rawEndTagNameStateParser is the shared end-tag-name logic of the
// RCDATA, RAWTEXT and script data content models: the tag only counts
// if it closes the element that switched the model, otherwise every
// consumed character is put back out as text.
func (p *Tokenizer) rawEndTagNameStateParser(r rune, eof bool, textState tokenizerState) (bool, tokenizerState) {
	if !eof {
		switch {
		case isHTMLWhitespace(r):
			if p.isApprEndTagToken() {
				return false, beforeAttributeNameState
			}
		case r == '/':
			if p.isApprEndTagToken() {
				return false, selfClosingStartTagState
			}
		case r == '>':
			if p.isApprEndTagToken() {
				p.emitCurrentTag(p.rd.PositionAfter())
				return false, dataState
			}
		case r >= 'A' && r <= 'Z':
			p.tokenBuilder.WriteName(r + 0x20)
			p.tokenBuilder.WriteTempBuffer(r)
			return false, textState.endTagNameState()
		case r >= 'a' && r <= 'z':
			p.tokenBuilder.WriteName(r)
			p.tokenBuilder.WriteTempBuffer(r)
			return false, textState.endTagNameState()
		}
	}
	p.flushTempBufferAsText("</")
	return true, textState
}

// endTagNameState maps a raw-text content model to its end-tag-name
// state.
func (s tokenizerState) endTagNameState() tokenizerState {
	switch s {
	case rcDataState:
		return rcDataEndTagNameState
	case rawTextState:
		return rawTextEndTagNameState
	}
	return scriptDataEndTagNameState
}

func (p *Tokenizer) scriptDataLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case '/':
			p.tokenBuilder.ResetTempBuffer()
			return false, scriptDataEndTagOpenState
		case '!':
			p.emitString("<!", p.tagStart)
			return false, scriptDataEscapeStartState
		}
	}
	p.emitString("<", p.tagStart)
	return true, scriptDataState
}

func (p *Tokenizer) scriptDataEndTagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIAlpha(r) {
		p.tokenBuilder.NewToken(p.tagStart)
		p.tokenBuilder.kind = endTag
		return true, scriptDataEndTagNameState
	}
	p.emitString("</", p.tagStart)
	return true, scriptDataState
}

func (p *Tokenizer) scriptDataEscapeStartStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		p.emitChar('-')
		return false, scriptDataEscapeStartDashState
	}
	return true, scriptDataState
}

func (p *Tokenizer) scriptDataEscapeStartDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		p.emitChar('-')
		return false, scriptDataEscapedDashDashState
	}
	return true, scriptDataState
}

func (p *Tokenizer) scriptDataEscapedStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInScript, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataEscapedDashState
	case '<':
		p.tagStart = p.rd.Position()
		return false, scriptDataEscapedLessThanSignState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.emitChar('�')
		return false, scriptDataEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataEscapedState
	}
}

func (p *Tokenizer) scriptDataEscapedDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInScript, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataEscapedDashDashState
	case '<':
		p.tagStart = p.rd.Position()
		return false, scriptDataEscapedLessThanSignState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.emitChar('�')
		return false, scriptDataEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataEscapedState
	}
}

func (p *Tokenizer) scriptDataEscapedDashDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInScript, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataEscapedDashDashState
	case '<':
		p.tagStart = p.rd.Position()
		return false, scriptDataEscapedLessThanSignState
	case '>':
		p.emitChar('>')
		return false, scriptDataState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.emitChar('�')
		return false, scriptDataEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataEscapedState
	}
}

func (p *Tokenizer) scriptDataEscapedLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case r == '/':
			p.tokenBuilder.ResetTempBuffer()
			return false, scriptDataEscapedEndTagOpenState
		case isASCIIAlpha(r):
			p.tokenBuilder.ResetTempBuffer()
			p.emitString("<", p.tagStart)
			return true, scriptDataDoubleEscapeStartState
		}
	}
	p.emitString("<", p.tagStart)
	return true, scriptDataEscapedState
}

func (p *Tokenizer) scriptDataEscapedEndTagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIAlpha(r) {
		p.tokenBuilder.NewToken(p.tagStart)
		p.tokenBuilder.kind = endTag
		return true, scriptDataEscapedEndTagNameState
	}
	p.emitString("</", p.tagStart)
	return true, scriptDataEscapedState
}

func (p *Tokenizer) scriptDataEscapedEndTagNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case isHTMLWhitespace(r):
			if p.isApprEndTagToken() {
				return false, beforeAttributeNameState
			}
		case r == '/':
			if p.isApprEndTagToken() {
				return false, selfClosingStartTagState
			}
		case r == '>':
			if p.isApprEndTagToken() {
				p.emitCurrentTag(p.rd.PositionAfter())
				return false, dataState
			}
		case r >= 'A' && r <= 'Z':
			p.tokenBuilder.WriteName(r + 0x20)
			p.tokenBuilder.WriteTempBuffer(r)
			return false, scriptDataEscapedEndTagNameState
		case r >= 'a' && r <= 'z':
			p.tokenBuilder.WriteName(r)
			p.tokenBuilder.WriteTempBuffer(r)
			return false, scriptDataEscapedEndTagNameState
		}
	}
	p.flushTempBufferAsText("</")
	return true, scriptDataEscapedState
}

func (p *Tokenizer) scriptDataDoubleEscapeStartStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case isHTMLWhitespace(r), r == '/', r == '>':
			p.emitChar(r)
			if p.tokenBuilder.TempBuffer() == "script" {
				return false, scriptDataDoubleEscapedState
			}
			return false, scriptDataEscapedState
		case r >= 'A' && r <= 'Z':
			p.tokenBuilder.WriteTempBuffer(r + 0x20)
			p.emitChar(r)
			return false, scriptDataDoubleEscapeStartState
		case r >= 'a' && r <= 'z':
			p.tokenBuilder.WriteTempBuffer(r)
			p.emitChar(r)
			return false, scriptDataDoubleEscapeStartState
		}
	}
	return true, scriptDataEscapedState
}

func (p *Tokenizer) scriptDataDoubleEscapedStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInScript, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataDoubleEscapedDashState
	case '<':
		p.tagStart = p.rd.Position()
		p.emitChar('<')
		return false, scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.emitChar('�')
		return false, scriptDataDoubleEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataDoubleEscapedState
	}
}

func (p *Tokenizer) scriptDataDoubleEscapedDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInScript, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataDoubleEscapedDashDashState
	case '<':
		p.tagStart = p.rd.Position()
		p.emitChar('<')
		return false, scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.emitChar('�')
		return false, scriptDataDoubleEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataDoubleEscapedState
	}
}

func (p *Tokenizer) scriptDataDoubleEscapedDashDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInScript, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataDoubleEscapedDashDashState
	case '<':
		p.tagStart = p.rd.Position()
		p.emitChar('<')
		return false, scriptDataDoubleEscapedLessThanSignState
	case '>':
		p.emitChar('>')
		return false, scriptDataState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.emitChar('�')
		return false, scriptDataDoubleEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataDoubleEscapedState
	}
}

func (p *Tokenizer) scriptDataDoubleEscapedLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '/' {
		p.tokenBuilder.ResetTempBuffer()
		p.emitChar('/')
		return false, scriptDataDoubleEscapeEndState
	}
	return true, scriptDataDoubleEscapedState
}

func (p *Tokenizer) scriptDataDoubleEscapeEndStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case isHTMLWhitespace(r), r == '/', r == '>':
			p.emitChar(r)
			if p.tokenBuilder.TempBuffer() == "script" {
				return false, scriptDataEscapedState
			}
			return false, scriptDataDoubleEscapedState
		case r >= 'A' && r <= 'Z':
			p.tokenBuilder.WriteTempBuffer(r + 0x20)
			p.emitChar(r)
			return false, scriptDataDoubleEscapeEndState
		case r >= 'a' && r <= 'z':
			p.tokenBuilder.WriteTempBuffer(r)
			p.emitChar(r)
			return false, scriptDataDoubleEscapeEndState
		}
	}
	return true, scriptDataDoubleEscapedState
}

func (p *Tokenizer) beforeAttributeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof || r == '/' || r == '>' {
		return true, afterAttributeNameState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, beforeAttributeNameState
	case r == '=':
		p.errs.add(ErrUnexpectedCharInAttributeName, p.rd.Position(), "=")
		p.tokenBuilder.StartAttribute(p.rd.Position())
		p.tokenBuilder.WriteAttributeName('=')
		return false, attributeNameState
	default:
		p.tokenBuilder.StartAttribute(p.rd.Position())
		return true, attributeNameState
	}
}

func (p *Tokenizer) attributeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof || isHTMLWhitespace(r) || r == '/' || r == '>' {
		if p.tokenBuilder.IsDuplicateAttribute() {
			p.errs.add(ErrDuplicateAttribute, p.rd.Position(), p.tokenBuilder.attrName.String())
		}
		return true, afterAttributeNameState
	}
	switch {
	case r == '=':
		if p.tokenBuilder.IsDuplicateAttribute() {
			p.errs.add(ErrDuplicateAttribute, p.rd.Position(), p.tokenBuilder.attrName.String())
		}
		return false, beforeAttributeValueState
	case r >= 'A' && r <= 'Z':
		p.tokenBuilder.WriteAttributeName(r + 0x20)
		return false, attributeNameState
	case r == '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.tokenBuilder.WriteAttributeName('�')
		return false, attributeNameState
	case r == '"' || r == '\'' || r == '<':
		p.errs.add(ErrUnexpectedCharInAttributeName, p.rd.Position(), string(r))
		p.tokenBuilder.WriteAttributeName(r)
		return false, attributeNameState
	default:
		p.tokenBuilder.WriteAttributeName(r)
		return false, attributeNameState
	}
}

func (p *Tokenizer) afterAttributeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInTag, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, afterAttributeNameState
	case r == '/':
		return false, selfClosingStartTagState
	case r == '=':
		return false, beforeAttributeValueState
	case r == '>':
		p.emitCurrentTag(p.rd.PositionAfter())
		return false, dataState
	default:
		p.tokenBuilder.StartAttribute(p.rd.Position())
		return true, attributeNameState
	}
}

func (p *Tokenizer) beforeAttributeValueStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case '\t', '\n', '\f', ' ':
			return false, beforeAttributeValueState
		case '"':
			return false, attributeValueDoubleQuotedState
		case '\'':
			return false, attributeValueSingleQuotedState
		case '>':
			p.errs.add(ErrMissingAttributeValue, p.rd.Position(), "")
			p.emitCurrentTag(p.rd.PositionAfter())
			return false, dataState
		}
	}
	return true, attributeValueUnquotedState
}

func (p *Tokenizer) attributeValueDoubleQuotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.attributeValueQuotedStateParser(r, eof, '"', attributeValueDoubleQuotedState)
}

func (p *Tokenizer) attributeValueSingleQuotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.attributeValueQuotedStateParser(r, eof, '\'', attributeValueSingleQuotedState)
}

func (p *Tokenizer) attributeValueQuotedStateParser(r rune, eof bool, quote rune, self tokenizerState) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInTag, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case quote:
		return false, afterAttributeValueQuotedState
	case '&':
		s := resolveCharacterReference(p.rd, p.tokenBuilder, true, p.errs)
		p.tokenBuilder.WriteAttributeValueString(s)
		return true, self
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.tokenBuilder.WriteAttributeValue('�')
		return false, self
	default:
		p.tokenBuilder.WriteAttributeValue(r)
		return false, self
	}
}

func (p *Tokenizer) attributeValueUnquotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInTag, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, beforeAttributeNameState
	case r == '&':
		s := resolveCharacterReference(p.rd, p.tokenBuilder, true, p.errs)
		p.tokenBuilder.WriteAttributeValueString(s)
		return true, attributeValueUnquotedState
	case r == '>':
		p.emitCurrentTag(p.rd.PositionAfter())
		return false, dataState
	case r == '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.tokenBuilder.WriteAttributeValue('�')
		return false, attributeValueUnquotedState
	case r == '"' || r == '\'' || r == '<' || r == '=' || r == '`':
		p.errs.add(ErrUnexpectedCharInUnquotedAttributeValue, p.rd.Position(), string(r))
		p.tokenBuilder.WriteAttributeValue(r)
		return false, attributeValueUnquotedState
	default:
		p.tokenBuilder.WriteAttributeValue(r)
		return false, attributeValueUnquotedState
	}
}

func (p *Tokenizer) afterAttributeValueQuotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInTag, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		p.tokenBuilder.CommitAttribute(p.rd.Position())
		return false, beforeAttributeNameState
	case r == '/':
		p.tokenBuilder.CommitAttribute(p.rd.Position())
		return false, selfClosingStartTagState
	case r == '>':
		p.emitCurrentTag(p.rd.PositionAfter())
		return false, dataState
	default:
		p.errs.add(ErrMissingWhitespaceBetweenAttributes, p.rd.Position(), "")
		p.tokenBuilder.CommitAttribute(p.rd.Position())
		return true, beforeAttributeNameState
	}
}

func (p *Tokenizer) selfClosingStartTagStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInTag, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	if r == '>' {
		p.tokenBuilder.EnableSelfClosing()
		p.emitCurrentTag(p.rd.PositionAfter())
		return false, dataState
	}
	p.errs.add(ErrUnexpectedSolidusInTag, p.rd.Position(), "")
	return true, beforeAttributeNameState
}

func (p *Tokenizer) bogusCommentStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitComment(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '>':
		p.emitComment(p.rd.PositionAfter())
		return false, dataState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.tokenBuilder.WriteData('�')
		return false, bogusCommentState
	default:
		p.tokenBuilder.WriteData(r)
		return false, bogusCommentState
	}
}

// markupDeclarationOpenStateParser runs right after "<!" and picks
// between comments, doctypes and CDATA by direct lookahead instead of
// one state per matched character. CDATA only exists inside foreign
// content; in HTML it becomes a bogus comment.
func (p *Tokenizer) markupDeclarationOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case p.rd.ConsumeMatch("--", true):
		p.tokenBuilder.NewToken(p.tagStart)
		return true, commentStartState
	case p.rd.ConsumeMatch("doctype", false):
		return true, doctypeState
	case p.rd.ConsumeMatch("[CDATA[", true):
		if p.adjustedCurrentNode != nil && p.adjustedCurrentNode.Namespace != spec.HTMLNamespace {
			return true, cdataSectionState
		}
		p.errs.add(ErrCDATAInHTMLContent, p.tagStart, "")
		p.tokenBuilder.NewToken(p.tagStart)
		p.tokenBuilder.WriteDataString("[CDATA[")
		return true, bogusCommentState
	default:
		p.errs.add(ErrIncorrectlyOpenedComment, p.tagStart, "")
		p.tokenBuilder.NewToken(p.tagStart)
		return true, bogusCommentState
	}
}

func (p *Tokenizer) commentStartStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case '-':
			return false, commentStartDashState
		case '>':
			p.errs.add(ErrAbruptClosingOfEmptyComment, p.rd.Position(), "")
			p.emitComment(p.rd.PositionAfter())
			return false, dataState
		}
	}
	return true, commentState
}

func (p *Tokenizer) commentStartDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInComment, p.rd.Position(), "")
		p.emitComment(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '-':
		return false, commentEndState
	case '>':
		p.errs.add(ErrAbruptClosingOfEmptyComment, p.rd.Position(), "")
		p.emitComment(p.rd.PositionAfter())
		return false, dataState
	default:
		p.tokenBuilder.WriteData('-')
		return true, commentState
	}
}

func (p *Tokenizer) commentStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInComment, p.rd.Position(), "")
		p.emitComment(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '<':
		p.tokenBuilder.WriteData(r)
		return false, commentLessThanSignState
	case '-':
		return false, commentEndDashState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.tokenBuilder.WriteData('�')
		return false, commentState
	default:
		p.tokenBuilder.WriteData(r)
		return false, commentState
	}
}

func (p *Tokenizer) commentLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case '!':
			p.tokenBuilder.WriteData(r)
			return false, commentLessThanSignBangState
		case '<':
			p.tokenBuilder.WriteData(r)
			return false, commentLessThanSignState
		}
	}
	return true, commentState
}

func (p *Tokenizer) commentLessThanSignBangStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		return false, commentLessThanSignBangDashState
	}
	return true, commentState
}

func (p *Tokenizer) commentLessThanSignBangDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		return false, commentLessThanSignBangDashDashState
	}
	return true, commentEndDashState
}

func (p *Tokenizer) commentLessThanSignBangDashDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r != '>' {
		p.errs.add(ErrNestedComment, p.rd.Position(), "")
	}
	return true, commentEndState
}

func (p *Tokenizer) commentEndDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInComment, p.rd.Position(), "")
		p.emitComment(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	if r == '-' {
		return false, commentEndState
	}
	p.tokenBuilder.WriteData('-')
	return true, commentState
}

func (p *Tokenizer) commentEndStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInComment, p.rd.Position(), "")
		p.emitComment(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '>':
		p.emitComment(p.rd.PositionAfter())
		return false, dataState
	case '!':
		return false, commentEndBangState
	case '-':
		p.tokenBuilder.WriteData('-')
		return false, commentEndState
	default:
		p.tokenBuilder.WriteData('-')
		p.tokenBuilder.WriteData('-')
		return true, commentState
	}
}

func (p *Tokenizer) commentEndBangStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInComment, p.rd.Position(), "")
		p.emitComment(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '-':
		p.tokenBuilder.WriteDataString("--!")
		return false, commentEndDashState
	case '>':
		p.errs.add(ErrIncorrectlyClosedComment, p.rd.Position(), "")
		p.emitComment(p.rd.PositionAfter())
		return false, dataState
	default:
		p.tokenBuilder.WriteDataString("--!")
		return true, commentState
	}
}

func (p *Tokenizer) doctypeStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
		p.tokenBuilder.NewToken(p.tagStart)
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	p.tokenBuilder.NewToken(p.tagStart)
	switch {
	case isHTMLWhitespace(r):
		return false, beforeDoctypeNameState
	case r == '>':
		return true, beforeDoctypeNameState
	default:
		p.errs.add(ErrMissingDoctypeName, p.rd.Position(), "")
		return true, beforeDoctypeNameState
	}
}

func (p *Tokenizer) beforeDoctypeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, beforeDoctypeNameState
	case r >= 'A' && r <= 'Z':
		p.tokenBuilder.NoteName()
		p.tokenBuilder.WriteName(r + 0x20)
		return false, doctypeNameState
	case r == '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.tokenBuilder.NoteName()
		p.tokenBuilder.WriteName('�')
		return false, doctypeNameState
	case r == '>':
		p.errs.add(ErrMissingDoctypeName, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.PositionAfter())
		return false, dataState
	default:
		p.tokenBuilder.NoteName()
		p.tokenBuilder.WriteName(r)
		return false, doctypeNameState
	}
}

func (p *Tokenizer) doctypeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, afterDoctypeNameState
	case r == '>':
		p.emitDoctype(p.rd.PositionAfter())
		return false, dataState
	case r >= 'A' && r <= 'Z':
		p.tokenBuilder.WriteName(r + 0x20)
		return false, doctypeNameState
	case r == '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		p.tokenBuilder.WriteName('�')
		return false, doctypeNameState
	default:
		p.tokenBuilder.WriteName(r)
		return false, doctypeNameState
	}
}

func (p *Tokenizer) afterDoctypeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, afterDoctypeNameState
	case r == '>':
		p.emitDoctype(p.rd.PositionAfter())
		return false, dataState
	case p.rd.ConsumeMatch("public", false):
		return true, afterDoctypePublicKeywordState
	case p.rd.ConsumeMatch("system", false):
		return true, afterDoctypeSystemKeywordState
	default:
		p.errs.add(ErrInvalidCharacterSequenceAfterDoctypeName, p.rd.Position(), string(r))
		p.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) afterDoctypePublicKeywordStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, beforeDoctypePublicIdentifierState
	case r == '"':
		p.errs.add(ErrMissingQuoteBeforeDoctypePublicID, p.rd.Position(), "")
		p.tokenBuilder.NotePublicID()
		return false, doctypePublicIdentifierDoubleQuotedState
	case r == '\'':
		p.errs.add(ErrMissingQuoteBeforeDoctypePublicID, p.rd.Position(), "")
		p.tokenBuilder.NotePublicID()
		return false, doctypePublicIdentifierSingleQuotedState
	case r == '>':
		p.errs.add(ErrMissingDoctypePublicID, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.PositionAfter())
		return false, dataState
	default:
		p.errs.add(ErrMissingQuoteBeforeDoctypePublicID, p.rd.Position(), string(r))
		p.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) beforeDoctypePublicIdentifierStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, beforeDoctypePublicIdentifierState
	case r == '"':
		p.tokenBuilder.NotePublicID()
		return false, doctypePublicIdentifierDoubleQuotedState
	case r == '\'':
		p.tokenBuilder.NotePublicID()
		return false, doctypePublicIdentifierSingleQuotedState
	case r == '>':
		p.errs.add(ErrMissingDoctypePublicID, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.PositionAfter())
		return false, dataState
	default:
		p.errs.add(ErrMissingQuoteBeforeDoctypePublicID, p.rd.Position(), string(r))
		p.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) doctypePublicIdentifierQuotedStateParser(quote rune) stateHandler {
	self := doctypePublicIdentifierDoubleQuotedState
	if quote == '\'' {
		self = doctypePublicIdentifierSingleQuotedState
	}
	return func(r rune, eof bool) (bool, tokenizerState) {
		if eof {
			p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
			p.tokenBuilder.EnableForceQuirks()
			p.emitDoctype(p.rd.Position())
			p.emitEOF()
			return false, dataState
		}
		switch r {
		case quote:
			return false, afterDoctypePublicIdentifierState
		case '\u0000':
			p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
			p.tokenBuilder.WritePublicID('�')
			return false, self
		case '>':
			p.errs.add(ErrAbruptDoctypePublicID, p.rd.Position(), "")
			p.tokenBuilder.EnableForceQuirks()
			p.emitDoctype(p.rd.PositionAfter())
			return false, dataState
		default:
			p.tokenBuilder.WritePublicID(r)
			return false, self
		}
	}
}

func (p *Tokenizer) afterDoctypePublicIdentifierStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, betweenDoctypePublicAndSystemIdentifiersState
	case r == '>':
		p.emitDoctype(p.rd.PositionAfter())
		return false, dataState
	case r == '"':
		p.errs.add(ErrMissingQuoteBeforeDoctypeSystemID, p.rd.Position(), "")
		p.tokenBuilder.NoteSystemID()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		p.errs.add(ErrMissingQuoteBeforeDoctypeSystemID, p.rd.Position(), "")
		p.tokenBuilder.NoteSystemID()
		return false, doctypeSystemIdentifierSingleQuotedState
	default:
		p.errs.add(ErrMissingQuoteBeforeDoctypeSystemID, p.rd.Position(), string(r))
		p.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) betweenDoctypePublicAndSystemIdentifiersStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, betweenDoctypePublicAndSystemIdentifiersState
	case r == '>':
		p.emitDoctype(p.rd.PositionAfter())
		return false, dataState
	case r == '"':
		p.tokenBuilder.NoteSystemID()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		p.tokenBuilder.NoteSystemID()
		return false, doctypeSystemIdentifierSingleQuotedState
	default:
		p.errs.add(ErrMissingQuoteBeforeDoctypeSystemID, p.rd.Position(), string(r))
		p.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) afterDoctypeSystemKeywordStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, beforeDoctypeSystemIdentifierState
	case r == '"':
		p.errs.add(ErrMissingQuoteBeforeDoctypeSystemID, p.rd.Position(), "")
		p.tokenBuilder.NoteSystemID()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		p.errs.add(ErrMissingQuoteBeforeDoctypeSystemID, p.rd.Position(), "")
		p.tokenBuilder.NoteSystemID()
		return false, doctypeSystemIdentifierSingleQuotedState
	case r == '>':
		p.errs.add(ErrMissingDoctypeSystemID, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.PositionAfter())
		return false, dataState
	default:
		p.errs.add(ErrMissingQuoteBeforeDoctypeSystemID, p.rd.Position(), string(r))
		p.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) beforeDoctypeSystemIdentifierStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, beforeDoctypeSystemIdentifierState
	case r == '"':
		p.tokenBuilder.NoteSystemID()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		p.tokenBuilder.NoteSystemID()
		return false, doctypeSystemIdentifierSingleQuotedState
	case r == '>':
		p.errs.add(ErrMissingDoctypeSystemID, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.PositionAfter())
		return false, dataState
	default:
		p.errs.add(ErrMissingQuoteBeforeDoctypeSystemID, p.rd.Position(), string(r))
		p.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) doctypeSystemIdentifierQuotedStateParser(quote rune) stateHandler {
	self := doctypeSystemIdentifierDoubleQuotedState
	if quote == '\'' {
		self = doctypeSystemIdentifierSingleQuotedState
	}
	return func(r rune, eof bool) (bool, tokenizerState) {
		if eof {
			p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
			p.tokenBuilder.EnableForceQuirks()
			p.emitDoctype(p.rd.Position())
			p.emitEOF()
			return false, dataState
		}
		switch r {
		case quote:
			return false, afterDoctypeSystemIdentifierState
		case '\u0000':
			p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
			p.tokenBuilder.WriteSystemID('�')
			return false, self
		case '>':
			p.errs.add(ErrAbruptDoctypeSystemID, p.rd.Position(), "")
			p.tokenBuilder.EnableForceQuirks()
			p.emitDoctype(p.rd.PositionAfter())
			return false, dataState
		default:
			p.tokenBuilder.WriteSystemID(r)
			return false, self
		}
	}
}

func (p *Tokenizer) afterDoctypeSystemIdentifierStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInDoctype, p.rd.Position(), "")
		p.tokenBuilder.EnableForceQuirks()
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isHTMLWhitespace(r):
		return false, afterDoctypeSystemIdentifierState
	case r == '>':
		p.emitDoctype(p.rd.PositionAfter())
		return false, dataState
	default:
		p.errs.add(ErrUnexpectedCharAfterDoctypeSystemID, p.rd.Position(), string(r))
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) bogusDoctypeStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitDoctype(p.rd.Position())
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '>':
		p.emitDoctype(p.rd.PositionAfter())
		return false, dataState
	case '\u0000':
		p.errs.add(ErrUnexpectedNullCharacter, p.rd.Position(), "")
		return false, bogusDoctypeState
	default:
		return false, bogusDoctypeState
	}
}

func (p *Tokenizer) cdataSectionStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.errs.add(ErrEofInCDATA, p.rd.Position(), "")
		p.emitEOF()
		return false, dataState
	}
	if r == ']' {
		return false, cdataSectionBracketState
	}
	p.emitChar(r)
	return false, cdataSectionState
}

func (p *Tokenizer) cdataSectionBracketStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == ']' {
		return false, cdataSectionEndState
	}
	p.emitString("]", p.rd.Position())
	return true, cdataSectionState
}

func (p *Tokenizer) cdataSectionEndStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case ']':
			p.emitString("]", p.rd.Position())
			return false, cdataSectionEndState
		case '>':
			return false, dataState
		}
	}
	p.emitString("]]", p.rd.Position())
	return true, cdataSectionState
}
