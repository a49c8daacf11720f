package parser

import (
	"unicode/utf8"

	"github.com/fogwing/htmlparse/parser/spec"
)

// eofRune marks end of input on the reader's Current.
const eofRune rune = -1

// reader walks a UTF-8 buffer one code point at a time, tracking
// offset/line/column, folding CR and CRLF to LF, and substituting
// U+FFFD for invalid byte sequences (each substitution is reported
// once). It supports a single mark for the rewind the
// character-reference resolver needs.
type reader struct {
	src  []byte
	errs *errorList

	pos   int  // byte offset of the current code point
	width int  // bytes the current code point spans (2 for a folded CRLF)
	cur   rune // current code point, eofRune at end
	line  int
	col   int

	mark readerMark

	// badPos is shared across lookahead copies so each invalid byte
	// sequence is reported once, no matter how often it is decoded.
	badPos *int
}

type readerMark struct {
	pos  int
	line int
	col  int
}

func newReader(src []byte, errs *errorList) *reader {
	bad := -1
	r := &reader{src: src, errs: errs, line: 1, col: 1, badPos: &bad}
	r.decode()
	return r
}

// decode refreshes cur/width from pos without moving.
func (r *reader) decode() {
	if r.pos >= len(r.src) {
		r.cur = eofRune
		r.width = 0
		return
	}
	if r.src[r.pos] == '\r' {
		r.cur = '\n'
		r.width = 1
		if r.pos+1 < len(r.src) && r.src[r.pos+1] == '\n' {
			r.width = 2
		}
		return
	}
	c, w := utf8.DecodeRune(r.src[r.pos:])
	if c == utf8.RuneError && w == 1 {
		if r.pos > *r.badPos {
			*r.badPos = r.pos
			r.errs.add(ErrInvalidUTF8, r.Position(), "")
		}
		c = '�'
	}
	r.cur = c
	r.width = w
}

// Current returns the code point under the cursor, or eofRune.
func (r *reader) Current() rune { return r.cur }

// EOF reports whether the cursor is past the last code point.
func (r *reader) EOF() bool { return r.cur == eofRune }

// Advance moves to the next code point.
func (r *reader) Advance() {
	if r.cur == eofRune {
		return
	}
	if r.cur == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	r.pos += r.width
	r.decode()
}

// Next returns the current code point and advances past it.
func (r *reader) Next() rune {
	c := r.cur
	r.Advance()
	return c
}

// Position reports the location of the current code point.
func (r *reader) Position() spec.Position {
	return spec.Position{Offset: r.pos, Line: r.line, Col: r.col}
}

// PositionAfter reports the location just past the current code point,
// without moving the cursor.
func (r *reader) PositionAfter() spec.Position {
	next := *r
	next.Advance()
	return next.Position()
}

// Mark remembers the current location for RewindToMark. Only one mark
// is live at a time.
func (r *reader) Mark() {
	r.mark = readerMark{pos: r.pos, line: r.line, col: r.col}
}

// RewindToMark moves the cursor back to the last Mark.
func (r *reader) RewindToMark() {
	r.pos = r.mark.pos
	r.line = r.mark.line
	r.col = r.mark.col
	r.decode()
}

// Peek returns the code point n positions ahead of the cursor without
// moving (n == 0 is Current). Newline folding applies.
func (r *reader) Peek(n int) rune {
	save := *r
	for i := 0; i < n; i++ {
		r.Advance()
	}
	c := r.cur
	*r = save
	return c
}

// ConsumeMatch consumes s if the input at the cursor matches it,
// byte-for-byte or ASCII case-insensitively. It reports whether the
// match was committed.
func (r *reader) ConsumeMatch(s string, caseSensitive bool) bool {
	if r.pos+len(s) > len(r.src) {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := r.src[r.pos+i]
		c := s[i]
		if !caseSensitive {
			b = asciiLower(b)
			c = asciiLower(c)
		}
		if b != c {
			return false
		}
	}
	// Matched prefixes are ASCII with no newlines, so columns advance
	// by the byte count.
	r.pos += len(s)
	r.col += len(s)
	r.decode()
	return true
}

func asciiLower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 0x20
	}
	return b
}

func isASCIIAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isASCIIAlphanumeric(r rune) bool {
	return isASCIIAlpha(r) || isASCIIDigit(r)
}

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isHTMLWhitespace matches the tokenizer's whitespace set. Carriage
// returns never reach the tokenizer; the reader folds them.
func isHTMLWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ':
		return true
	}
	return false
}

func isSurrogate(c int) bool {
	return c >= 0xD800 && c <= 0xDFFF
}

func isC0Control(c int) bool {
	return c >= 0x00 && c <= 0x1F
}

func isControl(c int) bool {
	return isC0Control(c) || (c >= 0x7F && c <= 0x9F)
}

func isNoncharacter(c int) bool {
	if c >= 0xFDD0 && c <= 0xFDEF {
		return true
	}
	low := c & 0xFFFF
	return (low == 0xFFFE || low == 0xFFFF) && c <= 0x10FFFF
}
