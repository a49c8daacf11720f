package parser

import "github.com/fogwing/htmlparse/parser/spec"

// charRef is one resolved named reference; second is zero for the
// single-code-point entries.
type charRef struct {
	first, second rune
}

func (c charRef) String() string {
	if c.second != 0 {
		return string([]rune{c.first, c.second})
	}
	return string(c.first)
}

// numericReplacements maps the numeric reference range 0x80..0x9F onto
// the windows-1252 characters legacy content meant by those numbers.
var numericReplacements = map[int]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}

// resolveCharacterReference consumes a character reference with the
// reader positioned on the ampersand and returns the replacement text.
// When the input after the ampersand is not a reference, only the
// ampersand is consumed and returned literally. Errors land in errs at
// the ampersand's position; none of them stop resolution.
func resolveCharacterReference(rd *reader, tb *TokenBuilder, inAttribute bool, errs *errorList) string {
	pos := rd.Position()
	rd.Advance() // '&'

	switch {
	case rd.Current() == '#':
		return resolveNumericReference(rd, tb, pos, errs)
	case isASCIIAlphanumeric(rd.Current()):
		return resolveNamedReference(rd, pos, inAttribute, errs)
	default:
		return "&"
	}
}

func resolveNumericReference(rd *reader, tb *TokenBuilder, pos spec.Position, errs *errorList) string {
	rd.Advance() // '#'
	tb.ResetCharRef()

	base := 10
	prefix := "&#"
	isDigit := isASCIIDigit
	if rd.Current() == 'x' || rd.Current() == 'X' {
		prefix = "&#" + string(rd.Next())
		base = 16
		isDigit = isASCIIHexDigit
	}

	if !isDigit(rd.Current()) {
		errs.add(ErrNumericCharRefNoDigits, pos, prefix)
		return prefix
	}
	for isDigit(rd.Current()) {
		tb.AddToCharRef(base, hexValue(rd.Next()))
	}
	if rd.Current() == ';' {
		rd.Advance()
	} else {
		errs.add(ErrNumericCharRefWithoutSemicolon, pos, "")
	}

	c := tb.CharRef()
	switch {
	case c == 0, c > 0x10FFFF, isSurrogate(c):
		errs.add(ErrNumericCharRefInvalid, pos, "")
		return "�"
	case isNoncharacter(c):
		errs.add(ErrNumericCharRefInvalid, pos, "")
	case c == 0x0D, isControl(c) && !isHTMLWhitespace(rune(c)):
		errs.add(ErrNumericCharRefInvalid, pos, "")
		if repl, ok := numericReplacements[c]; ok {
			return string(repl)
		}
	}
	return string(rune(c))
}

func resolveNamedReference(rd *reader, pos spec.Position, inAttribute bool, errs *errorList) string {
	// Look ahead without consuming: the longest name wins, and on a
	// partial match everything past it stays in the input.
	var cand []rune
	for len(cand) < maxNamedRefLen && isASCIIAlphanumeric(rd.Peek(len(cand))) {
		cand = append(cand, rd.Peek(len(cand)))
	}
	hasSemicolon := rd.Peek(len(cand)) == ';'
	if hasSemicolon && len(cand) < maxNamedRefLen {
		cand = append(cand, ';')
	}

	for l := len(cand); l > 0; l-- {
		ref, ok := namedRefs[string(cand[:l])]
		if !ok {
			continue
		}
		for i := 0; i < l; i++ {
			rd.Advance()
		}
		if cand[l-1] != ';' {
			next := rd.Current()
			if inAttribute && (next == '=' || isASCIIAlphanumeric(next)) {
				// Historical form like "&amp=": leave it alone.
				return "&" + string(cand[:l])
			}
			errs.add(ErrNamedCharRefWithoutSemicolon, pos, "&"+string(cand[:l]))
		}
		return ref.String()
	}

	if hasSemicolon {
		errs.add(ErrUnknownNamedCharRef, pos, "&"+string(cand))
	}
	return "&"
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return 0
}
