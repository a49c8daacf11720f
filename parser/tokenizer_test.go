package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fogwing/htmlparse/parser/spec"
)

func tokenize(t *testing.T, in string) ([]Token, []ParseError) {
	t.Helper()
	errs := &errorList{}
	tz := NewTokenizer([]byte(in), errs)
	var out []Token
	for tz.Next() {
		out = append(out, tz.Token(Progress{}))
	}
	return out, errs.errs
}

// tokenizeFrom seeds the content model the way a preceding start tag
// would have.
func tokenizeFrom(t *testing.T, in string, state tokenizerState, lastStartTag string) ([]Token, []ParseError) {
	t.Helper()
	errs := &errorList{}
	tz := NewTokenizer([]byte(in), errs)
	tz.currentState = state
	tz.lastEmittedStartTagName = lastStartTag
	var out []Token
	for tz.Next() {
		out = append(out, tz.Token(Progress{}))
	}
	return out, errs.errs
}

func textOf(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.Type == characterToken {
			b.WriteString(tok.Data)
		}
	}
	return b.String()
}

func errorCodes(errs []ParseError) []ErrorCode {
	var codes []ErrorCode
	for _, e := range errs {
		codes = append(codes, e.Code)
	}
	return codes
}

func TestTokenizerBasicFlow(t *testing.T) {
	tokens, errs := tokenize(t, "<p>a</p>")
	require.Empty(t, errs)
	require.Len(t, tokens, 4)

	assert.Equal(t, startTagToken, tokens[0].Type)
	assert.Equal(t, "p", tokens[0].TagName)
	assert.Equal(t, characterToken, tokens[1].Type)
	assert.Equal(t, "a", tokens[1].Data)
	assert.Equal(t, endTagToken, tokens[2].Type)
	assert.Equal(t, "p", tokens[2].TagName)
	assert.Equal(t, endOfFileToken, tokens[3].Type)
}

func TestTokenizerTagNameLowercasing(t *testing.T) {
	tokens, _ := tokenize(t, "<DIV></DiV>")
	require.Len(t, tokens, 3)
	assert.Equal(t, "div", tokens[0].TagName)
	assert.Equal(t, "div", tokens[1].TagName)
}

func TestTokenizerAttributeAccuracy(t *testing.T) {
	tests := []struct {
		in    string
		attrs map[string]string
	}{
		{"<head></head>", map[string]string{}},
		{"<script src='123' onload='test'></script>", map[string]string{
			"src":    "123",
			"onload": "test",
		}},
		{"<a href='https://example.com' onclick='alert(1)'>Click this</a>", map[string]string{
			"href":    "https://example.com",
			"onclick": "alert(1)",
		}},
		// The first occurrence of a duplicated name wins.
		{"<script src='123' src='456'></script>", map[string]string{
			"src": "123",
		}},
		{"<script src=123 onload=test></script>", map[string]string{
			"src":    "123",
			"onload": "test",
		}},
		{"<script =src='123' onload='test'></script>", map[string]string{
			"=src":   "123",
			"onload": "test",
		}},
		{"<script src></script>", map[string]string{
			"src": "",
		}},
		{"<script src test></script>", map[string]string{
			"src":  "",
			"test": "",
		}},
		{"<script 'asd></script>", map[string]string{
			"'asd": "",
		}},
		{"<script <asd></script>", map[string]string{
			"<asd": "",
		}},
		{"<script ABC=123></script>", map[string]string{
			"abc": "123",
		}},
		{"<script abc=\u0000123></script>", map[string]string{
			"abc": "�123",
		}},
		{"<script abc=></script>", map[string]string{
			"abc": "",
		}},
		{"<script\tabc=123></script>", map[string]string{
			"abc": "123",
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			tokens, _ := tokenize(t, tt.in)
			require.NotEmpty(t, tokens)
			tag := tokens[0]
			require.Equal(t, startTagToken, tag.Type)
			require.Len(t, tag.Attributes, len(tt.attrs))
			for name, want := range tt.attrs {
				got, ok := tag.getAttr(name)
				require.True(t, ok, "missing attribute %q", name)
				assert.Equal(t, want, got, "attribute %q", name)
			}
		})
	}
}

func TestTokenizerCharacterReferences(t *testing.T) {
	tests := []struct {
		in   string
		text string
		errs []ErrorCode
	}{
		{"a&amp;b", "a&b", nil},
		{"a&ampb", "a&b", []ErrorCode{ErrNamedCharRefWithoutSemicolon}},
		{"&notit;", "¬it;", []ErrorCode{ErrNamedCharRefWithoutSemicolon}},
		{"&notin;", "∉", nil},
		{"&#65;", "A", nil},
		{"&#x41;", "A", nil},
		{"&#X41;", "A", nil},
		{"&#65", "A", []ErrorCode{ErrNumericCharRefWithoutSemicolon}},
		{"&#0;", "�", []ErrorCode{ErrNumericCharRefInvalid}},
		{"&#xD800;", "�", []ErrorCode{ErrNumericCharRefInvalid}},
		{"&#x110000;", "�", []ErrorCode{ErrNumericCharRefInvalid}},
		{"&#150;", "–", []ErrorCode{ErrNumericCharRefInvalid}},
		{"&#x;", "&#x;", []ErrorCode{ErrNumericCharRefNoDigits}},
		{"&unknown;", "&unknown;", []ErrorCode{ErrUnknownNamedCharRef}},
		{"&x", "&x", nil},
		{"&", "&", nil},
		{"&;", "&;", nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			tokens, errs := tokenize(t, tt.in)
			assert.Equal(t, tt.text, textOf(tokens))
			assert.Equal(t, tt.errs, errorCodes(errs))
		})
	}
}

func TestTokenizerCharacterReferenceInAttribute(t *testing.T) {
	// A legacy reference followed by = or alphanumerics stays literal
	// inside attribute values, with no error.
	tokens, errs := tokenize(t, `<a href="x?a=1&amp=2">t</a>`)
	require.Empty(t, errs)
	require.NotEmpty(t, tokens)
	href, ok := tokens[0].getAttr("href")
	require.True(t, ok)
	assert.Equal(t, "x?a=1&amp=2", href)

	tokens, errs = tokenize(t, `<a href="x&amp;y">`)
	require.Empty(t, errs)
	href, _ = tokens[0].getAttr("href")
	assert.Equal(t, "x&y", href)
}

func TestTokenizerComments(t *testing.T) {
	tests := []struct {
		in   string
		data string
		errs []ErrorCode
	}{
		{"<!--x-->", "x", nil},
		{"<!---->", "", nil},
		{"<!--a--b-->", "a--b", nil},
		{"<!-->", "", []ErrorCode{ErrAbruptClosingOfEmptyComment}},
		{"<!--a--!>", "a", []ErrorCode{ErrIncorrectlyClosedComment}},
		{"<!--<!--a-->", "<!--a", []ErrorCode{ErrNestedComment}},
		{"<?php ?>", "?php ?", []ErrorCode{ErrUnexpectedQuestionMarkInsteadOfTagName}},
		{"<!x>", "x", []ErrorCode{ErrIncorrectlyOpenedComment}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			tokens, errs := tokenize(t, tt.in)
			require.NotEmpty(t, tokens)
			require.Equal(t, commentToken, tokens[0].Type)
			assert.Equal(t, tt.data, tokens[0].Data)
			assert.Equal(t, tt.errs, errorCodes(errs))
		})
	}
}

func TestTokenizerDoctype(t *testing.T) {
	tokens, errs := tokenize(t, "<!DOCTYPE html>")
	require.Empty(t, errs)
	require.Equal(t, doctypeToken, tokens[0].Type)
	require.NotNil(t, tokens[0].Name)
	assert.Equal(t, "html", *tokens[0].Name)
	assert.Nil(t, tokens[0].PublicID)
	assert.Nil(t, tokens[0].SystemID)
	assert.False(t, tokens[0].ForceQuirks)

	tokens, _ = tokenize(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`)
	require.Equal(t, doctypeToken, tokens[0].Type)
	require.NotNil(t, tokens[0].PublicID)
	assert.Equal(t, "-//W3C//DTD HTML 4.01//EN", *tokens[0].PublicID)
	require.NotNil(t, tokens[0].SystemID)
	assert.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", *tokens[0].SystemID)

	tokens, errs = tokenize(t, "<!doctype>")
	require.Equal(t, doctypeToken, tokens[0].Type)
	assert.True(t, tokens[0].ForceQuirks)
	assert.Contains(t, errorCodes(errs), ErrMissingDoctypeName)
}

func TestTokenizerRawText(t *testing.T) {
	tokens, errs := tokenizeFrom(t, "a <b> </other></style>", rawTextState, "style")
	require.Empty(t, errs)
	assert.Equal(t, "a <b> </other>", textOf(tokens))
	last := tokens[len(tokens)-2]
	require.Equal(t, endTagToken, last.Type)
	assert.Equal(t, "style", last.TagName)
}

func TestTokenizerRCDataCharacterReference(t *testing.T) {
	tokens, errs := tokenizeFrom(t, "a&lt;b</textarea>", rcDataState, "textarea")
	require.Empty(t, errs)
	assert.Equal(t, "a<b", textOf(tokens))
	last := tokens[len(tokens)-2]
	require.Equal(t, endTagToken, last.Type)
	assert.Equal(t, "textarea", last.TagName)
}

func TestTokenizerScriptDataEscaped(t *testing.T) {
	tokens, errs := tokenizeFrom(t, "a<!--b-->c</script>", scriptDataState, "script")
	require.Empty(t, errs)
	assert.Equal(t, "a<!--b-->c", textOf(tokens))
	last := tokens[len(tokens)-2]
	require.Equal(t, endTagToken, last.Type)
	assert.Equal(t, "script", last.TagName)
}

func TestTokenizerScriptDataDoubleEscaped(t *testing.T) {
	in := "<!--<script>alert('</script>')</script>x"
	tokens, _ := tokenizeFrom(t, in, scriptDataState, "script")
	// The inner </script> inside the double-escaped region stays text;
	// the outer one ends script data.
	var sawEnd bool
	for _, tok := range tokens {
		if tok.Type == endTagToken && tok.TagName == "script" {
			sawEnd = true
		}
	}
	assert.True(t, sawEnd)
	assert.Contains(t, textOf(tokens), "<script>alert('")
}

func TestTokenizerPlaintext(t *testing.T) {
	tokens, errs := tokenizeFrom(t, "a</plaintext><b>", plaintextState, "plaintext")
	require.Empty(t, errs)
	assert.Equal(t, "a</plaintext><b>", textOf(tokens))
}

func TestTokenizerSelfClosing(t *testing.T) {
	tokens, errs := tokenize(t, "<br/>")
	require.Empty(t, errs)
	require.Equal(t, startTagToken, tokens[0].Type)
	assert.True(t, tokens[0].SelfClosing)
}

func TestTokenizerEndTagErrors(t *testing.T) {
	tokens, errs := tokenize(t, "</p class=x>")
	require.Equal(t, endTagToken, tokens[0].Type)
	assert.Empty(t, tokens[0].Attributes)
	assert.Equal(t, []ErrorCode{ErrEndTagWithAttributes}, errorCodes(errs))

	tokens, errs = tokenize(t, "</p/>")
	require.Equal(t, endTagToken, tokens[0].Type)
	assert.False(t, tokens[0].SelfClosing)
	assert.Equal(t, []ErrorCode{ErrEndTagWithTrailingSolidus}, errorCodes(errs))

	_, errs = tokenize(t, "</>")
	assert.Equal(t, []ErrorCode{ErrMissingEndTagName}, errorCodes(errs))
}

func TestTokenizerEOFInTag(t *testing.T) {
	tokens, errs := tokenize(t, "<div")
	require.Len(t, tokens, 1)
	assert.Equal(t, endOfFileToken, tokens[0].Type)
	assert.Equal(t, []ErrorCode{ErrEofInTag}, errorCodes(errs))

	tokens, errs = tokenize(t, "<")
	assert.Equal(t, "<", textOf(tokens))
	assert.Equal(t, []ErrorCode{ErrEofBeforeTagName}, errorCodes(errs))
}

func TestTokenizerCDATAOutsideForeignContent(t *testing.T) {
	tokens, errs := tokenize(t, "<![CDATA[x]]>")
	require.Equal(t, commentToken, tokens[0].Type)
	assert.Equal(t, "[CDATA[x]]", tokens[0].Data)
	assert.Equal(t, []ErrorCode{ErrCDATAInHTMLContent}, errorCodes(errs))
}

func TestTokenizerCDATAInForeignContent(t *testing.T) {
	errs := &errorList{}
	tz := NewTokenizer([]byte("<![CDATA[a<b]]>"), errs)
	svg := spec.NewElement("svg", spec.SVGNamespace, nil)
	var tokens []Token
	for tz.Next() {
		tokens = append(tokens, tz.Token(Progress{AdjustedCurrentNode: svg}))
	}
	assert.Empty(t, errs.errs)
	assert.Equal(t, "a<b", textOf(tokens))
}

func TestTokenizerSpans(t *testing.T) {
	tokens, _ := tokenize(t, "<p>ab")
	require.GreaterOrEqual(t, len(tokens), 3)

	tag := tokens[0]
	assert.Equal(t, spec.Position{Offset: 0, Line: 1, Col: 1}, tag.Span.Start)
	assert.Equal(t, spec.Position{Offset: 3, Line: 1, Col: 4}, tag.Span.End)

	a := tokens[1]
	assert.Equal(t, spec.Position{Offset: 3, Line: 1, Col: 4}, a.Span.Start)
	assert.Equal(t, spec.Position{Offset: 4, Line: 1, Col: 5}, a.Span.End)
}

func TestTokenizerNewlineNormalization(t *testing.T) {
	tokens, errs := tokenize(t, "a\r\nb\rc")
	require.Empty(t, errs)
	assert.Equal(t, "a\nb\nc", textOf(tokens))

	// The code point after a folded CRLF sits on the next line.
	var positions []spec.Position
	for _, tok := range tokens {
		if tok.Type == characterToken {
			positions = append(positions, tok.Span.Start)
		}
	}
	require.Len(t, positions, 5)
	assert.Equal(t, spec.Position{Offset: 3, Line: 2, Col: 1}, positions[2])
}

func TestTokenizerInvalidUTF8(t *testing.T) {
	errs := &errorList{}
	tz := NewTokenizer([]byte{'a', 0xFF, 'b'}, errs)
	var tokens []Token
	for tz.Next() {
		tokens = append(tokens, tz.Token(Progress{}))
	}
	assert.Equal(t, "a�b", textOf(tokens))
	assert.Equal(t, []ErrorCode{ErrInvalidUTF8}, errorCodes(errs.errs))
}
