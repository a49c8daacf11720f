package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fogwing/htmlparse/parser/spec"
)

func parseDump(t *testing.T, in string, opts Options) (string, []ParseError) {
	t.Helper()
	doc, errs := Parse([]byte(in), opts)
	return spec.Dump(doc), errs
}

func dump(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestTreeEmptyInput(t *testing.T) {
	got, errs := parseDump(t, "", Options{})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
	)
	assert.Equal(t, want, got)
	assert.Equal(t, []ErrorCode{ErrMissingDoctype}, errorCodes(errs))
}

func TestTreeSimpleParagraph(t *testing.T) {
	got, errs := parseDump(t, "<p>a&amp;b</p>", Options{})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <p>",
		"|       \"a&b\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Equal(t, []ErrorCode{ErrMissingDoctype}, errorCodes(errs))
}

func TestTreeBareReferenceStillResolves(t *testing.T) {
	got, errs := parseDump(t, "<p>a&ampb</p>", Options{})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <p>",
		"|       \"a&b\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Equal(t, []ErrorCode{ErrMissingDoctype, ErrNamedCharRefWithoutSemicolon}, errorCodes(errs))
}

func TestTreeAttributeReferenceStaysLiteral(t *testing.T) {
	got, errs := parseDump(t, `<!DOCTYPE html><a href="x?a=1&amp=2">t</a>`, Options{})
	want := dump(
		"#document",
		"| <!DOCTYPE html>",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <a>",
		"|       href=\"x?a=1&amp=2\"",
		"|       \"t\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Empty(t, errs)
}

func TestTreeAdoptionAgency(t *testing.T) {
	got, errs := parseDump(t, "<b>1<p>2</b>3</p>", Options{})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <b>",
		"|       \"1\"",
		"|     <p>",
		"|       <b>",
		"|         \"2\"",
		"|       \"3\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrMissingDoctype, errs[0].Code)
}

func TestTreeTableFosterParenting(t *testing.T) {
	got, errs := parseDump(t, "A<table>B<tr>C</tr>D</table>", Options{})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     \"ABCD\"",
		"|     <table>",
		"|       <tbody>",
		"|         <tr>",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Contains(t, errorCodes(errs), ErrUnexpectedToken)
}

func TestTreeTableWhitespaceStays(t *testing.T) {
	got, _ := parseDump(t, "<!DOCTYPE html><table> </table>", Options{})
	want := dump(
		"#document",
		"| <!DOCTYPE html>",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <table>",
		"|       \" \"",
	)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestTreeForeignObjectIntegrationPoint(t *testing.T) {
	got, _ := parseDump(t, "<svg><foreignobject><p>x</p></foreignobject></svg>", Options{})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <svg svg>",
		"|       <svg foreignObject>",
		"|         <p>",
		"|           \"x\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestTreeForeignBreakout(t *testing.T) {
	got, errs := parseDump(t, "<svg><p>x", Options{})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <svg svg>",
		"|     <p>",
		"|       \"x\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Contains(t, errorCodes(errs), ErrUnexpectedStartTag)
}

func TestTreeMathMLTextIntegrationPoint(t *testing.T) {
	got, _ := parseDump(t, "<math><mi>x</mi></math>", Options{})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <math math>",
		"|       <math mi>",
		"|         \"x\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestTreeNoahsArk(t *testing.T) {
	got, _ := parseDump(t, "<p><b><b><b><b>x<p>y", Options{})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <p>",
		"|       <b>",
		"|         <b>",
		"|           <b>",
		"|             <b>",
		"|               \"x\"",
		"|     <p>",
		"|       <b>",
		"|         <b>",
		"|           <b>",
		"|             \"y\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestTreeHeadSynthesisAndRawText(t *testing.T) {
	got, errs := parseDump(t, "<!DOCTYPE html><title>T</title><script>if (a < b) {}</script>x", Options{})
	want := dump(
		"#document",
		"| <!DOCTYPE html>",
		"| <html>",
		"|   <head>",
		"|     <title>",
		"|       \"T\"",
		"|     <script>",
		"|       \"if (a < b) {}\"",
		"|   <body>",
		"|     \"x\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Empty(t, errs)
}

func TestTreeUnterminatedComment(t *testing.T) {
	got, errs := parseDump(t, "<!--c", Options{})
	want := dump(
		"#document",
		"| <!-- c -->",
		"| <html>",
		"|   <head>",
		"|   <body>",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Equal(t, []ErrorCode{ErrEofInComment, ErrMissingDoctype}, errorCodes(errs))
}

func TestTreeCommentAfterBody(t *testing.T) {
	got, errs := parseDump(t, "<!DOCTYPE html><b>x</b></body><!--c-->", Options{})
	want := dump(
		"#document",
		"| <!DOCTYPE html>",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <b>",
		"|       \"x\"",
		"|   <!-- c -->",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Empty(t, errs)
}

func TestTreePreNewlineSkipped(t *testing.T) {
	got, _ := parseDump(t, "<!DOCTYPE html><pre>\nx</pre>", Options{})
	want := dump(
		"#document",
		"| <!DOCTYPE html>",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <pre>",
		"|       \"x\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestTreeTextareaNewlineSkipped(t *testing.T) {
	got, _ := parseDump(t, "<!DOCTYPE html><textarea>\nx</textarea>", Options{})
	want := dump(
		"#document",
		"| <!DOCTYPE html>",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <textarea>",
		"|       \"x\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestTreeSelect(t *testing.T) {
	got, _ := parseDump(t, "<!DOCTYPE html><select><option>a<option>b</select>", Options{})
	want := dump(
		"#document",
		"| <!DOCTYPE html>",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <select>",
		"|       <option>",
		"|         \"a\"",
		"|       <option>",
		"|         \"b\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestTreeTemplateTableParts(t *testing.T) {
	got, _ := parseDump(t, "<!DOCTYPE html><template><td>x</td></template>", Options{})
	want := dump(
		"#document",
		"| <!DOCTYPE html>",
		"| <html>",
		"|   <head>",
		"|     <template>",
		"|       <td>",
		"|         \"x\"",
		"|   <body>",
	)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestTreeQuirksModes(t *testing.T) {
	tests := []struct {
		in   string
		want spec.QuirksMode
	}{
		{"<!DOCTYPE html>", spec.NoQuirks},
		{"", spec.Quirks},
		{"<!DOCTYPE foo>", spec.Quirks},
		{`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN">`, spec.Quirks},
		{`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`, spec.LimitedQuirks},
		{`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`, spec.LimitedQuirks},
		{`<!DOCTYPE html PUBLIC "-//IETF//DTD HTML 2.0//EN">`, spec.Quirks},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			doc, _ := Parse([]byte(tt.in), Options{})
			assert.Equal(t, tt.want, doc.QuirksMode)
		})
	}
}

func TestTreeMaxDepth(t *testing.T) {
	got, errs := parseDump(t, "<div><div><div>x", Options{MaxTreeDepth: 5})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <div>",
		"|       <div>",
		"|         \"x\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Contains(t, errorCodes(errs), ErrTreeDepthExceeded)
}

func TestTreeStopOnFirstError(t *testing.T) {
	_, errs := Parse([]byte("x&ampy&ampz"), Options{StopOnFirstError: true})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrMissingDoctype, errs[0].Code)
}

func TestTreeNodeSpans(t *testing.T) {
	doc, _ := Parse([]byte("<!DOCTYPE html><p>ab</p>"), Options{})
	body := doc.Children[1].Children[1]
	require.Equal(t, "body", body.TagName)
	p := body.Children[0]
	require.Equal(t, "p", p.TagName)
	assert.Equal(t, 15, p.Span.Start.Offset)
	assert.Equal(t, 18, p.Span.End.Offset)

	text := p.Children[0]
	require.Equal(t, spec.TextNode, text.Type)
	assert.Equal(t, 18, text.Span.Start.Offset)
	assert.Equal(t, 20, text.Span.End.Offset)
}

func TestTreeErrorPositions(t *testing.T) {
	_, errs := Parse([]byte("<p>\n  a&ampb"), Options{})
	var found bool
	for _, e := range errs {
		if e.Code == ErrNamedCharRefWithoutSemicolon {
			found = true
			assert.Equal(t, 2, e.Pos.Line)
			assert.Equal(t, 4, e.Pos.Col)
		}
	}
	assert.True(t, found)
}

func TestTreeForeignTextKeepsSpaces(t *testing.T) {
	got, errs := parseDump(t, "<!DOCTYPE html><svg>a b</svg>", Options{})
	want := dump(
		"#document",
		"| <!DOCTYPE html>",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <svg svg>",
		"|       \"a b\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Empty(t, errs)
}

func TestTreeForeignNullCharacterReplaced(t *testing.T) {
	got, errs := parseDump(t, "<!DOCTYPE html><svg>a\u0000b</svg>", Options{})
	want := dump(
		"#document",
		"| <!DOCTYPE html>",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <svg svg>",
		"|       \"a�b\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Contains(t, errorCodes(errs), ErrUnexpectedNullCharacter)
}

func TestTreeMaxDepthSuppressedFormatting(t *testing.T) {
	got, errs := parseDump(t, "<b><b>x", Options{MaxTreeDepth: 2})
	want := dump(
		"#document",
		"| <html>",
		"|   \"x\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Contains(t, errorCodes(errs), ErrTreeDepthExceeded)
}

func TestTreeMaxDepthVoidElements(t *testing.T) {
	got, errs := parseDump(t, "<div><br><img>x", Options{MaxTreeDepth: 4})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <div>",
		"|       \"x\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Contains(t, errorCodes(errs), ErrTreeDepthExceeded)
}

func TestTreeErrorsOrderedByPosition(t *testing.T) {
	_, errs := Parse([]byte("<p foo=1 foo=1>x"), Options{})
	require.Len(t, errs, 2)
	assert.Equal(t, ErrMissingDoctype, errs[0].Code)
	assert.Equal(t, ErrDuplicateAttribute, errs[1].Code)
	for i := 1; i < len(errs); i++ {
		assert.GreaterOrEqual(t, errs[i].Pos.Offset, errs[i-1].Pos.Offset)
	}
}

func TestTreeTableImpliedCells(t *testing.T) {
	got, errs := parseDump(t, "<table><tr><td>a<td>b</table>", Options{})
	want := dump(
		"#document",
		"| <html>",
		"|   <head>",
		"|   <body>",
		"|     <table>",
		"|       <tbody>",
		"|         <tr>",
		"|           <td>",
		"|             \"a\"",
		"|           <td>",
		"|             \"b\"",
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Equal(t, []ErrorCode{ErrMissingDoctype}, errorCodes(errs))
}
