package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fogwing/htmlparse/parser/spec"
)

func bodyOf(t *testing.T, in string) *spec.Node {
	t.Helper()
	doc, _ := Parse([]byte(in), Options{})
	var html *spec.Node
	for _, c := range doc.Children {
		if c.Type == spec.ElementNode {
			html = c
		}
	}
	require.NotNil(t, html)
	body := html.Children[len(html.Children)-1]
	require.Equal(t, "body", body.TagName)
	return body
}

func TestSerializeRoundTrip(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{`<p class="a">x &amp; y</p>`, `<p class="a">x &amp; y</p>`},
		{`<br>`, `<br>`},
		{`<div><img src="u"><hr></div>`, `<div><img src="u"><hr></div>`},
		{`<!--c--><b>x</b>`, `<!--c--><b>x</b>`},
		{`<p>a<b`, `<p>a</p>`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			body := bodyOf(t, "<!DOCTYPE html>"+tt.in)
			assert.Equal(t, tt.out, SerializeFragment(body))
		})
	}
}

func TestSerializeEscapesAttributeValues(t *testing.T) {
	body := bodyOf(t, `<!DOCTYPE html><a href="x?a=1&amp=2" title='say "hi"'>t</a>`)
	assert.Equal(t, `<a href="x?a=1&amp;amp=2" title="say &quot;hi&quot;">t</a>`, SerializeFragment(body))
}

func TestSerializeRawTextUnescaped(t *testing.T) {
	doc, _ := Parse([]byte("<!DOCTYPE html><script>a < b && c</script>"), Options{})
	head := doc.Children[1].Children[0]
	require.Equal(t, "head", head.TagName)
	assert.Equal(t, "<script>a < b && c</script>", SerializeFragment(head))
}

func TestSerializeForeignAttributePrefix(t *testing.T) {
	body := bodyOf(t, `<!DOCTYPE html><svg xlink:href="u"></svg>`)
	assert.Equal(t, `<svg xlink:href="u"></svg>`, SerializeFragment(body))
}

func TestSerializeNonBreakingSpace(t *testing.T) {
	body := bodyOf(t, "<!DOCTYPE html><p>a\u00a0b</p>")
	assert.Equal(t, "<p>a&nbsp;b</p>", SerializeFragment(body))
}
