package parser

import (
	"strings"

	"github.com/fogwing/htmlparse/parser/spec"
)

// escapeString escapes serialized character data. Attribute values
// escape quotes instead of angle brackets.
func escapeString(s string, attrVal bool) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "\u00a0", "&nbsp;")
	if attrVal {
		s = strings.ReplaceAll(s, "\"", "&quot;")
	} else {
		s = strings.ReplaceAll(s, "<", "&lt;")
		s = strings.ReplaceAll(s, ">", "&gt;")
	}
	return s
}

var voidElements = map[string]bool{
	"area": true, "base": true, "basefont": true, "bgsound": true,
	"br": true, "col": true, "embed": true, "frame": true, "hr": true,
	"img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true,
	"wbr": true,
}

// rawTextParents hold character data that serializes without escaping.
var rawTextParents = map[string]bool{
	"style": true, "script": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "plaintext": true,
}

// SerializeFragment renders the children of fragment back to HTML
// source.
func SerializeFragment(fragment *spec.Node) string {
	switch fragment.TagName {
	case "basefont", "bgsound", "frame", "keygen":
		return ""
	}

	var b strings.Builder
	for _, child := range fragment.Children {
		serializeNode(&b, child)
	}
	return b.String()
}

func serializeNode(b *strings.Builder, n *spec.Node) {
	switch n.Type {
	case spec.ElementNode:
		b.WriteByte('<')
		b.WriteString(n.TagName)
		for _, a := range n.Attributes {
			b.WriteByte(' ')
			if a.Prefix != "" {
				b.WriteString(a.Prefix)
				b.WriteByte(':')
			}
			b.WriteString(a.Name)
			b.WriteString("=\"")
			b.WriteString(escapeString(a.Value, true))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		if n.Namespace == spec.HTMLNamespace && voidElements[n.TagName] {
			return
		}
		b.WriteString(SerializeFragment(n))
		b.WriteString("</")
		b.WriteString(n.TagName)
		b.WriteByte('>')
	case spec.TextNode:
		if p := n.Parent; p != nil && p.Namespace == spec.HTMLNamespace && rawTextParents[p.TagName] {
			b.WriteString(n.Data)
			return
		}
		b.WriteString(escapeString(n.Data, false))
	case spec.CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case spec.DocumentTypeNode:
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.Name)
		b.WriteByte('>')
	}
}
