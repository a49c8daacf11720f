package parser

import "github.com/fogwing/htmlparse/parser/spec"

// TreeSink receives tree mutations from the tree constructor. The
// default sink is spec.Builder; a caller with its own document
// representation can substitute one, as long as node handles stay
// comparable through SameNode.
type TreeSink interface {
	Document() *spec.Node
	CreateElement(tag string, ns spec.Namespace, attrs []spec.Attribute, span spec.Span) *spec.Node
	CreateComment(data string, span spec.Span) *spec.Node
	Append(parent, child *spec.Node)
	InsertBefore(parent, child, ref *spec.Node)
	Reparent(node, newParent *spec.Node)
	InsertText(parent, ref *spec.Node, data string, span spec.Span)
	SetQuirksMode(m spec.QuirksMode)
	SetDocumentType(name, publicID, systemID string, span spec.Span)
	SameNode(x, y *spec.Node) bool
}
