// Package spec holds the document tree the parser builds: nodes,
// attributes, source positions and the quirks flag. The parser only
// mutates the tree through the Builder; everything here is plain data.
package spec

import "strings"

// Position is a location in the input, counted on code-point
// boundaries. Line and Col are 1-based, Offset is a byte offset.
type Position struct {
	Offset int
	Line   int
	Col    int
}

// Span records where a token or node started and ended in the input.
type Span struct {
	Start Position
	End   Position
}

// Namespace of an element. The parser only ever creates elements in
// these three.
type Namespace uint8

const (
	HTMLNamespace Namespace = iota
	MathMLNamespace
	SVGNamespace
)

func (ns Namespace) String() string {
	switch ns {
	case MathMLNamespace:
		return "math"
	case SVGNamespace:
		return "svg"
	}
	return "html"
}

// Attribute is a single name/value pair on an element or start tag.
// Prefix is set only for the foreign xlink/xml/xmlns attributes.
type Attribute struct {
	Prefix string
	Name   string
	Value  string
	Span   Span
}

type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
	// ScopeMarkerNode never appears in a document; it is the marker
	// entry in the list of active formatting elements.
	ScopeMarkerNode
)

// QuirksMode is the document-wide rendering flag derived from the
// doctype.
type QuirksMode uint8

const (
	NoQuirks QuirksMode = iota
	Quirks
	LimitedQuirks
)

func (m QuirksMode) String() string {
	switch m {
	case Quirks:
		return "quirks"
	case LimitedQuirks:
		return "limited-quirks"
	}
	return "no-quirks"
}

// Node is a node in the document tree. Which fields are meaningful
// depends on Type: TagName/Namespace/Attributes for elements, Data for
// text and comments, Name/PublicID/SystemID for doctypes, QuirksMode
// for the document node.
type Node struct {
	Type       NodeType
	TagName    string
	Namespace  Namespace
	Attributes []Attribute
	Data       string
	Name       string
	PublicID   string
	SystemID   string
	QuirksMode QuirksMode
	Span       Span

	Parent   *Node
	Children []*Node
}

// NewElement creates a detached element node.
func NewElement(tag string, ns Namespace, attrs []Attribute) *Node {
	return &Node{Type: ElementNode, TagName: tag, Namespace: ns, Attributes: attrs}
}

// NewDocument creates an empty document node.
func NewDocument() *Node {
	return &Node{Type: DocumentNode}
}

// ScopeMarker is the shared marker entry for the active formatting
// list. It must never be appended to a document.
var ScopeMarker = Node{Type: ScopeMarkerNode}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// AppendChild adds child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) {
	child.Detach()
	child.Parent = n
	n.Children = append(n.Children, child)
}

// InsertBefore inserts child immediately before the sibling ref. A nil
// ref appends.
func (n *Node) InsertBefore(child, ref *Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}
	i := n.childIndex(ref)
	if i < 0 {
		n.AppendChild(child)
		return
	}
	child.Detach()
	child.Parent = n
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = child
}

// RemoveChild detaches child from n. It is a no-op if child is not a
// child of n.
func (n *Node) RemoveChild(child *Node) {
	i := n.childIndex(child)
	if i < 0 {
		return
	}
	copy(n.Children[i:], n.Children[i+1:])
	n.Children = n.Children[:len(n.Children)-1]
	child.Parent = nil
}

// Detach removes n from its parent, if any.
func (n *Node) Detach() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func (n *Node) childIndex(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Clone copies the node. Attributes are copied; children are not.
func (n *Node) Clone() *Node {
	clone := *n
	clone.Parent = nil
	clone.Children = nil
	clone.Attributes = append([]Attribute(nil), n.Attributes...)
	return &clone
}

// HasAttr reports whether the element carries an attribute with the
// given (unprefixed) name.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Prefix == "" && a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Document walks up to the document node, or returns nil for a
// detached subtree.
func (n *Node) Document() *Node {
	for p := n; p != nil; p = p.Parent {
		if p.Type == DocumentNode {
			return p
		}
	}
	return nil
}

// Dump renders the subtree in the html5lib tree-construction test
// format: one node per line, two-space indent per depth, elements as
// <tag> (foreign ones as <ns tag>), text quoted.
func Dump(n *Node) string {
	var b strings.Builder
	if n.Type == DocumentNode {
		b.WriteString("#document\n")
	}
	for _, c := range n.Children {
		dumpNode(&b, c, 1)
	}
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString("|")
	b.WriteString(indent[1:])
	switch n.Type {
	case ElementNode:
		b.WriteString("<")
		if n.Namespace != HTMLNamespace {
			b.WriteString(n.Namespace.String())
			b.WriteString(" ")
		}
		b.WriteString(n.TagName)
		b.WriteString(">\n")
		for _, a := range n.Attributes {
			b.WriteString("|")
			b.WriteString(indent[1:])
			b.WriteString("  ")
			if a.Prefix != "" {
				b.WriteString(a.Prefix)
				b.WriteString(" ")
			}
			b.WriteString(a.Name)
			b.WriteString("=\"")
			b.WriteString(a.Value)
			b.WriteString("\"\n")
		}
	case TextNode:
		b.WriteString("\"")
		b.WriteString(n.Data)
		b.WriteString("\"\n")
	case CommentNode:
		b.WriteString("<!-- ")
		b.WriteString(n.Data)
		b.WriteString(" -->\n")
	case DocumentTypeNode:
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.Name)
		if n.PublicID != "" || n.SystemID != "" {
			b.WriteString(" \"")
			b.WriteString(n.PublicID)
			b.WriteString("\" \"")
			b.WriteString(n.SystemID)
			b.WriteString("\"")
		}
		b.WriteString(">\n")
	}
	for _, c := range n.Children {
		dumpNode(b, c, depth+1)
	}
}
