package spec

// Builder owns the document tree during a parse and is the default
// implementation of the parser's TreeSink. Adjacent text inserted at
// the same place coalesces into a single text node.
type Builder struct {
	Doc *Node
}

// NewBuilder creates a builder with an empty document.
func NewBuilder() *Builder {
	return &Builder{Doc: NewDocument()}
}

// Document returns the document node.
func (b *Builder) Document() *Node { return b.Doc }

// CreateElement allocates a detached element.
func (b *Builder) CreateElement(tag string, ns Namespace, attrs []Attribute, span Span) *Node {
	n := NewElement(tag, ns, attrs)
	n.Span = span
	return n
}

// CreateComment allocates a detached comment node.
func (b *Builder) CreateComment(data string, span Span) *Node {
	return &Node{Type: CommentNode, Data: data, Span: span}
}

// Append adds child as the last child of parent.
func (b *Builder) Append(parent, child *Node) {
	parent.AppendChild(child)
}

// InsertBefore inserts child before the sibling ref under parent; a
// nil ref appends.
func (b *Builder) InsertBefore(parent, child, ref *Node) {
	parent.InsertBefore(child, ref)
}

// Reparent detaches node and appends it to newParent.
func (b *Builder) Reparent(node, newParent *Node) {
	newParent.AppendChild(node)
}

// InsertText inserts character data before ref under parent,
// coalescing with the text node immediately preceding the insertion
// point when there is one.
func (b *Builder) InsertText(parent *Node, ref *Node, data string, span Span) {
	var prev *Node
	if ref == nil {
		prev = parent.LastChild()
	} else if i := parent.childIndex(ref); i > 0 {
		prev = parent.Children[i-1]
	}
	if prev != nil && prev.Type == TextNode {
		prev.Data += data
		prev.Span.End = span.End
		return
	}
	t := &Node{Type: TextNode, Data: data, Span: span}
	parent.InsertBefore(t, ref)
}

// SetQuirksMode records the document-wide quirks flag.
func (b *Builder) SetQuirksMode(m QuirksMode) {
	b.Doc.QuirksMode = m
}

// SetDocumentType appends the doctype node and records its fields on
// the document.
func (b *Builder) SetDocumentType(name, publicID, systemID string, span Span) {
	dt := &Node{Type: DocumentTypeNode, Name: name, PublicID: publicID, SystemID: systemID, Span: span}
	b.Doc.AppendChild(dt)
}

// SameNode reports whether two handles refer to the same node.
func (b *Builder) SameNode(x, y *Node) bool { return x == y }
