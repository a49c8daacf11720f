package parser

import "github.com/fogwing/htmlparse/parser/spec"

// formattingList is the list of active formatting elements. Markers
// (inserted for applet, object, marquee, template, td, th and caption)
// fence off the entries that reconstruction may clone.
type formattingList []*spec.Node

func (l formattingList) top() *spec.Node {
	if len(l) == 0 {
		return nil
	}
	return l[len(l)-1]
}

func (l formattingList) index(n *spec.Node) int {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i] == n {
			return i
		}
	}
	return -1
}

func (l *formattingList) insert(i int, n *spec.Node) {
	(*l) = append(*l, nil)
	copy((*l)[i+1:], (*l)[i:])
	(*l)[i] = n
}

func (l *formattingList) remove(n *spec.Node) {
	i := l.index(n)
	if i == -1 {
		return
	}
	copy((*l)[i:], (*l)[i+1:])
	(*l) = (*l)[:len(*l)-1]
}

func (l *formattingList) pop() *spec.Node {
	if len(*l) == 0 {
		return nil
	}
	i := len(*l) - 1
	n := (*l)[i]
	*l = (*l)[:i]
	return n
}

func (c *HTMLTreeConstructor) pushFormattingMarker() {
	c.afe = append(c.afe, &spec.ScopeMarker)
}

// clearFormattingToLastMarker empties the list down to and including
// the nearest marker.
func (c *HTMLTreeConstructor) clearFormattingToLastMarker() {
	for {
		n := c.afe.pop()
		if n == nil || n.Type == spec.ScopeMarkerNode {
			return
		}
	}
}

// addFormattingElement inserts the element for token and records it in
// the list, applying the Noah's Ark clause: with three matching
// entries already between here and the last marker, the earliest one
// is evicted first.
func (c *HTMLTreeConstructor) addFormattingElement(token *Token) {
	element := c.insertHTMLElement(token)
	if element == nil {
		return
	}

	identical := 0
findIdenticalElements:
	for i := len(c.afe) - 1; i >= 0; i-- {
		n := c.afe[i]
		if n.Type == spec.ScopeMarkerNode {
			break
		}
		if n.TagName != element.TagName || n.Namespace != element.Namespace {
			continue
		}
		if len(n.Attributes) != len(element.Attributes) {
			continue
		}
	compareAttributes:
		for _, a0 := range n.Attributes {
			for _, a1 := range element.Attributes {
				if a0.Prefix == a1.Prefix && a0.Name == a1.Name && a0.Value == a1.Value {
					continue compareAttributes
				}
			}
			continue findIdenticalElements
		}
		identical++
		if identical >= 3 {
			c.afe.remove(n)
		}
	}

	c.afe = append(c.afe, element)
}

// reconstructActiveFormattingElements reopens the formatting elements
// that were implicitly closed, cloning each entry after the last one
// still open and replacing the list entries with the clones.
func (c *HTMLTreeConstructor) reconstructActiveFormattingElements() {
	n := c.afe.top()
	if n == nil {
		return
	}
	if n.Type == spec.ScopeMarkerNode || c.oe.index(n) != -1 {
		return
	}
	i := len(c.afe) - 1
	for n.Type != spec.ScopeMarkerNode && c.oe.index(n) == -1 {
		if i == 0 {
			i = -1
			break
		}
		i--
		n = c.afe[i]
	}
	for {
		i++
		clone := c.afe[i].Clone()
		if !c.insertNode(clone) {
			break
		}
		c.afe[i] = clone
		if i == len(c.afe)-1 {
			break
		}
	}
}

// adoptionAgency is the adoption agency algorithm for a misnested
// formatting end tag.
func (c *HTMLTreeConstructor) adoptionAgency(token *Token) {
	tagName := token.TagName

	// A matching current node that is not an active formatting element
	// just pops.
	if current := c.oe.top(); current != nil &&
		current.Namespace == spec.HTMLNamespace && current.TagName == tagName &&
		c.afe.index(current) == -1 {
		c.oe.pop()
		return
	}

	// The outer loop.
	for i := 0; i < 8; i++ {
		// Find the formatting element.
		var formattingElement *spec.Node
		for j := len(c.afe) - 1; j >= 0; j-- {
			if c.afe[j].Type == spec.ScopeMarkerNode {
				break
			}
			if c.afe[j].TagName == tagName {
				formattingElement = c.afe[j]
				break
			}
		}
		if formattingElement == nil {
			c.anyOtherEndTag(token)
			return
		}

		// Gone from the stack of open elements: drop the entry, ignore
		// the tag.
		feIndex := c.oe.index(formattingElement)
		if feIndex == -1 {
			c.errs.add(ErrUnexpectedEndTag, token.Span.Start, tagName)
			c.afe.remove(formattingElement)
			return
		}
		// Out of scope: ignore the tag.
		if !c.oe.nodeInScope(defaultScope, formattingElement) {
			c.errs.add(ErrUnexpectedEndTag, token.Span.Start, tagName)
			return
		}
		if formattingElement != c.oe.top() {
			c.errs.add(ErrMismatchedEndTag, token.Span.Start, tagName)
		}

		// Find the furthest block.
		var furthestBlock *spec.Node
		for _, e := range c.oe[feIndex:] {
			if isSpecialElement(e) {
				furthestBlock = e
				break
			}
		}
		if furthestBlock == nil {
			e := c.oe.pop()
			for e != formattingElement {
				e = c.oe.pop()
			}
			c.afe.remove(e)
			return
		}

		commonAncestor := c.sink.Document()
		if feIndex > 0 {
			commonAncestor = c.oe[feIndex-1]
		}
		bookmark := c.afe.index(formattingElement)

		// The inner loop walks up from the furthest block, detaching
		// stale entries and re-homing lastNode.
		lastNode := furthestBlock
		node := furthestBlock
		x := c.oe.index(node)
		j := 0
		for {
			j++
			x--
			node = c.oe[x]
			if node == formattingElement {
				break
			}
			if ni := c.afe.index(node); j > 3 && ni > -1 {
				c.afe.remove(node)
				// Keep the bookmark inside the list when removal
				// shifts everything after it down.
				if ni <= bookmark {
					bookmark--
				}
				continue
			}
			if c.afe.index(node) == -1 {
				c.oe.remove(node)
				continue
			}
			clone := node.Clone()
			c.afe[c.afe.index(node)] = clone
			c.oe[c.oe.index(node)] = clone
			node = clone
			if lastNode == furthestBlock {
				bookmark = c.afe.index(node) + 1
			}
			if lastNode.Parent != nil {
				lastNode.Parent.RemoveChild(lastNode)
			}
			node.AppendChild(lastNode)
			lastNode = node
		}

		// Reparent lastNode to the common ancestor, or for misnested
		// table nodes to the foster parent.
		if lastNode.Parent != nil {
			lastNode.Parent.RemoveChild(lastNode)
		}
		if isTableFosterTarget(commonAncestor) {
			c.fosterParent(lastNode)
		} else {
			c.sink.Reparent(lastNode, commonAncestor)
		}

		// Move the furthest block's children into a clone of the
		// formatting element.
		clone := formattingElement.Clone()
		for furthestBlock.FirstChild() != nil {
			c.sink.Reparent(furthestBlock.FirstChild(), clone)
		}
		c.sink.Append(furthestBlock, clone)

		// Fix up the list of active formatting elements.
		if oldLoc := c.afe.index(formattingElement); oldLoc != -1 && oldLoc < bookmark {
			bookmark--
		}
		c.afe.remove(formattingElement)
		c.afe.insert(bookmark, clone)

		// Fix up the stack of open elements.
		c.oe.remove(formattingElement)
		c.oe.insert(c.oe.index(furthestBlock)+1, clone)
	}
}

func isTableFosterTarget(n *spec.Node) bool {
	if n.Namespace != spec.HTMLNamespace {
		return false
	}
	switch n.TagName {
	case "table", "tbody", "tfoot", "thead", "tr":
		return true
	}
	return false
}
