package parser

import "github.com/fogwing/htmlparse/parser/spec"

// nodeStack is the stack of open elements. The bottom is the root
// element, the top is the current node.
type nodeStack []*spec.Node

func (s *nodeStack) pop() *spec.Node {
	if len(*s) == 0 {
		return nil
	}
	i := len(*s) - 1
	n := (*s)[i]
	*s = (*s)[:i]
	return n
}

func (s nodeStack) top() *spec.Node {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

func (s nodeStack) index(n *spec.Node) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == n {
			return i
		}
	}
	return -1
}

func (s nodeStack) contains(n *spec.Node) bool {
	return s.index(n) != -1
}

func (s *nodeStack) insert(i int, n *spec.Node) {
	(*s) = append(*s, nil)
	copy((*s)[i+1:], (*s)[i:])
	(*s)[i] = n
}

func (s *nodeStack) remove(n *spec.Node) {
	i := s.index(n)
	if i == -1 {
		return
	}
	copy((*s)[i:], (*s)[i+1:])
	(*s) = (*s)[:len(*s)-1]
}

// scope selects which ancestors terminate an element-in-scope search.
type scope uint8

const (
	defaultScope scope = iota
	listItemScope
	buttonScope
	tableScope
	selectScope
)

// scopeTerminates reports whether n stops the upward search for the
// given scope variant. Select scope is inverted: everything except
// option containers stops it.
func scopeTerminates(sc scope, n *spec.Node) bool {
	switch sc {
	case selectScope:
		if n.Namespace != spec.HTMLNamespace {
			return true
		}
		return n.TagName != "optgroup" && n.TagName != "option"
	case tableScope:
		if n.Namespace != spec.HTMLNamespace {
			return false
		}
		switch n.TagName {
		case "html", "table", "template":
			return true
		}
		return false
	}
	switch n.Namespace {
	case spec.HTMLNamespace:
		switch n.TagName {
		case "applet", "caption", "html", "table", "td", "th", "marquee", "object", "template":
			return true
		case "ol", "ul":
			return sc == listItemScope
		case "button":
			return sc == buttonScope
		}
	case spec.MathMLNamespace:
		switch n.TagName {
		case "mi", "mo", "mn", "ms", "mtext", "annotation-xml":
			return true
		}
	case spec.SVGNamespace:
		switch n.TagName {
		case "foreignObject", "desc", "title":
			return true
		}
	}
	return false
}

// indexOfElementInScope returns the stack index of the nearest HTML
// element with one of the given tag names, or -1 when a scope boundary
// comes first.
func (s nodeStack) indexOfElementInScope(sc scope, matchTags ...string) int {
	for i := len(s) - 1; i >= 0; i-- {
		n := s[i]
		if n.Namespace == spec.HTMLNamespace {
			for _, t := range matchTags {
				if n.TagName == t {
					return i
				}
			}
		}
		if scopeTerminates(sc, n) {
			return -1
		}
	}
	return -1
}

func (s nodeStack) elementInScope(sc scope, matchTags ...string) bool {
	return s.indexOfElementInScope(sc, matchTags...) != -1
}

// nodeInScope reports whether this exact node is in scope, which is
// what the adoption agency asks about formatting entries.
func (s nodeStack) nodeInScope(sc scope, node *spec.Node) bool {
	for i := len(s) - 1; i >= 0; i-- {
		n := s[i]
		if n == node {
			return true
		}
		if scopeTerminates(sc, n) {
			return false
		}
	}
	return false
}

// popUntil pops up to and including the nearest matching element in
// scope. Nothing is popped when no match is in scope.
func (s *nodeStack) popUntil(sc scope, matchTags ...string) bool {
	i := s.indexOfElementInScope(sc, matchTags...)
	if i == -1 {
		return false
	}
	*s = (*s)[:i]
	return true
}
