package parser

import "github.com/fogwing/htmlparse/parser/spec"

// fragmentStartState picks the tokenizer state the context element
// would have left the tokenizer in.
func fragmentStartState(context *spec.Node, opts Options) tokenizerState {
	if context.Namespace != spec.HTMLNamespace {
		return dataState
	}
	switch context.TagName {
	case "title", "textarea":
		return rcDataState
	case "style", "xmp", "iframe", "noembed", "noframes":
		return rawTextState
	case "script":
		return scriptDataState
	case "noscript":
		if opts.ScriptingEnabled {
			return rawTextState
		}
		return dataState
	case "plaintext":
		return plaintextState
	}
	return dataState
}

// ParseFragment parses input the way it would parse inside the context
// element, returning the top-level nodes of the fragment. The nodes
// come back detached from the synthetic root they were built under.
func ParseFragment(input []byte, context *spec.Node, opts Options) ([]*spec.Node, []ParseError) {
	sink := spec.NewBuilder()
	p := NewParser(input, sink, opts)
	c := p.TreeConstructor

	p.Tokenizer.currentState = fragmentStartState(context, opts)
	if context.Namespace == spec.HTMLNamespace {
		// The appropriate end tag for the switched content model is the
		// context element's own.
		p.Tokenizer.lastEmittedStartTagName = context.TagName
	}

	if doc := context.Document(); doc != nil {
		c.quirksMode = doc.QuirksMode
		sink.SetQuirksMode(doc.QuirksMode)
	}

	root := sink.CreateElement("html", spec.HTMLNamespace, nil, spec.Span{})
	sink.Append(sink.Document(), root)
	c.oe = append(c.oe, root)
	c.fragmentContext = context
	c.fragmentRoot = root

	if context.Namespace == spec.HTMLNamespace && context.TagName == "template" {
		c.templateModes = append(c.templateModes, inTemplate)
	}
	c.mode = c.resetInsertionMode()

	for n := context; n != nil; n = n.Parent {
		if n.Namespace == spec.HTMLNamespace && n.TagName == "form" {
			c.formElementPointer = n
			break
		}
	}

	p.Run()

	children := make([]*spec.Node, len(root.Children))
	copy(children, root.Children)
	for _, child := range children {
		child.Detach()
	}
	return children, p.errs.sorted()
}
