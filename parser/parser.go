package parser

import "github.com/fogwing/htmlparse/parser/spec"

// Options control a single parse.
type Options struct {
	// ScriptingEnabled switches the content model of noscript: with
	// scripting on, noscript content tokenizes as raw text.
	ScriptingEnabled bool

	// StopOnFirstError abandons the parse at the first recovered error
	// instead of collecting all of them. The tree built so far is still
	// returned.
	StopOnFirstError bool

	// MaxTreeDepth caps element nesting depth. Insertions past the cap
	// are dropped and reported. Zero or negative means no cap.
	MaxTreeDepth int
}

// Parser couples a tokenizer with a tree constructor over a shared
// error list. One instance handles one input.
type Parser struct {
	Tokenizer       *Tokenizer
	TreeConstructor *HTMLTreeConstructor

	errs *errorList
}

func NewParser(input []byte, sink TreeSink, opts Options) *Parser {
	errs := &errorList{stopOnFirst: opts.StopOnFirstError}
	return &Parser{
		Tokenizer:       NewTokenizer(input, errs),
		TreeConstructor: NewHTMLTreeConstructor(sink, errs, opts),
		errs:            errs,
	}
}

// Run pulls tokens until the end-of-file token has been processed. The
// tree constructor feeds its progress back before each token so the
// tokenizer can switch content models and see the adjusted current
// node.
func (p *Parser) Run() {
	for p.Tokenizer.Next() && !p.TreeConstructor.Done() {
		t := p.Tokenizer.Token(p.TreeConstructor.Progress())
		p.TreeConstructor.ProcessToken(&t)
		if p.errs.stopped() {
			return
		}
	}
}

// Parse parses input as a complete HTML document and returns the
// document node along with every error recovered from, in source
// order. A non-empty error list still comes with a usable tree.
func Parse(input []byte, opts Options) (*spec.Node, []ParseError) {
	sink := spec.NewBuilder()
	p := NewParser(input, sink, opts)
	p.Run()
	return sink.Doc, p.errs.sorted()
}
