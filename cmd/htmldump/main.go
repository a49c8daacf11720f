// Command htmldump parses an HTML document or fragment and prints the
// resulting tree, one node per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fogwing/htmlparse/parser"
	"github.com/fogwing/htmlparse/parser/spec"
)

func main() {
	var (
		fragment   = flag.String("fragment", "", "parse as a fragment inside this context element")
		scripting  = flag.Bool("scripting", false, "treat noscript content as raw text")
		stopEarly  = flag.Bool("stop-on-first-error", false, "abandon the parse at the first error")
		maxDepth   = flag.Int("max-depth", 0, "cap element nesting depth, 0 for no cap")
		serialize  = flag.Bool("serialize", false, "print re-serialized HTML instead of the tree")
		showErrors = flag.Bool("errors", false, "print recovered parse errors to stderr")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	input, err := readInput(flag.Arg(0))
	if err != nil {
		log.WithError(err).Fatal("reading input")
	}
	log.WithField("bytes", len(input)).Debug("input read")

	opts := parser.Options{
		ScriptingEnabled: *scripting,
		StopOnFirstError: *stopEarly,
		MaxTreeDepth:     *maxDepth,
	}

	var (
		errs  []parser.ParseError
		nodes []*spec.Node
		doc   *spec.Node
	)
	if *fragment != "" {
		context := spec.NewElement(*fragment, spec.HTMLNamespace, nil)
		nodes, errs = parser.ParseFragment(input, context, opts)
	} else {
		doc, errs = parser.Parse(input, opts)
	}

	if *showErrors {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
	}
	log.WithField("errors", len(errs)).Debug("parse finished")

	if doc == nil {
		doc = spec.NewElement("html", spec.HTMLNamespace, nil)
		for _, n := range nodes {
			doc.AppendChild(n)
		}
	}
	if *serialize {
		fmt.Print(parser.SerializeFragment(doc))
		return
	}
	fmt.Print(spec.Dump(doc))
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "stdin")
	}
	data, err := os.ReadFile(path)
	return data, errors.Wrapf(err, "open %s", path)
}
