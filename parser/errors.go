package parser

import (
	"fmt"
	"sort"

	"github.com/fogwing/htmlparse/parser/spec"
)

// ErrorCode identifies one kind of parse error. Parse errors are data:
// they never abort the parse, the tokenizer and tree constructor
// always continue with their defined recovery action.
type ErrorCode uint8

const (
	ErrNone ErrorCode = iota

	// Tokenizer errors.
	ErrInvalidUTF8
	ErrUnexpectedNullCharacter
	ErrInvalidFirstCharacterOfTagName
	ErrMissingEndTagName
	ErrUnexpectedQuestionMarkInsteadOfTagName
	ErrUnexpectedCharInAttributeName
	ErrUnexpectedCharInUnquotedAttributeValue
	ErrMissingWhitespaceBetweenAttributes
	ErrMissingAttributeValue
	ErrDuplicateAttribute
	ErrUnexpectedSolidusInTag
	ErrEndTagWithAttributes
	ErrEndTagWithTrailingSolidus
	ErrAbruptClosingOfEmptyComment
	ErrNestedComment
	ErrIncorrectlyClosedComment
	ErrIncorrectlyOpenedComment
	ErrMissingDoctypeName
	ErrInvalidCharacterSequenceAfterDoctypeName
	ErrMissingDoctypePublicID
	ErrMissingDoctypeSystemID
	ErrMissingQuoteBeforeDoctypePublicID
	ErrMissingQuoteBeforeDoctypeSystemID
	ErrAbruptDoctypePublicID
	ErrAbruptDoctypeSystemID
	ErrUnexpectedCharAfterDoctypeSystemID
	ErrCDATAInHTMLContent
	ErrEofInTag
	ErrEofInComment
	ErrEofInDoctype
	ErrEofInCharacterReference
	ErrEofInScript
	ErrEofInCDATA
	ErrEofBeforeTagName

	// Character-reference errors.
	ErrNumericCharRefWithoutSemicolon
	ErrNumericCharRefNoDigits
	ErrNumericCharRefInvalid
	ErrNamedCharRefWithoutSemicolon
	ErrNamedCharRefInvalid
	ErrUnknownNamedCharRef

	// Tree-construction errors.
	ErrMissingDoctype
	ErrQuirkyDoctype
	ErrUnexpectedDoctype
	ErrUnexpectedStartTag
	ErrUnexpectedStartTagInTable
	ErrUnexpectedEndTag
	ErrMismatchedEndTag
	ErrUnexpectedSelfClosingTag
	ErrUnexpectedToken
	ErrUnexpectedEOF
	ErrTreeDepthExceeded
)

var errorCodeNames = map[ErrorCode]string{
	ErrNone:                                     "no-error",
	ErrInvalidUTF8:                              "invalid-utf8",
	ErrUnexpectedNullCharacter:                  "unexpected-null-character",
	ErrInvalidFirstCharacterOfTagName:           "invalid-first-character-of-tag-name",
	ErrMissingEndTagName:                        "missing-end-tag-name",
	ErrUnexpectedQuestionMarkInsteadOfTagName:   "unexpected-question-mark-instead-of-tag-name",
	ErrUnexpectedCharInAttributeName:            "unexpected-character-in-attribute-name",
	ErrUnexpectedCharInUnquotedAttributeValue:   "unexpected-character-in-unquoted-attribute-value",
	ErrMissingWhitespaceBetweenAttributes:       "missing-whitespace-between-attributes",
	ErrMissingAttributeValue:                    "missing-attribute-value",
	ErrDuplicateAttribute:                       "duplicate-attribute",
	ErrUnexpectedSolidusInTag:                   "unexpected-solidus-in-tag",
	ErrEndTagWithAttributes:                     "end-tag-with-attributes",
	ErrEndTagWithTrailingSolidus:                "end-tag-with-trailing-solidus",
	ErrAbruptClosingOfEmptyComment:              "abrupt-closing-of-empty-comment",
	ErrNestedComment:                            "nested-comment",
	ErrIncorrectlyClosedComment:                 "incorrectly-closed-comment",
	ErrIncorrectlyOpenedComment:                 "incorrectly-opened-comment",
	ErrMissingDoctypeName:                       "missing-doctype-name",
	ErrInvalidCharacterSequenceAfterDoctypeName: "invalid-character-sequence-after-doctype-name",
	ErrMissingDoctypePublicID:                   "missing-doctype-public-identifier",
	ErrMissingDoctypeSystemID:                   "missing-doctype-system-identifier",
	ErrMissingQuoteBeforeDoctypePublicID:        "missing-quote-before-doctype-public-identifier",
	ErrMissingQuoteBeforeDoctypeSystemID:        "missing-quote-before-doctype-system-identifier",
	ErrAbruptDoctypePublicID:                    "abrupt-doctype-public-identifier",
	ErrAbruptDoctypeSystemID:                    "abrupt-doctype-system-identifier",
	ErrUnexpectedCharAfterDoctypeSystemID:       "unexpected-character-after-doctype-system-identifier",
	ErrCDATAInHTMLContent:                       "cdata-in-html-content",
	ErrEofInTag:                                 "eof-in-tag",
	ErrEofInComment:                             "eof-in-comment",
	ErrEofInDoctype:                             "eof-in-doctype",
	ErrEofInCharacterReference:                  "eof-in-character-reference",
	ErrEofInScript:                              "eof-in-script-html-comment-like-text",
	ErrEofInCDATA:                               "eof-in-cdata",
	ErrEofBeforeTagName:                         "eof-before-tag-name",
	ErrNumericCharRefWithoutSemicolon:           "numeric-character-reference-without-semicolon",
	ErrNumericCharRefNoDigits:                   "numeric-character-reference-with-no-digits",
	ErrNumericCharRefInvalid:                    "invalid-numeric-character-reference",
	ErrNamedCharRefWithoutSemicolon:             "named-character-reference-without-semicolon",
	ErrNamedCharRefInvalid:                      "invalid-named-character-reference",
	ErrUnknownNamedCharRef:                      "unknown-named-character-reference",
	ErrMissingDoctype:                           "missing-doctype",
	ErrQuirkyDoctype:                            "quirky-doctype",
	ErrUnexpectedDoctype:                        "unexpected-doctype",
	ErrUnexpectedStartTag:                       "unexpected-start-tag",
	ErrUnexpectedStartTagInTable:                "unexpected-start-tag-in-table",
	ErrUnexpectedEndTag:                         "unexpected-end-tag",
	ErrMismatchedEndTag:                         "mismatched-end-tag",
	ErrUnexpectedSelfClosingTag:                 "unexpected-self-closing-tag",
	ErrUnexpectedToken:                          "unexpected-token",
	ErrUnexpectedEOF:                            "unexpected-eof",
	ErrTreeDepthExceeded:                        "tree-depth-exceeded",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("parse-error-%d", uint8(c))
}

// ParseError is one recovered error with the position it occurred at.
// Context carries the tag or reference text involved when that helps
// diagnosis; it may be empty.
type ParseError struct {
	Code    ErrorCode
	Pos     spec.Position
	Context string
}

func (e ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%d:%d: %s (%s)", e.Pos.Line, e.Pos.Col, e.Code, e.Context)
	}
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Code)
}

// errorList collects parse errors for one parse. Both the tokenizer
// and the tree constructor append to the same list so errors come out
// in source order.
type errorList struct {
	errs []ParseError
	// full is set once StopOnFirstError has tripped; further errors
	// are dropped and the parse loop winds down.
	full        bool
	stopOnFirst bool
}

func (l *errorList) add(code ErrorCode, pos spec.Position, context string) {
	if l.full {
		return
	}
	l.errs = append(l.errs, ParseError{Code: code, Pos: pos, Context: context})
	if l.stopOnFirst {
		l.full = true
	}
}

func (l *errorList) stopped() bool { return l.full }

// sorted returns the collected errors ordered by source position. The
// tree constructor reports against a token's start while the tokenizer
// reports inside the token, so append order alone is not positional;
// the sort is stable so same-position errors keep their append order.
func (l *errorList) sorted() []ParseError {
	sort.SliceStable(l.errs, func(i, j int) bool {
		return l.errs[i].Pos.Offset < l.errs[j].Pos.Offset
	})
	return l.errs
}
