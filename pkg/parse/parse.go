// Package parse implements the tokenizer and parser of crotchet.
//
// Crotchet is homoiconic: the parser does not build a separate syntax tree,
// but the same values the evaluator works with. Brackets become vals.List,
// numbers vals.Num, string literals vals.Str, the words true and false
// vals.Bool, and all other words vals.Symbol.
package parse

import (
	"errors"
	"fmt"

	"src.crotchet.dev/pkg/diag"
	"src.crotchet.dev/pkg/eval/vals"
)

// Error is a syntax error.
type Error struct {
	Diag diag.Error
	// Partial is true if the error is caused by the source ending early, so
	// that appending more text may make it valid.
	Partial bool
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string { return e.Diag.Error() }

// Show shows the error with its source context.
func (e *Error) Show(indent string) string { return e.Diag.Show(indent) }

// Range returns the range of the error.
func (e *Error) Range() diag.Ranging { return e.Diag.Range() }

// Message returns the error message without position information.
func (e *Error) Message() string { return e.Diag.Message }

func newError(src Source, err error, r diag.Ranger, partial bool) *Error {
	return &Error{
		Diag: diag.Error{
			Type:    "syntax error",
			Message: err.Error(),
			Context: *diag.NewContext(src.Name, src.Code, r),
		},
		Partial: partial,
	}
}

// UnpackError returns the *Error in the chain of err, or nil if there is none.
func UnpackError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

var (
	errEmpty            = errors.New("empty program")
	errUnclosed         = errors.New("unbalanced brackets: '[' not closed")
	errUnexpectedRBrack = errors.New("unbalanced brackets: unexpected ']'")
)

// Parse parses the source into a single value.
//
// A source with exactly one top-level form is parsed as that form. A source
// with several top-level forms is parsed as a List of them, so that a file
// like
//
//	[let x 1]
//	[print x]
//
// is equivalent to [[let x 1] [print x]].
//
// The returned error, if not nil, has type *Error.
func Parse(src Source) (vals.Value, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, newError(src, errEmpty, diag.PointRanging(len(src.Code)), true)
	}
	ps := &parser{src: src, tokens: tokens}
	var forms []vals.Value
	for ps.pos < len(ps.tokens) {
		form, err := ps.parseForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	if len(forms) == 1 {
		return forms[0], nil
	}
	return vals.MakeList(forms...), nil
}

type parser struct {
	src    Source
	tokens []Token
	pos    int
}

func (ps *parser) parseForm() (vals.Value, error) {
	tok := ps.tokens[ps.pos]
	ps.pos++
	switch tok.Type {
	case NumberToken:
		return vals.Num(tok.Num), nil
	case StringToken:
		return vals.Str(tok.Text), nil
	case SymbolToken:
		switch tok.Text {
		case "true":
			return vals.Bool(true), nil
		case "false":
			return vals.Bool(false), nil
		}
		return vals.Symbol(tok.Text), nil
	case LBracketToken:
		var elems []vals.Value
		for {
			if ps.pos == len(ps.tokens) {
				return nil, newError(ps.src, errUnclosed, tok, true)
			}
			if ps.tokens[ps.pos].Type == RBracketToken {
				ps.pos++
				return vals.MakeList(elems...), nil
			}
			elem, err := ps.parseForm()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
	case RBracketToken:
		return nil, newError(ps.src, errUnexpectedRBrack, tok, false)
	default:
		panic(fmt.Sprintf("unknown token type %v", tok.Type))
	}
}
