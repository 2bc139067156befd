// Package errs contains error types used by the evaluator.
//
// Every type is a distinct Go type, so callers can classify failures with
// errors.As. None of them carries a source position; syntax errors, which
// do, live in the parse package.
package errs

import (
	"fmt"
	"strconv"
)

// UnboundSymbol encodes an error where a symbol has no binding anywhere in the
// active environment chain.
type UnboundSymbol struct {
	Name string
}

func (e UnboundSymbol) Error() string {
	return "unbound symbol: " + e.Name
}

// ArityMismatch encodes an error where the expected number of values is out of
// the valid range.
type ArityMismatch struct {
	What      string
	ValidLow  int
	ValidHigh int // -1 means no upper bound
	Actual    int
}

func (e ArityMismatch) Error() string {
	switch {
	case e.ValidHigh == e.ValidLow:
		return fmt.Sprintf("arity mismatch: %v must be %v, but is %v",
			e.What, nValues(e.ValidLow), nValues(e.Actual))
	case e.ValidHigh == -1:
		return fmt.Sprintf("arity mismatch: %v must be %v or more values, but is %v",
			e.What, e.ValidLow, nValues(e.Actual))
	default:
		return fmt.Sprintf("arity mismatch: %v must be %v to %v values, but is %v",
			e.What, e.ValidLow, e.ValidHigh, nValues(e.Actual))
	}
}

func nValues(n int) string {
	if n == 1 {
		return "1 value"
	}
	return strconv.Itoa(n) + " values"
}

// TypeError encodes an error where a value has the wrong variant.
type TypeError struct {
	What   string
	Want   string
	Actual string
}

func (e TypeError) Error() string {
	return fmt.Sprintf("type error: %v must be %v, but is %v", e.What, e.Want, e.Actual)
}

// OutOfRange encodes an error where an index or a value is out of its valid
// range.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    string
}

func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf("out of range: %v has no valid value, but is %v",
			e.What, e.Actual)
	}
	return fmt.Sprintf("out of range: %s must be from %v to %v, but is %s",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

// ParseError encodes an error where text read at runtime cannot be parsed.
type ParseError struct {
	What   string
	Actual string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error: %v must be a number, but is %q", e.What, e.Actual)
}

// IOError encodes a failure to read from stdin or write to stdout.
type IOError struct {
	Op  string
	Err error
}

func (e IOError) Error() string {
	return fmt.Sprintf("io error: %v: %v", e.Op, e.Err)
}

func (e IOError) Unwrap() error { return e.Err }
