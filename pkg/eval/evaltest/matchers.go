package evaltest

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"src.crotchet.dev/pkg/eval/vals"
	"src.crotchet.dev/pkg/tt"
)

// ValueMatcher is a value that can be passed to Case.Evals and has its own
// matching semantics.
type ValueMatcher interface {
	vals.Value
	tt.Matcher
}

// Anything matches any value.
var Anything ValueMatcher = anything{}

type anything struct{}

func (anything) Kind() vals.Kind        { return vals.VoidKind }
func (anything) Repr() string           { return "<anything>" }
func (anything) Match(tt.RetValue) bool { return true }

// ApproximatelyNum matches a Number within 1e-9 of the given value.
func ApproximatelyNum(f float64) ValueMatcher { return approxNum{f} }

type approxNum struct{ f float64 }

func (approxNum) Kind() vals.Kind { return vals.NumberKind }
func (m approxNum) Repr() string  { return fmt.Sprintf("~%v", m.f) }
func (m approxNum) Match(v tt.RetValue) bool {
	n, ok := v.(vals.Num)
	return ok && math.Abs(float64(n)-m.f) < 1e-9
}

// NumInRange matches a Number in [lo, hi).
func NumInRange(lo, hi float64) ValueMatcher { return numInRange{lo, hi} }

type numInRange struct{ lo, hi float64 }

func (numInRange) Kind() vals.Kind { return vals.NumberKind }
func (m numInRange) Repr() string  { return fmt.Sprintf("[%v, %v)", m.lo, m.hi) }
func (m numInRange) Match(v tt.RetValue) bool {
	n, ok := v.(vals.Num)
	return ok && m.lo <= float64(n) && float64(n) < m.hi
}

// ReprIs matches any value whose Repr is the given string.
func ReprIs(s string) ValueMatcher { return reprIs{s} }

type reprIs struct{ s string }

func (reprIs) Kind() vals.Kind { return vals.VoidKind }
func (m reprIs) Repr() string  { return m.s }
func (m reprIs) Match(v tt.RetValue) bool {
	val, ok := v.(vals.Value)
	return ok && vals.Repr(val) == m.s
}

// ErrorMatcher is an error that can be passed to Case.Throws to match
// errors more loosely.
type ErrorMatcher interface {
	error
	matchError(error) bool
}

// AnyError is an error that can be passed to Case.Throws to match any
// non-nil error.
var AnyError = anyError{}

type anyError struct{}

func (anyError) Error() string           { return "any error" }
func (anyError) matchError(e error) bool { return e != nil }

// ErrorWithType returns an error that can be passed to Case.Throws to match
// any error with the same type as the argument, anywhere in the chain.
func ErrorWithType(v error) ErrorMatcher { return errWithType{v} }

type errWithType struct{ v error }

func (e errWithType) Error() string { return fmt.Sprintf("<error with type %T>", e.v) }

func (e errWithType) matchError(e2 error) bool {
	want := reflect.TypeOf(e.v)
	for ; e2 != nil; e2 = errors.Unwrap(e2) {
		if reflect.TypeOf(e2) == want {
			return true
		}
	}
	return false
}

// ErrorWithMessage returns an error that can be passed to Case.Throws to match
// any error with the given message.
func ErrorWithMessage(msg string) ErrorMatcher { return errWithMessage{msg} }

type errWithMessage struct{ msg string }

func (e errWithMessage) Error() string { return "<error with message " + e.msg + ">" }

func (e errWithMessage) matchError(e2 error) bool {
	return e2 != nil && e.msg == e2.Error()
}

func matchErr(want, got error) bool {
	if want == nil {
		return got == nil
	}
	if matcher, ok := want.(ErrorMatcher); ok {
		return matcher.matchError(got)
	}
	return reflect.DeepEqual(want, got)
}
