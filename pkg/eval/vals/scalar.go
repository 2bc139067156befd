package vals

import (
	"math"
	"strconv"
)

// Void is the absence of a meaningful result.
type Void struct{}

// Num is the sole numeric type.
type Num float64

// Bool is the result of conditions and comparisons.
type Bool bool

// Symbol is an identifier. It evaluates to the value bound to its name.
type Symbol string

// Str is literal text.
type Str string

func (Void) Kind() Kind   { return VoidKind }
func (Num) Kind() Kind    { return NumberKind }
func (Bool) Kind() Kind   { return BoolKind }
func (Symbol) Kind() Kind { return SymbolKind }
func (Str) Kind() Kind    { return StringKind }

// Repr returns an empty string.
func (Void) Repr() string { return "" }

// Repr returns the shortest decimal representation of the number, without
// exponent. Infinities are rendered as inf and -inf, and NaN as NaN.
func (n Num) Repr() string { return FormatNum(float64(n)) }

// Repr returns "true" or "false".
func (b Bool) Repr() string { return strconv.FormatBool(bool(b)) }

// Repr returns the name of the symbol.
func (s Symbol) Repr() string { return string(s) }

// Repr returns the text itself, without quotes.
func (s Str) Repr() string { return string(s) }

// FormatNum formats a float64 the way numbers are rendered.
func FormatNum(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
