package eval

import (
	"math"

	"src.crotchet.dev/pkg/eval/errs"
	"src.crotchet.dev/pkg/eval/vals"
)

// Binary infix operators. They all take exactly two Number operands.
type opKind int

const (
	opAdd opKind = iota
	opSub
	opMul
	opDiv
	opRem
	opLT
	opLE
	opGT
	opGE
	opEq
	opNE
)

var ops = map[string]opKind{
	"+": opAdd, "-": opSub, "*": opMul, "/": opDiv, "%": opRem,
	"<": opLT, "<=": opLE, ">": opGT, ">=": opGE, "=": opEq, "!=": opNE,
}

func (ev *Evaler) evalOp(op opKind, l vals.List, env *Env) (vals.Value, error) {
	name := vals.Repr(l.Index(0))
	if l.Len() != 3 {
		return nil, errs.ArityMismatch{What: "operands of " + name,
			ValidLow: 2, ValidHigh: 2, Actual: l.Len() - 1}
	}
	a, err := ev.evalNum("left operand of "+name, l.Index(1), env)
	if err != nil {
		return nil, err
	}
	b, err := ev.evalNum("right operand of "+name, l.Index(2), env)
	if err != nil {
		return nil, err
	}
	return op.apply(a, b), nil
}

// Division and remainder follow IEEE 754; dividing by zero yields an infinity
// or NaN.
func (op opKind) apply(a, b float64) vals.Value {
	switch op {
	case opAdd:
		return vals.Num(a + b)
	case opSub:
		return vals.Num(a - b)
	case opMul:
		return vals.Num(a * b)
	case opDiv:
		return vals.Num(a / b)
	case opRem:
		return vals.Num(math.Mod(a, b))
	case opLT:
		return vals.Bool(a < b)
	case opLE:
		return vals.Bool(a <= b)
	case opGT:
		return vals.Bool(a > b)
	case opGE:
		return vals.Bool(a >= b)
	case opEq:
		return vals.Bool(a == b)
	case opNE:
		return vals.Bool(a != b)
	default:
		panic("unreachable")
	}
}

func (ev *Evaler) evalNum(what string, form vals.Value, env *Env) (float64, error) {
	v, err := ev.eval(form, env)
	if err != nil {
		return 0, err
	}
	n, ok := v.(vals.Num)
	if !ok {
		return 0, errs.TypeError{What: what, Want: "number", Actual: vals.KindOf(v).String()}
	}
	return float64(n), nil
}
