package eval

import (
	"fmt"
	"math"

	"src.crotchet.dev/pkg/eval/errs"
	"src.crotchet.dev/pkg/eval/vals"
)

// Numerical builtins.

func (ev *Evaler) rand(args []vals.Value, env *Env) (vals.Value, error) {
	if err := checkArity("rand", args, 2, 2); err != nil {
		return nil, err
	}
	lo, err := ev.evalNum("lower bound of rand", args[0], env)
	if err != nil {
		return nil, err
	}
	hi, err := ev.evalNum("upper bound of rand", args[1], env)
	if err != nil {
		return nil, err
	}
	if !(lo < hi) {
		return nil, errs.TypeError{What: "range of rand", Want: "non-empty",
			Actual: fmt.Sprintf("[%s, %s)", vals.FormatNum(lo), vals.FormatNum(hi))}
	}
	x := lo + ev.Rand.Float64()*(hi-lo)
	if x >= hi {
		// Rounding can land on hi when the range is tiny compared to its
		// bounds.
		x = math.Nextafter(hi, lo)
	}
	return vals.Num(x), nil
}

func (ev *Evaler) round(args []vals.Value, env *Env) (vals.Value, error) {
	if err := checkArity("round", args, 1, 1); err != nil {
		return nil, err
	}
	n, err := ev.evalNum("argument of round", args[0], env)
	if err != nil {
		return nil, err
	}
	return vals.Num(math.Round(n)), nil
}
