package eval

import (
	"src.crotchet.dev/pkg/eval/errs"
	"src.crotchet.dev/pkg/eval/vals"
)

// Data list builtins. They work on ListData only; code Lists are never
// accepted, so manipulating data cannot change code.

func (ev *Evaler) list(args []vals.Value, env *Env) (vals.Value, error) {
	elems := make([]vals.Value, len(args))
	for i, arg := range args {
		v, err := ev.eval(arg, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return vals.MakeListData(elems...), nil
}

func (ev *Evaler) first(args []vals.Value, env *Env) (vals.Value, error) {
	d, err := ev.evalListData("first", args, env)
	if err != nil {
		return nil, err
	}
	if d.Len() == 0 {
		return nil, errs.OutOfRange{What: "index", ValidLow: 0, ValidHigh: -1, Actual: "0"}
	}
	return d.Index(0), nil
}

func (ev *Evaler) rest(args []vals.Value, env *Env) (vals.Value, error) {
	d, err := ev.evalListData("rest", args, env)
	if err != nil {
		return nil, err
	}
	return d.Rest(), nil
}

func (ev *Evaler) len(args []vals.Value, env *Env) (vals.Value, error) {
	d, err := ev.evalListData("len", args, env)
	if err != nil {
		return nil, err
	}
	return vals.Num(d.Len()), nil
}

func (ev *Evaler) evalListData(name string, args []vals.Value, env *Env) (vals.ListData, error) {
	if err := checkArity(name, args, 1, 1); err != nil {
		return vals.ListData{}, err
	}
	v, err := ev.eval(args[0], env)
	if err != nil {
		return vals.ListData{}, err
	}
	d, ok := v.(vals.ListData)
	if !ok {
		return vals.ListData{}, errs.TypeError{What: "argument of " + name,
			Want: "list-data", Actual: vals.KindOf(v).String()}
	}
	return d, nil
}
