package eval

import (
	"src.crotchet.dev/pkg/eval/errs"
	"src.crotchet.dev/pkg/eval/vals"
)

// Special forms. Their arguments are not evaluated before dispatch.

func (ev *Evaler) evalLet(args []vals.Value, env *Env) (vals.Value, error) {
	name, v, err := ev.evalBinding("let", args, env)
	if err != nil {
		return nil, err
	}
	env.Define(name, v)
	return vals.Void{}, nil
}

func (ev *Evaler) evalSet(args []vals.Value, env *Env) (vals.Value, error) {
	name, v, err := ev.evalBinding("set", args, env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(name, v, ev.Strict); err != nil {
		return nil, err
	}
	return v, nil
}

// Checks the shape [name expr] shared by let and set, and evaluates expr.
func (ev *Evaler) evalBinding(form string, args []vals.Value, env *Env) (string, vals.Value, error) {
	if err := checkArity(form, args, 2, 2); err != nil {
		return "", nil, err
	}
	name, ok := args[0].(vals.Symbol)
	if !ok {
		return "", nil, errs.TypeError{What: "target of " + form,
			Want: "symbol", Actual: vals.KindOf(args[0]).String()}
	}
	v, err := ev.eval(args[1], env)
	if err != nil {
		return "", nil, err
	}
	return string(name), v, nil
}

func (ev *Evaler) evalIf(args []vals.Value, env *Env) (vals.Value, error) {
	if err := checkArity("if", args, 3, 3); err != nil {
		return nil, err
	}
	cond, err := ev.evalCond("if", args[0], env)
	if err != nil {
		return nil, err
	}
	if cond {
		return ev.eval(args[1], env)
	}
	return ev.eval(args[2], env)
}

func (ev *Evaler) evalCond(form string, v vals.Value, env *Env) (bool, error) {
	v, err := ev.eval(v, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(vals.Bool)
	if !ok {
		return false, errs.TypeError{What: "condition of " + form,
			Want: "bool", Actual: vals.KindOf(v).String()}
	}
	return bool(b), nil
}

func evalFn(args []vals.Value, env *Env) (vals.Value, error) {
	if err := checkArity("fn", args, 2, -1); err != nil {
		return nil, err
	}
	paramList, ok := args[0].(vals.List)
	if !ok {
		return nil, errs.TypeError{What: "parameter list of fn",
			Want: "list", Actual: vals.KindOf(args[0]).String()}
	}
	params := make([]string, paramList.Len())
	for i, p := range paramList.Elems() {
		name, ok := p.(vals.Symbol)
		if !ok {
			return nil, errs.TypeError{What: "parameter of fn",
				Want: "symbol", Actual: vals.KindOf(p).String()}
		}
		params[i] = string(name)
	}
	c := &Closure{Params: params, Captured: env}
	if len(args) == 2 {
		c.Body = args[1]
	} else {
		c.Body = vals.MakeList(args[1:]...)
		c.wrapped = true
	}
	return c, nil
}

func (ev *Evaler) evalWhile(args []vals.Value, env *Env) (vals.Value, error) {
	if err := checkArity("while", args, 2, -1); err != nil {
		return nil, err
	}
	var last vals.Value = vals.Void{}
	for {
		cond, err := ev.evalCond("while", args[0], env)
		if err != nil {
			return nil, err
		}
		if !cond {
			return last, nil
		}
		for _, form := range args[1:] {
			last, err = ev.eval(form, env)
			if err != nil {
				return nil, err
			}
		}
	}
}
