package eval

import (
	"strings"

	"src.crotchet.dev/pkg/eval/errs"
	"src.crotchet.dev/pkg/eval/vals"
)

// Closure is a function value created by the fn special form.
type Closure struct {
	Params []string
	// Body is the single form evaluated on each call. A fn with several body
	// forms has them wrapped in a List.
	Body vals.Value
	// Captured is the frame that was innermost when the Closure was created.
	Captured *Env
	// Set when Body is a List made from several body forms.
	wrapped bool
}

var _ vals.Value = (*Closure)(nil)

func (*Closure) Kind() vals.Kind { return vals.ClosureKind }

// Repr returns "fn[" followed by the parameters, "]" and the body forms
// separated by spaces.
func (c *Closure) Repr() string {
	body := vals.Repr(c.Body)
	if l, ok := c.Body.(vals.List); ok && c.wrapped {
		forms := make([]string, l.Len())
		for i, form := range l.Elems() {
			forms[i] = vals.Repr(form)
		}
		body = strings.Join(forms, " ")
	}
	return "fn[" + strings.Join(c.Params, " ") + "] " + body
}

// Equal reports whether other is the same Closure. Closures have identity:
// two Closures created by evaluating the same fn form are different.
func (c *Closure) Equal(other vals.Value) bool {
	o, ok := other.(*Closure)
	return ok && o == c
}

// Calls c with the given arguments. Parameters are bound in a new frame
// extending the captured frame; extra arguments are ignored.
func (ev *Evaler) call(c *Closure, args []vals.Value) (vals.Value, error) {
	if len(args) < len(c.Params) {
		return nil, errs.ArityMismatch{What: "arguments",
			ValidLow: len(c.Params), ValidHigh: -1, Actual: len(args)}
	}
	frame := NewEnv(c.Captured)
	for i, param := range c.Params {
		frame.Define(param, args[i])
	}
	return ev.eval(c.Body, frame)
}
