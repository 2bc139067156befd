package eval_test

import (
	"testing"

	. "src.crotchet.dev/pkg/eval"
	"src.crotchet.dev/pkg/eval/errs"
	. "src.crotchet.dev/pkg/eval/evaltest"
	"src.crotchet.dev/pkg/eval/vals"
)

func TestClosure(t *testing.T) {
	Test(t,
		// Free variables resolve in the frame the closure was created in.
		That(`
			[let make-adder [fn [n] [fn [m] [+ n m]]]]
			[let add5 [make-adder 5]]
			[add5 10]`).Evals(list(num(15))),
		// ... even when called from a frame with a different binding.
		That(`
			[let x 1]
			[let get-x [fn [] x]]
			[let g [fn [x] [get-x]]]
			[g 100]`).Evals(list(num(1))),
		// Parameters shadow outer bindings.
		That(`
			[let x 1]
			[let f [fn [x] [* x 10]]]
			[f 2]
			x`).Evals(list(num(20), num(1))),
		// Arguments are evaluated in the caller's frame.
		That(`
			[let a 3]
			[let f [fn [a b] [+ a b]]]
			[f 1 a]`).Evals(list(num(4))),
		// Several body forms are evaluated like a list.
		That(`
			[let f [fn [a] [print a] [* a 2]]]
			[f 3]`).Evals(list(list(num(1), num(6)))).Prints("3\n"),
		// Too few arguments.
		That(`
			[let f [fn [a b] a]]
			[f 1]`).Throws(errs.ArityMismatch{What: "arguments",
			ValidLow: 2, ValidHigh: -1, Actual: 1}),
		// Extra arguments are ignored.
		That(`
			[let f [fn [a] a]]
			[f 1 2]`).Evals(list(num(1))),
		// Each call gets a fresh frame.
		That(`
			[let f [fn [] [let local 1]]]
			[f]
			local`).Throws(errs.UnboundSymbol{Name: "local"}),
	)
}

func TestClosure_Repr(t *testing.T) {
	Test(t,
		That("[fn [] 1]").Evals(ReprIs("fn[] 1")),
		That("[fn [a b] [+ a b]]").Evals(ReprIs("fn[a b] [+ a b]")),
		That("[fn [a] [print a] a]").Evals(ReprIs("fn[a] [print a] a")),
		That("[fn [] [print 1] [print 2]]").Evals(ReprIs("fn[] [print 1] [print 2]")),
		// A single List body keeps its brackets.
		That("[fn [] [[print 1] 2]]").Evals(ReprIs("fn[] [[print 1] 2]")),
	)
}

func TestClosure_Equal(t *testing.T) {
	ev, _ := EvalerWithIO("")
	v1, err := ev.Eval(srcOf("[fn [x] x]"))
	if err != nil {
		t.Fatal(err)
	}
	v2, err := ev.Eval(srcOf("[fn [x] x]"))
	if err != nil {
		t.Fatal(err)
	}
	if !vals.Equal(v1, v1) {
		t.Errorf("closure not equal to itself")
	}
	if vals.Equal(v1, v2) {
		t.Errorf("distinct closures are equal")
	}
	if c, ok := v1.(*Closure); !ok || c.Captured != ev.Global || vals.KindOf(c) != vals.ClosureKind {
		t.Errorf("got %#v, want closure capturing the global frame", v1)
	}
}
