package eval_test

import (
	"testing"

	. "src.crotchet.dev/pkg/eval"
	"src.crotchet.dev/pkg/eval/errs"
	. "src.crotchet.dev/pkg/eval/evaltest"
	"src.crotchet.dev/pkg/eval/vals"
)

func TestLet(t *testing.T) {
	Test(t,
		That("[let x 1]").DoesNothing(),
		That("[let x [+ 1 2]]").Then("x").Evals(num(3)),
		That("[let x]").Throws(errs.ArityMismatch{What: "arguments of let",
			ValidLow: 2, ValidHigh: 2, Actual: 1}),
		That("[let x 1 2]").Throws(errs.ArityMismatch{What: "arguments of let",
			ValidLow: 2, ValidHigh: 2, Actual: 3}),
		That("[let 1 2]").Throws(errs.TypeError{What: "target of let",
			Want: "symbol", Actual: "number"}),
		That("[let x y]").Throws(errs.UnboundSymbol{Name: "y"}),
	)
}

func TestSet(t *testing.T) {
	Test(t,
		// set outputs the value written.
		That("[let x 1] [set x 2] x").Evals(list(num(2), num(2))),
		// Mutation is visible through frames that do not shadow the name.
		That(`
			[let x 1]
			[let f [fn [] [set x 5]]]
			[f]
			x`).Evals(list(num(5), num(5))),
		That(`
			[let x 1]
			[let f [fn [x] [set x 9]]]
			[f 2]
			x`).Evals(list(num(9), num(1))),
		// Setting an unbound name creates it in the current frame.
		That("[set y 3] y").Evals(list(num(3), num(3))),
		That(`
			[let f [fn [] [set y 3]]]
			[f]
			y`).Throws(errs.UnboundSymbol{Name: "y"}),
		That(`["x" 1]`).Evals(list(str("x"), num(1))),
		That(`[set "x" 1]`).Throws(errs.TypeError{What: "target of set",
			Want: "symbol", Actual: "string"}),
	)
}

func TestSet_Strict(t *testing.T) {
	TestWithSetup(t, func(ev *Evaler) { ev.Strict = true },
		That("[set y 3]").Throws(errs.UnboundSymbol{Name: "y"}),
		That("[let y 1] [set y 3]").Evals(list(num(3))),
	)
}

func TestIf(t *testing.T) {
	Test(t,
		That("[if true 1 2]").Evals(num(1)),
		That("[if [> 1 2] 1 2]").Evals(num(2)),
		// Only the chosen branch is evaluated.
		That(`[if true [print "yes"] [print "no"]]`).Prints("yes\n"),
		That("[if false undefined 2]").Evals(num(2)),
		That("[if 1 2 3]").Throws(errs.TypeError{What: "condition of if",
			Want: "bool", Actual: "number"}),
		That("[if true 1]").Throws(errs.ArityMismatch{What: "arguments of if",
			ValidLow: 3, ValidHigh: 3, Actual: 2}),
	)
}

func TestFn(t *testing.T) {
	Test(t,
		That("[fn [x]]").Throws(errs.ArityMismatch{What: "arguments of fn",
			ValidLow: 2, ValidHigh: -1, Actual: 1}),
		That("[fn x x]").Throws(errs.TypeError{What: "parameter list of fn",
			Want: "list", Actual: "symbol"}),
		That("[fn [1] 1]").Throws(errs.TypeError{What: "parameter of fn",
			Want: "symbol", Actual: "number"}),
		// The body is not evaluated when the closure is created.
		That("[fn [] undefined]").Evals(ReprIs("fn[] undefined")),
	)
}

func TestWhile(t *testing.T) {
	Test(t,
		That(`
			[let i 0]
			[while [< i 3] [set i [+ i 1]]]`).Evals(list(num(3))),
		That(`
			[let i 0]
			[while [< i 2] [print i] [set i [+ i 1]]]`).
			Evals(list(num(2))).Prints("0\n1\n"),
		That("[while false 1]").Evals(vals.Void{}),
		That("[while 1 2]").Throws(errs.TypeError{What: "condition of while",
			Want: "bool", Actual: "number"}),
		That("[while true]").Throws(errs.ArityMismatch{What: "arguments of while",
			ValidLow: 2, ValidHigh: -1, Actual: 1}),
	)
}

func TestBuiltinNamesTakePrecedence(t *testing.T) {
	Test(t,
		That(`
			[let print [fn [x] 99]]
			[print 5]`).Evals(list(num(1))).Prints("5\n"),
	)
}
