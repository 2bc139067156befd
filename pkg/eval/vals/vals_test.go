package vals

import (
	"math"
	"testing"

	"src.crotchet.dev/pkg/tt"
)

func TestKind(t *testing.T) {
	tt.Test(t, tt.Fn("KindOf", KindOf), tt.Table{
		tt.Args(nil).Rets(VoidKind),
		tt.Args(Void{}).Rets(VoidKind),
		tt.Args(Num(1)).Rets(NumberKind),
		tt.Args(Bool(true)).Rets(BoolKind),
		tt.Args(Symbol("x")).Rets(SymbolKind),
		tt.Args(Str("x")).Rets(StringKind),
		tt.Args(MakeList()).Rets(ListKind),
		tt.Args(MakeListData()).Rets(ListDataKind),
	})
	tt.Test(t, tt.Fn("Kind.String", Kind.String), tt.Table{
		tt.Args(NumberKind).Rets("number"),
		tt.Args(ListDataKind).Rets("list-data"),
		tt.Args(ClosureKind).Rets("fn"),
		tt.Args(Kind(200)).Rets("!!unknown"),
	})
}

func TestRepr(t *testing.T) {
	tt.Test(t, tt.Fn("Repr", Repr), tt.Table{
		tt.Args(nil).Rets(""),
		tt.Args(Void{}).Rets(""),
		tt.Args(Num(3)).Rets("3"),
		tt.Args(Num(314)).Rets("314"),
		tt.Args(Num(0.1)).Rets("0.1"),
		tt.Args(Num(-2.5)).Rets("-2.5"),
		tt.Args(Num(1e21)).Rets("1000000000000000000000"),
		tt.Args(Num(math.Inf(1))).Rets("inf"),
		tt.Args(Num(math.Inf(-1))).Rets("-inf"),
		tt.Args(Num(math.NaN())).Rets("NaN"),
		tt.Args(Bool(true)).Rets("true"),
		tt.Args(Bool(false)).Rets("false"),
		tt.Args(Symbol("foo")).Rets("foo"),
		tt.Args(Str("hello world")).Rets("hello world"),
		tt.Args(MakeList()).Rets("[]"),
		tt.Args(List{}).Rets("[]"),
		tt.Args(MakeList(Symbol("+"), Num(1), Num(2))).Rets("[+ 1 2]"),
		tt.Args(MakeList(MakeList(Symbol("let"), Symbol("x"), Num(1)), Symbol("x"))).
			Rets("[[let x 1] x]"),
		tt.Args(MakeListData(Num(1), Str("a"), Bool(false))).Rets("[1 a false]"),
	})
}

func TestEqual(t *testing.T) {
	nan := Num(math.NaN())
	tt.Test(t, tt.Fn("Equal", Equal), tt.Table{
		tt.Args(nil, nil).Rets(true),
		tt.Args(Void{}, Void{}).Rets(true),
		tt.Args(Void{}, nil).Rets(false),
		tt.Args(Num(1), Num(1)).Rets(true),
		tt.Args(Num(1), Num(2)).Rets(false),
		tt.Args(nan, nan).Rets(false),
		tt.Args(Bool(true), Bool(true)).Rets(true),
		tt.Args(Symbol("a"), Str("a")).Rets(false),
		tt.Args(Str("a"), Str("a")).Rets(true),

		tt.Args(MakeList(Num(1), Num(2)), MakeList(Num(1), Num(2))).Rets(true),
		tt.Args(MakeList(Num(1), Num(2)), MakeList(Num(2), Num(1))).Rets(false),
		tt.Args(MakeList(Num(1)), MakeList(Num(1), Num(2))).Rets(false),
		tt.Args(MakeList(), List{}).Rets(true),
		tt.Args(MakeList(MakeList(Num(1))), MakeList(MakeList(Num(1)))).Rets(true),
		// Code and data are never equal, even with the same elements.
		tt.Args(MakeList(Num(1)), MakeListData(Num(1))).Rets(false),
		tt.Args(MakeListData(Num(1)), MakeListData(Num(1))).Rets(true),
	})
}

func TestList(t *testing.T) {
	l := MakeList(Num(1), Symbol("x"), Str("s"))
	if l.Len() != 3 {
		t.Errorf("Len() -> %d, want 3", l.Len())
	}
	if got := l.Index(1); got != Symbol("x") {
		t.Errorf("Index(1) -> %v, want x", got)
	}
	elems := l.Elems()
	elems[0] = Num(100)
	if got := l.Index(0); got != Num(1) {
		t.Errorf("modifying Elems() changed the list: Index(0) -> %v", got)
	}
}

func TestListData_Rest(t *testing.T) {
	tt.Test(t, tt.Fn("ListData.Rest", ListData.Rest), tt.Table{
		tt.Args(MakeListData()).Rets(ListData{}),
		tt.Args(MakeListData(Num(1))).Rets(ListData{}),
		tt.Args(MakeListData(Num(1), Num(2), Num(3))).Rets(MakeListData(Num(2), Num(3))),
	})

	d := MakeListData(Num(1), Num(2), Num(3))
	for n := d.Len(); n > 0; n-- {
		rest := d.Rest()
		if rest.Len() != n-1 {
			t.Errorf("len of rest of %s is %d, want %d", d.Repr(), rest.Len(), n-1)
		}
		d = rest
	}
}

func TestIndexOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Index on empty ListData did not panic")
		}
	}()
	MakeListData().Index(0)
}
