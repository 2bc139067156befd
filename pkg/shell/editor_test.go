package shell

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"src.crotchet.dev/pkg/eval"
	"src.crotchet.dev/pkg/eval/vals"
	"src.crotchet.dev/pkg/tt"
)

var names = []string{"first", "fn", "foo", "if", "input", "print"}

func TestCompleteWord(t *testing.T) {
	tt.Test(t, tt.Fn("completeWord", completeWord), tt.Table{
		tt.Args("f", 1, names).Rets("", []string{"first", "fn", "foo"}, ""),
		tt.Args("[fi", 3, names).Rets("[", []string{"first"}, ""),
		tt.Args("[print [i", 9, names).Rets("[print [", []string{"if", "input"}, ""),
		tt.Args("[i x]", 2, names).Rets("[", []string{"if", "input"}, " x]"),
		tt.Args("[xyz", 4, names).Rets("[", []string(nil), ""),
		tt.Args("\"pr", 3, names).Rets("\"", []string{"print"}, ""),
		// pos past the end of line
		tt.Args("fo", 10, names).Rets("", []string{"foo"}, ""),
	})
}

func TestCompletionNames(t *testing.T) {
	ev := eval.NewEvaler()
	ev.Global.Define("zeta", vals.Num(1))
	ev.Global.Define("print", vals.Num(2))
	got := completionNames(ev)

	if got[len(got)-1] != "zeta" {
		t.Errorf("last name is %q, want zeta", got[len(got)-1])
	}
	n := 0
	for _, name := range got {
		if name == "print" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("print appears %d times, want 1", n)
	}
}

func TestMinEditor(t *testing.T) {
	var out strings.Builder
	ed := newMinEditor(bufio.NewReader(strings.NewReader("a\r\nb\nc")), &out)

	for _, want := range []string{"a", "b", "c"} {
		line, err := ed.ReadLine("> ")
		if line != want || err != nil {
			t.Errorf("ReadLine() -> (%q, %v), want (%q, nil)", line, err, want)
		}
	}
	if _, err := ed.ReadLine(""); err != io.EOF {
		t.Errorf("ReadLine() at end -> %v, want io.EOF", err)
	}
	if out.String() != "> > > " {
		t.Errorf("prompts written %q", out.String())
	}
}
