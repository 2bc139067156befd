package parse

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	f.Add("[+ 1 2]")
	f.Add("[[let sqr [fn [r] [* r r]]] [sqr 10]]")
	f.Add(`[print "x" ; comment`)
	f.Fuzz(func(t *testing.T, code string) {
		v, err := Parse(Source{Name: "fuzz", Code: code})
		if (v == nil) == (err == nil) {
			t.Errorf("Parse(%q) -> %v, %v; want exactly one of value and error", code, v, err)
		}
	})
}
