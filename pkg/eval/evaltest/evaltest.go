// Package evaltest provides a framework for testing crotchet code.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t,
//		That("[+ 1 2]").Evals(vals.Num(3)),
//		That(`[print "x"]`).Evals(vals.Num(1)).Prints("x\n"))
//
// If some setup is needed, use the TestWithSetup function instead.
package evaltest

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.crotchet.dev/pkg/eval"
	"src.crotchet.dev/pkg/eval/vals"
	"src.crotchet.dev/pkg/parse"
	"src.crotchet.dev/pkg/tt"
)

// Case is a test case that can be used in Test.
type Case struct {
	codes []string
	setup func(ev *eval.Evaler)
	input string
	want  result
}

type result struct {
	Value vals.Value
	Out   []byte
	Err   error
}

// That returns a new Case with the specified source code. Multiple arguments
// are joined with newlines. To specify multiple pieces of code that are
// evaluated separately, use the Then method to append code pieces.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "[+ 1 2]" evaluates to 3 reads:
//
//	That("[+ 1 2]").Evals(vals.Num(3))
func That(lines ...string) Case {
	return Case{codes: []string{strings.Join(lines, "\n")}}
}

// Then returns a new Case that evaluates the given code in addition, in the
// same Evaler. Only the value of the last piece is checked.
func (c Case) Then(lines ...string) Case {
	c.codes = append(c.codes, strings.Join(lines, "\n"))
	return c
}

// WithSetup returns a new Case with the given setup function executed on the
// Evaler before the code is evaluated.
func (c Case) WithSetup(f func(*eval.Evaler)) Case {
	c.setup = f
	return c
}

// WithInput returns a new Case where the input builtin reads from the given
// text.
func (c Case) WithInput(s string) Case {
	c.input = s
	return c
}

// Evals returns an altered Case that requires the code to evaluate to the
// given value. The value may be a tt.Matcher.
func (c Case) Evals(v vals.Value) Case {
	c.want.Value = v
	return c
}

// DoesNothing returns an altered Case that requires the code to evaluate to
// Void without printing anything.
func (c Case) DoesNothing() Case {
	return c.Evals(vals.Void{})
}

// Prints returns an altered Case that requires the code to write the
// specified output.
func (c Case) Prints(s string) Case {
	c.want.Out = []byte(s)
	return c
}

// Throws returns an altered Case that requires the code to fail with the
// given error. The error may be a matcher constructed by functions like
// ErrorWithType.
func (c Case) Throws(err error) Case {
	c.want.Err = err
	return c
}

// Test runs test cases. For each test case, a new Evaler is created with
// EvalerWithIO.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	TestWithSetup(t, func(*eval.Evaler) {}, tests...)
}

// TestWithSetup runs test cases. For each test case, a new Evaler is created
// with EvalerWithIO and passed to the setup function.
func TestWithSetup(t *testing.T, setup func(*eval.Evaler), tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(strings.Join(tc.codes, "\n"), func(t *testing.T) {
			t.Helper()
			ev, out := EvalerWithIO(tc.input)
			setup(ev)
			if tc.setup != nil {
				tc.setup(ev)
			}

			r := evalAndCollect(t, ev, tc.codes)
			r.Out = out.Bytes()

			if tc.want.Err == nil && r.Err != nil {
				t.Fatalf("got error %v (%T), want none", r.Err, r.Err)
			}
			if !matchErr(tc.want.Err, r.Err) {
				t.Errorf("got error %v (%T), want %v", r.Err, r.Err, tc.want.Err)
			}
			if tc.want.Value != nil && !match(tc.want.Value, r.Value) {
				t.Errorf("got value %s, want %s (-want +got):\n%s",
					vals.Repr(r.Value), reprWant(tc.want.Value),
					cmp.Diff(tc.want.Value, r.Value, tt.CommonCmpOpt))
			}
			if tc.want.Out != nil && !bytes.Equal(tc.want.Out, r.Out) {
				t.Errorf("got output %q, want %q", r.Out, tc.want.Out)
			}
		})
	}
}

// EvalerWithIO returns an Evaler that reads input from the given text and
// writes output to the returned buffer, with the random source seeded with 1.
func EvalerWithIO(input string) (*eval.Evaler, *bytes.Buffer) {
	ev := eval.NewEvaler()
	var out bytes.Buffer
	ev.In = bufio.NewReader(strings.NewReader(input))
	ev.Out = &out
	ev.Seed(1)
	return ev, &out
}

func evalAndCollect(t *testing.T, ev *eval.Evaler, codes []string) result {
	var r result
	for _, code := range codes {
		v, err := ev.Eval(parse.Source{Name: "[test]", Code: code})
		if parse.UnpackError(err) != nil {
			t.Fatalf("Parse(%q) error: %s", code, err)
		}
		r.Value, r.Err = v, err
		if err != nil {
			break
		}
	}
	return r
}

func match(want, got vals.Value) bool {
	if m, ok := want.(tt.Matcher); ok {
		return m.Match(got)
	}
	return vals.Equal(want, got)
}

func reprWant(v vals.Value) string {
	if _, ok := v.(tt.Matcher); ok {
		return "a match"
	}
	return vals.Repr(v)
}
