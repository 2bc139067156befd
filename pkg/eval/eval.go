// Package eval evaluates crotchet code.
//
// Code and data share one representation: the parser produces the same
// values that the evaluator consumes and returns. Evaluation is a recursive
// walk over those values in an environment of nested frames.
package eval

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"time"

	"src.crotchet.dev/pkg/eval/errs"
	"src.crotchet.dev/pkg/eval/vals"
	"src.crotchet.dev/pkg/logutil"
	"src.crotchet.dev/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// Evaler holds the state that persists between evaluations of different
// pieces of code, such as the bindings in the global frame. An Evaler is not
// safe for concurrent use.
type Evaler struct {
	// Global is the root frame. It starts out empty.
	Global *Env
	// Strict makes set fail with errs.UnboundSymbol when the name is not
	// bound, instead of creating a binding in the current frame.
	Strict bool

	// In is where the input builtin reads lines from.
	In *bufio.Reader
	// Out is where the print and input builtins write to. If Out has a Flush
	// method, it is called after writing an input prompt.
	Out io.Writer
	// Rand is the source of the rand builtin.
	Rand *rand.Rand
}

// NewEvaler creates a new Evaler reading from os.Stdin and writing to
// os.Stdout, with the random source seeded from the current time.
func NewEvaler() *Evaler {
	return &Evaler{
		Global: NewEnv(nil),
		In:     bufio.NewReader(os.Stdin),
		Out:    os.Stdout,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed reseeds the source of the rand builtin, making its results
// deterministic.
func (ev *Evaler) Seed(seed int64) {
	ev.Rand = rand.New(rand.NewSource(seed))
}

// Eval parses src and evaluates it in the global frame. Syntax errors are
// returned as *parse.Error.
func (ev *Evaler) Eval(src parse.Source) (vals.Value, error) {
	form, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	logger.Printf("evaluating %s", src.Name)
	return ev.EvalIn(form, ev.Global)
}

// EvalIn evaluates an already parsed form in the given frame.
func (ev *Evaler) EvalIn(form vals.Value, env *Env) (vals.Value, error) {
	return ev.eval(form, env)
}

func (ev *Evaler) eval(v vals.Value, env *Env) (vals.Value, error) {
	switch v := v.(type) {
	case nil:
		return vals.Void{}, nil
	case vals.Symbol:
		if value, ok := env.Lookup(string(v)); ok {
			return value, nil
		}
		return nil, errs.UnboundSymbol{Name: string(v)}
	case vals.List:
		return ev.evalList(v, env)
	default:
		// Void, Num, Bool, Str, ListData and *Closure evaluate to themselves.
		return v, nil
	}
}

func (ev *Evaler) evalList(l vals.List, env *Env) (vals.Value, error) {
	if l.Len() == 0 {
		return l, nil
	}
	if head, ok := l.Index(0).(vals.Symbol); ok {
		if op, ok := ops[string(head)]; ok {
			return ev.evalOp(op, l, env)
		}
		if kind, ok := forms[string(head)]; ok {
			return ev.evalForm(kind, l, env)
		}
	}
	return ev.evalSeq(l, env)
}

// Evaluates all the elements of l in order and collects the results that are
// not Void. If the first result is a Closure, it is called with the rest of
// the results as arguments; otherwise the results are returned as a List.
//
// This covers both function calls and implicit sequencing: a program made of
// several forms evaluates each of them for effect and reduces to the list of
// their non-Void results.
func (ev *Evaler) evalSeq(l vals.List, env *Env) (vals.Value, error) {
	results := make([]vals.Value, 0, l.Len())
	for _, elem := range l.Elems() {
		v, err := ev.eval(elem, env)
		if err != nil {
			return nil, err
		}
		if _, isVoid := v.(vals.Void); isVoid {
			continue
		}
		results = append(results, v)
	}
	if len(results) > 0 {
		if c, ok := results[0].(*Closure); ok {
			return ev.call(c, results[1:])
		}
	}
	return vals.MakeList(results...), nil
}
