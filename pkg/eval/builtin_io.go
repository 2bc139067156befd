package eval

import (
	"io"
	"strconv"
	"strings"

	"src.crotchet.dev/pkg/eval/errs"
	"src.crotchet.dev/pkg/eval/vals"
)

// Input and output.

func (ev *Evaler) print(args []vals.Value, env *Env) (vals.Value, error) {
	var sb strings.Builder
	for _, arg := range args {
		v, err := ev.eval(arg, env)
		if err != nil {
			return nil, err
		}
		sb.WriteString(vals.Repr(v))
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(ev.Out, sb.String()); err != nil {
		return nil, errs.IOError{Op: "write", Err: err}
	}
	return vals.Num(len(args)), nil
}

type flusher interface{ Flush() error }

func (ev *Evaler) input(args []vals.Value, env *Env) (vals.Value, error) {
	if err := checkArity("input", args, 0, 1); err != nil {
		return nil, err
	}
	if len(args) == 1 {
		prompt, err := ev.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(ev.Out, vals.Repr(prompt)); err != nil {
			return nil, errs.IOError{Op: "write", Err: err}
		}
		if f, ok := ev.Out.(flusher); ok {
			if err := f.Flush(); err != nil {
				return nil, errs.IOError{Op: "flush", Err: err}
			}
		}
	}
	line, err := ev.In.ReadString('\n')
	// A final line without a newline is still a line.
	if err != nil && (err != io.EOF || line == "") {
		return nil, errs.IOError{Op: "read", Err: err}
	}
	text := strings.TrimSpace(line)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, errs.ParseError{What: "input", Actual: text}
	}
	return vals.Num(f), nil
}
