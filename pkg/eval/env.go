package eval

import (
	"sort"

	"src.crotchet.dev/pkg/eval/errs"
	"src.crotchet.dev/pkg/eval/vals"
)

// Env is a scope frame: a mapping from names to values, plus a link to the
// enclosing frame. Frames only point to their parents; a frame stays alive as
// long as an active call or a Closure refers to it or to one of its
// descendants.
type Env struct {
	names  map[string]vals.Value
	parent *Env
}

// NewEnv creates an empty frame whose enclosing frame is parent. The parent
// may be nil, in which case the frame is a root.
func NewEnv(parent *Env) *Env {
	return &Env{map[string]vals.Value{}, parent}
}

// Parent returns the enclosing frame, or nil for a root frame.
func (e *Env) Parent() *Env { return e.parent }

// Lookup finds name by walking from e to the root. The innermost binding
// wins.
func (e *Env) Lookup(name string) (vals.Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.names[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in e itself, shadowing any binding in enclosing frames
// and replacing any previous binding in e.
func (e *Env) Define(name string, v vals.Value) {
	e.names[name] = v
}

// Set writes v to the innermost frame that binds name. If no frame binds name,
// Set creates the binding in e, unless strict is true, in which case it fails
// with errs.UnboundSymbol.
func (e *Env) Set(name string, v vals.Value, strict bool) error {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.names[name]; ok {
			f.names[name] = v
			return nil
		}
	}
	if strict {
		return errs.UnboundSymbol{Name: name}
	}
	e.names[name] = v
	return nil
}

// Names returns the names bound in e and all enclosing frames, sorted and
// without duplicates.
func (e *Env) Names() []string {
	seen := map[string]bool{}
	var names []string
	for f := e; f != nil; f = f.parent {
		for name := range f.names {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
