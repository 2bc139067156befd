package eval

import (
	"sort"

	"src.crotchet.dev/pkg/eval/errs"
	"src.crotchet.dev/pkg/eval/vals"
)

// Special forms and builtins, dispatched by the name in the head of a List.
// Names in this table take precedence over bindings of the same name.
type formKind int

const (
	letForm formKind = iota
	setForm
	ifForm
	fnForm
	whileForm

	printBuiltin
	inputBuiltin
	randBuiltin
	roundBuiltin
	listBuiltin
	firstBuiltin
	restBuiltin
	lenBuiltin
)

var forms = map[string]formKind{
	"let":   letForm,
	"set":   setForm,
	"if":    ifForm,
	"fn":    fnForm,
	"while": whileForm,

	"print": printBuiltin,
	"input": inputBuiltin,
	"rand":  randBuiltin,
	"round": roundBuiltin,
	"list":  listBuiltin,
	"first": firstBuiltin,
	"rest":  restBuiltin,
	"len":   lenBuiltin,
}

func (ev *Evaler) evalForm(kind formKind, l vals.List, env *Env) (vals.Value, error) {
	args := l.Elems()[1:]
	switch kind {
	case letForm:
		return ev.evalLet(args, env)
	case setForm:
		return ev.evalSet(args, env)
	case ifForm:
		return ev.evalIf(args, env)
	case fnForm:
		return evalFn(args, env)
	case whileForm:
		return ev.evalWhile(args, env)
	case printBuiltin:
		return ev.print(args, env)
	case inputBuiltin:
		return ev.input(args, env)
	case randBuiltin:
		return ev.rand(args, env)
	case roundBuiltin:
		return ev.round(args, env)
	case listBuiltin:
		return ev.list(args, env)
	case firstBuiltin:
		return ev.first(args, env)
	case restBuiltin:
		return ev.rest(args, env)
	case lenBuiltin:
		return ev.len(args, env)
	default:
		panic("unreachable")
	}
}

func checkArity(name string, args []vals.Value, low, high int) error {
	if len(args) < low || (high != -1 && len(args) > high) {
		return errs.ArityMismatch{What: "arguments of " + name,
			ValidLow: low, ValidHigh: high, Actual: len(args)}
	}
	return nil
}

// IsBuiltin reports whether name is an operator, a special form or a builtin
// function. Such names cannot be called through bindings.
func IsBuiltin(name string) bool {
	_, isOp := ops[name]
	_, isForm := forms[name]
	return isOp || isForm
}

// BuiltinNames returns the names of all operators, special forms and builtin
// functions, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(ops)+len(forms))
	for name := range ops {
		names = append(names, name)
	}
	for name := range forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinDoc returns a short usage text for a builtin name.
func BuiltinDoc(name string) (string, bool) {
	if _, ok := ops[name]; ok {
		return "[" + name + " a b]\n\n" + opDocs[ops[name]], true
	}
	kind, ok := forms[name]
	if !ok {
		return "", false
	}
	return formDocs[kind], true
}

var opDocs = map[opKind]string{
	opAdd: "Adds two numbers.",
	opSub: "Subtracts b from a.",
	opMul: "Multiplies two numbers.",
	opDiv: "Divides a by b. Division by zero yields an infinity or NaN.",
	opRem: "Outputs the remainder of a divided by b, with the sign of a.",
	opLT:  "Outputs whether a is less than b.",
	opLE:  "Outputs whether a is less than or equal to b.",
	opGT:  "Outputs whether a is greater than b.",
	opGE:  "Outputs whether a is greater than or equal to b.",
	opEq:  "Outputs whether a equals b.",
	opNE:  "Outputs whether a does not equal b.",
}

var formDocs = map[formKind]string{
	letForm: "[let name expr]\n\nBinds name in the current frame. Outputs nothing.",
	setForm: "[set name expr]\n\nWrites to the nearest binding of name and outputs the value. " +
		"Creates the binding in the current frame if there is none.",
	ifForm:    "[if cond then else]\n\nEvaluates then if cond is true, else otherwise.",
	fnForm:    "[fn [params...] body...]\n\nCreates a function that closes over the current frame.",
	whileForm: "[while cond body...]\n\nEvaluates body while cond is true and outputs the last body value.",

	printBuiltin: "[print args...]\n\nWrites the args without separators and a newline. " +
		"Outputs the number of args.",
	inputBuiltin: "[input prompt?]\n\nWrites the prompt and reads a number from a line of input.",
	randBuiltin:  "[rand lo hi]\n\nOutputs a random number in [lo, hi).",
	roundBuiltin: "[round n]\n\nRounds n to the nearest integer, with ties away from zero.",
	listBuiltin:  "[list args...]\n\nOutputs a data list of the args.",
	firstBuiltin: "[first l]\n\nOutputs the first element of a data list.",
	restBuiltin:  "[rest l]\n\nOutputs a data list of all but the first element.",
	lenBuiltin:   "[len l]\n\nOutputs the number of elements of a data list.",
}
