// Package vals contains the value model of crotchet: the variants a value
// can take, how values are compared and how they are rendered as text.
package vals

// Kind identifies the variant of a Value.
type Kind uint8

// Possible values of Kind.
const (
	VoidKind Kind = iota
	NumberKind
	BoolKind
	SymbolKind
	ClosureKind
	ListKind
	ListDataKind
	StringKind
)

var kindNames = [...]string{
	VoidKind:     "void",
	NumberKind:   "number",
	BoolKind:     "bool",
	SymbolKind:   "symbol",
	ClosureKind:  "fn",
	ListKind:     "list",
	ListDataKind: "list-data",
	StringKind:   "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "!!unknown"
}

// Value is implemented by all crotchet values.
//
// The set of implementations is closed: Void, Num, Bool, Symbol, Str, List,
// ListData in this package, and the closure type of the eval package, which
// reports ClosureKind.
type Value interface {
	// Kind returns the variant of the value.
	Kind() Kind
	// Repr returns the canonical text form of the value.
	Repr() string
}

// KindOf returns the kind of v, treating nil as Void.
func KindOf(v Value) Kind {
	if v == nil {
		return VoidKind
	}
	return v.Kind()
}
