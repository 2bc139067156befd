package vals

import (
	"strings"

	"github.com/xiaq/persistent/vector"
)

// List is the code representation: the form of every program and the result
// of evaluating a list that is not a special form. A List is immutable; values
// derived from it share its storage.
//
// The zero value is an empty List.
type List struct{ v vector.Vector }

// ListData is the data representation produced by the list builtin. It is
// distinct from List, so that manipulating data never aliases code.
//
// The zero value is an empty ListData.
type ListData struct{ v vector.Vector }

// MakeList creates a List from the given elements.
func MakeList(elems ...Value) List { return List{fromSlice(elems)} }

// MakeListData creates a ListData from the given elements.
func MakeListData(elems ...Value) ListData { return ListData{fromSlice(elems)} }

func (List) Kind() Kind     { return ListKind }
func (ListData) Kind() Kind { return ListDataKind }

// Len returns the number of elements.
func (l List) Len() int { return vlen(l.v) }

// Index returns the i-th element. It panics if i is out of range.
func (l List) Index(i int) Value { return vindex(l.v, i) }

// Elems returns the elements in a newly allocated slice.
func (l List) Elems() []Value { return toSlice(l.v) }

// Repr returns the elements separated by spaces and enclosed in brackets.
func (l List) Repr() string { return reprElems(l.v) }

// Equal reports whether other is a List with the same elements.
func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	return ok && equalVectors(l.v, o.v)
}

// Len returns the number of elements.
func (d ListData) Len() int { return vlen(d.v) }

// Index returns the i-th element. It panics if i is out of range.
func (d ListData) Index(i int) Value { return vindex(d.v, i) }

// Elems returns the elements in a newly allocated slice.
func (d ListData) Elems() []Value { return toSlice(d.v) }

// Rest returns a ListData with all but the first element. The result is empty
// if d has at most one element.
func (d ListData) Rest() ListData {
	n := d.Len()
	if n <= 1 {
		return ListData{}
	}
	return ListData{d.v.SubVector(1, n)}
}

// Repr returns the elements separated by spaces and enclosed in brackets.
func (d ListData) Repr() string { return reprElems(d.v) }

// Equal reports whether other is a ListData with the same elements.
func (d ListData) Equal(other Value) bool {
	o, ok := other.(ListData)
	return ok && equalVectors(d.v, o.v)
}

func fromSlice(elems []Value) vector.Vector {
	v := vector.Empty
	for _, elem := range elems {
		v = v.Cons(elem)
	}
	return v
}

func vlen(v vector.Vector) int {
	if v == nil {
		return 0
	}
	return v.Len()
}

func vindex(v vector.Vector, i int) Value {
	if v != nil {
		if elem, ok := v.Index(i); ok {
			return elem.(Value)
		}
	}
	panic("vals: index out of range")
}

func toSlice(v vector.Vector) []Value {
	elems := make([]Value, 0, vlen(v))
	if v == nil {
		return elems
	}
	for it := v.Iterator(); it.HasElem(); it.Next() {
		elems = append(elems, it.Elem().(Value))
	}
	return elems
}

func reprElems(v vector.Vector) string {
	var sb strings.Builder
	sb.WriteByte('[')
	if v != nil {
		for it := v.Iterator(); it.HasElem(); it.Next() {
			if sb.Len() > 1 {
				sb.WriteByte(' ')
			}
			sb.WriteString(Repr(it.Elem().(Value)))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func equalVectors(x, y vector.Vector) bool {
	if vlen(x) != vlen(y) {
		return false
	}
	if vlen(x) == 0 {
		return true
	}
	ix, iy := x.Iterator(), y.Iterator()
	for ; ix.HasElem(); ix.Next() {
		if !Equal(ix.Elem().(Value), iy.Elem().(Value)) {
			return false
		}
		iy.Next()
	}
	return true
}
