package vals

// Equaler wraps the Equal method. It is implemented by composite values and
// closures.
type Equaler interface {
	// Equal compares the receiver to another value.
	Equal(other Value) bool
}

// Equal returns whether two values are equal. Scalars are equal when they
// have the same variant and payload (so NaN is not equal to itself), Lists and
// ListData when they have the same variant and equal elements in the same
// order. Other values implement Equaler.
func Equal(x, y Value) bool {
	switch x := x.(type) {
	case nil:
		return y == nil
	case Void:
		_, ok := y.(Void)
		return ok
	case Num:
		y, ok := y.(Num)
		return ok && x == y
	case Bool:
		y, ok := y.(Bool)
		return ok && x == y
	case Symbol:
		y, ok := y.(Symbol)
		return ok && x == y
	case Str:
		y, ok := y.(Str)
		return ok && x == y
	case Equaler:
		return x.Equal(y)
	default:
		return x == y
	}
}
