package vals

// Repr returns the canonical text form of v. A nil Value is rendered like
// Void.
func Repr(v Value) string {
	if v == nil {
		return ""
	}
	return v.Repr()
}
