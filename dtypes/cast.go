package dtypes

// CanCast implements the `as` operator's rule: always permitted if the
// operand produced a type. Spec §4.3 explicitly forgoes a narrowing
// check here — the only thing that can make a cast illegal is an
// operand that never got a resolved type at all (an upstream error).
func CanCast(src Type) bool {
	_, unknown := src.Inner().(*UnknownType)
	return !unknown
}
