package dtypes

// Compatible is the relation spec §4.3 calls "compatible": structurally
// equal, or both integral, or both floating. No other widening is
// permitted — this is what lets an i32-defaulted literal satisfy an i64
// annotation (spec open question: the literal's resolved type really is
// i32, but "both integral" still passes).
func Compatible(dest, src Type) bool {
	if Equal(dest, src) {
		return true
	}

	if IsIntegerType(dest) && IsIntegerType(src) {
		return true
	}

	if IsFloatType(dest) && IsFloatType(src) {
		return true
	}

	return false
}
