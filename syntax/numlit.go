package syntax

import "strconv"

// parseInt and parseFloat decode the literal payload described in spec
// §3: integers as signed 64-bit, floats as 64-bit IEEE. The lexer's
// own grammar already guarantees these lexemes are well-formed, so the
// only error left is an out-of-range value, which is ignored: strconv
// then returns the int64 limit or ±Inf.
func parseInt(lexeme string) int64 {
	v, _ := strconv.ParseInt(lexeme, 10, 64)
	return v
}

func parseFloat(lexeme string) float64 {
	v, _ := strconv.ParseFloat(lexeme, 64)
	return v
}
