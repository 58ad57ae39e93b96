package calc

import (
	"math"
	"strconv"
	"strings"
)

// Values at or above this magnitude switch to exponent form.
const maxPlainMagnitude = 1e16

// FormatNumber renders v the way the display shows it.
//
// Integral values print without a fractional part. Everything else prints
// the shortest round-trip decimal, in exponent form when the decimal
// exponent is below -4 or at least 16. Negative zero prints as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ErrorText
	}
	abs := math.Abs(v)
	if abs < maxPlainMagnitude && v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp := exponentOf(e)
	if exp < -4 || exp >= 16 {
		return e
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func exponentOf(e string) int {
	i := strings.LastIndexByte(e, 'e')
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(e[i+1:])
	if err != nil {
		return 0
	}
	return n
}
