package entity

import (
	"math"
	"strconv"
	"strings"
)

// truncatePlaces is the most decimals a displayed number carries.
const truncatePlaces = 2

// Truncate formats val for display: integral values without a decimal point,
// others with up to two decimals and trailing zeros trimmed.
func Truncate(val float64) string {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return strconv.FormatFloat(val, 'f', -1, 64)
	}

	str := strconv.FormatFloat(val, 'f', truncatePlaces, 64)
	str = strings.TrimRight(str, "0")
	str = strings.TrimSuffix(str, ".")

	if str == "-0" {
		return "0"
	}
	return str
}

// ParseNumber parses user input, falling back to prior when it does not parse.
func ParseNumber(text string, prior float64) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return prior
	}
	return val
}
