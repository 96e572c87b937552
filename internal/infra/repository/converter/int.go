package converter

import (
	"fmt"
	"math"
)

// Quantities and capacities are validated by the domain; anything outside
// int32 here is a programming error.
func toInt32(v int) int32 {
	if v > math.MaxInt32 || v < math.MinInt32 {
		panic(fmt.Sprintf("value out of int32 range: %d", v))
	}
	return int32(v)
}
