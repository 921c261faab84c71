package numeric

import "math"

// Abs returns the absolute value of n.
func Abs(n float64) float64 {
	return math.Abs(n)
}
