package utils

import "math"

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// Round2 rounds a value to two decimal places, the precision used
// throughout report metrics.
func Round2(value float64) float64 {
	return RoundTo(value, 2)
}
