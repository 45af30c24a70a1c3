package util

import "math"

// AsInt converts a float to int, truncating toward zero and clamping to the
// int range. NaN converts to zero.
func AsInt(f float64) int {
	return int(AsInt64(f))
}

// AsInt64 converts a float to int64, truncating toward zero and clamping to
// the int64 range. NaN converts to zero.
// Used when decoded wire numbers back integer fields.
func AsInt64(f float64) int64 {
	if math.IsNaN(f) {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	if f <= math.MinInt64 {
		return math.MinInt64
	}
	// #nosec G115 - bounded by explicit check
	return int64(f)
}
