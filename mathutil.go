package sdm

import "math"

// sqrt32 and logf32 round-trip through float64 math.Sqrt/math.Log, the
// only implementations math provides, narrowing back to float32 to match
// the kernel's float32 time/value domain throughout.
func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func logf32(v float32) float32 {
	return float32(math.Log(float64(v)))
}
