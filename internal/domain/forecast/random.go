package forecast

import "math/rand/v2"

// Source supplies the random draws used by the generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// globalSource delegates to the top-level math/rand/v2 functions, which are safe
// for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// DefaultSource returns the process-wide random source.
func DefaultSource() Source {
	return globalSource{}
}

// uniform draws from [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// randInt draws an integer from [lo, hi], both ends inclusive.
func randInt(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
