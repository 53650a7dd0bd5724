package forecast

// Range is a closed numeric interval.
type Range[T int | float64] struct {
	Min T
	Max T
}

// Contains reports whether v lies in [Min, Max].
func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

// Tier is a synthetic traffic class.
type Tier struct {
	Index     int
	Base      Range[int]
	Variation Range[float64]
}

var tiers = [3]Tier{
	{Index: 0, Base: Range[int]{1500, 2000}, Variation: Range[float64]{0.8, 1.3}},
	{Index: 1, Base: Range[int]{1200, 1600}, Variation: Range[float64]{0.7, 1.2}},
	{Index: 2, Base: Range[int]{1000, 1400}, Variation: Range[float64]{0.6, 1.1}},
}

var (
	weekendFactor = Range[float64]{0.7, 0.9}
	weekdayFactor = Range[float64]{0.9, 1.1}
	forecastNoise = Range[float64]{0.85, 1.15}
)

// TierFor classifies an entity id by its value modulo 3.
func TierFor(entityID int) Tier {
	idx := entityID % 3
	if idx < 0 {
		idx += 3
	}
	return tiers[idx]
}
