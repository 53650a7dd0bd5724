package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/yanqian/billboard-insights/pkg/util"
)

const (
	maxConfidence   = 0.95
	minConfidence   = 0.75
	confidenceDecay = 0.03
)

// Generator synthesizes historical impressions and forecasts from them.
// It holds no mutable state; all randomness comes from src.
type Generator struct {
	src      Source
	now      func() time.Time
	location *time.Location
}

// Option customizes a Generator.
type Option func(*Generator)

// WithSource injects the random source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithClock injects the clock used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLocation sets the timezone calendar dates are computed in.
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.location = loc
		}
	}
}

// NewGenerator builds a generator using the global random source and wall clock by default.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		src:      DefaultSource(),
		now:      time.Now,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Synthesize fabricates days of impressions ending yesterday, oldest first.
func (g *Generator) Synthesize(entityID, days int) []DailyRecord {
	if days <= 0 {
		return []DailyRecord{}
	}
	tier := TierFor(entityID)
	base := float64(randInt(g.src, tier.Base.Min, tier.Base.Max))
	anchor := g.today().AddDate(0, 0, -days)

	out := make([]DailyRecord, 0, days)
	for i := 0; i < days; i++ {
		day := anchor.AddDate(0, 0, i)
		factor := g.dayFactor(day)
		variation := uniform(g.src, tier.Variation.Min, tier.Variation.Max)
		out = append(out, DailyRecord{
			Date:        Date{day},
			Impressions: int(base * factor * variation),
			DayOfWeek:   day.Weekday().String(),
		})
	}
	return out
}

// Forecast projects HorizonDays days starting tomorrow from history.
// An empty history forecasts zero impressions.
func (g *Generator) Forecast(history []DailyRecord) []ForecastRecord {
	baseline := Baseline(history)
	anchor := g.today().AddDate(0, 0, 1)

	out := make([]ForecastRecord, 0, HorizonDays)
	for i := 0; i < HorizonDays; i++ {
		day := anchor.AddDate(0, 0, i)
		factor := g.dayFactor(day)
		noise := uniform(g.src, forecastNoise.Min, forecastNoise.Max)
		out = append(out, ForecastRecord{
			Day:                  fmt.Sprintf("Day %d", i+1),
			Date:                 Date{day},
			PredictedImpressions: int(baseline * factor * noise),
			Confidence:           Confidence(i),
			DayOfWeek:            day.Weekday().String(),
		})
	}
	return out
}

// Baseline is the trend-adjusted level the forecast is scaled from.
func Baseline(history []DailyRecord) float64 {
	n := len(history)
	if n < 7 {
		return meanImpressions(history)
	}
	recent := meanImpressions(history[n-7:])
	trend := 1.0
	if n >= 14 {
		if previous := meanImpressions(history[n-14 : n-7]); previous > 0 {
			trend = recent / previous
		}
	}
	return recent * trend
}

// Confidence is the heuristic certainty for the zero-based forecast day.
func Confidence(day int) float64 {
	return Round(math.Max(minConfidence, maxConfidence-confidenceDecay*float64(day)), 2)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func (g *Generator) today() time.Time {
	return util.StartOfDay(g.now(), g.location)
}

func (g *Generator) dayFactor(day time.Time) float64 {
	if isWeekend(day) {
		return uniform(g.src, weekendFactor.Min, weekendFactor.Max)
	}
	return uniform(g.src, weekdayFactor.Min, weekdayFactor.Max)
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func meanImpressions(records []DailyRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0
	for _, r := range records {
		total += r.Impressions
	}
	return float64(total) / float64(len(records))
}
