package billboard

import "github.com/yanqian/billboard-insights/internal/domain/forecast"

// Kind is the display technology of a billboard.
type Kind string

const (
	KindDigital Kind = "Digital"
	KindStatic  Kind = "Static"
)

// TrafficLevel is the catalog's qualitative footfall rating.
type TrafficLevel string

const (
	TrafficHigh   TrafficLevel = "high"
	TrafficMedium TrafficLevel = "medium"
)

// Billboard is a static catalog entry.
type Billboard struct {
	Code         string       `json:"billboard_id" yaml:"billboard_id"`
	ID           int          `json:"id" yaml:"id"`
	Latitude     float64      `json:"latitude" yaml:"latitude"`
	Longitude    float64      `json:"longitude" yaml:"longitude"`
	Region       string       `json:"region" yaml:"region"`
	Size         string       `json:"size" yaml:"size"`
	Type         Kind         `json:"type" yaml:"type"`
	MonthlyRate  int64        `json:"monthly_rate" yaml:"monthly_rate"`
	TrafficLevel TrafficLevel `json:"traffic_level" yaml:"traffic_level"`
}

// Prediction is the full analytics payload for one billboard.
type Prediction struct {
	BillboardID    string       `json:"billboard_id"`
	Billboard      Billboard    `json:"billboard"`
	Past60Days     []int        `json:"past_60_days"`
	Predicted7Days []int        `json:"predicted_7_days"`
	DetailedData   DetailedData `json:"detailed_data"`
}

// DetailedData carries the full records behind the flat series.
type DetailedData struct {
	HistoricalData HistoricalData `json:"historical_data"`
	Prediction     PredictionData `json:"prediction"`
}

// HistoricalData is the synthesized history and its summary.
type HistoricalData struct {
	Data    []forecast.DailyRecord  `json:"data"`
	Summary forecast.HistorySummary `json:"summary"`
}

// PredictionData is the forecast and its summary.
type PredictionData struct {
	Forecast          []forecast.ForecastRecord `json:"forecast"`
	TotalPredicted    int                       `json:"total_predicted"`
	AverageConfidence float64                   `json:"average_confidence"`
}

// Lookup is a billboard's successful prediction count.
type Lookup struct {
	Code    string `json:"billboard_id"`
	Lookups int64  `json:"lookups"`
}

// Config holds runtime knobs for the billboard service.
type Config struct {
	HistoryDays   int
	TrendingLimit int
}
