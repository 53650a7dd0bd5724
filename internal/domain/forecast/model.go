package forecast

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire format of every calendar date.
const DateLayout = "2006-01-02"

// HorizonDays is the fixed forecast length.
const HorizonDays = 7

// DefaultHistoryDays is the series length used when callers do not override it.
const DefaultHistoryDays = 60

// Date is a calendar day rendered as YYYY-MM-DD.
type Date struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ts, err := time.Parse(DateLayout, raw)
	if err != nil {
		return err
	}
	d.Time = ts
	return nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// DailyRecord is one synthesized day of historical impressions.
type DailyRecord struct {
	Date        Date   `json:"date"`
	Impressions int    `json:"impressions"`
	DayOfWeek   string `json:"day_of_week"`
}

// ForecastRecord is one predicted day.
type ForecastRecord struct {
	Day                  string  `json:"day"`
	Date                 Date    `json:"date"`
	PredictedImpressions int     `json:"predicted_impressions"`
	Confidence           float64 `json:"confidence"`
	DayOfWeek            string  `json:"day_of_week"`
}

// HistorySummary aggregates a historical series.
type HistorySummary struct {
	TotalImpressions int `json:"total_impressions"`
	AverageDaily     int `json:"average_daily"`
	DaysRecorded     int `json:"days_recorded"`
}

// ForecastSummary aggregates a forecast.
type ForecastSummary struct {
	TotalPredicted    int     `json:"total_predicted"`
	AverageConfidence float64 `json:"average_confidence"`
}
