package forecast

// SummarizeHistory totals a historical series; the daily average uses integer floor division.
func SummarizeHistory(history []DailyRecord) HistorySummary {
	summary := HistorySummary{DaysRecorded: len(history)}
	for _, r := range history {
		summary.TotalImpressions += r.Impressions
	}
	if summary.DaysRecorded > 0 {
		summary.AverageDaily = summary.TotalImpressions / summary.DaysRecorded
	}
	return summary
}

// SummarizeForecast totals a forecast and averages its confidence to two decimals.
func SummarizeForecast(forecast []ForecastRecord) ForecastSummary {
	var (
		summary    ForecastSummary
		confidence float64
	)
	for _, r := range forecast {
		summary.TotalPredicted += r.PredictedImpressions
		confidence += r.Confidence
	}
	if len(forecast) > 0 {
		summary.AverageConfidence = Round(confidence/float64(len(forecast)), 2)
	}
	return summary
}

// Impressions projects the historical series onto its impression counts.
func Impressions(history []DailyRecord) []int {
	out := make([]int, len(history))
	for i, r := range history {
		out[i] = r.Impressions
	}
	return out
}

// Predictions projects a forecast onto its predicted counts.
func Predictions(forecast []ForecastRecord) []int {
	out := make([]int, len(forecast))
	for i, r := range forecast {
		out[i] = r.PredictedImpressions
	}
	return out
}
