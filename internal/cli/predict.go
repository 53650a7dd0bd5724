package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yanqian/billboard-insights/internal/domain/billboard"
	apperrors "github.com/yanqian/billboard-insights/pkg/errors"
)

var errNotFound = errors.New("billboard not found")

func newPredictCommand(factory ServiceFactory) *cobra.Command {
	var (
		days   int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "predict <billboard_id>",
		Short: "Synthesize history and a 7 day forecast for one billboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("days") && days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}
			svc, err := factory(cmd.Context(), days)
			if err != nil {
				return err
			}
			prediction, err := svc.Predict(cmd.Context(), args[0])
			if err != nil {
				if apperrors.IsCode(err, apperrors.CodeNotFound) {
					return fmt.Errorf("%w: %s", errNotFound, args[0])
				}
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(prediction)
			}
			return writePrediction(cmd, prediction)
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "days of synthetic history (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full prediction as JSON")
	return cmd
}

func writePrediction(cmd *cobra.Command, p billboard.Prediction) error {
	out := cmd.OutOrStdout()
	hist := p.DetailedData.HistoricalData.Summary
	pred := p.DetailedData.Prediction

	fmt.Fprintf(out, "%s  %s  %s %s\n", p.BillboardID, p.Billboard.Region, p.Billboard.Type, p.Billboard.Size)
	fmt.Fprintf(out, "history: %d days, %d impressions, %d daily average\n", hist.DaysRecorded, hist.TotalImpressions, hist.AverageDaily)
	fmt.Fprintf(out, "forecast: %d impressions, %.2f average confidence\n\n", pred.TotalPredicted, pred.AverageConfidence)

	rows := make([][]string, 0, len(pred.Forecast))
	for _, f := range pred.Forecast {
		rows = append(rows, []string{
			f.Day,
			f.Date.String(),
			f.DayOfWeek,
			strconv.Itoa(f.PredictedImpressions),
			strconv.FormatFloat(f.Confidence, 'f', 2, 64),
		})
	}
	return renderTable(out, []string{"day", "date", "weekday", "predicted", "confidence"}, rows)
}
