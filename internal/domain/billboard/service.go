package billboard

import (
	"context"
	"log/slog"

	"github.com/yanqian/billboard-insights/internal/domain/forecast"
	apperrors "github.com/yanqian/billboard-insights/pkg/errors"
)

// NotFoundMessage is the user facing message for unknown or malformed identifiers.
const NotFoundMessage = "Billboard not found"

// Service exposes catalog and impression forecasting capabilities.
type Service interface {
	List(ctx context.Context) []Billboard
	Predict(ctx context.Context, rawID string) (Prediction, error)
	Trending(ctx context.Context, limit int) ([]Lookup, error)
}

// Generator produces the synthetic history and forecast.
type Generator interface {
	Synthesize(entityID, days int) []forecast.DailyRecord
	Forecast(history []forecast.DailyRecord) []forecast.ForecastRecord
}

// Recorder receives prediction outcomes for metrics.
type Recorder interface {
	RecordPrediction(tier int)
	RecordLookupMiss(reason string)
}

type service struct {
	cfg      Config
	catalog  Catalog
	lookups  LookupStore
	gen      Generator
	recorder Recorder
	logger   *slog.Logger
}

// NewService wires up the billboard domain.
func NewService(cfg Config, catalog Catalog, lookups LookupStore, gen Generator, recorder Recorder, logger *slog.Logger) Service {
	if cfg.HistoryDays <= 0 {
		cfg.HistoryDays = forecast.DefaultHistoryDays
	}
	if cfg.TrendingLimit <= 0 {
		cfg.TrendingLimit = 5
	}
	return &service{
		cfg:      cfg,
		catalog:  catalog,
		lookups:  lookups,
		gen:      gen,
		recorder: recorder,
		logger:   logger.With("component", "billboard.service"),
	}
}

func (s *service) List(_ context.Context) []Billboard {
	return s.catalog.List()
}

func (s *service) Predict(ctx context.Context, rawID string) (Prediction, error) {
	id := ParseIdentifier(rawID)
	board, ok := s.resolve(id)
	if !ok {
		s.logger.Debug("billboard lookup missed", "raw", rawID, "kind", id.Kind.String())
		s.recordMiss(id)
		return Prediction{}, apperrors.Wrap(apperrors.CodeNotFound, NotFoundMessage, nil)
	}

	history := s.gen.Synthesize(board.ID, s.cfg.HistoryDays)
	predictions := s.gen.Forecast(history)
	forecastSummary := forecast.SummarizeForecast(predictions)

	if s.recorder != nil {
		s.recorder.RecordPrediction(forecast.TierFor(board.ID).Index)
	}
	if s.lookups != nil {
		if err := s.lookups.IncrementLookup(ctx, board.Code); err != nil {
			s.logger.Warn("lookup counter update failed", "billboard", board.Code, "error", err)
		}
	}

	return Prediction{
		BillboardID:    board.Code,
		Billboard:      board,
		Past60Days:     forecast.Impressions(history),
		Predicted7Days: forecast.Predictions(predictions),
		DetailedData: DetailedData{
			HistoricalData: HistoricalData{
				Data:    history,
				Summary: forecast.SummarizeHistory(history),
			},
			Prediction: PredictionData{
				Forecast:          predictions,
				TotalPredicted:    forecastSummary.TotalPredicted,
				AverageConfidence: forecastSummary.AverageConfidence,
			},
		},
	}, nil
}

func (s *service) Trending(ctx context.Context, limit int) ([]Lookup, error) {
	if limit <= 0 {
		limit = s.cfg.TrendingLimit
	}
	if size := len(s.catalog.List()); size > 0 && limit > size {
		limit = size
	}
	if s.lookups == nil {
		return []Lookup{}, nil
	}
	items, err := s.lookups.TopLookups(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeLookup, "failed to load trending billboards", err)
	}
	if items == nil {
		items = []Lookup{}
	}
	return items, nil
}

func (s *service) resolve(id Identifier) (Billboard, bool) {
	switch id.Kind {
	case KindCode:
		return s.catalog.FindByCode(id.Code)
	case KindNumeric:
		return s.catalog.FindByID(id.Numeric)
	default:
		return Billboard{}, false
	}
}

func (s *service) recordMiss(id Identifier) {
	if s.recorder == nil {
		return
	}
	reason := apperrors.CodeNotFound
	if id.Kind == KindMalformed {
		reason = "malformed"
	}
	s.recorder.RecordLookupMiss(reason)
}
