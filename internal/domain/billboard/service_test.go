package billboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/billboard-insights/internal/domain/forecast"
	apperrors "github.com/yanqian/billboard-insights/pkg/errors"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		raw     string
		kind    IdentifierKind
		code    string
		numeric int
	}{
		{raw: "B001", kind: KindCode, code: "B001"},
		{raw: "B999", kind: KindCode, code: "B999"},
		{raw: "B", kind: KindCode, code: "B"},
		{raw: "1", kind: KindNumeric, numeric: 1},
		{raw: "020", kind: KindNumeric, numeric: 20},
		{raw: "-3", kind: KindNumeric, numeric: -3},
		{raw: "1_0", kind: KindNumeric, numeric: 10},
		{raw: " +2_0 ", kind: KindNumeric, numeric: 20},
		{raw: "1__0", kind: KindMalformed},
		{raw: "_10", kind: KindMalformed},
		{raw: "10_", kind: KindMalformed},
		{raw: "+-1", kind: KindMalformed},
		{raw: "+", kind: KindMalformed},
		{raw: "b001", kind: KindMalformed},
		{raw: "abc", kind: KindMalformed},
		{raw: "", kind: KindMalformed},
	}
	for _, tc := range tests {
		got := ParseIdentifier(tc.raw)
		require.Equal(t, tc.kind, got.Kind, tc.raw)
		require.Equal(t, tc.code, got.Code, tc.raw)
		require.Equal(t, tc.numeric, got.Numeric, tc.raw)
		require.Equal(t, tc.raw, got.Raw)
	}
}

func TestPredictByCode(t *testing.T) {
	lookups := &stubLookupStore{}
	recorder := &stubRecorder{}
	svc := newServiceUnderTest(lookups, recorder)

	pred, err := svc.Predict(context.Background(), "B001")
	require.NoError(t, err)
	require.Equal(t, "B001", pred.BillboardID)
	require.Equal(t, 1, pred.Billboard.ID)
	require.Len(t, pred.Past60Days, 60)
	require.Len(t, pred.Predicted7Days, 7)

	hist := pred.DetailedData.HistoricalData
	require.Len(t, hist.Data, 60)
	require.Equal(t, 60, hist.Summary.DaysRecorded)
	total := 0
	for i, v := range pred.Past60Days {
		require.Equal(t, hist.Data[i].Impressions, v)
		total += v
	}
	require.Equal(t, total, hist.Summary.TotalImpressions)
	require.Equal(t, total/60, hist.Summary.AverageDaily)

	prediction := pred.DetailedData.Prediction
	require.Len(t, prediction.Forecast, 7)
	require.Equal(t, 0.86, prediction.AverageConfidence)
	sum := 0
	for _, v := range pred.Predicted7Days {
		sum += v
	}
	require.Equal(t, sum, prediction.TotalPredicted)

	require.Equal(t, []string{"B001"}, lookups.incremented)
	require.Equal(t, []int{1}, recorder.tiers)
}

func TestPredictByNumericID(t *testing.T) {
	svc := newServiceUnderTest(&stubLookupStore{}, &stubRecorder{})

	pred, err := svc.Predict(context.Background(), "20")
	require.NoError(t, err)
	require.Equal(t, "B020", pred.BillboardID)
}

func TestPredictNotFound(t *testing.T) {
	tests := []struct {
		raw    string
		reason string
	}{
		{raw: "999", reason: "not_found"},
		// "B"-prefixed ids are never retried as numbers.
		{raw: "B999", reason: "not_found"},
		{raw: "B1", reason: "not_found"},
		{raw: "billboard", reason: "malformed"},
		{raw: "x1", reason: "malformed"},
	}
	for _, tc := range tests {
		lookups := &stubLookupStore{}
		recorder := &stubRecorder{}
		svc := newServiceUnderTest(lookups, recorder)

		_, err := svc.Predict(context.Background(), tc.raw)
		require.Error(t, err, tc.raw)
		require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound), tc.raw)
		require.Equal(t, NotFoundMessage, apperrors.MessageOf(err))
		require.Equal(t, []string{tc.reason}, recorder.misses, tc.raw)
		require.Empty(t, lookups.incremented)
	}
}

func TestPredictIgnoresLookupStoreFailure(t *testing.T) {
	svc := newServiceUnderTest(&stubLookupStore{err: errors.New("valkey down")}, nil)

	pred, err := svc.Predict(context.Background(), "B003")
	require.NoError(t, err)
	require.Equal(t, "B003", pred.BillboardID)
}

func TestPredictTier2AverageWithinBounds(t *testing.T) {
	svc := newServiceUnderTest(nil, nil)

	pred, err := svc.Predict(context.Background(), "B020")
	require.NoError(t, err)
	avg := pred.DetailedData.HistoricalData.Summary.AverageDaily
	require.GreaterOrEqual(t, avg, int(1000*0.7*0.6))
	require.LessOrEqual(t, avg, int(1400*1.1*1.1))
}

func TestTrendingCapsLimit(t *testing.T) {
	lookups := &stubLookupStore{top: []Lookup{{Code: "B001", Lookups: 3}}}
	svc := newServiceUnderTest(lookups, nil)

	items, err := svc.Trending(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, []Lookup{{Code: "B001", Lookups: 3}}, items)
	require.Equal(t, 3, lookups.lastLimit, "default limit is capped at catalog size")

	_, err = svc.Trending(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, lookups.lastLimit)
}

func TestTrendingWrapsStoreError(t *testing.T) {
	svc := newServiceUnderTest(&stubLookupStore{err: errors.New("boom")}, nil)

	_, err := svc.Trending(context.Background(), 3)
	require.True(t, apperrors.IsCode(err, apperrors.CodeLookup))
}

func TestTrendingWithoutStore(t *testing.T) {
	svc := newServiceUnderTest(nil, nil)

	items, err := svc.Trending(context.Background(), 3)
	require.NoError(t, err)
	require.Empty(t, items)
	require.NotNil(t, items)
}

func newServiceUnderTest(lookups LookupStore, recorder Recorder) Service {
	gen := forecast.NewGenerator(
		forecast.WithSource(rand.New(rand.NewPCG(11, 12))),
		forecast.WithClock(func() time.Time { return time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC) }),
	)
	catalog := stubCatalog{
		{Code: "B001", ID: 1, Region: "Colombo 1 (Fort)", Type: KindDigital, TrafficLevel: TrafficHigh},
		{Code: "B003", ID: 3, Region: "Colombo 3 (Kollupitiya)", Type: KindDigital, TrafficLevel: TrafficHigh},
		{Code: "B020", ID: 20, Region: "Colombo 7 (Cinnamon Gardens)", Type: KindDigital, TrafficLevel: TrafficHigh},
	}
	return NewService(Config{HistoryDays: 60}, catalog, lookups, gen, recorder, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type stubCatalog []Billboard

func (c stubCatalog) List() []Billboard { return c }

func (c stubCatalog) FindByCode(code string) (Billboard, bool) {
	for _, b := range c {
		if b.Code == code {
			return b, true
		}
	}
	return Billboard{}, false
}

func (c stubCatalog) FindByID(id int) (Billboard, bool) {
	for _, b := range c {
		if b.ID == id {
			return b, true
		}
	}
	return Billboard{}, false
}

type stubLookupStore struct {
	incremented []string
	top         []Lookup
	lastLimit   int
	err         error
}

func (s *stubLookupStore) IncrementLookup(_ context.Context, code string) error {
	if s.err != nil {
		return s.err
	}
	s.incremented = append(s.incremented, code)
	return nil
}

func (s *stubLookupStore) TopLookups(_ context.Context, limit int) ([]Lookup, error) {
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.top, nil
}

type stubRecorder struct {
	tiers  []int
	misses []string
}

func (r *stubRecorder) RecordPrediction(tier int)      { r.tiers = append(r.tiers, tier) }
func (r *stubRecorder) RecordLookupMiss(reason string) { r.misses = append(r.misses, reason) }
