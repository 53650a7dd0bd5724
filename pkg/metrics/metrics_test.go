package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	rec := NewRecorder("test")

	rec.RecordPrediction(1)
	rec.RecordPrediction(1)
	rec.RecordPrediction(2)
	rec.RecordLookupMiss("malformed")
	rec.ObserveRequest(http.MethodGet, "/api/predict/:billboard_id", http.StatusOK, 5*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(rec.predictions.WithLabelValues("1")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.predictions.WithLabelValues("2")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.lookupMisses.WithLabelValues("malformed")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.requests.WithLabelValues("GET", "/api/predict/:billboard_id", "200")))
}

func TestRecorderHandlerExposesMetrics(t *testing.T) {
	rec := NewRecorder("")
	rec.RecordPrediction(0)

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `billboard_predictions_total{tier="0"} 1`)
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	require.NotPanics(t, func() {
		rec.RecordPrediction(0)
		rec.RecordLookupMiss("not_found")
		rec.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}

func TestRecorderRegistryGathersLookupMisses(t *testing.T) {
	rec := NewRecorder("insights")
	rec.RecordLookupMiss("not_found")
	rec.RecordLookupMiss("not_found")
	rec.RecordLookupMiss("malformed")

	expected := `
# HELP insights_lookup_misses_total Billboard lookups that matched no catalog entry
# TYPE insights_lookup_misses_total counter
insights_lookup_misses_total{reason="malformed"} 1
insights_lookup_misses_total{reason="not_found"} 2
`
	require.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(expected), "insights_lookup_misses_total"))
}
