package metricsx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceFuncIncrementsCounter(t *testing.T) {
	trace := TraceFunc()
	trace("mul", "karatsuba")
	trace("mul", "karatsuba")
	trace("div", "newton")

	assert.Equal(t, float64(2), testutil.ToFloat64(algoSelections.WithLabelValues("mul", "karatsuba")))
	assert.Equal(t, float64(1), testutil.ToFloat64(algoSelections.WithLabelValues("div", "newton")))
}

func TestHandlerServesExposition(t *testing.T) {
	TraceFunc()("mul", "classical")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "natcore_algo_selections_total")
}
