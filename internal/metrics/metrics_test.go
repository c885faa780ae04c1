package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/stores/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"1", "2"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stores/"+id, nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/stores/{id}", http.MethodGet, "404")))
}

func TestSnapshotGauges(t *testing.T) {
	m := New()
	at := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	m.SnapshotComputed(at)
	m.SnapshotFailed()
	m.DigestQueued()

	assert.Equal(t, float64(at.Unix()), testutil.ToFloat64(m.snapshotComputedAt))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.snapshotFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.digestsQueued))
}

func TestHandler(t *testing.T) {
	m := New()
	m.SnapshotFailed()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "salesaice_snapshot_failures_total 1"))
}
