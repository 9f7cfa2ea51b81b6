package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(Logger(logger))
	r.Use(Metrics)
	r.Route("/sessions", func(r chi.Router) {
		r.Route("/{session_id}", func(r chi.Router) {
			r.Post("/confirm", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
			})
			r.Post("/next", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})
	return r
}

func TestLogger_RouteAndSession(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	router := newRouter(logger)

	req := httptest.NewRequest(http.MethodPost, "/sessions/abc-123/confirm", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, "level=WARN")
	assert.Contains(t, line, "route=/sessions/{session_id}/confirm")
	assert.Contains(t, line, "session_id=abc-123")
	assert.Contains(t, line, "status=409")
	assert.NotContains(t, line, "/sessions/abc-123/confirm")
}

func TestMetrics_RoutePatternLabels(t *testing.T) {
	var buf bytes.Buffer
	router := newRouter(slog.New(slog.NewTextHandler(&buf, nil)))
	route := "/sessions/{session_id}/next"

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, route, "200"))
	for _, id := range []string{"a", "b", "c"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/next", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
	assert.Equal(t, before+3, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, route, "200")))

	confirm := "/sessions/{session_id}/confirm"
	conflicts := testutil.ToFloat64(sessionConflictsTotal.WithLabelValues(confirm))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/sessions/a/confirm", nil))
	assert.Equal(t, conflicts+1, testutil.ToFloat64(sessionConflictsTotal.WithLabelValues(confirm)))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelFor(http.StatusOK))
	assert.Equal(t, slog.LevelWarn, levelFor(http.StatusNotFound))
	assert.Equal(t, slog.LevelError, levelFor(http.StatusBadGateway))
}
