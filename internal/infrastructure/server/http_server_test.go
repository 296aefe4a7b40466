package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aidin1998/templates/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestHTTPServer(t *testing.T, db Pinger) (*HTTPServer, *metrics.Metrics) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	s, err := NewHTTPServer(HTTPServerOptions{
		Logger:   zaptest.NewLogger(t),
		DB:       db,
		Gatherer: reg,
	})
	require.NoError(t, err)
	return s, m
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewHTTPServerValidatesOptions(t *testing.T) {
	_, err := NewHTTPServer(HTTPServerOptions{Gatherer: prometheus.NewRegistry()})
	assert.Error(t, err)

	_, err = NewHTTPServer(HTTPServerOptions{Logger: zap.NewNop()})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	tests := []struct {
		name   string
		db     Pinger
		code   int
		status HealthStatus
	}{
		{name: "no database", db: nil, code: http.StatusOK, status: HealthStatusUp},
		{name: "database up", db: stubPinger{}, code: http.StatusOK, status: HealthStatusUp},
		{name: "database down", db: stubPinger{err: errors.New("connection refused")}, code: http.StatusServiceUnavailable, status: HealthStatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestHTTPServer(t, tt.db)
			rec := get(t, s.Handler(), "/health")
			assert.Equal(t, tt.code, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(tt.status), body["status"])
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s, m := newTestHTTPServer(t, nil)
	m.RequestsTotal.WithLabelValues("/templates.Templates/GetAllTemplates", "OK").Inc()
	m.ObserveDBStats(1, 1, 0)

	rec := get(t, s.Handler(), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `templates_grpc_requests_total{code="OK",method="/templates.Templates/GetAllTemplates"} 1`)
	assert.Contains(t, rec.Body.String(), "templates_db_open_connections 1")
}

func TestUnknownRoute(t *testing.T) {
	s, _ := newTestHTTPServer(t, nil)
	assert.Equal(t, http.StatusNotFound, get(t, s.Handler(), "/nope").Code)
}
