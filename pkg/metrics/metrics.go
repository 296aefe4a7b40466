package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service collectors. Collectors are registered on the
// registerer passed to New rather than the global default registry.
type Metrics struct {
	// RequestsTotal counts completed RPCs by method and status code
	RequestsTotal *prometheus.CounterVec
	// RequestLatency records handler latency by method
	RequestLatency *prometheus.HistogramVec
	// InFlight is the number of handlers currently holding a worker slot
	InFlight prometheus.Gauge

	// Database connection pool metrics
	DBOpenConns  prometheus.Gauge
	DBIdleConns  prometheus.Gauge
	DBInUseConns prometheus.Gauge
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "templates_grpc_requests_total",
				Help: "Total number of gRPC requests handled, by method and code",
			},
			[]string{"method", "code"},
		),
		RequestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "templates_grpc_request_duration_seconds",
				Help:    "Latency in seconds of gRPC request handling",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "templates_grpc_in_flight_requests",
			Help: "Number of gRPC requests currently being handled",
		}),
		DBOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "templates_db_open_connections",
			Help: "Number of open connections in the DB pool",
		}),
		DBIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "templates_db_idle_connections",
			Help: "Number of idle connections in the DB pool",
		}),
		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "templates_db_in_use_connections",
			Help: "Number of in-use connections in the DB pool",
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestLatency,
		m.InFlight,
		m.DBOpenConns,
		m.DBIdleConns,
		m.DBInUseConns,
	)
	return m
}

// ObserveDBStats copies connection pool statistics into the DB gauges
func (m *Metrics) ObserveDBStats(open, idle, inUse int) {
	m.DBOpenConns.Set(float64(open))
	m.DBIdleConns.Set(float64(idle))
	m.DBInUseConns.Set(float64(inUse))
}
