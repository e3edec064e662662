package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec

	SearchDuration      *prometheus.HistogramVec
	CandidatesGenerated *prometheus.CounterVec
	CandidatesRejected  *prometheus.CounterVec
	SlotsReturned       *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в реестре reg
// В production передается prometheus.DefaultRegisterer, в тестах - prometheus.NewRegistry()
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections to the database",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		SearchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "slot_search_duration_seconds",
			Help:        "Duration of slot searches in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"mode"}),
		CandidatesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_candidates_generated_total",
			Help:        "Total number of generated slot candidates",
			ConstLabels: constLabels,
		}, []string{"mode"}),
		CandidatesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_candidates_conflicting_total",
			Help:        "Total number of candidates removed because of booking conflicts",
			ConstLabels: constLabels,
		}, []string{"mode"}),
		SlotsReturned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_results_returned_total",
			Help:        "Total number of ranked slots returned to callers",
			ConstLabels: constLabels,
		}, []string{"mode"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.SearchDuration,
		m.CandidatesGenerated,
		m.CandidatesRejected,
		m.SlotsReturned,
	)

	return m
}

// ObserveSearch фиксирует результат одного поиска слотов
func (m *Metrics) ObserveSearch(mode string, duration time.Duration, generated, conflicting, returned int) {
	m.SearchDuration.WithLabelValues(mode).Observe(duration.Seconds())
	m.CandidatesGenerated.WithLabelValues(mode).Add(float64(generated))
	m.CandidatesRejected.WithLabelValues(mode).Add(float64(conflicting))
	m.SlotsReturned.WithLabelValues(mode).Add(float64(returned))
}
