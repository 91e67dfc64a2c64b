package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	draftsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drafts_generated_total",
			Help: "Total number of email drafts generated",
		},
	)

	draftsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drafts_sent_total",
			Help: "Total number of drafts sent by email",
		},
	)

	leadsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_imported_total",
			Help: "Total number of leads imported from CSV",
		},
	)

	signalsDiscovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signals_discovered_total",
			Help: "Total number of buying signals returned by discovery",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordDraftsGenerated(n int) {
	draftsGenerated.Add(float64(n))
}

func RecordDraftSent() {
	draftsSent.Inc()
}

func RecordLeadsImported(n int) {
	leadsImported.Add(float64(n))
}

func RecordSignalsDiscovered(n int) {
	signalsDiscovered.Add(float64(n))
}
