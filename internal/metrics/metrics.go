// Package metrics registra las métricas Prometheus del servicio (expuestas en /metrics).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados posibles de una consulta de recomendaciones.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movierec_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_recommendations_total",
			Help: "Recommendation lookups by outcome",
		},
		[]string{"outcome"},
	)

	NeighborQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movierec_knn_query_duration_seconds",
			Help:    "Duration of nearest-neighbor index queries",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		},
	)

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movierec_cache_hits_total",
		Help: "Recommendation results served from cache",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movierec_cache_misses_total",
		Help: "Recommendation lookups not found in cache",
	})

	CatalogRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "movierec_catalog_rows",
		Help: "Movies loaded in the catalog",
	})

	FeatureWidth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "movierec_feature_width",
		Help: "Dimensions of the genre feature vector",
	})
)

func RecordRecommendation(outcome string) {
	Recommendations.WithLabelValues(outcome).Inc()
}

// Middleware mide la duración por ruta (patrón de chi, no el path crudo).
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		HTTPRequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
