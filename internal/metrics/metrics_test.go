package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(Recommendations.WithLabelValues(OutcomeNotFound))
	RecordRecommendation(OutcomeNotFound)
	after := testutil.ToFloat64(Recommendations.WithLabelValues(OutcomeNotFound))
	if after-before != 1 {
		t.Errorf("counter delta = %v, want 1", after-before)
	}
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/movies/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.CollectAndCount(HTTPRequestDuration)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/movies/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/movies/43", nil))
	after := testutil.CollectAndCount(HTTPRequestDuration)

	// dos paths distintos, una sola serie: GET /movies/{id} 418
	if after-before != 1 {
		t.Errorf("new series = %d, want 1", after-before)
	}
}
