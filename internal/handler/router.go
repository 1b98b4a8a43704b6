package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/Yhabib05/movie-recommender/internal/logging"
	"github.com/Yhabib05/movie-recommender/internal/metrics"
	"github.com/Yhabib05/movie-recommender/internal/service"
)

// Deps es lo que necesita el router; todo se construye una vez al arrancar.
type Deps struct {
	Recommend *service.RecommendService
	Movies    *service.MovieService
	Index     *service.IndexService

	// vacío = rutas /admin sin autenticación
	JWTSecret         string
	CORSOrigins       []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func NewRouter(d Deps) http.Handler {
	recH := NewRecommendHandler(d.Recommend)
	movieH := NewMovieHandler(d.Movies)
	idxH := NewIndexHandler(d.Index)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)

	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// =============
	// Rutas públicas
	// =============
	r.Get("/", Index)
	r.Get("/health", idxH.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		if d.RateLimitRequests > 0 {
			r.Use(httprate.LimitByIP(d.RateLimitRequests, d.RateLimitWindow))
		}

		r.Post("/getRecommendations", recH.GetRecommendations)
		r.Get("/ws/recommendations", recH.GetRecommendationsWS)

		r.Get("/movies/search", movieH.Search)
		r.Get("/movies/{id}", movieH.GetMovie)
		r.Get("/genres", movieH.Genres)
	})

	// ---- Endpoints ADMIN ----
	r.Group(func(r chi.Router) {
		if d.JWTSecret != "" {
			r.Use(RequireAdmin(d.JWTSecret))
		}
		MountAdminRoutes(r, idxH)
	})

	return r
}
