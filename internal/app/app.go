// Package app arma el contexto de la aplicación: catálogo, índice KNN, servicios y router.
// Se construye una sola vez al arrancar y después es de solo lectura.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Yhabib05/movie-recommender/internal/cache"
	"github.com/Yhabib05/movie-recommender/internal/catalog"
	"github.com/Yhabib05/movie-recommender/internal/config"
	"github.com/Yhabib05/movie-recommender/internal/db"
	"github.com/Yhabib05/movie-recommender/internal/handler"
	"github.com/Yhabib05/movie-recommender/internal/knn"
	"github.com/Yhabib05/movie-recommender/internal/logging"
	"github.com/Yhabib05/movie-recommender/internal/metrics"
	"github.com/Yhabib05/movie-recommender/internal/models"
	"github.com/Yhabib05/movie-recommender/internal/repository"
	"github.com/Yhabib05/movie-recommender/internal/service"
)

// ErrStartup envuelve todo lo que impide servir (catálogo, índice, layout, Mongo).
var ErrStartup = errors.New("startup failed")

type App struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Index    knn.Index
	Artifact *knn.Artifact

	Cache       *cache.Redis
	MongoClient *mongo.Client
	MongoDB     *mongo.Database

	Recommend *service.RecommendService
	Movies    *service.MovieService
	IndexInfo *service.IndexService
}

func startupErr(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStartup, step, err)
}

// LoadMovies lee el catálogo desde la fuente configurada. mdb solo se usa con source mongo.
func LoadMovies(ctx context.Context, source, path string, mdb *mongo.Database) ([]models.Movie, error) {
	switch source {
	case config.SourceCSV:
		return catalog.LoadCSV(path)
	case config.SourceMongo:
		if mdb == nil {
			return nil, errors.New("mongo catalog source without a database")
		}
		movies, err := repository.NewMovieRepository(mdb).All(ctx)
		if err != nil {
			return nil, err
		}
		if len(movies) == 0 {
			return nil, catalog.ErrEmptyCatalog
		}
		return movies, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
}

// Bootstrap carga catálogo e índice y arma los servicios. Cualquier error es ErrStartup.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	// ====== Mongo (catálogo y/o historial) ======
	if cfg.CatalogSource == config.SourceMongo || cfg.RecordHistory {
		client, mdb, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, startupErr("mongo", err)
		}
		a.MongoClient, a.MongoDB = client, mdb
	}

	// ====== Catálogo + features ======
	movies, err := LoadMovies(ctx, cfg.CatalogSource, cfg.CatalogPath, a.MongoDB)
	if err != nil {
		a.Close(ctx)
		return nil, startupErr("load catalog", err)
	}
	a.Catalog = catalog.New(movies)
	features := a.Catalog.Features()

	// ====== Índice KNN ======
	idx, artifact, err := knn.LoadFile(cfg.IndexPath)
	if err != nil {
		a.Close(ctx)
		return nil, startupErr("load index", err)
	}
	if err := artifact.CheckLayout(features.Columns, a.Catalog.Len()); err != nil {
		a.Close(ctx)
		return nil, startupErr("index layout", err)
	}
	a.Index, a.Artifact = idx, artifact

	logging.Info().
		Int("movies", a.Catalog.Len()).
		Int("genres", features.Width()).
		Int("duplicate_titles", a.Catalog.DuplicateTitles()).
		Str("model_id", artifact.ModelID).
		Str("metric", string(artifact.Metric)).
		Msg("catálogo e índice cargados")

	metrics.CatalogRows.Set(float64(a.Catalog.Len()))
	metrics.FeatureWidth.Set(float64(features.Width()))

	// ====== Redis (opcional) ======
	var opts []service.Option
	if cfg.RedisAddr != "" {
		rc := cache.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.CacheTTL)
		if err := rc.Ping(ctx); err != nil {
			logging.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis no disponible, sin cache")
			_ = rc.Close()
		} else {
			a.Cache = rc
			opts = append(opts, service.WithCache(rc))
		}
	}

	var history service.HistoryFinder
	if cfg.RecordHistory && a.MongoDB != nil {
		repo := repository.NewRecommendationRepository(a.MongoDB)
		opts = append(opts, service.WithHistory(repo))
		history = repo
	}

	a.Recommend = service.NewRecommendService(a.Catalog, a.Index, artifact.ModelID, string(artifact.Metric), opts...)
	a.Movies = service.NewMovieService(a.Catalog)
	a.IndexInfo = service.NewIndexService(a.Catalog, a.Index, artifact, cfg.CatalogSource, history)

	return a, nil
}

func (a *App) Router() http.Handler {
	return handler.NewRouter(handler.Deps{
		Recommend:         a.Recommend,
		Movies:            a.Movies,
		Index:             a.IndexInfo,
		JWTSecret:         a.Config.JWTSecret,
		CORSOrigins:       a.Config.CORSOrigins,
		RateLimitRequests: a.Config.RateLimitRequests,
		RateLimitWindow:   a.Config.RateLimitWindow,
	})
}

// Close libera Redis y Mongo si se abrieron.
func (a *App) Close(ctx context.Context) {
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			logging.Warn().Err(err).Msg("error cerrando redis")
		}
	}
	if a.MongoClient != nil {
		if err := a.MongoClient.Disconnect(ctx); err != nil {
			logging.Warn().Err(err).Msg("error desconectando mongo")
		}
	}
}
