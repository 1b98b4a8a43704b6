package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Yhabib05/movie-recommender/internal/catalog"
	"github.com/Yhabib05/movie-recommender/internal/knn"
	"github.com/Yhabib05/movie-recommender/internal/logging"
	"github.com/Yhabib05/movie-recommender/internal/metrics"
	"github.com/Yhabib05/movie-recommender/internal/models"
)

// K es la cantidad fija de vecinos por consulta.
const K = 5

var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrIndexOutOfRange = errors.New("index returned a row outside the catalog")
)

// NotFoundError lleva el título consultado; errors.Is(err, ErrMovieNotFound) es true.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Movie '%s' not found in the dataset.", e.Title)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrMovieNotFound }

// ResultCache es el cache opcional de resultados (Redis en producción).
type ResultCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

// HistoryStore guarda cada recomendación servida (Mongo, opcional).
type HistoryStore interface {
	Insert(ctx context.Context, rec *models.Recommendation) error
}

type RecommendService struct {
	catalog *catalog.Catalog
	index   knn.Index
	modelID string
	metric  string

	cache   ResultCache
	history HistoryStore
}

type Option func(*RecommendService)

func WithCache(c ResultCache) Option {
	return func(s *RecommendService) { s.cache = c }
}

func WithHistory(h HistoryStore) Option {
	return func(s *RecommendService) { s.history = h }
}

// NewRecommendService recibe el catálogo y el índice ya cargados; ninguno se modifica después.
func NewRecommendService(c *catalog.Catalog, idx knn.Index, modelID, metric string, opts ...Option) *RecommendService {
	s := &RecommendService{
		catalog: c,
		index:   idx,
		modelID: modelID,
		metric:  metric,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func cacheKey(modelID, title string) string {
	// el modelId entra en la key: un índice nuevo invalida lo cacheado
	return fmt.Sprintf("rec:%s:k:%d:%s", modelID, K, title)
}

// GetRecommendations devuelve hasta K películas {title, genres} por distancia ascendente.
// La propia película suele salir primera (distancia 0).
func (s *RecommendService) GetRecommendations(ctx context.Context, title string) ([]models.RecItem, error) {
	scored, err := s.Neighbors(ctx, title)
	if err != nil {
		return nil, err
	}
	items := make([]models.RecItem, len(scored))
	for i, r := range scored {
		items[i] = r.RecItem
	}
	return items, nil
}

// Neighbors es GetRecommendations conservando movieId y distancia.
func (s *RecommendService) Neighbors(ctx context.Context, title string) ([]models.ScoredRec, error) {
	key := cacheKey(s.modelID, title)
	if s.cache != nil {
		var cached []models.ScoredRec
		if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			metrics.CacheHits.Inc()
			metrics.RecordRecommendation(metrics.OutcomeOK)
			s.record(ctx, title, cached)
			return cached, nil
		} else if err != nil {
			logging.Warn().Err(err).Msg("error leyendo cache de recomendaciones")
		}
		metrics.CacheMisses.Inc()
	}

	items, err := s.query(title)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			metrics.RecordRecommendation(metrics.OutcomeNotFound)
		} else {
			metrics.RecordRecommendation(metrics.OutcomeError)
		}
		return nil, err
	}
	metrics.RecordRecommendation(metrics.OutcomeOK)

	// cache e historial no rompen la respuesta si fallan
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, items); err != nil {
			logging.Warn().Err(err).Msg("error cacheando recomendación")
		}
	}
	s.record(ctx, title, items)

	return items, nil
}

// record guarda en el historial cada recomendación servida, venga del cache o no.
func (s *RecommendService) record(ctx context.Context, title string, items []models.ScoredRec) {
	if s.history == nil {
		return
	}
	hist := &models.Recommendation{
		Query:     title,
		ModelID:   s.modelID,
		Metric:    s.metric,
		K:         K,
		Items:     items,
		CreatedAt: time.Now(),
	}
	if err := s.history.Insert(ctx, hist); err != nil {
		logging.Warn().Err(err).Msg("error guardando historial en Mongo")
	}
}

// query: título -> fila -> vector -> vecinos -> filas del catálogo.
func (s *RecommendService) query(title string) ([]models.ScoredRec, error) {
	row, ok := s.catalog.RowOf(title)
	if !ok {
		return nil, &NotFoundError{Title: title}
	}

	vec, ok := s.catalog.Features().Row(row)
	if !ok {
		return nil, fmt.Errorf("%w: feature row %d", ErrIndexOutOfRange, row)
	}

	start := time.Now()
	neighbors, err := s.index.Query(vec, K)
	metrics.NeighborQueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("query index for %q: %w", title, err)
	}
	if len(neighbors) > K {
		neighbors = neighbors[:K]
	}

	items := make([]models.ScoredRec, 0, len(neighbors))
	for _, n := range neighbors {
		m, ok := s.catalog.Movie(n.Row)
		if !ok {
			return nil, fmt.Errorf("%w: row %d (catalog has %d)", ErrIndexOutOfRange, n.Row, s.catalog.Len())
		}
		items = append(items, models.ScoredRec{
			RecItem:  models.RecItem{Title: m.Title, Genres: m.GenreString()},
			MovieID:  m.MovieID,
			Distance: n.Distance,
		})
	}
	return items, nil
}
