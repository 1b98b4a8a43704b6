package service

import (
	"context"
	"errors"

	"github.com/Yhabib05/movie-recommender/internal/catalog"
	"github.com/Yhabib05/movie-recommender/internal/knn"
	"github.com/Yhabib05/movie-recommender/internal/models"
)

var ErrHistoryDisabled = errors.New("recommendation history is not enabled")

// HistoryFinder lee el historial guardado por HistoryStore.
type HistoryFinder interface {
	FindByQuery(ctx context.Context, title string, limit int64) ([]models.Recommendation, error)
}

// IndexService expone el estado del catálogo y del índice para mantenimiento.
type IndexService struct {
	catalog  *catalog.Catalog
	index    knn.Index
	artifact *knn.Artifact
	source   string
	history  HistoryFinder
}

func NewIndexService(c *catalog.Catalog, idx knn.Index, a *knn.Artifact, source string, history HistoryFinder) *IndexService {
	return &IndexService{catalog: c, index: idx, artifact: a, source: source, history: history}
}

func (s *IndexService) Summary() *models.IndexSummary {
	sum := &models.IndexSummary{
		K:              K,
		CatalogRows:    s.catalog.Len(),
		IndexRows:      s.index.Len(),
		FeatureWidth:   s.catalog.Features().Width(),
		Genres:         append([]string(nil), s.catalog.Features().Columns...),
		DuplicateTitle: s.catalog.DuplicateTitles(),
		CatalogSource:  s.source,
	}
	if s.artifact != nil {
		sum.ModelID = s.artifact.ModelID
		sum.Metric = string(s.artifact.Metric)
		sum.TrainedAt = s.artifact.CreatedAt
	}
	return sum
}

// History devuelve las últimas recomendaciones servidas para un título.
func (s *IndexService) History(ctx context.Context, title string, limit int64) ([]models.Recommendation, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.history.FindByQuery(ctx, title, limit)
}
