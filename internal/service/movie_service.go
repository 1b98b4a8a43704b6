// internal/service/movie_service.go
package service

import (
	"sort"

	"github.com/Yhabib05/movie-recommender/internal/catalog"
	"github.com/Yhabib05/movie-recommender/internal/models"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

type MovieService struct {
	catalog *catalog.Catalog
}

func NewMovieService(c *catalog.Catalog) *MovieService {
	return &MovieService{catalog: c}
}

// GetMovie devuelve nil si el movieId no existe.
func (s *MovieService) GetMovie(id int) *models.Movie {
	m, ok := s.catalog.ByID(id)
	if !ok {
		return nil
	}
	return &m
}

func (s *MovieService) Search(q, genre string, limit, offset int) []models.Movie {
	if limit <= 0 {
		limit = DefaultSearchLimit
	} else if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.catalog.Search(q, genre, limit, offset)
}

type GenreCount struct {
	Genre  string `json:"genre"`
	Movies int    `json:"movies"`
}

// Genres lista las dimensiones del vector de features, en orden.
func (s *MovieService) Genres() []GenreCount {
	counts := s.catalog.Genres()
	out := make([]GenreCount, 0, len(counts))
	for g, n := range counts {
		out = append(out, GenreCount{Genre: g, Movies: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Genre < out[j].Genre })
	return out
}
