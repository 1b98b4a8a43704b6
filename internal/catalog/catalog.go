// Package catalog carga el catálogo de películas y su codificación one-hot de géneros.
// Todo lo que expone es de solo lectura después de New.
package catalog

import (
	"strings"

	"github.com/Yhabib05/movie-recommender/internal/models"
)

type Catalog struct {
	movies   []models.Movie
	byTitle  map[string]int
	byID     map[int]int
	features *FeatureTable
	dupes    int
}

// New indexa las películas por título y por movieId y codifica los géneros.
// Con títulos repetidos gana la primera fila.
func New(movies []models.Movie) *Catalog {
	c := &Catalog{
		movies:   movies,
		byTitle:  make(map[string]int, len(movies)),
		byID:     make(map[int]int, len(movies)),
		features: Encode(movies),
	}
	for i, m := range movies {
		if _, ok := c.byTitle[m.Title]; ok {
			c.dupes++
		} else {
			c.byTitle[m.Title] = i
		}
		if _, ok := c.byID[m.MovieID]; !ok {
			c.byID[m.MovieID] = i
		}
	}
	return c
}

func (c *Catalog) Len() int { return len(c.movies) }

func (c *Catalog) Features() *FeatureTable { return c.features }

// DuplicateTitles cuenta las filas cuyo título ya apareció antes.
func (c *Catalog) DuplicateTitles() int { return c.dupes }

// Movie devuelve la fila i del catálogo.
func (c *Catalog) Movie(row int) (models.Movie, bool) {
	if row < 0 || row >= len(c.movies) {
		return models.Movie{}, false
	}
	return c.movies[row], true
}

// RowOf busca por título exacto (primera coincidencia).
func (c *Catalog) RowOf(title string) (int, bool) {
	row, ok := c.byTitle[title]
	return row, ok
}

func (c *Catalog) ByID(movieID int) (models.Movie, bool) {
	row, ok := c.byID[movieID]
	if !ok {
		return models.Movie{}, false
	}
	return c.movies[row], true
}

// Search filtra por substring del título (sin mayúsculas) y/o género exacto, paginado.
func (c *Catalog) Search(q, genre string, limit, offset int) []models.Movie {
	q = strings.ToLower(strings.TrimSpace(q))
	out := []models.Movie{}
	skipped := 0
	for _, m := range c.movies {
		if q != "" && !strings.Contains(strings.ToLower(m.Title), q) {
			continue
		}
		if genre != "" && !hasGenre(m.Genres, genre) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Genres devuelve las columnas del encoder con la cantidad de películas de cada una.
func (c *Catalog) Genres() map[string]int {
	counts := make(map[string]int, c.features.Width())
	for _, g := range c.features.Columns {
		counts[g] = 0
	}
	for _, m := range c.movies {
		for _, g := range m.Genres {
			counts[g]++
		}
	}
	return counts
}

func hasGenre(genres []string, want string) bool {
	for _, g := range genres {
		if strings.EqualFold(g, want) {
			return true
		}
	}
	return false
}
