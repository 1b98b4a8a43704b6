package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Yhabib05/movie-recommender/internal/models"
)

// columnas requeridas del CSV (layout de movies.csv de MovieLens)
const (
	colID     = "movieId"
	colTitle  = "title"
	colGenres = "genres"
)

var ErrEmptyCatalog = errors.New("catalog has no movies")

// LoadCSV abre y parsea el catálogo desde disco.
func LoadCSV(path string) ([]models.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	movies, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return movies, nil
}

// ReadCSV lee filas movieId,title,genres (en cualquier orden de columnas).
// Cualquier fila mal formada invalida el catálogo completo.
func ReadCSV(r io.Reader) ([]models.Movie, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyCatalog
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := map[string]int{colID: -1, colTitle: -1, colGenres: -1}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, ok := idx[h]; ok {
			idx[h] = i
		}
	}
	for _, c := range []string{colID, colTitle, colGenres} {
		if idx[c] < 0 {
			return nil, fmt.Errorf("missing column %q in header", c)
		}
	}

	var movies []models.Movie
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		id, err := strconv.Atoi(strings.TrimSpace(rec[idx[colID]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid movieId %q", line, rec[idx[colID]])
		}
		title := rec[idx[colTitle]]
		if strings.TrimSpace(title) == "" {
			return nil, fmt.Errorf("line %d: empty title", line)
		}

		raw := rec[idx[colGenres]]
		movies = append(movies, models.Movie{
			MovieID:   id,
			Title:     title,
			Genres:    models.SplitGenres(raw),
			RawGenres: raw,
		})
	}

	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	return movies, nil
}
