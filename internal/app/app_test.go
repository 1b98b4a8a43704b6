package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Yhabib05/movie-recommender/internal/catalog"
	"github.com/Yhabib05/movie-recommender/internal/config"
	"github.com/Yhabib05/movie-recommender/internal/knn"
)

const moviesCSV = `movieId,title,genres
1,Toy Story (1995),Adventure|Animation|Children|Comedy|Fantasy
2,Jumanji (1995),Adventure|Children|Fantasy
3,Grumpier Old Men (1995),Comedy|Romance
4,Waiting to Exhale (1995),Comedy|Drama|Romance
5,Father of the Bride Part II (1995),Comedy
6,Heat (1995),Action|Crime|Thriller
`

// writeFixture deja movies.csv y el índice entrenado sobre csvBody en un directorio temporal.
func writeFixture(t *testing.T, csvBody, indexCSV, indexName string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "movies.csv")
	if err := os.WriteFile(csvPath, []byte(csvBody), 0o600); err != nil {
		t.Fatal(err)
	}

	movies, err := catalog.ReadCSV(strings.NewReader(indexCSV))
	if err != nil {
		t.Fatal(err)
	}
	ft := catalog.Encode(movies)
	art, err := knn.Fit(ft.Columns, ft.Rows(), knn.Minkowski)
	if err != nil {
		t.Fatal(err)
	}
	indexPath := filepath.Join(dir, indexName)
	if err := knn.SaveFile(indexPath, art); err != nil {
		t.Fatal(err)
	}

	cfg := config.Defaults()
	cfg.CatalogPath = csvPath
	cfg.IndexPath = indexPath
	cfg.RateLimitRequests = 0
	return cfg
}

func TestBootstrapServesRecommendations(t *testing.T) {
	for _, name := range []string{"genres.knn.json", "genres.knn.json.xz"} {
		t.Run(name, func(t *testing.T) {
			cfg := writeFixture(t, moviesCSV, moviesCSV, name)

			a, err := Bootstrap(context.Background(), cfg)
			if err != nil {
				t.Fatalf("Bootstrap: %v", err)
			}
			defer a.Close(context.Background())

			if a.Catalog.Len() != 6 || a.Index.Len() != 6 {
				t.Fatalf("rows = %d / %d", a.Catalog.Len(), a.Index.Len())
			}

			req := httptest.NewRequest(http.MethodPost, "/getRecommendations",
				strings.NewReader(`{"movie_name": "Jumanji (1995)"}`))
			rec := httptest.NewRecorder()
			a.Router().ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if !strings.HasPrefix(rec.Body.String(), `[{"title":"Jumanji (1995)","genres":"Adventure|Children|Fantasy"}`) {
				t.Errorf("body = %s", rec.Body.String())
			}
		})
	}
}

func TestBootstrapStartupFailures(t *testing.T) {
	shorter := strings.Join(strings.Split(moviesCSV, "\n")[:6], "\n") + "\n"
	otherGenres := "movieId,title,genres\n1,Solo (2018),Sci-Fi\n2,Heat (1995),Action\n"

	tests := []struct {
		name   string
		cfg    func(t *testing.T) *config.Config
		target error
	}{
		{"index trained on fewer rows", func(t *testing.T) *config.Config {
			return writeFixture(t, moviesCSV, shorter, "idx.json")
		}, knn.ErrLayoutMismatch},
		{"index trained on other genres", func(t *testing.T) *config.Config {
			return writeFixture(t, moviesCSV, otherGenres, "idx.json")
		}, knn.ErrLayoutMismatch},
		{"missing index", func(t *testing.T) *config.Config {
			cfg := writeFixture(t, moviesCSV, moviesCSV, "idx.json")
			cfg.IndexPath = filepath.Join(t.TempDir(), "nope.json")
			return cfg
		}, os.ErrNotExist},
		{"missing catalog", func(t *testing.T) *config.Config {
			cfg := writeFixture(t, moviesCSV, moviesCSV, "idx.json")
			cfg.CatalogPath = filepath.Join(t.TempDir(), "nope.csv")
			return cfg
		}, os.ErrNotExist},
		{"empty catalog", func(t *testing.T) *config.Config {
			return writeFixture(t, "movieId,title,genres\n", moviesCSV, "idx.json")
		}, catalog.ErrEmptyCatalog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Bootstrap(context.Background(), tt.cfg(t))
			if !errors.Is(err, ErrStartup) {
				t.Fatalf("err = %v, want ErrStartup", err)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want wrapped %v", err, tt.target)
			}
		})
	}
}

func TestLoadMoviesUnknownSource(t *testing.T) {
	if _, err := LoadMovies(context.Background(), "parquet", "x", nil); err == nil {
		t.Fatal("expected error")
	}
	if _, err := LoadMovies(context.Background(), config.SourceMongo, "", nil); err == nil {
		t.Fatal("expected error for mongo source without database")
	}
}
