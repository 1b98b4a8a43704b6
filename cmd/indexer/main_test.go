package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Yhabib05/movie-recommender/internal/catalog"
	"github.com/Yhabib05/movie-recommender/internal/config"
	"github.com/Yhabib05/movie-recommender/internal/knn"
)

const moviesCSV = `movieId,title,genres
1,Toy Story (1995),Adventure|Animation|Children|Comedy|Fantasy
2,Jumanji (1995),Adventure|Children|Fantasy
3,Grumpier Old Men (1995),Comedy|Romance
4,Heat (1995),Action|Crime|Thriller
5,Untitled (2001),
`

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(moviesCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildIndexRoundTrip(t *testing.T) {
	csvPath := writeCSV(t)

	for _, name := range []string{"genres.knn.json", "genres.knn.json.xz"} {
		t.Run(name, func(t *testing.T) {
			movies, err := loadMovies(context.Background(), config.SourceCSV, csvPath, "", "")
			if err != nil {
				t.Fatalf("loadMovies: %v", err)
			}
			out := filepath.Join(t.TempDir(), name)

			art, err := buildIndex(movies, knn.Jaccard, out)
			if err != nil {
				t.Fatalf("buildIndex: %v", err)
			}

			idx, loaded, err := knn.LoadFile(out)
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if loaded.ModelID != art.ModelID || loaded.Metric != knn.Jaccard {
				t.Errorf("loaded artifact = %s/%s, want %s/%s", loaded.ModelID, loaded.Metric, art.ModelID, knn.Jaccard)
			}

			// el servidor arranca con el mismo CSV: el layout tiene que coincidir
			c := catalog.New(movies)
			if err := loaded.CheckLayout(c.Features().Columns, c.Len()); err != nil {
				t.Fatalf("CheckLayout: %v", err)
			}
			if idx.Len() != 5 || idx.Dim() != c.Features().Width() {
				t.Errorf("index %dx%d, catalog %dx%d", idx.Len(), idx.Dim(), c.Len(), c.Features().Width())
			}

			vec, _ := c.Features().Row(3)
			got, err := idx.Query(vec, 1)
			if err != nil || len(got) != 1 || got[0].Row != 3 {
				t.Errorf("Query(Heat) = %v, %v", got, err)
			}
		})
	}
}

func TestLoadMoviesSources(t *testing.T) {
	ctx := context.Background()

	if _, err := loadMovies(ctx, "parquet", writeCSV(t), "", ""); err == nil {
		t.Error("unknown source: expected error")
	}
	if _, err := loadMovies(ctx, config.SourceCSV, filepath.Join(t.TempDir(), "nope.csv"), "", ""); err == nil {
		t.Error("missing csv: expected error")
	}
}

func TestBuildIndexUnwritableOutput(t *testing.T) {
	movies, err := loadMovies(context.Background(), config.SourceCSV, writeCSV(t), "", "")
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "missing-dir", "idx.json")
	if _, err := buildIndex(movies, knn.Minkowski, out); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func TestPrintSummary(t *testing.T) {
	movies, err := loadMovies(context.Background(), config.SourceCSV, writeCSV(t), "", "")
	if err != nil {
		t.Fatal(err)
	}
	art, err := buildIndex(movies, knn.Minkowski, filepath.Join(t.TempDir(), "idx.json"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	printSummary(&buf, art, config.SourceCSV, len(movies), 2048, time.Millisecond, 3*time.Millisecond)
	out := buf.String()
	for _, want := range []string{art.ModelID, "minkowski", "2.0 kB", "genres: Action, Adventure"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
