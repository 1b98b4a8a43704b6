package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Yhabib05/movie-recommender/internal/models"
)

const sampleCSV = `movieId,title,genres
1,Toy Story (1995),Adventure|Animation|Children|Comedy|Fantasy
2,Jumanji (1995),Adventure|Children|Fantasy
3,Grumpier Old Men (1995),Comedy|Romance
4,"Waiting to Exhale, The (1995)",Comedy|Drama|Romance
5,Untitled (2001),
6,Toy Story (1995),Comedy
`

func TestReadCSV(t *testing.T) {
	movies, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(movies) != 6 {
		t.Fatalf("len(movies) = %d, want 6", len(movies))
	}
	if movies[3].Title != "Waiting to Exhale, The (1995)" {
		t.Errorf("quoted title = %q", movies[3].Title)
	}
	if len(movies[4].Genres) != 0 {
		t.Errorf("empty genre field = %v, want no genres", movies[4].Genres)
	}
	want := []string{"Adventure", "Children", "Fantasy"}
	if !reflect.DeepEqual(movies[1].Genres, want) {
		t.Errorf("genres = %v, want %v", movies[1].Genres, want)
	}
}

func TestReadCSVColumnOrder(t *testing.T) {
	in := "genres,title,movieId\nDrama|Crime,Heat (1995),6\n"
	movies, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	got := movies[0]
	if got.MovieID != 6 || got.Title != "Heat (1995)" || got.GenreString() != "Drama|Crime" {
		t.Errorf("movie = %+v", got)
	}
}

func TestGenreStringKeepsRawColumn(t *testing.T) {
	in := "movieId,title,genres\n1,Twice (2000),Comedy|Comedy\n2,Plain (2001),Drama|Crime\n"
	movies, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	c := New(movies)

	m, _ := c.Movie(0)
	if !reflect.DeepEqual(m.Genres, []string{"Comedy"}) {
		t.Errorf("one-hot genres = %v, want [Comedy]", m.Genres)
	}
	if m.GenreString() != "Comedy|Comedy" {
		t.Errorf("GenreString() = %q, want the raw column", m.GenreString())
	}
	if row, _ := c.Features().Row(0); len(row) != c.Features().Width() {
		t.Errorf("feature row width = %d", len(row))
	}

	// sin columna cruda (fuente Mongo) se unen los géneros
	fromMongo := models.Movie{MovieID: 3, Title: "Heat (1995)", Genres: []string{"Action", "Crime"}}
	if got := fromMongo.GenreString(); got != "Action|Crime" {
		t.Errorf("GenreString() = %q", got)
	}
}

func TestReadCSVMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"header only", "movieId,title,genres\n"},
		{"missing column", "movieId,title\n1,Heat (1995)\n"},
		{"bad id", "movieId,title,genres\nabc,Heat (1995),Drama\n"},
		{"empty title", "movieId,title,genres\n1, ,Drama\n"},
		{"short row", "movieId,title,genres\n1,Heat (1995)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.in)); err == nil {
				t.Error("ReadCSV() error = nil, want error")
			}
		})
	}

	if _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("empty input error = %v, want ErrEmptyCatalog", err)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(t.TempDir() + "/nope.csv"); err == nil {
		t.Error("LoadCSV() error = nil for missing file")
	}
}

func TestEncode(t *testing.T) {
	movies, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	ft := Encode(movies)

	wantCols := []string{"Adventure", "Animation", "Children", "Comedy", "Drama", "Fantasy", "Romance"}
	if !reflect.DeepEqual(ft.Columns, wantCols) {
		t.Fatalf("Columns = %v, want %v", ft.Columns, wantCols)
	}
	if ft.Len() != len(movies) {
		t.Fatalf("Len() = %d, want %d", ft.Len(), len(movies))
	}

	for i, m := range movies {
		row, ok := ft.Row(i)
		if !ok {
			t.Fatalf("Row(%d) missing", i)
		}
		if len(row) != ft.Width() {
			t.Errorf("row %d width = %d, want %d", i, len(row), ft.Width())
		}
		bits := 0
		for j, v := range row {
			if v == 1 {
				bits++
				if !hasGenre(m.Genres, ft.Columns[j]) {
					t.Errorf("row %d has bit for %s it does not carry", i, ft.Columns[j])
				}
			}
		}
		if bits != len(m.Genres) {
			t.Errorf("row %d set bits = %d, want %d", i, bits, len(m.Genres))
		}
	}

	if _, ok := ft.Row(len(movies)); ok {
		t.Error("Row(out of range) ok = true")
	}
}

func TestFeatureRowIsCopy(t *testing.T) {
	ft := Encode([]models.Movie{{MovieID: 1, Title: "A", Genres: []string{"Drama"}}})
	row, _ := ft.Row(0)
	row[0] = 42
	again, _ := ft.Row(0)
	if again[0] != 1 {
		t.Errorf("feature table mutated through Row(): %v", again)
	}
}

func TestSplitGenresDeduplicates(t *testing.T) {
	got := models.SplitGenres("Comedy|Drama|Comedy")
	if !reflect.DeepEqual(got, []string{"Comedy", "Drama"}) {
		t.Errorf("SplitGenres() = %v", got)
	}
}

func TestCatalogLookup(t *testing.T) {
	movies, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	c := New(movies)

	row, ok := c.RowOf("Toy Story (1995)")
	if !ok || row != 0 {
		t.Errorf("RowOf(Toy Story) = %d, %v; want first row 0", row, ok)
	}
	if c.DuplicateTitles() != 1 {
		t.Errorf("DuplicateTitles() = %d, want 1", c.DuplicateTitles())
	}
	if _, ok := c.RowOf("toy story (1995)"); ok {
		t.Error("RowOf must be an exact match")
	}
	if m, ok := c.ByID(3); !ok || m.Title != "Grumpier Old Men (1995)" {
		t.Errorf("ByID(3) = %+v, %v", m, ok)
	}
	if _, ok := c.Movie(-1); ok {
		t.Error("Movie(-1) ok = true")
	}
}

func TestCatalogSearch(t *testing.T) {
	movies, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	c := New(movies)

	tests := []struct {
		name          string
		q, genre      string
		limit, offset int
		want          []int
	}{
		{"substring case-insensitive", "toy", "", 0, 0, []int{1, 6}},
		{"genre filter", "", "romance", 0, 0, []int{3, 4}},
		{"both", "1995", "Fantasy", 0, 0, []int{1, 2}},
		{"limit", "", "", 2, 0, []int{1, 2}},
		{"offset", "", "", 2, 4, []int{5, 6}},
		{"no match", "zzz", "", 0, 0, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Search(tt.q, tt.genre, tt.limit, tt.offset)
			ids := []int{}
			for _, m := range got {
				ids = append(ids, m.MovieID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("Search() ids = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestCatalogGenres(t *testing.T) {
	movies, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	counts := New(movies).Genres()
	if counts["Comedy"] != 4 || counts["Drama"] != 1 {
		t.Errorf("Genres() = %v", counts)
	}
}
