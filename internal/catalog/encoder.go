package catalog

import (
	"sort"

	"github.com/Yhabib05/movie-recommender/internal/models"
)

// FeatureTable es el one-hot de géneros, alineado fila a fila con el catálogo.
// Columns está en orden lexicográfico; es el mismo layout con el que se entrena el índice.
type FeatureTable struct {
	Columns []string
	rows    [][]float64
}

// Encode construye la tabla: una columna por género distinto en todo el catálogo.
func Encode(movies []models.Movie) *FeatureTable {
	seen := make(map[string]struct{})
	for _, m := range movies {
		for _, g := range m.Genres {
			seen[g] = struct{}{}
		}
	}

	cols := make([]string, 0, len(seen))
	for g := range seen {
		cols = append(cols, g)
	}
	sort.Strings(cols)

	pos := make(map[string]int, len(cols))
	for i, g := range cols {
		pos[g] = i
	}

	rows := make([][]float64, len(movies))
	for i, m := range movies {
		v := make([]float64, len(cols))
		for _, g := range m.Genres {
			v[pos[g]] = 1
		}
		rows[i] = v
	}

	return &FeatureTable{Columns: cols, rows: rows}
}

// Width es la dimensión del vector (cantidad de géneros distintos).
func (t *FeatureTable) Width() int { return len(t.Columns) }

func (t *FeatureTable) Len() int { return len(t.rows) }

// Row devuelve una copia del vector de la fila i.
func (t *FeatureTable) Row(i int) ([]float64, bool) {
	if i < 0 || i >= len(t.rows) {
		return nil, false
	}
	out := make([]float64, len(t.rows[i]))
	copy(out, t.rows[i])
	return out, true
}

// Rows devuelve todos los vectores (copias), en orden de catálogo.
func (t *FeatureTable) Rows() [][]float64 {
	out := make([][]float64, len(t.rows))
	for i := range t.rows {
		out[i], _ = t.Row(i)
	}
	return out
}
