package models

import "strings"

// GenreSeparator es el separador de géneros del dataset (MovieLens).
const GenreSeparator = "|"

// Movie es una fila del catálogo. El orden de las filas define el índice (row) del KNN.
type Movie struct {
	MovieID int      `json:"movieId" bson:"movieId"`
	Title   string   `json:"title" bson:"title"`
	Genres  []string `json:"genres" bson:"genres"`

	// RawGenres es la columna genres tal cual vino del CSV (vacía para Mongo).
	RawGenres string `json:"-" bson:"-"`
}

// GenreString es lo que se muestra en las recomendaciones: la columna original si
// la hay, si no los géneros unidos con "|".
func (m Movie) GenreString() string {
	if m.RawGenres != "" {
		return m.RawGenres
	}
	return strings.Join(m.Genres, GenreSeparator)
}

// SplitGenres parte el campo genres del CSV. Campo vacío -> sin géneros.
// Un género repetido en la misma fila se cuenta una sola vez.
func SplitGenres(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, GenreSeparator)
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
