// Package knn implementa el índice de vecinos más cercanos sobre los vectores de géneros.
//
// El servidor solo consume la interfaz Index; el artefacto se entrena offline con
// cmd/indexer y se carga una vez al arrancar.
package knn

import "errors"

var (
	ErrDimensionMismatch = errors.New("knn: query vector dimension does not match index")
	ErrInvalidK          = errors.New("knn: k must be positive")
	ErrLayoutMismatch    = errors.New("knn: index feature layout does not match catalog")
)

// Neighbor es una fila del índice y su distancia al vector consultado.
type Neighbor struct {
	Row      int     `json:"row"`
	Distance float64 `json:"distance"`
}

// Index devuelve hasta k vecinos ordenados por distancia ascendente.
type Index interface {
	Query(vec []float64, k int) ([]Neighbor, error)
	Len() int
	Dim() int
}
