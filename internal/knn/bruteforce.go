package knn

import (
	"fmt"
	"sort"
)

// BruteForce compara el vector consultado contra todas las filas.
// Empates de distancia se resuelven por número de fila, así el resultado es determinístico.
type BruteForce struct {
	metric  Metric
	dist    DistanceFunc
	vectors [][]float64
	dim     int
}

func NewBruteForce(metric Metric, vectors [][]float64) (*BruteForce, error) {
	dist, err := metric.Func()
	if err != nil {
		return nil, err
	}
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("knn: row %d has %d dimensions, want %d", i, len(v), dim)
		}
	}
	return &BruteForce{metric: metric, dist: dist, vectors: vectors, dim: dim}, nil
}

func (b *BruteForce) Len() int { return len(b.vectors) }

func (b *BruteForce) Dim() int { return b.dim }

func (b *BruteForce) Metric() Metric { return b.metric }

func (b *BruteForce) Query(vec []float64, k int) ([]Neighbor, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(vec) != b.dim {
		return nil, fmt.Errorf("%w: got %d, index has %d", ErrDimensionMismatch, len(vec), b.dim)
	}

	all := make([]Neighbor, len(b.vectors))
	for i, v := range b.vectors {
		all[i] = Neighbor{Row: i, Distance: b.dist(vec, v)}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Distance != all[j].Distance {
			return all[i].Distance < all[j].Distance
		}
		return all[i].Row < all[j].Row
	})

	if k > len(all) {
		k = len(all)
	}
	out := make([]Neighbor, k)
	copy(out, all)
	return out, nil
}
