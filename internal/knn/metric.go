package knn

import (
	"fmt"
	"math"
	"strings"
)

type Metric string

const (
	// Minkowski con p=2 (default del indexer, equivale a euclidean).
	Minkowski Metric = "minkowski"
	Euclidean Metric = "euclidean"
	Manhattan Metric = "manhattan"
	Cosine    Metric = "cosine"
	Jaccard   Metric = "jaccard"
)

type DistanceFunc func(a, b []float64) float64

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return Minkowski, nil
	}
	if _, err := m.Func(); err != nil {
		return "", err
	}
	return m, nil
}

// Func devuelve la función de distancia de la métrica.
func (m Metric) Func() (DistanceFunc, error) {
	switch m {
	case Minkowski, Euclidean:
		return euclidean, nil
	case Manhattan:
		return manhattan, nil
	case Cosine:
		return cosine, nil
	case Jaccard:
		return jaccard, nil
	}
	return nil, fmt.Errorf("knn: unknown metric %q", string(m))
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func manhattan(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// cosine: 1 - cos(a, b); con un vector nulo la distancia es 1.
func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}

// jaccard sobre vectores binarios (valor != 0 cuenta como presente).
func jaccard(a, b []float64) float64 {
	var inter, union float64
	for i := range a {
		x, y := a[i] != 0, b[i] != 0
		if x && y {
			inter++
		}
		if x || y {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return 1 - inter/union
}
