package knn

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/ulikunitz/xz"
)

// ArtifactVersion es la versión del formato serializado.
const ArtifactVersion = 1

// Artifact es el índice entrenado tal como se guarda en disco.
// Features guarda el layout (nombres de columnas en orden) usado al entrenar.
type Artifact struct {
	Version   int         `json:"version"`
	ModelID   string      `json:"modelId"`
	Metric    Metric      `json:"metric"`
	Features  []string    `json:"features"`
	CreatedAt time.Time   `json:"createdAt"`
	Vectors   [][]float64 `json:"vectors"`
}

// Fit "entrena" el índice: para fuerza bruta basta con guardar los vectores y la métrica.
func Fit(features []string, vectors [][]float64, metric Metric) (*Artifact, error) {
	if _, err := metric.Func(); err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, errors.New("knn: nothing to fit")
	}
	for i, v := range vectors {
		if len(v) != len(features) {
			return nil, fmt.Errorf("knn: row %d has %d dimensions, want %d", i, len(v), len(features))
		}
	}
	return &Artifact{
		Version:   ArtifactVersion,
		ModelID:   uuid.NewString(),
		Metric:    metric,
		Features:  append([]string(nil), features...),
		CreatedAt: time.Now().UTC(),
		Vectors:   vectors,
	}, nil
}

// Index arma el índice consultable a partir del artefacto.
func (a *Artifact) Index() (*BruteForce, error) {
	return NewBruteForce(a.Metric, a.Vectors)
}

// CheckLayout verifica que el artefacto se entrenó con las mismas columnas y filas
// que el catálogo que se está sirviendo.
func (a *Artifact) CheckLayout(columns []string, rows int) error {
	if !slices.Equal(a.Features, columns) {
		return fmt.Errorf("%w: index features [%s], catalog features [%s]",
			ErrLayoutMismatch, strings.Join(a.Features, ","), strings.Join(columns, ","))
	}
	if len(a.Vectors) != rows {
		return fmt.Errorf("%w: index has %d rows, catalog has %d", ErrLayoutMismatch, len(a.Vectors), rows)
	}
	return nil
}

func Write(w io.Writer, a *Artifact) error {
	return json.NewEncoder(w).Encode(a)
}

func Read(r io.Reader) (*Artifact, error) {
	var a Artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode index artifact: %w", err)
	}
	if a.Version != ArtifactVersion {
		return nil, fmt.Errorf("unsupported index artifact version %d", a.Version)
	}
	return &a, nil
}

// SaveFile escribe el artefacto; si path termina en .xz lo comprime.
func SaveFile(path string, a *Artifact) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if strings.HasSuffix(path, ".xz") {
		zw, err := xz.NewWriter(bw)
		if err != nil {
			return err
		}
		if err := Write(zw, a); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
	} else if err := Write(bw, a); err != nil {
		return err
	}
	return bw.Flush()
}

// LoadFile lee el artefacto (plano o .xz) y construye el índice.
func LoadFile(path string) (*BruteForce, *Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open index artifact: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, ".xz") {
		zr, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("open xz index artifact: %w", err)
		}
		r = zr
	}

	a, err := Read(r)
	if err != nil {
		return nil, nil, err
	}
	idx, err := a.Index()
	if err != nil {
		return nil, nil, err
	}
	return idx, a, nil
}
