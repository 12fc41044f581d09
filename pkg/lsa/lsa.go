package lsa

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TruncatedSVD projects a weighted document-term matrix onto a small number
// of latent concept axes via a truncated singular value decomposition. The
// factorization is exact, so identical input always yields identical output.
type TruncatedSVD struct {
	Components int
	components *mat.Dense
}

// NewTruncatedSVD creates a TruncatedSVD retaining the given number of
// concept axes.
func NewTruncatedSVD(components int) *TruncatedSVD {
	return &TruncatedSVD{Components: components}
}

// FitTransform factorizes the matrix, projects every document row onto the
// top Components right singular vectors and normalizes each projected row to
// unit Euclidean norm. Components must lie in [1, min(rows, cols)-1].
func (t *TruncatedSVD) FitTransform(m mat.Matrix) (*mat.Dense, error) {
	rows, cols := m.Dims()
	limit := rows
	if cols < limit {
		limit = cols
	}
	if t.Components < 1 || t.Components > limit-1 {
		return nil, fmt.Errorf("lsa: concept count %d out of range [1, %d] for a %dx%d matrix",
			t.Components, limit-1, rows, cols)
	}

	var svd mat.SVD
	if ok := svd.Factorize(mat.DenseCopyOf(m), mat.SVDThin); !ok {
		return nil, errors.New("lsa: singular value decomposition did not converge")
	}

	var v mat.Dense
	svd.VTo(&v)
	t.components = mat.DenseCopyOf(v.Slice(0, cols, 0, t.Components))

	return t.project(m)
}

// Transform projects additional documents onto the axes learned by a prior
// FitTransform.
func (t *TruncatedSVD) Transform(m mat.Matrix) (*mat.Dense, error) {
	if t.components == nil {
		return nil, errors.New("lsa: model has not been fitted")
	}
	_, cols := m.Dims()
	fitted, _ := t.components.Dims()
	if cols != fitted {
		return nil, fmt.Errorf("lsa: matrix has %d terms but model was fitted on %d", cols, fitted)
	}
	return t.project(m)
}

func (t *TruncatedSVD) project(m mat.Matrix) (*mat.Dense, error) {
	var projected mat.Dense
	projected.Mul(m, t.components)
	normalizeRows(&projected)
	return &projected, nil
}

// normalizeRows scales every non-zero row to unit Euclidean norm in place.
func normalizeRows(m *mat.Dense) {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		norm := mat.Norm(m.RowView(i), 2)
		if norm == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			m.Set(i, j, m.At(i, j)/norm)
		}
	}
}
