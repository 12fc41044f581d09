package tfidf

import (
	"errors"
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
)

// Transformer rescales a raw term-count matrix into smoothed TF-IDF weights.
// Each term frequency is multiplied by the inverse document frequency
// idf(j) = ln((1+n)/(1+df(j))) + 1, where n is the number of documents and
// df(j) the number of documents containing term j. The smoothing keeps terms
// that occur in every document from being zeroed out. Every output row is
// then scaled to unit Euclidean norm.
type Transformer struct {
	idf []float64
}

// NewTransformer creates a new Transformer
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Fit computes the per-term inverse document frequencies from the count
// matrix.
func (t *Transformer) Fit(counts *sparse.CSR) *Transformer {
	docs, terms := counts.Dims()

	df := make([]int, terms)
	raw := counts.RawMatrix()
	for i := 0; i < raw.I; i++ {
		for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
			if raw.Data[p] != 0 {
				df[raw.Ind[p]]++
			}
		}
	}

	t.idf = make([]float64, terms)
	for j := range t.idf {
		t.idf[j] = math.Log(float64(1+docs)/float64(1+df[j])) + 1
	}
	return t
}

// IDF returns the fitted inverse document frequencies in vocabulary order.
func (t *Transformer) IDF() []float64 {
	return t.idf
}

// Transform multiplies each count by its term's IDF and normalizes each row
// to unit Euclidean norm. Rows with no terms stay zero.
func (t *Transformer) Transform(counts *sparse.CSR) (*sparse.CSR, error) {
	if t.idf == nil {
		return nil, errors.New("tfidf: transformer has not been fitted")
	}
	_, terms := counts.Dims()
	if terms != len(t.idf) {
		return nil, fmt.Errorf("tfidf: matrix has %d terms but transformer was fitted on %d", terms, len(t.idf))
	}

	var product sparse.CSR
	product.Mul(counts, sparse.NewDIA(terms, terms, t.idf))

	raw := product.RawMatrix()
	for i := 0; i < raw.I; i++ {
		sum := 0.0
		for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
			sum += raw.Data[p] * raw.Data[p]
		}
		if sum == 0 {
			continue
		}
		norm := math.Sqrt(sum)
		for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
			raw.Data[p] /= norm
		}
	}

	return &product, nil
}

// FitTransform fits the transformer to the count matrix and then transforms
// it.
func (t *Transformer) FitTransform(counts *sparse.CSR) (*sparse.CSR, error) {
	return t.Fit(counts).Transform(counts)
}
