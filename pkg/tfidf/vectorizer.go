package tfidf

import (
	"github.com/james-bowman/sparse"
)

// CountVectorizer builds a fixed vocabulary over a tokenized corpus and maps
// each document to a sparse row of term counts.
type CountVectorizer struct {
	vocabulary map[string]int
	terms      []string
	docFreq    []int
}

// NewCountVectorizer creates a new CountVectorizer
func NewCountVectorizer() *CountVectorizer {
	return &CountVectorizer{
		vocabulary: make(map[string]int),
	}
}

// Fit builds the vocabulary from the tokenized documents. Indices are
// assigned in first-seen order across the corpus, so identical input always
// reproduces the identical vocabulary. Per-term document frequencies are
// recorded for the weighting stage.
func (v *CountVectorizer) Fit(docs [][]string) *CountVectorizer {
	for _, tokens := range docs {
		seen := make(map[int]bool, len(tokens))
		for _, term := range tokens {
			idx, exists := v.vocabulary[term]
			if !exists {
				idx = len(v.terms)
				v.vocabulary[term] = idx
				v.terms = append(v.terms, term)
				v.docFreq = append(v.docFreq, 0)
			}
			if !seen[idx] {
				v.docFreq[idx]++
				seen[idx] = true
			}
		}
	}
	return v
}

// Transform maps each document to its term-count row. Terms outside the
// fitted vocabulary are ignored; a document with no known tokens yields a
// zero row.
func (v *CountVectorizer) Transform(docs [][]string) *sparse.CSR {
	dok := sparse.NewDOK(len(docs), len(v.terms))
	for i, tokens := range docs {
		for _, term := range tokens {
			if j, exists := v.vocabulary[term]; exists {
				dok.Set(i, j, dok.At(i, j)+1)
			}
		}
	}
	return dok.ToCSR()
}

// FitTransform fits the vectorizer to the tokenized documents and then
// transforms them.
func (v *CountVectorizer) FitTransform(docs [][]string) *sparse.CSR {
	return v.Fit(docs).Transform(docs)
}

// VocabularySize returns the number of distinct terms seen during Fit.
func (v *CountVectorizer) VocabularySize() int {
	return len(v.terms)
}

// Terms returns the vocabulary in index order.
func (v *CountVectorizer) Terms() []string {
	return v.terms
}

// Index returns the column index of term and whether it is in the vocabulary.
func (v *CountVectorizer) Index(term string) (int, bool) {
	idx, exists := v.vocabulary[term]
	return idx, exists
}

// DocumentFrequency returns, per vocabulary index, the number of fitted
// documents containing that term at least once.
func (v *CountVectorizer) DocumentFrequency() []int {
	return v.docFreq
}
