// --------------------------------------------------------------------------------
// Author: Giovanna Cardenas
//
// This file is part of a software project developed by Giovanna Cardenas.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package pipeline

import (
	"fmt"

	"github.com/Giovanna-Cardenas/LSA-TFIDF-TextClassifier/internal/corpus"
	"github.com/Giovanna-Cardenas/LSA-TFIDF-TextClassifier/pkg/eval"
	"github.com/Giovanna-Cardenas/LSA-TFIDF-TextClassifier/pkg/forest"
	"github.com/Giovanna-Cardenas/LSA-TFIDF-TextClassifier/pkg/lsa"
	"github.com/Giovanna-Cardenas/LSA-TFIDF-TextClassifier/pkg/tfidf"
	"github.com/Giovanna-Cardenas/LSA-TFIDF-TextClassifier/pkg/tokenizer"
)

// Options configures one pipeline run. The same Options and corpus always
// reproduce bit-identical vocabulary, matrices and predictions.
type Options struct {
	Stemming     bool
	Concepts     int
	Trees        int
	TestFraction float64
	Seed         int64
}

// DefaultOptions returns the reference configuration: ten latent concepts, a
// hundred trees, a 0.4 hold-out fraction.
func DefaultOptions() Options {
	return Options{
		Concepts:     10,
		Trees:        100,
		TestFraction: 0.4,
		Seed:         42,
	}
}

func (o Options) validate() error {
	if o.Concepts < 1 {
		return &ConfigurationError{Field: "concepts", Msg: fmt.Sprintf("must be positive, got %d", o.Concepts)}
	}
	if o.Trees < 1 {
		return &ConfigurationError{Field: "trees", Msg: fmt.Sprintf("must be positive, got %d", o.Trees)}
	}
	if o.TestFraction <= 0 || o.TestFraction >= 1 {
		return &ConfigurationError{Field: "test_fraction", Msg: fmt.Sprintf("must lie in (0, 1), got %g", o.TestFraction)}
	}
	return nil
}

// Result reports one completed pipeline run.
type Result struct {
	Options        Options
	Report         *eval.Report
	VocabularySize int
	TrainSize      int
	TestSize       int
	TestLabels     []int
	Predicted      []int
}

// Run executes the full pipeline on the corpus:
// tokenize -> vectorize -> weight -> reduce -> split -> fit -> predict -> evaluate.
func Run(c *corpus.Corpus, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, &DataError{Stage: "load", Msg: err.Error()}
	}
	if c.Len() == 0 {
		return nil, &DataError{Stage: "load", Msg: "corpus is empty"}
	}

	tok := tokenizer.New(opts.Stemming)
	tokenized, err := tok.TokenizeAll(c.Documents)
	if err != nil {
		return nil, &DataError{Stage: "tokenize", Msg: err.Error()}
	}

	vectorizer := tfidf.NewCountVectorizer().Fit(tokenized)
	if vectorizer.VocabularySize() == 0 {
		return nil, &DataError{Stage: "vectorize", Msg: "no tokens survived normalization"}
	}
	counts := vectorizer.Transform(tokenized)

	weighted, err := tfidf.NewTransformer().FitTransform(counts)
	if err != nil {
		return nil, &DataError{Stage: "weight", Msg: err.Error()}
	}

	docs, terms := weighted.Dims()
	limit := docs
	if terms < limit {
		limit = terms
	}
	if opts.Concepts > limit-1 {
		return nil, &ConfigurationError{
			Field: "concepts",
			Msg:   fmt.Sprintf("%d exceeds the limit %d for a %dx%d matrix", opts.Concepts, limit-1, docs, terms),
		}
	}

	features, err := lsa.NewTruncatedSVD(opts.Concepts).FitTransform(weighted)
	if err != nil {
		return nil, &DataError{Stage: "reduce", Msg: err.Error()}
	}

	trainIdx, testIdx := splitIndices(docs, opts.TestFraction, opts.Seed)

	trainX, trainY := gather(features.RawRowView, c.Labels, trainIdx)
	testX, testY := gather(features.RawRowView, c.Labels, testIdx)

	if singleClass(trainY) {
		return nil, &DegenerateInputError{
			Stage: "fit",
			Msg:   fmt.Sprintf("training partition of %d documents contains a single class", len(trainY)),
		}
	}

	model := forest.NewRandomForest(opts.Trees, opts.Seed)
	if err := model.Fit(trainX, trainY); err != nil {
		return nil, &DataError{Stage: "fit", Msg: err.Error()}
	}

	predicted, err := model.Predict(testX)
	if err != nil {
		return nil, &DataError{Stage: "predict", Msg: err.Error()}
	}

	report, err := eval.Evaluate(testY, predicted)
	if err != nil {
		return nil, &DataError{Stage: "evaluate", Msg: err.Error()}
	}

	return &Result{
		Options:        opts,
		Report:         report,
		VocabularySize: vectorizer.VocabularySize(),
		TrainSize:      len(trainIdx),
		TestSize:       len(testIdx),
		TestLabels:     testY,
		Predicted:      predicted,
	}, nil
}

// gather collects the feature rows and labels at the given indices.
func gather(row func(int) []float64, labels []int, indices []int) ([][]float64, []int) {
	x := make([][]float64, len(indices))
	y := make([]int, len(indices))
	for i, idx := range indices {
		x[i] = row(idx)
		y[i] = labels[idx]
	}
	return x, y
}

func singleClass(labels []int) bool {
	if len(labels) == 0 {
		return true
	}
	first := labels[0]
	for _, label := range labels[1:] {
		if label != first {
			return false
		}
	}
	return true
}
