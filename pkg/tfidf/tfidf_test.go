package tfidf

import (
	"math"
	"reflect"
	"testing"
)

func TestCountVectorizerBuildsVocabularyInFirstSeenOrder(t *testing.T) {
	docs := [][]string{
		{"engine", "car", "engine"},
		{"car", "circuit"},
		{},
	}

	v := NewCountVectorizer()
	counts := v.FitTransform(docs)

	if want := []string{"engine", "car", "circuit"}; !reflect.DeepEqual(v.Terms(), want) {
		t.Fatalf("vocabulary = %v, want %v", v.Terms(), want)
	}

	rows, cols := counts.Dims()
	if rows != 3 || cols != 3 {
		t.Fatalf("count matrix is %dx%d, want 3x3", rows, cols)
	}

	expected := [][]float64{
		{2, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	}
	for i := range expected {
		for j := range expected[i] {
			if got := counts.At(i, j); got != expected[i][j] {
				t.Errorf("counts(%d,%d) = %v, want %v", i, j, got, expected[i][j])
			}
		}
	}

	if want := []int{1, 2, 1}; !reflect.DeepEqual(v.DocumentFrequency(), want) {
		t.Errorf("document frequencies = %v, want %v", v.DocumentFrequency(), want)
	}
}

func TestCountVectorizerIsDeterministic(t *testing.T) {
	docs := [][]string{
		{"gamma", "alpha", "beta"},
		{"beta", "delta"},
	}

	first := NewCountVectorizer().Fit(docs)
	second := NewCountVectorizer().Fit(docs)

	if !reflect.DeepEqual(first.Terms(), second.Terms()) {
		t.Errorf("vocabularies diverge across runs: %v vs %v", first.Terms(), second.Terms())
	}
}

func TestTransformerUsesSmoothedIDF(t *testing.T) {
	docs := [][]string{
		{"engine", "car"},
		{"engine"},
		{"engine", "circuit"},
	}

	v := NewCountVectorizer()
	counts := v.FitTransform(docs)

	tr := NewTransformer().Fit(counts)
	idf := tr.IDF()

	// n=3; df(engine)=3, df(car)=1, df(circuit)=1
	expected := []float64{
		math.Log(4.0/4.0) + 1,
		math.Log(4.0/2.0) + 1,
		math.Log(4.0/2.0) + 1,
	}
	for j, want := range expected {
		if math.Abs(idf[j]-want) > 1e-12 {
			t.Errorf("idf[%d] = %v, want %v", j, idf[j], want)
		}
	}

	// a term in every document keeps a positive weight
	if idf[0] < 1 {
		t.Errorf("idf of ubiquitous term = %v, want >= 1", idf[0])
	}
}

func TestTransformerRowsHaveUnitNorm(t *testing.T) {
	docs := [][]string{
		{"engine", "car", "car"},
		{"circuit", "voltage"},
		{},
	}

	counts := NewCountVectorizer().FitTransform(docs)
	weighted, err := NewTransformer().FitTransform(counts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, cols := weighted.Dims()
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			value := weighted.At(i, j)
			sum += value * value
		}
		norm := math.Sqrt(sum)
		if i == 2 {
			if norm != 0 {
				t.Errorf("zero row %d has norm %v, want 0", i, norm)
			}
			continue
		}
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("row %d has norm %v, want 1", i, norm)
		}
	}
}

func TestTransformerRejectsMismatchedShape(t *testing.T) {
	counts := NewCountVectorizer().FitTransform([][]string{{"a", "b"}, {"b"}})
	other := NewCountVectorizer().FitTransform([][]string{{"a", "b", "c"}, {"c"}})

	tr := NewTransformer().Fit(counts)
	if _, err := tr.Transform(other); err == nil {
		t.Error("expected an error for a matrix with a different term count")
	}
}

func TestTransformerRequiresFit(t *testing.T) {
	counts := NewCountVectorizer().FitTransform([][]string{{"a"}, {"b"}})
	if _, err := NewTransformer().Transform(counts); err == nil {
		t.Error("expected an error for an unfitted transformer")
	}
}
