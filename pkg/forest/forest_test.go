package forest

import (
	"math/rand"
	"reflect"
	"testing"
)

// separableData builds a binary problem split cleanly on the first feature,
// padded with noise features.
func separableData(n int, seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	x := make([][]float64, n)
	y := make([]int, n)
	for i := range x {
		label := i % 2
		base := 0.1
		if label == 1 {
			base = 0.9
		}
		x[i] = []float64{
			base + 0.05*rng.Float64(),
			rng.Float64(),
			rng.Float64(),
		}
		y[i] = label
	}
	return x, y
}

func TestFitAndPredictSeparable(t *testing.T) {
	x, y := separableData(60, 1)

	rf := NewRandomForest(25, 42)
	if err := rf.Fit(x, y); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	probe := [][]float64{
		{0.05, 0.5, 0.5},
		{0.95, 0.5, 0.5},
	}
	predicted, err := rf.Predict(probe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if predicted[0] != 0 || predicted[1] != 1 {
		t.Errorf("predictions = %v, want [0 1]", predicted)
	}
}

func TestFitIsDeterministicForFixedSeed(t *testing.T) {
	x, y := separableData(40, 2)
	probe, _ := separableData(20, 3)

	first := NewRandomForest(15, 7)
	if err := first.Fit(x, y); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := NewRandomForest(15, 7)
	if err := second.Fit(x, y); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstProbs, err := first.PredictProba(probe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	secondProbs, err := second.PredictProba(probe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(firstProbs, secondProbs) {
		t.Error("identical seeds produced different probabilities")
	}
}

func TestFitRejectsBadInput(t *testing.T) {
	x, y := separableData(10, 4)

	tests := []struct {
		name   string
		forest *RandomForest
		x      [][]float64
		y      []int
	}{
		{"zero trees", NewRandomForest(0, 1), x, y},
		{"empty training set", NewRandomForest(10, 1), nil, nil},
		{"length mismatch", NewRandomForest(10, 1), x, y[:5]},
		{"single class", NewRandomForest(10, 1), x, make([]int, len(x))},
		{"non-binary label", NewRandomForest(10, 1), x[:2], []int{0, 2}},
	}

	for _, test := range tests {
		if err := test.forest.Fit(test.x, test.y); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}

func TestPredictRequiresFit(t *testing.T) {
	rf := NewRandomForest(5, 1)
	if _, err := rf.Predict([][]float64{{0.5}}); err == nil {
		t.Error("expected an error for an unfitted forest")
	}
}
