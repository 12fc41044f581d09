package forest

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// RandomForest is an ensemble of independently grown CART decision trees.
// Each tree trains on a bootstrap resample of the input with a random
// feature subset considered at every split; prediction averages the trees'
// positive-class probabilities and thresholds at 0.5. All randomness derives
// from Seed, so identical input and seed reproduce the identical model.
type RandomForest struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	// MaxFeatures is the number of features considered per split.
	// Zero selects sqrt of the feature count.
	MaxFeatures int
	Seed        int64

	trees []*decisionTree
}

// NewRandomForest creates a RandomForest with the given ensemble size and
// seed and the default tree-growing limits.
func NewRandomForest(trees int, seed int64) *RandomForest {
	return &RandomForest{
		Trees:           trees,
		MaxDepth:        12,
		MinSamplesSplit: 2,
		Seed:            seed,
	}
}

// Fit grows the ensemble on the training features and binary labels.
func (rf *RandomForest) Fit(x [][]float64, y []int) error {
	if rf.Trees < 1 {
		return fmt.Errorf("forest: ensemble size must be positive, got %d", rf.Trees)
	}
	if len(x) == 0 {
		return errors.New("forest: training set is empty")
	}
	if len(x) != len(y) {
		return fmt.Errorf("forest: %d feature rows for %d labels", len(x), len(y))
	}

	positives := 0
	for i, label := range y {
		if label != 0 && label != 1 {
			return fmt.Errorf("forest: labels must be 0 or 1, got %d at index %d", label, i)
		}
		positives += label
	}
	if positives == 0 || positives == len(y) {
		return errors.New("forest: training labels contain a single class")
	}

	maxFeatures := rf.MaxFeatures
	if maxFeatures < 1 {
		maxFeatures = int(math.Sqrt(float64(len(x[0]))))
		if maxFeatures < 1 {
			maxFeatures = 1
		}
	}
	if maxFeatures > len(x[0]) {
		maxFeatures = len(x[0])
	}

	rng := rand.New(rand.NewSource(rf.Seed))
	rf.trees = make([]*decisionTree, rf.Trees)
	for k := range rf.trees {
		treeRng := rand.New(rand.NewSource(rng.Int63()))

		// bootstrap resample with replacement
		xb := make([][]float64, len(x))
		yb := make([]int, len(y))
		for i := range xb {
			j := treeRng.Intn(len(x))
			xb[i] = x[j]
			yb[i] = y[j]
		}

		tree := &decisionTree{
			maxDepth:        rf.MaxDepth,
			minSamplesSplit: rf.MinSamplesSplit,
			maxFeatures:     maxFeatures,
			rng:             treeRng,
		}
		tree.fit(xb, yb)
		rf.trees[k] = tree
	}
	return nil
}

// PredictProba returns the averaged positive-class probability per row.
func (rf *RandomForest) PredictProba(x [][]float64) ([]float64, error) {
	if len(rf.trees) == 0 {
		return nil, errors.New("forest: model has not been fitted")
	}
	probs := make([]float64, len(x))
	for i, row := range x {
		sum := 0.0
		for _, tree := range rf.trees {
			sum += tree.predictProba(row)
		}
		probs[i] = sum / float64(len(rf.trees))
	}
	return probs, nil
}

// Predict returns the predicted binary label per row, thresholding the
// averaged probability at 0.5.
func (rf *RandomForest) Predict(x [][]float64) ([]int, error) {
	probs, err := rf.PredictProba(x)
	if err != nil {
		return nil, err
	}
	labels := make([]int, len(probs))
	for i, p := range probs {
		if p >= 0.5 {
			labels[i] = 1
		}
	}
	return labels, nil
}
