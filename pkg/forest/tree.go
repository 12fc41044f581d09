package forest

import (
	"math"
	"math/rand"
	"sort"
)

// treeNode is one node of a grown decision tree. Leaves carry the fraction
// of positive training samples that reached them.
type treeNode struct {
	leaf      bool
	prob      float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

// decisionTree is a single CART tree grown on gini impurity with random
// feature subsetting at each split.
type decisionTree struct {
	maxDepth        int
	minSamplesSplit int
	maxFeatures     int
	rng             *rand.Rand
	root            *treeNode
}

func (d *decisionTree) fit(x [][]float64, y []int) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	d.root = d.grow(x, y, idx, 0)
}

func (d *decisionTree) grow(x [][]float64, y []int, idx []int, depth int) *treeNode {
	positives := 0
	for _, i := range idx {
		positives += y[i]
	}
	node := &treeNode{leaf: true, prob: float64(positives) / float64(len(idx))}

	if positives == 0 || positives == len(idx) {
		return node
	}
	if depth >= d.maxDepth || len(idx) < d.minSamplesSplit {
		return node
	}

	feature, threshold, found := d.bestSplit(x, y, idx)
	if !found {
		return node
	}

	var left, right []int
	for _, i := range idx {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return node
	}

	node.leaf = false
	node.feature = feature
	node.threshold = threshold
	node.left = d.grow(x, y, left, depth+1)
	node.right = d.grow(x, y, right, depth+1)
	return node
}

// bestSplit evaluates a random subset of features and returns the
// (feature, threshold) pair minimizing the weighted gini impurity of the
// resulting partition.
func (d *decisionTree) bestSplit(x [][]float64, y []int, idx []int) (int, float64, bool) {
	features := d.rng.Perm(len(x[0]))[:d.maxFeatures]

	bestImpurity := math.Inf(1)
	bestFeature := -1
	bestThreshold := 0.0

	order := make([]int, len(idx))
	for _, f := range features {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool {
			return x[order[a]][f] < x[order[b]][f]
		})

		total := len(order)
		totalPos := 0
		for _, i := range order {
			totalPos += y[i]
		}

		leftCount, leftPos := 0, 0
		for s := 0; s < total-1; s++ {
			leftCount++
			leftPos += y[order[s]]

			// splits are only valid between distinct feature values
			if x[order[s]][f] == x[order[s+1]][f] {
				continue
			}

			rightCount := total - leftCount
			rightPos := totalPos - leftPos
			impurity := (float64(leftCount)*gini(leftPos, leftCount) +
				float64(rightCount)*gini(rightPos, rightCount)) / float64(total)

			if impurity < bestImpurity {
				bestImpurity = impurity
				bestFeature = f
				bestThreshold = (x[order[s]][f] + x[order[s+1]][f]) / 2
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

// gini computes the impurity of a partition with pos positives out of n.
func gini(pos, n int) float64 {
	p := float64(pos) / float64(n)
	return 2 * p * (1 - p)
}

// predictProba walks the tree and returns the leaf's positive-class
// probability for one feature vector.
func (d *decisionTree) predictProba(features []float64) float64 {
	node := d.root
	for !node.leaf {
		if features[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.prob
}
