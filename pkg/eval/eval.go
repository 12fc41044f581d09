package eval

import (
	"fmt"
	"strings"
)

// Report holds the confusion matrix and accuracy for one evaluation run.
// Confusion rows are actual labels, columns are predicted labels.
type Report struct {
	Confusion [2][2]int
	Accuracy  float64
	Total     int
}

// Evaluate counts (actual, predicted) pairs over the binary labels {0, 1}
// and derives accuracy from the diagonal. Empty inputs produce a zero
// report.
func Evaluate(actual, predicted []int) (*Report, error) {
	if len(actual) != len(predicted) {
		return nil, fmt.Errorf("eval: %d actual labels for %d predictions", len(actual), len(predicted))
	}

	report := &Report{Total: len(actual)}
	for i := range actual {
		a, p := actual[i], predicted[i]
		if a < 0 || a > 1 || p < 0 || p > 1 {
			return nil, fmt.Errorf("eval: labels must be 0 or 1, got actual=%d predicted=%d at index %d", a, p, i)
		}
		report.Confusion[a][p]++
	}
	if report.Total > 0 {
		report.Accuracy = float64(report.Confusion[0][0]+report.Confusion[1][1]) / float64(report.Total)
	}
	return report, nil
}

// String renders the 2x2 count table with row and column labels followed by
// the accuracy value.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "          pred 0  pred 1\n")
	fmt.Fprintf(&b, "actual 0  %6d  %6d\n", r.Confusion[0][0], r.Confusion[0][1])
	fmt.Fprintf(&b, "actual 1  %6d  %6d\n", r.Confusion[1][0], r.Confusion[1][1])
	fmt.Fprintf(&b, "accuracy  %.4f\n", r.Accuracy)
	return b.String()
}
