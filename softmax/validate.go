package softmax

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validate rejects dimension mismatches, out-of-range labels and
// negative regularization before any computation starts.
func validate(W, X mat.Matrix, y []int, reg float64) error {
	d, c := W.Dims()
	n, xd := X.Dims()
	if xd != d {
		return fmt.Errorf("softmax: X has %d feature columns but W has %d rows", xd, d)
	}
	if len(y) != n {
		return fmt.Errorf("softmax: got %d labels for %d examples", len(y), n)
	}
	for i, label := range y {
		if label < 0 || label >= c {
			return fmt.Errorf("softmax: label %d of example %d outside [0, %d)", label, i, c)
		}
	}
	if reg < 0 {
		return fmt.Errorf("softmax: negative regularization strength %v", reg)
	}
	return nil
}
