// Package softmax computes the softmax cross-entropy loss of a linear
// classifier and its gradient with respect to the weight matrix.
package softmax

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Loss computes the mean softmax cross-entropy loss of the classifier
// weights W over the batch X with labels y, plus an L2 penalty of
// reg*sum(W^2), and the gradient of that loss with respect to W.
//
// W is D x C with one column of weights per class, X is N x D with one
// example per row and y[i] is the true class index of example i. The
// returned gradient has the shape of W and is freshly allocated; the
// inputs are never modified, so independent calls are safe to issue
// concurrently.
//
// Scores are computed as a single matrix product. Each score row has
// its maximum subtracted before exponentiation so that large score
// magnitudes do not overflow; the shift cancels in the normalization.
//
// Note the regularization convention: the penalty is reg*sum(W^2) with
// no 1/2 factor, so its gradient contribution is 2*reg*W.
func Loss(W, X mat.Matrix, y []int, reg float64) (float64, *mat.Dense, error) {
	if err := validate(W, X, y, reg); err != nil {
		return 0, nil, err
	}

	d, c := W.Dims()
	n, _ := X.Dims()

	// scores become probabilities row by row, in place
	var probs mat.Dense
	probs.Mul(X, W)

	loss := 0.0
	for i := 0; i < n; i++ {
		row := probs.RawRowView(i)
		floats.AddConst(-floats.Max(row), row)
		for j, v := range row {
			row[j] = math.Exp(v)
		}
		floats.Scale(1/floats.Sum(row), row)
		loss -= math.Log(row[y[i]])
	}
	loss /= float64(n)
	frob := mat.Norm(W, 2)
	loss += reg * frob * frob

	// probs - onehot(y) is the score gradient
	for i := 0; i < n; i++ {
		probs.Set(i, y[i], probs.At(i, y[i])-1)
	}

	dW := mat.NewDense(d, c, nil)
	dW.Mul(X.T(), &probs)
	dW.Scale(1/float64(n), dW)

	var penalty mat.Dense
	penalty.Scale(2*reg, W)
	dW.Add(dW, &penalty)

	return loss, dW, nil
}
