package softmax

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LossNaive computes the same loss and gradient as Loss using explicit
// per-example and per-class loops instead of batched matrix products.
// The two implementations agree up to floating-point rounding.
func LossNaive(W, X mat.Matrix, y []int, reg float64) (float64, *mat.Dense, error) {
	if err := validate(W, X, y, reg); err != nil {
		return 0, nil, err
	}

	d, c := W.Dims()
	n, _ := X.Dims()

	dW := mat.NewDense(d, c, nil)
	loss := 0.0

	xi := make([]float64, d)
	probs := make([]float64, c)
	for i := 0; i < n; i++ {
		mat.Row(xi, i, X)

		for j := 0; j < c; j++ {
			s := 0.0
			for k := 0; k < d; k++ {
				s += xi[k] * W.At(k, j)
			}
			probs[j] = s
		}

		shift := floats.Max(probs)
		sum := 0.0
		for j := range probs {
			probs[j] = math.Exp(probs[j] - shift)
			sum += probs[j]
		}
		for j := range probs {
			probs[j] /= sum
		}

		loss -= math.Log(probs[y[i]])

		for j := 0; j < c; j++ {
			p := probs[j]
			if j == y[i] {
				p -= 1
			}
			for k := 0; k < d; k++ {
				dW.Set(k, j, dW.At(k, j)+p*xi[k])
			}
		}
	}

	loss /= float64(n)
	dW.Scale(1/float64(n), dW)

	sq := 0.0
	for k := 0; k < d; k++ {
		for j := 0; j < c; j++ {
			w := W.At(k, j)
			sq += w * w
			dW.Set(k, j, dW.At(k, j)+2*reg*w)
		}
	}
	loss += reg * sq

	return loss, dW, nil
}
