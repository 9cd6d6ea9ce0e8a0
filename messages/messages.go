// Package messages defines the messages exchanged with the evaluation
// actor. The actor system is local, so messages are plain structs; the
// same structs serve as the JSON bodies of the HTTP boundary.
package messages

// Matrix is a shape-tagged, row-major flattening of a dense matrix.
type Matrix struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"data"`
}

// EvaluateLoss asks for the softmax loss and gradient of Weights over
// the batch Features with true classes Labels.
type EvaluateLoss struct {
	Weights  *Matrix `json:"weights"`
	Features *Matrix `json:"features"`
	Labels   []int   `json:"labels"`
	Reg      float64 `json:"reg"`
}

// LossGradient is the reply to EvaluateLoss. Gradient has the shape of
// the request's Weights.
type LossGradient struct {
	Loss     float64 `json:"loss"`
	Gradient *Matrix `json:"gradient"`
}

// EvaluationFailed reports a rejected EvaluateLoss request.
type EvaluationFailed struct {
	Reason string `json:"reason"`
}
