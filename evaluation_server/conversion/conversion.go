// Package conversion translates between the flattened matrix payloads
// carried by actor messages and gonum dense matrices.
package conversion

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"softmaxreg/messages"
)

func ToDense(m *messages.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("conversion: missing matrix")
	}
	if m.Rows <= 0 || m.Cols <= 0 {
		return nil, fmt.Errorf("conversion: invalid shape %dx%d", m.Rows, m.Cols)
	}
	if len(m.Data) != m.Rows*m.Cols {
		return nil, fmt.Errorf("conversion: shape %dx%d needs %d values, got %d", m.Rows, m.Cols, m.Rows*m.Cols, len(m.Data))
	}
	return mat.NewDense(m.Rows, m.Cols, m.Data), nil
}

func FromDense(d *mat.Dense) *messages.Matrix {
	rows, cols := d.Dims()
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		copy(data[i*cols:(i+1)*cols], d.RawRowView(i))
	}
	return &messages.Matrix{Rows: rows, Cols: cols, Data: data}
}
