// Package interop converts tensors to and from gonum matrix types.
package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/hellotensor/internal/tensor"
)

// ToDense converts a 2-D tensor into a gonum dense matrix.
//
// The matrix holds a copy of the tensor's values in row-major order with
// identical shape. Conversion is exact for both dtypes: float64 values are
// copied verbatim and every float32 is representable as a float64.
func ToDense[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) (*mat.Dense, error) {
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("dense conversion requires a 2-D tensor, got %d-D shape %v", len(shape), shape)
	}

	rows, cols := shape[0], shape[1]
	data := make([]float64, rows*cols)
	for i, v := range t.Data() {
		data[i] = float64(v)
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromDense converts a gonum dense matrix into a float64 tensor.
// The tensor holds a copy of the matrix data.
func FromDense[B tensor.Backend](m *mat.Dense, b B) (*tensor.Tensor[float64, B], error) {
	rows, cols := m.Dims()

	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		data = append(data, m.RawRowView(i)...)
	}

	t, err := tensor.FromSlice(data, tensor.Shape{rows, cols}, b)
	if err != nil {
		return nil, fmt.Errorf("tensor from %dx%d matrix: %w", rows, cols, err)
	}
	return t, nil
}
