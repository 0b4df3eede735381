// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interop provides conversion between tensors and gonum matrix types.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Rand[float64](tensor.Shape{3, 3}, backend)
//	d, err := interop.ToDense(t) // *mat.Dense with identical shape and values
package interop

import (
	"gonum.org/v1/gonum/mat"

	internalinterop "github.com/born-ml/hellotensor/internal/interop"
	"github.com/born-ml/hellotensor/tensor"
)

// ToDense converts a 2-D tensor into a gonum dense matrix.
//
// The matrix holds a copy of the tensor's values in row-major order with
// identical shape. Conversion is exact for both dtypes.
func ToDense[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) (*mat.Dense, error) {
	return internalinterop.ToDense(t)
}

// FromDense converts a gonum dense matrix into a float64 tensor.
// The tensor holds a copy of the matrix data.
func FromDense[B tensor.Backend](m *mat.Dense, b B) (*tensor.Tensor[float64, B], error) {
	return internalinterop.FromDense(m, b)
}
