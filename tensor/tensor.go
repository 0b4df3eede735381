// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"golang.org/x/exp/rand"

	"github.com/born-ml/hellotensor/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{3, 3} represents a 2D tensor with dimensions 3×3.
type Shape = tensor.Shape

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32 or float64).
// B is the backend implementation.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Rand[float64](tensor.Shape{3, 3}, backend)
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Rand creates a tensor filled with random values from uniform distribution U(0, 1).
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Rand[float64](tensor.Shape{3, 3}, backend)
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Rand[T, B](shape, b)
}

// RandWithSource creates a tensor filled with random values from uniform
// distribution U(0, 1), drawn from a caller-supplied source.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.RandWithSource[float64](tensor.Shape{3, 3}, rand.NewSource(42), backend)
func RandWithSource[T DType, B Backend](shape Shape, src rand.Source, b B) *Tensor[T, B] {
	return tensor.RandWithSource[T, B](shape, src, b)
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	backend := cpu.New()
//	identity := tensor.Eye[float32](3, backend)  // 3x3 identity matrix
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return tensor.Eye[T, B](n, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Rand, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
//
// This is a low-level function. Most users should use high-level creation functions instead.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}
