// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations in hellotensor.
//
// The package defines core interfaces and types for type-safe tensor operations:
//   - Tensor[T, B]: High-level generic tensor with type safety
//   - RawTensor: Low-level tensor representation for advanced use cases
//   - Backend: Interface for device-specific compute implementations
//   - Shape, DataType, Device: Core type definitions
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Rand[float64](tensor.Shape{3, 3}, backend)
//	v := x.At(1, 2)
package tensor
