// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - Parallel element fill for large tensors
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/hellotensor/backend/cpu"
//	    "github.com/born-ml/hellotensor/tensor"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with tensors
//	    x := tensor.Rand[float64](tensor.Shape{3, 3}, backend)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Fill may invoke its sampler
// from multiple goroutines for large tensors; samplers passed directly to
// Fill must be safe for concurrent use.
package cpu
