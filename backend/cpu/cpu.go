// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/hellotensor/internal/backend/cpu"
	"github.com/born-ml/hellotensor/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/hellotensor/backend/cpu"
//	    "github.com/born-ml/hellotensor/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Rand[float64](tensor.Shape{3, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
