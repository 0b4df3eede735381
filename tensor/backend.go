// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/hellotensor/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go, parallel element fill for large tensors
//
// Example:
//
//	import (
//	    "github.com/born-ml/hellotensor/backend/cpu"
//	    "github.com/born-ml/hellotensor/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Rand[float64](tensor.Shape{3, 3}, backend)
type Backend = tensor.Backend
