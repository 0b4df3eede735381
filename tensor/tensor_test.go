// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/hellotensor/internal/backend/cpu"
	"github.com/born-ml/hellotensor/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies the RawTensor type alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	shape := raw.Shape()
	if !shape.Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", shape)
	}

	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want float32", raw.DType())
	}

	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
}

// TestCreationAPI verifies the re-exported creation functions.
func TestCreationAPI(t *testing.T) {
	backend := cpu.New()

	x := tensor.Rand[float64](tensor.Shape{3, 3}, backend)
	if !x.Shape().Equal(tensor.Shape{3, 3}) {
		t.Errorf("Rand shape = %v, want [3 3]", x.Shape())
	}

	ones := tensor.Ones[float64](tensor.Shape{2, 2}, backend)
	for i, v := range ones.Data() {
		if v != 1 {
			t.Errorf("Ones element %d = %v, want 1", i, v)
		}
	}

	eye := tensor.Eye[float64](3, backend)
	if eye.At(0, 0) != 1 || eye.At(0, 1) != 0 {
		t.Error("Eye is not an identity matrix")
	}
}
