// Package cpu implements the CPU backend with parallel element fill.
package cpu

import (
	"github.com/born-ml/hellotensor/internal/parallel"
	"github.com/born-ml/hellotensor/internal/tensor"
)

// Verify that CPUBackend implements Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
	fill   parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		fill:   parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Fill writes sample() into every element of t.
// Small tensors are filled sequentially in row-major order; large tensors
// are filled in parallel chunks, so sample must be safe for concurrent use.
func (cpu *CPUBackend) Fill(t *tensor.RawTensor, sample func() float64) {
	switch t.DType() {
	case tensor.Float32:
		data := t.AsFloat32()
		parallel.For(len(data), func(i int) {
			data[i] = float32(sample())
		}, cpu.fill)
	case tensor.Float64:
		data := t.AsFloat64()
		parallel.For(len(data), func(i int) {
			data[i] = sample()
		}, cpu.fill)
	default:
		panic("fill: unsupported dtype " + t.DType().String())
	}
}
