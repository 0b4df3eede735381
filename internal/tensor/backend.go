package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - CPU: Pure Go, parallel element fill for large tensors
//   - MockBackend: Naive sequential implementation for tests
type Backend interface {
	// Name returns a human-readable backend name.
	Name() string

	// Device returns the compute device tensors created on this backend use.
	Device() Device

	// Fill writes sample() into every element of t in row-major index order.
	// Backends may invoke sample from multiple goroutines for large tensors;
	// callers must pass a sampler that is safe for concurrent use.
	Fill(t *RawTensor, sample func() float64)
}
