package tensor

import "fmt"

// Tensor is a generic tensor with type T and backend B.
// It provides type-safe operations over multi-dimensional arrays.
//
// Type Parameters:
//   - T: Data type (must satisfy DType constraint)
//   - B: Computation backend (must implement Backend interface)
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Rand[float64](Shape{3, 3}, backend)
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory in row-major order.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		return nil, err
	}

	// Copy data into raw tensor
	t := New[T, B](raw, b)
	copy(t.Data(), data)

	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// Device returns the tensor's compute device.
func (t *Tensor[T, B]) Device() Device {
	return t.raw.Device()
}

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used by backend implementations for low-level operations.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Data returns a typed slice view of the tensor's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T, B]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	default:
		panic("unsupported type")
	}
}

// Item returns the scalar value of a 0-D tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor[T, B]) Item() T {
	if len(t.Shape()) != 0 || t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.Shape()))
	}
	return t.Data()[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Rand[float64](Shape{3, 3}, backend)
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T, B]) At(indices ...int) T {
	return t.Data()[t.offsetOf(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T, B]) Set(value T, indices ...int) {
	t.Data()[t.offsetOf(indices)] = value
}

// offsetOf computes the flat buffer offset for the given indices using strides.
func (t *Tensor[T, B]) offsetOf(indices []int) int {
	if len(indices) != len(t.Shape()) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.Shape()), len(indices)))
	}

	offset := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.Shape()[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.Shape()[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.raw.DType(), t.raw.Shape(), t.raw.Device())
}

// Clone creates a copy of the tensor sharing the underlying buffer.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:     t.raw.Clone(),
		backend: t.backend,
	}
}
