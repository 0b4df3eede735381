package tensor

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively for correctness verification.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Fill writes sample() into every element of t, sequentially in row-major order.
func (m *MockBackend) Fill(t *RawTensor, sample func() float64) {
	switch t.DType() {
	case Float32:
		data := t.AsFloat32()
		for i := range data {
			data[i] = float32(sample())
		}
	case Float64:
		data := t.AsFloat64()
		for i := range data {
			data[i] = sample()
		}
	default:
		panic("fill: unsupported dtype " + t.DType().String())
	}
}
