package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/hellotensor/internal/tensor"
)

func TestNew(t *testing.T) {
	backend := New()

	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestFillFloat64RowMajor(t *testing.T) {
	backend := New()

	raw, err := tensor.NewRaw(tensor.Shape{3, 3}, tensor.Float64, backend.Device())
	require.NoError(t, err)

	// 9 elements is below the parallel threshold, so fill order is row-major.
	next := 0.0
	backend.Fill(raw, func() float64 {
		next++
		return next
	})

	data := raw.AsFloat64()
	require.Len(t, data, 9)
	for i, v := range data {
		assert.Equal(t, float64(i+1), v, "element %d", i)
	}
}

func TestFillFloat32(t *testing.T) {
	backend := New()

	raw, err := tensor.NewRaw(tensor.Shape{2, 4}, tensor.Float32, backend.Device())
	require.NoError(t, err)

	backend.Fill(raw, func() float64 { return 0.5 })

	for i, v := range raw.AsFloat32() {
		assert.Equal(t, float32(0.5), v, "element %d", i)
	}
}

func TestFillLargeTensorCoversEveryElement(t *testing.T) {
	backend := New()

	// Large enough to take the parallel path.
	raw, err := tensor.NewRaw(tensor.Shape{128, 128}, tensor.Float64, backend.Device())
	require.NoError(t, err)

	backend.Fill(raw, func() float64 { return 1 })

	for i, v := range raw.AsFloat64() {
		require.Equal(t, 1.0, v, "element %d not filled", i)
	}
}
