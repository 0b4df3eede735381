package tensor

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Process-wide source for unseeded random creation. Seeded from the clock
// once at startup so successive runs produce different tensors.
var (
	globalMu  sync.Mutex
	globalSrc = rand.NewSource(uint64(time.Now().UnixNano()))
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, T(1), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Draws come from the process-wide source, so successive runs are not
// reproducible. Use RandWithSource for seeded generation.
//
// Example:
//
//	t := tensor.Rand[float64](Shape{3, 3}, backend)
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return randFrom[T](shape, globalSrc, &globalMu, b)
}

// RandWithSource creates a tensor with random values uniformly distributed
// in [0, 1), drawn from a caller-supplied source. Two tensors created from
// sources with the same seed hold identical values.
//
// Example:
//
//	t := tensor.RandWithSource[float64](Shape{3, 3}, rand.NewSource(42), backend)
func RandWithSource[T DType, B Backend](shape Shape, src rand.Source, b B) *Tensor[T, B] {
	var mu sync.Mutex
	return randFrom[T](shape, src, &mu, b)
}

// randFrom fills a fresh tensor from a uniform distribution over src.
// PCG sources are not safe for concurrent draws and backends may fill in
// parallel, so every draw goes through mu.
func randFrom[T DType, B Backend](shape Shape, src rand.Source, mu *sync.Mutex, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	b.Fill(t.Raw(), func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return u.Rand()
	})
	return t
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	t := tensor.Eye[float32](3, backend) // 3x3 identity matrix
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	for i := 0; i < n; i++ {
		t.Set(T(1), i, i)
	}
	return t
}
