package tensor

import (
	"strings"
	"testing"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{3, 3}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	assertEqualShape(t, Shape{3, 3}, raw.Shape(), "NewRaw shape")

	if raw.DType() != Float64 {
		t.Errorf("DType() = %v, want Float64", raw.DType())
	}
	if raw.Device() != CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
	if raw.NumElements() != 9 {
		t.Errorf("NumElements() = %d, want 9", raw.NumElements())
	}
	if raw.ByteSize() != 72 {
		t.Errorf("ByteSize() = %d, want 72", raw.ByteSize())
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{3, 0}, Float64, CPU)
	if err == nil {
		t.Fatal("expected error for invalid shape")
	}
	if !strings.Contains(err.Error(), "invalid shape") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestRawTensorZeroInitialized(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	for i, v := range raw.AsFloat64() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestRawTensorAsFloat32(t *testing.T) {
	raw, err := NewRaw(Shape{2, 2}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	data := raw.AsFloat32()
	if len(data) != 4 {
		t.Fatalf("AsFloat32 length = %d, want 4", len(data))
	}

	data[0] = 1.5
	if raw.AsFloat32()[0] != 1.5 {
		t.Error("AsFloat32 does not view the underlying memory")
	}
}

func TestRawTensorAsWrongTypePanics(t *testing.T) {
	raw, err := NewRaw(Shape{2, 2}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for dtype mismatch")
		}
	}()
	raw.AsFloat64()
}

func TestRawTensorCloneIsShared(t *testing.T) {
	raw, err := NewRaw(Shape{2, 2}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	clone := raw.Clone()

	raw.AsFloat64()[0] = 42
	if clone.AsFloat64()[0] != 42 {
		t.Error("clone does not share the buffer")
	}
}

func TestRawTensorReferenceCounting(t *testing.T) {
	raw, err := NewRaw(Shape{2, 2}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.IsUnique() {
		t.Error("fresh tensor should be unique")
	}

	clone := raw.Clone()
	if raw.IsUnique() {
		t.Error("tensor with a live clone should not be unique")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("tensor should be unique again after clone release")
	}
}

func TestDeviceString(t *testing.T) {
	if CPU.String() != "CPU" {
		t.Errorf("CPU.String() = %q, want CPU", CPU.String())
	}
	if Device(99).String() != "Unknown" {
		t.Errorf("unknown device String() = %q, want Unknown", Device(99).String())
	}
}
