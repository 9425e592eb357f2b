// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/logit/internal/backend/cpu"
	"github.com/born-ml/logit/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}

	data := tensor.Floats[float32](raw)
	for i, v := range data {
		if v != 0 {
			t.Errorf("data[%d] = %v, want 0", i, v)
		}
	}
}

// TestLogitRoundTrip runs logit then sigmoid through the public API.
func TestLogitRoundTrip(t *testing.T) {
	backend := cpu.New()
	p, err := tensor.FromSlice([]float64{0.1, 0.5, 0.9}, tensor.Shape{3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	y, err := p.Logit()
	if err != nil {
		t.Fatalf("Logit failed: %v", err)
	}
	back, err := y.Sigmoid()
	if err != nil {
		t.Fatalf("Sigmoid failed: %v", err)
	}

	for i, want := range p.Data() {
		if got := back.Data()[i]; math.Abs(got-want) > 1e-12 {
			t.Errorf("sigmoid(logit(%v)) = %v", want, got)
		}
	}
}

func TestErrorsExported(t *testing.T) {
	if !errors.Is(tensor.ErrShapeMismatch, tensor.ErrInvalidArgument) {
		t.Error("ErrShapeMismatch should match ErrInvalidArgument")
	}

	_, err := tensor.ParseDataType("int8")
	if !errors.Is(err, tensor.ErrUnsupportedDType) {
		t.Errorf("ParseDataType(int8) error = %v, want ErrUnsupportedDType", err)
	}

	merged, err := tensor.MergeShapes(tensor.Shape{tensor.UnknownDim, 3}, tensor.Shape{2, tensor.UnknownDim})
	if err != nil {
		t.Fatalf("MergeShapes failed: %v", err)
	}
	if !merged.Equal(tensor.Shape{2, 3}) {
		t.Errorf("MergeShapes = %v, want [2 3]", merged)
	}
}
