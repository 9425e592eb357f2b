// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation capabilities.
//
// This package implements reverse-mode automatic differentiation (backpropagation)
// using a gradient tape. It wraps any backend to add autodiff capabilities.
//
// Example:
//
//	import (
//	    "github.com/born-ml/logit/autodiff"
//	    "github.com/born-ml/logit/backend/cpu"
//	    "github.com/born-ml/logit/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    backend.Tape().StartRecording()
//
//	    p, _ := tensor.FromSlice([]float64{0.25}, tensor.Shape{1}, backend)
//	    y, _ := p.Logit() // Operation recorded on tape
//
//	    grads, _ := autodiff.Backward(y, backend)
//	    _ = grads[p.Raw()] // 1 / (0.25 * 0.75)
//	}
package autodiff

import (
	"github.com/born-ml/logit/internal/autodiff"
	"github.com/born-ml/logit/internal/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// New creates a new autodiff backend wrapping the given backend.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// BackwardCapable interface for backends that support backpropagation.
type BackwardCapable = autodiff.BackwardCapable

// ErrEmptyTape is returned by Backward when no operation was recorded.
var ErrEmptyTape = autodiff.ErrEmptyTape

// Backward computes gradients via backpropagation.
func Backward[T tensor.Float, B BackwardCapable](t *tensor.Tensor[T, B], backend B) (map[*tensor.RawTensor]*tensor.RawTensor, error) {
	return autodiff.Backward(t, backend)
}
