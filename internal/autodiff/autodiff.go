// Package autodiff implements automatic differentiation using the decorator pattern.
//
// AutodiffBackend wraps any Backend implementation and adds gradient tracking
// capabilities through a GradientTape.
//
// Architecture:
//   - Decorator pattern: AutodiffBackend[B] wraps any Backend implementation
//   - GradientTape: Records operations during forward pass
//   - Operation interface: Each op (Logit, Sigmoid, Add) implements backward pass
//   - Reverse-mode AD: Computes gradients using the chain rule
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x, _ := tensor.FromSlice([]float64{0.25}, tensor.Shape{1}, backend)
//	y, _ := x.Logit() // y = log(x / (1 - x))
//
//	grads, _ := autodiff.Backward(y, backend)
//	fmt.Println(grads[x.Raw()]) // dy/dx = 1 / (x * (1 - x)) = 5.333...
package autodiff

import (
	"github.com/born-ml/logit/internal/autodiff/ops"
	"github.com/born-ml/logit/internal/tensor"
)

// AutodiffBackend wraps a Backend and adds automatic differentiation.
// It implements the tensor.Backend interface and records operations in a GradientTape.
//
// Type parameter B must satisfy the tensor.Backend interface.
type AutodiffBackend[B tensor.Backend] struct {
	inner B             // Wrapped backend
	tape  *GradientTape // Records operations for backpropagation
}

// New creates a new AutodiffBackend wrapping the given backend.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: backend,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for manual control.
// Useful for:
//   - Starting/stopping recording
//   - Clearing tape between iterations
//   - Inspecting recorded operations
func (b *AutodiffBackend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend for direct access.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the compute device.
func (b *AutodiffBackend[B]) Device() tensor.Device {
	return b.inner.Device()
}

// Logit computes log(x / (1 - x)) and records the operation.
func (b *AutodiffBackend[B]) Logit(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	// The backward pass reads x, so it must not be overwritten in place.
	defer x.ForceNonUnique()()

	result, err := b.inner.Logit(x)
	if err != nil {
		return nil, err
	}
	b.tape.Record(ops.NewLogitOp(x, result))
	return result, nil
}

// LogitGrad computes dz_dy / (x * (1 - x)) on the inner backend.
// It is not recorded: second-order gradients are not supported.
func (b *AutodiffBackend[B]) LogitGrad(x, dzdy *tensor.RawTensor) (*tensor.RawTensor, error) {
	// Either operand may be a recorded tensor that a later Backward reads.
	defer x.ForceNonUnique()()
	defer dzdy.ForceNonUnique()()

	return b.inner.LogitGrad(x, dzdy)
}

// Sigmoid computes 1 / (1 + exp(-x)) and records the operation.
func (b *AutodiffBackend[B]) Sigmoid(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	defer x.ForceNonUnique()()

	result, err := b.inner.Sigmoid(x)
	if err != nil {
		return nil, err
	}
	b.tape.Record(ops.NewSigmoidOp(x, result))
	return result, nil
}

// Add performs element-wise addition and records the operation.
func (b *AutodiffBackend[B]) Add(a, c *tensor.RawTensor) (*tensor.RawTensor, error) {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result, err := b.inner.Add(a, c)
	if err != nil {
		return nil, err
	}
	b.tape.Record(ops.NewAddOp(a, c, result))
	return result, nil
}
