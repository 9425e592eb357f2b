package tensor

import "fmt"

// Tensor is a generic tensor with element type T and backend B.
//
// Type Parameters:
//   - T: Element type (float32 or float64)
//   - B: Computation backend (must implement Backend interface)
//
// Example:
//
//	backend := cpu.New()
//	p, _ := tensor.FromSlice([]float64{0.1, 0.5, 0.9}, tensor.Shape{3}, backend)
//	logits, err := p.Logit()
type Tensor[T Float, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
func New[T Float, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Float, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	raw, err := FromFloats(data, shape)
	if err != nil {
		return nil, err
	}
	return New[T](raw, b), nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
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
	return Floats[T](t.raw)
}

// Item returns the scalar value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor[T, B]) Item() T {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.Shape()))
	}
	return t.Data()[0]
}

// Logit applies the logit transform through the tensor's backend.
func (t *Tensor[T, B]) Logit() (*Tensor[T, B], error) {
	raw, err := t.backend.Logit(t.raw)
	if err != nil {
		return nil, err
	}
	return New[T](raw, t.backend), nil
}

// LogitGrad back-propagates dzdy through logit evaluated at t.
func (t *Tensor[T, B]) LogitGrad(dzdy *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := t.backend.LogitGrad(t.raw, dzdy.raw)
	if err != nil {
		return nil, err
	}
	return New[T](raw, t.backend), nil
}

// Sigmoid applies the logistic sigmoid through the tensor's backend.
func (t *Tensor[T, B]) Sigmoid() (*Tensor[T, B], error) {
	raw, err := t.backend.Sigmoid(t.raw)
	if err != nil {
		return nil, err
	}
	return New[T](raw, t.backend), nil
}

// Add returns t + other.
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := t.backend.Add(t.raw, other.raw)
	if err != nil {
		return nil, err
	}
	return New[T](raw, t.backend), nil
}

// String returns a short description of the tensor.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.DType(), t.Shape(), t.backend.Name())
}
