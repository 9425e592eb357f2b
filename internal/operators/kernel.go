package operators

import (
	"github.com/born-ml/logit/internal/tensor"
)

// Kernel is an operation instantiated for one element type and one inferred
// output shape.
type Kernel interface {
	// Name returns the operation name, e.g. "Logit".
	Name() string

	// Shape returns the output shape inferred when the kernel was built.
	// It may contain tensor.UnknownDim.
	Shape() tensor.Shape

	// ElementType returns the element type the kernel was built for.
	ElementType() tensor.DataType

	// Compute runs the operation. Inputs are validated against the kernel's
	// arity, element type and shape before any element is written.
	Compute(inputs ...*tensor.RawTensor) (*tensor.RawTensor, error)
}

// KernelFactory builds a kernel for a given element type and output shape.
type KernelFactory func(dtype tensor.DataType, shape tensor.Shape) Kernel

// elementwiseKernel carries the fields shared by the logit kernels.
type elementwiseKernel struct {
	name    string
	arity   int
	dtype   tensor.DataType
	shape   tensor.Shape
	backend tensor.Backend
}

func (k *elementwiseKernel) Name() string {
	return k.name
}

func (k *elementwiseKernel) Shape() tensor.Shape {
	return k.shape
}

func (k *elementwiseKernel) ElementType() tensor.DataType {
	return k.dtype
}

// checkInputs validates arity, element types and shape compatibility with the
// inferred output shape.
func (k *elementwiseKernel) checkInputs(inputs []*tensor.RawTensor) error {
	if len(inputs) != k.arity {
		return tensor.InvalidArgument("%s: expected %d inputs, got %d", k.name, k.arity, len(inputs))
	}
	for i, in := range inputs {
		if in == nil {
			return tensor.InvalidArgument("%s: input %d is nil", k.name, i)
		}
		if in.DType() != k.dtype {
			return tensor.InvalidArgument("%s: input %d has dtype %s, kernel expects %s", k.name, i, in.DType(), k.dtype)
		}
		if _, err := tensor.MergeShapes(k.shape, in.Shape()); err != nil {
			return tensor.InvalidArgument("%s: input %d shape %v incompatible with %v", k.name, i, in.Shape(), k.shape)
		}
	}
	return nil
}
