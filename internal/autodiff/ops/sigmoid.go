package ops

import (
	"github.com/born-ml/logit/internal/kernel"
	"github.com/born-ml/logit/internal/tensor"
)

// SigmoidOp represents the sigmoid activation operation: σ(x) = 1 / (1 + exp(-x)).
type SigmoidOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSigmoidOp creates a new sigmoid operation.
func NewSigmoidOp(input, output *tensor.RawTensor) *SigmoidOp {
	return &SigmoidOp{
		input:  input,
		output: output,
	}
}

// Inputs returns the input tensors.
func (op *SigmoidOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *SigmoidOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward computes the gradient for sigmoid.
//
// For σ(x) = 1 / (1 + exp(-x)):
// dσ/dx = σ(x) * (1 - σ(x))
//
// Since we have the output σ(x) already computed, we can use it:
// grad_input = grad_output * output * (1 - output).
func (op *SigmoidOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) ([]*tensor.RawTensor, error) {
	if !outputGrad.Shape().Equal(op.output.Shape()) || outputGrad.DType() != op.output.DType() {
		return nil, tensor.InvalidArgument("sigmoid backward: gradient %s%v does not match output %s%v",
			outputGrad.DType(), outputGrad.Shape(), op.output.DType(), op.output.Shape())
	}

	inputGrad, err := tensor.NewRawLike(op.input)
	if err != nil {
		return nil, err
	}

	switch op.output.DType() {
	case tensor.Float32:
		err = kernel.SigmoidGrad(op.output.AsFloat32(), outputGrad.AsFloat32(), inputGrad.AsFloat32())
	case tensor.Float64:
		err = kernel.SigmoidGrad(op.output.AsFloat64(), outputGrad.AsFloat64(), inputGrad.AsFloat64())
	default:
		err = tensor.UnsupportedDType("sigmoid backward", op.output.DType())
	}
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{inputGrad}, nil
}
