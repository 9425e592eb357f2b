package ops

import (
	"github.com/pkg/errors"

	"github.com/born-ml/logit/internal/tensor"
)

// LogitOp represents the logit operation, the inverse of sigmoid.
//
// Forward:
//
//	output = log(input / (1 - input))
//
// Backward:
//
//	∂L/∂input = ∂L/∂output / (input * (1 - input))
//
// The backward pass needs the forward input, not the output, so the autodiff
// backend keeps the input buffer from being forwarded. The gradient buffers
// stay on the tape, so Backward pins them as well.
type LogitOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewLogitOp creates a new logit operation.
func NewLogitOp(input, output *tensor.RawTensor) *LogitOp {
	return &LogitOp{
		input:  input,
		output: output,
	}
}

// Inputs returns the input tensors.
func (op *LogitOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *LogitOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward delegates to the backend's LogitGrad with the recorded input.
func (op *LogitOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) ([]*tensor.RawTensor, error) {
	defer op.input.ForceNonUnique()()
	defer outputGrad.ForceNonUnique()()

	inputGrad, err := backend.LogitGrad(op.input, outputGrad)
	if err != nil {
		return nil, errors.Wrap(err, "logit backward")
	}
	return []*tensor.RawTensor{inputGrad}, nil
}
