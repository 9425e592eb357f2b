// Package ops defines operation interfaces and implementations for automatic differentiation.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: computed by the backend
//   - Backward pass: computes gradients for inputs given output gradient
//
// Supported operations:
//   - LogitOp: logit(x) = log(x / (1 - x)), d/dx = 1 / (x * (1 - x))
//   - SigmoidOp: σ(x) = 1 / (1 + exp(-x)), d/dx = σ(x) * (1 - σ(x))
//   - AddOp: element-wise addition (d(a+b)/da = 1, d(a+b)/db = 1)
package ops

import "github.com/born-ml/logit/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass,
// and computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input tensor.
	//
	// Example for LogitOp:
	//   inputs: [x]
	//   outputGrad: dL/dy
	//   returns: [LogitGrad(x, dL/dy)]
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) ([]*tensor.RawTensor, error)

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
