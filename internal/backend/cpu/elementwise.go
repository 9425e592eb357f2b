package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/logit/internal/kernel"
	"github.com/born-ml/logit/internal/tensor"
)

// Logit computes element-wise log(x / (1 - x)).
func (cpu *CPUBackend) Logit(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if !x.DType().IsFloat() {
		return nil, tensor.UnsupportedDType("logit", x.DType())
	}

	result, err := cpu.outputFor("logit", x)
	if err != nil {
		return nil, errors.Wrap(err, "logit")
	}

	switch x.DType() {
	case tensor.Float32:
		err = kernel.LogitParallel(x.AsFloat32(), result.AsFloat32(), cpu.parallel)
	case tensor.Float64:
		err = kernel.LogitParallel(x.AsFloat64(), result.AsFloat64(), cpu.parallel)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LogitGrad computes element-wise dzdy / (x * (1 - x)).
// x and dzdy must share dtype and shape; nothing is computed otherwise.
func (cpu *CPUBackend) LogitGrad(x, dzdy *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkBinary("logit grad", x, dzdy); err != nil {
		return nil, err
	}

	result, err := cpu.outputFor("logit grad", x, dzdy)
	if err != nil {
		return nil, errors.Wrap(err, "logit grad")
	}

	switch x.DType() {
	case tensor.Float32:
		err = kernel.LogitGradParallel(x.AsFloat32(), dzdy.AsFloat32(), result.AsFloat32(), cpu.parallel)
	case tensor.Float64:
		err = kernel.LogitGradParallel(x.AsFloat64(), dzdy.AsFloat64(), result.AsFloat64(), cpu.parallel)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Sigmoid computes element-wise 1 / (1 + exp(-x)).
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if !x.DType().IsFloat() {
		return nil, tensor.UnsupportedDType("sigmoid", x.DType())
	}

	result, err := cpu.outputFor("sigmoid", x)
	if err != nil {
		return nil, errors.Wrap(err, "sigmoid")
	}

	switch x.DType() {
	case tensor.Float32:
		err = kernel.Sigmoid(x.AsFloat32(), result.AsFloat32())
	case tensor.Float64:
		err = kernel.Sigmoid(x.AsFloat64(), result.AsFloat64())
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Add computes a + b for identically shaped tensors.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkBinary("add", a, b); err != nil {
		return nil, err
	}

	result, err := cpu.outputFor("add", a, b)
	if err != nil {
		return nil, errors.Wrap(err, "add")
	}

	switch a.DType() {
	case tensor.Float32:
		err = kernel.Add(a.AsFloat32(), b.AsFloat32(), result.AsFloat32())
	case tensor.Float64:
		err = kernel.Add(a.AsFloat64(), b.AsFloat64(), result.AsFloat64())
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// checkBinary validates the operands of a binary elementwise op.
func checkBinary(op string, a, b *tensor.RawTensor) error {
	if !a.DType().IsFloat() {
		return tensor.UnsupportedDType(op, a.DType())
	}
	if a.DType() != b.DType() {
		return tensor.InvalidArgument("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType())
	}
	if !a.Shape().Equal(b.Shape()) {
		return tensor.InvalidArgument("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape())
	}
	return nil
}
