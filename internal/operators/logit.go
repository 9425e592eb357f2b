package operators

import (
	"github.com/pkg/errors"

	"github.com/born-ml/logit/internal/tensor"
)

// Operation names.
const (
	LogitOp     = "Logit"
	LogitGradOp = "LogitGrad"
)

// floatTypes is the type constraint shared by both logit operations.
var floatTypes = []tensor.DataType{tensor.Float32, tensor.Float64}

// RegisterLogit declares Logit and LogitGrad and registers their float32 and
// float64 kernels, computed by backend.
func RegisterLogit(r *Registry, backend tensor.Backend) error {
	defs := []OpDef{
		{
			Name:     LogitOp,
			Inputs:   []string{"x"},
			Outputs:  []string{"y"},
			Types:    floatTypes,
			ShapeFn:  UnchangedShape,
			Gradient: LogitGradOp,
			Doc:      "Inverse of the sigmoid function, `logit(x) = log(x / (1 - x))`.",
		},
		{
			Name:    LogitGradOp,
			Inputs:  []string{"x", "dz_dy"},
			Outputs: []string{"dz_dx"},
			Types:   floatTypes,
			ShapeFn: MergeBothInputsShape,
			Doc:     "Gradient of logit: `dz_dx = dz_dy / (x * (1 - x))`.",
		},
	}
	for _, d := range defs {
		if err := r.Register(d); err != nil {
			return err
		}
	}

	for _, dt := range floatTypes {
		if err := r.RegisterKernel(LogitOp, dt, func(dtype tensor.DataType, shape tensor.Shape) Kernel {
			return &logitKernel{elementwiseKernel{name: LogitOp, arity: 1, dtype: dtype, shape: shape, backend: backend}}
		}); err != nil {
			return err
		}
		if err := r.RegisterKernel(LogitGradOp, dt, func(dtype tensor.DataType, shape tensor.Shape) Kernel {
			return &logitGradKernel{elementwiseKernel{name: LogitGradOp, arity: 2, dtype: dtype, shape: shape, backend: backend}}
		}); err != nil {
			return err
		}
	}
	return nil
}

type logitKernel struct {
	elementwiseKernel
}

func (k *logitKernel) Compute(inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := k.checkInputs(inputs); err != nil {
		return nil, err
	}
	y, err := k.backend.Logit(inputs[0])
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}
	return y, nil
}

type logitGradKernel struct {
	elementwiseKernel
}

// Compute rejects x and dz_dy of different shapes instead of skipping the
// computation. When the inferred shape is fully defined, checkInputs already
// pins both inputs to it.
func (k *logitGradKernel) Compute(inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := k.checkInputs(inputs); err != nil {
		return nil, err
	}
	x, dzdy := inputs[0], inputs[1]
	if !k.shape.IsFullyDefined() && !x.Shape().Equal(dzdy.Shape()) {
		return nil, tensor.InvalidArgument("%s: inputs must have the same shape: x %v vs dz_dy %v", k.name, x.Shape(), dzdy.Shape())
	}
	dzdx, err := k.backend.LogitGrad(x, dzdy)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}
	return dzdx, nil
}
