package tensor

// Backend defines the interface that compute backends implement.
// Backends handle the actual computation for tensor operations.
//
// Every operation returns an error instead of partially computing: shape and
// dtype preconditions are checked before any element is written. Numeric
// domain violations (log of a negative, division by zero) are not errors and
// surface as IEEE special values in the result.
type Backend interface {
	// Logit computes y = log(x / (1 - x)) element-wise.
	Logit(x *RawTensor) (*RawTensor, error)

	// LogitGrad computes dz_dx = dz_dy / (x * (1 - x)) element-wise.
	// x and dzdy must have identical shapes.
	LogitGrad(x, dzdy *RawTensor) (*RawTensor, error)

	// Sigmoid computes 1 / (1 + exp(-x)) element-wise, the inverse of Logit.
	Sigmoid(x *RawTensor) (*RawTensor, error)

	// Add computes a + b element-wise for identically shaped tensors.
	Add(a, b *RawTensor) (*RawTensor, error)

	// Metadata
	Name() string
	Device() Device
}
