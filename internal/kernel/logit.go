// Package kernel holds the numerical core of the logit operation: flat,
// elementwise loops over float32 or float64 buffers.
//
// Forward:
//
//	y[i] = log(x[i] / (1 - x[i]))
//
// Backward:
//
//	dz_dx[i] = dz_dy[i] / (x[i] * (1 - x[i]))
//
// Inputs are not clamped. x = 0 gives -Inf, x = 1 gives +Inf, x outside
// [0, 1] gives NaN, and the gradient at 0 or 1 divides by zero. These values
// are part of the result, not errors.
//
// Every output element depends only on the input elements at the same index,
// and each loop reads them into locals before writing. The output buffer may
// therefore be the same slice as any input.
package kernel

import (
	"math"

	"github.com/born-ml/logit/internal/parallel"
	"github.com/born-ml/logit/internal/tensor"
)

// Logit writes log(x[i] / (1 - x[i])) into y[i] for every i.
// y must have the same length as x and may alias it.
func Logit[T tensor.Float](x, y []T) error {
	if len(y) != len(x) {
		return tensor.InvalidArgument("logit: output length %d does not match input length %d", len(y), len(x))
	}
	logit(x, y)
	return nil
}

// LogitParallel is Logit with the index range split across goroutines.
func LogitParallel[T tensor.Float](x, y []T, cfg parallel.Config) error {
	if len(y) != len(x) {
		return tensor.InvalidArgument("logit: output length %d does not match input length %d", len(y), len(x))
	}
	parallel.ForRange(len(x), func(start, end int) {
		logit(x[start:end], y[start:end])
	}, cfg)
	return nil
}

// LogitGrad writes dzdy[i] / (x[i] * (1 - x[i])) into dzdx[i] for every i.
// All three slices must have the same length; dzdx may alias x or dzdy.
func LogitGrad[T tensor.Float](x, dzdy, dzdx []T) error {
	if err := checkGradLengths("logit grad", len(x), len(dzdy), len(dzdx)); err != nil {
		return err
	}
	logitGrad(x, dzdy, dzdx)
	return nil
}

// LogitGradParallel is LogitGrad with the index range split across goroutines.
func LogitGradParallel[T tensor.Float](x, dzdy, dzdx []T, cfg parallel.Config) error {
	if err := checkGradLengths("logit grad", len(x), len(dzdy), len(dzdx)); err != nil {
		return err
	}
	parallel.ForRange(len(x), func(start, end int) {
		logitGrad(x[start:end], dzdy[start:end], dzdx[start:end])
	}, cfg)
	return nil
}

// Sigmoid writes 1 / (1 + exp(-x[i])) into y[i] for every i.
// It is the inverse of Logit on (0, 1).
func Sigmoid[T tensor.Float](x, y []T) error {
	if len(y) != len(x) {
		return tensor.InvalidArgument("sigmoid: output length %d does not match input length %d", len(y), len(x))
	}
	for i := range x {
		v := float64(x[i])
		y[i] = T(1 / (1 + math.Exp(-v)))
	}
	return nil
}

// SigmoidGrad writes dzdy[i] * y[i] * (1 - y[i]) into dzdx[i], where y is the
// sigmoid output.
func SigmoidGrad[T tensor.Float](y, dzdy, dzdx []T) error {
	if err := checkGradLengths("sigmoid grad", len(y), len(dzdy), len(dzdx)); err != nil {
		return err
	}
	for i := range y {
		s, g := y[i], dzdy[i]
		dzdx[i] = g * s * (1 - s)
	}
	return nil
}

// Add writes a[i] + b[i] into out[i].
func Add[T tensor.Float](a, b, out []T) error {
	if len(a) != len(b) || len(out) != len(a) {
		return tensor.InvalidArgument("add: lengths %d, %d, output %d must match", len(a), len(b), len(out))
	}
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return nil
}

func checkGradLengths(op string, nx, ndzdy, ndzdx int) error {
	if nx != ndzdy {
		return tensor.InvalidArgument("%s: forward input has %d elements but dz_dy has %d", op, nx, ndzdy)
	}
	if ndzdx != nx {
		return tensor.InvalidArgument("%s: output length %d does not match input length %d", op, ndzdx, nx)
	}
	return nil
}

func logit[T tensor.Float](x, y []T) {
	for i := range x {
		p := x[i]
		y[i] = T(math.Log(float64(p / (1 - p))))
	}
}

func logitGrad[T tensor.Float](x, dzdy, dzdx []T) {
	for i := range x {
		p, g := x[i], dzdy[i]
		dzdx[i] = g / (p * (1 - p))
	}
}
