// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package logit

import (
	"github.com/born-ml/logit/internal/kernel"
	"github.com/born-ml/logit/internal/tensor"
)

// Float is the set of element types the transforms accept.
type Float = tensor.Float

// Errors returned by the slice functions. Match them with errors.Is.
var (
	ErrInvalidArgument  = tensor.ErrInvalidArgument
	ErrUnsupportedDType = tensor.ErrUnsupportedDType
)

// Logit returns a new slice holding log(p / (1 - p)) for every element of x.
func Logit[T Float](x []T) []T {
	y := make([]T, len(x))
	_ = kernel.Logit(x, y) // lengths match by construction
	return y
}

// LogitInPlace replaces every element of x with its logit.
func LogitInPlace[T Float](x []T) {
	_ = kernel.Logit(x, x)
}

// LogitGrad returns dzdy[i] / (x[i] * (1 - x[i])) for every i.
// x and dzdy must have the same length.
func LogitGrad[T Float](x, dzdy []T) ([]T, error) {
	if len(x) != len(dzdy) {
		return nil, tensor.InvalidArgument("logit grad: x has %d elements, dz_dy has %d", len(x), len(dzdy))
	}
	dzdx := make([]T, len(x))
	if err := kernel.LogitGrad(x, dzdy, dzdx); err != nil {
		return nil, err
	}
	return dzdx, nil
}

// Sigmoid returns a new slice holding 1 / (1 + exp(-x)), the inverse of Logit.
func Sigmoid[T Float](x []T) []T {
	y := make([]T, len(x))
	_ = kernel.Sigmoid(x, y)
	return y
}
