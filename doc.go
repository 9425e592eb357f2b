// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package logit computes the logit transform and its gradient over float32
// and float64 slices.
//
// The forward transform maps a probability to its log-odds:
//
//	y = log(p / (1 - p))
//
// The backward transform propagates an upstream gradient through it:
//
//	dz_dx = dz_dy / (p * (1 - p))
//
// Inputs are not clamped. Probabilities of exactly 0 or 1 give -Inf and +Inf,
// values outside [0, 1] give NaN, and the gradient at 0 or 1 is infinite or
// NaN. Callers that need finite results clamp before calling.
//
// For tensors, backends and automatic differentiation see the tensor,
// backend/cpu and autodiff packages.
package logit
