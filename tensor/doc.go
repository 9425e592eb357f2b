// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensors for the logit operations.
//
// # Overview
//
// A tensor is a flat buffer of float32 or float64 values with a shape. This
// package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Zero-copy access to tensor data
//   - Reference-counted buffers that backends may reuse for outputs
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/logit/backend/cpu"
//	    "github.com/born-ml/logit/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    p, _ := tensor.FromSlice([]float64{0.1, 0.5, 0.9}, tensor.Shape{3}, backend)
//	    y, _ := p.Logit()           // log(p / (1 - p))
//	    g, _ := tensor.FromSlice([]float64{1, 1, 1}, tensor.Shape{3}, backend)
//	    dx, _ := p.LogitGrad(g)     // g / (p * (1 - p))
//	}
//
// # Supported Data Types
//
// The logit operations accept float32 and float64 only. Other DataType values
// exist so that callers can name them and receive ErrUnsupportedDType.
//
// # Errors
//
// Precondition failures are reported before any element is computed and can
// be matched with errors.Is against ErrInvalidArgument or ErrUnsupportedDType.
// Out-of-domain inputs are not errors: logit(0) is -Inf, logit(1) is +Inf and
// values outside [0, 1] give NaN.
package tensor
