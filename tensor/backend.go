// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/logit/internal/tensor"

// Backend defines the interface that compute backends implement.
//
// Implementations:
//   - backend/cpu: Pure Go, optionally parallel over the flat buffer
//
// Decorator backends for additional functionality:
//   - autodiff: Automatic differentiation (wraps any backend)
//
// Example:
//
//	import (
//	    "github.com/born-ml/logit/backend/cpu"
//	    "github.com/born-ml/logit/tensor"
//	)
//
//	backend := cpu.New()
//	p, _ := tensor.FromSlice([]float32{0.5}, tensor.Shape{1}, backend)
//	y, _ := p.Logit() // Uses backend.Logit under the hood
type Backend = tensor.Backend
