// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the logit operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - Optional goroutine parallelism over the flat buffer
//   - Optional reuse of unique input buffers as outputs
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
//	    p, _ := tensor.FromSlice([]float32{0.2, 0.8}, tensor.Shape{2}, backend)
//	    y, _ := p.Logit()
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use as long as callers do not share
// output tensors between goroutines while an operation writes them.
package cpu
