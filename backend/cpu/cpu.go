// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/sirupsen/logrus"

	internalcpu "github.com/born-ml/logit/internal/backend/cpu"
	"github.com/born-ml/logit/internal/parallel"
	"github.com/born-ml/logit/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go implementations of the logit operations,
// optionally split across goroutines.
type Backend = internalcpu.CPUBackend

// Option configures a Backend.
type Option = internalcpu.Option

// ParallelConfig controls how kernels split their index range.
type ParallelConfig = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/logit/backend/cpu"
//	    "github.com/born-ml/logit/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New(cpu.WithForwarding(true))
//	    p, _ := tensor.FromSlice([]float32{0.5}, tensor.Shape{1}, backend)
//	}
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// WithParallel sets how kernels split their index range.
func WithParallel(cfg ParallelConfig) Option {
	return internalcpu.WithParallel(cfg)
}

// WithForwarding lets the backend reuse an input buffer with no other
// references as the output.
func WithForwarding(enabled bool) Option {
	return internalcpu.WithForwarding(enabled)
}

// WithLogger sets the logger used for debug output, such as forwarding
// decisions. The default logger is tagged with component "cpu".
func WithLogger(log logrus.FieldLogger) Option {
	return internalcpu.WithLogger(log)
}

// DefaultParallelConfig returns the parallel settings used when none are given.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Sequential returns settings that run every kernel on the calling goroutine.
func Sequential() ParallelConfig {
	return parallel.Sequential()
}
