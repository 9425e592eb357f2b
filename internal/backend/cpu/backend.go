// Package cpu implements the CPU backend for the logit operations.
package cpu

import (
	"github.com/sirupsen/logrus"

	"github.com/born-ml/logit/internal/logging"
	"github.com/born-ml/logit/internal/parallel"
	"github.com/born-ml/logit/internal/tensor"
)

// CPUBackend implements tensor.Backend on CPU.
//
// Kernels run over the flat buffer of each tensor, split across goroutines
// according to the parallel config. When forwarding is enabled, an input
// whose buffer has no other references is reused as the output.
type CPUBackend struct {
	device     tensor.Device
	parallel   parallel.Config
	forwarding bool
	log        logrus.FieldLogger
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithParallel sets how kernels split their index range.
func WithParallel(cfg parallel.Config) Option {
	return func(cpu *CPUBackend) {
		cpu.parallel = cfg
	}
}

// WithForwarding enables reuse of unique input buffers as outputs.
func WithForwarding(enabled bool) Option {
	return func(cpu *CPUBackend) {
		cpu.forwarding = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(cpu *CPUBackend) {
		cpu.log = log
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{
		device:   tensor.CPU,
		parallel: parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cpu)
	}
	if cpu.log == nil {
		cpu.log = logging.WithComponent("cpu")
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Forwarding reports whether input buffers may be reused as outputs.
func (cpu *CPUBackend) Forwarding() bool {
	return cpu.forwarding
}

// outputFor returns the tensor an elementwise op writes into: the first
// forwardable candidate, or a fresh buffer shaped like the first candidate.
func (cpu *CPUBackend) outputFor(op string, candidates ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	if cpu.forwarding {
		for i, c := range candidates {
			if c.IsUnique() {
				cpu.log.WithFields(logrus.Fields{"op": op, "input": i}).Debug("forwarding input buffer")
				return c, nil
			}
		}
	}
	return tensor.NewRawLike(candidates[0])
}
