package operators

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/born-ml/logit/internal/logging"
	"github.com/born-ml/logit/internal/tensor"
)

// Registry errors.
var (
	ErrUnknownOp   = errors.New("unknown operation")
	ErrDuplicateOp = errors.New("operation already registered")
	ErrNoKernel    = errors.New("no kernel registered")
)

// OpDef declares an operation.
type OpDef struct {
	Name     string
	Inputs   []string
	Outputs  []string
	Types    []tensor.DataType // Allowed element types.
	ShapeFn  ShapeFn
	Gradient string // Operation computing the input gradient; empty if not differentiable.
	Doc      string
}

// Allows reports whether dtype satisfies the definition's type constraint.
func (d *OpDef) Allows(dtype tensor.DataType) bool {
	for _, t := range d.Types {
		if t == dtype {
			return true
		}
	}
	return false
}

type kernelKey struct {
	op    string
	dtype tensor.DataType
}

// Registry maps operation names to definitions and (operation, dtype) pairs
// to kernel factories. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	defs    map[string]*OpDef
	kernels map[kernelKey]KernelFactory
	log     logrus.FieldLogger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:    make(map[string]*OpDef),
		kernels: make(map[kernelKey]KernelFactory),
		log:     logging.WithComponent("operators"),
	}
}

// NewDefaultRegistry creates a registry with the logit operations bound to backend.
func NewDefaultRegistry(backend tensor.Backend) *Registry {
	r := NewRegistry()
	if err := RegisterLogit(r, backend); err != nil {
		panic(err)
	}
	return r
}

// Register adds an operation definition.
func (r *Registry) Register(def OpDef) error {
	if def.Name == "" {
		return tensor.InvalidArgument("register: empty operation name")
	}
	if def.ShapeFn == nil {
		return tensor.InvalidArgument("register %s: missing shape function", def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[def.Name]; ok {
		return errors.Wrap(ErrDuplicateOp, def.Name)
	}
	d := def
	r.defs[def.Name] = &d
	r.log.WithFields(logrus.Fields{"op": def.Name, "types": def.Types}).Debug("registered operation")
	return nil
}

// RegisterKernel adds a kernel factory for an operation and element type.
// The element type must be allowed by the operation's definition.
func (r *Registry) RegisterKernel(name string, dtype tensor.DataType, factory KernelFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	def, ok := r.defs[name]
	if !ok {
		return errors.Wrap(ErrUnknownOp, name)
	}
	if !def.Allows(dtype) {
		return tensor.UnsupportedDType(name, dtype)
	}
	key := kernelKey{op: name, dtype: dtype}
	if _, ok := r.kernels[key]; ok {
		return errors.Wrapf(ErrDuplicateOp, "kernel %s<%s>", name, dtype)
	}
	r.kernels[key] = factory
	r.log.WithFields(logrus.Fields{"op": name, "dtype": dtype}).Debug("registered kernel")
	return nil
}

// Lookup returns the definition of an operation.
func (r *Registry) Lookup(name string) (OpDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	if !ok {
		return OpDef{}, false
	}
	return *def, true
}

// Ops returns all registered definitions sorted by name.
func (r *Registry) Ops() []OpDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]OpDef, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// InferShape runs the operation's shape function without building a kernel.
func (r *Registry) InferShape(name string, inputs ...tensor.Shape) (tensor.Shape, error) {
	def, ok := r.Lookup(name)
	if !ok {
		return nil, errors.Wrap(ErrUnknownOp, name)
	}
	if len(inputs) != len(def.Inputs) {
		return nil, tensor.InvalidArgument("%s: expected %d input shapes, got %d", name, len(def.Inputs), len(inputs))
	}
	shape, err := def.ShapeFn(inputs)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return shape, nil
}

// NewKernel dispatches to the kernel for (name, dtype).
// It checks the type constraint first, then runs shape inference.
func (r *Registry) NewKernel(name string, dtype tensor.DataType, inputs ...tensor.Shape) (Kernel, error) {
	def, ok := r.Lookup(name)
	if !ok {
		return nil, errors.Wrap(ErrUnknownOp, name)
	}
	if !def.Allows(dtype) {
		return nil, tensor.UnsupportedDType(name, dtype)
	}

	shape, err := r.InferShape(name, inputs...)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	factory, ok := r.kernels[kernelKey{op: name, dtype: dtype}]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrNoKernel, "%s<%s>", name, dtype)
	}
	return factory(dtype, shape), nil
}

// Execute builds the kernel matching the inputs and runs it.
func (r *Registry) Execute(name string, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	if len(inputs) == 0 || inputs[0] == nil {
		return nil, tensor.InvalidArgument("%s: no inputs", name)
	}
	shapes := make([]tensor.Shape, len(inputs))
	for i, in := range inputs {
		if in == nil {
			return nil, tensor.InvalidArgument("%s: input %d is nil", name, i)
		}
		shapes[i] = in.Shape()
	}

	k, err := r.NewKernel(name, inputs[0].DType(), shapes...)
	if err != nil {
		return nil, err
	}
	return k.Compute(inputs...)
}
