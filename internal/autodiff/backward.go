package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/logit/internal/tensor"
)

// ErrEmptyTape is returned by Backward when nothing was recorded.
var ErrEmptyTape = errors.New("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")

// BackwardCapable is an interface for backends that support backward pass.
// AutodiffBackend implements this interface.
type BackwardCapable interface {
	tensor.Backend
	// GetTape returns the gradient tape for backward computation.
	GetTape() *GradientTape
}

// GetTape returns the gradient tape (implements BackwardCapable interface).
func (b *AutodiffBackend[B]) GetTape() *GradientTape {
	return b.tape
}

// Backward computes gradients for a tensor using the backend's tape.
//
// The output gradient is seeded with ones, so for a non-scalar output the
// result is the gradient of the sum of its elements.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	x, _ := tensor.FromSlice([]float64{0.5}, tensor.Shape{1}, backend)
//	y, _ := x.Logit()
//	gradients, _ := autodiff.Backward(y, backend)
//	grad := gradients[x.Raw()] // 1 / (0.5 * 0.5) = 4
func Backward[T tensor.Float, B BackwardCapable](t *tensor.Tensor[T, B], backend B) (map[*tensor.RawTensor]*tensor.RawTensor, error) {
	tape := backend.GetTape()
	if tape.NumOps() == 0 {
		return nil, ErrEmptyTape
	}

	outputGrad, err := tensor.NewRaw(t.Shape(), t.DType(), backend.Device())
	if err != nil {
		return nil, errors.Wrap(err, "backward: create output gradient")
	}
	ones := tensor.Floats[T](outputGrad)
	for i := range ones {
		ones[i] = 1
	}

	return tape.Backward(outputGrad, backend)
}
