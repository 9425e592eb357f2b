package operators

import (
	"github.com/pkg/errors"

	"github.com/born-ml/logit/internal/tensor"
)

// ShapeFn infers an operation's output shape from its input shapes.
// Input shapes may contain tensor.UnknownDim.
type ShapeFn func(inputs []tensor.Shape) (tensor.Shape, error)

// UnchangedShape returns the first input's shape.
func UnchangedShape(inputs []tensor.Shape) (tensor.Shape, error) {
	if len(inputs) < 1 {
		return nil, tensor.InvalidArgument("unchanged shape: need at least 1 input, got %d", len(inputs))
	}
	return inputs[0].Clone(), nil
}

// MergeBothInputsShape unifies the first two input shapes. It fails when both
// are known and incompatible.
func MergeBothInputsShape(inputs []tensor.Shape) (tensor.Shape, error) {
	if len(inputs) != 2 {
		return nil, tensor.InvalidArgument("merge shapes: need 2 inputs, got %d", len(inputs))
	}
	merged, err := tensor.MergeShapes(inputs[0], inputs[1])
	if err != nil {
		return nil, errors.Wrap(err, "merge both inputs")
	}
	return merged, nil
}
