package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// UnknownDim marks a dimension whose size is not known during shape inference.
// Allocated tensors never carry it.
const UnknownDim = -1

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape can back an allocated tensor.
// Zero-sized dimensions are allowed and produce empty buffers.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return invalidf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// IsFullyDefined reports whether every dimension is known.
func (s Shape) IsFullyDefined() bool {
	for _, dim := range s {
		if dim == UnknownDim {
			return false
		}
	}
	return true
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as [d0 d1 ...], printing unknown dimensions as "?".
func (s Shape) String() string {
	out := "["
	for i, dim := range s {
		if i > 0 {
			out += " "
		}
		if dim == UnknownDim {
			out += "?"
		} else {
			out += fmt.Sprint(dim)
		}
	}
	return out + "]"
}

// MergeShapes unifies two shapes that must describe the same tensor.
//
// Rules:
//  1. Ranks must be equal
//  2. Per dimension, equal sizes merge to that size
//  3. An unknown dimension takes the other side's size
//
// Any other combination is statically incompatible.
//
// Examples:
//
//	(2, 3) + (2, 3) → (2, 3)
//	(?, 3) + (2, ?) → (2, 3)
//	(2, 3) + (3, 2) → Error
func MergeShapes(a, b Shape) (Shape, error) {
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrShapeMismatch, "rank %d vs rank %d (%v vs %v)", len(a), len(b), a, b)
	}

	result := make(Shape, len(a))
	for i := range a {
		switch {
		case a[i] == b[i]:
			result[i] = a[i]
		case a[i] == UnknownDim:
			result[i] = b[i]
		case b[i] == UnknownDim:
			result[i] = a[i]
		default:
			return nil, errors.Wrapf(ErrShapeMismatch, "dimension %d: %d vs %d (%v vs %v)", i, a[i], b[i], a, b)
		}
	}
	return result, nil
}
