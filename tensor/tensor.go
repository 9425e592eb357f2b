// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/logit/internal/tensor"
)

// DType is a constraint for tensor data types.
type DType = tensor.DType

// Float is the constraint for element types the logit operations accept.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// ParseDataType converts a name such as "float32" or "double" to a DataType.
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the only supported device.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// UnknownDim marks a dimension whose size is not known during shape inference.
const UnknownDim = tensor.UnknownDim

// MergeShapes combines two partially known shapes of equal rank.
func MergeShapes(a, b Shape) (Shape, error) {
	return tensor.MergeShapes(a, b)
}

// Errors reported by tensor operations. Match them with errors.Is.
var (
	ErrInvalidArgument  = tensor.ErrInvalidArgument
	ErrUnsupportedDType = tensor.ErrUnsupportedDType
	ErrShapeMismatch    = tensor.ErrShapeMismatch
)

// Tensor is a generic type-safe tensor.
//
// T is the element type (float32 or float64).
// B is the backend implementation.
//
// Example:
//
//	backend := cpu.New()
//	p, _ := tensor.FromSlice([]float32{0.25, 0.75}, tensor.Shape{2}, backend)
//	y, err := p.Logit()
type Tensor[T Float, B Backend] = tensor.Tensor[T, B]

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T Float, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use FromSlice instead.
func New[T Float, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}
