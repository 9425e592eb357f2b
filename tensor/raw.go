// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/logit/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Zero-copy data access via AsFloat32() and AsFloat64()
//   - Reference counting via Clone() and Release()
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()  // Type-safe access
//	clone := raw.Clone()     // Shares buffer via reference counting
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled raw tensor with the given shape, dtype, and device.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromFloats creates a raw tensor holding a copy of data.
func FromFloats[T Float](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromFloats(data, shape)
}

// Floats returns a zero-copy typed view of a raw tensor's data.
// Panics if T does not match the tensor's data type.
func Floats[T Float](r *RawTensor) []T {
	return tensor.Floats[T](r)
}
