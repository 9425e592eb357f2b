// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package logit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/logit"
)

func TestLogit(t *testing.T) {
	x := []float64{0.1, 0.5, 0.9}
	y := logit.Logit(x)

	require.Len(t, y, 3)
	assert.InDelta(t, -2.1972245773362196, y[0], 1e-12)
	assert.Equal(t, 0.0, y[1])
	assert.InDelta(t, 2.1972245773362196, y[2], 1e-12)
	assert.Equal(t, []float64{0.1, 0.5, 0.9}, x, "input must be unchanged")
}

func TestLogit_Edges(t *testing.T) {
	y := logit.Logit([]float32{0, 1, -0.5, 1.5})
	assert.True(t, math.IsInf(float64(y[0]), -1))
	assert.True(t, math.IsInf(float64(y[1]), 1))
	assert.True(t, math.IsNaN(float64(y[2])))
	assert.True(t, math.IsNaN(float64(y[3])))
}

func TestLogit_Empty(t *testing.T) {
	assert.Empty(t, logit.Logit([]float32{}))
	assert.Empty(t, logit.Logit[float64](nil))
}

func TestLogitInPlace(t *testing.T) {
	x := []float32{0.25, 0.5, 0.75}
	want := logit.Logit(x)
	logit.LogitInPlace(x)
	assert.Equal(t, want, x)
}

func TestLogitGrad(t *testing.T) {
	dzdx, err := logit.LogitGrad([]float64{0.5, 0.2}, []float64{1, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 12.5}, dzdx, 1e-12)
}

func TestLogitGrad_LengthMismatch(t *testing.T) {
	_, err := logit.LogitGrad([]float32{0.5, 0.5}, []float32{1})
	assert.ErrorIs(t, err, logit.ErrInvalidArgument)
}

func TestSigmoid_InvertsLogit(t *testing.T) {
	x := []float64{0.001, 0.2, 0.5, 0.8, 0.999}
	assert.InDeltaSlice(t, x, logit.Sigmoid(logit.Logit(x)), 1e-12)
}
