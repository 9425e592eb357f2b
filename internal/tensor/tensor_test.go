package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/logit/internal/backend/cpu"
	"github.com/born-ml/logit/internal/tensor"
)

func TestTensor_FromSlice(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Equal(t, tensor.Float32, x.DType())
	assert.Equal(t, 6, x.NumElements())
	assert.Equal(t, backend, x.Backend())
	assert.Equal(t, "Tensor[float32][2 3] on CPU", x.String())
}

func TestTensor_FromSlice_LengthMismatch(t *testing.T) {
	_, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2}, cpu.New())
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

func TestTensor_Logit(t *testing.T) {
	x, err := tensor.FromSlice([]float64{0.1, 0.5, 0.9}, tensor.Shape{3}, cpu.New())
	require.NoError(t, err)

	y, err := x.Logit()
	require.NoError(t, err)

	want := []float64{math.Log(0.1 / 0.9), 0, math.Log(0.9 / 0.1)}
	assert.InDeltaSlice(t, want, y.Data(), 1e-12)
	assert.Equal(t, []float64{0.1, 0.5, 0.9}, x.Data(), "input must be unchanged")
}

func TestTensor_LogitGrad(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float32{0.5, 0.25}, tensor.Shape{2}, backend)
	g, _ := tensor.FromSlice([]float32{1, 3}, tensor.Shape{2}, backend)

	dx, err := x.LogitGrad(g)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{4, 16}, dx.Data(), 1e-5)
}

func TestTensor_LogitGrad_ShapeMismatch(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float32{0.5, 0.25}, tensor.Shape{2}, backend)
	g, _ := tensor.FromSlice([]float32{1, 3}, tensor.Shape{1, 2}, backend)

	_, err := x.LogitGrad(g)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

func TestTensor_SigmoidInvertsLogit(t *testing.T) {
	x, _ := tensor.FromSlice([]float64{0.01, 0.3, 0.77}, tensor.Shape{3}, cpu.New())
	y, err := x.Logit()
	require.NoError(t, err)
	back, err := y.Sigmoid()
	require.NoError(t, err)
	assert.InDeltaSlice(t, x.Data(), back.Data(), 1e-12)
}

func TestTensor_Add(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, backend)
	b, _ := tensor.FromSlice([]float64{0.5, -2}, tensor.Shape{2}, backend)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 0}, sum.Data())
}

func TestTensor_Item(t *testing.T) {
	x, _ := tensor.FromSlice([]float32{0.5}, tensor.Shape{1}, cpu.New())
	y, err := x.Logit()
	require.NoError(t, err)
	assert.Equal(t, float32(0), y.Item())

	multi, _ := tensor.FromSlice([]float32{0.5, 0.5}, tensor.Shape{2}, cpu.New())
	assert.Panics(t, func() { multi.Item() })
}
