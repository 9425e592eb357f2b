package commands

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/born-ml/logit/internal/tensor"
)

// parseValues splits s on commas and whitespace and parses each field.
// "inf", "-Inf" and "NaN" are accepted.
func parseValues(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(tensor.ErrInvalidArgument, "value %d: %q is not a number", i, f)
		}
		values[i] = v
	}
	return values, nil
}

// readValues parses args, or all of r when args is empty.
func readValues(args []string, r io.Reader) ([]float64, error) {
	if len(args) > 0 {
		return parseValues(strings.Join(args, " "))
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read stdin")
	}
	return parseValues(string(data))
}

// toRaw converts values to a 1-D tensor of element type T.
func toRaw[T tensor.Float](values []float64) (*tensor.RawTensor, error) {
	data := make([]T, len(values))
	for i, v := range values {
		data[i] = T(v)
	}
	return tensor.FromFloats(data, tensor.Shape{len(data)})
}

// newRaw converts values to a 1-D tensor of the given float type.
func newRaw(dtype tensor.DataType, values []float64) (*tensor.RawTensor, error) {
	switch dtype {
	case tensor.Float32:
		return toRaw[float32](values)
	case tensor.Float64:
		return toRaw[float64](values)
	default:
		return nil, tensor.UnsupportedDType("input", dtype)
	}
}

// formatRaw writes one value per line at the tensor's element width, so
// infinities and NaN print as +Inf, -Inf and NaN.
func formatRaw(w io.Writer, raw *tensor.RawTensor) error {
	var b strings.Builder
	switch raw.DType() {
	case tensor.Float32:
		for _, v := range raw.AsFloat32() {
			b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
			b.WriteByte('\n')
		}
	case tensor.Float64:
		for _, v := range raw.AsFloat64() {
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			b.WriteByte('\n')
		}
	default:
		return tensor.UnsupportedDType("output", raw.DType())
	}
	_, err := io.WriteString(w, b.String())
	return err
}
