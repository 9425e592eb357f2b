package commands

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/logit/internal/tensor"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lines(vals ...string) string {
	return strings.Join(vals, "\n") + "\n"
}

func logit64(p float64) string {
	return strconv.FormatFloat(math.Log(p/(1-p)), 'g', -1, 64)
}

func logit32(p float32) string {
	return strconv.FormatFloat(float64(float32(math.Log(float64(p/(1-p))))), 'g', -1, 32)
}

func TestForwardCommand(t *testing.T) {
	want := lines(logit64(0.1), "0", logit64(0.9))

	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "args", args: []string{"forward", "0.1", "0.5", "0.9"}},
		{name: "comma separated", args: []string{"forward", "0.1,0.5,0.9"}},
		{name: "stdin", stdin: "0.1\n0.5 0.9\n", args: []string{"forward"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, want, out)
		})
	}
}

func TestForwardCommand_Edges(t *testing.T) {
	out, err := run(t, "", "forward", "0", "1", "2", "-1")
	require.NoError(t, err)
	assert.Equal(t, lines("-Inf", "+Inf", "NaN", "NaN"), out)
}

func TestForwardCommand_NegativeValues(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "leading negative after --", args: []string{"forward", "--", "-0.5", "0.5"}, want: lines("NaN", "0")},
		{name: "flags then --", args: []string{"forward", "--dtype", "float32", "--", "-0.5"}, want: lines("NaN")},
		{name: "negative after first value", args: []string{"forward", "0.5", "-0.5", "-2"}, want: lines("0", "NaN", "NaN")},
		{name: "stdin", stdin: "-0.5, 0.5", args: []string{"forward"}, want: lines("NaN", "0")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGradCommand_NegativeValues(t *testing.T) {
	out, err := run(t, "", "grad", "--x", "-1,2", "--dz-dy", "1,1")
	require.NoError(t, err)
	assert.Equal(t, lines("-0.5", "-0.5"), out)
}

func TestForwardCommand_Float32(t *testing.T) {
	out, err := run(t, "", "forward", "--dtype", "float32", "0.25", "0.5")
	require.NoError(t, err)
	assert.Equal(t, lines(logit32(0.25), "0"), out)
}

func TestForwardCommand_Empty(t *testing.T) {
	out, err := run(t, "", "forward")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestForwardCommand_Errors(t *testing.T) {
	_, err := run(t, "", "forward", "abc")
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	_, err = run(t, "", "forward", "--dtype", "int32", "0.5")
	assert.ErrorIs(t, err, tensor.ErrUnsupportedDType)
}

func TestGradCommand(t *testing.T) {
	out, err := run(t, "", "grad", "--x", "0.5,0.25", "--dz-dy", "1,3")
	require.NoError(t, err)
	assert.Equal(t, lines("4", "16"), out)
}

func TestGradCommand_LengthMismatch(t *testing.T) {
	out, err := run(t, "", "grad", "--x", "0.5,0.25", "--dz-dy", "1")
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
	assert.Empty(t, out)
}

func TestGradCommand_MissingFlag(t *testing.T) {
	_, err := run(t, "", "grad", "--x", "0.5")
	assert.Error(t, err)
}

func TestOpsCommand(t *testing.T) {
	out, err := run(t, "", "ops")
	require.NoError(t, err)
	assert.Contains(t, out, "Logit(x) -> y")
	assert.Contains(t, out, "LogitGrad(x, dz_dy) -> dz_dx")
	assert.Contains(t, out, "gradient: LogitGrad")
	assert.Contains(t, out, "types: float32, float64")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "logit "+version)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dtype: float32\nbackend:\n  forwarding: true\n"), 0o600))

	out, err := run(t, "", "--config", path, "forward", "0.5")
	require.NoError(t, err)
	assert.Equal(t, lines("0"), out)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "forward", "0.5")
	assert.Error(t, err)
}

func TestParseValues(t *testing.T) {
	vals, err := parseValues(" 1, 2.5\t-3e-2\ninf NaN ")
	require.NoError(t, err)
	require.Len(t, vals, 5)
	assert.Equal(t, []float64{1, 2.5, -0.03}, vals[:3])
	assert.True(t, math.IsInf(vals[3], 1))
	assert.True(t, math.IsNaN(vals[4]))

	vals, err = parseValues("")
	require.NoError(t, err)
	assert.Empty(t, vals)
}

func TestFormatRaw(t *testing.T) {
	raw, err := tensor.FromFloats([]float32{0.1, float32(math.Inf(-1))}, tensor.Shape{2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, formatRaw(&buf, raw))
	assert.Equal(t, lines("0.1", "-Inf"), buf.String())
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logit.log")
	cfgPath := filepath.Join(dir, "logit.yaml")
	cfg := "logging:\n  file: " + logPath + "\n  console: false\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	out, err := run(t, "", "--config", cfgPath, "--verbose", "forward", "0.5")
	require.NoError(t, err)
	assert.Equal(t, lines("0"), out)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend ready")
}
