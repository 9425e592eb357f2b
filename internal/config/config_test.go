package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/logit/internal/tensor"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	d := DefaultConfig()
	assert.Equal(t, d.Parallel.MinChunkSize, cfg.Parallel.MinChunkSize)
	assert.False(t, cfg.Backend.Forwarding)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, tensor.Float64, cfg.DataType())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logit.yaml")
	content := `
parallel:
  enabled: true
  workers: 3
  min_chunk_size: 128
backend:
  forwarding: true
logging:
  level: debug
dtype: float32
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Backend.Forwarding)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, tensor.Float32, cfg.DataType())

	p := cfg.ParallelSettings()
	assert.True(t, p.Enabled)
	assert.Equal(t, 3, p.NumWorkers)
	assert.Equal(t, 128, p.MinChunkSize)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LOGIT_DTYPE", "double")
	t.Setenv("LOGIT_PARALLEL_WORKERS", "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, tensor.Float64, cfg.DataType())
	assert.False(t, cfg.ParallelSettings().Enabled, "a single worker never runs in parallel")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		is     error
	}{
		{"negative workers", func(c *Config) { c.Parallel.Workers = -1 }, nil},
		{"negative chunk", func(c *Config) { c.Parallel.MinChunkSize = -4 }, nil},
		{"unknown dtype", func(c *Config) { c.DType = "float16" }, tensor.ErrUnsupportedDType},
		{"integer dtype", func(c *Config) { c.DType = "int32" }, tensor.ErrUnsupportedDType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "error %v should wrap %v", err, tt.is)
			}
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}
