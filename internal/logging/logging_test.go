package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_LevelAndFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "logit.log")

	require.NoError(t, Init("debug", logFile, false))
	assert.Equal(t, logrus.DebugLevel, Get().GetLevel())

	WithComponent("test").Info("hello")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "component=test")
}

func TestInit_BadLevelFallsBackToInfo(t *testing.T) {
	require.NoError(t, Init("loud", "", false))
	assert.Equal(t, logrus.InfoLevel, Get().GetLevel())
}

func TestInit_ClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init("info", filepath.Join(dir, "first.log"), false))
	first := logFile
	require.NotNil(t, first)

	require.NoError(t, Init("info", filepath.Join(dir, "second.log"), false))
	assert.NotSame(t, first, logFile)
	_, err := first.Write([]byte("x"))
	assert.True(t, errors.Is(err, os.ErrClosed), "got %v", err)

	second := logFile
	require.NoError(t, Close())
	assert.Nil(t, logFile)
	_, err = second.Write([]byte("x"))
	assert.True(t, errors.Is(err, os.ErrClosed), "got %v", err)

	// Get recreates a default logger after Close.
	assert.Equal(t, logrus.WarnLevel, Get().GetLevel())
}
