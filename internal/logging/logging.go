// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	log     *logrus.Logger
	logFile *os.File // Owned by the current logger; closed when replaced.
)

// Init configures the shared logger.
// An unparsable level falls back to info. When path is set, entries are
// appended to it in addition to stderr (if console is true). A file opened by
// a previous Init is closed.
func Init(level, path string, console bool) error {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var writers []io.Writer
	if console {
		writers = append(writers, os.Stderr)
	}
	var file *os.File
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.Wrap(err, "create log directory")
		}
		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		writers = append(writers, file)
	}

	switch len(writers) {
	case 0:
		l.SetOutput(io.Discard)
	case 1:
		l.SetOutput(writers[0])
	default:
		l.SetOutput(io.MultiWriter(writers...))
	}

	mu.Lock()
	defer mu.Unlock()
	log = l
	return swapFile(file)
}

// Close releases the log file, if any, and resets the shared logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	log = nil
	return swapFile(nil)
}

// swapFile installs next as the open log file and closes the previous one.
// Callers hold mu.
func swapFile(next *os.File) error {
	prev := logFile
	logFile = next
	if prev == nil {
		return nil
	}
	return errors.Wrap(prev.Close(), "close log file")
}

// Get returns the shared logger, creating a default one on first use.
func Get() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// WithComponent returns an entry tagged with the component name.
func WithComponent(name string) *logrus.Entry {
	return Get().WithField("component", name)
}
