// Package log provides the debug logger for wikitodo.
//
// Messages are buffered in memory until a log file is configured with SetFile,
// so that anything logged while the configuration is still loading is kept.
// SetFile("") drops the buffer and everything logged afterwards.
package log

import (
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

const timeFormat = "2006-01-02 15:04:05.000000"

// sink is the io.Writer behind the charm logger.
type sink struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	debugSink = &sink{}
	logger    = charmlog.NewWithOptions(debugSink, charmlog.Options{
		Level:           charmlog.DebugLevel,
		Prefix:          "wikitodo",
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Formatter:       charmlog.LogfmtFormatter,
	})
)

// Write implements io.Writer.
func (s *sink) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discard {
		return len(p), nil
	}

	if s.file != nil {
		n, err = s.file.Write(p)
		_ = s.file.Sync()
		return n, err
	}

	// p may be reused by the caller.
	b := make([]byte, len(p))
	copy(b, p)
	s.buffer = append(s.buffer, b...)
	return len(p), nil
}

// SetFile points the debug log at path, creating the file if needed, and
// flushes anything buffered so far into it.
func SetFile(path string) error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	if debugSink.file != nil {
		_ = debugSink.file.Close()
		debugSink.file = nil
	}

	if path == "" {
		debugSink.discard = true
		debugSink.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		debugSink.discard = true
		debugSink.buffer = nil
		return err
	}

	debugSink.file = f
	debugSink.discard = false

	if len(debugSink.buffer) > 0 {
		_, _ = f.Write(debugSink.buffer)
		_ = f.Sync()
		debugSink.buffer = nil
	}

	return nil
}

// Debug logs msg with structured key/value pairs.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Warn logs a recoverable problem.
func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Close closes the debug log file if one is open.
func Close() error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	if debugSink.file == nil {
		return nil
	}

	err := debugSink.file.Close()
	debugSink.file = nil
	return err
}
