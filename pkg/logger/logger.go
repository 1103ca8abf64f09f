// Package logger provides logging functionality for the issue watcher.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger writing one line per message.
type writerLogger struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
}

// NewDefaultLogger creates a logger writing to stdout.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout, "")
}

// NewWriterLogger creates a logger writing to out, each line starting with prefix.
func NewWriterLogger(out io.Writer, prefix string) Logger {
	return &writerLogger{out: out, prefix: prefix}
}

// Logf writes a formatted line with thread safety.
func (w *writerLogger) Logf(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = io.WriteString(w.out, w.prefix)
	_, _ = fmt.Fprintf(w.out, format+"\n", args...)
}
