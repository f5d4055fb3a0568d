// Package logtest implements support for testing Loggers.
package logtest

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/gspinelli/gskit/log"
)

// DiscardLogger is a Logger that writes nothing.
var DiscardLogger = new(discardLogger)

// NewLogger creates a Logger.
func NewLogger() *Logger {
	l := Logger{
		buf: new(bytes.Buffer),
	}
	return &l
}

// discardLogger is a logger that logs nothing.
type discardLogger struct{}

// DiscardLogger implements the log.Logger interface.
var _ log.Logger = DiscardLogger

// Debugf implements the log.Logger interface
func (discardLogger) Debugf(format string, v ...interface{}) {
	// NOOP
}

// Infof implements the log.Logger interface
func (discardLogger) Infof(format string, v ...interface{}) {
	// NOOP
}

// Warnf implements the log.Logger interface
func (discardLogger) Warnf(format string, v ...interface{}) {
	// NOOP
}

// Errorf implements the log.Logger interface
func (discardLogger) Errorf(format string, v ...interface{}) {
	// NOOP
}

// Logger is a logger that writes to a buffer to be read later.
// Each message is written on its own line, prefixed by its level.
type Logger struct {
	buf *bytes.Buffer
	mu  sync.RWMutex
}

// Logger implements the log.Logger interface.
var _ log.Logger = NewLogger()

// Debugf implements the log.Logger interface
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.printf("DEBUG", format, v...)
}

// Infof implements the log.Logger interface
func (l *Logger) Infof(format string, v ...interface{}) {
	l.printf("INFO", format, v...)
}

// Warnf implements the log.Logger interface
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.printf("WARN", format, v...)
}

// Errorf implements the log.Logger interface
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.printf("ERROR", format, v...)
}

func (l *Logger) printf(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.buf, level+" "+format+"\n", v...)
}

// String returns the recorded string.
func (l *Logger) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.String()
}

// Empty returns if buffer is empty.
func (l *Logger) Empty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Len() == 0
}

// Reset clears the buffer.
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf.Reset()
}
