// Package log provides an abstraction over levelled loggers.
package log

// Logger is the levelled logger used by the toolkit components.
// The default logger of github.com/apex/log implements it.
type Logger interface {
	// Debugf writes a formatted debug message.
	// Arguments are handled in the manner of fmt.Printf.
	Debugf(format string, v ...interface{})
	// Infof writes a formatted informational message.
	Infof(format string, v ...interface{})
	// Warnf writes a formatted warning.
	Warnf(format string, v ...interface{})
	// Errorf writes a formatted error.
	Errorf(format string, v ...interface{})
}
