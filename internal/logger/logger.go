package logger

import (
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output encodings.
const (
	ConsoleFormat = "console"
	JSONFormat    = "json"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide logger. Only the first call's level and format
// take effect; later calls return the same instance.
func Get(level string, format ...string) *Logger {
	once.Do(func() {
		f := ConsoleFormat
		if len(format) > 0 && format[0] != "" {
			f = format[0]
		}
		globalLogger = New(level, f)
	})
	return globalLogger
}
