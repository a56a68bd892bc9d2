// Package yalogger is the structured logging facade used across GoYaTgMarkup.
// It hides the concrete backend (logrus) behind a small Logger interface so
// that library code can emit diagnostics without dictating the host
// application's logging setup.
package yalogger

import "strings"

// Level is the minimum severity a logger emits. The numeric values follow
// the logrus ordering: lower is more severe.
type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// Config defines the configuration options for the logger.
type Config struct {
	Level            Level
	FullTimestamp    bool
	DisableTimestamp bool
	TimestampFormat  string
}

// BaseLogger is an interface for creating new Logger instances.
type BaseLogger interface {
	// NewLogger creates a new Logger instance from the base logger.
	NewLogger() Logger
}

// Logger defines a structured logging interface with support for log levels
// and context-aware logging using key-value fields.
type Logger interface {
	// Trace logs a message at the Trace level (very low-level debugging).
	//
	// Example usage:
	//
	//   logger.Trace("Entered tokenizer")
	Trace(msg string)

	// Tracef logs a formatted message at the Trace level.
	Tracef(format string, args ...any)

	// Debug logs a message at the Debug level.
	Debug(msg string)

	// Debugf logs a formatted message at the Debug level.
	//
	// Example usage:
	//
	//   logger.Debugf("Parsed %d entities", len(entities))
	Debugf(format string, args ...any)

	// Info logs a message at the Info level.
	Info(msg string)

	// Infof logs a formatted message at the Info level.
	Infof(format string, args ...any)

	// Warn logs a message at the Warn level.
	// Used for non-critical issues that might cause problems.
	Warn(msg string)

	// Warnf logs a formatted message at the Warn level.
	Warnf(format string, args ...any)

	// Error logs a message at the Error level.
	// Used to indicate a failure that should be investigated.
	Error(msg string)

	// Errorf logs a formatted message at the Error level.
	Errorf(format string, args ...any)

	// Fatal logs a message at the Fatal level and terminates the application.
	Fatal(msg string)

	// Fatalf logs a formatted message at the Fatal level.
	Fatalf(format string, args ...any)

	// WithField returns a logger instance with a single field added to the
	// context.
	//
	// Example usage:
	//
	//   logger.WithField("component", "yatgmarkup")
	WithField(key string, value any) Logger

	// WithFields returns a logger instance with multiple fields added to the
	// context.
	WithFields(fields map[string]any) Logger
}

func (l *Level) String() string {
	switch *l {
	case PanicLevel:
		return "Panic"
	case FatalLevel:
		return "Fatal"
	case ErrorLevel:
		return "Error"
	case WarnLevel:
		return "Warn"
	case InfoLevel:
		return "Info"
	case DebugLevel:
		return "Debug"
	case TraceLevel:
		return "Trace"
	default:
		return "Unknown"
	}
}

func (l *Level) Unmarshal(text string) error {
	switch strings.ToLower(text) {
	case "panic":
		*l = PanicLevel
	case "fatal":
		*l = FatalLevel
	case "error":
		*l = ErrorLevel
	case "warn":
		*l = WarnLevel
	case "info":
		*l = InfoLevel
	case "debug":
		*l = DebugLevel
	case "trace":
		*l = TraceLevel
	default:
		return ErrInvalidLogLevel
	}

	return nil
}

func (l *Level) UnmarshalText(text []byte) error {
	return l.Unmarshal(string(text))
}
