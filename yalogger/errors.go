package yalogger

import "errors"

// ErrInvalidLogLevel is returned when a log level string cannot be parsed.
var ErrInvalidLogLevel = errors.New("invalid log level")
