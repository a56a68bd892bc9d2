package yalogger

import (
	"github.com/sirupsen/logrus"
)

// logrusAdapter implements the Logger interface using a logrus.Entry.
type logrusAdapter struct {
	entry *logrus.Entry
}

// baseLogrus holds a reference to a logrus.Logger instance.
// It serves as the base logger from which new Logger instances are created.
type baseLogrus struct {
	logger *logrus.Logger
}

// NewBaseLogger creates and configures a new logrus-backed base logger.
// A nil config yields a Warn-level logger with timestamps disabled, which
// keeps library components silent unless something is actually wrong.
//
// Example usage:
//
//	log := yalogger.NewBaseLogger(&yalogger.Config{Level: yalogger.DebugLevel}).NewLogger()
func NewBaseLogger(config *Config) BaseLogger {
	if config == nil {
		config = &Config{
			Level:            WarnLevel,
			FullTimestamp:    false,
			TimestampFormat:  "2006-01-02 15:04:05",
			DisableTimestamp: true,
		}
	}

	base := logrus.New()
	base.SetLevel(logrus.Level(config.Level))
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    config.FullTimestamp,
		TimestampFormat:  config.TimestampFormat,
		DisableTimestamp: config.DisableTimestamp,
	})

	return &baseLogrus{logger: base}
}

// NewLogger creates a new Logger instance from the base logrus logger.
func (b *baseLogrus) NewLogger() Logger {
	return &logrusAdapter{entry: logrus.NewEntry(b.logger)}
}

func (l *logrusAdapter) Trace(msg string) {
	l.entry.Trace(msg)
}

func (l *logrusAdapter) Tracef(format string, args ...any) {
	l.entry.Tracef(format, args...)
}

func (l *logrusAdapter) Debug(msg string) {
	l.entry.Debug(msg)
}

func (l *logrusAdapter) Debugf(format string, args ...any) {
	l.entry.Debugf(format, args...)
}

func (l *logrusAdapter) Info(msg string) {
	l.entry.Info(msg)
}

func (l *logrusAdapter) Infof(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *logrusAdapter) Warn(msg string) {
	l.entry.Warn(msg)
}

func (l *logrusAdapter) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *logrusAdapter) Error(msg string) {
	l.entry.Error(msg)
}

func (l *logrusAdapter) Errorf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

func (l *logrusAdapter) Fatal(msg string) {
	l.entry.Fatal(msg)
}

func (l *logrusAdapter) Fatalf(format string, args ...any) {
	l.entry.Fatalf(format, args...)
}

func (l *logrusAdapter) WithField(key string, value any) Logger {
	return &logrusAdapter{entry: l.entry.WithField(key, value)}
}

func (l *logrusAdapter) WithFields(fields map[string]any) Logger {
	return &logrusAdapter{entry: l.entry.WithFields(logrus.Fields(fields))}
}
