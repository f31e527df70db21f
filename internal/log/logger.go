// Package log wraps logrus behind the small logging surface the rest of
// the application uses.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetDebug toggles debug-level logging
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects log output, used by tests
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// F creates a single log field
func F(key string, value interface{}) logrus.Fields {
	return logrus.Fields{key: value}
}

// WithFields returns an entry carrying structured fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Info logs a formatted message at info level
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a formatted message at debug level
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a formatted message at warn level
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs a formatted message at error level
func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
