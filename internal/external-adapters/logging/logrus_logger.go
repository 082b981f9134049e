// Package logging provides the logrus-backed Logger implementation.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"titlectl/internal/domain/interfaces"
)

// LogrusLogger adapts a logrus.Logger to the domain Logger interface.
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a logger writing human-readable output to stderr.
// debug enables debug-level records, which are suppressed otherwise.
func NewLogrusLogger(debug bool) *LogrusLogger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
		TimestampFormat:        "2006-01-02 15:04:05.000",
	})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return &LogrusLogger{log: log}
}

// SetOutput redirects log output, primarily for tests.
func (l *LogrusLogger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// Debug logs a debug-level record with structured fields
func (l *LogrusLogger) Debug(msg string, fields ...interfaces.Field) {
	l.log.WithFields(toLogrusFields(fields)).Debug(msg)
}

// Info logs an informational record with structured fields
func (l *LogrusLogger) Info(msg string, fields ...interfaces.Field) {
	l.log.WithFields(toLogrusFields(fields)).Info(msg)
}

// Warn logs a warning record with structured fields
func (l *LogrusLogger) Warn(msg string, fields ...interfaces.Field) {
	l.log.WithFields(toLogrusFields(fields)).Warn(msg)
}

// Error logs an error record with structured fields
func (l *LogrusLogger) Error(msg string, fields ...interfaces.Field) {
	l.log.WithFields(toLogrusFields(fields)).Error(msg)
}

func toLogrusFields(fields []interfaces.Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
