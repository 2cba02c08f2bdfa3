package logger

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// TestLogger is a logger implementation for testing that captures all
// log messages. Loggers derived via WithField/WithFields record into
// the same sink as their parent.
type TestLogger struct {
	sink    *messageSink
	zerolog *zerolog.Logger
	fields  map[string]interface{}
}

// LogMessage represents a captured log message
type LogMessage struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

type messageSink struct {
	mu       sync.Mutex
	messages []LogMessage
}

// NewTestLogger creates a new test logger
func NewTestLogger() *TestLogger {
	nopLogger := zerolog.Nop()
	return &TestLogger{
		sink:    &messageSink{},
		zerolog: &nopLogger,
		fields:  make(map[string]interface{}),
	}
}

func (l *TestLogger) log(level, msg string, fields map[string]interface{}) {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	l.sink.messages = append(l.sink.messages, LogMessage{
		Level:   level,
		Message: msg,
		Fields:  merged,
	})
}

// Debug logs a debug message
func (l *TestLogger) Debug(msg string) { l.log("DEBUG", msg, nil) }

// Info logs an info message
func (l *TestLogger) Info(msg string) { l.log("INFO", msg, nil) }

// Warn logs a warning message
func (l *TestLogger) Warn(msg string) { l.log("WARN", msg, nil) }

// Error logs an error message
func (l *TestLogger) Error(msg string) { l.log("ERROR", msg, nil) }

// DebugWithFields logs a debug message with fields
func (l *TestLogger) DebugWithFields(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

// InfoWithFields logs an info message with fields
func (l *TestLogger) InfoWithFields(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

// WarnWithFields logs a warning message with fields
func (l *TestLogger) WarnWithFields(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

// ErrorWithFields logs an error message with fields
func (l *TestLogger) ErrorWithFields(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

// WithField returns a logger that attaches the field to every message
func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields returns a logger that attaches the fields to every message
func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return &TestLogger{
		sink:    l.sink,
		zerolog: l.zerolog,
		fields:  merged,
	}
}

// WithError attaches an error field to every message
func (l *TestLogger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return l.WithField("error", err.Error())
}

// GetZerolog returns a no-op zerolog instance
func (l *TestLogger) GetZerolog() *zerolog.Logger {
	return l.zerolog
}

// Messages returns a copy of all captured messages
func (l *TestLogger) Messages() []LogMessage {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	out := make([]LogMessage, len(l.sink.messages))
	copy(out, l.sink.messages)
	return out
}

// HasMessage reports whether a message containing substr was logged at
// level. The level comparison is case-insensitive.
func (l *TestLogger) HasMessage(level, substr string) bool {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	for _, m := range l.sink.messages {
		if strings.EqualFold(m.Level, level) && strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}

// Reset clears all captured messages
func (l *TestLogger) Reset() {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.messages = l.sink.messages[:0]
}
