package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{
			name:    "info level",
			opts:    Options{Level: "info"},
			wantErr: false,
		},
		{
			name:    "debug level",
			opts:    Options{Level: "debug"},
			wantErr: false,
		},
		{
			name:    "empty level defaults to info",
			opts:    Options{},
			wantErr: false,
		},
		{
			name:    "invalid log level",
			opts:    Options{Level: "invalid"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && logger == nil {
				t.Error("New() returned nil logger")
			}
		})
	}
}

func TestNewWithFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "test.log")

	logger, err := New(Options{Level: "info", File: logFile})
	if err != nil {
		t.Fatalf("New() with file output failed: %v", err)
	}

	logger.Info("written to file")

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "written to file") {
		t.Error("Message not found in log file")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
		wantErr  bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"invalid", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := parseLogLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseLogLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if level != tt.expected {
				t.Errorf("parseLogLevel() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func newBufferLogger(buf *bytes.Buffer) *zerologLogger {
	zlog := zerolog.New(buf).With().Timestamp().Logger()
	return &zerologLogger{
		logger: &zlog,
		fields: make(map[string]interface{}),
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	tests := []struct {
		name string
		log  func(string)
	}{
		{"Debug", logger.Debug},
		{"Info", logger.Info},
		{"Warn", logger.Warn},
		{"Error", logger.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log(tt.name + " message")
			if !strings.Contains(buf.String(), tt.name+" message") {
				t.Errorf("%s message not found in output", tt.name)
			}
		})
	}
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.WithField("key", "value").Info("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Error("Field not found in output")
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.WithFields(map[string]interface{}{
		"string": "value",
		"int":    42,
		"bool":   true,
	}).Info("test message")

	output := buf.String()
	if !strings.Contains(output, `"string":"value"`) {
		t.Error("String field not found in output")
	}
	if !strings.Contains(output, `"int":42`) {
		t.Error("Int field not found in output")
	}
	if !strings.Contains(output, `"bool":true`) {
		t.Error("Bool field not found in output")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	// Nil error leaves the logger untouched
	if logger.WithError(nil) != Logger(logger) {
		t.Error("WithError(nil) should return the same logger")
	}

	logger.WithError(&testError{msg: "boom"}).Error("request failed")

	output := buf.String()
	if !strings.Contains(output, "request failed") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, "boom") {
		t.Error("Error message not found in output")
	}
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.InfoWithFields("profile fetched", map[string]interface{}{
		"username": "freyskeyd",
		"count":    12,
	})

	output := buf.String()
	if !strings.Contains(output, "profile fetched") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, `"username":"freyskeyd"`) {
		t.Error("Username field not found in output")
	}
	if !strings.Contains(output, `"count":12`) {
		t.Error("Count field not found in output")
	}
}

func TestFieldChaining(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.
		WithField("field1", "value1").
		WithField("field2", "value2").
		Info("chained fields")

	output := buf.String()
	if !strings.Contains(output, `"field1":"value1"`) {
		t.Error("Field1 not found in output")
	}
	if !strings.Contains(output, `"field2":"value2"`) {
		t.Error("Field2 not found in output")
	}
}

func TestTestLogger(t *testing.T) {
	logger := NewTestLogger()

	logger.Info("plain message")
	logger.WithField("key", "value").Warn("field message")

	if !logger.HasMessage("info", "plain message") {
		t.Error("Expected captured info message")
	}
	if !logger.HasMessage("warn", "field message") {
		t.Error("Expected captured warn message")
	}
	if logger.HasMessage("error", "plain message") {
		t.Error("Did not expect an error-level match")
	}

	messages := logger.Messages()
	if len(messages) != 2 {
		t.Fatalf("Expected 2 captured messages, got %d", len(messages))
	}
	if messages[1].Fields["key"] != "value" {
		t.Errorf("Expected field to be captured, got %v", messages[1].Fields)
	}

	logger.Reset()
	if len(logger.Messages()) != 0 {
		t.Error("Expected no messages after Reset")
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
