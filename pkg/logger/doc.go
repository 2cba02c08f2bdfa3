// Package logger provides structured logging built on zerolog.
//
// It exposes a small Logger interface so packages can log without
// depending on zerolog directly, a console/file-backed implementation
// created with New, and a capturing TestLogger for assertions in tests.
package logger
