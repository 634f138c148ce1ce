package logger

import (
	"sync"

	"github.com/philipp01105/safelog/core"
	"github.com/philipp01105/safelog/formatter"
	"github.com/philipp01105/safelog/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with an async console handler
	h := handler.NewAsync(handler.NewConsole(handler.ConsoleConfig{
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	}), handler.AsyncConfig{})

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(args ...any) {
	Default().Debug(args...)
}

// Info logs an info message using the default logger
func Info(args ...any) {
	Default().Info(args...)
}

// Warn logs a warning message using the default logger
func Warn(args ...any) {
	Default().Warn(args...)
}

// Error logs an error message using the default logger
func Error(args ...any) {
	Default().Error(args...)
}

// Fatal logs a fatal message using the default logger and exits the program
func Fatal(args ...any) {
	Default().Fatal(args...)
}

// Panic logs a panic message using the default logger and panics
func Panic(args ...any) {
	Default().Panic(args...)
}

// Debugf logs a templated debug message using the default logger
func Debugf(tmpl string, args ...any) {
	Default().Debugf(tmpl, args...)
}

// Infof logs a templated info message using the default logger
func Infof(tmpl string, args ...any) {
	Default().Infof(tmpl, args...)
}

// Warnf logs a templated warning message using the default logger
func Warnf(tmpl string, args ...any) {
	Default().Warnf(tmpl, args...)
}

// Errorf logs a templated error message using the default logger
func Errorf(tmpl string, args ...any) {
	Default().Errorf(tmpl, args...)
}

// Fatalf logs a templated fatal message using the default logger and exits
func Fatalf(tmpl string, args ...any) {
	Default().Fatalf(tmpl, args...)
}

// Panicf logs a templated panic message using the default logger and panics
func Panicf(tmpl string, args ...any) {
	Default().Panicf(tmpl, args...)
}
