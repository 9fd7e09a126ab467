// Package simplestack is a stack navigation demo: three screens (Article,
// NewsFeed and Albums) on a navigation stack with typed params, a custom
// header, and accessibility focus moved to that header when a transition
// to its screen settles.
//
// The navigation state machine lives in package router; header and focus
// provide the chrome and the focus side effect; screens defines the demo's
// screens. This package wires them into a Navigator and carries the
// ambient configuration and logging.
package simplestack

import (
	"context"
	"log/slog"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/constants"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/internal"
)

// Options configures logging for the process.
type Options struct {
	LogPath       string // Full path for log file including filename (creates parent directories)
	LogLevel      string // Application log level name ("debug", "info", ...)
	ConsoleOutput bool   // Also write log records to stdout
}

// Init sets up logging. Call it once before GetLogger.
// Internal logging is raised to debug in development mode.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	internal.SetConsoleOutput(options.ConsoleOutput)

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
}

// Close releases the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// GetInternalLogger returns the logger used for framework diagnostics.
func GetInternalLogger() *slog.Logger {
	return internal.GetInternalLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// ListenInput forwards button presses from the evdev device at path to fn
// until ctx is done.
func ListenInput(ctx context.Context, path string, fn func(constants.VirtualButton)) error {
	return internal.ListenDevice(ctx, path, fn)
}
