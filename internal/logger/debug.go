// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"io"

	"github.com/rs/zerolog"
)

var debugLogger DebugLogger

func init() {
	// library packages log through this disabled logger; builds with the
	// "debug" tag turn it on (see enable-debug.go)
	zl := zerolog.New(io.Discard).Level(zerolog.Disabled)

	debugLogger = DebugLogger{
		zl: &zl,
	}
}

// DebugLogger is the logger used by pkg/... packages. It is silent unless
// the binary is built with the "debug" tag
type DebugLogger struct {
	zl *zerolog.Logger
}

// NewDebugLogger returns the shared DebugLogger
func NewDebugLogger() DebugLogger {
	return debugLogger
}

// Info wrapper around zerolog Info
func (l DebugLogger) Info() *zerolog.Event {
	return l.zl.Info()
}

// Debug wrapper around zerolog Debug
func (l DebugLogger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

// Warn wrapper around zerolog Warn
func (l DebugLogger) Warn() *zerolog.Event {
	return l.zl.Warn()
}

// Error wrapper around zerolog Error
func (l DebugLogger) Error() *zerolog.Event {
	return l.zl.Error()
}
