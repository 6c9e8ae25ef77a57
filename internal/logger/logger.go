// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger our internal "singleton" wrapper around zerolog allowing us
// to redirect or silence every logger at once
type Logger struct {
	zl *zerolog.Logger
}

// unexported "singleton" logger
var logger Logger

func init() {
	Reset()
}

// New returns the internal "singleton" logger
func New() Logger {
	return logger
}

// SetGlobalLevel set level for all loggers
func SetGlobalLevel(level zerolog.Level) {
	if level <= zerolog.DebugLevel {
		SetWithCaller()
	}

	zerolog.SetGlobalLevel(level)
}

// SetGlobalLevelFromString parses a level name such as "debug" or "warn"
// and applies it to all loggers
func SetGlobalLevelFromString(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))

	if err != nil {
		return err
	}

	SetGlobalLevel(lvl)

	return nil
}

// SetWithCaller enables showing caller in log context
func SetWithCaller() {
	newZl := logger.zl.With().Caller().Logger()
	*logger.zl = newZl
}

// SetGlobalLogFile set all loggers to log to file
func SetGlobalLogFile(f *os.File) {
	SetOutput(f)
}

// SetOutput redirects all loggers to w (tests use a bytes.Buffer)
func SetOutput(w io.Writer) {
	newZl := logger.zl.Output(w)
	*logger.zl = newZl
}

// SetConsoleOutput switches all loggers back to human readable output on w
func SetConsoleOutput(w io.Writer) {
	SetOutput(zerolog.ConsoleWriter{Out: w})
}

// Reset resets logger to default values
func Reset() {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("app", "go-airscan").
		Logger()

	logger = Logger{
		zl: &zl,
	}
}

// Info wrapper around zerolog Info
func (l Logger) Info() *zerolog.Event {
	return l.zl.Info()
}

// Debug wrapper around zerolog Debug
func (l Logger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

// Warn wrapper around zerolog Warn
func (l Logger) Warn() *zerolog.Event {
	return l.zl.Warn()
}

// Error wrapper around zerolog Error
func (l Logger) Error() *zerolog.Event {
	return l.zl.Error()
}

// Fatal wrapper around zerolog Fatal
func (l Logger) Fatal() *zerolog.Event {
	return l.zl.Fatal()
}
