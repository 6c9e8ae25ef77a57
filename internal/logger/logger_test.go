// SPDX-License-Identifier: GPL-3.0-or-later

package logger_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/robgonnella/go-airscan/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	reset := func() {
		logger.SetGlobalLevel(zerolog.InfoLevel)
		logger.Reset()
	}

	defer reset()

	t.Run("sets global log level", func(st *testing.T) {
		defer reset()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)
		logger.SetGlobalLevel(zerolog.ErrorLevel)

		log := logger.New()

		testString := "this is a test string"

		log.Debug().Msg(testString)
		assert.NotContains(st, buf.String(), testString)

		log.Info().Msg(testString)
		assert.NotContains(st, buf.String(), testString)

		log.Warn().Msg(testString)
		assert.NotContains(st, buf.String(), testString)

		log.Error().Msg(testString)
		assert.Contains(st, buf.String(), testString)
	})

	t.Run("sets global log level from string", func(st *testing.T) {
		defer reset()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)

		err := logger.SetGlobalLevelFromString(" WARN ")

		assert.NoError(st, err)

		log := logger.New()

		log.Info().Msg("hidden info")
		log.Warn().Msg("visible warning")

		assert.NotContains(st, buf.String(), "hidden info")
		assert.Contains(st, buf.String(), "visible warning")
	})

	t.Run("rejects unknown level", func(st *testing.T) {
		defer reset()

		err := logger.SetGlobalLevelFromString("loud")

		assert.Error(st, err)
	})

	t.Run("debug level includes caller", func(st *testing.T) {
		defer reset()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)
		logger.SetGlobalLevel(zerolog.DebugLevel)

		logger.New().Debug().Msg("with caller")

		output := buf.String()
		assert.Contains(st, output, "with caller")
		assert.Contains(st, output, "logger_test.go")
	})

	t.Run("includes app name", func(st *testing.T) {
		defer reset()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)

		logger.New().Info().Msg("hello")

		assert.Contains(st, buf.String(), "\"app\":\"go-airscan\"")
	})

	t.Run("sets global log file option", func(st *testing.T) {
		defer reset()

		outFileName := filepath.Join(st.TempDir(), "logger_test_out.txt")

		writeFile, err := os.Create(outFileName)

		assert.NoError(st, err)

		defer writeFile.Close()

		logger.SetGlobalLogFile(writeFile)

		testString := "this is a test string"

		logger.New().Info().Msg(testString)

		readFile, err := os.Open(outFileName)

		assert.NoError(st, err)

		defer readFile.Close()

		output, err := io.ReadAll(readFile)

		assert.NoError(st, err)
		assert.Contains(st, string(output), testString)
	})
}
