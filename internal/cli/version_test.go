// SPDX-License-Identifier: GPL-3.0-or-later

package cli_test

import (
	"bytes"
	"testing"

	"github.com/robgonnella/go-airscan/internal/cli"
	"github.com/robgonnella/go-airscan/internal/info"
	"github.com/robgonnella/go-airscan/internal/logger"
	mock_core "github.com/robgonnella/go-airscan/internal/mock/core"
	mock_privileged "github.com/robgonnella/go-airscan/mock/privileged"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestVersionCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	b := []byte{}
	buf := bytes.NewBuffer(b)

	logger.SetOutput(buf)
	defer logger.Reset()

	t.Run("prints versions to console", func(st *testing.T) {
		mockRunner := mock_core.NewMockRunner(ctrl)
		mockPriv := mock_privileged.NewMockRunner(ctrl)

		cmd, err := cli.Root(mockRunner, mockPriv)

		assert.NoError(st, err)

		cmd.SetArgs([]string{"version"})
		err = cmd.Execute()

		assert.NoError(st, err)

		output := buf.String()

		assert.Contains(st, output, info.VERSION)
	})

	t.Run("prints bare version with --short", func(st *testing.T) {
		out := &bytes.Buffer{}

		cmd, err := cli.Root(mock_core.NewMockRunner(ctrl), mock_privileged.NewMockRunner(ctrl))

		assert.NoError(st, err)

		cmd.SetOut(out)
		cmd.SetArgs([]string{"version", "--short"})

		err = cmd.Execute()

		assert.NoError(st, err)
		assert.Equal(st, info.VERSION+"\n", out.String())
	})
}
