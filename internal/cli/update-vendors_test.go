// SPDX-License-Identifier: GPL-3.0-or-later

package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/robgonnella/go-airscan/internal/cli"
	mock_core "github.com/robgonnella/go-airscan/internal/mock/core"
	mock_oui "github.com/robgonnella/go-airscan/mock/oui"
	mock_privileged "github.com/robgonnella/go-airscan/mock/privileged"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUpdatesVendorsCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("updates static vendor file", func(st *testing.T) {
		mockVendor := mock_oui.NewMockVendorRepo(ctrl)

		mockVendor.EXPECT().UpdateVendors().Return(nil)

		cmd, err := cli.Root(
			mock_core.NewMockRunner(ctrl),
			mock_privileged.NewMockRunner(ctrl),
			vendorFactory(mockVendor),
		)

		assert.NoError(st, err)

		cmd.SetArgs([]string{"update-vendors"})

		err = cmd.Execute()

		assert.NoError(st, err)
	})

	t.Run("returns update errors", func(st *testing.T) {
		mockVendor := mock_oui.NewMockVendorRepo(ctrl)

		mockErr := errors.New("mock error")

		mockVendor.EXPECT().UpdateVendors().Return(mockErr)

		cmd, err := cli.Root(
			mock_core.NewMockRunner(ctrl),
			mock_privileged.NewMockRunner(ctrl),
			vendorFactory(mockVendor),
		)

		assert.NoError(st, err)

		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"update-vendors"})

		err = cmd.Execute()

		assert.ErrorIs(st, err, mockErr)
	})
}
