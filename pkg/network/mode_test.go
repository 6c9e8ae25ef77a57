// SPDX-License-Identifier: GPL-3.0-or-later

package network_test

import (
	"context"
	"testing"

	mock_privileged "github.com/robgonnella/go-airscan/mock/privileged"
	"github.com/robgonnella/go-airscan/pkg/network"
	"github.com/robgonnella/go-airscan/pkg/privileged"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestIWModeController(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	secret := privileged.Secret("hunter2")
	ctx := context.Background()

	down := []string{"ip", "link", "set", "wlan0", "down"}
	up := []string{"ip", "link", "set", "wlan0", "up"}

	t.Run("runs all three steps in order", func(st *testing.T) {
		runner := mock_privileged.NewMockRunner(ctrl)

		progress := []string{}

		controller := network.NewIWModeController(
			runner,
			network.WithProgressNotifications(func(p *network.Progress) {
				progress = append(progress, p.String())
			}),
		)

		gomock.InOrder(
			runner.EXPECT().Run(ctx, down, secret).Return("", nil),
			runner.EXPECT().Run(
				ctx,
				[]string{"iw", "dev", "wlan0", "set", "type", "monitor"},
				secret,
			).Return("", nil),
			runner.EXPECT().Run(ctx, up, secret).Return("", nil),
		)

		mode, err := controller.Transition(ctx, "wlan0", network.ModeMonitor, secret)

		assert.NoError(st, err)
		assert.Equal(st, network.ModeMonitor, mode)
		assert.Equal(st, []string{
			"bringing wlan0 down",
			"done bringing wlan0 down",
			"setting wlan0 to monitor mode",
			"done setting wlan0 to monitor mode",
			"bringing wlan0 up",
			"done bringing wlan0 up",
		}, progress)
	})

	t.Run("failing first step never runs later steps", func(st *testing.T) {
		runner := mock_privileged.NewMockRunner(ctrl)

		progress := []*network.Progress{}

		controller := network.NewIWModeController(
			runner,
			network.WithProgressNotifications(func(p *network.Progress) {
				progress = append(progress, p)
			}),
		)

		exitErr := &privileged.ExitError{
			Argv:       down,
			Code:       2,
			Diagnostic: "RTNETLINK answers: Operation not permitted",
		}

		runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(exitErr.Diagnostic, exitErr).
			Times(1)

		mode, err := controller.Transition(ctx, "wlan0", network.ModeManaged, secret)

		assert.Equal(st, network.ModeUnknown, mode)

		var stepErr *network.StepError

		assert.ErrorAs(st, err, &stepErr)
		assert.Equal(st, network.StepDown, stepErr.Step)
		assert.Equal(st, exitErr.Diagnostic, stepErr.Diagnostic)
		assert.ErrorIs(st, err, exitErr)

		assert.Len(st, progress, 2)
		assert.Equal(st, network.StepFailed, progress[1].Status)
		assert.Equal(
			st,
			"failed bringing wlan0 down: RTNETLINK answers: Operation not permitted",
			progress[1].String(),
		)
	})

	t.Run("aborts after failing set-mode step", func(st *testing.T) {
		runner := mock_privileged.NewMockRunner(ctrl)

		controller := network.NewIWModeController(runner)

		notFound := &privileged.ProgramNotFoundError{Program: "iw"}

		gomock.InOrder(
			runner.EXPECT().Run(ctx, down, secret).Return("", nil),
			runner.EXPECT().Run(ctx, gomock.Any(), secret).Return(notFound.Error(), notFound),
		)

		mode, err := controller.Transition(ctx, "wlan0", network.ModeManaged, secret)

		assert.Equal(st, network.ModeUnknown, mode)
		assert.ErrorIs(st, err, privileged.ErrProgramNotFound)

		var stepErr *network.StepError

		assert.ErrorAs(st, err, &stepErr)
		assert.Equal(st, network.StepSetMode, stepErr.Step)
	})

	t.Run("rejects invalid target without running anything", func(st *testing.T) {
		runner := mock_privileged.NewMockRunner(ctrl)

		controller := network.NewIWModeController(runner)

		mode, err := controller.Transition(ctx, "wlan0", network.ModeUnknown, secret)

		assert.Equal(st, network.ModeUnknown, mode)
		assert.ErrorIs(st, err, network.ErrInvalidMode)
	})

	t.Run("rejects empty interface", func(st *testing.T) {
		runner := mock_privileged.NewMockRunner(ctrl)

		controller := network.NewIWModeController(runner)

		_, err := controller.Transition(ctx, "", network.ModeMonitor, secret)

		assert.ErrorIs(st, err, network.ErrEmptyInterface)
	})
}

func TestParseMode(t *testing.T) {
	t.Run("parses valid modes", func(st *testing.T) {
		mode, err := network.ParseMode(" Monitor ")

		assert.NoError(st, err)
		assert.Equal(st, network.ModeMonitor, mode)

		mode, err = network.ParseMode("managed")

		assert.NoError(st, err)
		assert.Equal(st, network.ModeManaged, mode)
	})

	t.Run("rejects anything else", func(st *testing.T) {
		mode, err := network.ParseMode("ad-hoc")

		assert.ErrorIs(st, err, network.ErrInvalidMode)
		assert.Equal(st, network.ModeUnknown, mode)
	})
}
