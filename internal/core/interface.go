// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"context"

	"github.com/robgonnella/go-airscan/pkg/network"
	"github.com/robgonnella/go-airscan/pkg/privileged"
	"github.com/robgonnella/go-airscan/pkg/scanner"
)

//go:generate mockgen -destination=../mock/core/core.go -package=mock_core . Runner

// Runner drives one end to end scan on behalf of the cli
type Runner interface {
	Initialize(
		coreScanner scanner.Scanner,
		modeController network.ModeController,
		iface string,
		secret privileged.Secret,
		toggleMonitor bool,
		noProgress bool,
		printJson bool,
		outFile string,
	)
	Run(ctx context.Context) error
}
