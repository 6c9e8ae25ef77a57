// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/robgonnella/go-airscan/internal/cli"
	"github.com/robgonnella/go-airscan/internal/core"
	"github.com/robgonnella/go-airscan/internal/logger"
	"github.com/robgonnella/go-airscan/pkg/privileged"
)

func main() {
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	privRunner := privileged.NewExecRunner()

	runner := core.New()

	cmd, err := cli.Root(runner, privRunner)

	if err != nil {
		stop()
		log.Fatal().Err(err).Msg("failed to initialize cli")
	}

	err = cmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		log.Fatal().Err(err).Msg("command encountered an error")
	}
}
