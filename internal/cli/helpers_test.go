// SPDX-License-Identifier: GPL-3.0-or-later

package cli_test

import (
	"errors"
	"iter"
	"strings"

	"github.com/robgonnella/go-airscan/internal/cli"
	"github.com/robgonnella/go-airscan/pkg/oui"
)

const iwDevOutput = `phy#0
	Interface wlan0
		ifindex 3
		addr aa:bb:cc:dd:ee:ff
		type managed`

func lookPathWithout(missing ...string) func(string) (string, error) {
	return func(file string) (string, error) {
		for _, m := range missing {
			if m == file {
				return "", errors.New("not found")
			}
		}

		return "/usr/bin/" + file, nil
	}
}

func envWith(value string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if key == cli.SecretEnv && value != "" {
			return value, true
		}

		return "", false
	}
}

func linesOf(output string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, line := range strings.Split(output, "\n") {
			if !yield(line, nil) {
				return
			}
		}
	}
}

func noTerminal() cli.Option {
	return cli.WithPasswordPrompt(
		func() bool { return false },
		func() ([]byte, error) { return nil, errors.New("no terminal") },
	)
}

func vendorFactory(repo oui.VendorRepo) cli.Option {
	return cli.WithVendorRepoFactory(func() (oui.VendorRepo, error) {
		return repo, nil
	})
}
