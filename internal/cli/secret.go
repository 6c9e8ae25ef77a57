// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robgonnella/go-airscan/pkg/privileged"
)

// SecretEnv names the environment variable holding the sudo password
const SecretEnv = "AIRSCAN_SUDO_PASSWORD"

var errNoSecret = fmt.Errorf(
	"sudo password required: set %s, pass --password-stdin, or run from a terminal",
	SecretEnv,
)

// resolveSecret finds the sudo password in the environment, then stdin when
// passwordStdin is set, then an interactive prompt
func resolveSecret(cfg *config, passwordStdin bool, prompt io.Writer) (privileged.Secret, error) {
	if value, ok := cfg.lookupEnv(SecretEnv); ok && value != "" {
		return privileged.Secret(value), nil
	}

	if passwordStdin {
		line, err := bufio.NewReader(cfg.stdin).ReadString('\n')

		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}

		secret := strings.TrimRight(line, "\r\n")

		if secret == "" {
			return "", errNoSecret
		}

		return privileged.Secret(secret), nil
	}

	if !cfg.secretNeeded() {
		return "", nil
	}

	if !cfg.isTerminal() {
		return "", errNoSecret
	}

	fmt.Fprint(prompt, "[sudo] password: ")

	data, err := cfg.readPassword()

	fmt.Fprintln(prompt)

	if err != nil {
		return "", err
	}

	return privileged.Secret(data), nil
}
