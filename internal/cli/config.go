// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"io"
	"os"
	"os/exec"

	"github.com/robgonnella/go-airscan/pkg/oui"
	"github.com/robgonnella/go-airscan/pkg/privileged"
	"golang.org/x/term"
)

// VendorRepoFactory opens the vendor database on first use so commands
// that never need it do not trigger a download
type VendorRepoFactory = func() (oui.VendorRepo, error)

type config struct {
	lookPath      privileged.LookPathFunc
	lookupEnv     func(key string) (string, bool)
	stdin         io.Reader
	isTerminal    func() bool
	readPassword  func() ([]byte, error)
	secretNeeded  func() bool
	vendorFactory VendorRepoFactory
}

// Option configures the command tree
type Option = func(c *config)

// WithLookPath overrides how the dependency probe resolves programs
func WithLookPath(lookPath privileged.LookPathFunc) Option {
	return func(c *config) {
		c.lookPath = lookPath
	}
}

// WithLookupEnv overrides environment lookups
func WithLookupEnv(lookupEnv func(key string) (string, bool)) Option {
	return func(c *config) {
		c.lookupEnv = lookupEnv
	}
}

// WithStdin overrides the reader used by --password-stdin
func WithStdin(r io.Reader) Option {
	return func(c *config) {
		c.stdin = r
	}
}

// WithPasswordPrompt overrides the interactive password prompt
func WithPasswordPrompt(isTerminal func() bool, readPassword func() ([]byte, error)) Option {
	return func(c *config) {
		c.isTerminal = isTerminal
		c.readPassword = readPassword
	}
}

// WithSecretNeeded overrides the check deciding whether commands need the
// sudo password at all
func WithSecretNeeded(needed func() bool) Option {
	return func(c *config) {
		c.secretNeeded = needed
	}
}

// WithVendorRepoFactory overrides how the vendor database is opened
func WithVendorRepoFactory(factory VendorRepoFactory) Option {
	return func(c *config) {
		c.vendorFactory = factory
	}
}

func defaultConfig() *config {
	stdinFd := int(os.Stdin.Fd())

	return &config{
		lookPath:  exec.LookPath,
		lookupEnv: os.LookupEnv,
		stdin:     os.Stdin,
		isTerminal: func() bool {
			return term.IsTerminal(stdinFd)
		},
		readPassword: func() ([]byte, error) {
			return term.ReadPassword(stdinFd)
		},
		secretNeeded: func() bool {
			return os.Geteuid() != 0
		},
		vendorFactory: func() (oui.VendorRepo, error) {
			return oui.GetDefaultVendorRepo()
		},
	}
}
