// SPDX-License-Identifier: GPL-3.0-or-later

package version

import (
	"fmt"
	"os/exec"
	"strings"
)

// Git implementation of the VersionControl interface using git
type Git struct{}

// NewGit returns a new instance of Git
func NewGit() *Git {
	return &Git{}
}

// Add implements the Add method using git
func (g *Git) Add(filePath string) error {
	return git("add", filePath)
}

// Commit implements the Commit method using git
func (g *Git) Commit(message string) error {
	return git("commit", "-m", message)
}

// Tag implements the tag method using git
func (g *Git) Tag(version string) error {
	return git("tag", "-m", version, version)
}

func git(args ...string) error {
	out, err := exec.Command("git", args...).CombinedOutput()

	if err != nil {
		return fmt.Errorf(
			"git %s: %w: %s",
			args[0],
			err,
			strings.TrimSpace(string(out)),
		)
	}

	return nil
}
