// SPDX-License-Identifier: GPL-3.0-or-later

package version

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidVersion is returned when a version is not of the form vX.Y.Z
var ErrInvalidVersion = errors.New("version must look like v<major>.<minor>.<patch>")

var semver = regexp.MustCompile(`^v\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`)

// BumpData describes one release
type BumpData struct {
	Version string
	OutFile string
}

// Bump regenerates the version file, commits it and tags the commit
func Bump(data BumpData, vg VersionGenerator, vc VersionControl) error {
	if !semver.MatchString(data.Version) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, data.Version)
	}

	if err := vg.Generate(Data{VERSION: data.Version}); err != nil {
		return err
	}

	if err := vc.Add(data.OutFile); err != nil {
		return err
	}

	message := fmt.Sprintf("Bump version %s", data.Version)

	if err := vc.Commit(message); err != nil {
		return err
	}

	return vc.Tag(data.Version)
}
