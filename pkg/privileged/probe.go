// SPDX-License-Identifier: GPL-3.0-or-later

package privileged

import "github.com/robgonnella/go-airscan/internal/util"

// RequiredPrograms lists every external program go-airscan drives
var RequiredPrograms = []string{"sudo", "airodump-ng", "iw", "ip"}

// MissingPrograms returns the programs that lookPath cannot resolve, in the
// order given and without duplicates
func MissingPrograms(lookPath LookPathFunc, programs ...string) []string {
	missing := []string{}
	checked := []string{}

	for _, program := range programs {
		if util.SliceIncludes(checked, program) {
			continue
		}

		checked = append(checked, program)

		if _, err := lookPath(program); err != nil {
			missing = append(missing, program)
		}
	}

	return missing
}

// CheckDependencies returns a *MissingProgramsError naming every program
// that cannot be resolved, or nil if all are available
func CheckDependencies(lookPath LookPathFunc, programs ...string) error {
	missing := MissingPrograms(lookPath, programs...)

	if len(missing) == 0 {
		return nil
	}

	return &MissingProgramsError{Programs: missing}
}
