// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// column layout of the access point section written by airodump-ng
const (
	apSectionHeader      = "BSSID"
	stationSectionHeader = "Station MAC"
	bssidField           = 0
	channelField         = 3
	essidField           = 13
	minAccessPointFields = 15
)

// ParseAccessPoints extracts access point records from airodump-ng csv
// output. The file is being appended to while we read it, so rows that are
// torn or too short are skipped rather than treated as errors.
func ParseAccessPoints(r io.Reader) []AccessPoint {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	accessPoints := []AccessPoint{}
	inSection := false

	for {
		row, err := reader.Read()

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var parseErr *csv.ParseError

			if errors.As(err, &parseErr) {
				continue
			}

			break
		}

		if len(row) == 0 {
			continue
		}

		first := strings.TrimSpace(row[0])

		if first == apSectionHeader {
			inSection = true
			continue
		}

		if first == stationSectionHeader {
			break
		}

		if !inSection || len(row) < minAccessPointFields {
			continue
		}

		bssid := NormalizeBSSID(row[bssidField])

		if bssid == "" {
			continue
		}

		accessPoints = append(accessPoints, AccessPoint{
			BSSID:   bssid,
			Channel: strings.TrimSpace(row[channelField]),
			ESSID:   NormalizeESSID(strings.TrimSpace(row[essidField])),
		})
	}

	return accessPoints
}
