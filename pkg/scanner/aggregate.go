// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

// MergeStats summarizes the effect of a single Table.Merge call
type MergeStats struct {
	Added    int
	Revealed int
}

// Table is the running, insertion ordered set of access points observed
// during one scan, keyed by BSSID.
//
// A name can only move from hidden to revealed. Channel and vendor keep the
// value from the first sighting. This assumes a BSSID stays stable for the
// lifetime of the scan, which the capture tool does not guarantee.
type Table struct {
	order   []string
	records map[string]*AccessPoint
}

// NewTable returns an empty Table
func NewTable() *Table {
	return &Table{
		order:   []string{},
		records: map[string]*AccessPoint{},
	}
}

// Merge folds a batch of observations into the table. Merging the same
// batch twice has no further effect.
func (t *Table) Merge(observed ...AccessPoint) MergeStats {
	stats := MergeStats{}

	for _, ap := range observed {
		key := NormalizeBSSID(ap.BSSID)

		if key == "" {
			continue
		}

		ap.BSSID = key
		ap.ESSID = NormalizeESSID(ap.ESSID)

		existing, ok := t.records[key]

		if !ok {
			record := ap
			t.records[key] = &record
			t.order = append(t.order, key)
			stats.Added++
			continue
		}

		if existing.Hidden() && !ap.Hidden() {
			existing.ESSID = ap.ESSID
			stats.Revealed++
		}
	}

	return stats
}

// Get returns the record for bssid
func (t *Table) Get(bssid string) (AccessPoint, bool) {
	record, ok := t.records[NormalizeBSSID(bssid)]

	if !ok {
		return AccessPoint{}, false
	}

	return *record, true
}

// Len returns the number of access points in the table
func (t *Table) Len() int {
	return len(t.order)
}

// HiddenCount returns how many access points still have no visible name
func (t *Table) HiddenCount() int {
	count := 0

	for _, record := range t.records {
		if record.Hidden() {
			count++
		}
	}

	return count
}

// Records returns a copy of the table in first seen order
func (t *Table) Records() []AccessPoint {
	records := make([]AccessPoint, 0, len(t.order))

	for _, key := range t.order {
		records = append(records, *t.records[key])
	}

	return records
}
