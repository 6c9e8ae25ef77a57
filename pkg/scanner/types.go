// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/robgonnella/go-airscan/pkg/oui"
	"github.com/robgonnella/go-airscan/pkg/privileged"
)

//go:generate mockgen -destination=../../mock/scanner/scanner.go -package=mock_scanner . Scanner,CaptureManager

// HiddenESSID is substituted for network names that are not broadcast
const HiddenESSID = "<hidden>"

// airodump-ng prints "<length: N>" for cloaked names it knows the size of
const hiddenLengthPrefix = "<length:"

// ErrScanInProgress is returned when Scan is called on a scanner that is
// already scanning
var ErrScanInProgress = errors.New("scan already in progress")

// ErrEmptyInterface is returned when a capture is requested without an
// interface name
var ErrEmptyInterface = errors.New("interface name must not be empty")

// Scanner interface for discovering access points over a bounded window
type Scanner interface {
	Scan(ctx context.Context) ([]AccessPoint, error)
	SetDuration(d time.Duration)
	SetPollInterval(d time.Duration)
	SetPollNotifications(cb func(p *Poll))
	SetWarningNotifications(cb func(err error))
	IncludeVendorInfo(repo oui.VendorRepo)
	TotalPolls() int
}

// CaptureManager owns the lifetime of the external capture process and its
// on-disk artifacts
type CaptureManager interface {
	// Start launches a capture on iface. The returned session is non-nil
	// even when err is not, so Stop can always be called.
	Start(iface string, secret privileged.Secret) (*CaptureSession, error)
	// CurrentRecords parses what the capture process has written so far.
	// No output yet is not an error.
	CurrentRecords(session *CaptureSession) ([]AccessPoint, error)
	// Stop terminates the capture process and deletes every artifact of the
	// session. Returned errors are informational, teardown always completes.
	Stop(session *CaptureSession) error
}

// AccessPoint represents a single discovered wireless access point
type AccessPoint struct {
	BSSID   string `json:"bssid"`
	ESSID   string `json:"essid"`
	Channel string `json:"channel"`
	Vendor  string `json:"vendor,omitempty"`
}

// Hidden reports whether the access point's name is still unknown
func (ap AccessPoint) Hidden() bool {
	return IsHiddenESSID(ap.ESSID)
}

// IsHiddenESSID reports whether essid represents a name that is not visible
func IsHiddenESSID(essid string) bool {
	return essid == "" ||
		essid == HiddenESSID ||
		strings.HasPrefix(essid, hiddenLengthPrefix)
}

// NormalizeESSID maps every "name not visible" representation to
// HiddenESSID and returns any other name unchanged
func NormalizeESSID(essid string) string {
	if IsHiddenESSID(essid) {
		return HiddenESSID
	}

	return essid
}

// NormalizeBSSID returns the canonical upper case form used as table key
func NormalizeBSSID(bssid string) string {
	return strings.ToUpper(strings.TrimSpace(bssid))
}

// Poll describes the outcome of one read of the capture output
type Poll struct {
	Number   int
	Total    int
	Observed int
	Records  int
	Hidden   int
	Added    int
	Revealed int
	Elapsed  time.Duration
}
