// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"context"
	"errors"
	"strings"

	"github.com/robgonnella/go-airscan/pkg/privileged"
)

// ErrNoWirelessInterface is returned when the host has no wireless interface
var ErrNoWirelessInterface = errors.New("no wireless interface found")

// WirelessInterface describes an interface reported by "iw dev"
type WirelessInterface struct {
	Name    string `json:"name"`
	Phy     string `json:"phy"`
	Type    string `json:"type"`
	MAC     string `json:"mac"`
	SSID    string `json:"ssid,omitempty"`
	Channel string `json:"channel,omitempty"`
}

// Mode maps the interface type onto a Mode
func (w WirelessInterface) Mode() Mode {
	switch Mode(w.Type) {
	case ModeManaged, ModeMonitor:
		return Mode(w.Type)
	default:
		return ModeUnknown
	}
}

// ListWirelessInterfaces runs "iw dev" and returns every interface it
// reports in output order
func ListWirelessInterfaces(
	ctx context.Context,
	runner privileged.Runner,
) ([]WirelessInterface, error) {
	interfaces := []WirelessInterface{}

	var current *WirelessInterface
	phy := ""

	flush := func() {
		if current != nil {
			interfaces = append(interfaces, *current)
			current = nil
		}
	}

	for line, err := range runner.Lines(ctx, []string{"iw", "dev"}) {
		if err != nil {
			return nil, err
		}

		key, value := splitField(line)

		switch {
		case strings.HasPrefix(key, "phy#"):
			flush()
			phy = key
		case key == "Interface":
			flush()
			current = &WirelessInterface{Name: value, Phy: phy}
		case current == nil:
			continue
		case key == "addr":
			current.MAC = value
		case key == "type":
			current.Type = value
		case key == "ssid":
			current.SSID = value
		case key == "channel":
			current.Channel, _, _ = strings.Cut(value, " ")
		}
	}

	flush()

	return interfaces, nil
}

func splitField(line string) (string, string) {
	key, value, _ := strings.Cut(strings.TrimSpace(line), " ")
	return key, strings.TrimSpace(value)
}
