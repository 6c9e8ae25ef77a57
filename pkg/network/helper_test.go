// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickDefault(t *testing.T) {
	interfaces := []WirelessInterface{{Name: "wlan1"}, {Name: "wlan0"}}

	t.Run("prefers the routed interface", func(st *testing.T) {
		name, err := pickDefault(interfaces, "wlan0")

		assert.NoError(st, err)
		assert.Equal(st, "wlan0", name)
	})

	t.Run("falls back to the first interface", func(st *testing.T) {
		name, err := pickDefault(interfaces, "eth0")

		assert.NoError(st, err)
		assert.Equal(st, "wlan1", name)

		name, err = pickDefault(interfaces, "")

		assert.NoError(st, err)
		assert.Equal(st, "wlan1", name)
	})

	t.Run("errors without interfaces", func(st *testing.T) {
		_, err := pickDefault(nil, "wlan0")

		assert.ErrorIs(st, err, ErrNoWirelessInterface)
	})
}
