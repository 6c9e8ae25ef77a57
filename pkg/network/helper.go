// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"context"
	"net"

	"github.com/jackpal/gateway"
	"github.com/robgonnella/go-airscan/pkg/privileged"
)

// DefaultWirelessInterface returns the wireless interface carrying the
// default route, or the first wireless interface when the default route
// goes elsewhere
func DefaultWirelessInterface(
	ctx context.Context,
	runner privileged.Runner,
) (string, error) {
	interfaces, err := ListWirelessInterfaces(ctx, runner)

	if err != nil {
		return "", err
	}

	return pickDefault(interfaces, defaultRouteInterface())
}

func pickDefault(interfaces []WirelessInterface, routed string) (string, error) {
	if len(interfaces) == 0 {
		return "", ErrNoWirelessInterface
	}

	for _, iface := range interfaces {
		if routed != "" && iface.Name == routed {
			return iface.Name, nil
		}
	}

	return interfaces[0].Name, nil
}

// name of the interface holding the address used for the default route, or
// empty if there is no default route
func defaultRouteInterface() string {
	ip, err := gateway.DiscoverInterface()

	if err != nil {
		return ""
	}

	iface := getInterfaceByIP(ip)

	if iface == nil {
		return ""
	}

	return iface.Name
}

func getInterfaceByIP(ip net.IP) *net.Interface {
	interfaces, err := net.Interfaces()

	if err != nil {
		return nil
	}

	for _, iface := range interfaces {
		addrs, err := iface.Addrs()

		if err != nil {
			continue
		}

		for _, addr := range addrs {
			_, ipnet, err := net.ParseCIDR(addr.String())

			if err != nil {
				continue
			}

			if ipnet.Contains(ip) {
				return &iface
			}
		}
	}

	return nil
}
