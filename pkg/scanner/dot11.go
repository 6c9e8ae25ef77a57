// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// ParseBeaconCapture extracts access points from the beacons and probe
// responses in a pcap stream written by the capture tool. Probe responses
// carry the real name of cloaked networks, which lets a hidden entry be
// resolved as soon as a client associates.
//
// A truncated trailing packet ends the read without error since the file is
// still being written.
func ParseBeaconCapture(r io.Reader) ([]AccessPoint, error) {
	reader, err := pcapgo.NewReader(r)

	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return []AccessPoint{}, nil
		}

		return nil, err
	}

	accessPoints := []AccessPoint{}

	for {
		data, _, err := reader.ReadPacketData()

		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}

			return accessPoints, err
		}

		packet := gopacket.NewPacket(data, reader.LinkType(), gopacket.NoCopy)

		if ap, ok := accessPointFromPacket(packet); ok {
			accessPoints = append(accessPoints, ap)
		}
	}

	return accessPoints, nil
}

// timestamp, beacon interval and capability info precede the elements
const mgmtFixedFieldsLen = 12

func accessPointFromPacket(packet gopacket.Packet) (AccessPoint, bool) {
	dot11Layer := packet.Layer(layers.LayerTypeDot11)

	if dot11Layer == nil {
		return AccessPoint{}, false
	}

	dot11, ok := dot11Layer.(*layers.Dot11)

	if !ok {
		return AccessPoint{}, false
	}

	if dot11.Type != layers.Dot11TypeMgmtBeacon &&
		dot11.Type != layers.Dot11TypeMgmtProbeResp {
		return AccessPoint{}, false
	}

	ap := AccessPoint{
		BSSID: NormalizeBSSID(dot11.Address3.String()),
		ESSID: HiddenESSID,
	}

	if len(dot11.Payload) < mgmtFixedFieldsLen {
		return ap, ap.BSSID != ""
	}

	// only the first element of each kind describes the network
	seenSSID := false

	walkElements(dot11.Payload[mgmtFixedFieldsLen:], func(id layers.Dot11InformationElementID, info []byte) {
		switch id {
		case layers.Dot11InformationElementIDSSID:
			if !seenSSID {
				ap.ESSID = NormalizeESSID(ssidFromElement(info))
				seenSSID = true
			}
		case layers.Dot11InformationElementIDDSSet:
			if ap.Channel == "" && len(info) > 0 {
				ap.Channel = strconv.Itoa(int(info[0]))
			}
		}
	})

	return ap, ap.BSSID != ""
}

// walkElements visits each tagged element (id, length, info) in a beacon or
// probe response body. gopacket's element decoder rejects short trailing
// elements such as a DS set, so the walk is done by hand. It stops at the
// first element whose length runs past the end of body.
func walkElements(body []byte, visit func(id layers.Dot11InformationElementID, info []byte)) {
	for len(body) >= 2 {
		id := layers.Dot11InformationElementID(body[0])
		length := int(body[1])

		if len(body) < 2+length {
			return
		}

		visit(id, body[2:2+length])

		body = body[2+length:]
	}
}

// cloaked beacons carry either an empty SSID or one padded with NUL bytes
func ssidFromElement(info []byte) string {
	if len(bytes.Trim(info, "\x00")) == 0 {
		return ""
	}

	return string(info)
}
