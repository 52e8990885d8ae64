// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package lwacp

import "fmt"

// Encode builds a command packet ready for transmission.
//
// Wire format: [total_length, 0x01, command_id, params...] where
// total_length = 2 + len(params). The length byte itself is not counted.
func Encode(commandID uint8, params ...uint8) ([]byte, error) {
	if len(params) > MaxParams {
		return nil, fmt.Errorf("lwacp: %d parameter bytes exceeds the length-byte capacity of %d", len(params), MaxParams)
	}

	packet := make([]byte, 0, 3+len(params))
	packet = append(packet, uint8(2+len(params)), PacketMarker, commandID)
	packet = append(packet, params...)
	return packet, nil
}

// MustEncode is Encode for parameter lists known to be in range.
// Panics on encoding error (use Encode for error handling).
func MustEncode(commandID uint8, params ...uint8) []byte {
	packet, err := Encode(commandID, params...)
	if err != nil {
		panic(fmt.Sprintf("lwacp: encode error: %v", err))
	}
	return packet
}

// QueryPacket builds the 3-byte probe that asks the speaker to report the
// current value of a parameter. Structurally a zero-parameter command
// packet: [0x02, 0x01, command_id].
func QueryPacket(commandID uint8) []byte {
	return []byte{QueryLength, PacketMarker, commandID}
}
