// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package lwacp

import (
	"fmt"
	"strings"
)

// CommandName returns the human-readable name for a command identifier.
func CommandName(commandID uint8) string {
	switch commandID {
	case CmdVolumeAdjust:
		return "VOLUME_ADJUST"
	case CmdBatteryAnnounce:
		return "BATTERY_ANNOUNCE"
	case CmdSonification:
		return "SONIFICATION"
	case CmdEmitSound:
		return "EMIT_SOUND"
	case CmdBLEState:
		return "BLE_STATE"
	case CmdEQPreset:
		return "EQ_PRESET"
	case CmdSetName:
		return "SET_NAME"
	case CmdDoubleUpMode:
		return "DOUBLE_UP_MODE"
	case CmdDoubleUpRole:
		return "DOUBLE_UP_ROLE"
	case CmdDoubleUpLock:
		return "DOUBLE_UP_LOCK"
	default:
		return "UNKNOWN"
	}
}

// FormatBytes renders raw bytes as space-separated uppercase hex, the way
// they appear in sniffed traffic logs.
func FormatBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// FormatPacket renders an encoded command packet with its decoded command
// name, e.g. "03 01 64 01 (EQ_PRESET)". Packets too short to carry a
// command id are rendered as plain hex.
func FormatPacket(packet []byte) string {
	if len(packet) < 3 || packet[1] != PacketMarker {
		return FormatBytes(packet)
	}
	return fmt.Sprintf("%s (%s)", FormatBytes(packet), CommandName(packet[2]))
}
