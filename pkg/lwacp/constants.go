// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

// Package lwacp implements the wireless audio control protocol spoken by
// UE Boom family speakers over the Bluetooth Serial Port Profile.
//
// Command identifiers and the packet layout were extracted from the
// decompiled UE Boom companion app (com.logitech.ue.centurion.*). A command
// packet is [total_length, 0x01, command_id, params...] where total_length
// counts every byte after the length byte itself.
package lwacp

// Bluetooth service UUIDs.
const (
	// SPPUUID is the standard Serial Port Profile UUID the speaker's
	// control channel is registered under.
	SPPUUID = "00001101-0000-1000-8000-00805F9B34FB"

	// BLE GATT characteristics exposed by the speaker's LE radio.
	// Listed for reference; the control path in this tool is SPP only.
	BLEServiceUUID   = "000061fe-0000-1000-8000-00805f9b34fb"
	BLEPowerUUID     = "c6d6dc0d-07f5-47ef-9b59-630622b01fd3"
	BLEBatteryUUID   = "00002a19-0000-1000-8000-00805f9b34fb"
	BLENameUUID      = "00002a00-0000-1000-8000-00805f9b34fb"
	BLEFwVersionUUID = "00002a28-0000-1000-8000-00805f9b34fb"
	BLESerialUUID    = "00002a25-0000-1000-8000-00805f9b34fb"
	BLEColorUUID     = "54f7f292-7ebb-4267-83c2-8e6ee7e881ff"
	BLEAlarmUUID     = "16e005bb-3862-43c7-8f5c-6f654a4ffdd2"
)

// Packet framing bytes.
const (
	// PacketMarker is the fixed protocol marker in byte 1 of every command.
	PacketMarker = 0x01

	// QueryLength is the total_length byte of a parameterless query probe.
	QueryLength = 0x02

	// MaxParams is the largest parameter count the single-byte length
	// field can describe (length = 2 + params, capped at 255).
	MaxParams = 253
)

// Known command identifiers.
const (
	// CmdVolumeAdjust steps the volume. Params: [direction, step] where
	// direction is VolumeDown/VolumeUp and step is usually 1.
	CmdVolumeAdjust = 0xBB

	// CmdBatteryAnnounce makes the speaker announce its battery level
	// audibly. No params.
	CmdBatteryAnnounce = 0x6B

	// CmdSonification toggles/selects alert sounds. Param: 0x00=off,
	// 0x01=conga, further values select other alert sets.
	CmdSonification = 0x65

	// CmdEmitSound plays a built-in sound effect. Params: [id_high, id_low].
	CmdEmitSound = 0x6C

	// CmdBLEState switches the LE radio. Param: 0x00=off, 0x01=on.
	CmdBLEState = 0xB9

	// CmdEQPreset selects an EQ preset. Param: preset id 0-3.
	CmdEQPreset = 0x64

	// CmdSetName renames the speaker. Params: UTF-8 name bytes, at most
	// MaxNameBytes of them.
	CmdSetName = 0x72

	// Double Up (two-speaker) control.
	CmdDoubleUpMode = 0x67 // param: ModeDouble or ModeStereo
	CmdDoubleUpRole = 0x68 // param: RoleLeft or RoleRight
	CmdDoubleUpLock = 0x69 // param: 0/1; parameterless form triggers discovery
)

// Parameter values.
const (
	VolumeDown = 0x00
	VolumeUp   = 0x01

	EQOff      = 0x00 // flat
	EQOutLoud  = 0x01 // bass boost
	EQIntimate = 0x02 // reduced bass
	EQVocals   = 0x03 // mid boost

	ModeDouble = 0x00 // both speakers play the same audio
	ModeStereo = 0x01 // left/right channels split

	RoleLeft  = 0x00
	RoleRight = 0x01

	// PowerOnSoundID is the sound effect played at power-on.
	PowerOnSoundID = 0x60C0

	// MaxNameBytes is the longest name the speaker accepts; longer names
	// are truncated before encoding.
	MaxNameBytes = 32
)

// EQPresetName returns the human-readable name for an EQ preset id.
func EQPresetName(preset uint8) string {
	switch preset {
	case EQOff:
		return "Off (flat)"
	case EQOutLoud:
		return "Out Loud"
	case EQIntimate:
		return "Intimate"
	case EQVocals:
		return "Vocals"
	default:
		return "Unknown"
	}
}

// ueOUIPrefixes are the known MAC address prefixes for UE / Logitech
// devices, used to identify renamed speakers.
var ueOUIPrefixes = []string{
	"88:C6:26", // UE Mini Boom / UE Boom
	"38:F0:C8", // Logitech
	"44:73:D6", // Logitech
	"94:02:30", // Logitech
	"C8:DB:26", // Logitech
}

// ueNameKeywords are matched case-insensitively against device names.
var ueNameKeywords = []string{"UE", "BOOM", "MINI"}
