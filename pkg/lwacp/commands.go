// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package lwacp

// Command builder functions create wire-ready packets. These are
// convenience wrappers around Encode that ensure correct parameter usage
// per command.

// NewEQPreset creates an EQ preset command (0x64).
// Preset values: EQOff (0), EQOutLoud (1), EQIntimate (2), EQVocals (3).
func NewEQPreset(preset uint8) []byte {
	return MustEncode(CmdEQPreset, preset)
}

// NewVolumeAdjust creates a volume step command (0xBB).
// The step is usually 1; larger steps are accepted by the speaker.
func NewVolumeAdjust(up bool, step uint8) []byte {
	direction := uint8(VolumeDown)
	if up {
		direction = VolumeUp
	}
	return MustEncode(CmdVolumeAdjust, direction, step)
}

// NewBatteryAnnounce creates a battery announce command (0x6B).
// The speaker speaks its battery level; there is no wire-level reply value.
func NewBatteryAnnounce() []byte {
	return MustEncode(CmdBatteryAnnounce)
}

// NewAlertSound creates a sonification command (0x65).
// Mode 0 disables alert sounds; nonzero values select an alert set.
func NewAlertSound(mode uint8) []byte {
	return MustEncode(CmdSonification, mode)
}

// NewEmitSound creates a sound effect command (0x6C).
// The 16-bit sound id is split into high and low parameter bytes.
func NewEmitSound(soundID uint16) []byte {
	return MustEncode(CmdEmitSound, uint8(soundID>>8), uint8(soundID&0xFF))
}

// NewPowerOnSound plays the power-on chime.
func NewPowerOnSound() []byte {
	return NewEmitSound(PowerOnSoundID)
}

// NewBLEState creates a BLE radio state command (0xB9).
func NewBLEState(on bool) []byte {
	if on {
		return MustEncode(CmdBLEState, 0x01)
	}
	return MustEncode(CmdBLEState, 0x00)
}

// NewSetName creates a rename command (0x72). Names longer than
// MaxNameBytes of UTF-8 are silently truncated, matching the speaker's own
// limit. Truncation is byte-wise, so a multi-byte rune on the boundary may
// be cut mid-sequence.
func NewSetName(name string) []byte {
	raw := []byte(name)
	if len(raw) > MaxNameBytes {
		raw = raw[:MaxNameBytes]
	}
	return MustEncode(CmdSetName, raw...)
}

// NewDoubleUpMode creates a Double Up mode command (0x67).
// stereo=false plays the same audio on both speakers.
func NewDoubleUpMode(stereo bool) []byte {
	if stereo {
		return MustEncode(CmdDoubleUpMode, ModeStereo)
	}
	return MustEncode(CmdDoubleUpMode, ModeDouble)
}

// NewDoubleUpRole creates a stereo channel role command (0x68).
func NewDoubleUpRole(right bool) []byte {
	if right {
		return MustEncode(CmdDoubleUpRole, RoleRight)
	}
	return MustEncode(CmdDoubleUpRole, RoleLeft)
}

// NewDoubleUpLock creates an auto-reconnect lock command (0x69).
func NewDoubleUpLock(on bool) []byte {
	if on {
		return MustEncode(CmdDoubleUpLock, 0x01)
	}
	return MustEncode(CmdDoubleUpLock, 0x00)
}

// NewStereoDiscover creates the parameterless Double Up lock command that
// puts a connected speaker into stereo pairing/discovery mode.
func NewStereoDiscover() []byte {
	return MustEncode(CmdDoubleUpLock)
}
