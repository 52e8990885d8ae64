// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package lwacp

// ExtractValue pulls a queried parameter value out of a raw response.
//
// Observed traffic suggests the response envelope is
// [len, 0x00, 0x00, 0x01, command_id, value], but speakers have been seen
// to prepend extra bytes, so the parser scans left to right for the first
// occurrence of commandID and returns the byte after it rather than
// indexing at a fixed offset. Returns false when commandID is absent or is
// the final byte.
func ExtractValue(response []byte, commandID uint8) (uint8, bool) {
	for i := 0; i+1 < len(response); i++ {
		if response[i] == commandID {
			return response[i+1], true
		}
	}
	return 0, false
}
