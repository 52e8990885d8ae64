// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package lwacp

import "strings"

// IsUESpeaker reports whether a Bluetooth device looks like a UE speaker,
// matching either a name keyword or a known UE/Logitech OUI prefix. The
// OUI check catches speakers that have been renamed.
func IsUESpeaker(address, name string) bool {
	upper := strings.ToUpper(name)
	for _, kw := range ueNameKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	addr := strings.ToUpper(address)
	for _, prefix := range ueOUIPrefixes {
		if strings.HasPrefix(addr, prefix) {
			return true
		}
	}
	return false
}
