// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package spp

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultChannel is the RFCOMM channel the control service sits on when
// SDP lookup is unavailable. It is a per-device service attribute, not a
// protocol constant, so lookup is attempted first on every session.
const DefaultChannel = 5

// sdpLookupTimeout bounds the sdptool run.
const sdpLookupTimeout = 10 * time.Second

// sdpSearch runs the service lookup and returns its raw output. Swapped
// out in tests.
var sdpSearch = func(ctx context.Context, address string) (string, error) {
	out, err := exec.CommandContext(ctx, "sdptool", "search", "--bdaddr", address, "SP").Output()
	return string(out), err
}

// ResolveChannel discovers the speaker's serial-port channel via SDP.
// Any lookup failure (tool missing, timeout, unparsable output) falls back
// to DefaultChannel; the second return reports whether the fallback was
// used so callers can log it. Never fatal.
func ResolveChannel(address string) (uint8, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), sdpLookupTimeout)
	defer cancel()

	out, err := sdpSearch(ctx, address)
	if err != nil {
		return DefaultChannel, true
	}
	if ch, ok := parseSDPChannel(out); ok {
		return ch, false
	}
	return DefaultChannel, true
}

// parseSDPChannel extracts the first reported channel number from sdptool
// output lines like "    Channel: 5".
func parseSDPChannel(out string) (uint8, bool) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Channel:") {
			continue
		}
		raw := strings.TrimSpace(strings.TrimPrefix(line, "Channel:"))
		ch, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			continue
		}
		return uint8(ch), true
	}
	return 0, false
}
