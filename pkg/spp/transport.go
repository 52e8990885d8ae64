// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

// Package spp manages RFCOMM sessions with UE speakers: channel discovery,
// connect, paced command transmission, and query/response correlation.
//
// A session is scoped to one operation. The connection is opened at the
// start, closed unconditionally before the operation returns, and never
// reused across operations. Transport errors do not escape this package;
// they collapse to the documented boolean or value-absent results.
package spp

import (
	"errors"
	"io"
	"time"
)

// Conn is one open serial channel to a speaker. Reads are bounded by the
// most recent SetReadTimeout; a timed-out read surfaces as an error.
type Conn interface {
	io.Reader
	io.Writer
	io.Closer
	SetReadTimeout(d time.Duration) error
}

// Dialer opens a connection to a speaker's serial channel. Two
// implementations exist: a native AF_BLUETOOTH RFCOMM socket, and a
// fallback through a kernel-bound rfcomm tty. Both honor the same
// connect/send/recv/close contract.
type Dialer interface {
	Dial(address string, channel uint8) (Conn, error)
}

// ErrNoTransport is returned when neither the native socket API nor a
// bound rfcomm tty is available on this system.
var ErrNoTransport = errors.New("no Bluetooth serial transport available")

// systemDialer picks a transport by capability: native sockets first,
// then the tty fallback.
func systemDialer() (Dialer, error) {
	if nativeAvailable() {
		return nativeDialer{}, nil
	}
	if ports := rfcommPorts(); len(ports) > 0 {
		return ttyDialer{}, nil
	}
	return nil, ErrNoTransport
}
