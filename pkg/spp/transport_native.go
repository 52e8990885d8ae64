// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package spp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// nativeDialer opens RFCOMM stream sockets through the kernel's
// AF_BLUETOOTH support.
type nativeDialer struct{}

func (nativeDialer) Dial(address string, channel uint8) (Conn, error) {
	ba, err := parseAddress(address)
	if err != nil {
		return nil, err
	}

	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_STREAM, unix.BTPROTO_RFCOMM)
	if err != nil {
		return nil, fmt.Errorf("rfcomm socket: %w", err)
	}

	sa := &unix.SockaddrRFCOMM{Addr: ba, Channel: channel}
	if err := unix.Connect(fd, sa); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("connect %s channel %d: %w", address, channel, err)
	}

	return &nativeConn{fd: fd}, nil
}

// nativeAvailable probes whether the kernel accepts AF_BLUETOOTH RFCOMM
// sockets at all.
func nativeAvailable() bool {
	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_STREAM, unix.BTPROTO_RFCOMM)
	if err != nil {
		return false
	}
	unix.Close(fd)
	return true
}

type nativeConn struct {
	fd int
}

func (c *nativeConn) Read(p []byte) (int, error) {
	n, err := unix.Read(c.fd, p)
	if n < 0 {
		n = 0
	}
	return n, err
}

func (c *nativeConn) Write(p []byte) (int, error) {
	return unix.Write(c.fd, p)
}

func (c *nativeConn) Close() error {
	return unix.Close(c.fd)
}

// SetReadTimeout arms SO_RCVTIMEO; a read past the deadline fails with
// EAGAIN, which callers treat as no data.
func (c *nativeConn) SetReadTimeout(d time.Duration) error {
	tv := unix.NsecToTimeval(d.Nanoseconds())
	return unix.SetsockoptTimeval(c.fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv)
}

// parseAddress converts "AA:BB:CC:DD:EE:FF" into the reversed byte array
// the kernel's sockaddr_rc expects.
func parseAddress(address string) ([6]byte, error) {
	var ba [6]byte
	parts := strings.Split(address, ":")
	if len(parts) != 6 {
		return ba, fmt.Errorf("malformed Bluetooth address %q", address)
	}
	for i, part := range parts {
		b, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return ba, fmt.Errorf("malformed Bluetooth address %q: %v", address, err)
		}
		ba[5-i] = uint8(b)
	}
	return ba, nil
}
