// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package spp

import (
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial"
)

// ttyDialer is the fallback transport for systems without AF_BLUETOOTH
// socket support. It rides on a kernel-bound rfcomm tty
// (`rfcomm bind <n> <address> <channel>`), which presents the speaker's
// serial channel as an ordinary serial port. The channel argument is
// already baked into the binding, so Dial only locates the device node.
type ttyDialer struct{}

func (ttyDialer) Dial(address string, channel uint8) (Conn, error) {
	ports := rfcommPorts()
	if len(ports) == 0 {
		return nil, fmt.Errorf("no bound rfcomm tty found (try `rfcomm bind 0 %s %d`)", address, channel)
	}

	mode := &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(ports[0], mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", ports[0], err)
	}

	return &ttyConn{port: port}, nil
}

// rfcommPorts lists serial devices backed by an rfcomm binding.
func rfcommPorts() []string {
	all, err := serial.GetPortsList()
	if err != nil {
		return nil
	}
	var ports []string
	for _, p := range all {
		if strings.Contains(p, "rfcomm") {
			ports = append(ports, p)
		}
	}
	return ports
}

type ttyConn struct {
	port serial.Port
}

func (c *ttyConn) Read(p []byte) (int, error) {
	return c.port.Read(p)
}

func (c *ttyConn) Write(p []byte) (int, error) {
	return c.port.Write(p)
}

func (c *ttyConn) Close() error {
	return c.port.Close()
}

func (c *ttyConn) SetReadTimeout(d time.Duration) error {
	return c.port.SetReadTimeout(d)
}
