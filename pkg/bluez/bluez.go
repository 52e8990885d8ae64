// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

// Package bluez reads paired-device and status information from the BlueZ
// daemon over the system D-Bus. It covers discovery and status only; the
// command path to the speaker goes over RFCOMM (see pkg/spp).
package bluez

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	busName      = "org.bluez"
	adapterPath  = "/org/bluez/hci0"
	deviceIface  = "org.bluez.Device1"
	batteryIface = "org.bluez.Battery1"
	propsIface   = "org.freedesktop.DBus.Properties"
	omIface      = "org.freedesktop.DBus.ObjectManager"
)

// deviceObjectPath converts a MAC address like "AA:BB:CC:DD:EE:FF" to
// "/org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF".
func deviceObjectPath(addr string) dbus.ObjectPath {
	escaped := strings.ReplaceAll(strings.ToUpper(addr), ":", "_")
	return dbus.ObjectPath(adapterPath + "/dev_" + escaped)
}

// macFromPath extracts a MAC address from a BlueZ device object path.
func macFromPath(path dbus.ObjectPath) string {
	s := string(path)
	idx := strings.Index(s, "/dev_")
	if idx < 0 {
		return ""
	}
	mac := strings.ReplaceAll(s[idx+len("/dev_"):], "_", ":")
	if len(mac) != 17 {
		return ""
	}
	return mac
}

// Bluez wraps a system D-Bus connection for BlueZ queries.
type Bluez struct {
	conn *dbus.Conn
}

// New connects to the system bus and verifies BlueZ is present.
func New() (*Bluez, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("connect to system bus: %w", err)
	}
	var owner string
	if err := conn.BusObject().Call("org.freedesktop.DBus.GetNameOwner", 0, busName).Store(&owner); err != nil {
		conn.Close()
		return nil, fmt.Errorf("org.bluez not found on system bus — is bluetooth.service running?")
	}
	return &Bluez{conn: conn}, nil
}

// Close releases the bus connection.
func (b *Bluez) Close() {
	b.conn.Close()
}

func (b *Bluez) getProp(path dbus.ObjectPath, iface, prop string) (dbus.Variant, error) {
	obj := b.conn.Object(busName, path)
	var v dbus.Variant
	err := obj.Call(propsIface+".Get", 0, iface, prop).Store(&v)
	return v, err
}
