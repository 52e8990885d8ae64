// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package bluez

import (
	"fmt"
	"sort"

	"github.com/godbus/dbus/v5"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

// Device is one paired speaker as listed by BlueZ.
type Device struct {
	Address string
	Name    string
}

// Status is a snapshot of a device's BlueZ properties. Battery is -1 when
// BlueZ does not expose a battery for the device. Alias is empty when it
// matches Name.
type Status struct {
	Name      string
	Alias     string
	Paired    bool
	Connected bool
	Modalias  string
	Battery   int
}

// statusFromProps builds a Status from a Device1 property map.
func statusFromProps(props map[string]dbus.Variant) Status {
	st := Status{Battery: -1}
	if v, ok := props["Name"]; ok {
		st.Name, _ = v.Value().(string)
	}
	if v, ok := props["Alias"]; ok {
		if alias, _ := v.Value().(string); alias != st.Name {
			st.Alias = alias
		}
	}
	if v, ok := props["Paired"]; ok {
		st.Paired, _ = v.Value().(bool)
	}
	if v, ok := props["Connected"]; ok {
		st.Connected, _ = v.Value().(bool)
	}
	if v, ok := props["Modalias"]; ok {
		st.Modalias, _ = v.Value().(string)
	}
	return st
}

// batteryFromVariant coerces a Battery1.Percentage variant to 0-100, or
// -1 when the shape is unexpected.
func batteryFromVariant(v dbus.Variant) int {
	switch val := v.Value().(type) {
	case uint8:
		return int(val)
	case uint16:
		return int(val)
	case int32:
		return int(val)
	case uint32:
		return int(val)
	default:
		return -1
	}
}

// DeviceStatus reads a Device1 property snapshot plus the Battery1
// percentage for the given address.
func (b *Bluez) DeviceStatus(addr string) (Status, error) {
	path := deviceObjectPath(addr)
	obj := b.conn.Object(busName, path)

	var props map[string]dbus.Variant
	if err := obj.Call(propsIface+".GetAll", 0, deviceIface).Store(&props); err != nil {
		return Status{}, fmt.Errorf("device %s not known to BlueZ: %w", addr, err)
	}

	st := statusFromProps(props)
	if v, err := b.getProp(path, batteryIface, "Percentage"); err == nil {
		st.Battery = batteryFromVariant(v)
	}
	return st, nil
}

// Battery reads the Battery1 percentage for the given address. Returns -1
// when BlueZ has no battery information for the device.
func (b *Bluez) Battery(addr string) int {
	v, err := b.getProp(deviceObjectPath(addr), batteryIface, "Percentage")
	if err != nil {
		return -1
	}
	return batteryFromVariant(v)
}

// PairedSpeakers enumerates BlueZ's managed objects and returns the paired
// devices that look like UE speakers, ordered by address.
func (b *Bluez) PairedSpeakers() ([]Device, error) {
	var managed map[dbus.ObjectPath]map[string]map[string]dbus.Variant
	obj := b.conn.Object(busName, "/")
	if err := obj.Call(omIface+".GetManagedObjects", 0).Store(&managed); err != nil {
		return nil, fmt.Errorf("enumerate BlueZ objects: %w", err)
	}
	return filterSpeakers(managed), nil
}

// filterSpeakers picks paired UE speakers out of a managed-object dump.
func filterSpeakers(managed map[dbus.ObjectPath]map[string]map[string]dbus.Variant) []Device {
	var devices []Device
	for path, ifaces := range managed {
		props, ok := ifaces[deviceIface]
		if !ok {
			continue
		}
		paired, _ := props["Paired"].Value().(bool)
		if !paired {
			continue
		}
		addr, _ := props["Address"].Value().(string)
		if addr == "" {
			addr = macFromPath(path)
		}
		name, _ := props["Name"].Value().(string)
		if !lwacp.IsUESpeaker(addr, name) {
			continue
		}
		devices = append(devices, Device{Address: addr, Name: name})
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].Address < devices[j].Address })
	return devices
}
