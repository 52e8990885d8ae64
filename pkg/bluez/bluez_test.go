// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package bluez

import (
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestDeviceObjectPath(t *testing.T) {
	tests := []struct {
		addr string
		want dbus.ObjectPath
	}{
		{"88:C6:26:11:22:33", "/org/bluez/hci0/dev_88_C6_26_11_22_33"},
		{"aa:bb:cc:dd:ee:ff", "/org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF"},
	}
	for _, tt := range tests {
		if got := deviceObjectPath(tt.addr); got != tt.want {
			t.Errorf("deviceObjectPath(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestMacFromPath(t *testing.T) {
	tests := []struct {
		path dbus.ObjectPath
		want string
	}{
		{"/org/bluez/hci0/dev_88_C6_26_11_22_33", "88:C6:26:11:22:33"},
		{"/org/bluez/hci1/dev_AA_BB_CC_DD_EE_FF", "AA:BB:CC:DD:EE:FF"},
		{"/org/bluez/hci0", ""},
		{"/org/bluez/hci0/dev_bogus", ""},
	}
	for _, tt := range tests {
		if got := macFromPath(tt.path); got != tt.want {
			t.Errorf("macFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestStatusFromProps(t *testing.T) {
	t.Run("full property set", func(t *testing.T) {
		props := map[string]dbus.Variant{
			"Name":      dbus.MakeVariant("UE MINI BOOM"),
			"Alias":     dbus.MakeVariant("Kitchen"),
			"Paired":    dbus.MakeVariant(true),
			"Connected": dbus.MakeVariant(true),
			"Modalias":  dbus.MakeVariant("usb:v046DpBA20dFF0A"),
		}
		st := statusFromProps(props)
		if st.Name != "UE MINI BOOM" || st.Alias != "Kitchen" {
			t.Errorf("name/alias = %q/%q", st.Name, st.Alias)
		}
		if !st.Paired || !st.Connected {
			t.Errorf("paired/connected = %v/%v, want true/true", st.Paired, st.Connected)
		}
		if st.Modalias != "usb:v046DpBA20dFF0A" {
			t.Errorf("modalias = %q", st.Modalias)
		}
		if st.Battery != -1 {
			t.Errorf("battery = %d, want -1 before Battery1 read", st.Battery)
		}
	})

	t.Run("alias equal to name is dropped", func(t *testing.T) {
		props := map[string]dbus.Variant{
			"Name":  dbus.MakeVariant("UE MINI BOOM"),
			"Alias": dbus.MakeVariant("UE MINI BOOM"),
		}
		if st := statusFromProps(props); st.Alias != "" {
			t.Errorf("alias = %q, want empty when identical to name", st.Alias)
		}
	})

	t.Run("empty property map", func(t *testing.T) {
		st := statusFromProps(map[string]dbus.Variant{})
		if st.Name != "" || st.Paired || st.Connected || st.Battery != -1 {
			t.Errorf("unexpected defaults: %+v", st)
		}
	})
}

func TestBatteryFromVariant(t *testing.T) {
	tests := []struct {
		name string
		v    dbus.Variant
		want int
	}{
		{"byte as BlueZ sends it", dbus.MakeVariant(uint8(100)), 100},
		{"zero percent", dbus.MakeVariant(uint8(0)), 0},
		{"wider integer type", dbus.MakeVariant(int32(42)), 42},
		{"unexpected type", dbus.MakeVariant("full"), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := batteryFromVariant(tt.v); got != tt.want {
				t.Errorf("batteryFromVariant = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFilterSpeakers(t *testing.T) {
	managed := map[dbus.ObjectPath]map[string]map[string]dbus.Variant{
		"/org/bluez/hci0/dev_88_C6_26_11_22_33": {
			deviceIface: {
				"Address": dbus.MakeVariant("88:C6:26:11:22:33"),
				"Name":    dbus.MakeVariant("Kitchen"), // renamed, matched by OUI
				"Paired":  dbus.MakeVariant(true),
			},
		},
		"/org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF": {
			deviceIface: {
				"Address": dbus.MakeVariant("AA:BB:CC:DD:EE:FF"),
				"Name":    dbus.MakeVariant("UE MINI BOOM"),
				"Paired":  dbus.MakeVariant(true),
			},
		},
		"/org/bluez/hci0/dev_11_22_33_44_55_66": {
			deviceIface: {
				"Address": dbus.MakeVariant("11:22:33:44:55:66"),
				"Name":    dbus.MakeVariant("UE BOOM 2"),
				"Paired":  dbus.MakeVariant(false), // not paired, excluded
			},
		},
		"/org/bluez/hci0/dev_22_33_44_55_66_77": {
			deviceIface: {
				"Address": dbus.MakeVariant("22:33:44:55:66:77"),
				"Name":    dbus.MakeVariant("Keyboard K380"),
				"Paired":  dbus.MakeVariant(true), // paired but not a speaker
			},
		},
		"/org/bluez/hci0": {
			"org.bluez.Adapter1": {
				"Powered": dbus.MakeVariant(true),
			},
		},
	}

	devices := filterSpeakers(managed)
	if len(devices) != 2 {
		t.Fatalf("speakers = %d, want 2: %+v", len(devices), devices)
	}
	// Sorted by address.
	if devices[0].Address != "88:C6:26:11:22:33" || devices[1].Address != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("unexpected order: %+v", devices)
	}
}
