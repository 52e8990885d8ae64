// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"
	"os"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/bluez"
	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/spp"
)

// resolveSpeaker picks a speaker address: --mac when given, otherwise the
// single paired UE speaker. Several candidates require an explicit --mac.
func resolveSpeaker() (string, error) {
	if macFlag != "" {
		return macFlag, nil
	}

	bz, err := bluez.New()
	if err != nil {
		return "", err
	}
	defer bz.Close()

	devices, err := bz.PairedSpeakers()
	if err != nil {
		return "", err
	}

	switch len(devices) {
	case 0:
		return "", fmt.Errorf("no paired UE speakers found; pair one first: bluetoothctl pair <MAC>")
	case 1:
		if !quiet {
			fmt.Printf("Auto-detected: %s (%s)\n", devices[0].Name, devices[0].Address)
		}
		return devices[0].Address, nil
	default:
		fmt.Fprintf(os.Stderr, "Multiple UE speakers found (%d). Specify --mac:\n", len(devices))
		for _, d := range devices {
			fmt.Fprintf(os.Stderr, "  %s  %s\n", d.Address, d.Name)
		}
		return "", fmt.Errorf("ambiguous speaker selection")
	}
}

// newClient builds an SPP client wired to stderr progress output unless
// --quiet is set.
func newClient(addr string) *spp.Client {
	client := spp.NewClient(addr)
	if !quiet {
		client.Logf = func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return client
}

// sendToSpeaker resolves the speaker and transmits one command packet.
func sendToSpeaker(packet []byte) error {
	addr, err := resolveSpeaker()
	if err != nil {
		return err
	}
	if !newClient(addr).Send(packet) {
		return fmt.Errorf("command failed — is the speaker connected?")
	}
	if !quiet {
		fmt.Println("Command sent successfully.")
	}
	return nil
}
