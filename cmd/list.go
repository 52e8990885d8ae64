// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/bluez"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List paired UE speakers",
	Long: `List paired UE speakers known to BlueZ.

Speakers are matched by name keyword (UE, BOOM, MINI) or by a known
UE/Logitech MAC prefix, so renamed speakers are still found.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	bz, err := bluez.New()
	if err != nil {
		return err
	}
	defer bz.Close()

	devices, err := bz.PairedSpeakers()
	if err != nil {
		return err
	}

	if len(devices) == 0 {
		fmt.Println("No paired UE speakers found.")
		fmt.Println("Pair your speaker first: bluetoothctl pair <MAC>")
		return nil
	}

	fmt.Printf("Found %d paired UE speaker(s):\n", len(devices))
	for _, d := range devices {
		fmt.Printf("  %s  %s\n", d.Address, d.Name)
	}
	return nil
}
