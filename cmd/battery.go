// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/bluez"
	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

var batteryAnnounce bool

var batteryCmd = &cobra.Command{
	Use:   "battery",
	Short: "Read the battery level",
	Long: `Read the speaker's battery level from BlueZ.

With --announce, the speaker is instead told to speak its battery level
out loud.`,
	RunE: runBattery,
}

func init() {
	rootCmd.AddCommand(batteryCmd)
	batteryCmd.Flags().BoolVar(&batteryAnnounce, "announce", false, "Make the speaker announce the level audibly")
}

func runBattery(cmd *cobra.Command, args []string) error {
	if batteryAnnounce {
		return sendToSpeaker(lwacp.NewBatteryAnnounce())
	}

	addr, err := resolveSpeaker()
	if err != nil {
		return err
	}

	bz, err := bluez.New()
	if err != nil {
		return err
	}
	defer bz.Close()

	level := bz.Battery(addr)
	if level < 0 {
		return fmt.Errorf("could not read battery — is the speaker connected?")
	}
	fmt.Printf("Battery: %d%%\n", level)
	return nil
}
