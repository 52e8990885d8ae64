// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

var bleCmd = &cobra.Command{
	Use:   "ble on|off",
	Short: "Switch the speaker's BLE radio",
	Long: `Switch the speaker's low-energy radio on or off.

The LE radio is only used by the official app for out-of-band status;
turning it off does not affect audio or this tool's serial channel.`,
	Args: cobra.ExactArgs(1),
	RunE: runBLE,
}

func init() {
	rootCmd.AddCommand(bleCmd)
}

func runBLE(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "on":
		return sendToSpeaker(lwacp.NewBLEState(true))
	case "off":
		return sendToSpeaker(lwacp.NewBLEState(false))
	default:
		return fmt.Errorf("ble argument must be \"on\" or \"off\", got %q", args[0])
	}
}
