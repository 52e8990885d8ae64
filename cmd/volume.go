// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

var volumeStep uint8

var volumeCmd = &cobra.Command{
	Use:   "volume up|down",
	Short: "Step the volume up or down",
	Args:  cobra.ExactArgs(1),
	RunE:  runVolume,
}

func init() {
	rootCmd.AddCommand(volumeCmd)
	volumeCmd.Flags().Uint8Var(&volumeStep, "step", 1, "Number of volume steps")
}

func runVolume(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "up":
		return sendToSpeaker(lwacp.NewVolumeAdjust(true, volumeStep))
	case "down":
		return sendToSpeaker(lwacp.NewVolumeAdjust(false, volumeStep))
	default:
		return fmt.Errorf("volume direction must be \"up\" or \"down\", got %q", args[0])
	}
}
