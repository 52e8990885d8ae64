// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

var soundCmd = &cobra.Command{
	Use:   "sound [id]",
	Short: "Play a built-in sound effect",
	Long: `Play one of the speaker's built-in sound effects.

Without an argument the power-on chime is played. The id is a 16-bit
hex value, e.g. 60C0.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSound,
}

func init() {
	rootCmd.AddCommand(soundCmd)
}

func runSound(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return sendToSpeaker(lwacp.NewPowerOnSound())
	}

	id, err := strconv.ParseUint(args[0], 16, 16)
	if err != nil {
		return fmt.Errorf("sound id must be a 16-bit hex value, got %q", args[0])
	}
	return sendToSpeaker(lwacp.NewEmitSound(uint16(id)))
}
