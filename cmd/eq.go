// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

var eqCmd = &cobra.Command{
	Use:   "eq [off|outloud|intimate|vocals]",
	Short: "Get or set the EQ preset",
	Long: `Get or set the speaker's EQ preset.

Without an argument the current preset is read over the serial channel.

Presets:
  off       Flat response
  outloud   Bass boost
  intimate  Reduced bass
  vocals    Mid boost`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEQ,
}

func init() {
	rootCmd.AddCommand(eqCmd)
}

func runEQ(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		addr, err := resolveSpeaker()
		if err != nil {
			return err
		}
		v, ok := newClient(addr).QueryOne(lwacp.CmdEQPreset)
		if !ok {
			fmt.Println("EQ preset: unknown (is the speaker connected?)")
			return nil
		}
		fmt.Printf("EQ preset: %s\n", lwacp.EQPresetName(v))
		return nil
	}

	preset, err := parseEQPreset(args[0])
	if err != nil {
		return err
	}
	return sendToSpeaker(lwacp.NewEQPreset(preset))
}

func parseEQPreset(s string) (uint8, error) {
	switch s {
	case "off", "flat":
		return lwacp.EQOff, nil
	case "outloud":
		return lwacp.EQOutLoud, nil
	case "intimate":
		return lwacp.EQIntimate, nil
	case "vocals":
		return lwacp.EQVocals, nil
	default:
		return 0, fmt.Errorf("unknown EQ preset %q (off, outloud, intimate, vocals)", s)
	}
}
