// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/bluez"
	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show speaker status (battery, connection, EQ)",
	Long: `Show the speaker's current status.

Pairing, connection, and battery come from BlueZ. When the speaker is
connected, the EQ preset is additionally read over the serial control
channel.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	addr, err := resolveSpeaker()
	if err != nil {
		return err
	}

	bz, err := bluez.New()
	if err != nil {
		return err
	}
	defer bz.Close()

	st, err := bz.DeviceStatus(addr)
	if err != nil {
		return err
	}

	name := st.Name
	if name == "" {
		name = addr
	}
	fmt.Printf("=== %s (%s) ===\n", name, addr)
	if st.Alias != "" {
		fmt.Printf("  Alias:      %s\n", st.Alias)
	}
	fmt.Printf("  Paired:     %s\n", yesNo(st.Paired))
	fmt.Printf("  Connected:  %s\n", yesNo(st.Connected))
	if st.Battery >= 0 {
		fmt.Printf("  Battery:    %d%%\n", st.Battery)
	}
	if st.Modalias != "" {
		fmt.Printf("  Modalias:   %s\n", st.Modalias)
	}

	if !st.Connected {
		fmt.Println("  (connect the speaker to read more parameters)")
		return nil
	}

	// EQ preset over the serial channel, batched so more parameters can
	// join this read later without extra connections.
	values := newClient(addr).QueryMany([]uint8{lwacp.CmdEQPreset})
	if v := values[lwacp.CmdEQPreset]; v.Valid {
		fmt.Printf("  EQ Preset:  %s\n", lwacp.EQPresetName(v.Data))
	} else {
		fmt.Printf("  EQ Preset:  unknown\n")
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
