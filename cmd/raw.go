// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

var rawCmd = &cobra.Command{
	Use:   "raw <hex bytes>",
	Short: "Send a raw command packet",
	Long: `Send raw bytes to the speaker's serial channel.

The argument is a hex string; spaces are ignored. The packet is sent
exactly as given, including the length byte.

Example:
  ueboom raw "03 01 64 01"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRaw,
}

func init() {
	rootCmd.AddCommand(rawCmd)
}

func runRaw(cmd *cobra.Command, args []string) error {
	cleaned := strings.ReplaceAll(strings.Join(args, ""), " ", "")
	packet, err := hex.DecodeString(cleaned)
	if err != nil {
		return fmt.Errorf("invalid hex: %v", err)
	}
	if len(packet) == 0 {
		return fmt.Errorf("empty packet")
	}
	if !quiet {
		fmt.Printf("Packet: %s\n", lwacp.FormatPacket(packet))
	}
	return sendToSpeaker(packet)
}
