// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Speaker selection flags
	macFlag string
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "ueboom",
	Short: "UE Mini Boom controller",
	Long: `ueboom - Control a UE Mini Boom speaker without the official mobile app.

Talks to the speaker over two paths: BlueZ on the system D-Bus for
discovery and status, and the speaker's RFCOMM serial channel for
commands (EQ, volume, stereo pairing, naming, alerts).

Most commands need the speaker's Bluetooth address. When --mac is
omitted and exactly one paired UE speaker is found, it is selected
automatically.

Examples:
  # List paired UE speakers
  ueboom list

  # Show status (battery, connection, EQ)
  ueboom status

  # Set the EQ preset
  ueboom eq outloud

  # Guided stereo pairing for two speakers
  ueboom stereo setup

  # Interactive menu
  ueboom interactive`,
	Version: "1.0.0",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&macFlag, "mac", "m", "", "Bluetooth address of the speaker")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress connection progress output")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
