// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Interactive menu for controlling the speaker",
	Long: `Control the speaker through an interactive terminal menu.

Covers EQ presets, stereo/Double Up settings, volume, alerts, the BLE
radio, renaming, and sound effects. Each selection opens one serial
session to the speaker and reports success or failure in the status
line.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}

	addr, err := resolveSpeaker()
	if err != nil {
		return err
	}

	p := tea.NewProgram(newMenuModel(addr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}
