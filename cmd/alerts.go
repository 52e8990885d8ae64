// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts on|off|<mode>",
	Short: "Toggle or select alert sounds",
	Long: `Toggle the speaker's alert sounds.

"on" selects the default alert set (conga); a numeric mode selects a
specific set.`,
	Args: cobra.ExactArgs(1),
	RunE: runAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "off":
		return sendToSpeaker(lwacp.NewAlertSound(0))
	case "on":
		return sendToSpeaker(lwacp.NewAlertSound(1))
	}

	mode, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return fmt.Errorf("alerts argument must be \"on\", \"off\", or a mode number, got %q", args[0])
	}
	return sendToSpeaker(lwacp.NewAlertSound(uint8(mode)))
}
