// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

var nameCmd = &cobra.Command{
	Use:   "name <new name>",
	Short: "Rename the speaker",
	Long: `Set the speaker's display name.

Names are sent as UTF-8 and truncated to 32 bytes, matching the
speaker's own limit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runName,
}

func init() {
	rootCmd.AddCommand(nameCmd)
}

func runName(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if len(name) > lwacp.MaxNameBytes && !quiet {
		fmt.Printf("Name is %d bytes; the speaker keeps the first %d.\n", len(name), lwacp.MaxNameBytes)
	}
	return sendToSpeaker(lwacp.NewSetName(name))
}
