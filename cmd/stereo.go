// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

var stereoCmd = &cobra.Command{
	Use:   "stereo",
	Short: "Stereo / Double Up control for two speakers",
}

var stereoSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Guided stereo pairing of two speakers",
	Long: `Walk through pairing a second speaker for stereo playback.

The connected speaker is put into discovery mode, the second speaker is
paired by hand, and the connected speaker is then assigned the LEFT
channel. Aborting midway can leave the speaker in discovery mode; a
power cycle resets it.`,
	RunE: runStereoSetup,
}

var stereoModeCmd = &cobra.Command{
	Use:   "mode double|stereo",
	Short: "Select double (same audio) or stereo (L/R split) mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runStereoMode,
}

var stereoRoleCmd = &cobra.Command{
	Use:   "role left|right",
	Short: "Assign this speaker's stereo channel",
	Args:  cobra.ExactArgs(1),
	RunE:  runStereoRole,
}

var stereoLockCmd = &cobra.Command{
	Use:   "lock on|off",
	Short: "Toggle Double Up auto-reconnect",
	Args:  cobra.ExactArgs(1),
	RunE:  runStereoLock,
}

func init() {
	rootCmd.AddCommand(stereoCmd)
	stereoCmd.AddCommand(stereoSetupCmd)
	stereoCmd.AddCommand(stereoModeCmd)
	stereoCmd.AddCommand(stereoRoleCmd)
	stereoCmd.AddCommand(stereoLockCmd)
}

func runStereoMode(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "double":
		return sendToSpeaker(lwacp.NewDoubleUpMode(false))
	case "stereo":
		return sendToSpeaker(lwacp.NewDoubleUpMode(true))
	default:
		return fmt.Errorf("mode must be \"double\" or \"stereo\", got %q", args[0])
	}
}

func runStereoRole(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "left":
		return sendToSpeaker(lwacp.NewDoubleUpRole(false))
	case "right":
		return sendToSpeaker(lwacp.NewDoubleUpRole(true))
	default:
		return fmt.Errorf("role must be \"left\" or \"right\", got %q", args[0])
	}
}

func runStereoLock(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "on":
		return sendToSpeaker(lwacp.NewDoubleUpLock(true))
	case "off":
		return sendToSpeaker(lwacp.NewDoubleUpLock(false))
	default:
		return fmt.Errorf("lock argument must be \"on\" or \"off\", got %q", args[0])
	}
}

func runStereoSetup(cmd *cobra.Command, args []string) error {
	addr, err := resolveSpeaker()
	if err != nil {
		return err
	}
	client := newClient(addr)
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Stereo Setup ===")
	fmt.Println("This will put the connected speaker into pairing/discovery mode.")
	fmt.Print("Continue? [y/N]: ")
	line, err := reader.ReadString('\n')
	if err != nil || !isYes(line) {
		fmt.Println("Setup cancelled.")
		return nil
	}

	fmt.Println()
	fmt.Println("Step 1: Initiating stereo discovery on the connected speaker...")
	if !client.Send(lwacp.NewStereoDiscover()) {
		return fmt.Errorf("failed to send stereo command — is the speaker connected?")
	}

	fmt.Println("The connected speaker is now in discovery mode (fast blinking).")
	fmt.Println()
	fmt.Println("Step 2: On the second speaker:")
	fmt.Println("  1. Turn it on")
	fmt.Println("  2. Press the Bluetooth button twice")
	fmt.Println("  3. Wait for it to start blinking fast")
	fmt.Println("  4. Wait for both speakers to stop blinking (lights go solid)")
	fmt.Println()
	fmt.Println("  Note: If both lights turn off instead of going solid,")
	fmt.Println("  the pairing timed out. Re-run stereo setup and try again.")
	fmt.Println()
	fmt.Print("Press Enter when both speakers have solid lights...")
	if _, err := reader.ReadString('\n'); err != nil {
		fmt.Println("\nSetup cancelled.")
		fmt.Println("WARNING: Speaker may still be in discovery mode. Power-cycle to reset.")
		return nil
	}

	fmt.Println()
	fmt.Println("Step 3: Assigning connected speaker as LEFT channel...")
	time.Sleep(1 * time.Second)
	if !client.Send(lwacp.NewDoubleUpRole(false)) {
		return fmt.Errorf("failed to assign stereo role")
	}

	fmt.Println("Stereo setup complete! Connected speaker is LEFT, second speaker is RIGHT.")
	return nil
}

func isYes(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
