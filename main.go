// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork
//
// ueboom - UE Mini Boom controller
//
// A CLI tool for controlling UE Mini Boom speakers over Bluetooth,
// replacing the discontinued official mobile app.

package main

import (
	"os"

	"github.com/carreolivierwork/ue-mini-boom-manager/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
