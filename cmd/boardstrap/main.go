// Package main is the entry point for the boardstrap CLI.
//
// boardstrap provisions a MicroPython-class microcontroller (esp32,
// esp8266 or k210) with a user program and libraries over a serial
// connection, reflashing the firmware first when the board's filesystem
// cannot take the new files.
//
// Commands: flash, ports, doctor, init, version.
//
// For detailed usage information, run:
//
//	boardstrap --help
package main

import (
	"fmt"
	"os"

	"github.com/boardstrap/boardstrap/cmd/boardstrap/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
