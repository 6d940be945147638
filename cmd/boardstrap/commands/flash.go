package commands

import (
	"github.com/spf13/cobra"

	"github.com/boardstrap/boardstrap/cmd/boardstrap/handlers"
)

// Flash returns the command that provisions a board.
//
// Flags override the corresponding configuration file values. With no
// config file present, --chip, --firmware and --program are enough for a
// full run.
func Flash() *cobra.Command {
	var opts handlers.FlashOptions

	cmd := &cobra.Command{
		Use:   "flash",
		Short: "Provision a board with a program and libraries",
		Long: `Provision a board with a program and libraries.

Reads the board's filesystem over the raw REPL, checks whether the new
files fit in the remaining space, reflashes the firmware when they do
not (or when the board does not answer), and uploads the program plus
any library files that are not already present.

Examples:
  # Provision using boardstrap.yaml in the current directory
  boardstrap flash

  # One-off run without a config file
  boardstrap flash --chip esp32 --firmware fw.bin --program blink.py

  # Force a clean slate
  boardstrap flash --force-reflash`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Flash(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: boardstrap.yaml)")
	cmd.Flags().StringVar(&opts.Chip, "chip", "", "Chip family: esp32, esp8266 or k210")
	cmd.Flags().StringVarP(&opts.Port, "port", "p", "", "Serial port path, or auto")
	cmd.Flags().StringVar(&opts.Firmware, "firmware", "", "Firmware image for reflashing")
	cmd.Flags().StringVar(&opts.Program, "program", "", "Program entry file, uploaded as main.py")
	cmd.Flags().StringArrayVar(&opts.Libs, "lib", nil, "Library directory to scan (repeatable)")
	cmd.Flags().IntVar(&opts.Baud, "baud", 0, "Baud rate (0 = platform default)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Overall run deadline (0 = none)")
	cmd.Flags().BoolVar(&opts.ForceReflash, "force-reflash", false, "Skip discovery and reflash unconditionally")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log every tool invocation")

	return cmd
}
