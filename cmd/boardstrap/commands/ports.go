package commands

import (
	"github.com/spf13/cobra"

	"github.com/boardstrap/boardstrap/cmd/boardstrap/handlers"
)

// Ports returns the command that lists serial ports.
func Ports() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports",
		Long: `List the host's serial ports with their USB metadata.

USB serial devices are the likely board ports; "boardstrap flash --port
auto" picks one automatically when exactly one is connected.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Ports()
		},
	}
}
