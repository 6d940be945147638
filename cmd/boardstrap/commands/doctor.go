package commands

import (
	"github.com/spf13/cobra"

	"github.com/boardstrap/boardstrap/cmd/boardstrap/handlers"
)

// Doctor returns the command that checks the external toolchain.
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the external tools are installed",
		Long: `Check that the external tools boardstrap drives are installed:
the Python interpreter, the file-transfer module, and the firmware
flashers.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Doctor(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: boardstrap.yaml)")

	return cmd
}
