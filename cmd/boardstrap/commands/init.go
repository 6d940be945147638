package commands

import (
	"github.com/spf13/cobra"

	"github.com/boardstrap/boardstrap/cmd/boardstrap/handlers"
)

// Init returns the command that writes a starter configuration file.
func Init() *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter boardstrap.yaml",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(output, force)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "boardstrap.yaml", "Output path for the configuration file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
