package handlers

import (
	"fmt"
	"os"

	"github.com/boardstrap/boardstrap/internal/config"
)

// writeFile writes data to a file - replaced in tests.
var writeFile = os.WriteFile

// Init writes a commented starter configuration file.
func Init(outputPath string, force bool) error {
	if fileExists(outputPath) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", outputPath)
	}

	if err := writeFile(outputPath, []byte(config.DefaultYAML), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", outputPath)
	fmt.Println("Edit it to match your board, then run: boardstrap flash")
	return nil
}
