package handlers

import (
	"fmt"

	"github.com/boardstrap/boardstrap/internal/config"
	"github.com/boardstrap/boardstrap/internal/toolchain"
	"github.com/boardstrap/boardstrap/internal/ui"
	"github.com/boardstrap/boardstrap/internal/util/prerequisites"
)

// checkTools runs the prerequisite checks - replaced in tests.
var checkTools = prerequisites.Check

// Doctor checks that the external toolchain is installed. It honors tool
// name overrides from the configuration file when one is present.
func Doctor(configPath string) error {
	tools := toolchain.Defaults()

	path := configPath
	if path == "" && fileExists(config.DefaultFile) {
		path = config.DefaultFile
	}
	if path != "" {
		cfg, err := parseConfigFile(path)
		if err != nil {
			return err
		}
		cfg.ApplyDefaults()
		tools = cfg.Tools
	}

	results := checkTools(tools.Python, prerequisites.ForTools(tools))

	fmt.Println(ui.Title("External tools"))
	for _, r := range results.Results {
		mark := ui.OK()
		if !r.Found {
			mark = ui.Warn()
			if r.Tool.Required {
				mark = ui.Fail()
			}
		}

		line := fmt.Sprintf("  %s %s", mark, r.Tool.Name)
		if r.Version != "" {
			line += " " + ui.Dim(r.Version)
		}
		fmt.Println(line)

		if !r.Found {
			fmt.Printf("      %s\n", ui.Dim(r.Tool.Description+" - "+r.Tool.InstallHint))
		}
	}

	return results.Error()
}
