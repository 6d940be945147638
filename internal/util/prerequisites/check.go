// Package prerequisites checks that the external tools boardstrap drives
// are actually installed: the Python interpreter and the flashing and
// file-transfer modules.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/boardstrap/boardstrap/internal/toolchain"
)

// Tool is one external dependency to check.
type Tool struct {
	// Name is the binary name, or the Python module name when Module
	// is set.
	Name string

	// Module marks Python modules, probed via `python -m <name>`.
	Module bool

	// Required indicates whether provisioning can work without it.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallHint tells the operator how to get it.
	InstallHint string
}

// ForTools returns the checks for a configured toolchain. The flasher
// modules are both listed: which one a run needs depends on the chip
// family, so neither is required on its own.
func ForTools(t toolchain.Tools) []Tool {
	return []Tool{
		{
			Name:        t.Python,
			Required:    true,
			Description: "Runs every flashing and file-transfer tool",
			InstallHint: "https://www.python.org/downloads/",
		},
		{
			Name:        t.Transfer,
			Module:      true,
			Required:    true,
			Description: "Raw-REPL file listing and upload",
			InstallHint: fmt.Sprintf("pip install %s", t.Transfer),
		},
		{
			Name:        t.EspTool,
			Module:      true,
			Description: "esp32/esp8266 firmware erase and write",
			InstallHint: fmt.Sprintf("pip install %s", t.EspTool),
		},
		{
			Name:        t.Kflash,
			Module:      true,
			Description: "k210 firmware write",
			InstallHint: fmt.Sprintf("pip install %s", t.Kflash),
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors reports whether any required tool is missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error naming the missing required tools, or nil.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallHint))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the given tools are available, using python to
// probe module tools.
func Check(python string, tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		if tool.Module {
			if probeModule(python, tool.Name) {
				result.Found = true
			} else {
				results.Missing = append(results.Missing, tool)
			}
		} else if path, err := exec.LookPath(tool.Name); err == nil {
			result.Found = true
			result.Path = path
			result.Version = binaryVersion(tool.Name)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// probeModule reports whether a Python module is importable.
func probeModule(python, module string) bool {
	// #nosec G204 - names come from validated configuration
	cmd := exec.Command(python, "-c", fmt.Sprintf("import importlib.util, sys; sys.exit(0 if importlib.util.find_spec(%q) else 1)", module))
	return cmd.Run() == nil
}

// binaryVersion attempts to get a binary's version line, best effort.
func binaryVersion(name string) string {
	// #nosec G204 - name comes from validated configuration
	output, err := exec.Command(name, "--version").Output()
	if err != nil {
		return ""
	}
	lines := strings.Split(string(output), "\n")
	return strings.TrimSpace(lines[0])
}
