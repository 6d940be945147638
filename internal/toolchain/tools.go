// Package toolchain launches the external tools that actually touch the
// board: the firmware flashers and the raw-REPL file-transfer tool. All
// of them are Python modules invoked through the configured interpreter;
// this package owns the invocation shape and the process lifecycle.
package toolchain

// Tools names the external programs used during provisioning. The zero
// value is not usable; call Defaults or fill every field.
type Tools struct {
	// Python is the interpreter binary used to run every tool module.
	Python string `yaml:"python"`

	// Transfer is the module implementing the raw-REPL file protocol
	// (ls / restspace / put).
	Transfer string `yaml:"transfer"`

	// EspTool is the module that erases and writes esp32/esp8266
	// firmware.
	EspTool string `yaml:"esptool"`

	// Kflash is the module that writes k210 firmware.
	Kflash string `yaml:"kflash"`
}

// Defaults returns the standard tool names, resolved through PATH.
func Defaults() Tools {
	return Tools{
		Python:   "python3",
		Transfer: "mptool",
		EspTool:  "esptool",
		Kflash:   "kflash",
	}
}

// Invocation is one external tool launch: a Python module plus its
// ordered argument list.
type Invocation struct {
	Module string
	Args   []string
}

// Command returns the binary and full argument vector for the
// invocation.
func (t Tools) Command(inv Invocation) (string, []string) {
	args := make([]string, 0, len(inv.Args)+2)
	args = append(args, "-m", inv.Module)
	args = append(args, inv.Args...)
	return t.Python, args
}
