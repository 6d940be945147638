// Package config defines the provisioning run configuration and its YAML
// loading, defaulting, and validation.
package config

import (
	"fmt"

	"github.com/boardstrap/boardstrap/internal/board"
	"github.com/boardstrap/boardstrap/internal/toolchain"
)

// DefaultFile is the config filename looked up in the working directory
// when none is given.
const DefaultFile = "boardstrap.yaml"

// Config describes one provisioning run. It is immutable once validated.
type Config struct {
	// Chip is the chip family name: esp32, esp8266 or k210.
	Chip string `yaml:"chip"`

	// Port is the serial peripheral path, or "auto" to pick the single
	// connected USB serial device.
	Port string `yaml:"port"`

	// Baud overrides the platform default baud rate when non-zero.
	Baud int `yaml:"baud"`

	// RTSDTR controls whether the transfer tool toggles the RTS/DTR
	// lines to reset the board. Defaults to true; some USB adapters
	// need it off.
	RTSDTR *bool `yaml:"rtsdtr"`

	// BoardID is the k210 board identifier passed to kflash.
	BoardID string `yaml:"board"`

	// SlowMode throttles the k210 firmware write.
	SlowMode bool `yaml:"slow"`

	// Firmware is the path of the firmware image used when a reflash
	// is required.
	Firmware string `yaml:"firmware"`

	// Program is the local path of the program entry file. It is
	// uploaded as main.py.
	Program string `yaml:"program"`

	// Libs are library directories scanned one level deep for
	// additional files to upload.
	Libs []string `yaml:"libs"`

	// Tools overrides the external tool names.
	Tools toolchain.Tools `yaml:"tools"`

	family board.Family
}

// Family returns the parsed chip family. Valid only after Validate.
func (c *Config) Family() board.Family {
	return c.family
}

// ResetControl resolves the RTS/DTR flag, defaulting to true.
func (c *Config) ResetControl() bool {
	if c.RTSDTR == nil {
		return true
	}
	return *c.RTSDTR
}

// EffectiveBaud returns the configured baud rate, or the platform
// default for the chip family when unset.
func (c *Config) EffectiveBaud() int {
	if c.Baud > 0 {
		return c.Baud
	}
	return DefaultBaud(c.family)
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	defaults := toolchain.Defaults()
	if c.Tools.Python == "" {
		c.Tools.Python = defaults.Python
	}
	if c.Tools.Transfer == "" {
		c.Tools.Transfer = defaults.Transfer
	}
	if c.Tools.EspTool == "" {
		c.Tools.EspTool = defaults.EspTool
	}
	if c.Tools.Kflash == "" {
		c.Tools.Kflash = defaults.Kflash
	}
	if c.BoardID == "" {
		c.BoardID = "goE"
	}
	if c.Port == "" {
		c.Port = "auto"
	}
}

// Validate checks the configuration and resolves the chip family.
func (c *Config) Validate() error {
	family, err := board.ParseFamily(c.Chip)
	if err != nil {
		return err
	}
	c.family = family

	if c.Program == "" {
		return fmt.Errorf("program file is required")
	}
	if c.Firmware == "" {
		return fmt.Errorf("firmware image is required")
	}
	if c.Port == "" {
		return fmt.Errorf("serial port is required")
	}
	if c.Baud < 0 {
		return fmt.Errorf("baud rate must be positive, got %d", c.Baud)
	}
	return nil
}
