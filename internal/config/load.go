package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse reads a configuration file without applying defaults or
// validating. Callers that layer flag overrides on top validate the
// merged result themselves.
func Parse(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	return &cfg, nil
}

// Load reads and parses the configuration from a YAML file, applies
// defaults, and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := Parse(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DefaultYAML is the commented starter configuration written by the init
// command.
const DefaultYAML = `# boardstrap configuration
#
# Chip family of the target board: esp32, esp8266 or k210.
chip: esp32

# Serial peripheral path, e.g. /dev/ttyUSB0 or COM3.
# "auto" picks the single connected USB serial device.
port: auto

# Firmware image written when a reflash is required.
firmware: firmware.bin

# Program entry file, uploaded to the board as main.py.
program: main.py

# Library directories, scanned one level deep for extra files.
libs: []

# Baud rate override. Leave at 0 for the platform default.
baud: 0

# Toggle RTS/DTR to reset the board when opening the port.
rtsdtr: true

# k210 only: board identifier and slow write mode.
board: goE
slow: false
`
