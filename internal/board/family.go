// Package board models the target microcontroller: its chip family, its
// storage accounting, and the last known contents of its filesystem.
package board

import (
	"fmt"
	"strings"
)

// Family identifies the chip family of the target board. It selects the
// flashing strategy, the space accounting model, and the shape of the
// file-transfer tool invocations.
type Family string

const (
	ESP32   Family = "esp32"
	ESP8266 Family = "esp8266"
	K210    Family = "k210"
)

// ErrUnknownFamily is returned when a configuration names a chip family
// that is not supported.
var ErrUnknownFamily = fmt.Errorf("unknown chip family")

// ParseFamily parses a chip family name as it appears in configuration.
func ParseFamily(s string) (Family, error) {
	switch Family(strings.ToLower(strings.TrimSpace(s))) {
	case ESP32:
		return ESP32, nil
	case ESP8266:
		return ESP8266, nil
	case K210:
		return K210, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFamily, s)
	}
}

func (f Family) String() string { return string(f) }

// BlockBased reports whether the family's filesystem allocates storage in
// whole blocks. K210 boards report free space densely, in bytes.
func (f Family) BlockBased() bool {
	return f == ESP32 || f == ESP8266
}
