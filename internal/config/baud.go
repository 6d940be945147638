package config

import (
	"runtime"

	"github.com/boardstrap/boardstrap/internal/board"
)

// Baud rates used when the configuration does not name one. Windows
// serial drivers are unreliable above 115200 with the common USB-UART
// bridges, so esp boards get a lower default there.
const (
	espBaud        = 460800
	espBaudWindows = 115200
	k210Baud       = 1500000
)

// DefaultBaud resolves the baud rate for a chip family on the current
// host platform.
func DefaultBaud(family board.Family) int {
	if family == board.K210 {
		return k210Baud
	}
	if runtime.GOOS == "windows" {
		return espBaudWindows
	}
	return espBaud
}
