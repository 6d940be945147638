// Package flash writes firmware images to the board. Each chip family
// has its own strategy: esp boards take a separate erase pass before the
// write, k210 boards are written in a single pass.
package flash

import (
	"context"
	"fmt"

	"github.com/boardstrap/boardstrap/internal/board"
	"github.com/boardstrap/boardstrap/internal/toolchain"
)

// Flasher erases (where applicable) and writes a firmware image. A
// successful Flash leaves the board with an empty filesystem.
type Flasher interface {
	Flash(ctx context.Context) error
}

// Options carries everything a strategy needs to reach the board.
type Options struct {
	Port     string
	Baud     int
	Firmware string

	// Board is the k210 board identifier (e.g. goE).
	Board string

	// SlowMode throttles the k210 write for boards with flaky serial
	// adapters.
	SlowMode bool
}

// New returns the flashing strategy for the chip family.
func New(family board.Family, opts Options, tools toolchain.Tools, runner toolchain.Runner) (Flasher, error) {
	switch family {
	case board.ESP32, board.ESP8266:
		return &espFlasher{family: family, opts: opts, module: tools.EspTool, runner: runner}, nil
	case board.K210:
		return &k210Flasher{opts: opts, module: tools.Kflash, runner: runner}, nil
	default:
		return nil, fmt.Errorf("%w: %q", board.ErrUnknownFamily, family)
	}
}
