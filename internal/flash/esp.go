package flash

import (
	"context"
	"fmt"
	"strconv"

	"github.com/boardstrap/boardstrap/internal/board"
	"github.com/boardstrap/boardstrap/internal/toolchain"
)

// espFlasher implements the block-erase strategy for esp32 and esp8266
// boards: a full flash erase followed by a firmware write. Both steps
// must exit zero; the erase is what guarantees the filesystem is empty
// afterwards.
type espFlasher struct {
	family board.Family
	opts   Options
	module string
	runner toolchain.Runner
}

func (f *espFlasher) Flash(ctx context.Context) error {
	if _, err := f.runner.Run(ctx, f.eraseInvocation()); err != nil {
		return fmt.Errorf("erase %s flash: %w", f.family, err)
	}
	if _, err := f.runner.Run(ctx, f.writeInvocation()); err != nil {
		return fmt.Errorf("write %s firmware: %w", f.family, err)
	}
	return nil
}

func (f *espFlasher) eraseInvocation() toolchain.Invocation {
	return toolchain.Invocation{
		Module: f.module,
		Args: []string{
			"--chip", f.family.String(),
			"--port", f.opts.Port,
			"erase_flash",
		},
	}
}

func (f *espFlasher) writeInvocation() toolchain.Invocation {
	args := []string{
		"--chip", f.family.String(),
		"--port", f.opts.Port,
		"--baud", strconv.Itoa(f.opts.Baud),
		"write_flash",
	}
	// esp32 firmware lives at 0x1000; esp8266 starts at 0 and needs
	// the flash size probed.
	if f.family == board.ESP32 {
		args = append(args, "0x1000")
	} else {
		args = append(args, "--flash_size=detect", "0")
	}
	args = append(args, f.opts.Firmware)

	return toolchain.Invocation{Module: f.module, Args: args}
}
