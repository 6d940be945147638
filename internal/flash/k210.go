package flash

import (
	"context"
	"fmt"
	"strconv"

	"github.com/boardstrap/boardstrap/internal/toolchain"
)

// k210Flasher implements the single-pass strategy: kflash erases and
// writes in one invocation.
type k210Flasher struct {
	opts   Options
	module string
	runner toolchain.Runner
}

func (f *k210Flasher) Flash(ctx context.Context) error {
	args := []string{
		"-p", f.opts.Port,
		"-b", strconv.Itoa(f.opts.Baud),
		"-B", f.opts.Board,
	}
	if f.opts.SlowMode {
		args = append(args, "-S")
	}
	args = append(args, f.opts.Firmware)

	if _, err := f.runner.Run(ctx, toolchain.Invocation{Module: f.module, Args: args}); err != nil {
		return fmt.Errorf("write k210 firmware: %w", err)
	}
	return nil
}
