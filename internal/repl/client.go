// Package repl drives the board's raw-REPL file protocol through the
// external file-transfer tool: listing files, querying free space, and
// uploading files.
package repl

import (
	"context"
	"fmt"
	"strconv"

	"github.com/boardstrap/boardstrap/internal/board"
	"github.com/boardstrap/boardstrap/internal/manifest"
	"github.com/boardstrap/boardstrap/internal/toolchain"
)

const (
	// startupDelay is the fixed settle time, in seconds, the transfer
	// tool waits after opening the port before entering the raw REPL.
	startupDelay = "1"

	// abortRetryFlag makes the transfer tool retry the raw-REPL abort
	// sequence. K210 boards need it to interrupt a running program.
	abortRetryFlag = "--abort-retry"

	// k210FlashDir is the mount point of the k210 flash filesystem,
	// passed explicitly to space queries on that family.
	k210FlashDir = "/flash"
)

// Client talks to one board over its serial peripheral. All calls are
// sequential; the peripheral is exclusively owned for the duration of a
// provisioning run.
type Client struct {
	family board.Family
	port   string
	rtsdtr bool
	module string
	runner toolchain.Runner
}

// NewClient returns a client for the given board and transfer tool.
func NewClient(family board.Family, port string, rtsdtr bool, tools toolchain.Tools, runner toolchain.Runner) *Client {
	return &Client{
		family: family,
		port:   port,
		rtsdtr: rtsdtr,
		module: tools.Transfer,
		runner: runner,
	}
}

// ListFiles asks the board for its current directory listing.
func (c *Client) ListFiles(ctx context.Context) ([]string, error) {
	args := c.commonArgs()
	args = append(args, "ls")

	res, err := c.runner.Run(ctx, toolchain.Invocation{Module: c.module, Args: args})
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return parseListing(res.Output), nil
}

// FreeSpace asks the board for its block size and free-block count.
func (c *Client) FreeSpace(ctx context.Context) (board.SpaceState, error) {
	args := c.commonArgs()
	args = append(args, "restspace")
	if c.family == board.K210 {
		args = append(args, k210FlashDir)
	}

	res, err := c.runner.Run(ctx, toolchain.Invocation{Module: c.module, Args: args})
	if err != nil {
		return board.SpaceState{}, fmt.Errorf("query free space: %w", err)
	}
	return parseSpace(res.Output)
}

// Put uploads one manifest file to the board.
func (c *Client) Put(ctx context.Context, f manifest.File) error {
	// The put command takes the settle delay ahead of the port, unlike
	// ls and restspace.
	args := []string{startupDelay, c.port, formatBool(c.rtsdtr), "put", f.Path}
	if c.family == board.K210 {
		args = append(args, abortRetryFlag)
	}

	if _, err := c.runner.Run(ctx, toolchain.Invocation{Module: c.module, Args: args}); err != nil {
		return fmt.Errorf("write %s: %w", f.Name, err)
	}
	return nil
}

// commonArgs builds the shared prefix of the ls and restspace
// invocations: port, settle delay, reset-control flag, and for k210 the
// abort-retry flag ahead of the command.
func (c *Client) commonArgs() []string {
	args := []string{c.port, startupDelay, formatBool(c.rtsdtr)}
	if c.family == board.K210 {
		args = append(args, abortRetryFlag)
	}
	return args
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}
