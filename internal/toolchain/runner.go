package toolchain

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of a completed tool invocation.
type Result struct {
	// Output is the tool's full standard output, line-normalized.
	Output string

	// ExitCode is the tool's exit status. 0 on success.
	ExitCode int
}

// Runner executes external tool invocations. The concrete runner shells
// out; tests substitute a mock.
type Runner interface {
	// Run launches the invocation and blocks until the process exits.
	// Standard output is forwarded live to the sink as it arrives and
	// also returned in the Result. A nil error means exit status 0; a
	// non-zero exit yields an *ExitError, a failure to start yields an
	// error wrapping ErrLaunch.
	Run(ctx context.Context, inv Invocation) (Result, error)
}

// ExecRunner runs tools as real subprocesses. Only one invocation may
// target the serial peripheral at a time; callers are sequential by
// construction, so the runner takes no locks.
type ExecRunner struct {
	Tools Tools

	// Sink receives the live output of every tool, both stdout and
	// stderr. This is the operator's only visibility into multi-second
	// flashing progress. May be nil.
	Sink io.Writer

	// Log receives structured diagnostics about each invocation.
	Log *zap.Logger
}

// NewExecRunner returns a runner for the given tools, forwarding output
// to sink.
func NewExecRunner(tools Tools, sink io.Writer, log *zap.Logger) *ExecRunner {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExecRunner{Tools: tools, Sink: sink, Log: log}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) (Result, error) {
	bin, args := r.Tools.Command(inv)
	start := time.Now()
	r.Log.Debug("running tool",
		zap.String("module", inv.Module),
		zap.Strings("args", inv.Args),
	)

	// #nosec G204 -- tool names come from validated configuration
	cmd := exec.CommandContext(ctx, bin, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrLaunch, inv.Module, err)
	}
	if r.Sink != nil {
		cmd.Stderr = r.Sink
	}

	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("%s interrupted: %w", inv.Module, ctx.Err())
		}
		return Result{}, fmt.Errorf("%w: %s: %v", ErrLaunch, inv.Module, err)
	}

	var captured bytes.Buffer
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		captured.WriteString(line)
		captured.WriteByte('\n')
		if r.Sink != nil {
			fmt.Fprintln(r.Sink, line)
		}
	}

	waitErr := cmd.Wait()
	res := Result{Output: captured.String(), ExitCode: cmd.ProcessState.ExitCode()}

	r.Log.Debug("tool finished",
		zap.String("module", inv.Module),
		zap.Int("exit", res.ExitCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if waitErr != nil {
		if ctx.Err() != nil {
			return res, fmt.Errorf("%s interrupted: %w", inv.Module, ctx.Err())
		}
		if _, ok := waitErr.(*exec.ExitError); ok {
			return res, &ExitError{Module: inv.Module, Code: res.ExitCode}
		}
		return res, fmt.Errorf("%w: %s: %v", ErrLaunch, inv.Module, waitErr)
	}
	return res, nil
}
