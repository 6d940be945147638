// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/boardstrap/boardstrap/internal/config"
	"github.com/boardstrap/boardstrap/internal/flash"
	"github.com/boardstrap/boardstrap/internal/logging"
	"github.com/boardstrap/boardstrap/internal/manifest"
	"github.com/boardstrap/boardstrap/internal/provisioning"
	"github.com/boardstrap/boardstrap/internal/repl"
	"github.com/boardstrap/boardstrap/internal/serialport"
	"github.com/boardstrap/boardstrap/internal/toolchain"
	"github.com/boardstrap/boardstrap/internal/ui"
)

// FlashOptions carries the flash command's flag values. Non-zero fields
// override the corresponding configuration file values.
type FlashOptions struct {
	ConfigPath   string
	Chip         string
	Port         string
	Firmware     string
	Program      string
	Libs         []string
	Baud         int
	Timeout      time.Duration
	ForceReflash bool
	Verbose      bool
}

// Factory function variables - can be replaced in tests for dependency
// injection.
var (
	// parseConfigFile parses a config file without validating, so flag
	// overrides can fill missing required fields.
	parseConfigFile = config.Parse

	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// detectPort resolves the serial peripheral path.
	detectPort = serialport.Detect

	// waitForPort waits for a configured port to be present.
	waitForPort = serialport.Wait

	// buildManifest builds the upload manifest.
	buildManifest = manifest.Build

	// newRunner creates the external tool runner.
	newRunner = func(tools toolchain.Tools, sink io.Writer, log *zap.Logger) toolchain.Runner {
		return toolchain.NewExecRunner(tools, sink, log)
	}

	// newLogger creates the diagnostic logger.
	newLogger = logging.New

	// runProvisioner executes the provisioning state machine.
	runProvisioner = func(p *provisioning.Provisioner, rc *provisioning.Context) error {
		return p.Run(rc)
	}
)

// Flash provisions a board: it resolves configuration, builds the upload
// manifest, and runs the provisioning state machine against the board's
// serial peripheral.
func Flash(ctx context.Context, opts FlashOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	log := newLogger(opts.Verbose)
	defer func() { _ = log.Sync() }()

	m, err := buildManifest(cfg.Program, cfg.Libs)
	if err != nil {
		return fmt.Errorf("build manifest: %w", err)
	}

	port, err := detectPort(cfg.Port)
	if err != nil {
		return err
	}
	if cfg.Port != "auto" {
		// A concrete port may still be enumerating after a replug.
		if err := waitForPort(ctx, port, 5*time.Second); err != nil {
			return fmt.Errorf("serial port %s: %w", port, err)
		}
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	sink := os.Stdout
	runner := newRunner(cfg.Tools, sink, log)
	client := repl.NewClient(cfg.Family(), port, cfg.ResetControl(), cfg.Tools, runner)

	flasher, err := flash.New(cfg.Family(), flash.Options{
		Port:     port,
		Baud:     cfg.EffectiveBaud(),
		Firmware: cfg.Firmware,
		Board:    cfg.BoardID,
		SlowMode: cfg.SlowMode,
	}, cfg.Tools, runner)
	if err != nil {
		return err
	}

	rc := provisioning.NewContext(ctx, cfg, m, client, flasher,
		provisioning.NewConsoleObserver(sink), log)

	prov := provisioning.New()
	prov.ForceReflash = opts.ForceReflash

	if err := runProvisioner(prov, rc); err != nil {
		fmt.Printf("%s provisioning failed: %v\n", ui.Fail(), err)
		return err
	}

	fmt.Printf("%s board provisioned with %d file(s)\n", ui.OK(), len(m.Files))
	return nil
}

// resolveConfig loads the configuration file (when present) and layers
// the command's flags on top.
func resolveConfig(opts FlashOptions) (*config.Config, error) {
	cfg := &config.Config{}

	path := opts.ConfigPath
	if path == "" && fileExists(config.DefaultFile) {
		path = config.DefaultFile
	}
	if path != "" {
		loaded, err := parseConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.Chip != "" {
		cfg.Chip = opts.Chip
	}
	if opts.Port != "" {
		cfg.Port = opts.Port
	}
	if opts.Firmware != "" {
		cfg.Firmware = opts.Firmware
	}
	if opts.Program != "" {
		cfg.Program = opts.Program
	}
	if len(opts.Libs) > 0 {
		cfg.Libs = opts.Libs
	}
	if opts.Baud > 0 {
		cfg.Baud = opts.Baud
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
