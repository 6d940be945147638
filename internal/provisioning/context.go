package provisioning

import (
	"context"

	"go.uber.org/zap"

	"github.com/boardstrap/boardstrap/internal/board"
	"github.com/boardstrap/boardstrap/internal/config"
	"github.com/boardstrap/boardstrap/internal/flash"
	"github.com/boardstrap/boardstrap/internal/manifest"
)

// BoardClient is the raw-REPL discovery and transfer surface the
// orchestrator drives. Implemented by repl.Client.
type BoardClient interface {
	// ListFiles returns the board's current directory listing.
	ListFiles(ctx context.Context) ([]string, error)

	// FreeSpace returns the board's block size and free-block count.
	FreeSpace(ctx context.Context) (board.SpaceState, error)

	// Put uploads one manifest file.
	Put(ctx context.Context, f manifest.File) error
}

// Context wraps the dependencies and state of one provisioning run.
type Context struct {
	context.Context

	Config   *config.Config
	Manifest *manifest.Manifest
	Board    BoardClient
	Flasher  flash.Flasher
	Observer Observer
	Log      *zap.Logger
}

// NewContext assembles a run context. A nil observer or logger is
// replaced with a no-op one.
func NewContext(ctx context.Context, cfg *config.Config, m *manifest.Manifest, client BoardClient, flasher flash.Flasher, obs Observer, log *zap.Logger) *Context {
	if obs == nil {
		obs = NopObserver{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Manifest: m,
		Board:    client,
		Flasher:  flasher,
		Observer: obs,
		Log:      log,
	}
}

// RunState is the orchestrator-local device state. It is passed
// explicitly through the state machine rather than held as ambient
// fields so tests can inject arbitrary starting states.
type RunState struct {
	// Existing is the last known directory listing; cleared whenever
	// the filesystem is known to have been erased.
	Existing *board.ExistingFiles

	// Space is the last reported storage geometry; the zero value
	// means unknown.
	Space board.SpaceState
}

// NewRunState returns the initial state: nothing known about the board.
func NewRunState() *RunState {
	return &RunState{Existing: board.NewExistingFiles()}
}

// invalidate discards everything known about the board's filesystem.
// Called before a reflash.
func (s *RunState) invalidate() {
	s.Existing.Reset()
	s.Space = board.SpaceState{}
}
