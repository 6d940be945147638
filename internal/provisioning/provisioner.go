package provisioning

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/boardstrap/boardstrap/internal/board"
)

// State names a position in the provisioning state machine.
type State string

const (
	StateDiscovering   State = "discovering"
	StateCheckingSpace State = "checking-space"
	StateReflashing    State = "reflashing"
	StateWriting       State = "writing"
	StateDone          State = "done"
)

// Provisioner walks the state machine for one run.
type Provisioner struct {
	// ForceReflash skips discovery and reflashes unconditionally.
	ForceReflash bool
}

// New returns a Provisioner with default behavior.
func New() *Provisioner {
	return &Provisioner{}
}

// Run executes a full provisioning run against a board in an unknown
// state. It returns nil once every manifest file is on the board.
func (p *Provisioner) Run(rc *Context) error {
	start := StateDiscovering
	if p.ForceReflash {
		rc.Observer.Printf("Forced reflash requested; skipping discovery")
		start = StateReflashing
	}
	return p.RunFrom(rc, NewRunState(), start)
}

// RunFrom executes the state machine from an explicit state. Exposed so
// tests can start a run with injected device state.
func (p *Provisioner) RunFrom(rc *Context, st *RunState, state State) error {
	for state != StateDone {
		rc.Observer.Event(Event{Type: EventStepStarted, Step: string(state)})
		rc.Log.Debug("entering state", zap.String("state", string(state)))

		next, err := p.step(rc, st, state)
		if err != nil {
			rc.Observer.Event(Event{Type: EventStepFailed, Step: string(state), Message: err.Error()})
			return err
		}

		rc.Observer.Event(Event{Type: EventStepCompleted, Step: string(state)})
		state = next
	}

	rc.Observer.Event(Event{Type: EventRunCompleted, Message: "board provisioned"})
	return nil
}

// step performs one state's work and returns the next state. A non-nil
// error is fatal to the run; recoverable discovery failures are handled
// here by routing to StateReflashing instead.
func (p *Provisioner) step(rc *Context, st *RunState, state State) (State, error) {
	switch state {
	case StateDiscovering:
		return p.discover(rc, st), nil
	case StateCheckingSpace:
		return p.checkSpace(rc, st), nil
	case StateReflashing:
		if err := p.reflash(rc, st); err != nil {
			return "", err
		}
		return StateWriting, nil
	case StateWriting:
		if err := p.writeFiles(rc, st); err != nil {
			return "", err
		}
		return StateDone, nil
	default:
		return "", fmt.Errorf("invalid provisioning state %q", state)
	}
}

// discover asks the board for its file listing. Any failure means the
// board is not in a known-good state; the only recovery is a full
// reflash.
func (p *Provisioner) discover(rc *Context, st *RunState) State {
	rc.Observer.Printf("Reading the board's file listing...")

	names, err := rc.Board.ListFiles(rc)
	if err != nil {
		p.fallback(rc, st, err)
		return StateReflashing
	}

	st.Existing.Replace(names)
	rc.Observer.Printf("Found %d file(s) on the board", st.Existing.Len())
	return StateCheckingSpace
}

// checkSpace queries the board's free space and decides whether the
// manifest fits without a reflash.
func (p *Provisioner) checkSpace(rc *Context, st *RunState) State {
	rc.Observer.Printf("Checking free space on the board...")

	space, err := rc.Board.FreeSpace(rc)
	if err != nil {
		p.fallback(rc, st, err)
		return StateReflashing
	}

	st.Space = space
	rc.Log.Debug("space state",
		zap.Uint64("block_size", space.BlockSize),
		zap.Uint64("free_blocks", space.FreeBlocks),
	)

	if board.ShouldReflash(rc.Manifest.Files, st.Existing, space, rc.Config.Family()) {
		rc.Observer.Printf("Not enough free space for the new files; the firmware will be reflashed")
		return StateReflashing
	}
	return StateWriting
}

// fallback narrates a discovery failure and prepares the state for the
// unconditional reflash that follows it.
func (p *Provisioner) fallback(rc *Context, st *RunState, err error) {
	rc.Observer.Printf("Could not talk to the board (%v); the firmware will be reflashed", err)
	rc.Observer.Event(Event{Type: EventFallbackReflash, Message: err.Error()})
	st.invalidate()
}

// reflash erases and rewrites the firmware. The filesystem state is
// invalidated first: after this, nothing previously listed on the board
// still exists.
func (p *Provisioner) reflash(rc *Context, st *RunState) error {
	st.invalidate()
	rc.Observer.Printf("Flashing %s firmware from %s...", rc.Config.Family(), rc.Config.Firmware)

	if err := rc.Flasher.Flash(rc); err != nil {
		return fmt.Errorf("flash firmware: %w", err)
	}

	rc.Observer.Printf("Firmware flashed")
	return nil
}

// writeFiles uploads the manifest in order. The program entry file is
// always written; library files already on the board are skipped. The
// first failed write ends the run.
func (p *Provisioner) writeFiles(rc *Context, st *RunState) error {
	for _, f := range rc.Manifest.Files {
		if !f.Program && st.Existing.Present(f.Name) {
			rc.Observer.Printf("Skipping %s (already on the board)", f.Name)
			rc.Observer.Event(Event{Type: EventFileSkipped, Step: string(StateWriting), File: f.Name})
			continue
		}

		rc.Observer.Printf("Writing %s...", f.Name)
		if err := rc.Board.Put(rc, f); err != nil {
			return err
		}
		rc.Observer.Event(Event{Type: EventFileWritten, Step: string(StateWriting), File: f.Name})
	}
	return nil
}
