package provisioning

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Observer receives the human-readable narration of a provisioning run.
// Decisions are narrated before they take effect so the operator
// understands why a reflash was triggered.
type Observer interface {
	// Printf appends one formatted progress line.
	Printf(format string, v ...interface{})

	// Event emits a structured provisioning event.
	Event(event Event)
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType
	Step      string
	File      string
	Message   string
	Timestamp time.Time
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventStepStarted indicates a provisioning step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a provisioning step completed.
	EventStepCompleted EventType = "step.completed"
	// EventStepFailed indicates a provisioning step failed.
	EventStepFailed EventType = "step.failed"

	// EventFallbackReflash indicates a discovery failure routed the
	// run to an unconditional reflash.
	EventFallbackReflash EventType = "fallback.reflash"

	// EventFileWritten indicates a manifest file was uploaded.
	EventFileWritten EventType = "file.written"
	// EventFileSkipped indicates a library file was already present.
	EventFileSkipped EventType = "file.skipped"

	// EventRunCompleted indicates the whole run finished.
	EventRunCompleted EventType = "run.completed"
)

// ConsoleObserver writes narration lines to an append-only text sink.
type ConsoleObserver struct {
	out io.Writer
}

// NewConsoleObserver returns an observer writing to out.
func NewConsoleObserver(out io.Writer) *ConsoleObserver {
	return &ConsoleObserver{out: out}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	fmt.Fprintf(o.out, format+"\n", v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	var parts []string
	parts = append(parts, string(event.Type))
	if event.Step != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Step))
	}
	if event.File != "" {
		parts = append(parts, event.File)
	}
	if event.Message != "" {
		parts = append(parts, event.Message)
	}
	fmt.Fprintln(o.out, strings.Join(parts, " "))
}

// NopObserver discards all narration.
type NopObserver struct{}

func (NopObserver) Printf(string, ...interface{}) {}
func (NopObserver) Event(Event)                   {}
