package provisioning

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleObserver_Printf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	obs := NewConsoleObserver(&buf)
	obs.Printf("Writing %s...", "main.py")

	assert.Equal(t, "Writing main.py...\n", buf.String())
}

func TestConsoleObserver_Event(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	obs := NewConsoleObserver(&buf)
	obs.Event(Event{Type: EventFileSkipped, Step: "writing", File: "a.py"})

	assert.Equal(t, "file.skipped [writing] a.py\n", buf.String())
}

func TestNopObserver(t *testing.T) {
	t.Parallel()

	// Just must not panic.
	NopObserver{}.Printf("x %d", 1)
	NopObserver{}.Event(Event{Type: EventRunCompleted})
}
