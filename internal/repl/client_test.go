package repl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardstrap/boardstrap/internal/board"
	"github.com/boardstrap/boardstrap/internal/manifest"
	"github.com/boardstrap/boardstrap/internal/toolchain"
)

// mockRunner records invocations and plays back canned results.
type mockRunner struct {
	invocations []toolchain.Invocation
	result      toolchain.Result
	err         error
}

func (m *mockRunner) Run(_ context.Context, inv toolchain.Invocation) (toolchain.Result, error) {
	m.invocations = append(m.invocations, inv)
	return m.result, m.err
}

func testTools() toolchain.Tools {
	return toolchain.Tools{Python: "python3", Transfer: "mptool"}
}

func TestClient_ListFiles_ArgShape(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{result: toolchain.Result{Output: "main.py\n"}}
	client := NewClient(board.ESP32, "/dev/ttyUSB0", true, testTools(), runner)

	names, err := client.ListFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"main.py"}, names)

	require.Len(t, runner.invocations, 1)
	inv := runner.invocations[0]
	assert.Equal(t, "mptool", inv.Module)
	assert.Equal(t, []string{"/dev/ttyUSB0", "1", "true", "ls"}, inv.Args)
}

func TestClient_ListFiles_K210AbortRetry(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{}
	client := NewClient(board.K210, "/dev/ttyUSB1", false, testTools(), runner)

	_, err := client.ListFiles(context.Background())
	require.NoError(t, err)

	inv := runner.invocations[0]
	assert.Equal(t, []string{"/dev/ttyUSB1", "1", "false", "--abort-retry", "ls"}, inv.Args)
}

func TestClient_FreeSpace_ArgShape(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{result: toolchain.Result{Output: "{'bsize': 4096, 'bfree': 100}\n"}}
	client := NewClient(board.ESP8266, "/dev/ttyUSB0", true, testTools(), runner)

	space, err := client.FreeSpace(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), space.BlockSize)

	inv := runner.invocations[0]
	assert.Equal(t, []string{"/dev/ttyUSB0", "1", "true", "restspace"}, inv.Args)
}

func TestClient_FreeSpace_K210TargetDir(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{result: toolchain.Result{Output: "{'bsize': 1, 'bfree': 500}\n"}}
	client := NewClient(board.K210, "COM3", true, testTools(), runner)

	_, err := client.FreeSpace(context.Background())
	require.NoError(t, err)

	inv := runner.invocations[0]
	assert.Equal(t, []string{"COM3", "1", "true", "--abort-retry", "restspace", "/flash"}, inv.Args)
}

func TestClient_Put_ArgShape(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{}
	client := NewClient(board.ESP32, "/dev/ttyUSB0", true, testTools(), runner)

	err := client.Put(context.Background(), manifest.File{Path: "/tmp/main.py", Name: "main.py"})
	require.NoError(t, err)

	inv := runner.invocations[0]
	assert.Equal(t, []string{"1", "/dev/ttyUSB0", "true", "put", "/tmp/main.py"}, inv.Args)
}

func TestClient_Put_K210AppendsAbortRetry(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{}
	client := NewClient(board.K210, "/dev/ttyUSB0", false, testTools(), runner)

	err := client.Put(context.Background(), manifest.File{Path: "/tmp/lib.py", Name: "lib.py"})
	require.NoError(t, err)

	inv := runner.invocations[0]
	assert.Equal(t, []string{"1", "/dev/ttyUSB0", "false", "put", "/tmp/lib.py", "--abort-retry"}, inv.Args)
}

func TestClient_RunnerFailurePropagates(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{err: &toolchain.ExitError{Module: "mptool", Code: 1}}
	client := NewClient(board.ESP32, "/dev/ttyUSB0", true, testTools(), runner)

	_, err := client.ListFiles(context.Background())
	assert.Error(t, err)

	_, err = client.FreeSpace(context.Background())
	assert.Error(t, err)

	err = client.Put(context.Background(), manifest.File{Name: "x.py"})
	assert.Error(t, err)
}
