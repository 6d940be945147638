package prerequisites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardstrap/boardstrap/internal/toolchain"
)

func TestForTools(t *testing.T) {
	t.Parallel()

	tools := ForTools(toolchain.Defaults())
	require.Len(t, tools, 4)

	assert.Equal(t, "python3", tools[0].Name)
	assert.False(t, tools[0].Module)
	assert.True(t, tools[0].Required)

	assert.Equal(t, "mptool", tools[1].Name)
	assert.True(t, tools[1].Module)
	assert.True(t, tools[1].Required)

	// Which flasher a run needs depends on the chip family.
	assert.False(t, tools[2].Required)
	assert.False(t, tools[3].Required)
}

func TestCheck_BinaryFound(t *testing.T) {
	t.Parallel()

	results := Check("python3", []Tool{{Name: "sh", Required: true}})
	require.Len(t, results.Results, 1)

	assert.True(t, results.Results[0].Found)
	assert.NotEmpty(t, results.Results[0].Path)
	assert.False(t, results.HasErrors())
	assert.NoError(t, results.Error())
}

func TestCheck_RequiredBinaryMissing(t *testing.T) {
	t.Parallel()

	results := Check("python3", []Tool{{
		Name:        "definitely-not-a-real-binary",
		Required:    true,
		InstallHint: "install it",
	}})

	assert.True(t, results.HasErrors())
	err := results.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-a-real-binary")
	assert.Contains(t, err.Error(), "install it")
}

func TestCheck_OptionalMissingIsNotAnError(t *testing.T) {
	t.Parallel()

	results := Check("python3", []Tool{{Name: "definitely-not-a-real-binary"}})

	assert.Len(t, results.Missing, 1)
	assert.False(t, results.HasErrors())
	assert.NoError(t, results.Error())
}

func TestCheck_ModuleWithMissingInterpreter(t *testing.T) {
	t.Parallel()

	// A module cannot be importable when the interpreter itself is
	// absent.
	results := Check("definitely-not-a-real-python", []Tool{{Name: "esptool", Module: true}})
	require.Len(t, results.Results, 1)
	assert.False(t, results.Results[0].Found)
}
