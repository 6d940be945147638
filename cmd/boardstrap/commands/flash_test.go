package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash_Flags(t *testing.T) {
	cmd := Flash()
	require.NotNil(t, cmd)
	assert.Equal(t, "flash", cmd.Use)

	for _, name := range []string{
		"config", "chip", "port", "firmware", "program", "lib",
		"baud", "timeout", "force-reflash", "verbose",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}
}

func TestFlash_FlagDefaults(t *testing.T) {
	cmd := Flash()

	assert.Equal(t, "0s", cmd.Flags().Lookup("timeout").DefValue)
	assert.Equal(t, "false", cmd.Flags().Lookup("force-reflash").DefValue)
	assert.Equal(t, "0", cmd.Flags().Lookup("baud").DefValue)
}
