package toolchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	tools := Defaults()
	assert.Equal(t, "python3", tools.Python)
	assert.Equal(t, "mptool", tools.Transfer)
	assert.Equal(t, "esptool", tools.EspTool)
	assert.Equal(t, "kflash", tools.Kflash)
}

func TestTools_Command(t *testing.T) {
	t.Parallel()

	tools := Tools{Python: "python3"}
	bin, args := tools.Command(Invocation{
		Module: "esptool",
		Args:   []string{"--chip", "esp32", "erase_flash"},
	})

	assert.Equal(t, "python3", bin)
	assert.Equal(t, []string{"-m", "esptool", "--chip", "esp32", "erase_flash"}, args)
}
