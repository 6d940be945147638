package serialport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withPorts(t *testing.T, ports []Port, err error) {
	t.Helper()
	orig := list
	list = func() ([]Port, error) { return ports, err }
	t.Cleanup(func() { list = orig })
}

func TestDetect_ConcretePathPassesThrough(t *testing.T) {
	port, err := Detect("/dev/ttyUSB3")
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB3", port)
}

func TestDetect_AutoSingleUSB(t *testing.T) {
	withPorts(t, []Port{
		{Path: "/dev/ttyS0"},
		{Path: "/dev/ttyUSB0", USB: true, Product: "CP2102"},
	}, nil)

	port, err := Detect("auto")
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", port)
}

func TestDetect_AutoNoUSB(t *testing.T) {
	withPorts(t, []Port{{Path: "/dev/ttyS0"}}, nil)

	_, err := Detect("auto")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPort)
}

func TestDetect_AutoAmbiguous(t *testing.T) {
	withPorts(t, []Port{
		{Path: "/dev/ttyUSB0", USB: true},
		{Path: "/dev/ttyUSB1", USB: true},
	}, nil)

	_, err := Detect("auto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/dev/ttyUSB0")
	assert.Contains(t, err.Error(), "/dev/ttyUSB1")
}

func TestDetect_EmptyMeansAuto(t *testing.T) {
	withPorts(t, []Port{{Path: "COM3", USB: true}}, nil)

	port, err := Detect("")
	require.NoError(t, err)
	assert.Equal(t, "COM3", port)
}

func TestWait_PortPresent(t *testing.T) {
	withPorts(t, []Port{{Path: "/dev/ttyUSB0", USB: true}}, nil)

	err := Wait(context.Background(), "/dev/ttyUSB0", time.Second)
	assert.NoError(t, err)
}

func TestWait_EnumerationErrorIsFatal(t *testing.T) {
	withPorts(t, nil, errors.New("no permission"))

	start := time.Now()
	err := Wait(context.Background(), "/dev/ttyUSB0", 5*time.Second)
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second, "enumeration errors are not retried")
}
