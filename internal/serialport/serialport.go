// Package serialport enumerates the host's serial ports and picks the
// board's peripheral when the configuration says "auto".
package serialport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial/enumerator"

	"github.com/boardstrap/boardstrap/internal/util/retry"
)

// Port describes one serial port on the host.
type Port struct {
	Path    string
	USB     bool
	VID     string
	PID     string
	Serial  string
	Product string
}

// ErrNoPort is returned when auto-detection finds no USB serial device.
var ErrNoPort = errors.New("no usb serial port found")

// list is swapped out in tests.
var list = func() ([]Port, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}
	ports := make([]Port, 0, len(details))
	for _, d := range details {
		ports = append(ports, Port{
			Path:    d.Name,
			USB:     d.IsUSB,
			VID:     d.VID,
			PID:     d.PID,
			Serial:  d.SerialNumber,
			Product: d.Product,
		})
	}
	return ports, nil
}

// List returns every serial port on the host.
func List() ([]Port, error) {
	return list()
}

// Detect picks the serial peripheral for the run. A concrete path is
// returned as-is; "auto" resolves to the single connected USB serial
// device, or fails with the candidate list when the choice is ambiguous.
func Detect(configured string) (string, error) {
	if configured != "" && configured != "auto" {
		return configured, nil
	}

	ports, err := List()
	if err != nil {
		return "", err
	}

	var usb []Port
	for _, p := range ports {
		if p.USB {
			usb = append(usb, p)
		}
	}

	switch len(usb) {
	case 0:
		return "", ErrNoPort
	case 1:
		return usb[0].Path, nil
	default:
		paths := make([]string, len(usb))
		for i, p := range usb {
			paths[i] = p.Path
		}
		return "", fmt.Errorf("multiple usb serial ports found (%s); pass --port", strings.Join(paths, ", "))
	}
}

// Wait polls until the given port is present, for boards that re-enumerate
// after a reset or replug.
func Wait(ctx context.Context, path string, timeout time.Duration) error {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return retry.Do(waitCtx, func() error {
		ports, err := List()
		if err != nil {
			return retry.Fatal(err)
		}
		for _, p := range ports {
			if p.Path == path {
				return nil
			}
		}
		return fmt.Errorf("port %s not present", path)
	}, retry.WithMaxAttempts(20), retry.WithInitialDelay(250*time.Millisecond), retry.WithMaxDelay(time.Second))
}
