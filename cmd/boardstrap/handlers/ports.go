package handlers

import (
	"fmt"

	"github.com/boardstrap/boardstrap/internal/serialport"
	"github.com/boardstrap/boardstrap/internal/ui"
)

// listPorts enumerates serial ports - replaced in tests.
var listPorts = serialport.List

// Ports prints the host's serial ports, marking USB devices as likely
// board ports.
func Ports() error {
	ports, err := listPorts()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Println("No serial ports found")
		return nil
	}

	fmt.Println(ui.Title("Serial ports"))
	for _, p := range ports {
		if !p.USB {
			fmt.Printf("  %s %s\n", p.Path, ui.Dim("(not usb)"))
			continue
		}

		detail := fmt.Sprintf("usb %s:%s", p.VID, p.PID)
		if p.Product != "" {
			detail += " " + p.Product
		}
		if p.Serial != "" {
			detail += " sn=" + p.Serial
		}
		fmt.Printf("  %s %s\n", p.Path, ui.Dim("("+detail+")"))
	}
	return nil
}
