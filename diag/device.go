//go:build !tinygo

package diag

import (
	"errors"
	"io"
	"runtime"

	"github.com/tarm/serial"
)

// BaudRate of the diagnostic serial link.
const BaudRate = 115200

// Open opens the serial device dev, or the first available default
// device for the platform when dev is empty.
func Open(dev string) (io.ReadWriteCloser, error) {
	var devices []string
	if dev != "" {
		devices = append(devices, dev)
	} else {
		switch runtime.GOOS {
		case "windows":
			devices = append(devices, "COM3")
		case "darwin":
			devices = append(devices, "/dev/tty.usbmodem1101")
		case "linux":
			devices = append(devices, "/dev/ttyACM0", "/dev/ttyUSB0")
		}
	}
	if len(devices) == 0 {
		return nil, errors.New("diag: no device specified")
	}
	var firstErr error
	for _, dev := range devices {
		s, err := serial.OpenPort(&serial.Config{Name: dev, Baud: BaudRate})
		if err == nil {
			return s, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
