// Command touchmon prints the diagnostic frames streamed by a touch
// panel over a serial link or recorded to a file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"embhmi.com/diag"
)

var (
	serialDev = flag.String("device", "", "serial device")
	file      = flag.String("file", "", "read frames from file instead of a device")
	events    = flag.Bool("events", false, "only print frames with events")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "touchmon: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	var (
		r   io.ReadCloser
		err error
	)
	if *file != "" {
		r, err = os.Open(*file)
	} else {
		r, err = diag.Open(*serialDev)
	}
	if err != nil {
		return err
	}
	defer r.Close()
	return monitor(os.Stdout, r, *events)
}

func monitor(w io.Writer, r io.Reader, eventsOnly bool) error {
	d := diag.NewDecoder(r)
	for {
		f, err := d.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if eventsOnly && len(f.Events) == 0 {
			continue
		}
		state := "released"
		if f.Pressed {
			state = "pressed"
		}
		fmt.Fprintf(w, "%8d %-8s (%3d,%3d) raw (%3d,%3d)\n", f.Tick, state, f.X, f.Y, f.RawX, f.RawY)
		for _, e := range f.Events {
			fmt.Fprintf(w, "         %v\n", e)
		}
	}
}
