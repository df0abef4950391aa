// Command touchsim replays scripted touches through the acquisition
// and widget state machines and renders the resulting screen.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log"
	"os"

	"embhmi.com/calib"
	"embhmi.com/diag"
	"embhmi.com/driver/sim"
	"embhmi.com/gui"
	"embhmi.com/hmi"
	"embhmi.com/image/rgb565"
	"embhmi.com/lcd"
	"embhmi.com/render"
	"embhmi.com/touch"
)

var (
	calibFile = flag.String("calib", "", "calibration file")
	output    = flag.String("out", "", "write the final screen as PNG")
	fbDev     = flag.String("fb", "", "framebuffer device")
	diagDev   = flag.String("diag", "", "serial device for diagnostic frames")
	frames    = flag.String("frames", "", "write diagnostic frames to file")
	jitter    = flag.Uint("jitter", 0, "raw reading noise amplitude")
	verbose   = flag.Bool("v", false, "log every event")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "touchsim: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	conf := touch.DefaultConfig()
	if *calibFile != "" {
		c, err := loadCalibration(*calibFile)
		if err != nil {
			return err
		}
		conf.Calibration = c
	}

	var (
		fb      draw.Image
		display render.Display
	)
	if *fbDev != "" {
		l, err := lcd.Open(*fbDev)
		if err != nil {
			return err
		}
		defer l.Close()
		fb, display = l.Framebuffer(), l
	} else {
		fb = rgb565.New(image.Rect(0, 0, calib.Width, calib.Height))
	}
	canvas := render.New(fb, render.DefaultTheme())
	canvas.Clear()
	demo := hmi.NewDemo()
	gui.DrawView(demo.View, canvas)

	panel := sim.New(script(conf.Calibration, demo)...)
	panel.Jitter = uint16(*jitter)
	q := new(gui.Queue)
	sinks := []gui.EventSink{q}
	l := hmi.New(touch.New(panel, conf), demo.View, canvas, nil)

	var monitors []*diag.Monitor
	for _, out := range []struct {
		name string
		open func(string) (io.WriteCloser, error)
	}{
		{*diagDev, func(dev string) (io.WriteCloser, error) { return diag.Open(dev) }},
		{*frames, func(name string) (io.WriteCloser, error) { return os.Create(name) }},
	} {
		if out.name == "" {
			continue
		}
		w, err := out.open(out.name)
		if err != nil {
			return err
		}
		defer w.Close()
		m := diag.NewMonitor(w)
		monitors = append(monitors, m)
		sinks = append(sinks, m)
	}
	l.Sink = gui.Tee(sinks...)
	l.Monitor = func(tick uint32, s *touch.Sampler) {
		if *verbose {
			log.Printf("tick %d: sample %v", tick, s.Sample().Pos)
		}
		for _, m := range monitors {
			m.Sample(tick, s)
		}
	}

	var flushErr error
	l.AfterScan = func() {
		for {
			e, ok := q.Next()
			if !ok {
				break
			}
			if *verbose || e.Type != gui.Press {
				log.Printf("tick %d: %v", l.Tick(), e)
			}
			demo.Handle(e, canvas)
		}
		demo.Update()
		for _, m := range monitors {
			m.Flush(l.Tick(), l.Sampler)
		}
		if display != nil && flushErr == nil {
			flushErr = canvas.Flush(display)
		}
	}
	for !panel.Done() {
		l.Step()
	}
	for _, m := range monitors {
		m.Flush(l.Tick(), l.Sampler)
	}
	if flushErr != nil {
		return flushErr
	}
	for _, m := range monitors {
		if err := m.Err(); err != nil {
			return err
		}
	}
	log.Printf("%d ticks, running=%v", l.Tick(), demo.Running)

	if *output != "" {
		return writePNG(*output, fb)
	}
	return nil
}

func loadCalibration(name string) (calib.Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return calib.Config{}, err
	}
	defer f.Close()
	return calib.Load(f)
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// script taps the start button, drags the level slider, toggles the
// checkbox twice and pages the log.
func script(c calib.Config, d *hmi.Demo) []sim.Step {
	period := touch.DefaultConfig().Period()
	var steps []sim.Step
	press := func(p image.Point, ticks int) {
		steps = append(steps, sim.Touch(c.X.Raw(p.X), c.Y.Raw(p.Y), ticks))
	}
	lift := func() {
		steps = append(steps, sim.Lift(period))
	}
	tap := func(p image.Point) {
		press(p, 2*period+10)
		lift()
	}
	mustGet := func(ok bool) {
		if !ok {
			panic("demo widget missing")
		}
	}

	start, ok := d.View.Buttons.Get(d.Start)
	mustGet(ok)
	tap(hmi.Center(start.Bounds))

	level, ok := d.View.Sliders.Get(d.Level)
	mustGet(ok)
	p := hmi.Center(level.Handle())
	press(p, period+10)
	for range 5 {
		p.X += 8
		press(p, period)
	}
	lift()

	enable, ok := d.View.Checkboxes.Get(d.Enable)
	mustGet(ok)
	tap(hmi.Center(enable.Bounds))
	tap(hmi.Center(enable.Bounds))

	region, ok := d.View.Scrolls.Get(d.Log)
	mustGet(ok)
	b := region.Bounds
	tap(image.Pt(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/5))
	tap(image.Pt(b.Min.X+b.Dx()/2, b.Max.Y-b.Dy()/5))

	// Let the graph run.
	steps = append(steps, sim.Lift(20*period))
	return steps
}
