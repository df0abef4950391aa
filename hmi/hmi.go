// Package hmi runs touch acquisition and widget interaction from a
// single cooperative loop.
package hmi

import (
	"time"

	"embhmi.com/gui"
	"embhmi.com/touch"
)

// DefaultScanEvery is the number of acquisition ticks per UI scan.
const DefaultScanEvery = 25

// Loop interleaves acquisition ticks and UI scans. Each runs to
// completion before the other starts, so a scan never observes a
// partially published sample.
type Loop struct {
	Sampler  *touch.Sampler
	View     *gui.View
	Renderer gui.Renderer
	Sink     gui.EventSink
	// ScanEvery is the number of acquisition ticks per UI scan.
	// Zero means DefaultScanEvery.
	ScanEvery int
	// Monitor, if set, is called after every tick that publishes a
	// sample.
	Monitor func(tick uint32, s *touch.Sampler)
	// AfterScan, if set, is called after every UI scan.
	AfterScan func()
	// AfterTick, if set, is called at the end of every Step. Work
	// done here delays the next tick and must stay well within the
	// tick period.
	AfterTick func()

	scanner   gui.Scanner
	tick      uint32
	published uint32
}

func New(s *touch.Sampler, v *gui.View, r gui.Renderer, sink gui.EventSink) *Loop {
	return &Loop{
		Sampler:  s,
		View:     v,
		Renderer: r,
		Sink:     sink,
	}
}

// Step runs one acquisition tick and, when due, one UI scan.
func (l *Loop) Step() {
	l.tick++
	l.Sampler.Tick()
	if n := l.Sampler.Published(); n != l.published {
		l.published = n
		if l.Monitor != nil {
			l.Monitor(l.tick, l.Sampler)
		}
	}
	every := l.ScanEvery
	if every <= 0 {
		every = DefaultScanEvery
	}
	if l.tick%uint32(every) == 0 {
		l.Scan()
	}
	if l.AfterTick != nil {
		l.AfterTick()
	}
}

// Scan runs the widget state machines once with the latest sample.
func (l *Loop) Scan() {
	l.scanner.Scan(l.Sampler.Sample(), l.View, l.Renderer, l.Sink)
	if l.AfterScan != nil {
		l.AfterScan()
	}
}

// Tick returns the number of acquisition ticks run.
func (l *Loop) Tick() uint32 {
	return l.tick
}

// Scanner exposes the widget state machines.
func (l *Loop) Scanner() *gui.Scanner {
	return &l.scanner
}

// Run calls Step every period until quit is closed.
func (l *Loop) Run(period time.Duration, quit <-chan struct{}) {
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-quit:
			return
		case <-t.C:
			l.Step()
		}
	}
}
