package hmi

import (
	"image"
	"testing"
	"time"

	"embhmi.com/driver/sim"
	"embhmi.com/gui"
	"embhmi.com/touch"
)

// Raw readings mapping to the screen center (160, 120).
const (
	midX = 2060
	midY = 2090
)

func TestButtonPress(t *testing.T) {
	p := sim.New(sim.Touch(midX, midY, 200), sim.Lift(100))
	v := new(gui.View)
	k := v.Buttons.Add(gui.Button{Bounds: image.Rect(140, 100, 180, 140), Caption: "ok"})
	q := new(gui.Queue)
	l := New(touch.New(p, touch.DefaultConfig()), v, nil, q)
	var published []uint32
	l.Monitor = func(tick uint32, s *touch.Sampler) {
		published = append(published, tick)
	}
	for !p.Done() {
		l.Step()
	}
	period := uint32(touch.DefaultConfig().Period())
	if len(published) != 2 || published[0] != period || published[1] != 2*period {
		t.Errorf("published at ticks %v, expected %d and %d", published, period, 2*period)
	}
	var evts []gui.Event
	for {
		e, ok := q.Next()
		if !ok {
			break
		}
		evts = append(evts, e)
	}
	if len(evts) != 2 {
		t.Fatalf("got events %v, expected press and release", evts)
	}
	if e := evts[0]; e.Type != gui.Press || e.Key != k {
		t.Errorf("got %v, expected press", e)
	}
	if e := evts[1]; e.Type != gui.Release || e.Key != k {
		t.Errorf("got %v, expected release", e)
	}
	if ph := l.Scanner().Buttons.Phase; ph != gui.Idle {
		t.Errorf("button phase %v after gesture", ph)
	}
}

func TestScanEvery(t *testing.T) {
	v := &gui.View{Graph: &gui.Graph{Scale: 100}}
	scans := 0
	r := &countingRenderer{graph: &scans}
	l := New(touch.New(sim.New(), touch.DefaultConfig()), v, r, nil)
	l.ScanEvery = 10
	var ticks []int
	l.AfterTick = func() {
		ticks = append(ticks, scans)
	}
	for range 95 {
		l.Step()
	}
	if len(ticks) != 95 || ticks[9] != 1 || ticks[8] != 0 {
		t.Errorf("got %d ticks with scan counts %v, expected 95 running after each scan", len(ticks), ticks[:min(len(ticks), 11)])
	}
	if scans != 9 {
		t.Errorf("got %d scans in 95 ticks, expected 9", scans)
	}
	if l.Tick() != 95 {
		t.Errorf("got tick %d, expected 95", l.Tick())
	}
}

func TestRun(t *testing.T) {
	l := New(touch.New(sim.New(), touch.DefaultConfig()), new(gui.View), nil, nil)
	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Run(time.Millisecond, quit)
	}()
	time.Sleep(20 * time.Millisecond)
	close(quit)
	<-done
	if l.Tick() == 0 {
		t.Error("Run never stepped the loop")
	}
}

type countingRenderer struct {
	graph *int
}

func (c *countingRenderer) DrawButton(*gui.Button, bool) {}
func (c *countingRenderer) DrawCheckbox(*gui.Checkbox) {}
func (c *countingRenderer) DrawSlider(*gui.Slider) {}
func (c *countingRenderer) DrawScrollRegion(*gui.ScrollRegion) {}

func (c *countingRenderer) DrawGraph(*gui.Graph, *[gui.GraphPoints]uint8) {
	*c.graph++
}
