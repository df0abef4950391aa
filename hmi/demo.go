package hmi

import (
	"fmt"
	"image"

	"embhmi.com/gui"
	"embhmi.com/image/rgb565"
)

// Demo is a reference screen for a 320x240 panel: start and stop
// buttons, an enable checkbox, a level slider, an event log and a
// graph plotting the level while running.
type Demo struct {
	View *gui.View

	Start, Stop gui.Key
	Enable      gui.Key
	Level       gui.Key
	Log         gui.Key

	Running bool
}

func NewDemo() *Demo {
	v := &gui.View{
		Graph: &gui.Graph{Origin: image.Pt(32, 110), Scale: 100},
	}
	d := &Demo{View: v}
	d.Start = v.Buttons.Add(gui.Button{
		Bounds:  image.Rect(10, 10, 80, 40),
		Caption: "Start",
		Color:   rgb565.RGB888ToRGB565(0x26, 0x7f, 0x26),
	})
	d.Stop = v.Buttons.Add(gui.Button{
		Bounds:  image.Rect(90, 10, 160, 40),
		Caption: "Stop",
		Color:   rgb565.RGB888ToRGB565(0xdd, 0x40, 0x40),
	})
	d.Enable = v.Checkboxes.Add(gui.Checkbox{
		Bounds:  image.Rect(180, 15, 200, 35),
		Checked: true,
	})
	d.Level = v.Sliders.Add(gui.Slider{
		Bounds: image.Rect(5, 50, 165, 70),
		Value:  50,
		Color:  rgb565.RGB888ToRGB565(0xcc, 0xcc, 0xcc),
	})
	d.Log = v.Scrolls.Add(gui.ScrollRegion{
		Bounds: image.Rect(170, 45, 315, 100),
	})
	return d
}

// Handle applies a widget event to the screen state and logs it. r
// may be nil.
func (d *Demo) Handle(e gui.Event, r gui.Renderer) {
	var msg string
	switch {
	case e.Class == gui.ButtonClass && e.Type == gui.Release:
		switch e.Key {
		case d.Start:
			d.Running = true
			msg = "start"
		case d.Stop:
			d.Running = false
			msg = "stop"
		}
	case e.Class == gui.CheckboxClass && e.Type == gui.Change:
		msg = fmt.Sprintf("enable=%d", e.Value)
	case e.Class == gui.SliderClass && e.Type == gui.Release:
		msg = fmt.Sprintf("level=%d", e.Value)
	}
	if msg == "" {
		return
	}
	t, ok := d.View.Scrolls.Get(d.Log)
	if !ok {
		return
	}
	t.Text += msg + ";"
	if r != nil {
		r.DrawScrollRegion(t)
	}
}

// Update feeds the graph. It is called once per UI scan.
func (d *Demo) Update() {
	if !d.Running {
		return
	}
	if c, ok := d.View.Checkboxes.Get(d.Enable); !ok || !c.Checked {
		return
	}
	if s, ok := d.View.Sliders.Get(d.Level); ok {
		d.View.Graph.Add(uint8(s.Value))
	}
}

// Center returns the center of the widget bounds b, for scripting
// touches.
func Center(b image.Rectangle) image.Point {
	return b.Min.Add(b.Max).Div(2)
}
