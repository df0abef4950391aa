package hmi

import (
	"image"
	"testing"

	"embhmi.com/calib"
	"embhmi.com/driver/sim"
	"embhmi.com/gui"
	"embhmi.com/touch"
)

// tap returns a script touching the screen point p long enough for
// two published samples, followed by a release.
func tap(c calib.Config, p image.Point) []sim.Step {
	period := touch.DefaultConfig().Period()
	return []sim.Step{
		sim.Touch(c.X.Raw(p.X), c.Y.Raw(p.Y), 2*period+10),
		sim.Lift(period),
	}
}

func TestDemo(t *testing.T) {
	d := NewDemo()
	c := calib.Default()
	start, _ := d.View.Buttons.Get(d.Start)
	enable, _ := d.View.Checkboxes.Get(d.Enable)
	p := sim.New()
	p.Append(tap(c, Center(start.Bounds))...)
	p.Append(tap(c, Center(enable.Bounds))...)
	p.Append(tap(c, Center(enable.Bounds))...)

	q := new(gui.Queue)
	l := New(touch.New(p, touch.DefaultConfig()), d.View, nil, q)
	scans := 0
	l.AfterScan = func() {
		scans++
		for {
			e, ok := q.Next()
			if !ok {
				break
			}
			d.Handle(e, nil)
		}
		d.Update()
	}
	for !p.Done() {
		l.Step()
	}
	if !d.Running {
		t.Error("start button did not start the demo")
	}
	if scans == 0 {
		t.Fatal("no scans")
	}
	log, _ := d.View.Scrolls.Get(d.Log)
	if want := "start;enable=0;enable=1;"; log.Text != want {
		t.Errorf("got log %q, expected %q", log.Text, want)
	}
	if g := d.View.Graph.Data[gui.GraphPoints-1]; g != 50 {
		t.Errorf("got graph value %d, expected 50", g)
	}
}
