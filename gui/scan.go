package gui

import (
	"fmt"
	"image"

	"embhmi.com/touch"
)

// Phase is the gesture phase of a widget class.
type Phase uint8

const (
	Idle Phase = iota
	Pressed
	Released
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Interaction is the gesture state shared by all widgets of a class.
// Selected is valid exactly when Phase is not Idle.
type Interaction struct {
	Phase    Phase
	Selected Key
}

func (in *Interaction) selectKey(k Key) {
	in.Phase = Pressed
	in.Selected = k
}

func (in *Interaction) clear() {
	*in = Interaction{}
}

// hit returns the first widget in registration order whose hit
// rectangle contains p.
func hit[T any](set *Set[T], p image.Point, rect func(*T) image.Rectangle) (Key, *T, bool) {
	for k, w := range set.All() {
		if p.In(rect(w)) {
			return k, w, true
		}
	}
	return Key{}, nil, false
}

type ButtonScanner struct {
	Interaction
}

func (b *ButtonScanner) Scan(s touch.Sample, set *Set[Button], r Renderer, sink EventSink) {
	r = orNop(r)
	switch b.Phase {
	case Idle:
		if !s.Pressed {
			return
		}
		k, w, ok := hit(set, s.Pos, func(w *Button) image.Rectangle { return w.Bounds })
		if !ok {
			return
		}
		b.selectKey(k)
		r.DrawButton(w, true)
		emit(sink, Event{Class: ButtonClass, Type: Press, Key: k, Pos: s.Pos})
	case Pressed:
		if !s.Pressed {
			b.Phase = Released
		}
	case Released:
		k := b.Selected
		b.clear()
		w, ok := set.Get(k)
		if !ok {
			return
		}
		r.DrawButton(w, false)
		emit(sink, Event{Class: ButtonClass, Type: Release, Key: k, Pos: s.Pos})
	}
}

type CheckboxScanner struct {
	Interaction
}

func (c *CheckboxScanner) Scan(s touch.Sample, set *Set[Checkbox], r Renderer, sink EventSink) {
	r = orNop(r)
	switch c.Phase {
	case Idle:
		if !s.Pressed {
			return
		}
		k, _, ok := hit(set, s.Pos, func(w *Checkbox) image.Rectangle { return w.Bounds })
		if !ok {
			return
		}
		c.selectKey(k)
		emit(sink, Event{Class: CheckboxClass, Type: Press, Key: k, Pos: s.Pos})
	case Pressed:
		if !s.Pressed {
			c.Phase = Released
		}
	case Released:
		k := c.Selected
		c.clear()
		w, ok := set.Get(k)
		if !ok {
			return
		}
		w.Checked = !w.Checked
		r.DrawCheckbox(w)
		v := 0
		if w.Checked {
			v = 1
		}
		emit(sink, Event{Class: CheckboxClass, Type: Change, Key: k, Value: v, Pos: s.Pos})
	}
}

type SliderScanner struct {
	Interaction
}

func (sl *SliderScanner) Scan(s touch.Sample, set *Set[Slider], r Renderer, sink EventSink) {
	r = orNop(r)
	switch sl.Phase {
	case Idle:
		if !s.Pressed {
			return
		}
		k, _, ok := hit(set, s.Pos, (*Slider).Handle)
		if !ok {
			return
		}
		sl.selectKey(k)
		emit(sink, Event{Class: SliderClass, Type: Press, Key: k, Pos: s.Pos})
	case Pressed:
		if !s.Pressed {
			sl.Phase = Released
			return
		}
		w, ok := set.Get(sl.Selected)
		if !ok {
			sl.Phase = Released
			return
		}
		v, ok := w.valueAt(s.Pos)
		if !ok {
			return
		}
		d := v - w.Value
		if d < 0 {
			d = -d
		}
		if d < 1 || d >= MaxSliderStep {
			return
		}
		w.Value = v
		r.DrawSlider(w)
		emit(sink, Event{Class: SliderClass, Type: Change, Key: sl.Selected, Value: v, Pos: s.Pos})
	case Released:
		k := sl.Selected
		sl.clear()
		w, ok := set.Get(k)
		if !ok {
			return
		}
		emit(sink, Event{Class: SliderClass, Type: Release, Key: k, Value: w.Value, Pos: s.Pos})
	}
}

type ScrollScanner struct {
	Interaction
}

func (sc *ScrollScanner) Scan(s touch.Sample, set *Set[ScrollRegion], r Renderer, sink EventSink) {
	r = orNop(r)
	switch sc.Phase {
	case Idle:
		if !s.Pressed {
			return
		}
		k, _, ok := hit(set, s.Pos, func(w *ScrollRegion) image.Rectangle { return w.Bounds })
		if !ok {
			return
		}
		sc.selectKey(k)
		emit(sink, Event{Class: ScrollClass, Type: Press, Key: k, Pos: s.Pos})
	case Pressed:
		if s.Pressed {
			return
		}
		sc.Phase = Released
		w, ok := set.Get(sc.Selected)
		if !ok {
			return
		}
		scroll := w.Scroll
		b := w.Bounds
		switch y := s.Pos.Y; {
		case y > b.Min.Y+b.Dy()*55/100:
			scroll = max(scroll-1, 0)
		case y < b.Min.Y+b.Dy()*45/100:
			scroll = min(scroll+1, w.limit())
		}
		if scroll == w.Scroll {
			return
		}
		w.Scroll = scroll
		r.DrawScrollRegion(w)
		emit(sink, Event{Class: ScrollClass, Type: Change, Key: sc.Selected, Value: scroll, Pos: s.Pos})
	case Released:
		sc.clear()
	}
}

// Scanner runs the state machine of every widget class and refreshes
// the graph.
type Scanner struct {
	Buttons    ButtonScanner
	Checkboxes CheckboxScanner
	Sliders    SliderScanner
	Scrolls    ScrollScanner

	prevGraph [GraphPoints]uint8
}

// Scan feeds s to every state machine of v in turn.
func (sc *Scanner) Scan(s touch.Sample, v *View, r Renderer, sink EventSink) {
	r = orNop(r)
	sc.Buttons.Scan(s, &v.Buttons, r, sink)
	sc.Sliders.Scan(s, &v.Sliders, r, sink)
	sc.Checkboxes.Scan(s, &v.Checkboxes, r, sink)
	sc.Scrolls.Scan(s, &v.Scrolls, r, sink)
	if g := v.Graph; g != nil {
		r.DrawGraph(g, &sc.prevGraph)
		sc.prevGraph = g.Data
	}
}

type nopRenderer struct{}

func (nopRenderer) DrawButton(*Button, bool) {}
func (nopRenderer) DrawCheckbox(*Checkbox) {}
func (nopRenderer) DrawSlider(*Slider) {}
func (nopRenderer) DrawScrollRegion(*ScrollRegion) {}
func (nopRenderer) DrawGraph(*Graph, *[GraphPoints]uint8) {}

func orNop(r Renderer) Renderer {
	if r == nil {
		return nopRenderer{}
	}
	return r
}
