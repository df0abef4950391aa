// Package gui implements the touch interaction state machines for
// buttons, sliders, checkboxes and scrollable text regions.
//
// Each widget class has its own state machine, polled once per UI
// scan with the latest stable touch sample. A state machine selects
// at most one widget per gesture, and the selection does not follow
// the touch point once made.
package gui

import (
	"image"

	"embhmi.com/image/rgb565"
)

// Button is a push button. Its release event fires once per gesture
// that started inside Bounds.
type Button struct {
	Bounds  image.Rectangle
	Caption string
	Color   rgb565.Color
}

// Checkbox is a square toggle.
type Checkbox struct {
	Bounds  image.Rectangle
	Checked bool
}

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Slider is a 0-100 value control dragged by its handle.
type Slider struct {
	Bounds      image.Rectangle
	Orientation Orientation
	// Value is in the range [0, 100].
	Value int
	Color rgb565.Color
}

// DefaultScrollLimit is the largest scroll index of a region without
// an explicit limit.
const DefaultScrollLimit = 1023

// ScrollRegion is a text box paged one line per tap. Tapping the
// lower part scrolls up, tapping the upper part scrolls down.
type ScrollRegion struct {
	Bounds image.Rectangle
	Text   string
	Scroll int
	// Limit caps Scroll. Zero means DefaultScrollLimit.
	Limit int
}

// Slider geometry, in pixels.
const (
	sliderInset  = 5
	sliderHandle = 10
	// MaxSliderStep is the smallest value change per scan that is
	// discarded as a mis-touch.
	MaxSliderStep = 30
)

// Track returns the length of the slider track along its axis.
func (s *Slider) Track() int {
	l := s.Bounds.Dx()
	if s.Orientation == Vertical {
		l = s.Bounds.Dy()
	}
	return max(l-2*sliderInset, 0)
}

// Handle returns the drag handle rectangle for the current value.
func (s *Slider) Handle() image.Rectangle {
	pos := (s.Value*s.Track() + 1) / 100
	b := s.Bounds
	if s.Orientation == Vertical {
		return image.Rect(b.Min.X, b.Min.Y+pos, b.Max.X-1, b.Min.Y+pos+sliderHandle)
	}
	return image.Rect(b.Min.X+pos, b.Min.Y, b.Min.X+pos+sliderHandle, b.Max.Y-1)
}

// valueAt returns the value selected by a touch at p, or false if p
// is outside the slider.
func (s *Slider) valueAt(p image.Point) (int, bool) {
	if !p.In(s.Bounds) {
		return 0, false
	}
	off, l := p.X-s.Bounds.Min.X, s.Bounds.Dx()
	if s.Orientation == Vertical {
		off, l = p.Y-s.Bounds.Min.Y, s.Bounds.Dy()
	}
	if l < 2 {
		return 0, false
	}
	// Rounded 100*off/(l-1).
	d := l - 1
	v := (200*off + d) / (2 * d)
	return min(max(v, 0), 100), true
}

func (t *ScrollRegion) limit() int {
	if t.Limit > 0 {
		return t.Limit
	}
	return DefaultScrollLimit
}

// View is the set of widgets scanned together.
type View struct {
	Buttons    Set[Button]
	Checkboxes Set[Checkbox]
	Sliders    Set[Slider]
	Scrolls    Set[ScrollRegion]
	// Graph is optional.
	Graph *Graph
}

// Renderer draws widgets. The state machines call it once per
// visible state transition.
type Renderer interface {
	DrawButton(b *Button, pressed bool)
	DrawCheckbox(c *Checkbox)
	DrawSlider(s *Slider)
	DrawScrollRegion(t *ScrollRegion)
	// DrawGraph draws g over the previously drawn data in prev. A
	// nil prev requests a complete redraw.
	DrawGraph(g *Graph, prev *[GraphPoints]uint8)
}

// DrawView draws every widget of v in its resting state.
func DrawView(v *View, r Renderer) {
	if r == nil {
		return
	}
	for _, b := range v.Buttons.All() {
		r.DrawButton(b, false)
	}
	for _, c := range v.Checkboxes.All() {
		r.DrawCheckbox(c)
	}
	for _, s := range v.Sliders.All() {
		r.DrawSlider(s)
	}
	for _, t := range v.Scrolls.All() {
		r.DrawScrollRegion(t)
	}
	if g := v.Graph; g != nil {
		r.DrawGraph(g, nil)
	}
}
