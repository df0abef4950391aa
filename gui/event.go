package gui

import (
	"fmt"
	"image"
)

// Class identifies the widget class that emitted an event.
type Class uint8

const (
	ButtonClass Class = iota
	CheckboxClass
	SliderClass
	ScrollClass
)

func (c Class) String() string {
	switch c {
	case ButtonClass:
		return "button"
	case CheckboxClass:
		return "checkbox"
	case SliderClass:
		return "slider"
	case ScrollClass:
		return "scroll"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

type EventType uint8

const (
	// Press starts a gesture on a widget.
	Press EventType = iota
	// Release ends a gesture on a button or slider.
	Release
	// Change reports a new widget value.
	Change
)

func (t EventType) String() string {
	switch t {
	case Press:
		return "press"
	case Release:
		return "release"
	case Change:
		return "change"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// Event is a widget interaction.
type Event struct {
	Class Class
	Type  EventType
	Key   Key
	// Value is the new slider value, checkbox state (0 or 1) or
	// scroll index for Change events.
	Value int
	// Pos is the touch position that triggered the event.
	Pos image.Point
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s %v value=%d pos=%v", e.Class, e.Type, e.Key, e.Value, e.Pos)
}

// EventSink receives widget events.
type EventSink interface {
	Press(e Event)
	Release(e Event)
	Change(e Event)
}

func emit(sink EventSink, e Event) {
	if sink == nil {
		return
	}
	switch e.Type {
	case Press:
		sink.Press(e)
	case Release:
		sink.Release(e)
	case Change:
		sink.Change(e)
	}
}

// Queue is an EventSink that buffers events until the host loop
// drains them.
type Queue struct {
	events []Event
}

func (q *Queue) Press(e Event)   { q.events = append(q.events, e) }
func (q *Queue) Release(e Event) { q.events = append(q.events, e) }
func (q *Queue) Change(e Event)  { q.events = append(q.events, e) }

// Next removes and returns the oldest event.
func (q *Queue) Next() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events = append(q.events[:0], q.events[1:]...)
	return e, true
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Reset discards all buffered events.
func (q *Queue) Reset() {
	q.events = q.events[:0]
}

// Funcs adapts functions to an EventSink. Nil functions ignore their
// events.
type Funcs struct {
	OnPress   func(e Event)
	OnRelease func(e Event)
	OnChange  func(e Event)
}

func (f Funcs) Press(e Event) {
	if f.OnPress != nil {
		f.OnPress(e)
	}
}

func (f Funcs) Release(e Event) {
	if f.OnRelease != nil {
		f.OnRelease(e)
	}
}

func (f Funcs) Change(e Event) {
	if f.OnChange != nil {
		f.OnChange(e)
	}
}

// Tee returns a sink that forwards events to every sink in order.
func Tee(sinks ...EventSink) EventSink {
	return tee(sinks)
}

type tee []EventSink

func (t tee) Press(e Event) {
	for _, s := range t {
		emit(s, e)
	}
}

func (t tee) Release(e Event) {
	for _, s := range t {
		emit(s, e)
	}
}

func (t tee) Change(e Event) {
	for _, s := range t {
		emit(s, e)
	}
}
