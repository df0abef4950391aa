// Package diag streams touch and widget diagnostics as CBOR frames.
package diag

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/fxamacker/cbor/v2"

	"embhmi.com/gui"
	"embhmi.com/touch"
)

// Frame is a snapshot of the acquisition query surface at the tick
// a sample was published, plus the widget events since the previous
// frame.
type Frame struct {
	Tick    uint32  `cbor:"1,keyasint"`
	RawX    int     `cbor:"2,keyasint"`
	RawY    int     `cbor:"3,keyasint"`
	X       int     `cbor:"4,keyasint"`
	Y       int     `cbor:"5,keyasint"`
	Pressed bool    `cbor:"6,keyasint"`
	Events  []Event `cbor:"7,keyasint,omitempty"`
}

// Event is the wire form of a widget event.
type Event struct {
	Class uint8 `cbor:"1,keyasint"`
	Type  uint8 `cbor:"2,keyasint"`
	// Key is the registration index of the widget.
	Key   int `cbor:"3,keyasint"`
	Value int `cbor:"4,keyasint,omitempty"`
	X     int `cbor:"5,keyasint"`
	Y     int `cbor:"6,keyasint"`
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s #%d value=%d (%d,%d)", gui.Class(e.Class), gui.EventType(e.Type), e.Key, e.Value, e.X, e.Y)
}

func eventFrom(e gui.Event) Event {
	return Event{
		Class: uint8(e.Class),
		Type:  uint8(e.Type),
		Key:   e.Key.Index(),
		Value: e.Value,
		X:     e.Pos.X,
		Y:     e.Pos.Y,
	}
}

// FromSampler captures the state of s at tick.
func FromSampler(tick uint32, s *touch.Sampler) Frame {
	return Frame{
		Tick:    tick,
		RawX:    s.RawX(),
		RawY:    s.RawY(),
		X:       s.X(),
		Y:       s.Y(),
		Pressed: s.Pressed(),
	}
}

type Encoder struct {
	enc *cbor.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: cbor.NewEncoder(w)}
}

func (e *Encoder) Encode(f Frame) error {
	if err := e.enc.Encode(f); err != nil {
		return fmt.Errorf("diag: %w", err)
	}
	return nil
}

type Decoder struct {
	dec *cbor.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: cbor.NewDecoder(r)}
}

// Decode reads the next frame. It returns io.EOF at the end of a
// clean stream.
func (d *Decoder) Decode() (Frame, error) {
	var f Frame
	if err := d.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("diag: %w", err)
	}
	return f, nil
}

// Monitor collects widget events and writes them to a frame stream.
// Its Sample method matches the monitor hook of [hmi.Loop] and writes
// one frame per published sample; Flush writes the events and lifts
// observed between samples. The first write error is logged and
// stops the stream.
type Monitor struct {
	enc     *Encoder
	pending []Event
	// pressed is the contact state of the last frame written.
	pressed bool
	err     error
}

func NewMonitor(w io.Writer) *Monitor {
	return &Monitor{enc: NewEncoder(w)}
}

func (m *Monitor) Press(e gui.Event)   { m.add(e) }
func (m *Monitor) Release(e gui.Event) { m.add(e) }
func (m *Monitor) Change(e gui.Event)  { m.add(e) }

func (m *Monitor) add(e gui.Event) {
	if m.err != nil {
		return
	}
	m.pending = append(m.pending, eventFrom(e))
}

// Sample writes a frame for the sample published at tick.
func (m *Monitor) Sample(tick uint32, s *touch.Sampler) {
	m.write(tick, s)
}

// Flush writes a frame at tick if events are pending or the contact
// state changed since the last frame. Widget events after a lift are
// only seen through Flush, since no sample is published until the
// next touch.
func (m *Monitor) Flush(tick uint32, s *touch.Sampler) {
	if len(m.pending) == 0 && s.Pressed() == m.pressed {
		return
	}
	m.write(tick, s)
}

func (m *Monitor) write(tick uint32, s *touch.Sampler) {
	if m.err != nil {
		return
	}
	f := FromSampler(tick, s)
	f.Events = m.pending
	m.pending = nil
	m.pressed = f.Pressed
	if err := m.enc.Encode(f); err != nil {
		m.err = err
		log.Printf("diag: monitor stopped: %v", err)
	}
}

// Err returns the error that stopped the monitor, if any.
func (m *Monitor) Err() error {
	return m.err
}
