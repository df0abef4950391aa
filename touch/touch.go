// Package touch implements the acquisition state machine for 4-wire
// resistive touch panels.
//
// A 4-wire panel can only measure one axis at a time: measuring X
// drives the X plates and senses through a Y plate, and vice versa.
// The Sampler therefore alternates between the axes, debouncing each
// one for a fixed number of ticks before it publishes a stable
// sample. Tick is meant to be called at a constant rate, nominally
// every millisecond; debounce timing is counted in ticks, not time.
package touch

import (
	"fmt"
	"image"

	"embhmi.com/calib"
	"embhmi.com/iir"
)

// Panel is the hardware interface of a 4-wire resistive panel.
type Panel interface {
	// Contact reports whether the panel is physically touched. It is
	// only meaningful after ConfigureDetect.
	Contact() bool
	// ReadChannel returns a raw analog sample of the axis selected by
	// the most recent ConfigureX or ConfigureY.
	ReadChannel() uint16
	ConfigureX()
	ConfigureY()
	ConfigureDetect()
}

// Config holds the acquisition parameters.
type Config struct {
	// Debounce is the number of ticks an axis is sampled before its
	// value is accepted.
	Debounce int
	// AlphaBits is the smoothing exponent of the sample filters.
	AlphaBits   uint
	Calibration calib.Config
}

// DefaultConfig returns the parameters for a 1 ms tick: 40 ms of
// debouncing per axis and a filter weight of 1/4.
func DefaultConfig() Config {
	return Config{
		Debounce:    40,
		AlphaBits:   2,
		Calibration: calib.Default(),
	}
}

// Sample is a stable touch reading.
type Sample struct {
	// Pos is the position of the most recent published touch. It is
	// retained after the panel is released.
	Pos     image.Point
	Pressed bool
}

// State is the phase of the acquisition state machine.
type State uint8

const (
	WaitingForTouch State = iota
	DetectX
	DetectY
)

func (s State) String() string {
	switch s {
	case WaitingForTouch:
		return "waiting"
	case DetectX:
		return "detect-x"
	case DetectY:
		return "detect-y"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Sampler is the acquisition state machine. It is not safe for
// concurrent use; Tick and the queries must run in the same
// cooperative loop.
type Sampler struct {
	panel Panel
	conf  Config

	state State
	ticks int

	filterX, filterY iir.Filter
	rawX, rawY       uint16
	filtX, filtY     uint16

	// x is the calibrated X coordinate pending a Y measurement.
	x         int
	sample    Sample
	published uint32
}

// New returns a Sampler reading from p.
func New(p Panel, c Config) *Sampler {
	return &Sampler{
		panel: p,
		conf:  c,
	}
}

// Tick advances the state machine by one period.
func (s *Sampler) Tick() {
	s.panel.ConfigureDetect()
	contact := s.panel.Contact()

	switch s.state {
	case WaitingForTouch:
		if !contact {
			s.sample.Pressed = false
			break
		}
		s.ticks = 0
		s.state = DetectX
	case DetectX:
		if !contact {
			s.abort()
			break
		}
		s.ticks++
		if s.ticks > s.conf.Debounce {
			s.ticks = 0
			s.x = s.conf.Calibration.X.Map(s.filtX)
			s.state = DetectY
			break
		}
		s.panel.ConfigureX()
		s.rawX = s.panel.ReadChannel()
		s.filtX = s.filterX.Update(s.rawX, s.conf.AlphaBits)
	case DetectY:
		if !contact {
			s.abort()
			break
		}
		s.ticks++
		if s.ticks > s.conf.Debounce {
			s.ticks = 0
			s.sample = Sample{
				Pos:     image.Pt(s.x, s.conf.Calibration.Y.Map(s.filtY)),
				Pressed: true,
			}
			s.published++
			s.state = WaitingForTouch
			break
		}
		s.panel.ConfigureY()
		s.rawY = s.panel.ReadChannel()
		s.filtY = s.filterY.Update(s.rawY, s.conf.AlphaBits)
	}
}

func (s *Sampler) abort() {
	s.ticks = 0
	s.state = WaitingForTouch
	s.sample.Pressed = false
}

// Sample returns the most recently published sample.
func (s *Sampler) Sample() Sample {
	return s.sample
}

// Pressed reports whether a debounced touch is in progress.
func (s *Sampler) Pressed() bool {
	return s.sample.Pressed
}

// X returns the filtered, calibrated X coordinate of the last
// published sample.
func (s *Sampler) X() int {
	return s.sample.Pos.X
}

// Y returns the filtered, calibrated Y coordinate of the last
// published sample.
func (s *Sampler) Y() int {
	return s.sample.Pos.Y
}

// RawX returns the calibrated coordinate of the last unfiltered X
// reading, for diagnostics.
func (s *Sampler) RawX() int {
	return s.conf.Calibration.X.Map(s.rawX)
}

// RawY returns the calibrated coordinate of the last unfiltered Y
// reading, for diagnostics.
func (s *Sampler) RawY() int {
	return s.conf.Calibration.Y.Map(s.rawY)
}

// Published returns the number of samples published so far.
func (s *Sampler) Published() uint32 {
	return s.published
}

// State returns the current phase of the state machine.
func (s *Sampler) State() State {
	return s.state
}

// Period returns the number of ticks a continuous touch takes to
// publish a sample.
func (c Config) Period() int {
	return 1 + 2*(c.Debounce+1)
}
