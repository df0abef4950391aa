// Package calib maps filtered analog touch readings to screen
// coordinates.
//
// The bounds of each axis are hardware parameters measured on the
// actual panel: the plate resistance never reaches the rails, so the
// useful range of the converter is narrower than its resolution.
package calib

import (
	"errors"
	"fmt"
)

// Axis is the calibration of a single panel axis.
type Axis struct {
	// Low and High are the lowest and highest raw readings that
	// correspond to the edges of the screen.
	Low  uint16 `cbor:"1,keyasint"`
	High uint16 `cbor:"2,keyasint"`
	// Extent is the screen resolution along the axis.
	Extent int `cbor:"3,keyasint"`
	// Invert flips the axis for panels wired with opposite
	// polarity.
	Invert bool `cbor:"4,keyasint,omitempty"`
}

// Config is the calibration of both axes.
type Config struct {
	X Axis `cbor:"1,keyasint"`
	Y Axis `cbor:"2,keyasint"`
}

// Resolution of the reference display.
const (
	Width  = 320
	Height = 240
)

// Default returns the calibration of the reference 320x240 panel.
func Default() Config {
	return Config{
		X: Axis{Low: 300, High: 3820, Extent: Width, Invert: true},
		Y: Axis{Low: 550, High: 3630, Extent: Height},
	}
}

var ErrInvalidAxis = errors.New("invalid axis calibration")

// Validate reports whether both axes describe a usable mapping.
func (c Config) Validate() error {
	if err := c.X.validate(); err != nil {
		return fmt.Errorf("x: %w", err)
	}
	if err := c.Y.validate(); err != nil {
		return fmt.Errorf("y: %w", err)
	}
	return nil
}

func (a Axis) validate() error {
	if a.Low >= a.High {
		return fmt.Errorf("%w: low bound %d not below high bound %d", ErrInvalidAxis, a.Low, a.High)
	}
	if a.Extent <= 0 {
		return fmt.Errorf("%w: extent %d", ErrInvalidAxis, a.Extent)
	}
	return nil
}

// Clamp limits raw to the calibrated range.
func (a Axis) Clamp(raw uint16) uint16 {
	return min(max(raw, a.Low), a.High)
}

// Map converts a raw reading to a coordinate in [0, Extent]. Readings
// outside the calibrated range are clamped. An axis with an empty
// range maps everything to its origin.
func (a Axis) Map(raw uint16) int {
	if a.High <= a.Low {
		if a.Invert {
			return a.Extent
		}
		return 0
	}
	v := int(a.Clamp(raw) - a.Low)
	v = a.Extent * v / int(a.High-a.Low)
	if a.Invert {
		v = a.Extent - v
	}
	return v
}

// Raw returns the smallest reading that maps to the coordinate v,
// which is clamped to [0, Extent]. It is the inverse of Map for axes
// with more raw steps than coordinates.
func (a Axis) Raw(v int) uint16 {
	if a.High <= a.Low || a.Extent <= 0 {
		return a.Low
	}
	v = min(max(v, 0), a.Extent)
	if a.Invert {
		v = a.Extent - v
	}
	span := int(a.High - a.Low)
	return a.Low + uint16((v*span+a.Extent-1)/a.Extent)
}
