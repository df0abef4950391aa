//go:build !tinygo

// Package gpiotouch drives a 4-wire resistive panel wired to Linux
// GPIO pins, with its sense lines connected to external ADC channels.
package gpiotouch

import (
	"errors"
	"fmt"
	"log"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Pins are the four plate electrodes and the ADC channels sensing
// them. SenseX reads the YU electrode while the X plate is driven,
// SenseY reads XR while the Y plate is driven.
type Pins struct {
	XL, XR, YU, YD gpio.PinIO
	SenseX, SenseY analog.PinADC
	// Bits is the ADC resolution. Zero means 12.
	Bits int
}

// Names identify the electrode pins in the periph.io registry.
type Names struct {
	XL, XR, YU, YD string
}

// DefaultNames is the Raspberry Pi wiring.
var DefaultNames = Names{XL: "GPIO5", XR: "GPIO6", YU: "GPIO13", YD: "GPIO19"}

// Open initializes the host drivers and looks up the named pins.
func Open(n Names, senseX, senseY analog.PinADC) (*Panel, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpiotouch: %w", err)
	}
	lookup := func(name string) (gpio.PinIO, error) {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("gpiotouch: no pin %q", name)
		}
		return p, nil
	}
	var pins Pins
	var err error
	for _, p := range []struct {
		dst  *gpio.PinIO
		name string
	}{{&pins.XL, n.XL}, {&pins.XR, n.XR}, {&pins.YU, n.YU}, {&pins.YD, n.YD}} {
		if *p.dst, err = lookup(p.name); err != nil {
			return nil, err
		}
	}
	pins.SenseX, pins.SenseY = senseX, senseY
	return New(pins)
}

// Panel implements the touch panel interface. Pin errors cannot be
// reported from the acquisition tick, so the first one is logged and
// kept for Err; a failing panel reports no contact.
type Panel struct {
	pins  Pins
	sense analog.PinADC
	err   error
}

func New(p Pins) (*Panel, error) {
	if p.XL == nil || p.XR == nil || p.YU == nil || p.YD == nil {
		return nil, errors.New("gpiotouch: missing electrode pin")
	}
	if p.SenseX == nil || p.SenseY == nil {
		return nil, errors.New("gpiotouch: missing ADC channel")
	}
	if p.Bits == 0 {
		p.Bits = 12
	}
	return &Panel{pins: p}, nil
}

// Err returns the first pin error.
func (p *Panel) Err() error {
	return p.err
}

func (p *Panel) check(err error) {
	if err == nil || p.err != nil {
		return
	}
	p.err = fmt.Errorf("gpiotouch: %w", err)
	log.Printf("%v", p.err)
}

// ConfigureX drives the X plate from XR (high) to XL (low) and senses
// the voltage at YU.
func (p *Panel) ConfigureX() {
	p.check(p.pins.XR.Out(gpio.High))
	p.check(p.pins.XL.Out(gpio.Low))
	p.check(p.pins.YU.In(gpio.Float, gpio.NoEdge))
	p.check(p.pins.YD.In(gpio.Float, gpio.NoEdge))
	p.sense = p.pins.SenseX
}

// ConfigureY drives the Y plate from YU (high) to YD (low) and senses
// the voltage at XR.
func (p *Panel) ConfigureY() {
	p.check(p.pins.YU.Out(gpio.High))
	p.check(p.pins.YD.Out(gpio.Low))
	p.check(p.pins.XR.In(gpio.Float, gpio.NoEdge))
	p.check(p.pins.XL.In(gpio.Float, gpio.NoEdge))
	p.sense = p.pins.SenseY
}

// ConfigureDetect grounds XL and pulls YU up, so that pressing the
// plates together pulls YU low.
func (p *Panel) ConfigureDetect() {
	p.check(p.pins.XR.In(gpio.Float, gpio.NoEdge))
	p.check(p.pins.YD.In(gpio.Float, gpio.NoEdge))
	p.check(p.pins.XL.Out(gpio.Low))
	p.check(p.pins.YU.In(gpio.PullUp, gpio.NoEdge))
	p.sense = nil
}

func (p *Panel) Contact() bool {
	if p.err != nil || p.sense != nil {
		return false
	}
	return p.pins.YU.Read() == gpio.Low
}

// ReadChannel returns the sensed voltage scaled to 12 bits.
func (p *Panel) ReadChannel() uint16 {
	if p.sense == nil {
		return 0
	}
	s, err := p.sense.Read()
	if err != nil {
		p.check(err)
		return 0
	}
	return scale(s.Raw, p.pins.Bits)
}

func scale(raw int32, bits int) uint16 {
	raw = max(raw, 0)
	switch {
	case bits > 12:
		raw >>= bits - 12
	case bits < 12:
		raw <<= 12 - bits
	}
	return uint16(min(raw, 0xfff))
}
