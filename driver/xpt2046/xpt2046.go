//go:build tinygo

// Package xpt2046 adapts an XPT2046 touch controller to the 4-wire
// acquisition state machine. The controller switches the plates
// itself, so each axis configuration takes a fresh conversion.
package xpt2046

import (
	"tinygo.org/x/drivers/xpt2046"
)

type Panel struct {
	dev   *xpt2046.Device
	value uint16
}

func New(dev *xpt2046.Device) *Panel {
	return &Panel{dev: dev}
}

func (p *Panel) Contact() bool {
	return p.dev.Touched()
}

// ConfigureX converts the X axis. The driver reports 16 bit
// coordinates.
func (p *Panel) ConfigureX() {
	p.value = uint16(p.dev.ReadTouchPoint().X >> 4)
}

func (p *Panel) ConfigureY() {
	p.value = uint16(p.dev.ReadTouchPoint().Y >> 4)
}

func (p *Panel) ConfigureDetect() {
	p.value = 0
}

func (p *Panel) ReadChannel() uint16 {
	return p.value
}
