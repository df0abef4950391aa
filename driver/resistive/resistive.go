//go:build tinygo

// Package resistive drives a 4-wire resistive panel directly from
// microcontroller pins. YU and XR must be ADC capable.
package resistive

import "machine"

type Panel struct {
	xl, xr, yu, yd machine.Pin
	senseX, senseY machine.ADC
	sense          *machine.ADC
}

func New(xl, xr, yu, yd machine.Pin) *Panel {
	machine.InitADC()
	return &Panel{
		xl:     xl,
		xr:     xr,
		yu:     yu,
		yd:     yd,
		senseX: machine.ADC{Pin: yu},
		senseY: machine.ADC{Pin: xr},
	}
}

func (p *Panel) output(pin machine.Pin, high bool) {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Set(high)
}

func (p *Panel) input(pin machine.Pin, mode machine.PinMode) {
	pin.Configure(machine.PinConfig{Mode: mode})
}

func (p *Panel) ConfigureX() {
	p.output(p.xr, true)
	p.output(p.xl, false)
	p.input(p.yd, machine.PinInput)
	p.senseX.Configure(machine.ADCConfig{})
	p.sense = &p.senseX
}

func (p *Panel) ConfigureY() {
	p.output(p.yu, true)
	p.output(p.yd, false)
	p.input(p.xl, machine.PinInput)
	p.senseY.Configure(machine.ADCConfig{})
	p.sense = &p.senseY
}

func (p *Panel) ConfigureDetect() {
	p.input(p.xr, machine.PinInput)
	p.input(p.yd, machine.PinInput)
	p.output(p.xl, false)
	p.input(p.yu, machine.PinInputPullup)
	p.sense = nil
}

func (p *Panel) Contact() bool {
	return p.sense == nil && !p.yu.Get()
}

// ReadChannel returns the sensed voltage in 12 bits. TinyGo scales
// all ADC readings to 16 bits.
func (p *Panel) ReadChannel() uint16 {
	if p.sense == nil {
		return 0
	}
	return p.sense.Get() >> 4
}
