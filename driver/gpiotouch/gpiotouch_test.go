package gpiotouch

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"embhmi.com/touch"
)

var _ touch.Panel = (*Panel)(nil)

// electrode records the configuration of a plate pin.
type electrode struct {
	*gpiotest.Pin
	pressed *bool
	mode    string
}

func (e *electrode) In(pull gpio.Pull, edge gpio.Edge) error {
	e.mode = "in " + pull.String()
	return nil
}

func (e *electrode) Out(l gpio.Level) error {
	e.mode = "out " + l.String()
	return nil
}

func (e *electrode) Read() gpio.Level {
	if *e.pressed && e.mode == "in PullUp" {
		return gpio.Low
	}
	return gpio.High
}

type adc struct {
	*gpiotest.Pin
	raw   int32
	err   error
	reads int
}

func (a *adc) Range() (analog.Sample, analog.Sample) {
	return analog.Sample{}, analog.Sample{Raw: 1<<16 - 1}
}

func (a *adc) Read() (analog.Sample, error) {
	a.reads++
	return analog.Sample{Raw: a.raw}, a.err
}

func newPanel(t *testing.T, bits int) (*Panel, map[string]*electrode, *adc, *adc, *bool) {
	t.Helper()
	pressed := new(bool)
	pins := make(map[string]*electrode)
	for _, n := range []string{"XL", "XR", "YU", "YD"} {
		pins[n] = &electrode{Pin: &gpiotest.Pin{N: n}, pressed: pressed}
	}
	sx := &adc{Pin: &gpiotest.Pin{N: "ADCX"}, raw: 0x1234}
	sy := &adc{Pin: &gpiotest.Pin{N: "ADCY"}, raw: 0x4321}
	p, err := New(Pins{
		XL: pins["XL"], XR: pins["XR"], YU: pins["YU"], YD: pins["YD"],
		SenseX: sx, SenseY: sy,
		Bits: bits,
	})
	if err != nil {
		t.Fatal(err)
	}
	return p, pins, sx, sy, pressed
}

func TestPinPlan(t *testing.T) {
	p, pins, _, _, _ := newPanel(t, 16)
	tests := []struct {
		configure func()
		want      map[string]string
	}{
		{p.ConfigureX, map[string]string{"XR": "out High", "XL": "out Low", "YU": "in Float", "YD": "in Float"}},
		{p.ConfigureY, map[string]string{"YU": "out High", "YD": "out Low", "XR": "in Float", "XL": "in Float"}},
		{p.ConfigureDetect, map[string]string{"XL": "out Low", "YU": "in PullUp", "XR": "in Float", "YD": "in Float"}},
	}
	for i, test := range tests {
		test.configure()
		for n, want := range test.want {
			if got := pins[n].mode; got != want {
				t.Errorf("configuration %d: %s is %q, expected %q", i, n, got, want)
			}
		}
	}
}

func TestRead(t *testing.T) {
	p, _, _, _, pressed := newPanel(t, 16)
	p.ConfigureDetect()
	if p.Contact() {
		t.Error("contact without pressure")
	}
	*pressed = true
	if !p.Contact() {
		t.Error("no contact under pressure")
	}
	if got := p.ReadChannel(); got != 0 {
		t.Errorf("got %#x in detect mode, expected 0", got)
	}
	p.ConfigureX()
	if p.Contact() {
		t.Error("contact reported while the X plate is driven")
	}
	if got := p.ReadChannel(); got != 0x123 {
		t.Errorf("got x %#x, expected %#x", got, 0x123)
	}
	p.ConfigureY()
	if got := p.ReadChannel(); got != 0x432 {
		t.Errorf("got y %#x, expected %#x", got, 0x432)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		raw  int32
		bits int
		want uint16
	}{
		{0xfff, 12, 0xfff},
		{0x3ff, 10, 0xffc},
		{0xffff, 16, 0xfff},
		{-5, 12, 0},
		{0x1fff, 12, 0xfff},
	}
	for _, test := range tests {
		if got := scale(test.raw, test.bits); got != test.want {
			t.Errorf("scale(%#x, %d) = %#x, expected %#x", test.raw, test.bits, got, test.want)
		}
	}
}

func TestErrorLatched(t *testing.T) {
	p, _, sx, _, pressed := newPanel(t, 12)
	*pressed = true
	errADC := errors.New("adc failure")
	sx.err = errADC
	p.ConfigureX()
	p.ReadChannel()
	if !errors.Is(p.Err(), errADC) {
		t.Fatalf("got error %v, expected %v", p.Err(), errADC)
	}
	p.ConfigureDetect()
	if p.Contact() {
		t.Error("failed panel reports contact")
	}
}

func TestNewMissingPins(t *testing.T) {
	if _, err := New(Pins{}); err == nil {
		t.Error("New accepted missing pins")
	}
}
