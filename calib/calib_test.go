package calib

import (
	"bytes"
	"errors"
	"testing"
)

func TestMap(t *testing.T) {
	def := Default()
	tests := []struct {
		axis Axis
		raw  uint16
		want int
	}{
		{def.X, 0, Width},
		{def.X, 300, Width},
		{def.X, 3820, 0},
		{def.X, 4095, 0},
		{def.X, 300 + 1760, Width - Width*1760/3520},
		{def.Y, 0, 0},
		{def.Y, 550, 0},
		{def.Y, 3630, Height},
		{def.Y, 65535, Height},
		{def.Y, 550 + 1540, Height * 1540 / 3080},
		{Axis{Low: 0, High: 100, Extent: 10}, 19, 1},
		{Axis{Low: 0, High: 100, Extent: 10, Invert: true}, 19, 9},
		{Axis{Low: 10, High: 10, Extent: 10}, 50, 0},
	}
	for _, test := range tests {
		if got := test.axis.Map(test.raw); got != test.want {
			t.Errorf("%+v.Map(%d) = %d, expected %d", test.axis, test.raw, got, test.want)
		}
	}
}

func TestMapClampIdempotent(t *testing.T) {
	def := Default()
	for _, a := range []Axis{def.X, def.Y} {
		for raw := 0; raw <= 0xffff; raw += 7 {
			r := uint16(raw)
			if got, want := a.Map(r), a.Map(a.Clamp(r)); got != want {
				t.Fatalf("Map(%d) = %d, Map(Clamp(%d)) = %d", r, got, r, want)
			}
			if c := a.Map(r); c < 0 || c > a.Extent {
				t.Fatalf("Map(%d) = %d outside [0, %d]", r, c, a.Extent)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default calibration invalid: %v", err)
	}
	bad := []Config{
		{X: Axis{Low: 10, High: 10, Extent: 1}, Y: Default().Y},
		{X: Default().X, Y: Axis{Low: 20, High: 10, Extent: 1}},
		{X: Axis{Low: 0, High: 10, Extent: 0}, Y: Default().Y},
	}
	for _, c := range bad {
		if err := c.Validate(); !errors.Is(err, ErrInvalidAxis) {
			t.Errorf("%+v: got %v, expected %v", c, err, ErrInvalidAxis)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	want := Config{
		X: Axis{Low: 123, High: 4000, Extent: 480, Invert: true},
		Y: Axis{Low: 200, High: 3900, Extent: 320},
	}
	buf := new(bytes.Buffer)
	if err := want.Save(buf); err != nil {
		t.Fatal(err)
	}
	got, err := Load(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("loaded %+v, expected %+v", got, want)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := (Config{}).Save(buf); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(buf); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("got %v, expected %v", err, ErrInvalidAxis)
	}
	if _, err := Load(bytes.NewReader([]byte{0xff, 0x00})); err == nil {
		t.Error("decoding garbage succeeded")
	}
}

func TestRawInverse(t *testing.T) {
	def := Default()
	for _, a := range []Axis{def.X, def.Y} {
		for v := 0; v <= a.Extent; v++ {
			if got := a.Map(a.Raw(v)); got != v {
				t.Fatalf("%+v: Map(Raw(%d)) = %d", a, v, got)
			}
		}
	}
	if got, want := def.X.Raw(-10), def.X.High; got != want {
		t.Errorf("Raw(-10) = %d, expected %d", got, want)
	}
}
