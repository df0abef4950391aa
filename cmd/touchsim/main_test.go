package main

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"embhmi.com/calib"
	"embhmi.com/diag"
	"embhmi.com/gui"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	*output = filepath.Join(dir, "screen.png")
	*frames = filepath.Join(dir, "frames.cbor")
	*calibFile = filepath.Join(dir, "calib.cbor")
	defer func() {
		*output, *frames, *calibFile = "", "", ""
	}()
	buf := new(bytes.Buffer)
	if err := calib.Default().Save(buf); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(*calibFile, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(*output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != calib.Width || b.Dy() != calib.Height {
		t.Errorf("got screen %v, expected %dx%d", b, calib.Width, calib.Height)
	}

	rec, err := os.Open(*frames)
	if err != nil {
		t.Fatal(err)
	}
	defer rec.Close()
	d := diag.NewDecoder(rec)
	var (
		releases, scrolls int
		last              diag.Frame
	)
	for {
		f, err := d.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range f.Events {
			switch {
			case e.Type == uint8(gui.Release):
				releases++
			case e.Class == uint8(gui.ScrollClass) && e.Type == uint8(gui.Change):
				scrolls++
			}
		}
		last = f
	}
	// Start button and slider.
	if releases != 2 {
		t.Errorf("got %d release events in the recording, expected 2", releases)
	}
	// The final scroll tap has no touch after it.
	if scrolls != 2 {
		t.Errorf("got %d scroll changes in the recording, expected 2", scrolls)
	}
	if last.Pressed {
		t.Errorf("got last frame %+v, expected contact lifted", last)
	}
}
