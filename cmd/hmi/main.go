//go:build tinygo

// Command hmi is the touch panel firmware for an RP2040 board with a
// 320x240 ILI9341 display.
package main

import (
	"fmt"
	"image"
	"log"
	"machine"
	"os"
	"time"

	"tinygo.org/x/drivers/ili9341"

	"embhmi.com/gui"
	"embhmi.com/hmi"
	"embhmi.com/image/rgb565"
	"embhmi.com/render"
	"embhmi.com/touch"
)

const (
	lcdWidth  = 320
	lcdHeight = 240

	LCD_SCK = machine.GP2
	LCD_SDO = machine.GP3
	LCD_SDI = machine.GP4
	LCD_CS  = machine.GP5
	LCD_DC  = machine.GP6
	LCD_RST = machine.GP7
	LCD_BL  = machine.GP8

	// lcdFrequency moves about 1500 pixels per millisecond.
	lcdFrequency = 24_000_000
	// flushPixels bounds the display transfer per acquisition tick so
	// that ticks keep their period.
	flushPixels = 512
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hmi: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	if err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: lcdFrequency,
		SCK:       LCD_SCK,
		SDO:       LCD_SDO,
		SDI:       LCD_SDI,
	}); err != nil {
		return fmt.Errorf("spi: %w", err)
	}
	dev := ili9341.NewSPI(machine.SPI0, LCD_DC, LCD_CS, LCD_RST)
	dev.Configure(ili9341.Config{Rotation: ili9341.Rotation90})
	LCD_BL.Configure(machine.PinConfig{Mode: machine.PinOutput})
	LCD_BL.High()

	fb := rgb565.New(image.Rect(0, 0, lcdWidth, lcdHeight))
	disp := &display{dev: dev, fb: fb}
	canvas := render.New(fb, render.DefaultTheme())
	canvas.Clear()
	demo := hmi.NewDemo()
	gui.DrawView(demo.View, canvas)

	q := new(gui.Queue)
	l := hmi.New(touch.New(openPanel(), touch.DefaultConfig()), demo.View, canvas, q)
	l.AfterScan = func() {
		for {
			e, ok := q.Next()
			if !ok {
				break
			}
			log.Printf("%v", e)
			demo.Handle(e, canvas)
		}
		demo.Update()
	}
	var flushErr error
	l.AfterTick = func() {
		if flushErr != nil {
			return
		}
		if flushErr = canvas.FlushRows(disp, flushPixels); flushErr != nil {
			log.Printf("display: %v", flushErr)
		}
	}
	l.Run(time.Millisecond, nil)
	return nil
}

// display copies framebuffer regions to the panel.
type display struct {
	dev *ili9341.Device
	fb  *rgb565.Image
	buf []uint16
}

func (d *display) Dirty(r image.Rectangle) error {
	r = r.Intersect(d.fb.Rect)
	if r.Empty() {
		return nil
	}
	n := r.Dx() * r.Dy()
	if cap(d.buf) < n {
		d.buf = make([]uint16, n)
	}
	buf := d.buf[:n]
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := d.fb.Pix[d.fb.PixOffset(r.Min.X, y):d.fb.PixOffset(r.Max.X, y)]
		dst := buf[(y-r.Min.Y)*r.Dx():]
		for i, c := range row {
			dst[i] = uint16(c)
		}
	}
	return d.dev.DrawRGBBitmap(int16(r.Min.X), int16(r.Min.Y), buf, int16(r.Dx()), int16(r.Dy()))
}
