// Package rgb565 contains an [image.RGBA64Image] implementation of a 16-bit
// RGB565 image, the native pixel format of small TFT panels.
package rgb565

import (
	"image"
	"image/color"
	"image/draw"
)

type Image struct {
	Pix    []Color
	Stride int
	Rect   image.Rectangle
}

// Color is a packed 5-6-5 bit opaque color.
type Color uint16

// Common colors.
const (
	Black Color = 0x0000
	White Color = 0xffff
	Red   Color = 0xf800
)

func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := RGB565ToRGB888(c)
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xffff
}

// Model converts colors to Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	return colorToRGB565(c)
})

func New(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]Color, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Image) ColorModel() color.Model {
	return Model
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = colorToRGB565(c)
}

func (p *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c
}

func (p *Image) RGB565At(x, y int) Color {
	if !(image.Point{x, y}).In(p.Rect) {
		return 0
	}
	return p.Pix[p.PixOffset(x, y)]
}

func (p *Image) PixOffset(x, y int) int {
	off := image.Pt(x, y).Sub(p.Rect.Min)
	return off.Y*p.Stride + off.X
}

func (p *Image) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return new(Image)
	}
	start := p.PixOffset(r.Min.X, r.Min.Y)
	end := p.PixOffset(r.Max.X, r.Max.Y-1)
	return &Image{
		Pix:    p.Pix[start:end],
		Stride: p.Stride,
		Rect:   r,
	}
}

func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

func (p *Image) SetRGBA64(x, y int, c color.RGBA64) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = RGB888ToRGB565(uint8(c.R>>8), uint8(c.G>>8), uint8(c.B>>8))
}

func (p *Image) RGBA64At(x, y int) color.RGBA64 {
	if !(image.Point{x, y}).In(p.Rect) {
		return color.RGBA64{}
	}
	r, g, b, a := p.Pix[p.PixOffset(x, y)].RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

// Fill sets every pixel of r to c.
func (p *Image) Fill(r image.Rectangle, c Color) {
	r = r.Intersect(p.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.Pix[p.PixOffset(r.Min.X, y):p.PixOffset(r.Max.X, y)]
		for i := range row {
			row[i] = c
		}
	}
}

func (p *Image) Draw(dr image.Rectangle, src image.Image, sp image.Point, op draw.Op) {
	clipped := dr.Intersect(p.Rect)
	sp = sp.Add(clipped.Min.Sub(dr.Min))
	dr = clipped
	// Optimize special cases.
	switch src := src.(type) {
	case *image.Uniform:
		if _, _, _, a := src.C.RGBA(); a == 0xffff || op == draw.Src {
			p.Fill(dr, colorToRGB565(src.C))
			return
		}
	case *Image:
		for y := 0; y < dr.Dy(); y++ {
			d := p.PixOffset(dr.Min.X, dr.Min.Y+y)
			s := src.PixOffset(sp.X, sp.Y+y)
			copy(p.Pix[d:d+dr.Dx()], src.Pix[s:s+dr.Dx()])
		}
		return
	case *image.Gray:
		for y := 0; y < dr.Dy(); y++ {
			for x := 0; x < dr.Dx(); x++ {
				col := src.GrayAt(sp.X+x, sp.Y+y)
				p.Pix[p.PixOffset(dr.Min.X+x, dr.Min.Y+y)] = RGB888ToRGB565(col.Y, col.Y, col.Y)
			}
		}
		return
	}

	// General case.
	draw.Draw(p, dr, src, sp, op)
}

func colorToRGB565(c color.Color) Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB888ToRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB888ToRGB565 packs 8-bit channels by truncating their low bits.
func RGB888ToRGB565(r, g, b uint8) Color {
	return Color(uint16(b)>>3 | uint16(g&0xfc)<<3 | uint16(r&0xf8)<<8)
}

// RGB565ToRGB888 expands c to 8-bit channels, replicating the high
// bits into the low bits.
func RGB565ToRGB888(c Color) (r, g, b uint8) {
	r = uint8(c>>8) & 0xf8
	r |= r >> 5
	g = uint8(c>>3) & 0xfc
	g |= g >> 6
	b = uint8(c << 3)
	b |= b >> 5
	return
}
