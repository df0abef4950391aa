// Package lcd implements a display on top of memory mapped 16-bit
// framebuffers.
package lcd

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"embhmi.com/image/rgb565"
)

// LCD copies a back buffer to framebuffer memory.
type LCD struct {
	fb     *rgb565.Image
	mem    []byte
	stride int
	close  func() error
}

func newLCD(mem []byte, dims image.Point, stride int) (*LCD, error) {
	if need := (dims.Y-1)*stride + dims.X*2; dims.X <= 0 || dims.Y <= 0 || need > len(mem) {
		return nil, fmt.Errorf("lcd: %v framebuffer with stride %d does not fit %d bytes", dims, stride, len(mem))
	}
	return &LCD{
		fb:     rgb565.New(image.Rectangle{Max: dims}),
		mem:    mem,
		stride: stride,
	}, nil
}

// Framebuffer returns the back buffer. Changes are visible after
// Dirty.
func (l *LCD) Framebuffer() draw.RGBA64Image {
	return l.fb
}

// Dirty copies the region r of the back buffer to the display.
func (l *LCD) Dirty(r image.Rectangle) error {
	r = r.Intersect(l.fb.Rect)
	if r.Empty() {
		return nil
	}
	n := r.Dx() * 2
	for y := r.Min.Y; y < r.Max.Y; y++ {
		start := l.fb.PixOffset(r.Min.X, y)
		row := l.fb.Pix[start : start+r.Dx()]
		src := unsafe.Slice((*byte)(unsafe.Pointer(&row[0])), n)
		off := y*l.stride + r.Min.X*2
		copy(l.mem[off:off+n], src)
	}
	return nil
}

func (l *LCD) Close() error {
	var err error
	if l.close != nil {
		err = l.close()
	}
	*l = LCD{}
	return err
}
