// Package render draws widgets into a framebuffer with bevelled
// rectangles and a fixed-width bitmap font.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"embhmi.com/gui"
)

// Display receives the framebuffer regions changed since the last
// flush.
type Display interface {
	Dirty(r image.Rectangle) error
}

// Canvas implements [gui.Renderer] on an image.
type Canvas struct {
	dst   draw.Image
	theme Theme
	face  font.Face
	dirty image.Rectangle
}

var _ gui.Renderer = (*Canvas)(nil)

func New(dst draw.Image, th Theme) *Canvas {
	return &Canvas{
		dst:   dst,
		theme: th,
		face:  basicfont.Face7x13,
	}
}

// Clear fills the canvas with the theme background.
func (c *Canvas) Clear() {
	c.fill(c.dst.Bounds(), c.theme.Background)
}

// Dirty returns the bounds of the pixels changed since the last
// Flush.
func (c *Canvas) Dirty() image.Rectangle {
	return c.dirty
}

// Flush reports the changed region to d and resets it.
func (c *Canvas) Flush(d Display) error {
	if c.dirty.Empty() {
		return nil
	}
	r := c.dirty
	c.dirty = image.Rectangle{}
	return d.Dirty(r)
}

// FlushRows reports at most pixels of the changed region to d, as
// whole rows from the top, and keeps the remainder dirty. At least
// one row is reported.
func (c *Canvas) FlushRows(d Display, pixels int) error {
	if c.dirty.Empty() {
		return nil
	}
	r := c.dirty
	rows := max(pixels/r.Dx(), 1)
	if rows >= r.Dy() {
		c.dirty = image.Rectangle{}
	} else {
		r.Max.Y = r.Min.Y + rows
		c.dirty.Min.Y = r.Max.Y
	}
	return d.Dirty(r)
}

func (c *Canvas) mark(r image.Rectangle) {
	r = r.Intersect(c.dst.Bounds())
	if r.Empty() {
		return
	}
	if c.dirty.Empty() {
		c.dirty = r
		return
	}
	c.dirty = c.dirty.Union(r)
}

func (c *Canvas) fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.dst, r, image.NewUniform(col), image.Point{}, draw.Src)
	c.mark(r)
}

// bevel outlines r with n pixel wide edges, tl along the top and
// left edges and br along the bottom and right.
func (c *Canvas) bevel(r image.Rectangle, n int, tl, br color.Color) {
	for i := range n {
		r := r.Inset(i)
		c.fill(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), br)
		c.fill(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), br)
		c.fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), tl)
		c.fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), tl)
	}
}

// text draws s starting at the baseline origin dot.
func (c *Canvas) text(dot image.Point, s string, col color.Color) {
	d := font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	b, _ := d.BoundString(s)
	d.DrawString(s)
	c.mark(image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil()))
}

// centered returns the baseline origin that centers s in r.
func (c *Canvas) centered(r image.Rectangle, s string) image.Point {
	m := c.face.Metrics()
	w := font.MeasureString(c.face, s).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	return image.Pt(
		r.Min.X+(r.Dx()-w)/2,
		r.Min.Y+(r.Dy()-h)/2+m.Ascent.Ceil(),
	)
}

func (c *Canvas) DrawButton(b *gui.Button, pressed bool) {
	r := b.Bounds
	if pressed {
		// Sunken: the caption moves with the face.
		c.bevel(r, 2, c.theme.Shadow, c.theme.Light)
		c.fill(r.Inset(2), b.Color)
		c.text(c.centered(r, b.Caption).Add(image.Pt(1, 1)), b.Caption, c.theme.Text)
		return
	}
	c.bevel(r, 1, c.theme.Light, c.theme.Shadow)
	c.fill(r.Inset(1), b.Color)
	c.text(c.centered(r, b.Caption), b.Caption, c.theme.Text)
}

func (c *Canvas) DrawCheckbox(cb *gui.Checkbox) {
	r := cb.Bounds
	c.bevel(r, 1, c.theme.Shadow, c.theme.Light)
	c.fill(r.Inset(1), c.theme.Check)
	if !cb.Checked {
		return
	}
	in := r.Inset(3)
	if in.Empty() {
		return
	}
	c.stroke(c.theme.Mark, max(in.Dx()/6, 1),
		image.Pt(in.Min.X, in.Min.Y+in.Dy()/2),
		image.Pt(in.Min.X+in.Dx()/3, in.Max.Y),
		image.Pt(in.Max.X, in.Min.Y),
	)
}

// stroke draws an anti-aliased polyline.
func (c *Canvas) stroke(col color.Color, width int, pts ...image.Point) {
	b := c.dst.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), c.dst, b)
	d := rasterx.NewDasher(b.Dx(), b.Dy(), scanner)
	d.SetStroke(fixed.I(width), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	d.SetColor(col)
	bounds := image.Rectangle{Min: pts[0], Max: pts[0]}
	for i, p := range pts {
		fp := rasterx.ToFixedP(float64(p.X-b.Min.X), float64(p.Y-b.Min.Y))
		if i == 0 {
			d.Start(fp)
		} else {
			d.Line(fp)
		}
		bounds = bounds.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	d.Stop(false)
	d.Draw()
	c.mark(bounds.Inset(-width))
}

func (c *Canvas) DrawSlider(s *gui.Slider) {
	r := s.Bounds
	c.fill(r, s.Color)
	var groove, center image.Rectangle
	if s.Orientation == gui.Vertical {
		mid := r.Min.X + r.Dx()/2
		groove = image.Rect(mid-2, r.Min.Y+5, mid+3, r.Max.Y-5)
		center = image.Rect(mid, r.Min.Y+7, mid+1, r.Max.Y-7)
	} else {
		mid := r.Min.Y + r.Dy()/2
		groove = image.Rect(r.Min.X+5, mid-2, r.Max.X-5, mid+3)
		center = image.Rect(r.Min.X+7, mid, r.Max.X-7, mid+1)
	}
	c.bevel(groove, 1, c.theme.Shadow, c.theme.Light)
	c.fill(center, c.theme.Shadow)
	h := s.Handle()
	c.bevel(h, 1, c.theme.Light, c.theme.Shadow)
	c.fill(h.Inset(1), s.Color)
}

func (c *Canvas) DrawScrollRegion(t *gui.ScrollRegion) {
	r := t.Bounds
	c.bevel(r, 1, c.theme.Light, c.theme.Shadow)
	c.fill(r.Inset(1), c.theme.TextBox)
	for i, line := range Lines(c.face, t.Text, r.Inset(2), t.Scroll) {
		m := c.face.Metrics()
		y := r.Min.Y + 2 + i*m.Height.Ceil() + m.Ascent.Ceil()
		c.text(image.Pt(r.Min.X+2, y), line, c.theme.Text)
	}
}

// Lines splits s into fixed width lines filling r and returns the
// visible lines starting at line scroll.
func Lines(face font.Face, s string, r image.Rectangle, scroll int) []string {
	adv, ok := face.GlyphAdvance('0')
	if !ok || adv <= 0 {
		return nil
	}
	perLine := r.Dx() / adv.Ceil()
	visible := r.Dy() / face.Metrics().Height.Ceil()
	if perLine <= 0 || visible <= 0 {
		return nil
	}
	runes := []rune(s)
	var lines []string
	for i := scroll * perLine; i < len(runes) && len(lines) < visible; i += perLine {
		lines = append(lines, string(runes[i:min(i+perLine, len(runes))]))
	}
	return lines
}

// GraphBounds returns the plot area of g.
func GraphBounds(g *gui.Graph) image.Rectangle {
	return image.Rectangle{Min: g.Origin, Max: g.Origin.Add(image.Pt(gui.GraphPoints, gui.GraphMax+1))}
}

func (c *Canvas) DrawGraph(g *gui.Graph, prev *[gui.GraphPoints]uint8) {
	r := GraphBounds(g)
	if prev == nil {
		c.bevel(r.Inset(-1), 1, c.theme.Shadow, c.theme.Shadow)
		c.fill(r, c.theme.Plot)
	} else {
		for x, v := range prev {
			c.dst.Set(r.Min.X+x, r.Min.Y+int(v), c.theme.Plot)
		}
	}
	for x, v := range g.Data {
		c.dst.Set(r.Min.X+x, r.Min.Y+int(v), c.theme.Ink)
	}
	c.mark(r)
}
