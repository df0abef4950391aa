package render

import "image/color"

// Theme holds the colors shared by all widgets.
type Theme struct {
	Background color.NRGBA
	// Light and Shadow draw the bevel edges.
	Light  color.NRGBA
	Shadow color.NRGBA
	Text   color.NRGBA
	// TextBox is the background of scroll regions.
	TextBox color.NRGBA
	// Check is the checkbox face and Mark its check mark.
	Check color.NRGBA
	Mark  color.NRGBA
	// Plot is the graph background and Ink its data points.
	Plot color.NRGBA
	Ink  color.NRGBA
}

func DefaultTheme() Theme {
	return Theme{
		Background: RGB(0x7f7f7f),
		Light:      RGB(0xffffff),
		Shadow:     RGB(0x000000),
		Text:       RGB(0x000000),
		TextBox:    RGB(0xe9f2ea),
		Check:      RGB(0xffffff),
		Mark:       RGB(0x000000),
		Plot:       RGB(0xcccccc),
		Ink:        RGB(0xff0000),
	}
}

// RGB converts a 0xrrggbb value to an opaque color.
func RGB(c uint32) color.NRGBA {
	return ARGB(0xff000000 | c)
}

func ARGB(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
