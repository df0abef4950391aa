package gui

import "image"

const (
	// GraphPoints is the number of samples a graph displays.
	GraphPoints = 255
	// GraphMax is the largest plotted value.
	GraphMax = 127
)

// Graph is a scrolling plot of the most recent GraphPoints values.
type Graph struct {
	Origin image.Point
	// Scale is applied to added values, in percent.
	Scale int
	Data  [GraphPoints]uint8
}

// Add scales v and appends it, discarding the oldest value.
func (g *Graph) Add(v uint8) {
	s := min(int(v)*g.Scale/100, GraphMax)
	copy(g.Data[:], g.Data[1:])
	g.Data[GraphPoints-1] = uint8(max(s, 0))
}
