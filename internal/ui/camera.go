package ui

import "missile-engine/internal/gamemap"

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on p.
func NewCamera(p gamemap.Point, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(p)
	return c
}

// Center repositions the camera so that p is in the middle.
func (c *Camera) Center(p gamemap.Point) {
	// ViewWidth is in columns; each world tile is 2 columns wide.
	c.OffsetX = p.X - (c.ViewWidth/2)/2
	c.OffsetY = p.Y - c.ViewHeight/2
}

// WorldToScreen converts a world point to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(p gamemap.Point) (sx, sy int, visible bool) {
	sx = (p.X - c.OffsetX) * 2
	sy = p.Y - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to a world point.
func (c *Camera) ScreenToWorld(sx, sy int) gamemap.Point {
	return gamemap.Point{X: sx/2 + c.OffsetX, Y: sy + c.OffsetY}
}
