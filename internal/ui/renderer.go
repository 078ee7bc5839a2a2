// Package ui draws the shooting range on a tcell screen and asks the
// player yes/no questions.
package ui

import (
	"sort"

	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is how many rows at the bottom of the screen the HUD uses.
const HUDRows = 8

// Renderer draws the world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	tiles  TileSet
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(gamemap.Point{}, w, max(h-HUDRows, 1)),
		tiles:  RangeTiles,
	}
}

// Screen returns the screen drawn on.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// CenterOn recenters the camera on p.
func (r *Renderer) CenterOn(p gamemap.Point) { r.camera.Center(p) }

// WorldToScreen converts world coordinates to screen coordinates.
func (r *Renderer) WorldToScreen(p gamemap.Point) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(p)
}

// DrawFrame clears the screen and renders tiles, floor items and
// creatures as seen by viewer.
func (r *Renderer) DrawFrame(w *ecs.World, gmap *gamemap.GameMap, viewer ecs.EntityID) {
	r.screen.Clear()
	var seen map[gamemap.Point]bool
	if pos, ok := system.PositionOf(w, viewer); ok {
		seen = system.VisibleFrom(gmap, pos, system.LOSRadius)
	}
	r.drawMap(gmap, seen)
	r.drawEntities(w, seen)
}

func (r *Renderer) drawMap(gmap *gamemap.GameMap, seen map[gamemap.Point]bool) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			p := gamemap.Point{X: x, Y: y}
			sx, sy, onScreen := r.camera.WorldToScreen(p)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, r.tiles.Tile(*gmap.At(x, y), seen == nil || seen[p]), style)
		}
	}
}

// drawable is one entity waiting to be drawn.
type drawable struct {
	order int
	pos   gamemap.Point
	glyph string
	color tcell.Color
}

// drawEntities draws floor items beneath creatures, only where visible.
func (r *Renderer) drawEntities(w *ecs.World, seen map[gamemap.Point]bool) {
	var list []drawable
	for _, id := range w.Query(component.CPosition) {
		pos := gamemap.Point(w.Get(id, component.CPosition).(component.Position))
		if seen != nil && !seen[pos] {
			continue
		}
		switch {
		case w.Has(id, component.CRenderable):
			rend := w.Get(id, component.CRenderable).(component.Renderable)
			list = append(list, drawable{order: 1, pos: pos, glyph: rend.Glyph, color: rend.FGColor})
		case w.Has(id, component.CFloorItem):
			fi := w.Get(id, component.CFloorItem).(component.FloorItem)
			list = append(list, drawable{pos: pos, glyph: ItemGlyph(fi.Item), color: tcell.ColorWhite})
		}
	}
	// Sort ascending by order (lower = drawn first / behind).
	sort.SliceStable(list, func(i, j int) bool { return list[i].order < list[j].order })

	for _, d := range list {
		sx, sy, onScreen := r.camera.WorldToScreen(d.pos)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(d.color).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, d.glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
