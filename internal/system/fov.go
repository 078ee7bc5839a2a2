package system

import (
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
)

// LOSRadius is how far any creature can see.
const LOSRadius = 8

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// VisibleFrom runs recursive shadowcasting from origin and returns the set
// of visible cells. The map is only read, so it is safe on a live map
// during resolution.
func VisibleFrom(gmap *gamemap.GameMap, origin gamemap.Point, radius int) map[gamemap.Point]bool {
	seen := make(map[gamemap.Point]bool)
	if !gmap.InBounds(origin.X, origin.Y) {
		return seen
	}
	seen[origin] = true
	for _, m := range octants {
		castLight(gmap, seen, origin.X, origin.Y, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3])
	}
	return seen
}

// CanSee reports whether observer has line of sight to p.
func CanSee(w *ecs.World, gmap *gamemap.GameMap, observer ecs.EntityID, p gamemap.Point) bool {
	c := w.Get(observer, component.CPosition)
	if c == nil {
		return false
	}
	from := gamemap.Point(c.(component.Position))
	if gamemap.Distance(from, p) > LOSRadius {
		return false
	}
	return VisibleFrom(gmap, from, LOSRadius)[p]
}

// castLight casts light for one octant using recursive shadowcasting.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(gmap *gamemap.GameMap, seen map[gamemap.Point]bool, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius*radius) + float64(radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dy*dy) <= radiusSq && gmap.InBounds(wx, wy) {
				seen[gamemap.Point{X: wx, Y: wy}] = true
			}

			opaque := !gmap.InBounds(wx, wy) || !gmap.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(gmap, seen, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
