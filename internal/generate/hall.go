// Package generate lays out shooting ranges and decides what stands in
// them.
package generate

import (
	"math/rand"

	"missile-engine/internal/gamemap"
	"missile-engine/internal/item"
)

// EnemySpawnEntry describes one possible creature spawn with its threat
// cost. Species keys into the species roster.
type EnemySpawnEntry struct {
	Species    string
	ThreatCost int
}

// ItemSpawnEntry describes one possible floor item.
type ItemSpawnEntry struct {
	Item item.Item
}

// Config drives generation of one range.
type Config struct {
	MapWidth, MapHeight int
	Pools               int // water and lava hazards across the middle
	Cover               int // single wall pillars in the field
	Bays                int // the field is split into this many strips
	EnemyBudget         int
	EnemyTable          []EnemySpawnEntry
	AllyCount           int
	AllyTable           []EnemySpawnEntry
	ItemCount           int
	ItemTable           []ItemSpawnEntry
	Rand                *rand.Rand
}

// Layout names the parts of a generated range.
type Layout struct {
	Spawn gamemap.Point // where the player starts
	Line  gamemap.Rect  // the firing line, behind which allies stand
	Field gamemap.Rect  // where the targets stand
}

// Generate carves a range: an open hall with the firing line at the west
// end, hazards across the middle and scattered cover in the field.
func Generate(cfg *Config) (*gamemap.GameMap, Layout) {
	w, h := max(cfg.MapWidth, 16), max(cfg.MapHeight, 7)
	gmap := gamemap.New(w, h)
	hall := gamemap.Rect{X1: 1, Y1: 1, X2: w - 2, Y2: h - 2}
	gmap.Carve(hall, gamemap.MakeFloor())
	gmap.Set(0, h/2, gamemap.MakeDoor())

	lay := Layout{
		Spawn: gamemap.Point{X: 2, Y: h / 2},
		Line:  gamemap.Rect{X1: 1, Y1: 1, X2: 4, Y2: h - 2},
		Field: gamemap.Rect{X1: w / 2, Y1: 1, X2: w - 2, Y2: h - 2},
	}
	middle := gamemap.Rect{X1: lay.Line.X2 + 2, Y1: 1, X2: lay.Field.X1 - 2, Y2: h - 2}
	for range cfg.Pools {
		placePool(gmap, middle, cfg.Rand)
	}
	for range cfg.Cover {
		x, y := randomIn(lay.Field, cfg.Rand)
		if (gamemap.Point{X: x, Y: y}) != lay.Spawn {
			gmap.Set(x, y, gamemap.MakeWall())
		}
	}
	return gmap, lay
}

// placePool drops a plus-shaped hazard of random kind inside r.
func placePool(gmap *gamemap.GameMap, r gamemap.Rect, rng *rand.Rand) {
	if r.X1 > r.X2 || r.Y1 > r.Y2 {
		return
	}
	var t gamemap.Tile
	switch rng.Intn(3) {
	case 0:
		t = gamemap.MakeShallowWater()
	case 1:
		t = gamemap.MakeDeepWater()
	default:
		t = gamemap.MakeLava()
	}
	cx, cy := randomIn(r, rng)
	for _, d := range [][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		x, y := cx+d[0], cy+d[1]
		if x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2 {
			gmap.Set(x, y, t)
		}
	}
}

func randomIn(r gamemap.Rect, rng *rand.Rand) (int, int) {
	x := r.X1 + rng.Intn(max(1, r.X2-r.X1+1))
	y := r.Y1 + rng.Intn(max(1, r.Y2-r.Y1+1))
	return x, y
}
