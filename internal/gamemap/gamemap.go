package gamemap

// Point is a map coordinate.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{p.X + dx, p.Y + dy} }

// Distance is the grid (Chebyshev) distance between p and q.
func Distance(p, q Point) int {
	dx, dy := abs(p.X-q.X), abs(p.Y-q.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap holds the tile grid for one level.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// Clone returns a deep copy; the tracer pass works on one.
func (m *GameMap) Clone() *GameMap {
	c := &GameMap{Width: m.Width, Height: m.Height, Tiles: make([][]Tile, m.Height)}
	for y := range m.Tiles {
		c.Tiles[y] = append([]Tile(nil), m.Tiles[y]...)
	}
	return c
}

// Carve fills r (inclusive) with t.
func (m *GameMap) Carve(r Rect, t Tile) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if m.InBounds(x, y) {
				m.Tiles[y][x] = t
			}
		}
	}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Transparent
}

// IsWater reports whether p is in bounds and water.
func (m *GameMap) IsWater(p Point) bool {
	return m.InBounds(p.X, p.Y) && m.Tiles[p.Y][p.X].IsWater()
}

// PlaceCloud puts a cloud over p unless one is already there.
func (m *GameMap) PlaceCloud(p Point, kind CloudKind, turns int) {
	if !m.InBounds(p.X, p.Y) || turns <= 0 {
		return
	}
	t := m.At(p.X, p.Y)
	if t.Cloud != CloudNone {
		return
	}
	t.Cloud = kind
	t.CloudTurns = turns
}

// TickClouds ages every cloud by a turn.
func (m *GameMap) TickClouds() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			t := &m.Tiles[y][x]
			if t.Cloud == CloudNone {
				continue
			}
			t.CloudTurns--
			if t.CloudTurns <= 0 {
				t.Cloud = CloudNone
				t.CloudTurns = 0
			}
		}
	}
}
