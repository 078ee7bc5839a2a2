package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
	TileShallowWater
	TileDeepWater
	TileLava
)

// CloudKind is a short-lived cloud hanging over a tile.
type CloudKind uint8

const (
	CloudNone     CloudKind = iota
	CloudTeleport           // residue of a dispersal blink
)

// Tile holds the kind, passability and cloud state for one map cell.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
	Cloud       CloudKind
	CloudTurns  int
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false, Transparent: false}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, Transparent: true}
}

// MakeDoor returns an open door: walkable but blocks sight and missiles.
func MakeDoor() Tile {
	return Tile{Kind: TileDoor, Walkable: true, Transparent: false}
}

// MakeShallowWater returns wadeable water.
func MakeShallowWater() Tile {
	return Tile{Kind: TileShallowWater, Walkable: true, Transparent: true}
}

// MakeDeepWater returns water that swallows items and drowns walkers.
func MakeDeepWater() Tile {
	return Tile{Kind: TileDeepWater, Walkable: false, Transparent: true}
}

// MakeLava returns lava: see-through, impassable, destroys items.
func MakeLava() Tile {
	return Tile{Kind: TileLava, Walkable: false, Transparent: true}
}

// IsWater reports whether the tile conducts electricity.
func (t Tile) IsWater() bool {
	return t.Kind == TileShallowWater || t.Kind == TileDeepWater
}

// DestroysItems reports whether items landing here are lost.
func (t Tile) DestroysItems() bool {
	return t.Kind == TileDeepWater || t.Kind == TileLava
}
