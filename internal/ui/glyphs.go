package ui

import (
	"missile-engine/internal/gamemap"
	"missile-engine/internal/item"
)

// TileSet holds the emoji glyphs used to draw terrain. Emoji are rendered
// by the terminal with their own colors, so out-of-sight cells use
// distinct glyphs instead of a tinted foreground.
type TileSet struct {
	Wall         string
	Floor        string
	Door         string
	ShallowWater string
	DeepWater    string
	Lava         string
	DimWall      string // remembered but not currently visible
	DimFloor     string
}

// RangeTiles is the shooting range's tile set.
var RangeTiles = TileSet{
	Wall:         "🧱",
	Floor:        "🟫",
	Door:         "🚪",
	ShallowWater: "🟦",
	DeepWater:    "🌊",
	Lava:         "🌋",
	DimWall:      "🌑",
	DimFloor:     "🔲",
}

// CloudGlyph is drawn over a cell with a cloud.
const CloudGlyph = "✨"

// Tile returns the glyph for t.
func (ts TileSet) Tile(t gamemap.Tile, visible bool) string {
	if !visible {
		if t.Kind == gamemap.TileWall {
			return ts.DimWall
		}
		return ts.DimFloor
	}
	if t.Cloud != gamemap.CloudNone {
		return CloudGlyph
	}
	switch t.Kind {
	case gamemap.TileWall:
		return ts.Wall
	case gamemap.TileDoor:
		return ts.Door
	case gamemap.TileShallowWater:
		return ts.ShallowWater
	case gamemap.TileDeepWater:
		return ts.DeepWater
	case gamemap.TileLava:
		return ts.Lava
	}
	return ts.Floor
}

// ItemGlyph returns the glyph drawn for an item lying on the floor.
func ItemGlyph(it item.Item) string {
	switch it.Class {
	case item.ClassMissile:
		switch it.Missile {
		case item.MissileArrow, item.MissileBolt:
			return "🏹"
		case item.MissileDart, item.MissileNeedle:
			return "🎯"
		case item.MissileStone, item.MissileSlingBullet, item.MissileLargeRock:
			return "🪨"
		case item.MissileNet:
			return "🕸️"
		}
		return "🔱"
	case item.ClassWeapon:
		return "🗡️"
	}
	return "📦"
}
