package system

import (
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK       MoveResult = iota // position updated
	MoveBlocked                    // wall, water or out-of-bounds
	MoveOccupied                   // a creature stands there
)

// CreatureAt returns the creature standing on p, or ecs.NilEntity.
func CreatureAt(w *ecs.World, p gamemap.Point) ecs.EntityID {
	for _, id := range w.Query(component.CCreature, component.CPosition) {
		if gamemap.Point(w.Get(id, component.CPosition).(component.Position)) == p {
			return id
		}
	}
	return ecs.NilEntity
}

// PositionOf returns id's position.
func PositionOf(w *ecs.World, id ecs.EntityID) (gamemap.Point, bool) {
	c := w.Get(id, component.CPosition)
	if c == nil {
		return gamemap.Point{}, false
	}
	return gamemap.Point(c.(component.Position)), true
}

// Habitable reports whether id could stand on p: walkable for walkers
// (flyers may also hover over deep water and lava) and not occupied by
// another creature.
func Habitable(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, p gamemap.Point) bool {
	if !gmap.InBounds(p.X, p.Y) {
		return false
	}
	t := gmap.At(p.X, p.Y)
	if !t.Walkable {
		flying := false
		if c := w.Get(id, component.CCreature); c != nil {
			flying = c.(component.Creature).Flying
		}
		if !flying || t.Kind == gamemap.TileWall || t.Kind == gamemap.TileDoor {
			return false
		}
	}
	other := CreatureAt(w, p)
	return other == ecs.NilEntity || other == id
}

// Relocate moves id straight to p without any checks.
func Relocate(w *ecs.World, id ecs.EntityID, p gamemap.Point) {
	w.Add(id, component.Position{X: p.X, Y: p.Y})
}

// TryMove attempts to move entity id by (dx, dy) on gmap.
// Returns the outcome and, for MoveOccupied, the creature in the way.
func TryMove(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	pos, ok := PositionOf(w, id)
	if !ok {
		return MoveBlocked, ecs.NilEntity
	}
	next := pos.Add(dx, dy)

	if other := CreatureAt(w, next); other != ecs.NilEntity && other != id {
		return MoveOccupied, other
	}
	if !gmap.IsWalkable(next.X, next.Y) {
		return MoveBlocked, ecs.NilEntity
	}
	Relocate(w, id, next)
	return MoveOK, ecs.NilEntity
}
