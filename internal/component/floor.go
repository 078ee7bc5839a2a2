package component

import (
	"missile-engine/internal/ecs"
	"missile-engine/internal/item"
)

const (
	CFloorItem ecs.ComponentType = 13
	CFaction   ecs.ComponentType = 14
)

// FloorItem is an item stack lying on the map.
type FloorItem struct{ item.Item }

func (FloorItem) Type() ecs.ComponentType { return CFloorItem }

// Side groups creatures that should not shoot each other.
type Side uint8

const (
	SideHostile Side = iota
	SideFriendly
)

// Faction records which side an entity fights for.
type Faction struct {
	Side Side
}

func (Faction) Type() ecs.ComponentType { return CFaction }
