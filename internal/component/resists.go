package component

import "missile-engine/internal/ecs"

const CResists ecs.ComponentType = 9

// Resists holds resistance levels; negative means vulnerable.
type Resists struct {
	Poison, Fire, Cold, Elec int
}

func (Resists) Type() ecs.ComponentType { return CResists }
