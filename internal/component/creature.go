package component

import "missile-engine/internal/ecs"

const CCreature ecs.ComponentType = 4

// Holiness is a creature's broad nature, which several brands key off.
type Holiness uint8

const (
	HolinessNatural Holiness = iota
	HolinessUndead
	HolinessDemonic
	HolinessNonliving
	HolinessHoly
)

// Creature holds the defensive profile of anything a missile can hit.
type Creature struct {
	Name         string // "orc", "you"
	Unique       bool   // named creatures take no article
	Level        int    // hit dice or experience level
	Evasion      int
	AC           int
	Holiness     Holiness
	Chaotic      bool
	Shapeshifter bool
	Mutations    int
	Flying       bool
	NoTele       bool // immune to translocation
}

func (Creature) Type() ecs.ComponentType { return CCreature }
