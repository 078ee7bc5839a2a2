package component

import "missile-engine/internal/ecs"

const CAI ecs.ComponentType = 5

// AI marks a monster that picks its own shots.
type AI struct {
	SightRange int
	Alerted    bool // heard something; acts even without a visible target
}

func (AI) Type() ecs.ComponentType { return CAI }
