package component

import "missile-engine/internal/ecs"

const CTagPlayer ecs.ComponentType = 8

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }
