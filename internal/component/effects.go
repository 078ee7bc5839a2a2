package component

import "missile-engine/internal/ecs"

const CEffects ecs.ComponentType = 7

// EffectKind describes what an active effect does.
type EffectKind uint8

const (
	EffectPoison EffectKind = iota
	EffectParalysis
	EffectSleep
	EffectConfusion
	EffectSlow
	EffectFrenzy
	EffectHeld // caught in a net
	EffectForm // transformed into something that cannot throw
	EffectInaccuracy
)

// ActiveEffect is a timed status applied to an entity.
type ActiveEffect struct {
	Kind           EffectKind
	Magnitude      int // poison stacks, frenzy degree
	TurnsRemaining int
}

type Effects struct {
	Active []ActiveEffect
}

func (Effects) Type() ecs.ComponentType { return CEffects }

func (e Effects) CloneComponent() ecs.Component {
	e.Active = append([]ActiveEffect(nil), e.Active...)
	return e
}
