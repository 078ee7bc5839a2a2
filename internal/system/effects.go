package system

import (
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
)

// MaxPoison caps stacked poison levels.
const MaxPoison = 16

// TickEffects decrements all active effects by one turn, applies poison
// damage and removes expired effects.
func TickEffects(w *ecs.World) {
	for _, id := range w.Query(component.CEffects) {
		if dmg := GetPoisonDamage(w, id); dmg > 0 {
			if c := w.Get(id, component.CHealth); c != nil {
				hp := c.(component.Health)
				hp.Current -= dmg
				w.Add(id, hp)
			}
		}
		eff := w.Get(id, component.CEffects).(component.Effects)
		active := eff.Active[:0]
		for _, e := range eff.Active {
			e.TurnsRemaining--
			if e.TurnsRemaining > 0 {
				active = append(active, e)
			}
		}
		eff.Active = active
		w.Add(id, eff)
	}
}

// ApplyEffect adds an effect to an entity. An existing effect of the same
// kind is replaced only if the new one lasts longer.
func ApplyEffect(w *ecs.World, id ecs.EntityID, eff component.ActiveEffect) {
	effs := component.Effects{}
	if c := w.Get(id, component.CEffects); c != nil {
		effs = c.(component.Effects)
	}
	for i, e := range effs.Active {
		if e.Kind == eff.Kind {
			if eff.TurnsRemaining > e.TurnsRemaining {
				effs.Active[i] = eff
			}
			w.Add(id, effs)
			return
		}
	}
	effs.Active = append(effs.Active, eff)
	w.Add(id, effs)
}

// AddPoison stacks levels of poison onto an entity, capped at MaxPoison.
// Each level lasts a few turns longer than the last.
func AddPoison(w *ecs.World, id ecs.EntityID, levels int) {
	if levels <= 0 {
		return
	}
	effs := component.Effects{}
	if c := w.Get(id, component.CEffects); c != nil {
		effs = c.(component.Effects)
	}
	for i, e := range effs.Active {
		if e.Kind == component.EffectPoison {
			e.Magnitude = min(e.Magnitude+levels, MaxPoison)
			e.TurnsRemaining += levels * 2
			effs.Active[i] = e
			w.Add(id, effs)
			return
		}
	}
	effs.Active = append(effs.Active, component.ActiveEffect{
		Kind:           component.EffectPoison,
		Magnitude:      min(levels, MaxPoison),
		TurnsRemaining: levels * 3,
	})
	w.Add(id, effs)
}

// HasEffect reports whether an entity currently has an effect of the given kind.
func HasEffect(w *ecs.World, id ecs.EntityID, kind component.EffectKind) bool {
	_, ok := findEffect(w, id, kind)
	return ok
}

// EffectMagnitude returns the magnitude of kind on id, or 0.
func EffectMagnitude(w *ecs.World, id ecs.EntityID, kind component.EffectKind) int {
	e, _ := findEffect(w, id, kind)
	return e.Magnitude
}

func findEffect(w *ecs.World, id ecs.EntityID, kind component.EffectKind) (component.ActiveEffect, bool) {
	c := w.Get(id, component.CEffects)
	if c == nil {
		return component.ActiveEffect{}, false
	}
	for _, e := range c.(component.Effects).Active {
		if e.Kind == kind {
			return e, true
		}
	}
	return component.ActiveEffect{}, false
}

// GetPoisonDamage returns the poison damage the entity takes this turn.
func GetPoisonDamage(w *ecs.World, id ecs.EntityID) int {
	return EffectMagnitude(w, id, component.EffectPoison)
}
