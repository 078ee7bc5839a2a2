package beam

import (
	"context"

	"missile-engine/internal/actor"
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/hook"
	"missile-engine/internal/item"
	"missile-engine/internal/rng"
)

// Affect resolves the beam against one creature and records the Impact.
// The agent is never affected by its own shot. On a tracer pass nothing
// is changed; the victim's exposure is added to b.Stats instead.
func Affect(ctx context.Context, env *Env, b *Beam, id ecs.EntityID) (Impact, bool) {
	if id == b.Agent || !env.World.Alive(id) {
		return Impact{}, false
	}
	v := actor.Victim(env.World, id)
	info := v.Info()
	imp := Impact{Victim: id, Name: v.Name()}

	roll := 0
	hit := b.AutoHit
	if !hit {
		roll = rng.Random2(env.RNG, b.ToHit)
		hit = roll >= info.Evasion
	}
	if !hit {
		env.Say(ctx, b, "The "+b.Name+" "+MissVerb(info.Evasion-roll)+" "+v.Name()+".")
		b.Impacts = append(b.Impacts, imp)
		return imp, true
	}
	imp.Hit = true
	env.Say(ctx, b, "The "+b.Name+" "+b.HitVerb+" "+v.Name()+".")

	dmg := b.Damage.Roll(env.RNG)
	dmg -= rng.Random2(env.RNG, 1+info.AC)
	dmg = max(dmg, 0)
	dmg = hook.Elemental(b.Flavour, dmg, v.Resists())

	hctx := b.hookContext(ctx, env, v)
	for _, d := range b.Damages {
		var ok bool
		if dmg, ok = d.Apply(hctx, dmg); ok {
			imp.Effects = append(imp.Effects, d.Kind.String())
		}
	}
	imp.Damage = dmg

	if b.Tracer {
		b.expose(env.World, v)
		b.Impacts = append(b.Impacts, imp)
		return imp, true
	}

	imp.Killed = v.Hurt(dmg)
	if !imp.Killed {
		for _, h := range b.Hits {
			if h.Apply(hctx, dmg) {
				imp.Effects = append(imp.Effects, h.Kind.String())
			}
			// A discharge can kill the victim; later effects need a body.
			if !v.Alive() {
				imp.Killed = true
				break
			}
		}
	} else {
		env.kill(ctx, b, v)
	}
	b.Impacts = append(b.Impacts, imp)
	return imp, true
}

func (b *Beam) hookContext(ctx context.Context, env *Env, v actor.Creature) *hook.Context {
	return &hook.Context{
		World:    env.World,
		Map:      env.Map,
		RNG:      env.RNG,
		Agent:    b.Agent,
		AgentPos: b.Origin,
		Victim:   v,
		Launched: b.Mode == item.Launched,
		Power:    b.Power,
		Skill:    b.Skill,
		Enchant:  b.Enchant,
		Tracer:   b.Tracer,
		AutoHit:  b.AutoHit,
		Say:      func(s string) { env.Say(ctx, b, s) },
		Visible:  env.Visible,
		Killed:   func(c actor.Creature) { env.kill(ctx, b, c) },
	}
}

// expose adds a victim to the tracer statistics.
func (b *Beam) expose(w *ecs.World, v actor.Creature) {
	power := max(v.Info().Level, 1)
	if actor.SameSide(w, b.Agent, v.Entity) {
		b.Stats.FriendCount++
		b.Stats.FriendPower += power
		return
	}
	b.Stats.FoeCount++
	b.Stats.FoePower += power
}

// MissVerb describes a miss by how far the roll fell short.
func MissVerb(margin int) string {
	switch {
	case margin <= 2:
		return "barely misses"
	case margin <= 5:
		return "closely misses"
	case margin >= 15:
		return "completely misses"
	}
	return "misses"
}

// Explode bursts an exploding beam at p, catching every creature within
// the radius, the shooter included.
func Explode(ctx context.Context, env *Env, b *Beam, p gamemap.Point) {
	if b.Explosion == nil {
		return
	}
	ex := b.Explosion
	env.Say(ctx, b, "The "+b.Name+" explodes!")
	for _, id := range env.World.Query(component.CCreature, component.CPosition) {
		v := actor.Victim(env.World, id)
		if gamemap.Distance(v.Pos(), p) > ex.Radius {
			continue
		}
		dmg := hook.Elemental(b.Flavour, ex.Dice.Roll(env.RNG), v.Resists())
		dmg = max(dmg-rng.Random2(env.RNG, 1+v.Info().AC), 0)
		imp := Impact{Victim: id, Name: v.Name(), Hit: true, Damage: dmg, Effects: []string{ex.Name}}
		if b.Tracer {
			b.expose(env.World, v)
		} else {
			env.Say(ctx, b, "The explosion engulfs "+v.Name()+".")
			if imp.Killed = v.Hurt(dmg); imp.Killed {
				env.kill(ctx, b, v)
			}
		}
		b.Impacts = append(b.Impacts, imp)
	}
}
