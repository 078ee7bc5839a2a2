package hook

import (
	"missile-engine/internal/actor"
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/rng"
	"missile-engine/internal/system"
)

// HitKind names a hit effect.
type HitKind uint8

const (
	HitPoison HitKind = iota
	HitElectricWater
	HitDispersal
	HitParalysis
	HitSleep
	HitConfusion
	HitSlow
	HitFrenzy
	HitChaosStatus
	HitNet
)

var hitNames = [...]string{
	HitPoison:        "poison",
	HitElectricWater: "discharge",
	HitDispersal:     "dispersal",
	HitParalysis:     "paralysis",
	HitSleep:         "sleep",
	HitConfusion:     "confusion",
	HitSlow:          "slow",
	HitFrenzy:        "frenzy",
	HitChaosStatus:   "chaos",
	HitNet:           "net",
}

func (k HitKind) String() string {
	if int(k) >= len(hitNames) {
		return "unknown"
	}
	return hitNames[k]
}

// HitEffect applies a consequence after a confirmed hit.
type HitEffect struct {
	Kind HitKind
}

// Apply reports whether anything happened. Effects are no-ops on a
// tracer.
func (e HitEffect) Apply(ctx *Context, dmg int) bool {
	if ctx.Tracer {
		return false
	}
	switch e.Kind {
	case HitPoison:
		return poison(ctx, dmg)
	case HitElectricWater:
		return discharge(ctx)
	case HitDispersal:
		return disperse(ctx, dmg)
	case HitParalysis, HitSleep, HitConfusion, HitSlow, HitFrenzy:
		return needle(ctx, e.Kind)
	case HitChaosStatus:
		return chaosStatus(ctx, dmg)
	case HitNet:
		return ensnare(ctx)
	}
	return false
}

// PoisonImmune reports whether v cannot be poisoned.
func PoisonImmune(v actor.Creature) bool {
	h := v.Info().Holiness
	return v.Resists().Poison > 0 || h == component.HolinessUndead || h == component.HolinessNonliving
}

func poison(ctx *Context, dmg int) bool {
	v := ctx.Victim
	if PoisonImmune(v) {
		return false
	}
	if dmg <= 0 && !ctx.AutoHit {
		return false
	}
	v.Poison(1 + rng.Random2(ctx.RNG, 3))
	if v.IsPlayer() {
		ctx.say("You are poisoned.")
	} else {
		ctx.say(v.Subject() + " is poisoned.")
	}
	return true
}

// Net hold durations, in turns.
const (
	NetHoldMin = 4
	NetHoldMax = 8
)

// ensnare catches the victim in a net. Giants are too big to hold.
func ensnare(ctx *Context) bool {
	v := ctx.Victim
	if m, ok := ctx.World.Get(v.Entity, component.CMonster).(component.Monster); ok && m.Species == "giant" {
		ctx.say(v.Subject() + " is too large for the net.")
		return false
	}
	v.ApplyStatus(component.EffectHeld, rng.RandomRange(ctx.RNG, NetHoldMin, NetHoldMax), 1)
	if v.IsPlayer() {
		ctx.say("You are caught in the net!")
	} else {
		ctx.say(v.Subject() + " is caught in the net!")
	}
	return true
}

// DischargeRadius is how far a discharge in water spreads.
const DischargeRadius = 1

func discharge(ctx *Context) bool {
	v := ctx.Victim
	at := v.Pos()
	if ctx.Map == nil || !ctx.Map.IsWater(at) || v.Info().Flying || v.Resists().Elec > 0 {
		return false
	}
	if !rng.OneChanceIn(ctx.RNG, 3) {
		return false
	}
	ctx.say("Electricity arcs through the water!")
	for dy := -DischargeRadius; dy <= DischargeRadius; dy++ {
		for dx := -DischargeRadius; dx <= DischargeRadius; dx++ {
			p := at.Add(dx, dy)
			if !ctx.Map.IsWater(p) {
				continue
			}
			id := system.CreatureAt(ctx.World, p)
			if id == ecs.NilEntity {
				continue
			}
			c := actor.Victim(ctx.World, id)
			if c.Info().Flying || c.Resists().Elec > 0 {
				continue
			}
			ctx.hurt(c, 1+rng.Random2(ctx.RNG, 10))
		}
	}
	return true
}

// DispersalRange bounds how far dispersal can throw a victim.
const DispersalRange = 8

func disperse(ctx *Context, dmg int) bool {
	v := ctx.Victim
	if dmg <= 0 || v.Info().NoTele || ctx.Map == nil {
		return false
	}
	first, ok1 := blinkSpot(ctx)
	second, ok2 := blinkSpot(ctx)
	if !ok1 && !ok2 {
		return false
	}
	dest := first
	if !ok1 || (ok2 && gamemap.Distance(second, ctx.AgentPos) > gamemap.Distance(first, ctx.AgentPos)) {
		dest = second
	}

	from := v.Pos()
	ctx.Map.PlaceCloud(from, gamemap.CloudTeleport, 1+rng.Random2(ctx.RNG, 3))
	v.MoveTo(dest)
	switch {
	case v.IsPlayer():
		ctx.say("You blink!")
	case ctx.visible(dest):
		ctx.say(v.Subject() + " blinks!")
	default:
		ctx.say(v.Subject() + " vanishes!")
	}
	return true
}

// blinkTries bounds the search for a landing spot.
const blinkTries = 50

func blinkSpot(ctx *Context) (gamemap.Point, bool) {
	v := ctx.Victim
	from := v.Pos()
	for i := 0; i < blinkTries; i++ {
		p := from.Add(rng.RandomRange(ctx.RNG, -DispersalRange, DispersalRange),
			rng.RandomRange(ctx.RNG, -DispersalRange, DispersalRange))
		if p == from {
			continue
		}
		if system.Habitable(ctx.World, ctx.Map, v.Entity, p) {
			return p, true
		}
	}
	return gamemap.Point{}, false
}

func chaosStatus(ctx *Context, dmg int) bool {
	switch n := rng.Random2(ctx.RNG, 42); {
	case n < 10:
		return poison(ctx, dmg)
	case n < 20:
		return inflict(ctx, HitConfusion)
	case n < 25:
		return inflict(ctx, HitSlow)
	case n < 30:
		return inflict(ctx, HitFrenzy)
	case n < 32:
		return disperse(ctx, dmg)
	}
	return false
}
