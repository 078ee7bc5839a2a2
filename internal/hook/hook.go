// Package hook holds the per-brand effects a beam runs when it connects.
//
// Damage effects adjust the damage before it is dealt and run in both
// passes. Hit effects apply lasting consequences after a confirmed hit
// and never run on a tracer. Range effects decide whether the beam flies
// on after hitting.
package hook

import (
	"missile-engine/internal/actor"
	"missile-engine/internal/brand"
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/item"
	"missile-engine/internal/rng"
)

// Context is what an effect may read and, on a real pass, change.
type Context struct {
	World    *ecs.World
	Map      *gamemap.GameMap
	RNG      rng.Source
	Agent    ecs.EntityID
	AgentPos gamemap.Point
	Victim   actor.Creature

	Launched bool
	Power    int // blowgun power
	Skill    int
	Enchant  int
	Tracer   bool
	AutoHit  bool

	// Say reports a message to the player. It is never called on a tracer.
	Say func(string)
	// Visible reports whether the player can see p.
	Visible func(gamemap.Point) bool
	// Killed is told about any creature an effect kills.
	Killed func(actor.Creature)
}

func (c *Context) say(msg string) {
	if c.Tracer || c.Say == nil {
		return
	}
	c.Say(msg)
}

func (c *Context) visible(p gamemap.Point) bool {
	if c.Visible == nil {
		return true
	}
	return c.Visible(p)
}

// hurt deals side damage and reports deaths.
func (c *Context) hurt(v actor.Creature, dmg int) {
	if v.Hurt(dmg) && c.Killed != nil {
		c.Killed(v)
	}
}

// Build turns a brand resolution into its ordered effects. A net holds
// its victim before any brand applies.
func Build(res brand.Resolution, proj item.Item) (damages []DamageEffect, hits []HitEffect, ranges []RangeEffect) {
	set := res.Set
	if set.Has(item.BrandSilver) {
		damages = append(damages, DamageEffect{Kind: DamageSilver})
	}
	if set.Has(item.BrandElectric) {
		damages = append(damages, DamageEffect{Kind: DamageElectric})
	}
	if set.Has(item.BrandHoly) {
		damages = append(damages, DamageEffect{Kind: DamageHoly})
	}
	if res.Flavour == brand.FlavourChaos {
		damages = append(damages, DamageEffect{Kind: DamageChaosElement})
	}

	if proj.IsMissile(item.MissileNet) {
		hits = append(hits, HitEffect{Kind: HitNet})
	}
	if set.Has(item.BrandPoisoned) {
		hits = append(hits, HitEffect{Kind: HitPoison})
	}
	if set.Has(item.BrandElectric) {
		hits = append(hits, HitEffect{Kind: HitElectricWater})
	}
	if set.Has(item.BrandDispersal) {
		hits = append(hits, HitEffect{Kind: HitDispersal})
	}
	for _, b := range []item.Brand{item.BrandParalysis, item.BrandSleep, item.BrandConfusion, item.BrandSlow, item.BrandFrenzy} {
		if set.Has(b) {
			hits = append(hits, HitEffect{Kind: needleKinds[b]})
		}
	}
	if res.Flavour == brand.FlavourChaos {
		hits = append(hits, HitEffect{Kind: HitChaosStatus})
	}

	if set.Has(item.BrandPenetrating) {
		ranges = append(ranges, RangeEffect{Kind: RangePenetrate})
	}
	return damages, hits, ranges
}

var needleKinds = map[item.Brand]HitKind{
	item.BrandParalysis: HitParalysis,
	item.BrandSleep:     HitSleep,
	item.BrandConfusion: HitConfusion,
	item.BrandSlow:      HitSlow,
	item.BrandFrenzy:    HitFrenzy,
}

// Elemental adjusts dmg for a fire or cold flavour against the victim's
// resistances: resistant victims take a third, vulnerable ones half
// again.
func Elemental(f brand.Flavour, dmg int, res component.Resists) int {
	level := 0
	switch f {
	case brand.FlavourFire:
		level = res.Fire
	case brand.FlavourCold:
		level = res.Cold
	default:
		return dmg
	}
	switch {
	case level > 0:
		return dmg / 3
	case level < 0:
		return dmg * 3 / 2
	}
	return dmg
}
