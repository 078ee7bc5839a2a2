package hook

import (
	"missile-engine/internal/brand"
	"missile-engine/internal/component"
	"missile-engine/internal/rng"
)

// DamageKind names a damage effect.
type DamageKind uint8

const (
	DamageSilver DamageKind = iota
	DamageElectric
	DamageHoly
	DamageChaosElement
)

func (k DamageKind) String() string {
	switch k {
	case DamageSilver:
		return "silver"
	case DamageElectric:
		return "electric"
	case DamageHoly:
		return "holy"
	case DamageChaosElement:
		return "chaos element"
	}
	return "unknown"
}

// DamageEffect changes damage before it is dealt.
type DamageEffect struct {
	Kind DamageKind
}

// Apply returns the adjusted damage and whether the effect did anything.
func (e DamageEffect) Apply(ctx *Context, dmg int) (int, bool) {
	switch e.Kind {
	case DamageSilver:
		return silver(ctx, dmg)
	case DamageElectric:
		return electric(ctx, dmg)
	case DamageHoly:
		return holy(ctx, dmg)
	case DamageChaosElement:
		return chaosElement(ctx, dmg)
	}
	return dmg, false
}

// SilverCap is the largest silver multiplier.
const SilverCap = 175

func silver(ctx *Context, dmg int) (int, bool) {
	v := ctx.Victim
	info := v.Info()
	mult := 100
	switch {
	case info.Chaotic || info.Shapeshifter:
		mult = SilverCap
	case v.IsPlayer() && info.Mutations > 0:
		mult = min(100+5*info.Mutations, SilverCap)
	}
	if mult == 100 {
		return dmg, false
	}
	ctx.say("The silver sears " + v.Name() + "!")
	return rng.ScalePercent(ctx.RNG, dmg, mult), true
}

func electric(ctx *Context, dmg int) (int, bool) {
	v := ctx.Victim
	if v.Info().Flying || v.Resists().Elec > 0 {
		return dmg, false
	}
	if !rng.OneChanceIn(ctx.RNG, 3) {
		return dmg, false
	}
	ctx.say("There is a sudden explosion of sparks!")
	return dmg + 10 + rng.Random2(ctx.RNG, 15), true
}

func holy(ctx *Context, dmg int) (int, bool) {
	v := ctx.Victim
	h := v.Info().Holiness
	if h != component.HolinessUndead && h != component.HolinessDemonic {
		return dmg, false
	}
	ctx.say(v.Subject() + " " + v.Verb("convulse") + "!")
	return dmg + 1 + rng.Random2(ctx.RNG, dmg*15)/10, true
}

// chaosElement picks fire, cold or nothing for this hit.
func chaosElement(ctx *Context, dmg int) (int, bool) {
	var f brand.Flavour
	switch n := rng.Random2(ctx.RNG, 30); {
	case n < 10:
		f = brand.FlavourFire
	case n < 20:
		f = brand.FlavourCold
	default:
		return dmg, false
	}
	v := ctx.Victim
	out := Elemental(f, dmg, v.Resists())
	if f == brand.FlavourFire {
		ctx.say("The chaos burns " + v.Name() + ".")
	} else {
		ctx.say("The chaos freezes " + v.Name() + ".")
	}
	return out, true
}
