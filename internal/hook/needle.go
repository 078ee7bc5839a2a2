package hook

import (
	"missile-engine/internal/component"
	"missile-engine/internal/rng"
)

// status describes one blowgun status brand.
type status struct {
	effect component.EffectKind
	base   int // monster duration before the power roll
	minP   int // duration range against the player
	maxP   int
	you    string // message when the player is affected
	them   string // message suffix for monsters
}

var statuses = map[HitKind]status{
	HitParalysis: {component.EffectParalysis, 3, 2, 4, "You suddenly lose the ability to move!", " is paralysed!"},
	HitSleep:     {component.EffectSleep, 5, 3, 6, "You fall asleep.", " falls asleep."},
	HitConfusion: {component.EffectConfusion, 5, 2, 5, "You feel confused.", " looks confused."},
	HitSlow:      {component.EffectSlow, 5, 5, 9, "You feel yourself slow down.", " seems to slow down."},
	HitFrenzy:    {component.EffectFrenzy, 5, 3, 6, "You feel a sudden frenzy!", " goes into a frenzy!"},
}

// NeedleSucceeds is the resistance roll for blowgun statuses. Success
// grows with skill and enchantment and shrinks with victim level.
func NeedleSucceeds(r rng.Source, skill, enchant, level int) bool {
	if skill >= level {
		return true
	}
	if level < 15 && rng.Random2(r, 100) < 3 {
		return true
	}
	return 2+rng.Random2(r, 4+skill+enchant) >= level
}

// NeedlePower is the duration bonus a shooter adds to statuses.
func NeedlePower(skill, enchant int) int {
	return (skill+enchant)/3 + 1
}

func needle(ctx *Context, kind HitKind) bool {
	if !ctx.Launched {
		return false
	}
	if unaffected(ctx) {
		return false
	}
	v := ctx.Victim
	if !NeedleSucceeds(ctx.RNG, ctx.Skill, ctx.Enchant, v.Info().Level) {
		if !v.IsPlayer() {
			ctx.say(v.Subject() + " resists.")
		} else {
			ctx.say("You resist.")
		}
		return false
	}
	return inflict(ctx, kind)
}

// unaffected reports and rejects victims with no mind or metabolism.
func unaffected(ctx *Context) bool {
	v := ctx.Victim
	h := v.Info().Holiness
	if h != component.HolinessUndead && h != component.HolinessNonliving {
		return false
	}
	if v.IsPlayer() {
		ctx.say("You are unaffected.")
	} else {
		ctx.say(v.Subject() + " is unaffected.")
	}
	return true
}

// inflict applies a status without a resistance roll.
func inflict(ctx *Context, kind HitKind) bool {
	st, ok := statuses[kind]
	if !ok {
		return false
	}
	if unaffected(ctx) {
		return false
	}
	v := ctx.Victim
	if v.IsPlayer() {
		v.ApplyStatus(st.effect, rng.RandomRange(ctx.RNG, st.minP, st.maxP), 1)
		ctx.say(st.you)
		return true
	}
	v.ApplyStatus(st.effect, st.base+rng.Random2(ctx.RNG, 1+ctx.Power), 1)
	ctx.say(v.Subject() + st.them)
	return true
}
