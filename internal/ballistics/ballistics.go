// Package ballistics turns an attacker, a projectile and its launcher into
// a to-hit value and a damage roll.
//
// Every multiplier is integer percentage arithmetic with random rounding,
// so the same inputs give a spread of results. The draws are taken from
// the Source in a fixed order; a seeded source reproduces them exactly.
package ballistics

import (
	"missile-engine/internal/actor"
	"missile-engine/internal/brand"
	"missile-engine/internal/fault"
	"missile-engine/internal/item"
	"missile-engine/internal/rng"
)

const (
	LaunchedRange = 12
	ThrownRange   = 9
	NetRange      = 3
)

// Input is everything the formula reads.
type Input struct {
	Mode       item.Mode
	Projectile item.Item
	// Launcher is only read when Mode is Launched.
	Launcher   item.Item
	Resolution brand.Resolution

	Str, Dex         int
	StrBase, DexBase int
	Skill            int // launcher skill, or throwing when thrown by hand
	Throwing         int
	Darts            int

	Held          bool
	Inaccurate    bool
	SlayHit       int
	SlayDam       int
	ShieldPenalty int
	Frenzy        int
	Fighter       bool
	ThrowsRocks   bool

	// AccBonus is an external bonus granted to this one shot.
	AccBonus int
}

// Result is the computed shot.
type Result struct {
	ToHit    int
	Dice     rng.Dice
	DiceMult int // final damage percentage
	Range    int
	AutoHit  bool
}

// FromAttacker gathers Input from an attacker view.
func FromAttacker(a actor.Attacker, proj item.Item, launcher *item.Item, mode item.Mode, res brand.Resolution, accBonus int) Input {
	strBase, dexBase := a.StatBase()
	slayHit, slayDam := a.Slaying()
	st := a.Status()
	tr := a.Traits()
	in := Input{
		Mode:          mode,
		Projectile:    proj,
		Resolution:    res,
		Str:           a.Strength(),
		Dex:           a.Dexterity(),
		StrBase:       strBase,
		DexBase:       dexBase,
		Skill:         a.Skill(item.SkillThrowing),
		Throwing:      a.Skill(item.SkillThrowing),
		Darts:         a.Skill(item.SkillDarts),
		Held:          st.Held,
		Inaccurate:    st.Inaccurate,
		SlayHit:       slayHit,
		SlayDam:       slayDam,
		ShieldPenalty: a.ShieldPenalty(),
		Frenzy:        st.Frenzy,
		Fighter:       tr.Fighter,
		ThrowsRocks:   tr.ThrowsRocks,
		AccBonus:      accBonus,
	}
	if mode == item.Launched && launcher != nil {
		in.Launcher = *launcher
		in.Skill = a.Skill(item.LauncherSkill(launcher.LauncherClass()))
	}
	return in
}

// calc accumulates the terms of one computation.
type calc struct {
	r                rng.Source
	in               Input
	baseHit, baseDam int
	exHit, exDam     int
	mult             int
}

// Compute runs the ballistic formula.
func Compute(r rng.Source, in Input) Result {
	c := &calc{r: r, in: in, mult: 100}
	proj := in.Projectile
	res := Result{Range: c.rangeFor()}

	switch in.Mode {
	case item.Launched:
		c.launched()
		res.AutoHit = proj.IsMissile(item.MissileNeedle) &&
			in.Launcher.LauncherClass() == item.LauncherBlowgun
	case item.Thrown:
		c.thrown()
	default:
		c.fumbled()
	}

	if in.Resolution.Set.Has(item.BrandSteel) {
		c.mult = c.mult * 130 / 100
	}
	if in.Frenzy > 0 {
		c.mult = c.mult * (115 + 15*in.Frenzy) / 100
	}
	if in.Fighter {
		c.mult = c.mult * 120 / 100
	}

	slay := 0
	if in.Mode != item.Fumbled && !proj.IsMissile(item.MissileLargeRock) && !proj.IsMissile(item.MissileNet) {
		c.exHit += in.Dex / 2
		c.exHit += in.SlayHit
		if !res.AutoHit {
			slay = signedRandom2(r, in.SlayDam)
		}
	}
	if in.Inaccurate {
		c.baseHit -= 5
	}
	c.exHit -= in.ShieldPenalty

	hit := c.baseHit
	if c.exHit >= 0 {
		hit += rng.Random2Avg(r, c.exHit+1, 2)
	} else {
		hit -= rng.Random2Avg(r, 1-c.exHit, 2)
	}
	hit += proj.Plus + in.AccBonus

	size := c.baseDam
	if c.exDam >= 0 {
		size += rng.Random2(r, c.exDam+1)
	} else {
		size -= rng.Random2(r, 1-c.exDam)
	}
	size = rng.DivRandRound(r, size*c.mult, 100) + slay
	if size < 0 {
		size = 0
	}

	res.ToHit = max(hit, 0)
	res.Dice = rng.Dice{Num: 1, Size: size}
	res.DiceMult = c.mult
	return res
}

func (c *calc) rangeFor() int {
	proj := c.in.Projectile
	switch {
	case c.in.Mode == item.Launched:
		return LaunchedRange
	case proj.IsMissile(item.MissileLargeRock):
		dist := 1 + rng.Random2(c.r, c.in.Str/5)
		if c.in.ThrowsRocks {
			dist += 4 + rng.Random2(c.r, 4)
		}
		return min(dist, LaunchedRange)
	case proj.IsMissile(item.MissileNet):
		return NetRange
	case c.in.Mode == item.Thrown:
		return ThrownRange
	}
	return clamp(c.in.Str-proj.Mass()/10+3, 1, ThrownRange)
}

// fumbled covers generic objects and items not made for throwing.
func (c *calc) fumbled() {
	proj := c.in.Projectile
	mass := proj.Mass()
	c.baseHit = min(0, c.in.Str-mass/10)
	c.baseDam = mass / 100
	if proj.Class == item.ClassWeapon {
		c.baseDam = max(0, proj.BaseDamage()-4)
	}
	c.exHit = c.in.Dex / 4
	if proj.IsMissile(item.MissileNeedle) {
		pen := (30 - c.in.Darts) / 3
		c.baseHit -= pen
		c.exHit -= pen
	}
}

func (c *calc) launched() {
	in := c.in
	proj, lnch := in.Projectile, in.Launcher
	def := item.Weapon(lnch.Weapon)
	ammoDam := proj.BaseDamage()

	c.baseHit = def.Accuracy
	if def.Damage == 0 {
		c.baseDam = ammoDam
	} else {
		c.baseDam = def.Damage + rng.Random2(c.r, 1+ammoDam)
	}
	if in.Resolution.Flavour != brand.FlavourPlain && c.baseDam == 0 {
		c.baseDam = 4
	}
	if lnch.Race != item.RaceNone && lnch.Race == proj.Race {
		c.baseHit++
		c.baseDam++
	}
	if in.Held {
		c.baseHit--
	}
	c.exHit = signedRandom2(c.r, lnch.Plus)
	c.exDam = signedRandom2(c.r, lnch.Plus2+proj.Plus2)

	skill := in.Skill
	switch def.Launcher {
	case item.LauncherSling:
		if proj.IsMissile(item.MissileSlingBullet) {
			c.baseHit += 4
		}
		c.exHit += skill*3/2 + in.Throwing/5
		c.exDam += min(strBonus(in.Str, 9, c.baseDam, ammoDam), lnch.Plus2+1)
		c.mult = c.mult * (14 + rng.Random2(c.r, 1+skill)) / 14
	case item.LauncherBlowgun:
		c.baseHit -= 2
		c.exHit += skill*3/2 + in.Dex/2 + in.Throwing/5
		c.exDam = 0
	case item.LauncherBow:
		c.baseHit -= 3
		c.exHit += skill * 2
		c.exDam += min(strBonus(in.Str, 4, c.baseDam, ammoDam), lnch.Plus2+1)
		c.mult = c.mult * (17 + rng.Random2(c.r, 1+skill)) / 17
	case item.LauncherCrossbow:
		c.baseHit++
		c.exHit += 3*skill/2 + 6
		c.mult = c.mult * (22 + rng.Random2(c.r, 1+skill)) / 22
		if lnch.Weapon == item.WeaponHandCrossbow {
			c.exHit -= 2
			c.mult = c.mult * 26 / 30
		}
	default:
		panic(fault.Internalf("ballistics: unknown launcher class %d", def.Launcher))
	}

	if in.Resolution.Set.Has(item.BrandVorpal) {
		c.mult = c.mult * 120 / 100
	}
	if in.Resolution.Flavour != brand.FlavourPlain {
		c.mult = c.mult * 140 / 100
	}
}

func (c *calc) thrown() {
	in := c.in
	proj := in.Projectile
	ammoDam := proj.Plus2
	throwing := in.Throwing

	c.baseDam = proj.BaseDamage()
	c.exHit = throwing * 2
	c.exDam = (10 * (throwing/2 + in.Str - 10)) / 12 * (3*c.baseDam + ammoDam) / 30

	switch {
	case proj.IsWeapon(item.WeaponDagger):
		c.baseHit = 1
	case proj.IsWeapon(item.WeaponSpear):
		c.baseHit = -1
	case proj.Class == item.ClassWeapon:
		c.baseHit = -5
	case proj.IsMissile(item.MissileDart):
		c.baseHit = 2
		c.exHit = in.Darts*2 + throwing*2/3
		c.exDam = in.Darts/3 + throwing/5
	case proj.IsMissile(item.MissileJavelin):
		c.baseHit = 1
		c.exHit += rng.SkillBump(throwing)
		c.exDam += throwing * 3 / 5
	case proj.IsMissile(item.MissileNet):
		c.baseHit = 1
		c.baseDam = 0
		c.exHit += rng.SkillBump(throwing) * 7 / 2
	}
	if proj.IsMissile(item.MissileDart) || proj.IsMissile(item.MissileStone) {
		c.baseDam = rng.DivRandRound(c.r, c.baseDam, 2)
	}

	c.exDam = rng.StatAdjust(c.r, c.exDam, in.Str, in.StrBase, 160, 90)
	c.exHit = rng.StatAdjust(c.r, c.exHit, in.Dex, in.DexBase, 160, 90)
	if proj.IsMissile(item.MissileJavelin) {
		c.exDam = rng.StatAdjust(c.r, c.exDam, in.Dex, 20, 150, 100)
	}
	if in.Resolution.Flavour != brand.FlavourPlain {
		c.mult = c.mult * 130 / 100
	}
}

// strBonus is the launcher strength bonus before its enchantment cap.
func strBonus(str, div, baseDam, ammoDam int) int {
	return (10 * (str - 10)) / div * (2*baseDam + ammoDam) / 20
}

// signedRandom2 draws in [0, x] for x >= 0 and mirrors negative x.
func signedRandom2(r rng.Source, x int) int {
	if x >= 0 {
		return rng.Random2(r, x+1)
	}
	return -rng.Random2(r, 1-x)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
