// Package brand resolves the brands of a launcher and its ammunition into
// what one shot actually carries.
package brand

import (
	"strings"

	"missile-engine/internal/item"
)

// Flavour is the elemental character of a beam.
type Flavour uint8

const (
	FlavourPlain Flavour = iota
	FlavourFire
	FlavourCold
	FlavourChaos // a random element per hit
)

func (f Flavour) String() string {
	switch f {
	case FlavourFire:
		return "fire"
	case FlavourCold:
		return "cold"
	case FlavourChaos:
		return "chaos"
	}
	return "plain"
}

// Set is a bitset of brands.
type Set uint32

// Of builds a Set from brands.
func Of(bs ...item.Brand) Set {
	var s Set
	for _, b := range bs {
		s = s.With(b)
	}
	return s
}

func (s Set) Has(b item.Brand) bool    { return s&(1<<b) != 0 }
func (s Set) With(b item.Brand) Set    { return s | 1<<b }
func (s Set) Without(b item.Brand) Set { return s &^ (1 << b) }
func (s Set) Empty() bool              { return s == 0 }

// Brands lists the members in declaration order.
func (s Set) Brands() []item.Brand {
	var out []item.Brand
	for _, b := range item.Brands() {
		if s.Has(b) {
			out = append(out, b)
		}
	}
	return out
}

// Options carries the context brand resolution depends on.
type Options struct {
	Mode item.Mode
	// FixedLauncher keeps the launcher's element over branded ammunition.
	FixedLauncher bool
	// AmmoKnown is set when the projectile's own brand is identified.
	AmmoKnown bool
	// BaseName is the projectile's display name, brand included if known.
	BaseName string
}

// Resolution is the effective brand state of one shot.
type Resolution struct {
	Flavour Flavour
	// Set holds the independent, non-elemental brands in effect.
	Set Set
	// FromAmmo marks members of Set the projectile itself carries.
	FromAmmo Set
	Name     string
	HitVerb  string
}

// launcherOnly brands mean nothing on ammunition.
var launcherOnly = Of(item.BrandVorpal, item.BrandReturning)

// ammoOnly brands mean nothing on a launcher.
var ammoOnly = Of(item.BrandSteel, item.BrandParalysis, item.BrandSleep,
	item.BrandConfusion, item.BrandSlow, item.BrandFrenzy)

// namePrefixes is the fixed order of adjectives added for brands the
// projectile's own name does not already show.
var namePrefixes = []struct {
	brand item.Brand
	adj   string
}{
	{item.BrandDispersal, "dispersal"},
	{item.BrandPoisoned, "poisoned"},
	{item.BrandPenetrating, "penetrating"},
	{item.BrandSilver, "silvery"},
	{item.BrandHoly, "blessed"},
	{item.BrandExploding, "exploding"},
}

// Resolve combines the launcher-side brand (a launcher's, or a thrown
// weapon's own) with the ammunition brand. It is pure: the same inputs
// always give the same Resolution.
func Resolve(launcher, ammo item.Brand, opt Options) Resolution {
	if opt.Mode == item.Fumbled {
		launcher, ammo = item.BrandNormal, item.BrandNormal
	}
	if launcher.Opposes(ammo) {
		launcher, ammo = item.BrandNormal, item.BrandNormal
	}
	if ammo != item.BrandNormal && (launcher == item.BrandFlame || launcher == item.BrandFrost) {
		if opt.FixedLauncher {
			if ammo.Elemental() {
				ammo = item.BrandNormal
			}
		} else {
			launcher = item.BrandNormal
		}
	}

	res := Resolution{}
	switch {
	case launcher == item.BrandChaos || ammo == item.BrandChaos:
		res.Flavour = FlavourChaos
	case launcher == item.BrandFlame || ammo == item.BrandFlame:
		res.Flavour = FlavourFire
	case launcher == item.BrandFrost || ammo == item.BrandFrost:
		res.Flavour = FlavourCold
	}

	var fromLauncher Set
	if launcher != item.BrandNormal && !launcher.Elemental() && !ammoOnly.Has(launcher) {
		fromLauncher = fromLauncher.With(launcher)
	}
	if ammo != item.BrandNormal && !ammo.Elemental() && !launcherOnly.Has(ammo) {
		res.FromAmmo = res.FromAmmo.With(ammo)
	}
	res.Set = fromLauncher | res.FromAmmo
	if res.Flavour == FlavourChaos {
		res.Set = res.Set.Without(item.BrandPoisoned)
	}
	if res.Set.Has(item.BrandExploding) {
		res.Set = res.Set.Without(item.BrandPenetrating)
	}
	res.FromAmmo &= res.Set

	res.Name = name(res, launcher, ammo, opt)
	res.HitVerb = "hits"
	if res.Set.Has(item.BrandPenetrating) {
		res.HitVerb = "pierces through"
	}
	return res
}

func name(res Resolution, launcher, ammo item.Brand, opt Options) string {
	var b strings.Builder
	for _, p := range namePrefixes {
		if res.Set.Has(p.brand) && !res.FromAmmo.Has(p.brand) {
			b.WriteString(p.adj)
			b.WriteByte(' ')
		}
	}
	b.WriteString(opt.BaseName)
	ownBrandShown := opt.AmmoKnown && ammo != item.BrandNormal
	if launcher.Elemental() && !ownBrandShown {
		b.WriteString(" of ")
		b.WriteString(launcher.String())
	}
	return b.String()
}
