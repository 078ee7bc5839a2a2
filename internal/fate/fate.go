// Package fate decides what becomes of a projectile once it lands, and how
// loud the shot was.
package fate

import (
	"missile-engine/internal/brand"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/item"
	"missile-engine/internal/rng"
)

// State is a step in a projectile's life after release.
type State uint8

const (
	Flying State = iota
	Landed
	Destroyed
	Dropped
	Returning
)

var stateNames = [...]string{"flying", "landed", "destroyed", "dropped", "returning"}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Disposition is where the projectile ends up.
type Disposition uint8

const (
	DispDropped Disposition = iota
	DispDestroyed
	DispReturned
)

func (d Disposition) String() string {
	switch d {
	case DispDestroyed:
		return "destroyed"
	case DispReturned:
		return "returned"
	}
	return "dropped"
}

// Input describes a landed projectile.
type Input struct {
	Item       item.Item
	Mode       item.Mode
	Resolution brand.Resolution
	// ReturnSkill is the thrower's skill for returning weapons.
	ReturnSkill int
	// Owner is "your pack" for the player or a monster's name.
	Owner   string
	Landing gamemap.Point
	Tile    gamemap.Tile
	// Seen is set when the player can see the landing cell.
	Seen bool
}

// Result is the projectile's fate.
type Result struct {
	State       State
	Disposition Disposition
	Identified  bool // the brand revealed itself
	Messages    []string
}

// Durability multipliers for branded ammunition.
const (
	steelDurability   = 10
	elementDurability = 2
)

// DestroyChance returns the chance num/den that it breaks on landing.
// Only ammunition breaks; chaos, dispersal and exploding ammunition always
// does.
func DestroyChance(it item.Item) (num, den int) {
	if it.Class != item.ClassMissile {
		return 0, 1
	}
	switch it.Brand {
	case item.BrandChaos, item.BrandDispersal, item.BrandExploding:
		return 1, 1
	}
	n := item.Missile(it.Missile).Fragility
	if n <= 0 {
		return 0, 1
	}
	switch it.Brand {
	case item.BrandSteel:
		n *= steelDurability
	case item.BrandFlame, item.BrandFrost:
		n *= elementDurability
	}
	return 1, n
}

// Resolve decides the fate of in.Item.
func Resolve(r rng.Source, in Input) Result {
	res := Result{State: Landed}
	name := in.Item.Name()

	if in.Mode == item.Thrown && in.Resolution.Set.Has(item.BrandReturning) {
		if !rng.OneChanceIn(r, 1+rng.SkillBump(in.ReturnSkill)) {
			res.State = Returning
			res.Disposition = DispReturned
			res.Identified = true
			res.Messages = append(res.Messages, "The "+name+" returns to "+in.Owner+"!")
			return res
		}
		res.Messages = append(res.Messages, "The "+name+" fails to return to "+in.Owner+"!")
	}

	if in.Tile.DestroysItems() {
		res.State = Destroyed
		res.Disposition = DispDestroyed
		if in.Seen {
			res.Messages = append(res.Messages, "The "+name+" disappears.")
		}
		return res
	}

	if num, den := DestroyChance(in.Item); rng.XChanceInY(r, num, den) {
		res.State = Destroyed
		res.Disposition = DispDestroyed
		return res
	}
	res.State = Dropped
	res.Disposition = DispDropped
	return res
}

// Noise returns how loud a shot is and what an observer who cannot see
// the shooter hears. Hand throws and blowguns are silent.
func Noise(mode item.Mode, launcher item.Item, proj item.Item) (level int, text string) {
	if mode != item.Launched {
		return 0, ""
	}
	switch launcher.LauncherClass() {
	case item.LauncherSling:
		level, text = 4, "You hear a sling whirr."
	case item.LauncherBow:
		level, text = 5, "You hear a bow twang."
	case item.LauncherCrossbow:
		level, text = 6, "You hear a crossbow thunk."
	default:
		return 0, ""
	}
	return level + proj.Mass()/50, text
}
