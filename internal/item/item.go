// Package item models projectile items: weapons, ammunition and generic
// objects that can be thrown.
package item

import "strings"

// Class is the broad item category.
type Class uint8

const (
	ClassWeapon Class = iota
	ClassMissile
	ClassMisc
)

// Race marks racially-crafted launchers and ammunition.
type Race uint8

const (
	RaceNone Race = iota
	RaceElven
	RaceDwarven
	RaceOrcish
)

// Item is one stack of a weapon, missile or misc object.
type Item struct {
	Class   Class
	Weapon  WeaponType
	Missile MissileType
	// Misc names a generic object; MiscMass is its mass.
	Misc     string
	MiscMass int

	Brand      Brand
	BrandKnown bool
	Plus       int // to-hit enchantment
	Plus2      int // damage enchantment
	Quantity   int
	Race       Race
	Worn       bool
	Cursed     bool
}

// IsEmpty reports whether the slot holds nothing.
func (i Item) IsEmpty() bool { return i.Quantity <= 0 }

// Copy returns a single-item copy used for one attack.
//
// Postcondition: the copy's Quantity is 1.
func (i Item) Copy() Item {
	c := i
	c.Quantity = 1
	return c
}

// Mass returns the item's mass.
func (i Item) Mass() int {
	switch i.Class {
	case ClassWeapon:
		return Weapon(i.Weapon).Mass
	case ClassMissile:
		return Missile(i.Missile).Mass
	}
	return i.MiscMass
}

// BaseDamage returns the item's intrinsic damage.
func (i Item) BaseDamage() int {
	switch i.Class {
	case ClassWeapon:
		return Weapon(i.Weapon).Damage
	case ClassMissile:
		return Missile(i.Missile).Damage
	}
	return 0
}

// IsMissile reports whether i is ammunition of type t.
func (i Item) IsMissile(t MissileType) bool {
	return i.Class == ClassMissile && i.Missile == t
}

// IsWeapon reports whether i is a weapon of type t.
func (i Item) IsWeapon(t WeaponType) bool {
	return i.Class == ClassWeapon && i.Weapon == t
}

// LauncherClass returns the launcher class of a launcher weapon, or none.
func (i Item) LauncherClass() LauncherClass {
	if i.Class != ClassWeapon {
		return LauncherNone
	}
	return Weapon(i.Weapon).Launcher
}

// IsLauncher reports whether i propels separate ammunition.
func (i Item) IsLauncher() bool { return i.LauncherClass() != LauncherNone }

// LaunchedBy reports whether launcher propels i.
func (i Item) LaunchedBy(launcher Item) bool {
	if i.Class != ClassMissile {
		return false
	}
	lc := launcher.LauncherClass()
	return lc != LauncherNone && Missile(i.Missile).Launcher == lc
}

// Throwable reports whether i is designed to be thrown by hand.
func (i Item) Throwable() bool {
	switch i.Class {
	case ClassWeapon:
		return Weapon(i.Weapon).Throwable
	case ClassMissile:
		return Missile(i.Missile).Throwable
	}
	return false
}

// Noun returns the plain singular name with no brand or enchantment.
func (i Item) Noun() string {
	switch i.Class {
	case ClassWeapon:
		return Weapon(i.Weapon).Name
	case ClassMissile:
		return Missile(i.Missile).Name
	}
	return i.Misc
}

// Name returns the singular display name, including the brand once known.
func (i Item) Name() string {
	n := i.Noun()
	if i.BrandKnown && i.Brand != BrandNormal {
		n += " of " + i.Brand.String()
	}
	return n
}

// Article prefixes name with "a" or "an".
func Article(name string) string {
	if name == "" {
		return name
	}
	if strings.ContainsRune("aeiou", rune(name[0])) {
		return "an " + name
	}
	return "a " + name
}

// Mode is how a projectile leaves the thrower.
type Mode uint8

const (
	Launched Mode = iota // propelled by a matching launcher
	Thrown               // thrown by hand, designed for it
	Fumbled              // thrown by hand, not designed for it
)

func (m Mode) String() string {
	switch m {
	case Launched:
		return "launched"
	case Thrown:
		return "thrown"
	}
	return "fumbled"
}

// Classify decides the launch mode for proj given the wielded launcher
// (nil when nothing suitable is wielded).
func Classify(launcher *Item, proj Item) Mode {
	if launcher != nil && proj.LaunchedBy(*launcher) {
		return Launched
	}
	if proj.Throwable() {
		return Thrown
	}
	return Fumbled
}
