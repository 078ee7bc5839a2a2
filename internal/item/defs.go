package item

import "missile-engine/internal/fault"

// Skill identifies a trainable skill relevant to missile combat.
type Skill uint8

const (
	SkillThrowing Skill = iota
	SkillDarts
	SkillSlings
	SkillBows
	SkillCrossbows
)

var skillNames = [...]string{"throwing", "darts", "slings", "bows", "crossbows"}

func (s Skill) String() string {
	if int(s) >= len(skillNames) {
		return "unknown"
	}
	return skillNames[s]
}

// LauncherClass groups launchers with the ammunition they propel.
type LauncherClass uint8

const (
	LauncherNone LauncherClass = iota
	LauncherBlowgun
	LauncherSling
	LauncherBow
	LauncherCrossbow
)

// WeaponType is the subtype of a ClassWeapon item.
type WeaponType uint8

const (
	WeaponClub WeaponType = iota
	WeaponDagger
	WeaponShortSword
	WeaponSpear
	WeaponHandAxe
	WeaponMace
	WeaponLongSword
	WeaponBlowgun
	WeaponSling
	WeaponBow
	WeaponLongbow
	WeaponHandCrossbow
	WeaponCrossbow
	numWeapons
)

// WeaponDef is one row of the weapon table.
type WeaponDef struct {
	Name      string
	Damage    int
	Accuracy  int
	Mass      int
	Skill     Skill
	Throwable bool
	Launcher  LauncherClass // non-none for launchers
}

var weaponDefs = [numWeapons]WeaponDef{
	WeaponClub:         {Name: "club", Damage: 5, Accuracy: 4, Mass: 50, Throwable: true},
	WeaponDagger:       {Name: "dagger", Damage: 4, Accuracy: 6, Mass: 20, Throwable: true},
	WeaponShortSword:   {Name: "short sword", Damage: 6, Accuracy: 4, Mass: 80},
	WeaponSpear:        {Name: "spear", Damage: 6, Accuracy: 4, Mass: 50, Throwable: true},
	WeaponHandAxe:      {Name: "hand axe", Damage: 7, Accuracy: 3, Mass: 80, Throwable: true},
	WeaponMace:         {Name: "mace", Damage: 8, Accuracy: 3, Mass: 140},
	WeaponLongSword:    {Name: "long sword", Damage: 10, Accuracy: -1, Mass: 160},
	WeaponBlowgun:      {Name: "blowgun", Damage: 0, Accuracy: 2, Mass: 20, Skill: SkillDarts, Launcher: LauncherBlowgun},
	WeaponSling:        {Name: "sling", Damage: 0, Accuracy: 2, Mass: 20, Skill: SkillSlings, Launcher: LauncherSling},
	WeaponBow:          {Name: "bow", Damage: 3, Accuracy: 1, Mass: 90, Skill: SkillBows, Launcher: LauncherBow},
	WeaponLongbow:      {Name: "longbow", Damage: 6, Accuracy: 0, Mass: 120, Skill: SkillBows, Launcher: LauncherBow},
	WeaponHandCrossbow: {Name: "hand crossbow", Damage: 3, Accuracy: 4, Mass: 70, Skill: SkillCrossbows, Launcher: LauncherCrossbow},
	WeaponCrossbow:     {Name: "crossbow", Damage: 5, Accuracy: 4, Mass: 150, Skill: SkillCrossbows, Launcher: LauncherCrossbow},
}

// Weapon returns the definition row for t. Unknown types are a table
// inconsistency and panic.
func Weapon(t WeaponType) WeaponDef {
	if t >= numWeapons {
		panic(fault.Internalf("item: unknown weapon type %d", t))
	}
	return weaponDefs[t]
}

// MissileType is the subtype of a ClassMissile item.
type MissileType uint8

const (
	MissileDart MissileType = iota
	MissileNeedle
	MissileArrow
	MissileBolt
	MissileSlingBullet
	MissileStone
	MissileLargeRock
	MissileJavelin
	MissileNet
	numMissiles
)

// MissileDef is one row of the missile table.
type MissileDef struct {
	Name     string
	Damage   int
	Mass     int
	Launcher LauncherClass
	// Fragility is the base 1-in-N chance of breaking on landing; 0 never breaks.
	Fragility int
	Throwable bool
}

var missileDefs = [numMissiles]MissileDef{
	MissileDart:        {Name: "dart", Damage: 2, Mass: 10, Fragility: 4, Throwable: true},
	MissileNeedle:      {Name: "needle", Damage: 0, Mass: 1, Launcher: LauncherBlowgun, Fragility: 3},
	MissileArrow:       {Name: "arrow", Damage: 7, Mass: 20, Launcher: LauncherBow, Fragility: 5},
	MissileBolt:        {Name: "bolt", Damage: 9, Mass: 20, Launcher: LauncherCrossbow, Fragility: 5},
	MissileSlingBullet: {Name: "sling bullet", Damage: 6, Mass: 40, Launcher: LauncherSling, Fragility: 6},
	MissileStone:       {Name: "stone", Damage: 2, Mass: 60, Launcher: LauncherSling, Fragility: 6, Throwable: true},
	MissileLargeRock:   {Name: "large rock", Damage: 20, Mass: 1000, Fragility: 25, Throwable: true},
	MissileJavelin:     {Name: "javelin", Damage: 10, Mass: 80, Fragility: 12, Throwable: true},
	MissileNet:         {Name: "throwing net", Damage: 0, Mass: 300, Throwable: true},
}

// Missile returns the definition row for t. Unknown types panic.
func Missile(t MissileType) MissileDef {
	if t >= numMissiles {
		panic(fault.Internalf("item: unknown missile type %d", t))
	}
	return missileDefs[t]
}

// LauncherSkill maps a launcher class to the skill that trains it.
func LauncherSkill(c LauncherClass) Skill {
	switch c {
	case LauncherBlowgun:
		return SkillDarts
	case LauncherSling:
		return SkillSlings
	case LauncherBow:
		return SkillBows
	case LauncherCrossbow:
		return SkillCrossbows
	}
	panic(fault.Internalf("item: launcher class %d has no skill", c))
}
