package assets

import (
	"missile-engine/internal/generate"
	"missile-engine/internal/item"
)

// Launcher returns a single launcher or weapon of type t.
func Launcher(t item.WeaponType) item.Item {
	return item.Item{Class: item.ClassWeapon, Weapon: t, Quantity: 1}
}

// Ammo returns a stack of n missiles of type t with brand b. Kit brands
// start identified.
func Ammo(t item.MissileType, b item.Brand, n int) item.Item {
	return item.Item{Class: item.ClassMissile, Missile: t, Brand: b, BrandKnown: true, Quantity: n}
}

// Branded returns a single weapon of type t with brand b.
func Branded(t item.WeaponType, b item.Brand) item.Item {
	return item.Item{Class: item.ClassWeapon, Weapon: t, Brand: b, BrandKnown: true, Quantity: 1}
}

// SpareAmmo is what lies on the firing line for the player to pick up.
// Brands on the floor start unidentified.
var SpareAmmo = []generate.ItemSpawnEntry{
	{Item: item.Item{Class: item.ClassMissile, Missile: item.MissileArrow, Quantity: 8}},
	{Item: item.Item{Class: item.ClassMissile, Missile: item.MissileArrow, Brand: item.BrandFrost, Quantity: 4}},
	{Item: item.Item{Class: item.ClassMissile, Missile: item.MissileDart, Quantity: 6}},
	{Item: item.Item{Class: item.ClassMissile, Missile: item.MissileDart, Brand: item.BrandDispersal, Quantity: 3}},
	{Item: item.Item{Class: item.ClassMissile, Missile: item.MissileStone, Quantity: 10}},
	{Item: item.Item{Class: item.ClassMissile, Missile: item.MissileBolt, Brand: item.BrandExploding, Quantity: 2}},
	{Item: item.Item{Class: item.ClassMissile, Missile: item.MissileJavelin, Brand: item.BrandSilver, Quantity: 2}},
}
