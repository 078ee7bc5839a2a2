package fate

import (
	"math/rand"
	"testing"

	"missile-engine/internal/brand"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/item"
	"missile-engine/internal/rng"

	"pgregory.net/rapid"
)

func ammo(t item.MissileType, b item.Brand) item.Item {
	return item.Item{Class: item.ClassMissile, Missile: t, Brand: b, Quantity: 1}
}

func TestDestroyChance(t *testing.T) {
	cases := []struct {
		name     string
		it       item.Item
		num, den int
	}{
		{"needle", ammo(item.MissileNeedle, 0), 1, 3},
		{"dart", ammo(item.MissileDart, 0), 1, 4},
		{"arrow", ammo(item.MissileArrow, 0), 1, 5},
		{"large rock", ammo(item.MissileLargeRock, 0), 1, 25},
		{"net", ammo(item.MissileNet, 0), 0, 1},
		{"steel bolt", ammo(item.MissileBolt, item.BrandSteel), 1, 50},
		{"flame arrow", ammo(item.MissileArrow, item.BrandFlame), 1, 10},
		{"chaos arrow", ammo(item.MissileArrow, item.BrandChaos), 1, 1},
		{"dispersal dart", ammo(item.MissileDart, item.BrandDispersal), 1, 1},
		{"exploding bolt", ammo(item.MissileBolt, item.BrandExploding), 1, 1},
		{"dagger", item.Item{Class: item.ClassWeapon, Weapon: item.WeaponDagger}, 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			num, den := DestroyChance(c.it)
			if num != c.num || den != c.den {
				t.Errorf("DestroyChance = %d/%d; want %d/%d", num, den, c.num, c.den)
			}
		})
	}
}

func TestDestructionBounds(t *testing.T) {
	plain := []item.MissileType{
		item.MissileDart, item.MissileNeedle, item.MissileArrow, item.MissileBolt,
		item.MissileSlingBullet, item.MissileStone, item.MissileLargeRock, item.MissileJavelin,
	}
	rapid.Check(t, func(t *rapid.T) {
		mt := rapid.SampledFrom(plain).Draw(t, "type")
		num, den := DestroyChance(ammo(mt, item.BrandNormal))
		p := float64(num) / float64(den)
		if p < 1.0/25 || p > 1.0/3 {
			t.Fatalf("%v destruction chance %v outside [1/25, 1/3]", mt, p)
		}
		always := rapid.SampledFrom([]item.Brand{item.BrandChaos, item.BrandDispersal, item.BrandExploding}).Draw(t, "brand")
		in := Input{Item: ammo(mt, always), Mode: item.Launched}
		r := rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed")))
		if Resolve(r, in).Disposition != DispDestroyed {
			t.Fatalf("%v ammunition survived", always)
		}
	})
}

func TestDartDestructionRate(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	in := Input{Item: ammo(item.MissileDart, 0), Mode: item.Thrown, Tile: gamemap.MakeFloor()}
	const trials = 20000
	broken := 0
	for i := 0; i < trials; i++ {
		if Resolve(r, in).Disposition == DispDestroyed {
			broken++
		}
	}
	if got := float64(broken) / trials; got < 0.22 || got > 0.28 {
		t.Errorf("dart destruction rate %.3f; want about 0.25", got)
	}
}

func returningJavelin() Input {
	jav := item.Item{Class: item.ClassWeapon, Weapon: item.WeaponSpear, Brand: item.BrandReturning, Quantity: 1}
	return Input{
		Item:       jav,
		Mode:       item.Thrown,
		Resolution: brand.Resolve(item.BrandReturning, item.BrandNormal, brand.Options{Mode: item.Thrown}),
		Owner:      "your pack",
		Tile:       gamemap.MakeFloor(),
	}
}

func TestReturningRate(t *testing.T) {
	for _, skill := range []int{0, 2, 8, 20} {
		in := returningJavelin()
		in.ReturnSkill = skill
		r := rand.New(rand.NewSource(int64(skill) + 1))
		const trials = 20000
		back := 0
		for i := 0; i < trials; i++ {
			if Resolve(r, in).Disposition == DispReturned {
				back++
			}
		}
		want := 1 - 1/float64(1+rng.SkillBump(skill))
		if got := float64(back) / trials; got < want-0.02 || got > want+0.02 {
			t.Errorf("skill %d: return rate %.3f; want about %.3f", skill, got, want)
		}
	}
}

// seqSrc replays fixed draws.
type seqSrc struct{ vals []int }

func (s *seqSrc) Intn(n int) int {
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

func TestReturningMessages(t *testing.T) {
	in := returningJavelin()
	in.ReturnSkill = 5
	res := Resolve(&seqSrc{vals: []int{3}}, in)
	if res.Disposition != DispReturned || !res.Identified {
		t.Fatalf("res = %+v", res)
	}
	if res.Messages[0] != "The spear returns to your pack!" {
		t.Errorf("message %q", res.Messages[0])
	}

	// zero fails the return roll, then a miss on the destruction roll.
	res = Resolve(&seqSrc{vals: []int{0}}, in)
	if res.Disposition != DispDropped || res.Messages[0] != "The spear fails to return to your pack!" {
		t.Errorf("res = %+v", res)
	}
}

func TestLandingInLava(t *testing.T) {
	in := Input{Item: ammo(item.MissileArrow, 0), Mode: item.Launched, Tile: gamemap.MakeLava(), Seen: true}
	res := Resolve(rand.New(rand.NewSource(1)), in)
	if res.Disposition != DispDestroyed || len(res.Messages) != 1 || res.Messages[0] != "The arrow disappears." {
		t.Errorf("res = %+v", res)
	}
	in.Seen = false
	if res := Resolve(rand.New(rand.NewSource(1)), in); len(res.Messages) != 0 {
		t.Errorf("unseen landing should be silent: %v", res.Messages)
	}
}

func TestNoise(t *testing.T) {
	weapon := func(w item.WeaponType) item.Item { return item.Item{Class: item.ClassWeapon, Weapon: w} }
	cases := []struct {
		name     string
		mode     item.Mode
		launcher item.Item
		proj     item.Item
		level    int
		text     string
	}{
		{"bow", item.Launched, weapon(item.WeaponBow), ammo(item.MissileArrow, 0), 5, "You hear a bow twang."},
		{"crossbow", item.Launched, weapon(item.WeaponCrossbow), ammo(item.MissileBolt, 0), 6, "You hear a crossbow thunk."},
		{"sling stone", item.Launched, weapon(item.WeaponSling), ammo(item.MissileStone, 0), 5, "You hear a sling whirr."},
		{"blowgun", item.Launched, weapon(item.WeaponBlowgun), ammo(item.MissileNeedle, 0), 0, ""},
		{"hand thrown", item.Thrown, item.Item{}, ammo(item.MissileJavelin, 0), 0, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			level, text := Noise(c.mode, c.launcher, c.proj)
			if level != c.level || text != c.text {
				t.Errorf("Noise = %d %q; want %d %q", level, text, c.level, c.text)
			}
		})
	}
}
