package ai

import (
	"context"
	"math/rand"
	"testing"

	"missile-engine/internal/actor"
	"missile-engine/internal/ballistics"
	"missile-engine/internal/beam"
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/event"
	"missile-engine/internal/fault"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/item"
	"missile-engine/internal/system"
)

var (
	bow    = item.Item{Class: item.ClassWeapon, Weapon: item.WeaponBow, Quantity: 1}
	arrows = item.Item{Class: item.ClassMissile, Missile: item.MissileArrow, Quantity: 10}
	darts  = item.Item{Class: item.ClassMissile, Missile: item.MissileDart, Quantity: 3}
	net    = item.Item{Class: item.ClassMissile, Missile: item.MissileNet, Quantity: 1}
	sword  = item.Item{Class: item.ClassWeapon, Weapon: item.WeaponLongSword, Quantity: 1}
)

func TestShouldFire(t *testing.T) {
	cases := []struct {
		name  string
		stats beam.TraceStats
		want  bool
	}{
		{"clear shot", beam.TraceStats{FoeCount: 1, FoePower: 5}, true},
		{"nothing in line", beam.TraceStats{}, false},
		{"weaker friend", beam.TraceStats{FriendCount: 1, FriendPower: 2, FoeCount: 1, FoePower: 5}, true},
		{"equal friend", beam.TraceStats{FriendCount: 1, FriendPower: 5, FoeCount: 1, FoePower: 5}, false},
		{"only friends", beam.TraceStats{FriendCount: 2, FriendPower: 4}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ShouldFire(c.stats); got != c.want {
				t.Errorf("ShouldFire(%+v) = %v; want %v", c.stats, got, c.want)
			}
			if got := Decider().Decide(context.Background(), nil, c.stats); got != c.want {
				t.Errorf("Decider = %v; want %v", got, c.want)
			}
		})
	}
}

func TestPickMissile(t *testing.T) {
	cases := []struct {
		name     string
		inv      component.Inventory
		wantSlot int
		reach    int
		ok       bool
	}{
		{"bow and arrows", component.Inventory{Items: []item.Item{darts, bow, arrows}, Wielded: 1}, 2, ballistics.LaunchedRange, true},
		{"unwielded bow", component.Inventory{Items: []item.Item{bow, arrows, darts}, Wielded: -1}, 2, ballistics.ThrownRange, true},
		{"net", component.Inventory{Items: []item.Item{net}, Wielded: -1}, 0, ballistics.NetRange, true},
		{"melee only", component.Inventory{Items: []item.Item{sword}, Wielded: 0}, 0, 0, false},
		{"empty", component.Inventory{Wielded: -1}, 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			id := w.CreateEntity()
			w.Add(id, component.Creature{Name: "goblin"})
			w.Add(id, c.inv)
			slot, reach, ok := PickMissile(w, actor.For(w, id))
			if ok != c.ok || (ok && (slot != c.wantSlot || reach != c.reach)) {
				t.Errorf("PickMissile = %d, %d, %v; want %d, %d, %v", slot, reach, ok, c.wantSlot, c.reach, c.ok)
			}
		})
	}
}

type archeryFixture struct {
	env    *beam.Env
	player ecs.EntityID
}

func newArchery() *archeryFixture {
	w := ecs.NewWorld()
	gmap := gamemap.New(20, 10)
	gmap.Carve(gamemap.Rect{X1: 1, Y1: 1, X2: 18, Y2: 8}, gamemap.MakeFloor())
	// A wall splits off the east end.
	for y := 1; y <= 8; y++ {
		gmap.Set(14, y, gamemap.MakeWall())
	}
	player := w.CreateEntity()
	w.Add(player, component.TagPlayer{})
	w.Add(player, component.Position{X: 2, Y: 2})
	w.Add(player, component.Creature{Name: "you", Level: 3})
	return &archeryFixture{
		env:    &beam.Env{World: w, Map: gmap, RNG: rand.New(rand.NewSource(1)), Publisher: &event.Recorder{}},
		player: player,
	}
}

func (f *archeryFixture) monster(p gamemap.Point, side component.Side, items ...item.Item) ecs.EntityID {
	w := f.env.World
	id := w.CreateEntity()
	w.Add(id, component.Position{X: p.X, Y: p.Y})
	w.Add(id, component.Creature{Name: "kobold", Level: 2})
	w.Add(id, component.AI{SightRange: 8})
	w.Add(id, component.Faction{Side: side})
	w.Add(id, component.Inventory{Items: items, Wielded: -1})
	return id
}

func TestProcessArchers(t *testing.T) {
	f := newArchery()
	shooter := f.monster(gamemap.Point{X: 6, Y: 2}, component.SideHostile, darts)
	f.monster(gamemap.Point{X: 16, Y: 2}, component.SideHostile, darts) // behind the wall
	f.monster(gamemap.Point{X: 5, Y: 5}, component.SideFriendly, darts)
	f.monster(gamemap.Point{X: 4, Y: 4}, component.SideHostile, sword)
	far := f.monster(gamemap.Point{X: 12, Y: 8}, component.SideHostile, net)

	var shots []Shot
	s := ShooterFunc(func(_ context.Context, _ *beam.Env, shot Shot) error {
		shots = append(shots, shot)
		return nil
	})
	results := ProcessArchers(context.Background(), s, f.env, []ecs.EntityID{f.player})
	if len(shots) != 1 || len(results) != 1 {
		t.Fatalf("shots = %+v; want only the kobold in the open", shots)
	}
	if shots[0].Attacker.ID() != shooter || shots[0].Target != (gamemap.Point{X: 2, Y: 2}) || shots[0].Slot != 0 {
		t.Errorf("shot = %+v", shots[0])
	}
	if !results[0].Fired || results[0].Target != f.player {
		t.Errorf("result = %+v", results[0])
	}
	for _, r := range results {
		if r.Monster == far {
			t.Error("net thrower fired from beyond net range")
		}
	}
}

func TestProcessArchersReportsDeclines(t *testing.T) {
	f := newArchery()
	f.monster(gamemap.Point{X: 6, Y: 2}, component.SideHostile, darts)
	s := ShooterFunc(func(context.Context, *beam.Env, Shot) error {
		return fault.New(fault.Declined, "Ok, then.")
	})
	results := ProcessArchers(context.Background(), s, f.env, []ecs.EntityID{f.player})
	if len(results) != 1 || results[0].Fired || fault.CodeOf(results[0].Err) != fault.Declined {
		t.Errorf("results = %+v", results)
	}
}

func TestProcessArchersSkipsSleepers(t *testing.T) {
	f := newArchery()
	id := f.monster(gamemap.Point{X: 6, Y: 2}, component.SideHostile, darts)
	system.ApplyEffect(f.env.World, id, component.ActiveEffect{Kind: component.EffectSleep, TurnsRemaining: 3})
	if !Incapacitated(f.env.World, id) {
		t.Fatal("sleeping kobold should be incapacitated")
	}
	results := ProcessArchers(context.Background(), ShooterFunc(func(context.Context, *beam.Env, Shot) error {
		t.Error("sleeping kobold fired")
		return nil
	}), f.env, []ecs.EntityID{f.player})
	if len(results) != 0 {
		t.Errorf("results = %+v", results)
	}
}

func TestProcessArchersNoPlayers(t *testing.T) {
	f := newArchery()
	f.monster(gamemap.Point{X: 6, Y: 2}, component.SideHostile, darts)
	if got := ProcessArchers(context.Background(), ShooterFunc(func(context.Context, *beam.Env, Shot) error {
		t.Error("no one to shoot at")
		return nil
	}), f.env, nil); got != nil {
		t.Errorf("results = %v", got)
	}
}
