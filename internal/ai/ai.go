// Package ai drives monsters that shoot.
package ai

import (
	"context"
	"math"

	"missile-engine/internal/actor"
	"missile-engine/internal/ballistics"
	"missile-engine/internal/beam"
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/item"
	"missile-engine/internal/system"
)

// ShouldFire reports whether a tracer result is worth the shot: some foe
// must be in the line of fire and the friends at risk must be weaker than
// the foes.
func ShouldFire(stats beam.TraceStats) bool {
	return stats.FoePower > 0 && stats.FriendPower < stats.FoePower
}

// Decider returns the automatic decider used for monster shots.
func Decider() beam.Decider {
	return beam.DeciderFunc(func(_ context.Context, _ *beam.Beam, stats beam.TraceStats) bool {
		return ShouldFire(stats)
	})
}

// Shot is one monster's chosen attack.
type Shot struct {
	Attacker actor.Attacker
	Slot     int
	Target   gamemap.Point
}

// Shooter carries out a monster's shot. It returns a rejection error when
// the shot was not taken.
type Shooter interface {
	Fire(ctx context.Context, env *beam.Env, shot Shot) error
}

// ShooterFunc adapts a function to Shooter.
type ShooterFunc func(ctx context.Context, env *beam.Env, shot Shot) error

func (f ShooterFunc) Fire(ctx context.Context, env *beam.Env, shot Shot) error {
	return f(ctx, env, shot)
}

// Result records one monster's turn.
type Result struct {
	Monster ecs.EntityID
	Target  ecs.EntityID
	Fired   bool
	Err     error
}

// ProcessArchers gives every armed monster one chance to shoot at the
// nearest player it can see within range. Monsters act in entity order;
// sleeping and paralysed monsters skip their turn.
func ProcessArchers(ctx context.Context, s Shooter, env *beam.Env, players []ecs.EntityID) []Result {
	if len(players) == 0 {
		return nil
	}
	w := env.World
	var results []Result
	for _, id := range w.Query(component.CAI, component.CPosition, component.CInventory) {
		if !w.Alive(id) || w.Has(id, component.CTagPlayer) {
			continue
		}
		if actor.Victim(w, id).Side() != component.SideHostile || Incapacitated(w, id) {
			continue
		}
		a := actor.For(w, id)
		slot, reach, ok := PickMissile(w, a)
		if !ok {
			continue
		}
		aiComp := w.Get(id, component.CAI).(component.AI)
		sight := aiComp.SightRange
		if sight <= 0 {
			sight = system.LOSRadius
		}
		target, pos, found := nearestVisible(env, id, a.Pos(), players, min(sight, reach))
		if !found {
			continue
		}
		err := s.Fire(ctx, env, Shot{Attacker: a, Slot: slot, Target: pos})
		results = append(results, Result{Monster: id, Target: target, Fired: err == nil, Err: err})
	}
	return results
}

// Incapacitated reports whether id is asleep or paralysed and so cannot
// act this turn.
func Incapacitated(w *ecs.World, id ecs.EntityID) bool {
	return system.HasEffect(w, id, component.EffectSleep) || system.HasEffect(w, id, component.EffectParalysis)
}

// PickMissile chooses what a monster shoots: ammunition for its wielded
// launcher first, then anything designed for throwing. It also returns
// how far the missile can fly.
func PickMissile(w *ecs.World, a actor.Attacker) (slot, reach int, ok bool) {
	c := w.Get(a.ID(), component.CInventory)
	if c == nil {
		return 0, 0, false
	}
	inv := c.(component.Inventory)
	launcher, armed := a.Launcher()
	if armed && launcher.IsLauncher() {
		for i, it := range inv.Items {
			if !it.IsEmpty() && it.LaunchedBy(launcher) {
				return i, ballistics.LaunchedRange, true
			}
		}
	}
	for i, it := range inv.Items {
		if it.IsEmpty() || i == inv.Wielded || !it.Throwable() {
			continue
		}
		switch {
		case it.IsMissile(item.MissileNet):
			return i, ballistics.NetRange, true
		case it.IsMissile(item.MissileLargeRock):
			return i, ballistics.LaunchedRange, true
		}
		return i, ballistics.ThrownRange, true
	}
	return 0, 0, false
}

// nearestVisible returns the closest player id can see within reach.
func nearestVisible(env *beam.Env, id ecs.EntityID, from gamemap.Point, players []ecs.EntityID, reach int) (ecs.EntityID, gamemap.Point, bool) {
	best := ecs.NilEntity
	var bestPos gamemap.Point
	bestDist := math.MaxInt
	for _, pid := range players {
		if pid == ecs.NilEntity || !env.World.Alive(pid) {
			continue
		}
		pos, ok := system.PositionOf(env.World, pid)
		if !ok {
			continue
		}
		d := gamemap.Distance(from, pos)
		if d > reach || d >= bestDist || !system.CanSee(env.World, env.Map, id, pos) {
			continue
		}
		best, bestPos, bestDist = pid, pos, d
	}
	return best, bestPos, best != ecs.NilEntity
}
