// Package beam describes one projectile in flight and resolves what it
// does to each creature in its path.
package beam

import (
	"context"

	"missile-engine/internal/actor"
	"missile-engine/internal/brand"
	"missile-engine/internal/ecs"
	"missile-engine/internal/event"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/hook"
	"missile-engine/internal/item"
	"missile-engine/internal/rng"
	"missile-engine/internal/system"

	"github.com/google/uuid"
)

// TraceStats is the exposure a tracer pass measured along the path.
type TraceStats struct {
	FriendCount, FriendPower int
	FoeCount, FoePower       int
}

// Impact records what happened to one creature in the path.
type Impact struct {
	Victim  ecs.EntityID
	Name    string
	Hit     bool
	Damage  int
	Killed  bool
	Effects []string
}

// Explosion is the burst an exploding projectile makes where it lands.
type Explosion struct {
	Dice   rng.Dice
	Radius int
	Name   string
}

// Beam is the descriptor of one attack. It is built fresh for every
// attempt and owned by the call that built it.
type Beam struct {
	ID            uuid.UUID
	Agent         ecs.EntityID
	AgentIsPlayer bool
	Origin        gamemap.Point
	Target        gamemap.Point
	Range         int

	Flavour brand.Flavour
	ToHit   int
	Damage  rng.Dice
	AutoHit bool

	Damages   []hook.DamageEffect
	Hits      []hook.HitEffect
	Ranges    []hook.RangeEffect
	Explosion *Explosion

	Name    string // "arrow", "penetrating bolt of frost"
	HitVerb string
	Mode    item.Mode
	Power   int // blowgun power
	Skill   int
	Enchant int

	Tracer  bool
	Stats   TraceStats
	Impacts []Impact
	Landing gamemap.Point
}

// Penetrates reports whether the beam keeps flying after a hit.
func (b *Beam) Penetrates() bool { return hook.Continues(b.Ranges) }

// tracerCopy returns the dry-run version of b: placeholder damage and
// guaranteed hits so every creature in the path is counted.
func (b *Beam) tracerCopy() *Beam {
	t := *b
	t.Tracer = true
	t.AutoHit = true
	t.Damage = rng.Dice{Num: 10, Size: 10}
	t.Stats = TraceStats{}
	t.Impacts = nil
	return &t
}

// Env is the world a beam flies through.
type Env struct {
	World     *ecs.World
	Map       *gamemap.GameMap
	RNG       rng.Source
	Publisher event.Publisher
	// Observer is the creature whose view decides what is visible,
	// normally the player. NilEntity sees everything.
	Observer ecs.EntityID
	Tracer   bool
}

// Shadow returns a copy of the environment whose world and map are
// private clones and whose publisher drops everything. Tracer passes fly
// through a shadow, so they cannot change the real world.
func (e *Env) Shadow() *Env {
	return &Env{
		World:     e.World.Clone(),
		Map:       e.Map.Clone(),
		RNG:       e.RNG,
		Publisher: event.NopPublisher(),
		Observer:  e.Observer,
		Tracer:    true,
	}
}

// Visible reports whether the observer can see p.
func (e *Env) Visible(p gamemap.Point) bool {
	if e.Observer == ecs.NilEntity || !e.World.Alive(e.Observer) {
		return true
	}
	return system.CanSee(e.World, e.Map, e.Observer, p)
}

// Say publishes a message for beam b. Tracer beams are silent.
func (e *Env) Say(ctx context.Context, b *Beam, text string) {
	if b.Tracer || e.Tracer || e.Publisher == nil {
		return
	}
	e.Publisher.Publish(ctx, event.Message(b.ID, b.Agent, text))
}

// kill removes a dead monster and announces the death.
func (e *Env) kill(ctx context.Context, b *Beam, c actor.Creature) {
	if c.IsPlayer() {
		e.Say(ctx, b, "You die...")
		return
	}
	e.Say(ctx, b, c.Subject()+" is killed!")
	e.World.DestroyEntity(c.Entity)
}
