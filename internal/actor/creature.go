package actor

import (
	"strings"

	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/system"
)

// Creature is the victim side of an attack.
type Creature struct {
	W      *ecs.World
	Entity ecs.EntityID
}

// Victim returns the Creature view of id.
func Victim(w *ecs.World, id ecs.EntityID) Creature {
	return Creature{W: w, Entity: id}
}

// Info returns the defensive profile.
func (c Creature) Info() component.Creature {
	if comp := c.W.Get(c.Entity, component.CCreature); comp != nil {
		return comp.(component.Creature)
	}
	return component.Creature{}
}

func (c Creature) IsPlayer() bool { return c.W.Has(c.Entity, component.CTagPlayer) }

// Name is the lower-case name used mid-sentence: "you", "the orc".
func (c Creature) Name() string {
	if c.IsPlayer() {
		return "you"
	}
	return Describe(c.Info())
}

// Subject is Name capitalised for the start of a sentence.
func (c Creature) Subject() string { return Capitalize(c.Name()) }

// Verb conjugates a regular verb for this creature: "convulse" becomes
// "convulses" for monsters.
func (c Creature) Verb(v string) string {
	if c.IsPlayer() {
		return v
	}
	if strings.HasSuffix(v, "s") || strings.HasSuffix(v, "sh") || strings.HasSuffix(v, "ch") {
		return v + "es"
	}
	return v + "s"
}

func (c Creature) Pos() gamemap.Point {
	p, _ := system.PositionOf(c.W, c.Entity)
	return p
}

func (c Creature) Alive() bool {
	if !c.W.Alive(c.Entity) {
		return false
	}
	if h := c.W.Get(c.Entity, component.CHealth); h != nil {
		return h.(component.Health).Current > 0
	}
	return true
}

func (c Creature) Resists() component.Resists {
	if comp := c.W.Get(c.Entity, component.CResists); comp != nil {
		return comp.(component.Resists)
	}
	return component.Resists{}
}

// Side defaults to friendly for the player and hostile for everyone else.
func (c Creature) Side() component.Side {
	if comp := c.W.Get(c.Entity, component.CFaction); comp != nil {
		return comp.(component.Faction).Side
	}
	if c.IsPlayer() {
		return component.SideFriendly
	}
	return component.SideHostile
}

// Hurt removes dmg hit points and reports whether the creature died.
func (c Creature) Hurt(dmg int) bool {
	comp := c.W.Get(c.Entity, component.CHealth)
	if comp == nil || dmg <= 0 {
		return false
	}
	h := comp.(component.Health)
	h.Current -= dmg
	c.W.Add(c.Entity, h)
	return h.Current <= 0
}

// Poison stacks levels of poison.
func (c Creature) Poison(levels int) {
	system.AddPoison(c.W, c.Entity, levels)
}

// ApplyStatus inflicts a timed status.
func (c Creature) ApplyStatus(kind component.EffectKind, turns, magnitude int) {
	system.ApplyEffect(c.W, c.Entity, component.ActiveEffect{
		Kind:           kind,
		Magnitude:      magnitude,
		TurnsRemaining: turns,
	})
}

// MoveTo relocates the creature without checks.
func (c Creature) MoveTo(p gamemap.Point) {
	system.Relocate(c.W, c.Entity, p)
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SameSide reports whether a and b fight together.
func SameSide(w *ecs.World, a, b ecs.EntityID) bool {
	return Victim(w, a).Side() == Victim(w, b).Side()
}
