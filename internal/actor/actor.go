// Package actor exposes the player and monsters to the combat formulas
// through one read interface, and creatures on the receiving end through
// a small mutating view.
package actor

import (
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/item"
	"missile-engine/internal/system"
)

// Status is the set of afflictions that gate or weaken an attack.
type Status struct {
	Confused    bool
	Berserk     bool
	Held        bool // netted or webbed
	CannotThrow bool // current form has no usable hands
	Inaccurate  bool
	Frenzy      int // monster frenzy degree, 0 when calm
}

// Traits are species properties the formulas key off.
type Traits struct {
	Fighter            bool
	Archer             bool
	FixedLauncherBrand bool
	ThrowsRocks        bool
}

// Attacker is what the ballistic formula reads from whoever is shooting.
type Attacker interface {
	ID() ecs.EntityID
	Name() string
	IsPlayer() bool
	Pos() gamemap.Point
	Strength() int
	Dexterity() int
	StatBase() (str, dex int)
	Skill(s item.Skill) int
	Launcher() (item.Item, bool)
	ShieldPenalty() int
	Status() Status
	Slaying() (hit, dam int)
	Traits() Traits
	Level() int
}

// For returns the Attacker view of id.
func For(w *ecs.World, id ecs.EntityID) Attacker {
	if w.Has(id, component.CTagPlayer) {
		return Player{W: w, Entity: id}
	}
	return Monster{W: w, Entity: id}
}

// base holds what players and monsters read the same way.
type base struct {
	W      *ecs.World
	Entity ecs.EntityID
}

func (b base) ID() ecs.EntityID { return b.Entity }

func (b base) Pos() gamemap.Point {
	p, _ := system.PositionOf(b.W, b.Entity)
	return p
}

func (b base) creature() component.Creature {
	if c := b.W.Get(b.Entity, component.CCreature); c != nil {
		return c.(component.Creature)
	}
	return component.Creature{}
}

func (b base) stats() (component.Stats, bool) {
	if c := b.W.Get(b.Entity, component.CStats); c != nil {
		return c.(component.Stats), true
	}
	return component.Stats{}, false
}

func (b base) Level() int { return b.creature().Level }

func (b base) Launcher() (item.Item, bool) {
	c := b.W.Get(b.Entity, component.CInventory)
	if c == nil {
		return item.Item{}, false
	}
	return c.(component.Inventory).Weapon()
}

func (b base) ShieldPenalty() int {
	s, _ := b.stats()
	return s.ShieldPenalty
}

func (b base) has(kind component.EffectKind) bool {
	return system.HasEffect(b.W, b.Entity, kind)
}

// Player reads the player's trained skills, stats and equipment.
type Player struct {
	W      *ecs.World
	Entity ecs.EntityID
}

func (p Player) b() base { return base{W: p.W, Entity: p.Entity} }

func (p Player) ID() ecs.EntityID            { return p.Entity }
func (p Player) Name() string                { return "you" }
func (p Player) IsPlayer() bool              { return true }
func (p Player) Pos() gamemap.Point          { return p.b().Pos() }
func (p Player) Level() int                  { return p.b().Level() }
func (p Player) Launcher() (item.Item, bool) { return p.b().Launcher() }
func (p Player) ShieldPenalty() int          { return p.b().ShieldPenalty() }
func (p Player) Traits() Traits              { return Traits{} }

func (p Player) Strength() int {
	s, _ := p.b().stats()
	return s.Str
}

func (p Player) Dexterity() int {
	s, _ := p.b().stats()
	return s.Dex
}

func (p Player) StatBase() (str, dex int) {
	s, ok := p.b().stats()
	if !ok || s.StrBase <= 0 || s.DexBase <= 0 {
		return 10, 10
	}
	return s.StrBase, s.DexBase
}

func (p Player) Skill(sk item.Skill) int {
	if c := p.W.Get(p.Entity, component.CSkills); c != nil {
		return c.(component.Skills).Level(sk)
	}
	return 0
}

func (p Player) Slaying() (hit, dam int) {
	s, _ := p.b().stats()
	return s.SlayHit, s.SlayDam
}

// Status maps effects onto afflictions. A frenzied player is berserk.
func (p Player) Status() Status {
	b := p.b()
	return Status{
		Confused:    b.has(component.EffectConfusion),
		Berserk:     b.has(component.EffectFrenzy),
		Held:        b.has(component.EffectHeld),
		CannotThrow: b.has(component.EffectForm),
		Inaccurate:  b.has(component.EffectInaccuracy),
	}
}

// Monster derives skills and stats from hit dice and species traits.
type Monster struct {
	W      *ecs.World
	Entity ecs.EntityID
}

func (m Monster) b() base { return base{W: m.W, Entity: m.Entity} }

func (m Monster) ID() ecs.EntityID            { return m.Entity }
func (m Monster) IsPlayer() bool              { return false }
func (m Monster) Pos() gamemap.Point          { return m.b().Pos() }
func (m Monster) Level() int                  { return m.b().Level() }
func (m Monster) Launcher() (item.Item, bool) { return m.b().Launcher() }
func (m Monster) ShieldPenalty() int          { return m.b().ShieldPenalty() }
func (m Monster) Slaying() (hit, dam int)     { return 0, 0 }
func (m Monster) StatBase() (str, dex int)    { return 10, 10 }

func (m Monster) Name() string { return Describe(m.b().creature()) }

func (m Monster) species() component.Monster {
	if c := m.W.Get(m.Entity, component.CMonster); c != nil {
		return c.(component.Monster)
	}
	return component.Monster{}
}

func (m Monster) Strength() int {
	if s := m.species().Str; s > 0 {
		return s
	}
	return 10 + m.Level()/2
}

func (m Monster) Dexterity() int {
	if d := m.species().Dex; d > 0 {
		return d
	}
	return 10 + m.Level()/2
}

// Skill is the monster's hit dice for every skill; archers train harder.
func (m Monster) Skill(item.Skill) int {
	hd := m.Level()
	if m.species().Archer {
		return hd * 3 / 2
	}
	return hd
}

func (m Monster) Traits() Traits {
	s := m.species()
	return Traits{
		Fighter:            s.Fighter,
		Archer:             s.Archer,
		FixedLauncherBrand: s.FixedLauncherBrand,
		ThrowsRocks:        s.ThrowsRocks,
	}
}

func (m Monster) Status() Status {
	b := m.b()
	return Status{
		Confused:    b.has(component.EffectConfusion),
		Held:        b.has(component.EffectHeld),
		CannotThrow: b.has(component.EffectForm),
		Inaccurate:  b.has(component.EffectInaccuracy),
		Frenzy:      system.EffectMagnitude(b.W, b.Entity, component.EffectFrenzy),
	}
}

// Describe returns the lower-case definite name of a creature: "the orc",
// or the bare name for uniques.
func Describe(c component.Creature) string {
	if c.Unique || c.Name == "" || c.Name == "you" {
		if c.Name == "" {
			return "something"
		}
		return c.Name
	}
	return "the " + c.Name
}
