// Package factory builds range entities from the asset tables.
package factory

import (
	"missile-engine/assets"
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/generate"
	"missile-engine/internal/item"
	"missile-engine/internal/system"

	"github.com/gdamore/tcell/v2"
)

// PackCapacity is how many stacks a pack holds.
const PackCapacity = 12

// NewPlayer creates the player entity at p using the given kit.
func NewPlayer(w *ecs.World, p gamemap.Point, class assets.ClassDef) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: p.X, Y: p.Y})
	w.Add(id, component.Health{Current: class.MaxHP, Max: class.MaxHP})
	w.Add(id, component.Renderable{Glyph: class.Emoji, FGColor: tcell.ColorYellow})
	w.Add(id, component.Creature{Name: "you", Level: class.Level, Evasion: 10 + class.Dex/2, AC: 3})
	w.Add(id, component.Stats{Str: class.Str, Dex: class.Dex, StrBase: 10, DexBase: 10})
	w.Add(id, component.Skills{Levels: class.Skills})
	w.Add(id, component.Inventory{Items: kit(class.Kit), Capacity: PackCapacity, Wielded: class.Wielded})
	w.Add(id, component.Effects{})
	w.Add(id, component.Faction{Side: component.SideFriendly})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewMonster creates a creature of the given species at p fighting for
// side. Hostile monsters get an AI and shoot on their own.
func NewMonster(w *ecs.World, def assets.SpeciesDef, p gamemap.Point, side component.Side) ecs.EntityID {
	id := w.CreateEntity()
	color := tcell.ColorRed
	if side == component.SideFriendly {
		color = tcell.ColorGreen
	}
	w.Add(id, component.Position{X: p.X, Y: p.Y})
	w.Add(id, component.Health{Current: def.MaxHP, Max: def.MaxHP})
	w.Add(id, component.Renderable{Glyph: def.Glyph, FGColor: color})
	w.Add(id, component.Creature{
		Name:     def.Name,
		Level:    def.Level,
		Evasion:  def.Evasion,
		AC:       def.AC,
		Holiness: def.Holiness,
		Chaotic:  def.Chaotic,
		Flying:   def.Flying,
	})
	traits := def.Traits
	if traits.Species == "" {
		traits.Species = def.ID
	}
	w.Add(id, traits)
	w.Add(id, def.Resists)
	w.Add(id, component.Inventory{Items: kit(def.Kit), Capacity: PackCapacity, Wielded: def.Wielded})
	w.Add(id, component.Effects{})
	w.Add(id, component.Faction{Side: side})
	if side == component.SideHostile {
		w.Add(id, component.AI{SightRange: def.SightRange})
	}
	return id
}

// NewItem leaves it on the floor at p.
func NewItem(w *ecs.World, it item.Item, p gamemap.Point) ecs.EntityID {
	return system.DropAt(w, p, it)
}

// Populate creates every spawn in pop. Spawns naming an unknown species
// are skipped and reported.
func Populate(w *ecs.World, pop generate.PopulateResult) (skipped []string) {
	place := func(spawns []generate.CreatureSpawn, side component.Side) {
		for _, s := range spawns {
			def, ok := assets.Species[s.Entry.Species]
			if !ok {
				skipped = append(skipped, s.Entry.Species)
				continue
			}
			NewMonster(w, def, gamemap.Point{X: s.X, Y: s.Y}, side)
		}
	}
	place(pop.Enemies, component.SideHostile)
	place(pop.Allies, component.SideFriendly)
	for _, s := range pop.Items {
		NewItem(w, s.Entry.Item, gamemap.Point{X: s.X, Y: s.Y})
	}
	return skipped
}

// kit copies a template kit so entities never share a backing array.
func kit(items []item.Item) []item.Item {
	return append([]item.Item(nil), items...)
}
