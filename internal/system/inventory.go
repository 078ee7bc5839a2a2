package system

import (
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/item"
)

// ItemAt returns the stack in slot, or false when the slot is empty or
// the entity carries nothing.
func ItemAt(w *ecs.World, id ecs.EntityID, slot int) (item.Item, bool) {
	c := w.Get(id, component.CInventory)
	if c == nil {
		return item.Item{}, false
	}
	inv := c.(component.Inventory)
	if slot < 0 || slot >= len(inv.Items) || inv.Items[slot].IsEmpty() {
		return item.Item{}, false
	}
	return inv.Items[slot], true
}

// TakeOne removes a single item from slot. An emptied wielded slot stops
// being wielded.
func TakeOne(w *ecs.World, id ecs.EntityID, slot int) bool {
	c := w.Get(id, component.CInventory)
	if c == nil {
		return false
	}
	inv := c.(component.Inventory).CloneComponent().(component.Inventory)
	if slot < 0 || slot >= len(inv.Items) || inv.Items[slot].IsEmpty() {
		return false
	}
	inv.Items[slot].Quantity--
	if inv.Items[slot].IsEmpty() && inv.Wielded == slot {
		inv.Wielded = -1
	}
	w.Add(id, inv)
	return true
}

// Stow adds it to the entity's pack, merging with a matching stack first
// and otherwise filling an empty slot. It reports false when the pack is
// full.
func Stow(w *ecs.World, id ecs.EntityID, it item.Item) bool {
	c := w.Get(id, component.CInventory)
	if c == nil {
		return false
	}
	inv := c.(component.Inventory).CloneComponent().(component.Inventory)
	for i, have := range inv.Items {
		if !have.IsEmpty() && stacks(have, it) {
			inv.Items[i].Quantity += it.Quantity
			inv.Items[i].BrandKnown = have.BrandKnown || it.BrandKnown
			w.Add(id, inv)
			return true
		}
	}
	for i, have := range inv.Items {
		if have.IsEmpty() {
			inv.Items[i] = it
			w.Add(id, inv)
			return true
		}
	}
	if inv.Capacity > 0 && len(inv.Items) >= inv.Capacity {
		return false
	}
	inv.Items = append(inv.Items, it)
	w.Add(id, inv)
	return true
}

// Restore puts a returning item back into the slot it left when that slot
// is still free or holds the same stack, wielding it again if wield is
// set. Otherwise it falls back to Stow.
func Restore(w *ecs.World, id ecs.EntityID, slot int, it item.Item, wield bool) bool {
	c := w.Get(id, component.CInventory)
	if c == nil {
		return false
	}
	inv := c.(component.Inventory).CloneComponent().(component.Inventory)
	if slot < 0 || slot >= len(inv.Items) {
		return Stow(w, id, it)
	}
	have := inv.Items[slot]
	switch {
	case have.IsEmpty():
		inv.Items[slot] = it
	case stacks(have, it):
		inv.Items[slot].Quantity += it.Quantity
		inv.Items[slot].BrandKnown = have.BrandKnown || it.BrandKnown
	default:
		return Stow(w, id, it)
	}
	if wield && inv.Wielded < 0 {
		inv.Wielded = slot
	}
	w.Add(id, inv)
	return true
}

// stacks reports whether a and b are the same kind of item.
func stacks(a, b item.Item) bool {
	a.Quantity, b.Quantity = 0, 0
	a.BrandKnown, b.BrandKnown = false, false
	return a == b
}

// DropAt leaves it on the floor at p, merging into a matching floor stack.
func DropAt(w *ecs.World, p gamemap.Point, it item.Item) ecs.EntityID {
	for _, id := range FloorItemsAt(w, p) {
		fi := w.Get(id, component.CFloorItem).(component.FloorItem)
		if stacks(fi.Item, it) {
			fi.Quantity += it.Quantity
			w.Add(id, fi)
			return id
		}
	}
	id := w.CreateEntity()
	w.Add(id, component.Position{X: p.X, Y: p.Y})
	w.Add(id, component.FloorItem{Item: it})
	return id
}

// FloorItemsAt returns the floor stacks lying on p.
func FloorItemsAt(w *ecs.World, p gamemap.Point) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Query(component.CFloorItem, component.CPosition) {
		if gamemap.Point(w.Get(id, component.CPosition).(component.Position)) == p {
			out = append(out, id)
		}
	}
	return out
}
