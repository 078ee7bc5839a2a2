package component

import (
	"missile-engine/internal/ecs"
	"missile-engine/internal/item"
)

const CInventory ecs.ComponentType = 6

// Inventory holds item stacks by slot. Wielded indexes the wielded weapon
// or launcher, -1 for bare hands.
type Inventory struct {
	Items    []item.Item
	Capacity int
	Wielded  int
}

func (Inventory) Type() ecs.ComponentType { return CInventory }

func (inv Inventory) CloneComponent() ecs.Component {
	inv.Items = append([]item.Item(nil), inv.Items...)
	return inv
}

// Weapon returns the wielded item, if any.
func (inv Inventory) Weapon() (item.Item, bool) {
	if inv.Wielded < 0 || inv.Wielded >= len(inv.Items) || inv.Items[inv.Wielded].IsEmpty() {
		return item.Item{}, false
	}
	return inv.Items[inv.Wielded], true
}
