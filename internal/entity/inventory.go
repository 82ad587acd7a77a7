package entity

import "fmt"

// AddItem puts item in the inventory.
func (e *Entity) AddItem(item *Item) error {
	if item == nil || item.IsSentinel() {
		return fmt.Errorf("add %s: %w", item, ErrInvalidEquipment)
	}
	e.Items = append(e.Items, item)
	return nil
}

// HasItem returns true if item is in the inventory.
func (e *Entity) HasItem(item *Item) bool {
	return e.itemIndex(item) >= 0
}

// RemoveItem takes item out of the inventory. If it was equipped its slot
// is reset as well.
func (e *Entity) RemoveItem(item *Item) error {
	if item == nil || item.IsSentinel() {
		return fmt.Errorf("remove %s: %w", item, ErrInvalidEquipment)
	}
	i := e.itemIndex(item)
	if i < 0 {
		return fmt.Errorf("remove %s from %s: not held: %w", item, e.Name, ErrInvalidInventoryOperation)
	}
	e.Items = append(e.Items[:i], e.Items[i+1:]...)

	if e.Equipment[item.Slot] == item {
		e.resetSlot(item.Slot)
	}
	return nil
}

// Equip puts item into its slot, adding it to the inventory if needed.
// Whatever was in the slot stays in the inventory.
func (e *Entity) Equip(item *Item) error {
	if item == nil || item.IsSentinel() || !item.Equippable {
		return fmt.Errorf("equip %s: %w", item, ErrInvalidEquipment)
	}
	if !e.HasItem(item) {
		e.Items = append(e.Items, item)
	}
	e.Equipment[item.Slot] = item
	return nil
}

// Unequip removes item from the inventory and resets its slot.
func (e *Entity) Unequip(item *Item) error {
	if item == nil || item.IsSentinel() {
		return fmt.Errorf("unequip %s: %w", item, ErrInvalidEquipment)
	}
	return e.RemoveItem(item)
}

// GetSlot returns the item in slot, or nil if nothing is there.
func (e *Entity) GetSlot(slot string) *Item {
	return e.Equipment[slot]
}

// resetSlot restores a slot to its empty state: the unarmed sentinel for the
// right hand under rules with a default weapon, nothing otherwise.
func (e *Entity) resetSlot(slot string) {
	if slot == SlotRightHand && e.Rules.DefaultWeapon {
		e.Equipment[slot] = newFists(e.Rules.UnarmedDamage)
		return
	}
	delete(e.Equipment, slot)
}

func (e *Entity) itemIndex(item *Item) int {
	for i, held := range e.Items {
		if held == item {
			return i
		}
	}
	return -1
}
