package entity

import "errors"

var (
	// ErrInvalidEquipment is returned for non-equippable items and for any
	// attempt to move the unarmed sentinel in or out of an inventory.
	ErrInvalidEquipment = errors.New("invalid equipment")
	// ErrInvalidInventoryOperation is returned when removing an item the entity doesn't hold.
	ErrInvalidInventoryOperation = errors.New("invalid inventory operation")
)
