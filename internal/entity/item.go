package entity

import "github.com/samdwyer/rogue/internal/world"

// Equipment slot names.
const (
	SlotRightHand = "right hand"
	SlotLeftHand  = "left hand"
	SlotHead      = "head"
	SlotBody      = "body"
)

// Item stat names.
const (
	StatAttack  = "attack"
	StatDefense = "defense"
)

// Item is anything an entity can carry.
type Item struct {
	Name       string
	Tile       world.Tile
	Equippable bool
	Slot       string         // Slot the item occupies when equipped
	Stats      map[string]int // e.g. {"attack": 12}
	sentinel   bool
}

// FistsName names the unarmed sentinel.
const FistsName = "fists"

// newFists creates the unarmed sentinel kept in an entity's right hand when
// nothing else is equipped there. Each entity gets its own. A sentinel can
// never be added, removed, equipped or unequipped.
func newFists(attack int) *Item {
	return &Item{
		Name:       FistsName,
		Tile:       world.TileClear,
		Equippable: true,
		Slot:       SlotRightHand,
		Stats:      map[string]int{StatAttack: attack},
		sentinel:   true,
	}
}

// NewItem creates a plain, non-equippable item.
func NewItem(name string) *Item {
	return &Item{
		Name:  name,
		Tile:  world.TileItem,
		Stats: make(map[string]int),
	}
}

// NewEquipment creates an equippable item for the given slot.
func NewEquipment(name, slot string, stats map[string]int) *Item {
	item := NewItem(name)
	item.Equippable = true
	item.Slot = slot
	for k, v := range stats {
		item.Stats[k] = v
	}
	return item
}

// NewWeapon creates a right-hand weapon with the given attack.
func NewWeapon(name string, attack int) *Item {
	return NewEquipment(name, SlotRightHand, map[string]int{StatAttack: attack})
}

// IsSentinel returns true for the unarmed placeholder.
func (i *Item) IsSentinel() bool {
	return i != nil && i.sentinel
}

// Stat returns the named stat, or 0 if the item doesn't have it.
func (i *Item) Stat(name string) int {
	if i == nil {
		return 0
	}
	return i.Stats[name]
}

// String returns the item's name.
func (i *Item) String() string {
	if i == nil {
		return "nothing"
	}
	return i.Name
}
