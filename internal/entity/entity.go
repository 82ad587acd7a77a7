// Package entity provides the actors that live in the world: monsters,
// objects and the player.
package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/rogue/internal/combat"
	"github.com/samdwyer/rogue/internal/world"
)

// Entity tags.
const (
	TagPlayer = "player"
	TagEnemy  = "enemy"
)

// State is an entity's life state.
type State int

const (
	// StateAlive entities act and can be attacked.
	StateAlive State = iota
	// StateDead entities no longer act and are removed on their next update.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Game is the game state an entity sees during its update.
type Game interface {
	World() *world.World
	Camera() *world.Camera
}

// Actor is anything registered in the world that updates each turn.
// Both *Entity and *Player implement it.
type Actor interface {
	world.Occupant
	Base() *Entity
	Update(g Game)
}

// MessageSink receives human-readable combat messages.
type MessageSink interface {
	Append(line string)
}

// Entity is the base actor.
type Entity struct {
	ID     uuid.UUID
	X, Y   int         // Position in world space
	Health int         // Hit points left; zero or less means dead
	Tile   world.Tile  // Display glyph
	Color  tcell.Color // Display color
	Solid  bool        // Blocks other solid entities from moving in
	Name   string
	Tag    string // Category, e.g. "player" or "enemy"

	Level   int
	Attack  int
	Defense int

	Items     []*Item
	Equipment map[string]*Item
	Rules     *combat.Rules

	state State
	owner Actor // Outer actor embedding this entity, if any
}

// NewEntity creates a non-solid entity with default stats.
// A nil rules uses combat.StandardRules.
func NewEntity(x, y int, name string, rules *combat.Rules) *Entity {
	if rules == nil {
		rules = combat.StandardRules()
	}
	e := &Entity{
		ID:        uuid.New(),
		X:         x,
		Y:         y,
		Health:    100,
		Tile:      world.TileClear,
		Color:     tcell.ColorDefault,
		Name:      name,
		Level:     1,
		Attack:    1,
		Defense:   1,
		Items:     make([]*Item, 0),
		Equipment: make(map[string]*Item),
		Rules:     rules,
		state:     StateAlive,
	}
	e.resetSlot(SlotRightHand)
	return e
}

// NewEnemy creates a solid enemy-tagged entity.
func NewEnemy(x, y int, name string, rules *combat.Rules) *Entity {
	e := NewEntity(x, y, name, rules)
	e.Tile = world.TileEnemy
	e.Color = world.TileEnemy.Color()
	e.Solid = true
	e.Tag = TagEnemy
	return e
}

// Position returns the entity's current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}

// IsSolid returns true if the entity blocks movement.
func (e *Entity) IsSolid() bool {
	return e.Solid
}

// Glyph returns the entity's display tile.
func (e *Entity) Glyph() world.Tile {
	return e.Tile
}

// Style returns the tcell style the entity is drawn with: its glyph's
// style in the entity's own color.
func (e *Entity) Style() tcell.Style {
	return e.Tile.Style().Foreground(e.Color)
}

// Base returns the entity itself.
func (e *Entity) Base() *Entity {
	return e
}

// actor returns the value registered in the world for this entity.
func (e *Entity) actor() Actor {
	if e.owner != nil {
		return e.owner
	}
	return e
}

// State returns the entity's life state.
func (e *Entity) State() State {
	return e.state
}

// CanAct returns true while the entity is alive.
func (e *Entity) CanAct() bool {
	return e.state == StateAlive
}

// Die marks the entity dead. It reports whether this call did the transition.
func (e *Entity) Die() bool {
	if e.state == StateDead {
		return false
	}
	e.state = StateDead
	return true
}

// AddHealth changes health by delta; negative deltas hurt.
func (e *Entity) AddHealth(delta int) {
	e.Health += delta
}

// Move moves to (x, y) and reports whether the move happened.
// Non-solid entities move anywhere. Solid entities can't enter walls, cells
// off the grid, or cells holding another solid entity.
func (e *Entity) Move(x, y int, w *world.World) bool {
	if !e.Solid {
		e.X, e.Y = x, y
		return true
	}

	wall, err := w.IsWall(x, y)
	if err != nil || wall {
		return false
	}

	self := world.Occupant(e.actor())
	for _, other := range w.GetEntitiesAt(x, y) {
		if other != self && other.IsSolid() {
			return false
		}
	}

	e.X, e.Y = x, y
	return true
}

// PlaceRandomly moves the entity onto a random unoccupied floor tile.
func (e *Entity) PlaceRandomly(w *world.World) error {
	p, err := w.RandomFloorTile()
	if err != nil {
		return err
	}
	e.X, e.Y = p.X, p.Y
	return nil
}

// BaseDamage returns the attack of the right-hand weapon. Bare hands, either
// the sentinel or an empty slot, hit for the rules' unarmed damage.
func (e *Entity) BaseDamage() int {
	if weapon := e.GetSlot(SlotRightHand); weapon != nil && !weapon.IsSentinel() {
		return weapon.Stat(StatAttack)
	}
	return e.Rules.UnarmedDamage
}

// CalculateDamage rolls the damage this entity would deal to target.
func (e *Entity) CalculateDamage(target *Entity, rng *rand.Rand) int {
	return e.Rules.Damage(
		combat.Attacker{Level: e.Level, Attack: e.Attack, WeaponAttack: e.BaseDamage()},
		combat.Defender{Defense: target.Defense},
		rng,
	)
}

// TakeDamage subtracts damage from health. Negative damage heals.
func (e *Entity) TakeDamage(damage int) {
	e.AddHealth(-damage)
}

// Loot returns what the entity drops: one or two random inventory items.
func (e *Entity) Loot(rng *rand.Rand) []*Item {
	return combat.SampleLoot(e.Items, rng)
}

// Update enacts death: an entity at zero health or below is marked dead and
// removed from the world.
func (e *Entity) Update(g Game) {
	if e.Health > 0 {
		return
	}
	e.Die()
	g.World().RemoveEntity(e.actor())
}
