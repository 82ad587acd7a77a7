package game

import (
	"errors"
	"math/rand"

	"github.com/samdwyer/rogue/internal/combat"
	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/world"
)

// enemyKind is a template for spawned enemies.
type enemyKind struct {
	name    string
	health  int
	attack  int
	defense int
	weight  int // Relative spawn frequency
}

var enemyKinds = []enemyKind{
	{name: "goblin", health: 20, attack: 3, defense: 1, weight: 5},
	{name: "orc", health: 35, attack: 5, defense: 2, weight: 3},
	{name: "skeleton", health: 25, attack: 4, defense: 3, weight: 2},
}

// pickEnemyKind selects a kind using weighted probability.
func pickEnemyKind(rng *rand.Rand) enemyKind {
	total := 0
	for _, k := range enemyKinds {
		total += k.weight
	}
	roll := rng.Intn(total)
	cumulative := 0
	for _, k := range enemyKinds {
		cumulative += k.weight
		if roll < cumulative {
			return k
		}
	}
	return enemyKinds[0]
}

// spawnEnemy creates an enemy with a small inventory on a free floor tile
// and registers it. It returns world.ErrNoAvailablePosition when the map is full.
func spawnEnemy(w *world.World, rules *combat.Rules) (*entity.Entity, error) {
	rng := w.Rand()
	kind := pickEnemyKind(rng)

	e := entity.NewEnemy(0, 0, kind.name, rules)
	e.Health = kind.health
	e.Attack = kind.attack
	e.Defense = kind.defense

	for _, item := range carriedItems(kind, rng) {
		if err := e.AddItem(item); err != nil {
			return nil, err
		}
	}

	if err := e.PlaceRandomly(w); err != nil {
		return nil, err
	}
	w.AddEntity(e)
	return e, nil
}

// carriedItems rolls what an enemy carries, and so what it can drop.
func carriedItems(kind enemyKind, rng *rand.Rand) []*entity.Item {
	items := []*entity.Item{entity.NewItem("healing potion")}
	if rng.Intn(2) == 0 {
		items = append(items, entity.NewWeapon("rusty "+kind.name+" blade", 8+kind.attack))
	}
	if rng.Intn(3) == 0 {
		items = append(items, entity.NewEquipment("leather cap", entity.SlotHead,
			map[string]int{entity.StatDefense: 1}))
	}
	return items
}

func isFull(err error) bool {
	return errors.Is(err, world.ErrNoAvailablePosition)
}
