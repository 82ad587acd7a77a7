package entity

import (
	"fmt"

	"github.com/samdwyer/rogue/internal/combat"
	"github.com/samdwyer/rogue/internal/world"
)

// Player is the entity controlled by the user.
type Player struct {
	Entity
	Experience   int // Total experience; never decreases
	MaxHealth    int
	Regeneration int // Health restored per Regenerate call
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y int, rules *combat.Rules) *Player {
	p := &Player{
		Entity:       *NewEntity(x, y, "player", rules),
		Regeneration: 5,
	}
	p.Tile = world.TilePlayer
	p.Color = world.TilePlayer.Color()
	p.Solid = true
	p.Tag = TagPlayer
	p.MaxHealth = p.Health
	p.owner = p
	return p
}

// Level returns the level reached with the player's current experience.
func (p *Player) Level() int {
	return combat.LevelForExperience(p.Experience)
}

// GainExperience adds exp and applies any level-ups: each level gained adds
// the rules' health increment to max health, then health is refilled.
// It returns the number of levels gained.
func (p *Player) GainExperience(exp int) int {
	if exp < 0 {
		exp = 0
	}
	oldLevel := p.Level()
	p.Experience += exp
	newLevel := p.Level()
	p.Entity.Level = newLevel

	gained := newLevel - oldLevel
	if gained > 0 {
		p.MaxHealth += gained * p.Rules.HealthPerLevel
		p.Health = p.MaxHealth
	}
	return gained
}

// Regenerate restores Regeneration health, up to MaxHealth. It never
// revives an entity at zero health.
func (p *Player) Regenerate() {
	if !p.CanAct() || p.Health <= 0 || p.Health >= p.MaxHealth {
		return
	}
	p.Health = min(p.Health+p.Regeneration, p.MaxHealth)
}

// Outcome describes what an AttackMove did.
type Outcome struct {
	Moved        bool
	Target       *Entity // Enemy attacked, nil if the player only moved
	Damage       int
	Killed       bool
	Experience   int
	LevelsGained int
}

// Attacked returns true if the move turned into an attack.
func (o Outcome) Attacked() bool {
	return o.Target != nil
}

// AttackMove moves to (x, y), or attacks the first living enemy there instead.
// A killed enemy is marked dead straight away so it can't act again this
// turn; its removal still happens in its own Update.
func (p *Player) AttackMove(x, y int, w *world.World, msgs MessageSink) Outcome {
	target := firstLivingEnemy(w, x, y)
	if target == nil {
		return Outcome{Moved: p.Move(x, y, w)}
	}

	rng := w.Rand()
	out := Outcome{Target: target}
	out.Damage = p.CalculateDamage(target, rng)
	target.TakeDamage(out.Damage)
	say(msgs, fmt.Sprintf("%s hit %s with %s for %d hp!",
		p.Name, target.Name, p.weaponName(), out.Damage))

	if target.Health <= 0 {
		target.Die()
		out.Killed = true

		out.Experience = p.Rules.RollExperience(rng)
		say(msgs, fmt.Sprintf("%s gained %d exp", p.Name, out.Experience))

		out.LevelsGained = p.GainExperience(out.Experience)
		if out.LevelsGained > 0 {
			say(msgs, fmt.Sprintf("ding! %s is now level %d", p.Name, p.Level()))
		}
	}
	return out
}

// Update recenters the camera on the player, then runs the base update.
func (p *Player) Update(g Game) {
	g.Camera().CenterOn(p.X, p.Y, g.World())
	p.Entity.Update(g)
}

// weaponName names what the player is hitting with.
func (p *Player) weaponName() string {
	if weapon := p.GetSlot(SlotRightHand); weapon != nil {
		return weapon.Name
	}
	return "bare hands"
}

// firstLivingEnemy returns the first living enemy-tagged actor at (x, y).
func firstLivingEnemy(w *world.World, x, y int) *Entity {
	for _, occ := range w.GetEntitiesAt(x, y) {
		a, ok := occ.(Actor)
		if !ok {
			continue
		}
		if e := a.Base(); e.Tag == TagEnemy && e.CanAct() {
			return e
		}
	}
	return nil
}

func say(msgs MessageSink, line string) {
	if msgs != nil {
		msgs.Append(line)
	}
}
