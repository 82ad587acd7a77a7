package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/rogue/internal/world"
)

// lines collects messages.
type lines []string

func (l *lines) Append(line string) { *l = append(*l, line) }

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer(2, 3, nil)

	assert.Equal(t, "player", p.Name)
	assert.Equal(t, TagPlayer, p.Tag)
	assert.True(t, p.IsSolid())
	assert.Equal(t, world.TilePlayer, p.Glyph())
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.MaxHealth)
	assert.Equal(t, 5, p.Regeneration)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, 1, p.Level())
	assert.True(t, p.GetSlot(SlotRightHand).IsSentinel())
}

func TestGainExperience(t *testing.T) {
	p := NewPlayer(0, 0, nil)
	p.Health = 40

	assert.Equal(t, 0, p.GainExperience(99))
	assert.Equal(t, 1, p.Level())
	assert.Equal(t, 40, p.Health)

	assert.Equal(t, 1, p.GainExperience(1))
	assert.Equal(t, 2, p.Level())
	assert.Equal(t, 2, p.Entity.Level)
	assert.Equal(t, 110, p.MaxHealth)
	assert.Equal(t, 110, p.Health)
}

func TestGainExperienceSeveralLevels(t *testing.T) {
	p := NewPlayer(0, 0, nil)

	assert.Equal(t, 3, p.GainExperience(600))
	assert.Equal(t, 4, p.Level())
	assert.Equal(t, 130, p.MaxHealth)
	assert.Equal(t, 130, p.Health)
}

func TestGainExperienceIgnoresNegative(t *testing.T) {
	p := NewPlayer(0, 0, nil)
	p.GainExperience(150)
	p.GainExperience(-100)
	assert.Equal(t, 150, p.Experience)
	assert.Equal(t, 2, p.Level())
}

func TestRegenerate(t *testing.T) {
	p := NewPlayer(0, 0, nil)

	p.Health = 50
	p.Regenerate()
	assert.Equal(t, 55, p.Health)

	p.Health = 98
	p.Regenerate()
	assert.Equal(t, 100, p.Health, "capped at max health")

	p.Regenerate()
	assert.Equal(t, 100, p.Health)

	p.Health = 0
	p.Regenerate()
	assert.Equal(t, 0, p.Health, "no revival")

	p.Health = 50
	p.Die()
	p.Regenerate()
	assert.Equal(t, 50, p.Health)
}

func TestPlayerUpdateRemovesDeadPlayer(t *testing.T) {
	w := newFloorWorld(t)
	g := &testGame{world: w, camera: world.NewCamera(4, 4)}
	p := NewPlayer(5, 5, nil)
	w.AddEntity(p)

	p.Update(g)
	assert.True(t, w.HasEntity(p))
	assert.Equal(t, 3, g.camera.X)
	assert.Equal(t, 3, g.camera.Y)

	p.Health = 0
	p.Update(g)
	assert.False(t, w.HasEntity(p))
	assert.Empty(t, w.Entities())
}

func TestPlayerMoveIgnoresItself(t *testing.T) {
	w := newFloorWorld(t)
	p := NewPlayer(5, 5, nil)
	w.AddEntity(p)

	assert.True(t, p.Move(5, 5, w))
	assert.True(t, p.Move(5, 6, w))
}

func TestAttackMoveKillsWeakEnemy(t *testing.T) {
	w := newFloorWorld(t)
	p := NewPlayer(2, 2, nil)
	w.AddEntity(p)

	enemy := NewEnemy(3, 2, "rat", nil)
	enemy.Health = 1
	w.AddEntity(enemy)

	var msgs lines
	out := p.AttackMove(3, 2, w, &msgs)

	require.True(t, out.Attacked())
	assert.Same(t, enemy, out.Target)
	assert.False(t, out.Moved)
	assert.Equal(t, 2, out.Damage)
	assert.True(t, out.Killed)
	assert.Equal(t, -1, enemy.Health)
	assert.Equal(t, StateDead, enemy.State())
	assert.Equal(t, 2, p.X, "player stays put")

	assert.GreaterOrEqual(t, out.Experience, 15)
	assert.LessOrEqual(t, out.Experience, 250)
	assert.Equal(t, out.Experience, p.Experience)

	require.GreaterOrEqual(t, len(msgs), 2)
	assert.Equal(t, "player hit rat with fists for 2 hp!", msgs[0])
	assert.Contains(t, msgs[1], "player gained")

	// Still registered until its own update
	assert.True(t, w.HasEntity(enemy))
	enemy.Update(&testGame{world: w, camera: world.NewCamera(4, 4)})
	assert.False(t, w.HasEntity(enemy))
}

func TestAttackMoveNonLethal(t *testing.T) {
	w := newFloorWorld(t)
	p := NewPlayer(2, 2, nil)
	w.AddEntity(p)
	enemy := NewEnemy(2, 3, "orc", nil)
	w.AddEntity(enemy)

	var msgs lines
	out := p.AttackMove(2, 3, w, &msgs)

	assert.True(t, out.Attacked())
	assert.False(t, out.Killed)
	assert.Equal(t, 98, enemy.Health)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, lines{"player hit orc with fists for 2 hp!"}, msgs)
}

func TestAttackMoveLevelsUp(t *testing.T) {
	w := newFloorWorld(t)
	p := NewPlayer(2, 2, nil)
	p.Experience = 99
	p.Health = 10
	p.Rules.ExpMax = 100
	w.AddEntity(p)

	enemy := NewEnemy(3, 3, "rat", nil)
	enemy.Health = 1
	w.AddEntity(enemy)

	var msgs lines
	out := p.AttackMove(3, 3, w, &msgs)

	require.True(t, out.Killed)
	assert.Equal(t, 1, out.LevelsGained)
	assert.Equal(t, 110, p.MaxHealth)
	assert.Equal(t, 110, p.Health)
	require.Len(t, msgs, 3)
	assert.Equal(t, "ding! player is now level 2", msgs[2])
}

func TestAttackMoveWithWeaponNamesIt(t *testing.T) {
	w := newFloorWorld(t)
	p := NewPlayer(2, 2, nil)
	require.NoError(t, p.Equip(NewWeapon("sword", 10)))
	w.AddEntity(p)
	w.AddEntity(NewEnemy(3, 2, "rat", nil))

	var msgs lines
	p.AttackMove(3, 2, w, &msgs)
	require.Len(t, msgs, 1)
	assert.Equal(t, "player hit rat with sword for 2 hp!", msgs[0])
}

func TestAttackMoveMovesIntoEmptyCell(t *testing.T) {
	w := newFloorWorld(t)
	p := NewPlayer(2, 2, nil)
	w.AddEntity(p)

	var msgs lines
	out := p.AttackMove(3, 2, w, &msgs)
	assert.True(t, out.Moved)
	assert.False(t, out.Attacked())
	assert.Equal(t, 3, p.X)
	assert.Empty(t, msgs)

	out = p.AttackMove(0, 2, w, &msgs)
	assert.False(t, out.Moved, "wall")
	assert.Equal(t, 3, p.X)
}

func TestAttackMoveBlockedByNonEnemy(t *testing.T) {
	w := newFloorWorld(t)
	p := NewPlayer(2, 2, nil)
	w.AddEntity(p)

	statue := NewEntity(3, 2, "statue", nil)
	statue.Solid = true
	w.AddEntity(statue)

	out := p.AttackMove(3, 2, w, nil)
	assert.False(t, out.Attacked())
	assert.False(t, out.Moved)
	assert.Equal(t, 100, statue.Health)
}

func TestAttackMoveSkipsDeadEnemy(t *testing.T) {
	w := newFloorWorld(t)
	p := NewPlayer(2, 2, nil)
	w.AddEntity(p)

	corpse := NewEnemy(3, 2, "rat", nil)
	corpse.Die()
	w.AddEntity(corpse)

	out := p.AttackMove(3, 2, w, nil)
	assert.False(t, out.Attacked())
	assert.False(t, out.Moved, "the corpse is still solid")
	assert.Equal(t, 100, corpse.Health)
}

func TestAttackMoveIsReproducible(t *testing.T) {
	run := func() (int, int) {
		w := world.New(10, 10, rand.New(rand.NewSource(11)))
		require.NoError(t, w.AddRoom(0, 0, world.RectRoom(10, 10)))
		p := NewPlayer(2, 2, nil)
		p.Entity.Level = 20
		p.Attack = 40
		w.AddEntity(p)
		enemy := NewEnemy(3, 2, "orc", nil)
		enemy.Health = 1000
		w.AddEntity(enemy)
		out := p.AttackMove(3, 2, w, nil)
		return out.Damage, enemy.Health
	}

	d1, h1 := run()
	d2, h2 := run()
	assert.Equal(t, d1, d2)
	assert.Equal(t, h1, h2)
}
