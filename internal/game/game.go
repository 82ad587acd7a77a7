package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rogue/internal/combat"
	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/logger"
	"github.com/samdwyer/rogue/internal/message"
	"github.com/samdwyer/rogue/internal/telemetry"
	"github.com/samdwyer/rogue/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	rules    *combat.Rules
	world    *world.World
	camera   *world.Camera
	player   *entity.Player
	rooms    []world.Room
	messages *message.Queue
	state    State
	turn     int
	log      *logrus.Entry
}

// New builds a dungeon from cfg and places the player and enemies in it.
func New(ctx context.Context, cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		cfg:      cfg,
		rules:    combat.StandardRules(),
		world:    world.New(cfg.Width, cfg.Height, rng),
		camera:   world.NewCamera(cfg.ViewWidth, cfg.ViewHeight),
		messages: message.NewQueue(),
		state:    StatePlaying,
		log:      logger.Component("game"),
	}

	gen := world.NewGenerator(logger.Log, world.RectRoom, world.CrossRoom)
	rooms, err := gen.Generate(ctx, g.world)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}
	g.rooms = rooms

	g.player = entity.NewPlayer(0, 0, g.rules)
	if err := g.player.PlaceRandomly(g.world); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("place player: %w", err)
	}
	g.world.AddEntity(g.player)
	g.camera.CenterOn(g.player.X, g.player.Y, g.world)

	spawned := 0
	for i := 0; i < cfg.Enemies; i++ {
		if _, err := spawnEnemy(g.world, g.rules); err != nil {
			if isFull(err) {
				g.log.WithField("spawned", spawned).Warn("Ran out of floor while spawning enemies.")
				break
			}
			return nil, fmt.Errorf("spawn enemy: %w", err)
		}
		spawned++
	}

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(rooms)),
		attribute.Int("enemies", spawned),
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
	)
	g.log.WithFields(logrus.Fields{
		"seed":    seed,
		"rooms":   len(rooms),
		"enemies": spawned,
	}).Info("Game initialized.")

	return g, nil
}

// World returns the game world.
func (g *Game) World() *world.World { return g.world }

// Camera returns the viewport.
func (g *Game) Camera() *world.Camera { return g.camera }

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.player }

// Messages returns the message log.
func (g *Game) Messages() *message.Queue { return g.messages }

// Rooms returns the rooms generated for the dungeon.
func (g *Game) Rooms() []world.Room { return g.rooms }

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Turn returns the number of turns played.
func (g *Game) Turn() int { return g.turn }

// Step plays one turn: the player attack-moves by (dx, dy), then every
// registered actor updates. Dead actors remove themselves during their update.
func (g *Game) Step(ctx context.Context, dx, dy int) entity.Outcome {
	if g.state != StatePlaying {
		return entity.Outcome{}
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.step")
	defer span.End()

	out := g.player.AttackMove(g.player.X+dx, g.player.Y+dy, g.world, g.messages)
	if out.Attacked() {
		g.recordAttack(ctx, out)
	} else {
		g.player.Regenerate()
	}

	// Updates may remove entities, so iterate a snapshot.
	for _, occ := range g.world.Entities() {
		if a, ok := occ.(entity.Actor); ok {
			a.Update(g)
		}
	}

	g.turn++
	if !g.player.CanAct() || !g.world.HasEntity(g.player) {
		g.state = StateOver
		g.messages.Append("You die...")
		g.log.WithField("turn", g.turn).Info("Player died.")
	}

	span.SetAttributes(
		attribute.Int("turn", g.turn),
		attribute.Int("player.x", g.player.X),
		attribute.Int("player.y", g.player.Y),
		attribute.Bool("moved", out.Moved),
	)
	return out
}

// recordAttack traces the attack and hands the target's loot to the player on a kill.
func (g *Game) recordAttack(ctx context.Context, out entity.Outcome) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.attack")
	defer span.End()

	target := out.Target
	span.SetAttributes(
		attribute.String("attacker", g.player.Name),
		attribute.String("target", target.Name),
		attribute.String("target.id", target.ID.String()),
		attribute.Int("damage", out.Damage),
		attribute.Bool("killed", out.Killed),
	)

	fields := logrus.Fields{
		"target":    target.Name,
		"target_id": target.ID,
		"damage":    out.Damage,
		"target_hp": target.Health,
	}
	if !out.Killed {
		g.log.WithFields(fields).Debug("Attack resolved.")
		return
	}

	fields["experience"] = out.Experience
	fields["level"] = g.player.Level()
	g.log.WithFields(fields).Info("Enemy killed.")
	if out.LevelsGained > 0 {
		span.SetAttributes(attribute.Int("player.level", g.player.Level()))
	}

	for _, item := range target.Loot(g.world.Rand()) {
		if err := target.RemoveItem(item); err != nil {
			g.log.WithError(err).Warn("Loot vanished from corpse.")
			continue
		}
		if err := g.player.AddItem(item); err != nil {
			g.log.WithError(err).Warn("Could not pick up loot.")
			continue
		}
		g.messages.Append(fmt.Sprintf("%s picked up %s", g.player.Name, item.Name))
	}
}
