// Package main is the entry point for the headless rogue demo. It builds a
// dungeon, walks the player around with a scripted sequence of moves and
// draws the map and the message log on a headless tcell screen.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/rogue/internal/game"
	"github.com/samdwyer/rogue/internal/logger"
	"github.com/samdwyer/rogue/internal/telemetry"
	"github.com/samdwyer/rogue/internal/ui"
)

// logLines is how many recent messages are shown under the map.
const logLines = 10

func main() {
	turns := flag.Int("turns", 200, "number of turns to play")
	flag.Parse()

	// Load .env file for local development; env vars may also be set directly
	envErr := godotenv.Load()

	logger.Init()
	log := logger.Component("main")
	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("Telemetry setup failed; running without tracing.")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("Error shutting down telemetry.")
				}
			}()
		}
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration.")
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize game.")
	}

	play(ctx, g, *turns)

	screen, err := ui.NewHeadlessScreen(cfg.ViewWidth, cfg.ViewHeight+logLines+2)
	if err != nil {
		log.WithError(err).Fatal("Failed to create screen.")
	}
	defer screen.Close()

	p := g.Player()
	lines := g.Messages().Last(logLines)
	lines = append(lines, "", fmt.Sprintf("turn %d: level %d, %d/%d hp, %d exp, %d items",
		g.Turn(), p.Level(), p.Health, p.MaxHealth, p.Experience, len(p.Items)))

	r := ui.NewRenderer(screen)
	r.Render(g.World(), g.Camera())
	r.RenderMessages(lines, cfg.ViewHeight+1)

	fmt.Fprintln(os.Stdout, screen.Text())
}

// play walks the player in a fixed direction until it is blocked, then turns
// clockwise. There is no AI here; it only exercises the turn loop.
func play(ctx context.Context, g *game.Game, turns int) {
	dirs := [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	d := 0
	for i := 0; i < turns && g.State() == game.StatePlaying; i++ {
		out := g.Step(ctx, dirs[d][0], dirs[d][1])
		if !out.Moved && !out.Attacked() {
			d = (d + 1) % len(dirs)
		}
	}
}
