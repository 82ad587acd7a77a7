package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/rogue/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible worlds.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// World dimensions.
	Width, Height int

	// Viewport dimensions for the camera.
	ViewWidth, ViewHeight int

	// Enemies is how many enemies to spawn.
	Enemies int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Width:      world.DefaultWidth,
		Height:     world.DefaultHeight,
		ViewWidth:  60,
		ViewHeight: 20,
		Enemies:    8,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies ROGUE_SEED,
// ROGUE_WIDTH, ROGUE_HEIGHT and ROGUE_ENEMIES when set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("ROGUE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse ROGUE_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"ROGUE_WIDTH", &cfg.Width},
		{"ROGUE_HEIGHT", &cfg.Height},
		{"ROGUE_ENEMIES", &cfg.Enemies},
	}
	for _, f := range ints {
		v := os.Getenv(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", f.name, err)
		}
		*f.dst = n
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration can produce a world.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("world size %dx%d is too small", c.Width, c.Height)
	}
	if c.ViewWidth < 1 || c.ViewHeight < 1 {
		return fmt.Errorf("view size %dx%d is too small", c.ViewWidth, c.ViewHeight)
	}
	if c.Enemies < 0 {
		return fmt.Errorf("enemy count %d is negative", c.Enemies)
	}
	return nil
}
