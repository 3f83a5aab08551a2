package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Validate checks the configuration invariants the simulation relies on.
// The most important one is that the largest gap (the initial one) still
// leaves a non-negative spawn range, so spawning never has to handle it.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %v", c.World.Height)
	check(c.World.GroundHeight >= 0 && c.World.GroundHeight < c.World.Height,
		"world.ground_height must be in [0, height), got %v", c.World.GroundHeight)
	check(c.Bird.Radius > 0, "bird.radius must be positive, got %v", c.Bird.Radius)
	check(c.Bird.X-c.Bird.Radius >= 0 && c.Bird.X+c.Bird.Radius <= c.World.Width,
		"bird.x must keep the bird inside the world, got %v", c.Bird.X)
	check(2*c.Bird.Radius < c.GroundTop(), "bird does not fit above the ground")
	check(c.Physics.ScrollSpeed >= 0, "physics.scroll_speed must not be negative, got %v", c.Physics.ScrollSpeed)
	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.SpawnIntervalMs > 0, "obstacles.spawn_interval_ms must be positive, got %v", c.Obstacles.SpawnIntervalMs)
	check(c.Obstacles.SpawnMargin >= 0, "obstacles.spawn_margin must not be negative, got %v", c.Obstacles.SpawnMargin)
	check(c.Obstacles.CullMargin >= 0, "obstacles.cull_margin must not be negative, got %v", c.Obstacles.CullMargin)
	check(c.Difficulty.MinGap > 0, "difficulty.min_gap must be positive, got %v", c.Difficulty.MinGap)
	check(c.Difficulty.MinGap <= c.Difficulty.InitialGap,
		"difficulty.min_gap (%v) must not exceed initial_gap (%v)", c.Difficulty.MinGap, c.Difficulty.InitialGap)
	check(c.Difficulty.GapShrinkRate >= 0, "difficulty.gap_shrink_rate must not be negative, got %v", c.Difficulty.GapShrinkRate)
	check(c.SpawnRange(c.Difficulty.InitialGap) >= 0,
		"initial_gap %v plus 2*spawn_margin %v does not fit above the ground (%v)",
		c.Difficulty.InitialGap, c.Obstacles.SpawnMargin, c.GroundTop())
	check(c.Timing.MaxFrameMs > 0, "timing.max_frame_ms must be positive, got %v", c.Timing.MaxFrameMs)

	return errors.Join(errs...)
}
