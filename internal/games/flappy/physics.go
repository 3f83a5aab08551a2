package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Step advances a playing session by dt milliseconds.
// It returns true if the bird hit the ground or a pipe during this tick; the
// caller owns the resulting phase change. Step does not look at s.Phase.
func Step(s *State, cfg config.Config, om *ObstacleManager, dt float64) (collided bool) {
	s.Elapsed += dt

	// Continuous difficulty ramp
	s.Gap = math.Max(cfg.Difficulty.MinGap, s.Gap-dt*cfg.Difficulty.GapShrinkRate)

	scale := dt * ReferenceFPS / 1000
	speed := cfg.Physics.ScrollSpeed * scale

	s.Bird.VY += cfg.Physics.Gravity * scale
	s.Bird.Y += s.Bird.VY * scale

	// Ground is fatal and wins over any pipe hit in the same tick
	floor := cfg.GroundTop()
	if s.Bird.Y+s.Bird.Radius > floor {
		s.Bird.Y = floor - s.Bird.Radius
		return true
	}

	// Ceiling is soft
	if s.Bird.Y-s.Bird.Radius < 0 {
		s.Bird.Y = s.Bird.Radius
	}

	s.SpawnTimer += dt
	if s.SpawnTimer > cfg.Obstacles.SpawnIntervalMs {
		s.SpawnTimer = 0
		s.Obstacles = append(s.Obstacles, om.Spawn(s.Gap))
	}

	var passed int
	passed, s.Obstacles = om.AdvanceAll(s.Obstacles, speed, s.Bird.LeftEdge())
	s.Score += passed

	return om.Collides(s.Obstacles, s.Gap, s.Bird.Bounds())
}
