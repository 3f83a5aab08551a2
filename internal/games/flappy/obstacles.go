package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rand is the random source used for gap placement.
// *math/rand.Rand satisfies it; tests supply deterministic sequences.
type Rand interface {
	Float64() float64
}

// Obstacle is a pipe pair: a solid upper and lower segment around a gap.
type Obstacle struct {
	X         float64 // Left edge
	GapCenter float64
	Scored    bool // Whether the bird has passed this pair
}

// UpperBox returns the collision box of the upper segment.
func (o Obstacle) UpperBox(gap, width float64) core.Box {
	return core.NewBox(o.X, 0, width, o.GapCenter-gap/2)
}

// LowerBox returns the collision box of the lower segment, which ends at the ground.
func (o Obstacle) LowerBox(gap, width, groundTop float64) core.Box {
	lowerY := o.GapCenter + gap/2
	return core.NewBox(o.X, lowerY, width, groundTop-lowerY)
}

// ObstacleManager spawns, moves, scores and removes pipe pairs.
type ObstacleManager struct {
	cfg config.Config
	rng Rand
}

// NewObstacleManager creates a manager for the given world.
func NewObstacleManager(cfg config.Config, rng Rand) *ObstacleManager {
	return &ObstacleManager{cfg: cfg, rng: rng}
}

// Spawn creates a pair just past the right edge of the world. The gap center is
// uniform over the range that keeps both segments at least SpawnMargin tall.
// A negative range is a configuration bug rejected by config.Validate; reaching
// it here panics.
func (om *ObstacleManager) Spawn(gap float64) Obstacle {
	span := om.cfg.SpawnRange(gap)
	if span < 0 {
		panic(fmt.Sprintf("flappy: gap %v does not fit the world (spawn range %v)", gap, span))
	}

	return Obstacle{
		X:         om.cfg.World.Width + om.cfg.Obstacles.SpawnOffset,
		GapCenter: om.cfg.Obstacles.SpawnMargin + gap/2 + om.rng.Float64()*span,
	}
}

// AdvanceAll scrolls every obstacle left by speed and scores the ones whose
// right edge has just cleared actorEdge. Scoring happens before culling so a
// pair that leaves the world in the same tick still counts.
// Returns the number of newly scored pairs and the surviving obstacles.
// The input slice is reused.
func (om *ObstacleManager) AdvanceAll(obstacles []Obstacle, speed, actorEdge float64) (int, []Obstacle) {
	width := om.cfg.Obstacles.Width
	scored := 0

	for i := range obstacles {
		obstacles[i].X -= speed

		if !obstacles[i].Scored && obstacles[i].X+width < actorEdge {
			obstacles[i].Scored = true
			scored++
		}
	}

	return scored, om.CullOffscreen(obstacles)
}

// CullOffscreen removes obstacles whose right edge is past the cull margin.
func (om *ObstacleManager) CullOffscreen(obstacles []Obstacle) []Obstacle {
	width := om.cfg.Obstacles.Width
	limit := -om.cfg.Obstacles.CullMargin

	survivors := obstacles[:0]
	for _, o := range obstacles {
		if o.X+width >= limit {
			survivors = append(survivors, o)
		}
	}
	return survivors
}

// Collides returns true if box overlaps either segment of any obstacle.
func (om *ObstacleManager) Collides(obstacles []Obstacle, gap float64, box core.Box) bool {
	width := om.cfg.Obstacles.Width
	groundTop := om.cfg.GroundTop()

	for _, o := range obstacles {
		if box.Intersects(o.UpperBox(gap, width)) {
			return true
		}
		if box.Intersects(o.LowerBox(gap, width, groundTop)) {
			return true
		}
	}
	return false
}
