// Package config provides YAML-based world and tuning configuration for the
// game, difficulty presets and fail-fast validation.
package config

// Config contains every tunable of the simulation.
type Config struct {
	World      World      `yaml:"world"`
	Bird       Bird       `yaml:"bird"`
	Physics    Physics    `yaml:"physics"`
	Obstacles  Obstacles  `yaml:"obstacles"`
	Difficulty Difficulty `yaml:"difficulty"`
	Timing     Timing     `yaml:"timing"`
}

// World defines the playfield in world units.
type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Band at the bottom the bird dies on
}

// Bird defines the player-controlled actor.
type Bird struct {
	X      float64 `yaml:"x"` // Fixed horizontal center
	Radius float64 `yaml:"radius"`
}

// Physics defines per-reference-frame physics parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapVelocity float64 `yaml:"flap_velocity"` // Negative = up
	ScrollSpeed  float64 `yaml:"scroll_speed"`
}

// Obstacles defines pipe pair geometry and spawning.
type Obstacles struct {
	Width           float64 `yaml:"width"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
	SpawnMargin     float64 `yaml:"spawn_margin"` // Minimum segment height above and below the gap
	SpawnOffset     float64 `yaml:"spawn_offset"` // Distance past the right edge where pipes appear
	CullMargin      float64 `yaml:"cull_margin"`  // Distance past the left edge before removal
}

// Difficulty defines the continuous gap ramp.
type Difficulty struct {
	InitialGap    float64 `yaml:"initial_gap"`
	MinGap        float64 `yaml:"min_gap"`
	GapShrinkRate float64 `yaml:"gap_shrink_rate"` // World units per elapsed millisecond
}

// Timing defines frame driver limits.
type Timing struct {
	MaxFrameMs float64 `yaml:"max_frame_ms"` // Upper bound for a single tick's dt
}

// GroundTop returns the y-coordinate of the top of the ground band.
func (c Config) GroundTop() float64 {
	return c.World.Height - c.World.GroundHeight
}

// SpawnRange returns the width of the interval a gap center can be drawn from
// for the given gap height. A negative value means the gap cannot fit.
func (c Config) SpawnRange(gap float64) float64 {
	return c.World.Height - c.World.GroundHeight - 2*c.Obstacles.SpawnMargin - gap
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables the gap ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
