package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/flappy.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		World: World{
			Width:        400,
			Height:       600,
			GroundHeight: 90,
		},
		Bird: Bird{
			X:      80,
			Radius: 12,
		},
		Physics: Physics{
			Gravity:      0.5,
			FlapVelocity: -8.8,
			ScrollSpeed:  2.2,
		},
		Obstacles: Obstacles{
			Width:           64,
			SpawnIntervalMs: 1300,
			SpawnMargin:     50,
			SpawnOffset:     2,
			CullMargin:      10,
		},
		Difficulty: Difficulty{
			InitialGap:    150,
			MinGap:        110,
			GapShrinkRate: 0.003,
		},
		Timing: Timing{
			MaxFrameMs: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
