package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// ReferenceFPS is the frame rate per-frame tuning values are expressed at.
// Elapsed milliseconds are scaled by ReferenceFPS/1000 so the simulation
// behaves the same under any frame timing.
const ReferenceFPS = 60

// Actor is the bird: a circle with a fixed horizontal position.
type Actor struct {
	X      float64
	Y      float64
	VY     float64 // Positive = down
	Radius float64
}

// Bounds returns the bounding square used for collision tests.
func (a Actor) Bounds() core.Box {
	return core.SquareAround(a.X, a.Y, a.Radius)
}

// LeftEdge returns the x-coordinate an obstacle must clear to count as passed.
func (a Actor) LeftEdge() float64 {
	return a.X - a.Radius
}

// State is the complete mutable state of one game.
// It is owned by Game and advanced by Step; nothing else holds a reference to it.
type State struct {
	Phase      Phase
	Bird       Actor
	Score      int
	Best       int
	Gap        float64    // Current gap height shared by every live obstacle
	Obstacles  []Obstacle // Spawn order
	SpawnTimer float64    // Milliseconds since the last spawn
	Elapsed    float64    // Milliseconds of play in this session
	Flaps      int
}
