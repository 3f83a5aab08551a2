package flappy

// ObstacleView is the read-only view of a pipe pair.
type ObstacleView struct {
	X         float64
	GapCenter float64
}

// Geometry describes the fixed world dimensions a renderer needs.
type Geometry struct {
	Width         float64
	Height        float64
	GroundTop     float64
	ObstacleWidth float64
}

// Snapshot is a copy of the state taken between ticks, for rendering and tests.
type Snapshot struct {
	Phase     Phase
	Score     int
	Best      int
	Bird      Actor
	Gap       float64
	Obstacles []ObstacleView
	Elapsed   float64 // Milliseconds of play in this session
	Flaps     int
	World     Geometry
}

// Snapshot returns the current state. The result shares no memory with the game.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, len(g.state.Obstacles))
	for i, o := range g.state.Obstacles {
		obstacles[i] = ObstacleView{X: o.X, GapCenter: o.GapCenter}
	}

	return Snapshot{
		Phase:     g.state.Phase,
		Score:     g.state.Score,
		Best:      g.state.Best,
		Bird:      g.state.Bird,
		Gap:       g.state.Gap,
		Obstacles: obstacles,
		Elapsed:   g.state.Elapsed,
		Flaps:     g.state.Flaps,
		World: Geometry{
			Width:         g.cfg.World.Width,
			Height:        g.cfg.World.Height,
			GroundTop:     g.cfg.GroundTop(),
			ObstacleWidth: g.cfg.Obstacles.Width,
		},
	}
}
