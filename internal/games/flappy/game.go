// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that falls under gravity and flaps through gaps in
// pipe pairs. The package holds the whole simulation and state machine; the
// platform feeds it commands and elapsed time and draws its snapshots.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Identity used for score storage and display.
const (
	GameID    = "flappy"
	GameTitle = "Flappy Bird"
)

// ScoreStore persists the best score between runs.
// Load is called once when the game is created, Save at most once per game over.
// Errors are ignored: a failed Load means no best score yet.
type ScoreStore interface {
	Load() (int, error)
	Save(best int) error
}

// Game owns the session state and applies the state machine around Step.
// It is not safe for concurrent use; the frame driver calls it from one goroutine.
type Game struct {
	cfg   config.Config
	state State
	pipes *ObstacleManager
	store ScoreStore
}

// New creates a game in the menu phase. The configuration must be valid;
// an invalid one panics, since config.Load rejects it before this point.
// store may be nil.
func New(cfg config.Config, rng Rand, store ScoreStore) *Game {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("flappy: %v", err))
	}

	g := &Game{
		cfg:   cfg,
		pipes: NewObstacleManager(cfg, rng),
		store: store,
	}
	g.state.Bird = Actor{X: cfg.Bird.X, Radius: cfg.Bird.Radius}
	g.state.Best = g.loadBest()
	g.resetSession()
	return g
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// ApplyCommand feeds one logical input into the state machine.
// Commands that have no meaning in the current phase are ignored.
func (g *Game) ApplyCommand(cmd Command) Transition {
	t := Transition{From: g.state.Phase}

	switch cmd {
	case CommandReset:
		g.resetSession()
		g.state.Phase = PhaseMenu

	case CommandPrimary:
		switch g.state.Phase {
		case PhaseMenu, PhaseGameOver:
			g.resetSession()
			g.state.Phase = PhasePlaying
			g.flap()
		case PhasePlaying:
			g.flap()
		case PhasePaused:
			// Paused birds do not flap
		}

	case CommandTogglePause:
		switch g.state.Phase {
		case PhasePlaying:
			g.state.Phase = PhasePaused
		case PhasePaused:
			g.state.Phase = PhasePlaying
		case PhaseMenu, PhaseGameOver:
			// Nothing to pause
		}
	}

	t.To = g.state.Phase
	return t
}

// Advance moves the simulation forward by dt milliseconds.
// It does nothing unless the game is playing.
func (g *Game) Advance(dt float64) Transition {
	t := Transition{From: g.state.Phase, To: g.state.Phase}
	if g.state.Phase != PhasePlaying {
		return t
	}
	if dt < 0 {
		dt = 0
	}

	if Step(&g.state, g.cfg, g.pipes, dt) {
		g.gameOver()
	}

	t.To = g.state.Phase
	return t
}

// flap applies the upward impulse.
func (g *Game) flap() {
	g.state.Bird.VY = g.cfg.Physics.FlapVelocity
	g.state.Flaps++
}

// resetSession clears everything except the best score. The phase is left to the caller.
func (g *Game) resetSession() {
	g.state.Score = 0
	g.state.Gap = g.cfg.Difficulty.InitialGap
	g.state.Bird.Y = g.cfg.World.Height / 2
	g.state.Bird.VY = 0
	g.state.Obstacles = g.state.Obstacles[:0]
	g.state.SpawnTimer = 0
	g.state.Elapsed = 0
	g.state.Flaps = 0
}

// gameOver ends the session and records the best score.
func (g *Game) gameOver() {
	g.state.Phase = PhaseGameOver
	if g.state.Score > g.state.Best {
		g.state.Best = g.state.Score
	}
	if g.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		g.store.Save(g.state.Best)
	}
}

// loadBest reads the persisted best score, treating any failure as zero.
func (g *Game) loadBest() int {
	if g.store == nil {
		return 0
	}
	best, err := g.store.Load()
	if err != nil || best < 0 {
		return 0
	}
	return best
}
