package flappy

import (
	"errors"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// fixedRand always returns the same value.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// seqRand cycles through a fixed sequence.
type seqRand struct {
	values []float64
	i      int
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

// memStore is an in-memory ScoreStore that records saves.
type memStore struct {
	best    int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memStore) Load() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.best, nil
}

func (m *memStore) Save(best int) error {
	m.saves = append(m.saves, best)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.best = best
	return nil
}

var errDisk = errors.New("disk on fire")

// levelConfig returns a config where the bird hovers in place and the gap never shrinks.
func levelConfig() config.Config {
	cfg := config.Default()
	cfg.Physics.Gravity = 0
	cfg.Difficulty.GapShrinkRate = 0
	return cfg
}

// frameMs is one frame at the reference rate, rounded like a 60 Hz display.
const frameMs = 16.0

// startLevel starts a session on a level config and cancels the launch impulse,
// so the bird sits at the world's vertical center.
func startLevel(store ScoreStore) *Game {
	g := New(levelConfig(), fixedRand(0.5), store)
	g.ApplyCommand(CommandPrimary)
	g.state.Bird.VY = 0
	return g
}
