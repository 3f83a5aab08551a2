// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the elapsed time between two ticks, clamped to [0, maxFrame].
// A zero last means this is the first frame.
func frameDelta(last, now time.Time, maxFrame time.Duration) time.Duration {
	if last.IsZero() {
		return 0
	}
	d := now.Sub(last)
	if d < 0 {
		return 0
	}
	if maxFrame > 0 && d > maxFrame {
		return maxFrame
	}
	return d
}

// millis converts a duration to the fractional milliseconds the simulation uses.
func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
