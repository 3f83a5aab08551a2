package flappy

// Phase is the current state of the game state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a logical input, decoupled from the physical key or pointer that produced it.
type Command int

const (
	CommandNone        Command = iota
	CommandPrimary             // Flap; also starts a session from the menu or game over
	CommandTogglePause         // Pause/resume while playing
	CommandReset               // Back to the menu with a fresh session
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandPrimary:
		return "primary"
	case CommandTogglePause:
		return "toggle_pause"
	case CommandReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Transition reports the phase before and after an operation.
type Transition struct {
	From Phase
	To   Phase
}

// Changed returns true if the phase changed.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Ended returns true if this transition finished a session.
func (t Transition) Ended() bool {
	return t.Changed() && t.To == PhaseGameOver
}
