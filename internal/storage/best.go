package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// BestScore adapts a Store to the game's best-score contract for one game.
// Failures are logged and returned; the game treats them as "no value".
type BestScore struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewBestScore creates the adapter. store may be nil, in which case nothing is
// persisted. logger may be nil.
func NewBestScore(store *Store, gameID string, logger *log.Logger) *BestScore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestScore{store: store, gameID: gameID, logger: logger}
}

// Load returns the persisted best score.
func (b *BestScore) Load() (int, error) {
	if b.store == nil {
		return 0, nil
	}
	best, err := b.store.BestScore(b.gameID)
	if err != nil {
		b.logger.Warn("could not load best score", "game", b.gameID, "error", err)
		return 0, err
	}
	b.logger.Debug("loaded best score", "game", b.gameID, "best", best)
	return best, nil
}

// Save persists best, never lowering the stored value.
func (b *BestScore) Save(best int) error {
	if b.store == nil {
		return nil
	}
	if err := b.store.RaiseBestScore(b.gameID, best); err != nil {
		b.logger.Warn("could not save best score", "game", b.gameID, "best", best, "error", err)
		return err
	}
	b.logger.Debug("saved best score", "game", b.gameID, "best", best)
	return nil
}
