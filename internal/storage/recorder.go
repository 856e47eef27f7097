package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Recorder persists finished games as they are reported by the engine.
// Failures are logged and never surfaced to the player.
type Recorder struct {
	store  *Store
	logger *log.Logger
	saved  func(rec GameRecord)
}

// NewRecorder returns a Recorder writing to store. A nil logger uses the default logger.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{store: store, logger: logger}
}

// OnSaved registers a callback invoked after a game row is written for the first time.
func (r *Recorder) OnSaved(fn func(rec GameRecord)) {
	r.saved = fn
}

// OnEvent implements core.Listener.
func (r *Recorder) OnEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventTileReached:
		r.logger.Debug("new highest tile", "game", ev.GameID, "session", ev.Session, "tile", ev.Value)
	case core.EventWinTileReached:
		r.logger.Info("win tile reached", "game", ev.GameID, "session", ev.Session, "tile", ev.Value)
	case core.EventGameEnded:
		r.record(ev)
	}
}

func (r *Recorder) record(ev core.Event) {
	if r.store == nil {
		return
	}

	rec := GameRecord{
		Session:   ev.Session,
		GameID:    ev.GameID,
		Status:    ev.Status,
		Won:       ev.Won,
		Score:     ev.Score,
		Moves:     ev.Moves,
		MaxTile:   ev.MaxTile,
		BoardSize: ev.BoardSize,
		Duration:  ev.Elapsed,
	}

	inserted, err := r.store.SaveGame(rec)
	if err != nil {
		r.logger.Warn("could not save game", "game", ev.GameID, "session", ev.Session, "error", err)
		return
	}
	if !inserted {
		r.logger.Debug("game already recorded", "session", ev.Session)
		return
	}

	r.logger.Debug("game recorded", "game", ev.GameID, "score", ev.Score, "status", ev.Status)
	if r.saved != nil {
		r.saved(rec)
	}
}

var _ core.Listener = (*Recorder)(nil)
