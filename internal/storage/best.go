package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// BestKeeper binds a Store to one game. It serves as the game's best-score
// store and the engine's run recorder. Persistence is best-effort: failures
// are logged and otherwise ignored so play never stops on a storage error.
type BestKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// Best returns a keeper for gameID. A nil logger discards warnings.
func (s *Store) Best(gameID string, logger *log.Logger) *BestKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestKeeper{store: s, gameID: gameID, logger: logger}
}

// LoadBest returns the stored best, or 0 if it cannot be read.
func (k *BestKeeper) LoadBest() int {
	best, err := k.store.BestScore(k.gameID)
	if err != nil {
		k.logger.Warn("load best score", "game", k.gameID, "err", err)
		return 0
	}
	return best
}

// SaveBest persists a new best score.
func (k *BestKeeper) SaveBest(score int) {
	if err := k.store.SetBestScore(k.gameID, score); err != nil {
		k.logger.Warn("save best score", "game", k.gameID, "score", score, "err", err)
	}
}

// RecordRun stores a finished run.
func (k *BestKeeper) RecordRun(run engine.RunResult) {
	runID, err := k.store.SaveRun(RunRecord{
		GameID:   k.gameID,
		Score:    run.Score,
		Length:   run.Length,
		Ticks:    run.Ticks,
		Duration: run.Duration,
	})
	if err != nil {
		k.logger.Warn("record run", "game", k.gameID, "score", run.Score, "err", err)
		return
	}
	k.logger.Debug("run recorded", "run_id", runID, "score", run.Score)
}

var (
	_ engine.RunRecorder = (*BestKeeper)(nil)
	_ snake.BestStore    = (*BestKeeper)(nil)
)
