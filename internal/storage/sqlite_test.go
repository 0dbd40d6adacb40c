package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetBestScore(snake.ID, 12); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore(snake.ID)
	if err != nil || best != 12 {
		t.Errorf("BestScore() = %d, %v after reopen, expected 12", best, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "snake", Score: 7, Length: 10, Ticks: 140, Duration: 15 * time.Second},
		{GameID: "snake", Score: 3, Length: 6, Ticks: 40},
		{GameID: "snake", Score: 11, Length: 14, Ticks: 300, Duration: 30*time.Second + 250*time.Millisecond},
		{GameID: "other", Score: 50},
	}
	ids := map[string]bool{}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("run ID %q is not a UUID: %v", id, err)
		}
		ids[id] = true
	}
	if len(ids) != len(runs) {
		t.Error("run IDs should be unique")
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 11 || scores[1].Score != 7 || scores[2].Score != 3 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	top := scores[0]
	if top.Length != 14 || top.Ticks != 300 || top.Duration != 30250*time.Millisecond {
		t.Errorf("top run = %+v", top)
	}
	if !ids[top.RunID] {
		t.Errorf("RunID %q was not returned by SaveRun", top.RunID)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveRun(RunRecord{GameID: "snake", Score: (i + 1) * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores("snake", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("snake", 0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopScores(0) = %d entries, %v", len(all), err)
	}
}

func TestStoreBestScoreIsMonotonic(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore(snake.ID)
	if err != nil || best != 0 {
		t.Fatalf("empty BestScore() = %d, %v, expected 0", best, err)
	}

	steps := []struct {
		set  int
		want int
	}{
		{5, 5},
		{3, 5},
		{9, 9},
		{9, 9},
		{0, 9},
	}
	for _, s := range steps {
		if err := store.SetBestScore(snake.ID, s.set); err != nil {
			t.Fatalf("SetBestScore(%d) failed: %v", s.set, err)
		}
		if got, _ := store.BestScore(snake.ID); got != s.want {
			t.Errorf("after SetBestScore(%d), BestScore() = %d, expected %d", s.set, got, s.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "snake", Score: 4})
	store.SaveRun(RunRecord{GameID: "other", Score: 8})
	store.SetBestScore("snake", 4)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("snake", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no snake scores, got %d", len(scores))
	}
	if best, _ := store.BestScore("snake"); best != 0 {
		t.Errorf("BestScore() = %d after clear, expected 0", best)
	}
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Error("ClearScores should not touch other games")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "snake", Score: 2, Length: 5, Duration: time.Second})
	store.SaveRun(RunRecord{GameID: "snake", Score: 6, Length: 9, Duration: 2 * time.Second})

	stats, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 6 || stats.AvgScore != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LongestRun != 9 || stats.TotalTime != 3*time.Second {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestBestKeeper(t *testing.T) {
	store := openTestStore(t)
	keeper := store.Best(snake.ID, nil)

	if keeper.LoadBest() != 0 {
		t.Error("fresh keeper should load 0")
	}

	keeper.SaveBest(8)
	keeper.RecordRun(engine.RunResult{Score: 8, Length: 11, Ticks: 90, Duration: 4 * time.Second})

	if keeper.LoadBest() != 8 {
		t.Errorf("LoadBest() = %d, expected 8", keeper.LoadBest())
	}
	scores, _ := store.TopScores(snake.ID, 10)
	if len(scores) != 1 || scores[0].Length != 11 {
		t.Errorf("recorded runs = %+v", scores)
	}
}

func TestBestKeeperSurvivesClosedStore(t *testing.T) {
	store := openTestStore(t)
	keeper := store.Best(snake.ID, nil)
	store.Close()

	// Best-effort: every call degrades quietly
	if got := keeper.LoadBest(); got != 0 {
		t.Errorf("LoadBest() = %d on a closed store, expected 0", got)
	}
	keeper.SaveBest(5)
	keeper.RecordRun(engine.RunResult{Score: 5})
}

func TestBestKeeperSharedAcrossGames(t *testing.T) {
	store := openTestStore(t)
	cfg := config.DefaultSnakeConfig()

	first := snake.New(cfg, snake.WithSeed(1), snake.WithBestStore(store.Best(snake.ID, nil)))
	if first.Best() != 0 {
		t.Fatalf("Best() = %d, expected 0", first.Best())
	}
	store.SetBestScore(snake.ID, 14)

	// A new session reads the shared best on creation
	second := snake.New(cfg, snake.WithSeed(2), snake.WithBestStore(store.Best(snake.ID, nil)))
	if second.Best() != 14 {
		t.Errorf("Best() = %d, expected 14", second.Best())
	}
}
