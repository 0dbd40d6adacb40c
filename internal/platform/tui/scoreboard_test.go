package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

type fakeScores struct {
	entries []storage.ScoreEntry
	err     error
}

func (f fakeScores) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return f.entries, f.err
}

func (f fakeScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	return &storage.GameStats{GameID: gameID, GamesCount: len(f.entries)}, f.err
}

func TestScoreRows(t *testing.T) {
	created := time.Date(2026, time.March, 4, 18, 30, 0, 0, time.UTC)
	rows := ScoreRows([]storage.ScoreEntry{
		{Score: 12, Length: 15, Duration: 42*time.Second + 400*time.Millisecond, CreatedAt: created},
		{Score: 3, Length: 6, Duration: 9 * time.Second, CreatedAt: created},
	})

	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	want := []string{"#1", "12", "15", "42s", "Mar 04 18:30"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("second rank = %q", rows[1][0])
	}
}

func TestScoreboardViews(t *testing.T) {
	tests := []struct {
		name string
		src  ScoreSource
		text string
	}{
		{"empty", fakeScores{}, "No scores recorded yet"},
		{"error", fakeScores{err: errors.New("disk gone")}, "disk gone"},
		{"no store", nil, "No scores recorded yet"},
		{"scores", fakeScores{entries: []storage.ScoreEntry{{Score: 5, Length: 8}}}, "#1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(tc.src, "snake", 80, 24)
			view := m.View()
			if !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, tc.text) {
				t.Errorf("view should contain %q:\n%s", tc.text, view)
			}
		})
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(fakeScores{}, "snake", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("view should be empty after quit")
	}
}
