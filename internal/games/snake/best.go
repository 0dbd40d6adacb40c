package snake

// MemoryBest keeps the best score in memory only. It is the default store
// when no persistence is configured or the database could not be opened.
type MemoryBest struct {
	Score int
}

// LoadBest returns the remembered best score.
func (m *MemoryBest) LoadBest() int {
	return m.Score
}

// SaveBest remembers a new best score.
func (m *MemoryBest) SaveBest(score int) {
	m.Score = score
}
