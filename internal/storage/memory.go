package storage

import (
	"sync"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Memory is an in-process core.ScoreStore used when no database is available.
// State is lost when the process exits.
type Memory struct {
	mu        sync.RWMutex
	highScore int
	runs      []core.RunResult
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// HighScore returns the high score held in memory.
func (m *Memory) HighScore() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.highScore, nil
}

// SaveHighScore raises the in-memory high score; lower values are ignored.
func (m *Memory) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.highScore {
		m.highScore = score
	}
	return nil
}

// RecordRun appends a finished run.
func (m *Memory) RecordRun(run core.RunResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return nil
}

// Runs returns a copy of the recorded runs.
func (m *Memory) Runs() []core.RunResult {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]core.RunResult, len(m.runs))
	copy(out, m.runs)
	return out
}

var _ core.ScoreStore = (*Memory)(nil)
