package core

import "sync"

// StatusBoard holds the latest published snapshot of a game for readers
// outside the frame loop, such as the control API.
type StatusBoard struct {
	mu    sync.RWMutex
	state GameState
}

// NewStatusBoard creates an empty status board.
func NewStatusBoard() *StatusBoard {
	return &StatusBoard{}
}

// Publish replaces the snapshot.
func (b *StatusBoard) Publish(s GameState) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

// Snapshot returns the latest snapshot.
func (b *StatusBoard) Snapshot() GameState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}
