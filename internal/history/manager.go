// Package history keeps the linear undo/redo sequence of dataset states.
package history

import (
	"sync"

	"gocsvlab/domain/core"
	"gocsvlab/domain/snapshot"
)

// Manager is an ordered sequence of history entries plus a cursor. The
// cursor is -1 while empty and a valid index otherwise. Entries hold
// pointers to immutable states, so a push never copies a dataset.
type Manager struct {
	mu      sync.RWMutex
	entries []snapshot.HistoryEntry
	cursor  int
	clock   core.Clock
}

// NewManager creates an empty history
func NewManager() *Manager {
	return NewManagerWithClock(core.SystemClock)
}

// NewManagerWithClock creates an empty history stamped by clock
func NewManagerWithClock(clock core.Clock) *Manager {
	return &Manager{cursor: -1, clock: clock}
}

// Push discards every entry after the cursor, appends a new entry and
// moves the cursor onto it.
func (m *Manager) Push(state *snapshot.DatasetState, action string) snapshot.HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := snapshot.NewHistoryEntry(state, action, core.NewTimestamp(m.clock()))
	// drop the redo branch without retaining its states
	kept := m.entries[:m.cursor+1 : m.cursor+1]
	m.entries = append(kept, entry)
	m.cursor = len(m.entries) - 1
	return entry
}

// Undo steps back one entry and returns it
func (m *Manager) Undo() (snapshot.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cursor <= 0 {
		return snapshot.HistoryEntry{}, core.NewNoOpError("nothing to undo")
	}
	m.cursor--
	return m.entries[m.cursor], nil
}

// Redo steps forward one entry and returns it
func (m *Manager) Redo() (snapshot.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cursor >= len(m.entries)-1 {
		return snapshot.HistoryEntry{}, core.NewNoOpError("nothing to redo")
	}
	m.cursor++
	return m.entries[m.cursor], nil
}

// Reset clears the history
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	m.cursor = -1
}

// Current returns the entry under the cursor
func (m *Manager) Current() (snapshot.HistoryEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cursor < 0 {
		return snapshot.HistoryEntry{}, false
	}
	return m.entries[m.cursor], true
}

// Peek returns the entry at offset from the cursor without moving it
func (m *Manager) Peek(offset int) (snapshot.HistoryEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.cursor + offset
	if m.cursor < 0 || i < 0 || i >= len(m.entries) {
		return snapshot.HistoryEntry{}, false
	}
	return m.entries[i], true
}

// Entries returns the sequence in push order
func (m *Manager) Entries() []snapshot.HistoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]snapshot.HistoryEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Cursor returns the index of the current entry, -1 when empty
func (m *Manager) Cursor() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cursor
}

// Len returns the number of entries
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// CanUndo reports whether Undo would succeed
func (m *Manager) CanUndo() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cursor > 0
}

// CanRedo reports whether Redo would succeed
func (m *Manager) CanRedo() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cursor >= 0 && m.cursor < len(m.entries)-1
}
