package t2048

// DefaultHistoryCapacity is how many snapshots are kept for undo.
const DefaultHistoryCapacity = 3

// Snapshot is an immutable copy of the undoable part of a game.
type Snapshot struct {
	Grid  Grid
	Score int
	Moves int
}

// History is a bounded FIFO of snapshots. The newest entry is the current state.
type History struct {
	capacity int
	entries  []Snapshot
}

// NewHistory returns an empty history. Capacity below 1 uses the default.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity, entries: make([]Snapshot, 0, capacity)}
}

// Capacity returns the maximum number of entries.
func (h *History) Capacity() int {
	return h.capacity
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Push stores a deep copy of s, evicting the oldest entry when full.
func (h *History) Push(s Snapshot) {
	s.Grid = s.Grid.Clone()
	if len(h.entries) == h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, s)
}

// CanUndo reports whether a previous snapshot exists behind the current one.
func (h *History) CanUndo() bool {
	return len(h.entries) > 1
}

// Undo drops the newest snapshot and returns a copy of the one before it.
func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.Latest()
}

// Latest returns a copy of the newest snapshot.
func (h *History) Latest() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	s := h.entries[len(h.entries)-1]
	s.Grid = s.Grid.Clone()
	return s, true
}

// Clear removes all snapshots.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}
