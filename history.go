package scrawl

// DefaultHistoryCapacity is the number of undo snapshots kept when no
// capacity is configured.
const DefaultHistoryCapacity = 50

// History is a bounded LIFO of surface snapshots used for undo.
// Snapshots are copied on push, so later changes to the pushed surface
// never reach a stored snapshot. When full, pushing evicts the oldest
// snapshot.
type History struct {
	snaps []*Surface
	limit int
}

// NewHistory creates an empty history holding at most capacity snapshots.
// A capacity of zero or less selects DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{limit: capacity}
}

// Push stores a copy of s.
func (h *History) Push(s *Surface) {
	if len(h.snaps) == h.limit {
		h.snaps[0] = nil
		h.snaps = h.snaps[1:]
	}
	h.snaps = append(h.snaps, s.Clone())
}

// Pop removes and returns the most recent snapshot.
// It returns false if the history is empty.
func (h *History) Pop() (*Surface, bool) {
	n := len(h.snaps)
	if n == 0 {
		return nil, false
	}
	s := h.snaps[n-1]
	h.snaps[n-1] = nil
	h.snaps = h.snaps[:n-1]
	return s, true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.snaps) }

// Cap returns the maximum number of snapshots.
func (h *History) Cap() int { return h.limit }

// Reset drops every snapshot.
func (h *History) Reset() {
	clear(h.snaps)
	h.snaps = h.snaps[:0]
}
