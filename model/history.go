package model

const defaultHistorySize = 5

// History remembers recent grid hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps up to size hashes. Non-positive sizes fall back to 5.
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds the grid's current state and trims the oldest entries
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[len(h.hashes)-h.size:]
	}
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether g repeats one of the last three recorded states,
// i.e. the board is static or cycling with period <= 3.
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}
