package model

// historySize is how many recent states are kept; enough for period-3 cycles
const historySize = 5

// History stores recent grid hashes for cycle detection
type History struct {
	hashes []string
}

// Push records a grid state and trims the history
func (h *History) Push(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset drops all recorded states
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant checks if g repeats one of the last three recorded states,
// meaning the board is static or stuck in a short cycle
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	currentHash := g.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == currentHash {
			return true
		}
	}

	return false
}
