package location

import "sync"

// History is a back/forward stack of locations. Push discards any forward
// entries, like a browser does on navigation.
type History struct {
	mu      sync.RWMutex
	entries []Location
	cursor  int
}

// NewHistory starts a history at initial
func NewHistory(initial Location) *History {
	return &History{entries: []Location{initial}}
}

// Current returns the active location
func (h *History) Current() Location {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries[h.cursor]
}

// Push makes loc the active location. Pushing a location equal to the
// current one is a no-op and returns false.
func (h *History) Push(loc Location) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.entries[h.cursor].Equal(loc) {
		return false
	}

	h.entries = append(h.entries[:h.cursor+1], loc)
	h.cursor++
	return true
}

// Replace swaps the active location in place without adding an entry
func (h *History) Replace(loc Location) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.cursor] = loc
}

// Back moves to the previous location and reports whether it moved
func (h *History) Back() (Location, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor == 0 {
		return h.entries[h.cursor], false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward moves to the next location and reports whether it moved
func (h *History) Forward() (Location, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor == len(h.entries)-1 {
		return h.entries[h.cursor], false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Len returns the number of entries
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
