package suggest

import "sync"

// Store holds the current set of candidate edits, at most one per line.
// It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	edits []CandidateEdit
	cycle uint64
}

func NewStore() *Store { return &Store{} }

// Replace swaps in a new set. When a line repeats, the later entry wins and
// takes the position of the first.
func (s *Store) Replace(edits []CandidateEdit) {
	next := dedupe(edits)
	s.mu.Lock()
	s.edits = next
	s.mu.Unlock()
}

// Offer replaces the set with edits produced by cycle unless a later cycle
// already delivered. It reports whether the set was replaced.
func (s *Store) Offer(cycle uint64, edits []CandidateEdit) bool {
	next := dedupe(edits)
	s.mu.Lock()
	defer s.mu.Unlock()
	if cycle < s.cycle {
		return false
	}
	s.cycle = cycle
	s.edits = next
	return true
}

// Remove drops the entry for line. Removing an absent line is a no-op.
func (s *Store) Remove(line int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.edits {
		if e.Line == line {
			s.edits = append(s.edits[:i:i], s.edits[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Get(line int) (CandidateEdit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.edits {
		if e.Line == line {
			return e, true
		}
	}
	return CandidateEdit{}, false
}

// Edits returns a copy of the current set in parser order.
func (s *Store) Edits() []CandidateEdit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CandidateEdit, len(s.edits))
	copy(out, s.edits)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edits)
}

// Cycle returns the cycle whose result is currently held, or 0.
func (s *Store) Cycle() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycle
}

func dedupe(edits []CandidateEdit) []CandidateEdit {
	out := make([]CandidateEdit, 0, len(edits))
	at := make(map[int]int, len(edits))
	for _, e := range edits {
		if i, ok := at[e.Line]; ok {
			out[i] = e
			continue
		}
		at[e.Line] = len(out)
		out = append(out, e)
	}
	return out
}
