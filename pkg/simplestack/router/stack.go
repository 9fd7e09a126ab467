package router

// Entry represents a single screen instance in the navigation stack.
// ID is assigned when the entry is created and never changes, even when
// its params are updated.
type Entry struct {
	ID     string
	Screen Screen
	Name   string
	Params Params
}

// snapshot returns a copy of the entry that does not share its params map.
func (e *Entry) snapshot() Entry {
	if e == nil {
		return Entry{Screen: ScreenNone}
	}
	return Entry{
		ID:     e.ID,
		Screen: e.Screen,
		Name:   e.Name,
		Params: e.Params.Clone(),
	}
}

// Stack holds the ordered screen instances of a mounted navigator.
// The last entry is the active screen. Once created it always holds at
// least one entry.
type Stack struct {
	entries []*Entry
}

// NewStack creates a stack holding the initial entry.
func NewStack(initial *Entry) *Stack {
	return &Stack{
		entries: []*Entry{initial},
	}
}

// Push appends an entry, making it the active screen.
func (s *Stack) Push(entry *Entry) {
	s.entries = append(s.entries, entry)
}

// PopN removes up to n entries from the top, never the last remaining one.
// It returns the number of entries removed.
func (s *Stack) PopN(n int) int {
	if n < 1 {
		return 0
	}
	n = min(n, len(s.entries)-1)
	for i := len(s.entries) - n; i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = s.entries[:len(s.entries)-n]
	return n
}

// Replace swaps the top entry for the given one and returns the old top.
func (s *Stack) Replace(entry *Entry) *Entry {
	top := len(s.entries) - 1
	old := s.entries[top]
	s.entries[top] = entry
	return old
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() *Entry {
	return s.entries[len(s.entries)-1]
}

// LastIndexOf returns the index of the entry for screen closest to the top,
// or -1 if no entry shows that screen.
func (s *Stack) LastIndexOf(screen Screen) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Screen == screen {
			return i
		}
	}
	return -1
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Entries returns snapshots of the stack from bottom to top.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.snapshot()
	}
	return out
}
