package router

// StackEntry represents a single entry in the navigation stack.
type StackEntry[T any] struct {
	Path   string
	Screen T
}

// Stack holds the screens opened on the way to the current one.
type Stack[T any] struct {
	entries []StackEntry[T]
}

// NewStack creates a new empty navigation stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		entries: make([]StackEntry[T], 0),
	}
}

// Push adds a new entry to the stack.
func (s *Stack[T]) Push(path string, screen T) {
	s.entries = append(s.entries, StackEntry[T]{
		Path:   path,
		Screen: screen,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack[T]) Pop() *StackEntry[T] {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack[T]) Peek() *StackEntry[T] {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack[T]) Len() int {
	return len(s.entries)
}

// Paths returns the entry paths from bottom to top.
func (s *Stack[T]) Paths() []string {
	paths := make([]string, len(s.entries))
	for i, e := range s.entries {
		paths[i] = e.Path
	}
	return paths
}

// Clear removes all entries from the stack.
func (s *Stack[T]) Clear() {
	s.entries = s.entries[:0]
}
