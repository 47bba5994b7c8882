package tinyblue

import "fmt"

// Screen is an ordered list of items with scroll and selection state.
// The item list is fixed once the screen is created.
type Screen struct {
	items    []*Item
	selected int // Index of the item under the cursor
	top      int // Index of the first item in the viewport
}

// NewScreen creates a screen with the given items.
// Returns ErrInvalidScreen if items is empty or contains nil.
func NewScreen(items ...*Item) (*Screen, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidScreen)
	}
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: item %d is nil", ErrInvalidScreen, i)
		}
	}

	owned := make([]*Item, len(items))
	copy(owned, items)
	return &Screen{items: owned}, nil
}

// MustScreen is like NewScreen but panics on error.
// Intended for statically defined menus.
func MustScreen(items ...*Item) *Screen {
	s, err := NewScreen(items...)
	if err != nil {
		panic(err)
	}
	return s
}

// Scroll moves the selection by one item in the sign of direction, wrapping
// at both ends, and moves the window just enough to keep it visible.
func (s *Screen) Scroll(direction int, rows int) {
	switch {
	case direction > 0:
		direction = 1
	case direction < 0:
		direction = -1
	default:
		return
	}
	if rows < 1 {
		rows = 1
	}

	n := len(s.items)
	s.selected = (s.selected + n + direction) % n

	if s.selected >= s.top+rows {
		s.top = s.selected - rows + 1
	} else if s.selected < s.top {
		s.top = s.selected
	}
}

// RenderRows returns exactly rows lines for the current window.
func (s *Screen) RenderRows(rows, columns int) []Row {
	return Project(s.items, s.selected, s.top, rows, columns)
}

// SelectedItem returns the item under the cursor.
func (s *Screen) SelectedItem() *Item {
	return s.items[s.selected]
}

// Selected returns the index of the item under the cursor.
func (s *Screen) Selected() int {
	return s.selected
}

// Top returns the index of the first visible item.
func (s *Screen) Top() int {
	return s.top
}

// Len returns the number of items.
func (s *Screen) Len() int {
	return len(s.items)
}

// Items returns a copy of the item list.
func (s *Screen) Items() []*Item {
	out := make([]*Item, len(s.items))
	copy(out, s.items)
	return out
}

// Reset moves the cursor and window back to the first item.
func (s *Screen) Reset() {
	s.selected = 0
	s.top = 0
}
