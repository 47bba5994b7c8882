package tinyblue

import (
	"strings"

	"go.uber.org/atomic"
)

// Action is invoked synchronously when an actionable item is selected.
type Action func()

// Item represents a single line entry on a Screen.
type Item struct {
	text   *atomic.String // Display text, safe to update from sensor goroutines
	Action Action         // Invoked on select; nil for informational items
	IsBack bool           // Selecting this item pops the navigation stack
}

// NewItem creates an informational item with no behavior on select.
func NewItem(text string) *Item {
	return &Item{text: atomic.NewString(text)}
}

// NewActionItem creates an item that invokes action when selected.
func NewActionItem(text string, action Action) *Item {
	item := NewItem(text)
	item.Action = action
	return item
}

// NewBackItem creates an item that returns to the previous screen when selected.
func NewBackItem(text string) *Item {
	item := NewItem(text)
	item.IsBack = true
	return item
}

// SetText replaces the display text. The change shows on the next render.
func (i *Item) SetText(text string) {
	if i.text == nil {
		i.text = atomic.NewString(text)
		return
	}
	i.text.Store(text)
}

// Text returns the current display text.
func (i *Item) Text() string {
	if i.text == nil {
		return ""
	}
	return i.text.Load()
}

// VisibleText returns exactly width characters of the text, truncated or
// right-padded with spaces.
func (i *Item) VisibleText(width int) string {
	return fit(i.Text(), width)
}

// Kind returns the cursor kind shown when the item is selected.
// Back items win over actions when both are set.
func (i *Item) Kind() CursorKind {
	switch {
	case i.IsBack:
		return CursorBack
	case i.Action != nil:
		return CursorActionable
	default:
		return CursorNone
	}
}

func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return text + strings.Repeat(" ", width-len(runes))
}
