package internal

import (
	"sync"
	"time"
)

// Button is a physical menu button after key mapping.
type Button int

const (
	ButtonNone Button = iota
	ButtonScrollDown
	ButtonScrollUp
	ButtonSelect
	ButtonBack
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonScrollDown:
		return "scroll_down"
	case ButtonScrollUp:
		return "scroll_up"
	case ButtonSelect:
		return "select"
	case ButtonBack:
		return "back"
	default:
		return ""
	}
}

// Repeats reports whether holding the button should auto-repeat.
func (b Button) Repeats() bool {
	return b == ButtonScrollDown || b == ButtonScrollUp
}

// HeldInput tracks held scroll buttons and handles repeat timing.
// Input adapters feed it press/release edges and poll Update.
type HeldInput struct {
	mu   sync.Mutex
	held struct {
		down, up bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewHeldInput creates a HeldInput with default timing.
// Default delay is 400ms before first repeat, then 150ms between repeats,
// slow enough to read each line on a two-row display.
func NewHeldInput() *HeldInput {
	return NewHeldInputWithTiming(400*time.Millisecond, 150*time.Millisecond)
}

// NewHeldInputWithTiming creates a HeldInput with custom timing.
func NewHeldInputWithTiming(delay, interval time.Duration) *HeldInput {
	return &HeldInput{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// SetHeld updates the held state for a button at time now.
// Returns true if the button repeats.
func (h *HeldInput) SetHeld(button Button, held bool, now time.Time) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch button {
	case ButtonScrollDown:
		h.held.down = held
	case ButtonScrollUp:
		h.held.up = held
	default:
		return false
	}
	h.hasRepeated = false
	h.lastRepeatTime = now
	return true
}

// IsHeld returns true if any scroll button is currently held.
func (h *HeldInput) IsHeld() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.held.down || h.held.up
}

func (h *HeldInput) heldButton() Button {
	if h.held.down {
		return ButtonScrollDown
	}
	if h.held.up {
		return ButtonScrollUp
	}
	return ButtonNone
}

// Update checks if a repeat should fire at time now. It returns the button to
// repeat, or ButtonNone. The first repeat occurs after the delay, later ones
// after the interval.
func (h *HeldInput) Update(now time.Time) Button {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.held.down && !h.held.up {
		h.lastRepeatTime = now
		h.hasRepeated = false
		return ButtonNone
	}

	threshold := h.repeatInterval
	if !h.hasRepeated {
		threshold = h.repeatDelay
	}

	if now.Sub(h.lastRepeatTime) >= threshold {
		h.lastRepeatTime = now
		h.hasRepeated = true
		return h.heldButton()
	}

	return ButtonNone
}

// Reset clears all held buttons and timing state.
func (h *HeldInput) Reset(now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.held.down = false
	h.held.up = false
	h.hasRepeated = false
	h.lastRepeatTime = now
}
