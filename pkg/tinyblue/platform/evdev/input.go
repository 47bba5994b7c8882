// Package evdev reads menu buttons from a Linux input device, such as a
// gpio-keys node or a USB keypad, and posts them to an EventQueue.
package evdev

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/internal"
	"github.com/holoplot/go-evdev"
)

// Key event values reported by the kernel.
const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// KeyMap assigns key codes to menu buttons. Zero codes are unassigned.
type KeyMap struct {
	ScrollDown evdev.EvCode
	ScrollUp   evdev.EvCode
	Select     evdev.EvCode
	Back       evdev.EvCode
}

// DefaultKeyMap uses the arrow keys, Enter and Escape.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ScrollDown: evdev.KEY_DOWN,
		ScrollUp:   evdev.KEY_UP,
		Select:     evdev.KEY_ENTER,
		Back:       evdev.KEY_ESC,
	}
}

// ParseKeyMap builds a KeyMap from key names such as "KEY_DOWN".
// Empty names keep the default assignment.
func ParseKeyMap(scrollDown, scrollUp, sel, back string) (KeyMap, error) {
	km := DefaultKeyMap()
	for _, k := range []struct {
		name string
		dst  *evdev.EvCode
	}{
		{scrollDown, &km.ScrollDown},
		{scrollUp, &km.ScrollUp},
		{sel, &km.Select},
		{back, &km.Back},
	} {
		if k.name == "" {
			continue
		}
		code, ok := evdev.KEYFromString[strings.ToUpper(k.name)]
		if !ok {
			return KeyMap{}, fmt.Errorf("evdev: unknown key %q", k.name)
		}
		*k.dst = code
	}
	return km, nil
}

func (km KeyMap) button(code evdev.EvCode) internal.Button {
	switch code {
	case km.ScrollDown:
		return internal.ButtonScrollDown
	case km.ScrollUp:
		return internal.ButtonScrollUp
	case km.Select:
		return internal.ButtonSelect
	case km.Back:
		return internal.ButtonBack
	default:
		return internal.ButtonNone
	}
}

func eventFor(b internal.Button) tinyblue.Event {
	switch b {
	case internal.ButtonScrollDown:
		return tinyblue.EventScrollDown
	case internal.ButtonScrollUp:
		return tinyblue.EventScrollUp
	case internal.ButtonSelect:
		return tinyblue.EventSelect
	case internal.ButtonBack:
		return tinyblue.EventBack
	default:
		return tinyblue.EventNone
	}
}

// Reader turns key events into queue posts. Holding a scroll key repeats.
type Reader struct {
	dev    *evdev.InputDevice
	keys   KeyMap
	queue  *tinyblue.EventQueue
	held   *internal.HeldInput
	logger *slog.Logger

	closeOnce sync.Once
}

// Open opens the input device at path and grabs it so key presses do not
// reach the console.
func Open(path string, keys KeyMap, queue *tinyblue.EventQueue) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evdev: open %s: %w", path, err)
	}
	if err := dev.Grab(); err != nil {
		internal.GetInternalLogger().Warn("Failed to grab input device", "path", path, "error", err)
	}
	r := NewReader(keys, queue)
	r.dev = dev
	return r, nil
}

// NewReader creates a Reader without a device, for feeding events by hand.
func NewReader(keys KeyMap, queue *tinyblue.EventQueue) *Reader {
	return &Reader{
		keys:   keys,
		queue:  queue,
		held:   internal.NewHeldInput(),
		logger: internal.GetInternalLogger(),
	}
}

// Handle processes one input event received at now.
func (r *Reader) Handle(ev *evdev.InputEvent, now time.Time) {
	if ev == nil || ev.Type != evdev.EV_KEY {
		return
	}
	button := r.keys.button(ev.Code)
	if button == internal.ButtonNone {
		return
	}

	switch ev.Value {
	case valuePress:
		r.held.SetHeld(button, true, now)
		if !r.queue.Post(eventFor(button)) {
			r.logger.Debug("Dropped button press", "button", button.String())
		}
	case valueRelease:
		r.held.SetHeld(button, false, now)
	case valueRepeat:
		// Repeat timing is ours, not the kernel's
	}
}

// Tick fires a repeat for a held scroll key when due.
func (r *Reader) Tick(now time.Time) {
	if button := r.held.Update(now); button != internal.ButtonNone {
		r.queue.Post(eventFor(button))
	}
}

// Run reads events until ctx is cancelled or the device fails.
func (r *Reader) Run(ctx context.Context) error {
	if r.dev == nil {
		return errors.New("evdev: no device")
	}

	go func() {
		<-ctx.Done()
		r.Close()
	}()

	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				r.Tick(now)
			}
		}
	}()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("evdev: read: %w", err)
		}
		r.Handle(ev, time.Now())
	}
}

// Close releases the device.
func (r *Reader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		if r.dev != nil {
			err = r.dev.Close()
		}
	})
	return err
}
