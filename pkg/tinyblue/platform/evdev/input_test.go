package evdev

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue"
	"github.com/holoplot/go-evdev"
)

func key(code evdev.EvCode, value int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

func TestParseKeyMap(t *testing.T) {
	km, err := ParseKeyMap("KEY_J", "", "key_space", "")
	if err != nil {
		t.Fatalf("ParseKeyMap: %v", err)
	}
	if km.ScrollDown != evdev.KEY_J || km.Select != evdev.KEY_SPACE {
		t.Fatalf("unexpected key map %+v", km)
	}
	if km.ScrollUp != evdev.KEY_UP || km.Back != evdev.KEY_ESC {
		t.Fatalf("expected defaults kept, got %+v", km)
	}
	if _, err := ParseKeyMap("KEY_NOPE", "", "", ""); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestHandlePostsPresses(t *testing.T) {
	q := tinyblue.NewEventQueue(-1)
	r := NewReader(DefaultKeyMap(), q)
	now := time.Unix(0, 0)

	r.Handle(key(evdev.KEY_ENTER, valuePress), now)
	if got := q.Take(); got != tinyblue.EventSelect {
		t.Fatalf("expected select, got %s", got)
	}

	r.Handle(key(evdev.KEY_ENTER, valueRelease), now)
	r.Handle(key(evdev.KEY_A, valuePress), now)
	r.Handle(&evdev.InputEvent{Type: evdev.EV_SYN}, now)
	if q.Pending() {
		t.Fatalf("expected nothing queued, got %s", q.Take())
	}
}

func TestHeldScrollRepeats(t *testing.T) {
	q := tinyblue.NewEventQueue(-1)
	r := NewReader(DefaultKeyMap(), q)
	now := time.Unix(0, 0)

	r.Handle(key(evdev.KEY_DOWN, valuePress), now)
	q.Take()

	r.Tick(now.Add(100 * time.Millisecond))
	if q.Pending() {
		t.Fatalf("expected no repeat before delay")
	}
	r.Tick(now.Add(time.Second))
	if got := q.Take(); got != tinyblue.EventScrollDown {
		t.Fatalf("expected repeated scroll, got %s", got)
	}

	r.Handle(key(evdev.KEY_DOWN, valueRelease), now.Add(time.Second))
	r.Tick(now.Add(5 * time.Second))
	if q.Pending() {
		t.Fatalf("expected no repeat after release")
	}
}
