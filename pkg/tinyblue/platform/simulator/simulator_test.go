package simulator

import (
	"testing"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue"
	"github.com/veandco/go-sdl2/sdl"
)

func TestButtonForKey(t *testing.T) {
	tests := map[sdl.Keycode]tinyblue.Event{
		sdl.K_DOWN:      tinyblue.EventScrollDown,
		sdl.K_k:         tinyblue.EventScrollUp,
		sdl.K_RETURN:    tinyblue.EventSelect,
		sdl.K_BACKSPACE: tinyblue.EventBack,
		sdl.K_a:         tinyblue.EventNone,
	}
	for key, want := range tests {
		if got := eventFor(buttonForKey(key)); got != want {
			t.Fatalf("key %d: got %s, want %s", key, got, want)
		}
	}
}

func TestWindowOptionsFlags(t *testing.T) {
	flags := WindowOptions{Borderless: true}.ToSDLFlags()
	if flags&sdl.WINDOW_SHOWN == 0 || flags&sdl.WINDOW_BORDERLESS == 0 {
		t.Fatalf("expected shown and borderless flags, got %#x", flags)
	}
	if (WindowOptions{Hidden: true}).ToSDLFlags()&sdl.WINDOW_SHOWN != 0 {
		t.Fatalf("hidden window should not be shown")
	}
	if !(WindowOptions{}).IsZero() {
		t.Fatalf("expected zero options")
	}
}

func TestCharTexturesDestroyEmpty(t *testing.T) {
	var chars charTextures
	chars.destroy()
	for code, texture := range chars {
		if texture != nil {
			t.Fatalf("expected no texture for %d", code)
		}
	}
}
