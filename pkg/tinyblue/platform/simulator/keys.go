package simulator

import (
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Down/J scroll down, Up/K scroll up, Enter/Space select, Escape/Backspace go back.
func buttonForKey(key sdl.Keycode) internal.Button {
	switch key {
	case sdl.K_DOWN, sdl.K_j:
		return internal.ButtonScrollDown
	case sdl.K_UP, sdl.K_k:
		return internal.ButtonScrollUp
	case sdl.K_RETURN, sdl.K_SPACE:
		return internal.ButtonSelect
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
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
