package term

import (
	"strings"
	"testing"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"Down", km.Down, []string{"j", "down", "tab"}},
		{"Select", km.Select, []string{"enter", " "}},
		{"Quit", km.Quit, []string{"q", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bindingKeys := tt.binding.Keys()
			if len(bindingKeys) != len(tt.keys) {
				t.Fatalf("expected %d keys, got %d", len(tt.keys), len(bindingKeys))
			}
			for i, k := range tt.keys {
				if bindingKeys[i] != k {
					t.Errorf("expected key %s, got %s", k, bindingKeys[i])
				}
			}
		})
	}

	if len(km.ShortHelp()) != 5 {
		t.Errorf("expected 5 short help bindings")
	}
}

func TestModelPostsEvents(t *testing.T) {
	queue := tinyblue.NewEventQueue(-1)
	m := NewModel(New(2, 16, nil), queue)

	tests := []struct {
		msg  tea.KeyMsg
		want tinyblue.Event
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, tinyblue.EventScrollDown},
		{tea.KeyMsg{Type: tea.KeyUp}, tinyblue.EventScrollUp},
		{tea.KeyMsg{Type: tea.KeyEnter}, tinyblue.EventSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, tinyblue.EventBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, tinyblue.EventNone},
	}
	for _, tt := range tests {
		model, cmd := m.Update(tt.msg)
		m = model.(Model)
		if cmd != nil {
			t.Fatalf("%s: unexpected command", tt.msg)
		}
		if got := queue.Take(); got != tt.want {
			t.Fatalf("%s: got %s, want %s", tt.msg, got, tt.want)
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(New(2, 16, nil), tinyblue.NewEventQueue(-1))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestModelView(t *testing.T) {
	d := New(2, 8, nil)
	m := NewModel(d, tinyblue.NewEventQueue(-1))

	d.MoveCursor(0, 0)
	d.WriteString("Hello")
	d.Flush()

	view := m.View()
	if !strings.Contains(view, "Hello") {
		t.Fatalf("expected frame in view, got %q", view)
	}
	if !strings.Contains(view, "select") {
		t.Fatalf("expected help line in view")
	}
}
