package tinyblue

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

const testMenu = `
[display]
rows = 2
columns = 8
auto_render = false

[input]
device = "/dev/input/event0"
debounce = "150ms"
scroll_key = "KEY_DOWN"
select_key = "KEY_ENTER"

[[screen]]
path = "/about"
  [[screen.item]]
  text = "Back"
  back = true
  [[screen.item]]
  text = "v1.0"

[[screen]]
path = "/"
  [[screen.item]]
  id = "led"
  text = "LED"
  action = "toggle"
  [[screen.item]]
  text = "About"
  message_id = "menu.about"
  open = "/about"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadMenu(t *testing.T) {
	toggled := 0
	m, err := LoadMenu(strings.NewReader(testMenu), "", map[string]Action{
		"toggle": func() { toggled++ },
	})
	if err != nil {
		t.Fatalf("LoadMenu: %v", err)
	}

	if m.Options.Rows != 2 || m.Options.Columns != 8 || !m.Options.ManualRender || m.Options.RootPath != "/" {
		t.Fatalf("unexpected options %+v", m.Options)
	}
	if m.File.Input.Debounce != 150*time.Millisecond || m.File.Input.ScrollKey != "KEY_DOWN" {
		t.Fatalf("unexpected input config %+v", m.File.Input)
	}
	if !reflect.DeepEqual(m.Paths(), []string{"/about", "/"}) {
		t.Fatalf("unexpected paths %v", m.Paths())
	}

	d := newRecordingDisplay(2, 8)
	nav, err := m.Build(d)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if nav.Depth() != 1 || nav.Path() != "/" {
		t.Fatalf("expected root active, got %q depth %d", nav.Path(), nav.Depth())
	}

	led, ok := m.Item("led")
	if !ok || led.Text() != "LED" {
		t.Fatalf("expected led item")
	}
	nav.Select()
	if toggled != 1 {
		t.Fatalf("expected toggle action to run")
	}

	nav.Scroll(1)
	nav.Select()
	if nav.Path() != "/about" || nav.Depth() != 2 {
		t.Fatalf("expected /about opened, got %q", nav.Path())
	}
	nav.Select()
	if nav.Path() != "/" {
		t.Fatalf("expected back at root, got %q", nav.Path())
	}
}

func TestLoadMenuErrors(t *testing.T) {
	tests := []struct {
		name string
		menu string
		want error
	}{
		{
			name: "missing root",
			menu: "[[screen]]\npath = \"/a\"\n[[screen.item]]\ntext = \"x\"\n",
			want: ErrMissingRootScreen,
		},
		{
			name: "empty screen",
			menu: "[[screen]]\npath = \"/\"\n",
			want: ErrInvalidScreen,
		},
		{
			name: "unknown action",
			menu: "[[screen]]\npath = \"/\"\n[[screen.item]]\ntext = \"x\"\naction = \"nope\"\n",
			want: ErrUnknownAction,
		},
		{
			name: "unknown screen",
			menu: "[[screen]]\npath = \"/\"\n[[screen.item]]\ntext = \"x\"\nopen = \"/nope\"\n",
			want: ErrUnknownScreen,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMenu(strings.NewReader(tt.menu), "", nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMenuRejectsConflictingRoles(t *testing.T) {
	menu := "[[screen]]\npath = \"/\"\n[[screen.item]]\ntext = \"x\"\nback = true\nopen = \"/\"\n"
	if _, err := LoadMenu(strings.NewReader(menu), "", nil); err == nil {
		t.Fatalf("expected error for item with back and open")
	}
}

func TestLoadMenuDuplicateScreen(t *testing.T) {
	menu := "[[screen]]\npath = \"/\"\n[[screen.item]]\ntext = \"a\"\n[[screen]]\npath = \"/\"\n[[screen.item]]\ntext = \"b\"\n"
	if _, err := LoadMenu(strings.NewReader(menu), "", nil); err == nil {
		t.Fatalf("expected duplicate screen error")
	}
}

func TestLoadMenuFileLocalized(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "active.de.toml", `"menu.about" = "Info"`+"\n")
	path := writeFile(t, dir, "menu.toml", `
[i18n]
language = "de"
files = ["active.de.toml"]

[[screen]]
path = "/"
  [[screen.item]]
  id = "about"
  text = "About"
  message_id = "menu.about"
  [[screen.item]]
  id = "led"
  text = "LED"
  message_id = "menu.led"
`)

	m, err := LoadMenuFile(path, nil)
	if err != nil {
		t.Fatalf("LoadMenuFile: %v", err)
	}
	about, _ := m.Item("about")
	if about.Text() != "Info" {
		t.Fatalf("expected localized text, got %q", about.Text())
	}
	led, _ := m.Item("led")
	if led.Text() != "LED" {
		t.Fatalf("expected default text for missing message, got %q", led.Text())
	}
}

func TestLoadMenuFileGlyphs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "full.svg", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 5 8">`+
		`<rect x="0" y="0" width="5" height="8" fill="#000"/></svg>`)
	path := writeFile(t, dir, "menu.toml", `
[display.glyphs]
back = "full.svg"

[[screen]]
path = "/"
  [[screen.item]]
  text = "x"
`)

	m, err := LoadMenuFile(path, nil)
	if err != nil {
		t.Fatalf("LoadMenuFile: %v", err)
	}
	for y, row := range m.Options.Glyphs.Back {
		if row != 0x1F {
			t.Fatalf("row %d: expected full row, got %#02x", y, row)
		}
	}
	if m.Options.Glyphs.None == m.Options.Glyphs.Back {
		t.Fatalf("expected other glyphs to keep defaults")
	}
}

func TestLoadMenuFileMissing(t *testing.T) {
	if _, err := LoadMenuFile(filepath.Join(t.TempDir(), "nope.toml"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
