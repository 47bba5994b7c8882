package tinyblue

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/glyph"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// MenuFile is the TOML menu definition.
//
//	[display]
//	rows = 2
//	columns = 16
//
//	[[screen]]
//	path = "/"
//	  [[screen.item]]
//	  text = "About"
//	  open = "/about"
type MenuFile struct {
	Display DisplayConfig  `toml:"display"`
	Input   InputConfig    `toml:"input"`
	I18n    I18nConfig     `toml:"i18n"`
	Screens []ScreenConfig `toml:"screen"`
}

// DisplayConfig holds the viewport and rendering settings.
type DisplayConfig struct {
	Rows       int         `toml:"rows"`
	Columns    int         `toml:"columns"`
	RootPath   string      `toml:"root_path"`
	AutoRender *bool       `toml:"auto_render"` // Defaults to true
	Glyphs     GlyphConfig `toml:"glyphs"`
}

// GlyphConfig lists SVG files for custom cursor glyphs, relative to the menu file.
type GlyphConfig struct {
	None       string `toml:"none"`
	Actionable string `toml:"actionable"`
	Back       string `toml:"back"`
}

// InputConfig holds the button settings used by input adapters.
type InputConfig struct {
	Device      string        `toml:"device"`
	Debounce    time.Duration `toml:"debounce"`
	ScrollKey   string        `toml:"scroll_key"`
	ScrollUpKey string        `toml:"scroll_up_key"`
	SelectKey   string        `toml:"select_key"`
	BackKey     string        `toml:"back_key"`
}

// I18nConfig selects the item text language and its message files.
type I18nConfig struct {
	Language string   `toml:"language"`
	Files    []string `toml:"files"`
}

// ScreenConfig defines one screen.
type ScreenConfig struct {
	Path  string       `toml:"path"`
	Items []ItemConfig `toml:"item"`
}

// ItemConfig defines one item. At most one of Action, Open and Back may be set.
type ItemConfig struct {
	ID        string `toml:"id"`         // Handle for Menu.Item
	Text      string `toml:"text"`       // Text, or default text when MessageID is set
	MessageID string `toml:"message_id"` // Localized text key
	Action    string `toml:"action"`     // Name of a caller-provided action
	Open      string `toml:"open"`       // Path opened when selected
	Back      bool   `toml:"back"`
}

// Menu is a loaded menu definition ready to be attached to a display.
type Menu struct {
	File    MenuFile
	Options Options

	nav     *Navigator
	screens map[string]*Screen
	order   []string
	items   map[string]*Item
}

// LoadMenuFile reads a TOML menu definition. Relative paths inside it are
// resolved against the file's directory.
func LoadMenuFile(path string, actions map[string]Action) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	return LoadMenu(bytes.NewReader(data), filepath.Dir(path), actions)
}

// LoadMenu parses a TOML menu definition. Items naming an action bind to the
// entry in actions; items with open navigate to that path.
func LoadMenu(r io.Reader, baseDir string, actions map[string]Action) (*Menu, error) {
	var file MenuFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	m := &Menu{
		File:    file,
		screens: make(map[string]*Screen),
		items:   make(map[string]*Item),
	}

	m.Options = Options{
		Rows:     file.Display.Rows,
		Columns:  file.Display.Columns,
		RootPath: file.Display.RootPath,
	}
	if file.Display.AutoRender != nil {
		m.Options.ManualRender = !*file.Display.AutoRender
	}
	if m.Options.RootPath == "" {
		m.Options.RootPath = "/"
	}

	glyphs, err := loadGlyphs(file.Display.Glyphs, baseDir)
	if err != nil {
		return nil, err
	}
	m.Options.Glyphs = glyphs

	localizer, err := newLocalizer(file.I18n, baseDir)
	if err != nil {
		return nil, err
	}

	defined := make(map[string]bool, len(file.Screens))
	for _, sc := range file.Screens {
		if defined[sc.Path] {
			return nil, fmt.Errorf("duplicate screen %q", sc.Path)
		}
		defined[sc.Path] = true
	}
	if !defined[m.Options.RootPath] {
		return nil, fmt.Errorf("%w: %q is not defined", ErrMissingRootScreen, m.Options.RootPath)
	}

	for _, sc := range file.Screens {
		items := make([]*Item, 0, len(sc.Items))
		for i, ic := range sc.Items {
			item, err := m.buildItem(ic, localizer, actions, defined)
			if err != nil {
				return nil, fmt.Errorf("screen %q item %d: %w", sc.Path, i, err)
			}
			if ic.ID != "" {
				m.items[ic.ID] = item
			}
			items = append(items, item)
		}

		screen, err := NewScreen(items...)
		if err != nil {
			return nil, fmt.Errorf("screen %q: %w", sc.Path, err)
		}
		m.screens[sc.Path] = screen
		m.order = append(m.order, sc.Path)
	}

	return m, nil
}

func (m *Menu) buildItem(ic ItemConfig, localizer *i18n.Localizer, actions map[string]Action, defined map[string]bool) (*Item, error) {
	set := 0
	for _, b := range []bool{ic.Action != "", ic.Open != "", ic.Back} {
		if b {
			set++
		}
	}
	if set > 1 {
		return nil, errors.New("only one of action, open and back may be set")
	}

	text, err := localize(localizer, ic)
	if err != nil {
		return nil, err
	}
	item := NewItem(text)

	switch {
	case ic.Back:
		item.IsBack = true
	case ic.Open != "":
		if !defined[ic.Open] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, ic.Open)
		}
		target := ic.Open
		item.Action = func() {
			if m.nav == nil {
				return
			}
			if err := m.nav.Open(target); err != nil {
				m.nav.logger.Error("Failed to open screen", "path", target, "error", err)
			}
		}
	case ic.Action != "":
		action, ok := actions[ic.Action]
		if !ok || action == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, ic.Action)
		}
		item.Action = action
	}
	return item, nil
}

// Build creates a Navigator on display with every screen registered and the
// root screen active.
func (m *Menu) Build(display Display) (*Navigator, error) {
	nav, err := New(display, m.Options)
	if err != nil {
		return nil, err
	}

	root := nav.RootPath()
	for _, path := range m.order {
		if path == root {
			continue
		}
		if err := nav.Register(path, m.screens[path]); err != nil {
			return nil, err
		}
	}
	if err := nav.Register(root, m.screens[root]); err != nil {
		return nil, err
	}

	m.nav = nav
	return nav, nil
}

// Item returns the item declared with the given id.
func (m *Menu) Item(id string) (*Item, bool) {
	item, ok := m.items[id]
	return item, ok
}

// Screen returns the screen declared at path.
func (m *Menu) Screen(path string) (*Screen, bool) {
	screen, ok := m.screens[path]
	return screen, ok
}

// Paths returns the screen paths in file order.
func (m *Menu) Paths() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func loadGlyphs(cfg GlyphConfig, baseDir string) (glyph.Set, error) {
	set := glyph.DefaultSet()
	for _, g := range []struct {
		path string
		dst  *glyph.Pattern
	}{
		{cfg.None, &set.None},
		{cfg.Actionable, &set.Actionable},
		{cfg.Back, &set.Back},
	} {
		if g.path == "" {
			continue
		}
		f, err := os.Open(resolvePath(baseDir, g.path))
		if err != nil {
			return glyph.Set{}, fmt.Errorf("open glyph: %w", err)
		}
		p, err := glyph.FromSVG(f, 0)
		f.Close()
		if err != nil {
			return glyph.Set{}, err
		}
		*g.dst = p
	}
	return set, nil
}

func newLocalizer(cfg I18nConfig, baseDir string) (*i18n.Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, f := range cfg.Files {
		if _, err := bundle.LoadMessageFile(resolvePath(baseDir, f)); err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
	}

	langs := []string{}
	if cfg.Language != "" {
		tag, err := language.Parse(cfg.Language)
		if err != nil {
			return nil, fmt.Errorf("parse language %q: %w", cfg.Language, err)
		}
		langs = append(langs, tag.String())
	}
	return i18n.NewLocalizer(bundle, langs...), nil
}

func localize(localizer *i18n.Localizer, ic ItemConfig) (string, error) {
	if ic.MessageID == "" {
		return ic.Text, nil
	}

	text, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: ic.MessageID,
		DefaultMessage: &i18n.Message{
			ID:    ic.MessageID,
			Other: ic.Text,
		},
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) {
			return "", fmt.Errorf("localize %q: %w", ic.MessageID, err)
		}
	}
	if text == "" {
		text = ic.Text
	}
	return text, nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
