package tinyblue

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/constants"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/glyph"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/internal"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/router"
)

// Options configures a Navigator. Zero values select the defaults in constants.
type Options struct {
	Rows         int          // Display lines (default 2)
	Columns      int          // Characters per line including the cursor column (default 16)
	RootPath     string       // Path of the permanent bottom screen (default "/")
	ManualRender bool         // Disable rendering after each mutating call
	Glyphs       glyph.Set    // Cursor glyphs uploaded at startup (default glyph.DefaultSet)
	Logger       *slog.Logger // Defaults to the internal logger
}

// Navigator owns the screen registry and navigation stack and draws the
// active screen on a Display.
//
// A Navigator is not safe for concurrent use. Input from interrupts or other
// goroutines should be posted to an EventQueue and drained by a Loop.
type Navigator struct {
	display    Display
	router     *router.Router[*Screen]
	rows       int
	columns    int
	autoRender bool
	logger     *slog.Logger
}

// New creates a Navigator, clears the display and uploads the cursor glyphs.
func New(display Display, opts Options) (*Navigator, error) {
	if opts.Rows == 0 {
		opts.Rows = constants.DefaultRows
	}
	if opts.Columns == 0 {
		opts.Columns = constants.DefaultColumns
	}
	if opts.Rows < 1 || opts.Columns < 2 {
		return nil, fmt.Errorf("%w: %d rows x %d columns", ErrInvalidViewport, opts.Rows, opts.Columns)
	}
	if opts.RootPath == "" {
		opts.RootPath = constants.DefaultRootPath
	}
	if opts.Glyphs.IsZero() {
		opts.Glyphs = glyph.DefaultSet()
	}
	if opts.Logger == nil {
		opts.Logger = internal.GetInternalLogger()
	}

	n := &Navigator{
		display:    display,
		router:     router.New[*Screen](opts.RootPath),
		rows:       opts.Rows,
		columns:    opts.Columns,
		autoRender: !opts.ManualRender,
		logger:     opts.Logger,
	}

	if err := display.Clear(); err != nil {
		return nil, NewDisplayError("clear", err)
	}
	for _, g := range []struct {
		slot    uint8
		pattern glyph.Pattern
	}{
		{constants.GlyphSlotNone, opts.Glyphs.None},
		{constants.GlyphSlotActionable, opts.Glyphs.Actionable},
		{constants.GlyphSlotBack, opts.Glyphs.Back},
	} {
		if err := display.DefineGlyph(g.slot, g.pattern); err != nil {
			return nil, NewDisplayError("define_glyph", err)
		}
	}

	n.logger.Debug("Navigator initialized", "rows", n.rows, "columns", n.columns, "root", opts.RootPath)
	return n, nil
}

// Register stores a screen under path. Registering the root path resets the
// navigation stack to that screen, so it belongs in setup code.
func (n *Navigator) Register(path string, screen *Screen) error {
	if screen == nil {
		return fmt.Errorf("%w: nil screen for %q", ErrInvalidScreen, path)
	}
	if screen.Len() == 0 {
		return fmt.Errorf("%w: screen for %q has no items", ErrInvalidScreen, path)
	}
	n.router.Register(path, screen)
	n.logger.Debug("Screen registered", "path", path, "items", screen.Len())
	return nil
}

// Top returns the active screen.
func (n *Navigator) Top() (*Screen, error) {
	entry := n.router.Current()
	if entry == nil {
		return nil, ErrMissingRootScreen
	}
	return entry.Screen, nil
}

// Depth returns the number of screens on the stack, 0 before the root is registered.
func (n *Navigator) Depth() int {
	return n.router.Stack().Len()
}

// Path returns the path of the active screen.
func (n *Navigator) Path() string {
	if entry := n.router.Current(); entry != nil {
		return entry.Path
	}
	return ""
}

// Rows returns the viewport height.
func (n *Navigator) Rows() int {
	return n.rows
}

// Columns returns the viewport width, including the cursor column.
func (n *Navigator) Columns() int {
	return n.columns
}

// RootPath returns the path of the bottom screen.
func (n *Navigator) RootPath() string {
	return n.router.Root()
}

// AutoRender reports whether mutating calls redraw the display.
func (n *Navigator) AutoRender() bool {
	return n.autoRender
}

// Open pushes the screen registered under path. Unknown paths are ignored.
func (n *Navigator) Open(path string) error {
	if !n.router.HasRoot() {
		return ErrMissingRootScreen
	}
	if !n.router.Open(path) {
		n.logger.Debug("Ignoring open of unknown path", "path", path)
		return nil
	}
	n.logger.Debug("Screen opened", "path", path, "depth", n.Depth())
	return n.renderIfAuto()
}

// Back resets and pops the active screen. Does nothing at the root.
func (n *Navigator) Back() error {
	popped, err := n.back()
	if err != nil || !popped {
		return err
	}
	return n.renderIfAuto()
}

func (n *Navigator) back() (bool, error) {
	if !n.router.HasRoot() {
		return false, ErrMissingRootScreen
	}
	entry := n.router.Back()
	if entry == nil {
		n.logger.Debug("Ignoring back at root")
		return false, nil
	}
	entry.Screen.Reset()
	n.logger.Debug("Screen closed", "path", entry.Path, "depth", n.Depth())
	return true, nil
}

// Scroll moves the selection on the active screen: 1 down, -1 up.
func (n *Navigator) Scroll(direction int) error {
	top, err := n.Top()
	if err != nil {
		return err
	}
	top.Scroll(direction, n.rows)
	return n.renderIfAuto()
}

// Select activates the selected item: back items pop the stack, actionable
// items run their action, other items do nothing.
func (n *Navigator) Select() error {
	top, err := n.Top()
	if err != nil {
		return err
	}

	item := top.SelectedItem()
	switch {
	case item.IsBack:
		if _, err := n.back(); err != nil {
			return err
		}
	case item.Action != nil:
		item.Action()
	default:
		return nil
	}
	return n.renderIfAuto()
}

// Render draws the active screen.
func (n *Navigator) Render() error {
	top, err := n.Top()
	if err != nil {
		return err
	}

	for y, row := range top.RenderRows(n.rows, n.columns) {
		if err := n.display.MoveCursor(0, y); err != nil {
			return NewDisplayError("move_cursor", err)
		}

		code := constants.BlankCursor
		if slot, ok := GlyphSlot(row.Cursor); ok {
			code = slot
		}
		if err := n.display.WriteChar(code); err != nil {
			return NewDisplayError("write_char", err)
		}
		if err := n.display.WriteString(row.Text); err != nil {
			return NewDisplayError("write_string", err)
		}
	}

	if f, ok := n.display.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return NewDisplayError("flush", err)
		}
	}
	return nil
}

// Dispatch applies an input event.
func (n *Navigator) Dispatch(event Event) error {
	switch event {
	case EventScrollDown:
		return n.Scroll(1)
	case EventScrollUp:
		return n.Scroll(-1)
	case EventSelect:
		return n.Select()
	case EventBack:
		return n.Back()
	default:
		return nil
	}
}

func (n *Navigator) renderIfAuto() error {
	if !n.autoRender {
		return nil
	}
	return n.Render()
}
