// Package term provides a terminal stand-in for a character LCD, used for
// development on machines without display hardware.
package term

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/constants"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/glyph"
	"github.com/charmbracelet/lipgloss"
)

// Preview runes for the custom character slots.
var slotRunes = map[uint8]rune{
	constants.GlyphSlotNone:       '›',
	constants.GlyphSlotActionable: '»',
	constants.GlyphSlotBack:       '«',
}

// Display keeps a rows x columns character grid and prints it inside a
// border on every Flush.
type Display struct {
	rows     int
	columns  int
	grid     [][]rune
	col, row int
	glyphs   map[uint8]glyph.Pattern

	out         io.Writer
	style       lipgloss.Style
	clearScreen bool

	mu     sync.Mutex
	frame  []string
	notify func()
}

// Option configures a Display.
type Option func(*Display)

// WithClearScreen homes the terminal cursor and clears it before each frame.
func WithClearScreen() Option {
	return func(d *Display) {
		d.clearScreen = true
	}
}

// WithStyle replaces the frame style.
func WithStyle(style lipgloss.Style) Option {
	return func(d *Display) {
		d.style = style
	}
}

// New creates a terminal display writing frames to out.
func New(rows, columns int, out io.Writer, opts ...Option) *Display {
	d := &Display{
		rows:    rows,
		columns: columns,
		glyphs:  make(map[uint8]glyph.Pattern),
		out:     out,
		style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5f87af")).
			Foreground(lipgloss.Color("#d7ff5f")).
			Background(lipgloss.Color("#005f87")),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.blank()
	d.frame = d.Lines()
	return d
}

func (d *Display) blank() {
	d.grid = make([][]rune, d.rows)
	for i := range d.grid {
		d.grid[i] = []rune(strings.Repeat(" ", d.columns))
	}
	d.col, d.row = 0, 0
}

// Clear blanks the grid. Never fails.
func (d *Display) Clear() error {
	d.blank()
	return nil
}

// DefineGlyph stores pattern for slot 0-7; the terminal shows a preview rune instead.
func (d *Display) DefineGlyph(slot uint8, pattern glyph.Pattern) error {
	if slot > 7 {
		return fmt.Errorf("glyph slot %d out of range", slot)
	}
	d.glyphs[slot] = pattern
	return nil
}

// MoveCursor positions the write head inside the grid.
func (d *Display) MoveCursor(column, row int) error {
	if column < 0 || column >= d.columns || row < 0 || row >= d.rows {
		return fmt.Errorf("cursor %d,%d outside %dx%d", column, row, d.columns, d.rows)
	}
	d.col, d.row = column, row
	return nil
}

// WriteChar puts one character code at the head, mapping glyph slots to preview runes. Never fails.
func (d *Display) WriteChar(code byte) error {
	if code < 8 {
		r, ok := slotRunes[code]
		if !ok {
			r = '?'
		}
		d.put(r)
		return nil
	}
	d.put(rune(code))
	return nil
}

// WriteString puts text at the head. Never fails.
func (d *Display) WriteString(text string) error {
	for _, r := range text {
		d.put(r)
	}
	return nil
}

// put writes at the head and advances, dropping characters past the line end
// the way an LCD with no wrap does.
func (d *Display) put(r rune) {
	if d.col < d.columns {
		d.grid[d.row][d.col] = r
	}
	d.col++
}

// Lines returns the current grid contents.
func (d *Display) Lines() []string {
	out := make([]string, d.rows)
	for i, line := range d.grid {
		out[i] = string(line)
	}
	return out
}

// Glyph returns the pattern uploaded to slot.
func (d *Display) Glyph(slot uint8) (glyph.Pattern, bool) {
	p, ok := d.glyphs[slot]
	return p, ok
}

// View renders the grid inside the frame style.
func (d *Display) View() string {
	return d.style.Render(strings.Join(d.Lines(), "\n"))
}

// Frame returns the lines as of the last Flush. Safe to call from any goroutine.
func (d *Display) Frame() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.frame))
	copy(out, d.frame)
	return out
}

// FrameView renders the last flushed frame inside the frame style.
func (d *Display) FrameView() string {
	return d.style.Render(strings.Join(d.Frame(), "\n"))
}

func (d *Display) setNotify(fn func()) {
	d.mu.Lock()
	d.notify = fn
	d.mu.Unlock()
}

// Flush publishes the current frame and prints it when the display has a writer.
func (d *Display) Flush() error {
	d.mu.Lock()
	d.frame = d.Lines()
	notify := d.notify
	d.mu.Unlock()
	if notify != nil {
		notify()
	}

	if d.out == nil {
		return nil
	}
	prefix := ""
	if d.clearScreen {
		prefix = "\x1b[H\x1b[2J"
	}
	_, err := fmt.Fprintf(d.out, "%s%s\n", prefix, d.View())
	return err
}
