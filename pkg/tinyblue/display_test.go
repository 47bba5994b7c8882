package tinyblue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/glyph"
)

// recordingDisplay keeps a character grid and a log of calls.
type recordingDisplay struct {
	rows, columns int
	grid          [][]byte
	col, row      int
	glyphs        map[uint8]glyph.Pattern
	calls         []string
	failOn        string
}

func newRecordingDisplay(rows, columns int) *recordingDisplay {
	d := &recordingDisplay{rows: rows, columns: columns, glyphs: make(map[uint8]glyph.Pattern)}
	d.blank()
	return d
}

func (d *recordingDisplay) blank() {
	d.grid = make([][]byte, d.rows)
	for i := range d.grid {
		d.grid[i] = []byte(strings.Repeat(" ", d.columns))
	}
}

func (d *recordingDisplay) fail(op string) error {
	if d.failOn == op {
		return errors.New("bus error")
	}
	return nil
}

func (d *recordingDisplay) Clear() error {
	d.calls = append(d.calls, "clear")
	if err := d.fail("clear"); err != nil {
		return err
	}
	d.blank()
	return nil
}

func (d *recordingDisplay) DefineGlyph(slot uint8, pattern glyph.Pattern) error {
	d.calls = append(d.calls, fmt.Sprintf("glyph %d", slot))
	if err := d.fail("glyph"); err != nil {
		return err
	}
	d.glyphs[slot] = pattern
	return nil
}

func (d *recordingDisplay) MoveCursor(column, row int) error {
	d.calls = append(d.calls, fmt.Sprintf("move %d,%d", column, row))
	d.col, d.row = column, row
	return d.fail("move")
}

func (d *recordingDisplay) WriteChar(code byte) error {
	d.calls = append(d.calls, fmt.Sprintf("char %d", code))
	if err := d.fail("char"); err != nil {
		return err
	}
	d.put(code)
	return nil
}

func (d *recordingDisplay) WriteString(text string) error {
	d.calls = append(d.calls, fmt.Sprintf("string %q", text))
	if err := d.fail("string"); err != nil {
		return err
	}
	for i := 0; i < len(text); i++ {
		d.put(text[i])
	}
	return nil
}

func (d *recordingDisplay) put(b byte) {
	if d.row < d.rows && d.col < d.columns {
		d.grid[d.row][d.col] = b
	}
	d.col++
}

// lines renders the grid with glyph slots shown as their ASCII preview.
func (d *recordingDisplay) lines() []string {
	out := make([]string, d.rows)
	for i, line := range d.grid {
		b := make([]byte, len(line))
		copy(b, line)
		switch b[0] {
		case 0:
			b[0] = '>'
		case 1:
			b[0] = '='
		case 2:
			b[0] = '<'
		}
		out[i] = string(b)
	}
	return out
}

func (d *recordingDisplay) resetCalls() {
	d.calls = nil
}
