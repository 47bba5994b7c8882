package tinyblue

import (
	"strings"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/constants"
)

// CursorKind identifies the glyph drawn in the first column of a row.
type CursorKind int

const (
	CursorBlank      CursorKind = iota // Row is not selected
	CursorNone                         // Selected informational item
	CursorActionable                   // Selected item with an action
	CursorBack                         // Selected back item
)

func (k CursorKind) String() string {
	switch k {
	case CursorBlank:
		return "blank"
	case CursorNone:
		return "none"
	case CursorActionable:
		return "actionable"
	case CursorBack:
		return "back"
	default:
		return "unknown"
	}
}

// Preview returns the ASCII stand-in for the cursor glyph.
func (k CursorKind) Preview() byte {
	switch k {
	case CursorNone:
		return '>'
	case CursorActionable:
		return '='
	case CursorBack:
		return '<'
	default:
		return constants.BlankCursor
	}
}

// GlyphSlot returns the custom character slot for a non-blank cursor kind.
func GlyphSlot(kind CursorKind) (uint8, bool) {
	switch kind {
	case CursorNone:
		return constants.GlyphSlotNone, true
	case CursorActionable:
		return constants.GlyphSlotActionable, true
	case CursorBack:
		return constants.GlyphSlotBack, true
	default:
		return 0, false
	}
}

// Row is one display line: a cursor glyph followed by columns-1 characters.
type Row struct {
	Cursor CursorKind
	Text   string
}

// String returns the row with the cursor glyph replaced by its ASCII preview.
func (r Row) String() string {
	return string(r.Cursor.Preview()) + r.Text
}

// Project maps a window of items onto exactly rows display lines.
// Lines past the end of the list are blank.
func Project(items []*Item, selected, top, rows, columns int) []Row {
	if rows < 0 {
		rows = 0
	}
	width := columns - 1
	if width < 0 {
		width = 0
	}

	out := make([]Row, rows)
	for i := range out {
		index := top + i
		if index < 0 || index >= len(items) {
			out[i] = Row{Cursor: CursorBlank, Text: strings.Repeat(" ", width)}
			continue
		}

		item := items[index]
		cursor := CursorBlank
		if index == selected {
			cursor = item.Kind()
		}
		out[i] = Row{Cursor: cursor, Text: item.VisibleText(width)}
	}
	return out
}
