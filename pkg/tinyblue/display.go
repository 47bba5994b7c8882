package tinyblue

import "github.com/BrandonKowalski/tinyblue/pkg/tinyblue/glyph"

// Display is the character display the menu is drawn on.
// Implementations live under platform/.
type Display interface {
	// Clear blanks the whole display.
	Clear() error
	// DefineGlyph uploads a custom character into slot.
	DefineGlyph(slot uint8, pattern glyph.Pattern) error
	// MoveCursor positions the write head.
	MoveCursor(column, row int) error
	// WriteChar writes one character code at the write head.
	WriteChar(code byte) error
	// WriteString writes text at the write head.
	WriteString(text string) error
}

// Flusher is implemented by displays that buffer a frame and present it at
// once. Render calls Flush after the last row.
type Flusher interface {
	Flush() error
}
