// Package hd44780 drives HD44780 character LCDs behind a PCF8574 I2C
// backpack, the common 1602 and 2004 modules.
package hd44780

import (
	"fmt"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/glyph"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// DefaultAddress is the usual PCF8574 backpack address.
const DefaultAddress = 0x27

// The HD44780 has eight CGRAM slots.
const maxGlyphSlot = 7

// substitute marks characters the LCD ROM cannot show.
const substitute = 0x1A

// Display is an HD44780 LCD on an I2C bus.
type Display struct {
	dev     hd44780i2c.Device
	encoder *encoding.Encoder
	rows    int
	columns int
}

// New configures the LCD at addr on bus.
func New(bus drivers.I2C, addr uint8, rows, columns int) (*Display, error) {
	if rows < 1 || rows > 4 || columns < 1 || columns > 40 {
		return nil, fmt.Errorf("hd44780: unsupported size %dx%d", columns, rows)
	}
	if addr == 0 {
		addr = DefaultAddress
	}

	d := &Display{
		dev:     hd44780i2c.New(bus, addr),
		encoder: NewEncoder(),
		rows:    rows,
		columns: columns,
	}
	if err := d.dev.Configure(hd44780i2c.Config{
		Width:  uint8(columns),
		Height: uint8(rows),
	}); err != nil {
		return nil, fmt.Errorf("hd44780: configure: %w", err)
	}
	return d, nil
}

// Clear blanks the LCD and homes the cursor. The driver reports no errors.
func (d *Display) Clear() error {
	d.dev.ClearDisplay()
	return nil
}

// DefineGlyph writes pattern to CGRAM slot 0-7.
func (d *Display) DefineGlyph(slot uint8, pattern glyph.Pattern) error {
	if slot > maxGlyphSlot {
		return fmt.Errorf("hd44780: glyph slot %d out of range", slot)
	}
	d.dev.CreateCharacter(slot, pattern.Bytes())
	return nil
}

// MoveCursor positions the write head; out-of-range positions are rejected.
func (d *Display) MoveCursor(column, row int) error {
	if column < 0 || column >= d.columns || row < 0 || row >= d.rows {
		return fmt.Errorf("hd44780: cursor %d,%d outside %dx%d", column, row, d.columns, d.rows)
	}
	d.dev.SetCursor(uint8(column), uint8(row))
	return nil
}

// WriteChar sends one raw character code, such as a glyph slot. Never fails.
func (d *Display) WriteChar(code byte) error {
	d.dev.Print([]byte{code})
	return nil
}

// WriteString encodes text to the LCD character set and prints it.
func (d *Display) WriteString(text string) error {
	b, err := Encode(d.encoder, text)
	if err != nil {
		return err
	}
	d.dev.Print(b)
	return nil
}

// Encode converts text to the LCD's 8-bit character set. Characters outside
// Latin-1 become '?'. Bytes 0-7 are the custom glyph slots so control
// characters are also replaced.
func Encode(encoder *encoding.Encoder, text string) ([]byte, error) {
	b, err := encoder.Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("hd44780: encode %q: %w", text, err)
	}
	for i, c := range b {
		if c < 0x20 || c == substitute {
			b[i] = '?'
		}
	}
	return b, nil
}

// NewEncoder returns the encoder used by Display.
func NewEncoder() *encoding.Encoder {
	return encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
}
