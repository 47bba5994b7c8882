// Package glyph holds the 5x8 custom character bitmaps used for the menu
// cursor and converts SVG icons into that format.
package glyph

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/constants"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Dimensions of a character cell in pixels.
const (
	Width  = 5
	Height = 8
)

// Pattern is a character bitmap in HD44780 CGRAM layout: one byte per row,
// the low five bits are the pixels with bit 4 as the leftmost column.
type Pattern [Height]byte

// Set is the group of cursor glyphs uploaded to the display at startup.
type Set struct {
	None       Pattern // Cursor shown on plain informational items
	Actionable Pattern // Cursor shown on items with an action
	Back       Pattern // Cursor shown on back items
}

// DefaultSet returns the built-in cursor glyphs.
func DefaultSet() Set {
	return Set{
		None:       constants.GlyphNone,
		Actionable: constants.GlyphActionable,
		Back:       constants.GlyphBack,
	}
}

// IsZero reports whether no glyph in the set has been defined.
func (s Set) IsZero() bool {
	return s == Set{}
}

// Pixel reports whether the pixel at column x, row y is lit.
func (p Pattern) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return p[y]&(1<<(Width-1-x)) != 0
}

// Bytes returns the pattern as a slice for driver calls.
func (p Pattern) Bytes() []byte {
	b := make([]byte, Height)
	copy(b, p[:])
	return b
}

// String renders the pattern as eight lines of '#' and '.'.
func (p Pattern) String() string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if p.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y < Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FromSVG rasterizes an SVG icon into a character cell. A pixel is lit when
// its coverage alpha reaches threshold (0-255); zero uses half coverage.
func FromSVG(r io.Reader, threshold uint8) (Pattern, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return Pattern{}, fmt.Errorf("glyph: read svg: %w", err)
	}
	if threshold == 0 {
		threshold = 0x80
	}

	icon.SetTarget(0, 0, Width, Height)
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	scanner := rasterx.NewScannerGV(Width, Height, img, img.Bounds())
	raster := rasterx.NewDasher(Width, Height, scanner)
	icon.Draw(raster, 1.0)

	var p Pattern
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if img.RGBAAt(x, y).A >= threshold {
				p[y] |= 1 << (Width - 1 - x)
			}
		}
	}
	return p, nil
}
