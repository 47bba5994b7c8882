package constants

// Default 5x8 cursor bitmaps, one byte per row, low five bits used.
var (
	GlyphNone       = [8]byte{0x00, 0x08, 0x04, 0x02, 0x04, 0x08, 0x00, 0x00} // Chevron
	GlyphActionable = [8]byte{0x00, 0x08, 0x04, 0x1E, 0x04, 0x08, 0x00, 0x00} // Arrow pointing right
	GlyphBack       = [8]byte{0x00, 0x04, 0x08, 0x1E, 0x08, 0x04, 0x00, 0x00} // Arrow pointing left
)
