// Package simulator shows a character LCD in an SDL window and reads the
// menu buttons from the keyboard, for developing menus on a desktop.
//
// SDL must be driven from the thread that created the window, so a
// Simulator is used from the main goroutine: call PumpEvents and the
// Loop's Step from the same loop that renders.
package simulator

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/constants"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/glyph"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Options configures the simulator window.
type Options struct {
	Title         string
	FontPath      string        // TrueType font used for ROM characters
	Scale         int32         // Screen pixels per LCD pixel (default 6)
	WindowOptions WindowOptions // SDL window flags
	Background    sdl.Color     // Panel color (default 1602 blue)
	Foreground    sdl.Color     // Character color (default white)
}

// Simulator is an SDL-backed tinyblue.Display.
type Simulator struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font
	chars    charTextures
	held     *internal.HeldInput

	rows, columns int
	scale         int32
	cellW, cellH  int32
	gap           int32
	bg, fg        sdl.Color

	grid     [][]byte
	col, row int
	glyphs   map[uint8]glyph.Pattern

	hasVSync        bool
	lastPresentTime uint64
}

// charTextures holds the rendered texture for each character code, created
// on first use.
type charTextures [256]*sdl.Texture

func (c *charTextures) destroy() {
	for i, texture := range c {
		if texture != nil {
			texture.Destroy()
			c[i] = nil
		}
	}
}

// New opens a window sized for rows x columns characters.
func New(rows, columns int, opts Options) (*Simulator, error) {
	if opts.Scale <= 0 {
		opts.Scale = 6
	}
	if opts.Title == "" {
		opts.Title = "tinyblue"
	}
	if opts.Background == (sdl.Color{}) {
		opts.Background = sdl.Color{R: 0x1E, G: 0x40, B: 0xC8, A: 0xFF}
	}
	if opts.Foreground == (sdl.Color{}) {
		opts.Foreground = sdl.Color{R: 0xF0, G: 0xF0, B: 0xFF, A: 0xFF}
	}

	if opts.WindowOptions.IsZero() && constants.IsDevMode() {
		opts.WindowOptions = WindowOptions{Resizable: true}
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("simulator: sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("simulator: ttf init: %w", err)
	}

	s := &Simulator{
		rows:    rows,
		columns: columns,
		scale:   opts.Scale,
		cellW:   glyph.Width * opts.Scale,
		cellH:   glyph.Height * opts.Scale,
		gap:     opts.Scale,
		bg:      opts.Background,
		fg:      opts.Foreground,
		held:    internal.NewHeldInput(),
		glyphs:  make(map[uint8]glyph.Pattern),
	}
	s.blank()

	font, err := ttf.OpenFont(opts.FontPath, int(s.cellH))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("simulator: open font %q: %w", opts.FontPath, err)
	}
	s.font = font

	width, height := s.windowSize()
	internal.GetInternalLogger().Debug("Initializing simulator window", "width", width, "height", height)

	s.window, err = sdl.CreateWindow(opts.Title, 50, 50, width, height, opts.WindowOptions.ToSDLFlags())
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("simulator: create window: %w", err)
	}
	s.renderer, err = sdl.CreateRenderer(s.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("simulator: create renderer: %w", err)
	}
	s.renderer.SetLogicalSize(width, height)

	info, err := s.renderer.GetInfo()
	s.hasVSync = err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0
	return s, nil
}

func (s *Simulator) windowSize() (int32, int32) {
	w := int32(s.columns)*(s.cellW+s.gap) + s.gap
	h := int32(s.rows)*(s.cellH+s.gap) + s.gap
	return w, h
}

func (s *Simulator) blank() {
	s.grid = make([][]byte, s.rows)
	for i := range s.grid {
		s.grid[i] = make([]byte, s.columns)
		for j := range s.grid[i] {
			s.grid[i][j] = ' '
		}
	}
	s.col, s.row = 0, 0
}

// Clear blanks the grid. Nothing is drawn until Flush. Never fails.
func (s *Simulator) Clear() error {
	s.blank()
	return nil
}

// DefineGlyph stores pattern for slot 0-7.
func (s *Simulator) DefineGlyph(slot uint8, pattern glyph.Pattern) error {
	if slot > 7 {
		return fmt.Errorf("simulator: glyph slot %d out of range", slot)
	}
	s.glyphs[slot] = pattern
	return nil
}

// MoveCursor positions the write head inside the grid.
func (s *Simulator) MoveCursor(column, row int) error {
	if column < 0 || column >= s.columns || row < 0 || row >= s.rows {
		return fmt.Errorf("simulator: cursor %d,%d outside %dx%d", column, row, s.columns, s.rows)
	}
	s.col, s.row = column, row
	return nil
}

// WriteChar puts one character code at the head. Never fails.
func (s *Simulator) WriteChar(code byte) error {
	s.put(code)
	return nil
}

// WriteString puts text at the head; runes above 0xFF show as '?'. Never fails.
func (s *Simulator) WriteString(text string) error {
	for _, r := range text {
		if r > 0xFF {
			r = '?'
		}
		s.put(byte(r))
	}
	return nil
}

func (s *Simulator) put(b byte) {
	if s.col < s.columns {
		s.grid[s.row][s.col] = b
	}
	s.col++
}

// Flush draws the grid and presents the frame.
func (s *Simulator) Flush() error {
	r := s.renderer
	if err := r.SetDrawColor(s.bg.R, s.bg.G, s.bg.B, s.bg.A); err != nil {
		return err
	}
	if err := r.Clear(); err != nil {
		return err
	}

	for y, line := range s.grid {
		for x, code := range line {
			cell := sdl.Rect{
				X: s.gap + int32(x)*(s.cellW+s.gap),
				Y: s.gap + int32(y)*(s.cellH+s.gap),
				W: s.cellW,
				H: s.cellH,
			}
			var err error
			if code < 8 {
				err = s.drawPattern(s.glyphs[code], cell)
			} else if code != ' ' {
				err = s.drawChar(code, cell)
			}
			if err != nil {
				return err
			}
		}
	}

	s.present()
	return nil
}

// present caps the frame rate at about 60fps when VSync is unavailable.
func (s *Simulator) present() {
	s.renderer.Present()
	if !s.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - s.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		s.lastPresentTime = sdl.GetTicks64()
	}
}

func (s *Simulator) drawPattern(p glyph.Pattern, cell sdl.Rect) error {
	if err := s.renderer.SetDrawColor(s.fg.R, s.fg.G, s.fg.B, s.fg.A); err != nil {
		return err
	}
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < glyph.Width; x++ {
			if !p.Pixel(x, y) {
				continue
			}
			dot := sdl.Rect{
				X: cell.X + int32(x)*s.scale,
				Y: cell.Y + int32(y)*s.scale,
				W: s.scale,
				H: s.scale,
			}
			if err := s.renderer.FillRect(&dot); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Simulator) drawChar(code byte, cell sdl.Rect) error {
	texture := s.chars[code]
	if texture == nil {
		surface, err := s.font.RenderUTF8Blended(string(rune(code)), s.fg)
		if err != nil {
			return fmt.Errorf("simulator: render %q: %w", rune(code), err)
		}
		texture, err = s.renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return fmt.Errorf("simulator: texture %q: %w", rune(code), err)
		}
		s.chars[code] = texture
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return err
	}
	dst := sdl.Rect{X: cell.X + (cell.W-w)/2, Y: cell.Y + (cell.H-h)/2, W: w, H: h}
	return s.renderer.Copy(texture, nil, &dst)
}

// PumpEvents drains SDL events, posting button presses to queue and firing
// repeats for held scroll keys. Returns false once the window is closed.
func (s *Simulator) PumpEvents(queue *tinyblue.EventQueue) bool {
	now := time.Now()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			button := buttonForKey(e.Keysym.Sym)
			if button == internal.ButtonNone {
				continue
			}
			pressed := e.Type == sdl.KEYDOWN
			s.held.SetHeld(button, pressed, now)
			if pressed {
				queue.Post(eventFor(button))
			}
		}
	}

	if button := s.held.Update(now); button != internal.ButtonNone {
		queue.Post(eventFor(button))
	}
	return true
}

// Close releases all SDL resources.
func (s *Simulator) Close() {
	s.chars.destroy()
	if s.font != nil {
		s.font.Close()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	ttf.Quit()
	sdl.Quit()
}
