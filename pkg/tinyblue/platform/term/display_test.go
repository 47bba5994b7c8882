package term

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/glyph"
)

func TestWriteAndLines(t *testing.T) {
	d := New(2, 6, nil)
	d.MoveCursor(0, 1)
	d.WriteChar(1)
	d.WriteString("Toggle me")

	want := []string{"      ", "»Toggl"}
	if got := d.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}

	d.Clear()
	if got := d.Lines(); got[1] != "      " {
		t.Fatalf("expected blank line after clear, got %q", got[1])
	}
}

func TestMoveCursorBounds(t *testing.T) {
	d := New(2, 16, nil)
	if err := d.MoveCursor(16, 0); err == nil {
		t.Fatalf("expected error past last column")
	}
	if err := d.MoveCursor(0, 2); err == nil {
		t.Fatalf("expected error past last row")
	}
}

func TestDefineGlyph(t *testing.T) {
	d := New(2, 16, nil)
	p := glyph.DefaultSet().Back
	if err := d.DefineGlyph(2, p); err != nil {
		t.Fatalf("DefineGlyph: %v", err)
	}
	if got, ok := d.Glyph(2); !ok || got != p {
		t.Fatalf("expected glyph stored")
	}
	if err := d.DefineGlyph(8, p); err == nil {
		t.Fatalf("expected error for slot 8")
	}
}

func TestFlushWritesFrame(t *testing.T) {
	var buf bytes.Buffer
	d := New(1, 4, &buf, WithClearScreen())
	d.WriteString("abcd")
	if err := d.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[H\x1b[2J") {
		t.Fatalf("expected clear screen prefix")
	}
	if !strings.Contains(out, "abcd") {
		t.Fatalf("expected frame to contain text, got %q", out)
	}
}

func TestFramePublishedOnFlush(t *testing.T) {
	d := New(1, 4, nil)
	notified := 0
	d.setNotify(func() { notified++ })

	d.WriteString("ab")
	if got := d.Frame(); got[0] != "    " {
		t.Fatalf("frame changed before flush: %q", got[0])
	}
	if err := d.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := d.Frame(); got[0] != "ab  " {
		t.Fatalf("frame = %q", got[0])
	}
	if notified != 1 {
		t.Fatalf("notified %d times", notified)
	}
	if !strings.Contains(d.FrameView(), "ab") {
		t.Fatalf("expected frame view to contain text")
	}
}
