package tinyblue

import "testing"

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"pad", "LED", 6, "LED   "},
		{"exact", "About", 5, "About"},
		{"truncate", "Temperature 21.5C", 11, "Temperature"},
		{"empty", "", 3, "   "},
		{"zero width", "LED", 0, ""},
		{"negative width", "LED", -2, ""},
		{"multibyte", "Größe", 4, "Größ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewItem(tt.text)
			if got := item.VisibleText(tt.width); got != tt.want {
				t.Fatalf("VisibleText(%d) = %q, want %q", tt.width, got, tt.want)
			}
			if item.Text() != tt.text {
				t.Fatalf("stored text changed to %q", item.Text())
			}
		})
	}
}

func TestSetText(t *testing.T) {
	item := NewItem("Back / LED ON")
	item.SetText("Back / LED OFF")
	if item.Text() != "Back / LED OFF" {
		t.Fatalf("unexpected text %q", item.Text())
	}

	var zero Item
	if zero.Text() != "" {
		t.Fatalf("expected empty text for zero item")
	}
	zero.SetText("x")
	if zero.Text() != "x" {
		t.Fatalf("expected SetText to work on zero item")
	}
}

func TestItemKind(t *testing.T) {
	noop := func() {}
	both := NewActionItem("both", noop)
	both.IsBack = true

	tests := []struct {
		name string
		item *Item
		want CursorKind
	}{
		{"plain", NewItem("plain"), CursorNone},
		{"action", NewActionItem("action", noop), CursorActionable},
		{"back", NewBackItem("back"), CursorBack},
		{"back wins", both, CursorBack},
	}
	for _, tt := range tests {
		if got := tt.item.Kind(); got != tt.want {
			t.Fatalf("%s: Kind() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
