package core

import (
	"strings"
	"testing"
)

func TestScrollViewportTypewriter(t *testing.T) {
	tests := []struct {
		name      string
		cursorRow int
		height    int
		want      int
	}{
		{"cursor near top clamps to zero", 2, 10, 0},
		{"cursor mid document centers", 30, 10, 25},
		{"cursor at exact half", 5, 10, 0},
		{"odd height", 30, 11, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{ScrollRow: 0, Height: tt.height}
			if got := ScrollViewport(v, tt.cursorRow, true); got != tt.want {
				t.Errorf("ScrollViewport(h=%d, row=%d, typewriter) = %d, want %d",
					tt.height, tt.cursorRow, got, tt.want)
			}
		})
	}
}

func TestScrollViewportMinimal(t *testing.T) {
	tests := []struct {
		name      string
		scrollRow int
		cursorRow int
		height    int
		want      int
	}{
		{"cursor visible keeps offset", 5, 8, 10, 5},
		{"cursor above scrolls up", 5, 2, 10, 2},
		{"cursor below scrolls down", 0, 12, 10, 3},
		{"cursor on last visible row keeps offset", 3, 12, 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{ScrollRow: tt.scrollRow, Height: tt.height}
			if got := ScrollViewport(v, tt.cursorRow, false); got != tt.want {
				t.Errorf("ScrollViewport(offset=%d, h=%d, row=%d) = %d, want %d",
					tt.scrollRow, tt.height, tt.cursorRow, got, tt.want)
			}
		})
	}
}

func TestVisibleLinesFocusRadius(t *testing.T) {
	lines := make([]string, 11)
	for i := range lines {
		lines[i] = strings.Repeat("x", i+1)
	}
	b := NewBufferFromLines(lines)

	visible := VisibleLines(b, Viewport{Height: 11}, 5, true, 1)
	if len(visible) != 11 {
		t.Fatalf("len(visible) = %d, want 11", len(visible))
	}

	for _, fl := range visible {
		want := fl.Row >= 4 && fl.Row <= 6
		if fl.InFocus != want {
			t.Errorf("row %d InFocus = %v, want %v", fl.Row, fl.InFocus, want)
		}
		if fl.Text != b.Line(fl.Row) {
			t.Errorf("row %d text = %q, want %q", fl.Row, fl.Text, b.Line(fl.Row))
		}
	}
}

func TestVisibleLinesAllInFocusWithoutTypewriter(t *testing.T) {
	b := NewBufferFromLines([]string{"0", "1", "2", "3", "4", "5", "6"})

	visible := VisibleLines(b, Viewport{Height: 7}, 0, false, 1)
	if len(visible) != 7 {
		t.Fatalf("len(visible) = %d, want 7", len(visible))
	}
	for _, fl := range visible {
		if !fl.InFocus {
			t.Errorf("row %d InFocus = false, want true", fl.Row)
		}
	}
}

func TestVisibleLinesScrolledWindow(t *testing.T) {
	b := NewBufferFromLines([]string{"0", "1", "2", "3", "4", "5", "6"})

	visible := VisibleLines(b, Viewport{ScrollRow: 2, Height: 3}, 3, true, 0)
	if len(visible) != 3 {
		t.Fatalf("len(visible) = %d, want 3", len(visible))
	}
	if visible[0].Row != 2 || visible[2].Row != 4 {
		t.Errorf("window rows = [%d, %d], want [2, 4]", visible[0].Row, visible[2].Row)
	}
}

func TestVisibleLinesZeroRadius(t *testing.T) {
	b := NewBufferFromLines([]string{"a", "b", "c"})
	lines := VisibleLines(b, Viewport{Height: 3}, 1, true, 0)

	for _, fl := range lines {
		if want := fl.Row == 1; fl.InFocus != want {
			t.Errorf("row %d InFocus = %v, want %v", fl.Row, fl.InFocus, want)
		}
	}
}

func TestVisibleLinesShortDocument(t *testing.T) {
	b := NewBufferFromLines([]string{"only", "two"})
	lines := VisibleLines(b, Viewport{Height: 10}, 0, true, 0)

	if len(lines) != 2 {
		t.Errorf("len(lines) = %d, want 2", len(lines))
	}
}

func TestVisibleLinesZeroHeight(t *testing.T) {
	b := NewBufferFromText("text")
	if lines := VisibleLines(b, Viewport{}, 0, true, 0); lines != nil {
		t.Errorf("VisibleLines with zero height = %v, want nil", lines)
	}
}
