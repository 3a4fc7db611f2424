package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetCellKeepsColor(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 3, '#', ColorPipe)

	if c := s.GetCell(2, 3); c.Rune != '#' || c.Color != ColorPipe {
		t.Errorf("GetCell = %+v, expected '#' in ColorPipe", c)
	}

	// Set only swaps the rune.
	s.Set(2, 3, '*')
	if c := s.GetCell(2, 3); c.Rune != '*' || c.Color != ColorPipe {
		t.Errorf("after Set, GetCell = %+v, expected '*' in ColorPipe", c)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// Must not panic.
	s.SetCell(-1, 0, 'x', ColorBird)
	s.SetCell(0, 4, 'x', ColorBird)
	s.Set(100, 100, 'x')

	if s.Get(-1, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
	if s.GetCell(4, 0) != blankCell {
		t.Error("out-of-bounds GetCell should return a blank cell")
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('.', ColorSkyNight)

	if got := s.String(); got != "...\n..." {
		t.Errorf("String() = %q", got)
	}
	if s.GetCell(1, 1).Color != ColorSkyNight {
		t.Error("Fill should set colour")
	}

	s.Clear()
	if s.GetCell(1, 1) != blankCell {
		t.Error("Clear should reset cells")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(8, 0, "Score", ColorText)

	if got := s.Row(0); got != "        Sc" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorText)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRect(NewRect(1, 1, 2, 3), '█', ColorPipe)

	count := 0
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.Get(x, y) == '█' {
				count++
			}
		}
	}
	if count != 6 {
		t.Errorf("DrawRect filled %d cells, expected 6", count)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorBanner)

	expected := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(0, 0, 'x')
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d after resize", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear the buffer")
	}
	if len(strings.Split(s.String(), "\n")) != 3 {
		t.Error("String() should have one line per row")
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 1)
	if got := s.Row(7); got != "    " {
		t.Errorf("Row(7) = %q, expected blank row", got)
	}
}
