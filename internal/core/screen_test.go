package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '@', ColorHead)

	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != ColorHead {
		t.Errorf("GetCell(3, 2) = %+v, expected '@' with ColorHead", cell)
	}
	if s.Get(3, 2) != '@' {
		t.Errorf("Get(3, 2) = %q, expected '@'", s.Get(3, 2))
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Writes outside the buffer are silently ignored
	s.SetCell(-1, 0, 'x', ColorBody)
	s.SetCell(10, 0, 'x', ColorBody)
	s.SetCell(0, -1, 'x', ColorBody)
	s.SetCell(0, 5, 'x', ColorBody)

	// Reads outside the buffer return a default space cell
	if c := s.GetCell(-1, -1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("GetCell(-1, -1) = %+v, expected default space", c)
	}
	if !strings.HasPrefix(s.Row(0), " ") {
		t.Error("Out-of-bounds write leaked into the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, 'o', ColorBody)
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("Cell (%d, %d) not cleared: %+v", x, y, c)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, '#', ColorWall)

	s.Resize(20, 10)
	if c := s.GetCell(2, 2); c.Rune != '#' || c.Color != ColorWall {
		t.Errorf("Content lost after grow: %+v", c)
	}

	s.Resize(3, 3)
	if c := s.GetCell(2, 2); c.Rune != '#' {
		t.Errorf("Content lost after shrink: %+v", c)
	}
	if s.Width() != 3 || s.Height() != 3 {
		t.Errorf("Size = %dx%d, expected 3x3", s.Width(), s.Height())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi", ColorDim)

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText failed, row = %q", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorDim {
		t.Error("DrawText dropped the color tag")
	}

	// Clipped text must not wrap or panic
	s.DrawText(8, 0, "long", ColorDefault)
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Errorf("Clipped text wrong, row = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)
	if s.Get(4, 0) != 'a' {
		t.Errorf("Centered text misplaced, row = %q", s.Row(0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
