package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetColored(0, -1, 'A', Red)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 2, '█', Green)

	cell := s.GetCell(1, 2)
	if !cell.Colored || cell.Color != Green || cell.Rune != '█' {
		t.Errorf("GetCell(1, 2) = %+v, expected colored green block", cell)
	}

	s.Set(1, 2, 'x')
	if s.GetCell(1, 2).Colored {
		t.Error("Set should drop the color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(3, 3, 'X', Blue)
	s.Clear()

	if cell := s.GetCell(3, 3); cell.Rune != ' ' || cell.Colored {
		t.Errorf("After Clear, expected blank cell, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(2, 1, 4, '=')

	if s.Row(1) != "  ====    " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if s.String() != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", s.String(), "abc\ndef")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'X', Red)
	s.Resize(10, 3)

	if s.Width() != 10 || s.Height() != 3 {
		t.Fatalf("Resize dimensions wrong: %dx%d", s.Width(), s.Height())
	}
	if cell := s.GetCell(1, 1); cell.Rune != 'X' || cell.Color != Red {
		t.Errorf("Resize should preserve content, got %+v", cell)
	}
	if s.Get(8, 2) != ' ' {
		t.Error("new area should be blank")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab")

	if s.Row(0) != "ab  " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.Row(5) != strings.Repeat(" ", 4) {
		t.Errorf("out of range Row should be blank, got %q", s.Row(5))
	}
}
