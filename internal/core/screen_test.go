package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	want := strings.Repeat("      \n", 2) + "      "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)
	points := []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 4}, {100, 100}}

	for _, p := range points {
		s.SetColored(p.x, p.y, '@', ColorRed)
		if c := s.GetCell(p.x, p.y); c.Rune != ' ' || c.Color != ColorDefault {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p.x, p.y, c)
		}
	}
	if strings.ContainsRune(s.String(), '@') {
		t.Errorf("out-of-bounds write leaked into buffer:\n%s", s.String())
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 2)
	s.SetColored(1, 0, '@', ColorBrightCyan)
	s.DrawTextColored(8, 1, "•••", ColorBrightYellow)

	tests := []struct {
		name  string
		x, y  int
		rune  rune
		color Color
	}{
		{"player", 1, 0, '@', ColorBrightCyan},
		{"text start", 8, 1, '•', ColorBrightYellow},
		{"text clipped", 9, 1, '•', ColorBrightYellow},
		{"untouched", 0, 0, ' ', ColorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := s.GetCell(tt.x, tt.y)
			if c.Rune != tt.rune || c.Color != tt.color {
				t.Errorf("GetCell(%d, %d) = %+v, want {%q %d}", tt.x, tt.y, c, tt.rune, tt.color)
			}
		})
	}

	s.Clear()
	if c := s.GetCell(1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear GetCell(1, 0) = %+v", c)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"LEVEL UP", " LEVEL UP "},
		{"GAME", "   GAME   "},
		{"•x•", "   •x•    "},
	}
	for _, tt := range tests {
		s := NewScreen(10, 1)
		s.DrawTextCentered(0, tt.text, ColorNeonPink)
		if got := s.Row(0); got != tt.want {
			t.Errorf("centered %q = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestScreenDrawBoxAndPanel(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRect(NewRect(0, 0, 5, 4), '#')
	s.DrawBox(NewRect(0, 0, 5, 4), ColorCyan)

	want := []string{
		"┌───┐",
		"│###│",
		"│###│",
		"└───┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, want %q", y, got, row)
		}
	}
	if c := s.GetCell(0, 0); c.Color != ColorCyan {
		t.Errorf("corner color = %d, want %d", c.Color, ColorCyan)
	}
	if got := s.Row(9); got != "     " {
		t.Errorf("Row(out of range) = %q", got)
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(-5, -5)
	if s.Width() != 0 || s.Height() != 0 || s.String() != "" {
		t.Errorf("negative resize = %dx%d %q", s.Width(), s.Height(), s.String())
	}
}
