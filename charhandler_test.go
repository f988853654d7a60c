package vtcore

import "testing"

func feed(term *Terminal, s string) {
	term.FeedOutput([]byte(s))
}

func TestPlainTextEchoesToBuffer(t *testing.T) {
	term := New(WithSize(5, 20))
	feed(term, "hello")

	row := term.active.GetRow(0)
	for i, r := range "hello" {
		if row.At(i).Rune() != r {
			t.Fatalf("col %d = %q, want %q", i, row.At(i).Rune(), r)
		}
	}
}

func TestUTF8RoundTrip(t *testing.T) {
	term := New(WithSize(5, 20))
	feed(term, "héllo 世界")

	row := term.active.GetRow(0)
	var got []rune
	for i := 0; i < len(row.Cells); i++ {
		c := row.At(i)
		if c.IsContinuation() {
			continue
		}
		if c.IsBlank() && i >= 8 {
			break
		}
		got = append(got, c.Rune())
	}
	want := []rune("héllo 世界")
	if len(got) < len(want) {
		t.Fatalf("got %d runes, want at least %d", len(got), len(want))
	}
	for i, r := range want {
		if got[i] != r {
			t.Fatalf("rune %d = %q, want %q", i, got[i], r)
		}
	}
}

func TestMalformedUTF8RecoversLocally(t *testing.T) {
	term := New(WithSize(5, 20))
	feed(term, "a\xffb")

	row := term.active.GetRow(0)
	if row.At(0).Rune() != 'a' {
		t.Fatalf("col 0 = %q, want 'a'", row.At(0).Rune())
	}
	if row.At(2).Rune() != 'b' {
		t.Fatalf("col 2 = %q, want 'b' (parser must resynchronize)", row.At(2).Rune())
	}
}

func TestCSICursorPosition(t *testing.T) {
	term := New(WithSize(10, 10))
	feed(term, "\x1b[3;5H")
	if term.cursor.Row != 2 || term.cursor.Col != 4 {
		t.Fatalf("cursor = (%d,%d), want (2,4)", term.cursor.Row, term.cursor.Col)
	}
}

func TestCSIEraseInLine(t *testing.T) {
	term := New(WithSize(5, 10))
	feed(term, "abcdef")
	feed(term, "\x1b[3D") // cursor back to col 3
	feed(term, "\x1b[K")  // erase to end of line

	row := term.active.GetRow(0)
	if row.At(2).Rune() != 'c' {
		t.Fatalf("col 2 = %q, want 'c' (unaffected)", row.At(2).Rune())
	}
	if !row.At(3).IsBlank() {
		t.Fatalf("col 3 should be erased")
	}
}

func TestSGRColorAndReset(t *testing.T) {
	term := New(WithSize(2, 10))
	feed(term, "\x1b[31mred\x1b[0mplain")

	row := term.active.GetRow(0)
	if row.At(0).Attrs.Foreground.PaletteIndex != 1 {
		t.Fatalf("foreground palette index = %d, want 1 (red)", row.At(0).Attrs.Foreground.PaletteIndex)
	}
	if row.At(3).Attrs.Foreground.PaletteIndex != ColorForeground {
		t.Fatalf("foreground not reset after SGR 0")
	}
}

func TestScrollRegionScrollsOnlyInsideMargins(t *testing.T) {
	term := New(WithSize(5, 10))
	feed(term, "\x1b[2;4r") // rows 2-4 scroll region (1-based)
	for i := 0; i < 5; i++ {
		feed(term, "x\r\n")
	}
	// Row 0 (outside the region) must be untouched.
	row := term.active.GetRow(0)
	if row.At(0).IsBlank() {
		t.Fatalf("row outside scroll region should not have scrolled away")
	}
}

func TestAlternateScreenSwitchPreservesPrimary(t *testing.T) {
	term := New(WithSize(3, 10))
	feed(term, "primary")
	feed(term, "\x1b[?1049h")
	feed(term, "alt")
	feed(term, "\x1b[?1049l")

	row := term.active.GetRow(0)
	if row.At(0).Rune() != 'p' {
		t.Fatalf("primary screen content lost after alternate-screen round trip")
	}
}

func TestDoubleClickSelectsWord(t *testing.T) {
	term := New(WithSize(2, 20))
	feed(term, "hello world")
	term.SendMouse(MouseEvent{Row: 0, Col: 7, Button: MouseButtonLeft, Pressed: true, Clicks: 2})

	_, startCol, _, endCol := term.selection.Normalized()
	if startCol != 6 || endCol != 10 {
		t.Fatalf("word selection = [%d,%d], want [6,10] (\"world\")", startCol, endCol)
	}
}
