package vtcore

import "testing"

func TestScenarioPlainWrite(t *testing.T) {
	term := New(WithSize(10, 20))
	feed(term, "Hello\r\n")

	if term.cursor.Row != 1 || term.cursor.Col != 0 {
		t.Fatalf("cursor = (%d,%d), want (1,0)", term.cursor.Row, term.cursor.Col)
	}
	row := term.active.GetRow(0)
	for i, r := range "Hello" {
		if row.At(i).Rune() != r {
			t.Fatalf("cell (0,%d) = %q, want %q", i, row.At(i).Rune(), r)
		}
	}
	if row.At(5).Value != 0 && row.At(5).Value != ' ' {
		t.Fatalf("cell (0,5) = %v, want blank", row.At(5).Value)
	}
	if row.Wrapped {
		t.Fatalf("row 0 Wrapped = true, want false")
	}
}

func TestScenarioCSICursorMotion(t *testing.T) {
	term := New(WithSize(10, 20))
	feed(term, "\x1b[5;3Hx")

	if term.cursor.Row != 4 || term.cursor.Col != 3 {
		t.Fatalf("cursor = (%d,%d), want (4,3)", term.cursor.Row, term.cursor.Col)
	}
	row := term.active.GetRow(4)
	if row.At(2).Rune() != 'x' {
		t.Fatalf("cell (4,2) = %q, want 'x'", row.At(2).Rune())
	}
}

func TestScenarioEraseDisplay(t *testing.T) {
	term := New(WithSize(10, 20))
	feed(term, "abc\r\ndef")
	beforeRow, beforeCol := term.cursor.Row, term.cursor.Col
	feed(term, "\x1b[2J")

	if term.cursor.Row != beforeRow || term.cursor.Col != beforeCol {
		t.Fatalf("cursor moved by erase-display; was (%d,%d), now (%d,%d)", beforeRow, beforeCol, term.cursor.Row, term.cursor.Col)
	}
	for r := 0; r < 2; r++ {
		row := term.active.GetRow(r)
		for c := 0; c < len(row.Cells); c++ {
			if !row.At(c).IsBlank() {
				t.Fatalf("cell (%d,%d) not blank after ESC[2J", r, c)
			}
		}
	}
}

func TestScenarioSGRColor(t *testing.T) {
	term := New(WithSize(5, 20))
	feed(term, "\x1b[31mR")

	cell := term.active.GetRow(0).At(0)
	if cell.Attrs.Foreground.PaletteIndex != 1 {
		t.Fatalf("foreground palette index = %d, want 1", cell.Attrs.Foreground.PaletteIndex)
	}
	if cell.Rune() != 'R' {
		t.Fatalf("cell value = %q, want 'R'", cell.Rune())
	}
}

func TestScenario256Color(t *testing.T) {
	term := New(WithSize(5, 20))
	feed(term, "\x1b[38;5;201mZ")

	cell := term.active.GetRow(0).At(0)
	if cell.Attrs.Foreground.PaletteIndex != 201 {
		t.Fatalf("foreground palette index = %d, want 201", cell.Attrs.Foreground.PaletteIndex)
	}
	want := term.palette.Get(201)
	if cell.Attrs.Foreground.R != want.R || cell.Attrs.Foreground.G != want.G || cell.Attrs.Foreground.B != want.B {
		t.Fatalf("foreground RGB = %v, want %v", cell.Attrs.Foreground, want)
	}
	if cell.Rune() != 'Z' {
		t.Fatalf("cell value = %q, want 'Z'", cell.Rune())
	}
}

func TestScenarioScrollRegion(t *testing.T) {
	term := New(WithSize(10, 20))
	feed(term, "\x1b[2;4r")
	feed(term, "\x1b[4;1H")
	feed(term, "A\nB")

	row0 := term.active.GetRow(0)
	if !row0.At(0).IsBlank() {
		t.Fatalf("row 0 should be untouched by in-region scroll")
	}
	row3 := term.active.GetRow(3)
	if row3.At(0).Rune() != 'B' {
		t.Fatalf("cell (3,0) = %q, want 'B'", row3.At(0).Rune())
	}
}

func TestResizeRoundTrip(t *testing.T) {
	term := New(WithSize(10, 20))
	feed(term, "Hello")

	term.Resize(8, 15)
	term.Resize(10, 20)

	row := term.active.GetRow(0)
	for i, r := range "Hello" {
		if row.At(i).Rune() != r {
			t.Fatalf("resize round-trip lost cell (0,%d): got %q, want %q", i, row.At(i).Rune(), r)
		}
	}
}

func TestFrameIdempotence(t *testing.T) {
	term := New(WithSize(5, 10))
	feed(term, "hi")

	sink := &countingSink{}
	if err := term.RenderFrame(sink); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	sink.calls = 0
	if err := term.RenderFrame(sink); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if sink.calls != 0 {
		t.Fatalf("second no-op flush emitted %d content calls, want 0", sink.calls)
	}
}

// countingSink is a minimal InstructionSink that counts non-Sync calls.
type countingSink struct {
	calls int
}

func (s *countingSink) Size(w, h int) error                                    { s.calls++; return nil }
func (s *countingSink) Rect(layer, x, y, w, h int) error                       { s.calls++; return nil }
func (s *countingSink) CFill(op CompositeOp, layer int, c Color) error         { s.calls++; return nil }
func (s *countingSink) Copy(op CompositeOp, sl, sx, sy, w, h, dl, dx, dy int) error {
	s.calls++
	return nil
}
func (s *countingSink) Move(layer, x, y int) error                     { s.calls++; return nil }
func (s *countingSink) Shade(layer, x, y, w, h int, alpha uint8) error  { s.calls++; return nil }
func (s *countingSink) Cursor(x, y int, visible bool) error             { s.calls++; return nil }
func (s *countingSink) Pipe(name string, data []byte) error             { s.calls++; return nil }
func (s *countingSink) Blob(name string, data []byte) error             { s.calls++; return nil }
func (s *countingSink) End(name string) error                           { s.calls++; return nil }
func (s *countingSink) Name(title string) error                        { s.calls++; return nil }
func (s *countingSink) Sync(ts int64) error                            { return nil }
func (s *countingSink) Ack(name string, code int, msg string) error    { s.calls++; return nil }
