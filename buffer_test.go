package vtcore

import "testing"

func TestBufferScrollUpPushesToScrollback(t *testing.T) {
	b := NewBuffer(5, 10, 20, nil)
	b.GetRow(0).Set(0, Cell{Value: 'A', Width: 1})
	b.ScrollUp(1)

	if got := b.ScrollbackLen(); got != 1 {
		t.Fatalf("ScrollbackLen() = %d, want 1", got)
	}
	if row := b.GetRow(-1); row == nil || row.At(0).Value != 'A' {
		t.Fatalf("scrolled-off row not preserved in scrollback")
	}
	if row := b.GetRow(0); row == nil {
		t.Fatalf("new top row missing after scroll")
	} else if !row.At(0).IsBlank() {
		t.Fatalf("new top row should be blank")
	}
}

func TestBufferScrollUpEvictsOldestPastCapacity(t *testing.T) {
	b := NewBuffer(2, 10, 2, nil) // capacity 4
	for i := 0; i < 10; i++ {
		b.ScrollUp(1)
	}
	if got := b.ScrollbackLen(); got != 2 {
		t.Fatalf("ScrollbackLen() = %d, want 2 (capped)", got)
	}
}

func TestBufferScrollDownReversesScrollUp(t *testing.T) {
	b := NewBuffer(3, 10, 10, nil)
	b.GetRow(0).Set(0, Cell{Value: 'X', Width: 1})
	b.ScrollUp(1)
	b.ScrollDown(1)

	if got := b.ScrollbackLen(); got != 0 {
		t.Fatalf("ScrollbackLen() = %d, want 0 after reversing scroll", got)
	}
}

func TestBufferSetColumnsBreaksContinuation(t *testing.T) {
	b := NewBuffer(3, 10, 0, nil)
	wide := Cell{Value: '中', Width: 2}
	b.SetColumns(0, 2, []Cell{wide, {Value: Continuation}})

	// Overwrite column 3 (the continuation cell) with a narrow char; the
	// wide owner at column 2 must be cleared entirely, not left dangling.
	b.SetColumns(0, 3, []Cell{{Value: 'Y', Width: 1}})

	row := b.GetRow(0)
	if row.At(2).IsContinuation() {
		t.Fatalf("column 2 left as an owner-less continuation cell")
	}
	if row.At(3).Value != 'Y' {
		t.Fatalf("column 3 = %v, want 'Y'", row.At(3).Value)
	}
}

func TestBufferResizePreservesTopLeftContent(t *testing.T) {
	b := NewBuffer(5, 10, 0, nil)
	b.GetRow(0).Set(0, Cell{Value: 'A', Width: 1})
	b.Resize(3, 20)

	row := b.GetRow(0)
	if row.At(0).Value != 'A' {
		t.Fatalf("content at (0,0) lost across resize")
	}
	if len(row.Cells) != 20 {
		t.Fatalf("row width after resize = %d, want 20", len(row.Cells))
	}
}

func TestRowCapacityGrowthBounds(t *testing.T) {
	cases := []struct {
		cols int
		want int
	}{
		{10, MinRowCapacity},
		{300, 512},
		{2000, MaxRowCapacity},
	}
	for _, c := range cases {
		if got := rowCapacityFor(c.cols); got != c.want {
			t.Errorf("rowCapacityFor(%d) = %d, want %d", c.cols, got, c.want)
		}
	}
}

func TestEffectiveLengthSkipsTrailingBlanks(t *testing.T) {
	b := NewBuffer(1, 10, 0, nil)
	b.SetColumns(0, 0, []Cell{{Value: 'h', Width: 1}, {Value: 'i', Width: 1}})
	if got := b.EffectiveLength(0); got != 2 {
		t.Fatalf("EffectiveLength() = %d, want 2", got)
	}
}
