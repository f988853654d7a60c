package vtcore

// opKind is the pending-frame operation recorded for each screen cell
// between flushes, per spec.md §4.5: NOP means unchanged since the last
// flush, SET means the cell's content changed and must be redrawn. There
// is no COPY operation: content that moved on screen (for example after
// a scroll) is redrawn cell by cell as SET.
type opKind uint8

const (
	opNOP opKind = iota
	opSET
)

// Display holds the "pending frame": the last rendered snapshot of the
// screen plus which cells have changed since, so Flush only ever
// transmits a diff instead of a full repaint.
type Display struct {
	rows, cols int
	snapshot   [][]Cell
	ops        [][]opKind
	lastCursor Cursor
	haveFirst  bool
}

// NewDisplay allocates a differ for the given screen geometry. The
// first Flush after construction always emits a full repaint, since
// there is no prior snapshot to diff against.
func NewDisplay(rows, cols int) *Display {
	d := &Display{rows: rows, cols: cols}
	d.alloc()
	return d
}

func (d *Display) alloc() {
	d.snapshot = make([][]Cell, d.rows)
	d.ops = make([][]opKind, d.rows)
	for r := 0; r < d.rows; r++ {
		d.snapshot[r] = make([]Cell, d.cols)
		d.ops[r] = make([]opKind, d.cols)
		for c := 0; c < d.cols; c++ {
			d.ops[r][c] = opSET
		}
	}
}

// Resize reallocates the pending-frame grid to match a new screen size;
// the next Flush after a resize always does a full repaint.
func (d *Display) Resize(rows, cols int) {
	d.rows = rows
	d.cols = cols
	d.alloc()
	d.haveFirst = false
}

// markDirty marks every cell that differs between the buffer's current
// visible content and the last snapshot as opSET.
func (d *Display) markDirty(active *Buffer) {
	for r := 0; r < d.rows; r++ {
		row := active.GetRow(r)
		for c := 0; c < d.cols; c++ {
			var cell Cell
			if row != nil {
				cell = row.At(c)
			} else {
				cell = NewCell()
			}
			if !d.haveFirst || cell != d.snapshot[r][c] {
				d.ops[r][c] = opSET
			}
			d.snapshot[r][c] = cell
		}
	}
	d.haveFirst = true
}

// Flush transmits every opSET cell to sink, coalesced into horizontal
// runs of identical foreground/background color per row (the common
// case for solid-colored runs of text), applies the selection-highlight
// overlay via luminance blending, repositions the cursor if it moved,
// and emits a final Sync. All ops are reset to opNOP afterward.
func (d *Display) Flush(sink InstructionSink, active *Buffer, cursor Cursor, sel Selection, palette *Palette, fg, bg Color) error {
	d.markDirty(active)

	const layer = 0

	for r := 0; r < d.rows; r++ {
		c := 0
		for c < d.cols {
			if d.ops[r][c] != opSET {
				c++
				continue
			}
			start := c
			cell := d.snapshot[r][c]
			for c < d.cols && d.ops[r][c] == opSET && sameRendering(d.snapshot[r][c], cell) {
				c++
			}
			width := c - start
			resolved := resolveCellColor(cell, fg, bg)
			if err := sink.Rect(layer, start, r, width, 1); err != nil {
				return err
			}
			if err := sink.CFill(OpSrc, layer, resolved); err != nil {
				return err
			}
			for i := start; i < c; i++ {
				d.ops[r][i] = opNOP
			}
		}
	}

	if sel.Active {
		if err := d.flushSelection(sink, sel, layer); err != nil {
			return err
		}
	}

	if cursor != d.lastCursor {
		if err := sink.Cursor(cursor.Col, cursor.Row, cursor.Visible); err != nil {
			return err
		}
		d.lastCursor = cursor
	}

	return sink.Sync(0)
}

// sameRendering reports whether two cells would paint identically,
// ignoring the Value field, so a coalesced run only needs one CFill.
func sameRendering(a, b Cell) bool {
	return a.Attrs == b.Attrs
}

// resolveCellColor picks the color a cell's rectangle is filled with:
// its effective background, after resolving the foreground/background
// pseudo-indices and applying reverse video if set. A cell carrying the
// Cursor attribute is filled with its effective foreground instead.
func resolveCellColor(c Cell, fg, bg Color) Color {
	f, b := c.Attrs.Foreground, c.Attrs.Background
	if f.PaletteIndex == ColorForeground {
		f = fg
	}
	if b.PaletteIndex == ColorBackground {
		b = bg
	}
	if c.Attrs.Reverse {
		f, b = b, f
	}
	if c.Attrs.Cursor {
		return f
	}
	return b
}

// flushSelection applies a luminance-blended highlight rectangle over
// the active selection's bounding span, per spec.md §4.5's
// selection-highlight overlay.
func (d *Display) flushSelection(sink InstructionSink, sel Selection, layer int) error {
	startRow, startCol, endRow, endCol := sel.Normalized()
	for r := startRow; r <= endRow; r++ {
		sc, ec := 0, d.cols
		if r == startRow {
			sc = startCol
		}
		if r == endRow {
			ec = endCol
		}
		if ec <= sc {
			continue
		}
		if err := sink.Shade(layer, sc, r, ec-sc, 1, 96); err != nil {
			return err
		}
	}
	return nil
}
