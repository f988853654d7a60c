package vtcore

// Buffer is the scrollback-capable ring of rows described in spec.md
// §4.2: a fixed-capacity circular array of *Row, indexed by a logical
// row number that callers never need to translate themselves.
//
// Row 0 is always the topmost visible row of the active screen. Negative
// indices address scrollback history above the visible screen; the
// valid logical range at any moment is [-ScrollbackLen, Rows-1].
type Buffer struct {
	ring     []*Row
	top      int // index into ring of logical scrollback-top row
	length   int // number of rows currently populated (<= capacity)
	capacity int // scrollback rows + visible rows
	cols     int
	rows     int // number of visible screen rows
	log      Logger
}

// NewBuffer allocates a buffer with the given visible screen size and
// scrollback capacity (number of extra rows kept above the screen).
func NewBuffer(rows, cols, scrollback int, log Logger) *Buffer {
	if log == nil {
		log = NewNopLogger()
	}
	capacity := rows + scrollback
	b := &Buffer{
		ring:     make([]*Row, capacity),
		capacity: capacity,
		rows:     rows,
		cols:     cols,
		log:      log,
	}
	for i := 0; i < rows; i++ {
		b.ring[i] = NewRow(cols)
	}
	b.length = rows
	return b
}

// ScrollbackLen returns the number of history rows currently stored
// above the visible screen.
func (b *Buffer) ScrollbackLen() int {
	return b.length - b.rows
}

// Rows returns the number of visible screen rows.
func (b *Buffer) Rows() int { return b.rows }

// Cols returns the configured column count for newly allocated rows.
func (b *Buffer) Cols() int { return b.cols }

// ringIndex translates a logical row index (0 = top of visible screen,
// negative = scrollback) into a physical ring slot.
func (b *Buffer) ringIndex(logical int) (int, bool) {
	offset := logical + b.ScrollbackLen()
	if offset < 0 || offset >= b.length {
		return 0, false
	}
	idx := (b.top + offset) % b.capacity
	return idx, true
}

// GetRow returns the row at the given logical index, or nil if the index
// is outside the currently populated range (ErrBufferBounds territory;
// callers treat nil as a no-op rather than panicking).
func (b *Buffer) GetRow(logical int) *Row {
	idx, ok := b.ringIndex(logical)
	if !ok {
		b.log.Debug("row index out of bounds", "logical", logical)
		return nil
	}
	return b.ring[idx]
}

// EffectiveLength returns the trailing column count that contains
// non-blank content for the given logical row, used by the display
// differ to skip diffing dead trailing space. Returns 0 for an absent
// row.
func (b *Buffer) EffectiveLength(logical int) int {
	row := b.GetRow(logical)
	if row == nil {
		return 0
	}
	for i := len(row.Cells) - 1; i >= 0; i-- {
		if !row.Cells[i].IsBlank() {
			return i + 1
		}
	}
	return 0
}

// GetColumns reads a span of cells [startCol, endCol) from the given
// logical row into dst, returning the number of cells copied. Missing
// rows or out-of-range spans yield a short (possibly zero-length) copy.
func (b *Buffer) GetColumns(logical, startCol, endCol int, dst []Cell) int {
	row := b.GetRow(logical)
	if row == nil {
		return 0
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol > len(row.Cells) {
		endCol = len(row.Cells)
	}
	if endCol <= startCol {
		return 0
	}
	n := copy(dst, row.Cells[startCol:endCol])
	return n
}

// SetColumns writes src into the given logical row starting at startCol,
// breaking any continuation cells at either edge of the write span so
// the continuation invariant documented on Cell is never violated.
func (b *Buffer) SetColumns(logical, startCol int, src []Cell) {
	row := b.GetRow(logical)
	if row == nil {
		return
	}
	if startCol < 0 {
		src = src[-startCol:]
		startCol = 0
	}
	endCol := startCol + len(src)
	row.EnsureWidth(endCol)

	row.forceBreak(startCol)
	row.breakOwner(startCol)
	if endCol < len(row.Cells) {
		row.forceBreak(endCol)
		row.breakOwner(endCol)
	}

	for i, c := range src {
		col := startCol + i
		if col >= len(row.Cells) {
			break
		}
		row.Cells[col] = c
	}
}

// CopyColumns copies a span of columns within a single logical row,
// respecting overlap (safe for both leftward and rightward shifts), and
// re-breaks the continuation invariant at both written edges.
func (b *Buffer) CopyColumns(logical, srcStart, dstStart, n int) {
	row := b.GetRow(logical)
	if row == nil {
		return
	}
	row.EnsureWidth(srcStart + n)
	row.EnsureWidth(dstStart + n)

	row.forceBreak(dstStart)
	row.breakOwner(dstStart)
	end := dstStart + n
	if end < len(row.Cells) {
		row.forceBreak(end)
		row.breakOwner(end)
	}

	buf := make([]Cell, n)
	copy(buf, row.Cells[srcStart:srcStart+n])
	copy(row.Cells[dstStart:dstStart+n], buf)
}

// CopyRows copies n whole rows starting at logical index srcStart to
// logical index dstStart, used by scroll-region-aware scrolling (DECSTBM)
// where a block of rows moves without going through the scrollback push
// that ScrollUp performs for the full-screen case.
func (b *Buffer) CopyRows(srcStart, dstStart, n int) {
	srcIdx := make([]int, n)
	for i := 0; i < n; i++ {
		idx, ok := b.ringIndex(srcStart + i)
		if !ok {
			return
		}
		srcIdx[i] = idx
	}
	rows := make([]*Row, n)
	for i, idx := range srcIdx {
		src := b.ring[idx]
		dup := &Row{Cells: append([]Cell(nil), src.Cells...), Wrapped: src.Wrapped}
		rows[i] = dup
	}
	for i := 0; i < n; i++ {
		dstIdx, ok := b.ringIndex(dstStart + i)
		if !ok {
			return
		}
		b.ring[dstIdx] = rows[i]
	}
}

// ClearRows resets n rows starting at logical index start to blank.
func (b *Buffer) ClearRows(start, n int) {
	for i := 0; i < n; i++ {
		row := b.GetRow(start + i)
		if row == nil {
			continue
		}
		row.Clear()
	}
}

// ScrollUp moves the visible screen's top row into scrollback and
// appends a fresh blank row at the bottom of the screen, growing the
// ring (overwriting the oldest scrollback row once capacity is reached)
// exactly as spec.md §4.2 describes for full-buffer scroll.
func (b *Buffer) ScrollUp(n int) {
	for i := 0; i < n; i++ {
		fresh := NewRow(b.cols)
		if b.length < b.capacity {
			idx := (b.top + b.length) % b.capacity
			b.ring[idx] = fresh
			b.length++
		} else {
			b.ring[b.top] = fresh
			b.top = (b.top + 1) % b.capacity
		}
	}
}

// ScrollDown reverses ScrollUp by n rows, pulling rows back out of
// scrollback into the visible screen. It is a no-op past the available
// scrollback depth.
func (b *Buffer) ScrollDown(n int) {
	avail := b.ScrollbackLen()
	if n > avail {
		n = avail
	}
	for i := 0; i < n; i++ {
		if b.length <= b.rows {
			return
		}
		b.length--
	}
}

// Resize changes the visible screen dimensions, preserving content
// anchored at the top-left corner as spec.md §4.4's Resize operation
// requires. Existing rows are widened or truncated in place; new rows
// are appended blank when growing the row count, and shrinking the row
// count discards rows from the bottom of the screen (nothing is moved
// into or pulled back from scrollback).
func (b *Buffer) Resize(rows, cols int) {
	b.cols = cols
	for i := 0; i < b.length; i++ {
		idx := (b.top + i) % b.capacity
		row := b.ring[idx]
		if row == nil {
			continue
		}
		if cols > len(row.Cells) {
			row.EnsureWidth(cols)
		} else {
			row.Truncate(cols)
		}
	}

	if rows > b.rows {
		for i := b.rows; i < rows; i++ {
			if b.length >= b.capacity {
				b.capacity++
				grown := make([]*Row, b.capacity)
				for j := 0; j < b.length; j++ {
					grown[j] = b.ring[(b.top+j)%(b.capacity-1)]
				}
				b.ring = grown
				b.top = 0
			}
			idx := (b.top + b.length) % b.capacity
			b.ring[idx] = NewRow(cols)
			b.length++
		}
	} else if rows < b.rows {
		delta := b.rows - rows
		b.length -= delta
	}
	b.rows = rows
}
