package vtcore

// Scrollbar geometry constants, grounded on
// original_source/src/terminal/scrollbar.h.
const (
	ScrollbarWidth     = 16
	ScrollbarPadding   = 2
	ScrollbarMinHeight = 64
)

// scrollbarGeometry holds the handle position and size for the current
// scroll position, in cell-row units; no pixel heights are involved
// (callers translate rows to pixels using whatever font metrics they
// render with).
type scrollbarGeometry struct {
	TrackHeight  int
	HandleHeight int
	HandleOffset int
}

// computeScrollbar derives handle geometry from total rows (visible +
// scrollback) and the current scroll offset, using cell rows as the
// unit so it composes with any pixel-per-row font metric the caller
// applies afterward.
func computeScrollbar(totalRows, visibleRows, scrollOffset int) scrollbarGeometry {
	if totalRows <= 0 || visibleRows <= 0 || totalRows <= visibleRows {
		return scrollbarGeometry{}
	}
	trackHeight := totalRows
	handleHeight := visibleRows * trackHeight / totalRows
	if handleHeight < ScrollbarMinHeight && trackHeight >= ScrollbarMinHeight {
		handleHeight = ScrollbarMinHeight
	}
	maxOffset := totalRows - visibleRows
	var handleOffset int
	if maxOffset > 0 {
		handleOffset = scrollOffset * (trackHeight - handleHeight) / maxOffset
	}
	return scrollbarGeometry{
		TrackHeight:  trackHeight,
		HandleHeight: handleHeight,
		HandleOffset: handleOffset,
	}
}

// scrollbarColumn returns the column index the scrollbar occupies when
// rendered as the rightmost ScrollbarWidth-worth of cells; cell-unit
// approximation of the pixel-space track used by a real renderer.
func (t *Terminal) scrollbarColumn() int {
	return t.cols - 1
}

// scrollbarHit reports whether a mouse event falls within the
// scrollbar's hit region. Scrollbar hit-testing always takes precedence
// over selection handling, per original_source/src/protocols/ssh/click.c.
func (t *Terminal) scrollbarHit(ev MouseEvent) bool {
	if t.active.ScrollbackLen() == 0 {
		return false
	}
	return ev.Col == t.scrollbarColumn()
}

// handleScrollbarDrag translates a scrollbar-region mouse event into a
// scroll-offset change, scaled against the full scrollback depth.
func (t *Terminal) handleScrollbarDrag(ev MouseEvent) {
	total := t.active.ScrollbackLen() + t.rows
	if total <= t.rows {
		return
	}
	maxOffset := total - t.rows
	offset := ev.Row * maxOffset / t.rows
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	t.scrollOffset = offset
}
