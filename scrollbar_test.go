package vtcore

import "testing"

func TestComputeScrollbarNoScrollbackIsEmpty(t *testing.T) {
	g := computeScrollbar(24, 24, 0)
	if g.TrackHeight != 0 {
		t.Fatalf("expected empty geometry when content fits on screen, got %+v", g)
	}
}

func TestComputeScrollbarHandleShrinksWithMoreHistory(t *testing.T) {
	small := computeScrollbar(100, 24, 0)
	big := computeScrollbar(1000, 24, 0)
	if big.HandleHeight > small.HandleHeight {
		t.Fatalf("handle should shrink as history grows: small=%+v big=%+v", small, big)
	}
}

func TestComputeScrollbarMinHeightFloor(t *testing.T) {
	g := computeScrollbar(100000, 24, 0)
	if g.HandleHeight < ScrollbarMinHeight {
		t.Fatalf("HandleHeight = %d, want >= %d", g.HandleHeight, ScrollbarMinHeight)
	}
}

func TestScrollbarHitTakesPrecedenceOverSelection(t *testing.T) {
	term := New(WithSize(5, 10))
	term.active.ScrollUp(5) // create scrollback so the scrollbar is live

	ev := MouseEvent{Row: 2, Col: term.scrollbarColumn(), Button: MouseButtonLeft, Pressed: true, Clicks: 1}
	term.SendMouse(ev)

	if term.selection.Active {
		t.Fatalf("scrollbar drag should not start a text selection")
	}
}
