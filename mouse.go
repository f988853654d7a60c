package vtcore

// MouseButton identifies which button a mouse event concerns.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonWheelUp
	MouseButtonWheelDown
)

// MouseEvent describes a single mouse action in screen cell
// coordinates, as delivered by a remote-desktop client.
type MouseEvent struct {
	Row, Col int
	Button   MouseButton
	Pressed  bool
	Clicks   int // 1=single, 2=double, 3=triple, for selection extension
}

// Selection tracks the current text selection span, in logical buffer
// row/col coordinates (row may be negative, addressing scrollback).
type Selection struct {
	Active             bool
	AnchorRow, AnchorCol int
	HeadRow, HeadCol     int
}

// Normalized returns the selection span ordered so that
// (startRow,startCol) <= (endRow,endCol), suitable for a simple
// top-to-bottom, left-to-right highlight scan.
func (s Selection) Normalized() (startRow, startCol, endRow, endCol int) {
	if s.AnchorRow < s.HeadRow || (s.AnchorRow == s.HeadRow && s.AnchorCol <= s.HeadCol) {
		return s.AnchorRow, s.AnchorCol, s.HeadRow, s.HeadCol
	}
	return s.HeadRow, s.HeadCol, s.AnchorRow, s.AnchorCol
}

// charCategory classifies a rune for double-click word-selection
// extension: ASCII letters, digits and '_' are word characters, space and
// tab are whitespace, and everything else (ASCII punctuation and every
// non-ASCII rune) is categoryOther, which is never extended and so is
// selected as a singleton.
type charCategory int

const (
	categoryOther charCategory = iota
	categoryWord
	categorySpace
)

func categorize(r rune) charCategory {
	switch {
	case r == ' ' || r == '\t':
		return categorySpace
	case (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_':
		return categoryWord
	case r > 127:
		return categoryOther
	default:
		return categoryOther
	}
}

// SendMouse translates a mouse event into either a scrollbar drag, an
// xterm mouse-reporting escape sequence sent to the response provider
// (when mouse reporting is enabled), or a selection update, in that
// precedence order: scrollbar hit-testing always takes priority over
// terminal-content selection, per
// original_source/src/protocols/ssh/click.c.
func (t *Terminal) SendMouse(ev MouseEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.scrollbarHit(ev) {
		t.handleScrollbarDrag(ev)
		t.markModified()
		return
	}

	if t.mode&(ModeMouseReportPress|ModeMouseReportAny) != 0 {
		t.sendMouseReport(ev)
		return
	}

	t.updateSelection(ev)
	t.markModified()
}

func (t *Terminal) updateSelection(ev MouseEvent) {
	switch {
	case ev.Button == MouseButtonLeft && ev.Pressed && ev.Clicks <= 1:
		t.selection = Selection{Active: true, AnchorRow: ev.Row, AnchorCol: ev.Col, HeadRow: ev.Row, HeadCol: ev.Col}
	case ev.Button == MouseButtonLeft && ev.Pressed && ev.Clicks >= 2:
		t.extendSelectionByWord(ev)
	case ev.Button == MouseButtonLeft && !ev.Pressed:
		t.selection.HeadRow, t.selection.HeadCol = ev.Row, ev.Col
	case ev.Button == MouseButtonNone && t.selection.Active:
		t.selection.HeadRow, t.selection.HeadCol = ev.Row, ev.Col
	}
}

// extendSelectionByWord expands the selection to cover the run of
// same-category characters (word, whitespace) around the click point
// for a double-click, or the whole clicked row for a triple-click
// (wrapped continuation rows are not included).
func (t *Terminal) extendSelectionByWord(ev MouseEvent) {
	row := t.active.GetRow(ev.Row)
	if row == nil {
		t.selection = Selection{Active: true, AnchorRow: ev.Row, AnchorCol: ev.Col, HeadRow: ev.Row, HeadCol: ev.Col}
		return
	}
	if ev.Clicks >= 3 {
		t.selection = Selection{Active: true, AnchorRow: ev.Row, AnchorCol: 0, HeadRow: ev.Row, HeadCol: len(row.Cells) - 1}
		return
	}

	cat := categorize(row.At(ev.Col).Rune())
	start, end := ev.Col, ev.Col
	if cat != categoryOther {
		for start > 0 && categorize(row.At(start-1).Rune()) == cat {
			start--
		}
		for end < len(row.Cells)-1 && categorize(row.At(end+1).Rune()) == cat {
			end++
		}
	}
	t.selection = Selection{Active: true, AnchorRow: ev.Row, AnchorCol: start, HeadRow: ev.Row, HeadCol: end}
}

// CopySelection returns the selected text, joining wrapped rows without
// an inserted newline and hard-broken rows with one, and forwards it to
// the clipboard provider.
func (t *Terminal) CopySelection() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.selection.Active {
		return ""
	}
	startRow, startCol, endRow, endCol := t.selection.Normalized()
	var out []rune
	for r := startRow; r <= endRow; r++ {
		row := t.active.GetRow(r)
		if row == nil {
			continue
		}
		sc, ec := 0, len(row.Cells)
		if r == startRow {
			sc = startCol
		}
		if r == endRow {
			ec = endCol + 1
		}
		if ec > len(row.Cells) {
			ec = len(row.Cells)
		}
		for c := sc; c < ec; c++ {
			cell := row.At(c)
			if cell.IsContinuation() {
				continue
			}
			out = append(out, cell.Rune())
		}
		if r != endRow && !row.Wrapped {
			out = append(out, '\n')
		}
	}
	text := string(out)
	t.clipboard.CopyToClipboard([]byte(text))
	return text
}

// PasteClipboard reads from the clipboard provider and returns the
// contents, wrapped in bracketed-paste markers when that mode is active.
// It does not write them to the response provider.
func (t *Terminal) PasteClipboard() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	data := t.clipboard.ReadClipboard()
	if t.mode&ModeBracketedPaste == 0 {
		return data
	}
	out := append([]byte("\x1b[200~"), data...)
	return append(out, []byte("\x1b[201~")...)
}

// sendMouseReport encodes a mouse event as an xterm-compatible CSI
// sequence (SGR encoding, CSI < Cb ; Cx ; Cy M/m) and writes it to the
// response provider.
func (t *Terminal) sendMouseReport(ev MouseEvent) {
	cb := mouseButtonCode(ev.Button)
	final := byte('M')
	if !ev.Pressed {
		final = 'm'
	}
	seq := []byte("\x1b[<")
	seq = appendInt(seq, cb)
	seq = append(seq, ';')
	seq = appendInt(seq, ev.Col+1)
	seq = append(seq, ';')
	seq = appendInt(seq, ev.Row+1)
	seq = append(seq, final)
	t.responder.Respond(seq)
}

func mouseButtonCode(b MouseButton) int {
	switch b {
	case MouseButtonLeft:
		return 0
	case MouseButtonMiddle:
		return 1
	case MouseButtonRight:
		return 2
	case MouseButtonWheelUp:
		return 64
	case MouseButtonWheelDown:
		return 65
	default:
		return 3
	}
}

func appendInt(dst []byte, v int) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		dst = append(dst, '-')
	}
	return append(dst, tmp[i:]...)
}
