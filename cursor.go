package vtcore

// CharsetIndex selects between the two designated character sets a
// terminal can switch between with SI/SO (Ctrl-O / Ctrl-N).
type CharsetIndex int

const (
	CharsetG0 CharsetIndex = iota
	CharsetG1
)

// Charset identifies which glyph mapping a G0/G1 slot has been
// designated to via an escape sequence like "ESC ( 0" (DEC special
// graphics) or "ESC ( B" (US-ASCII).
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetDECSpecialGraphics
)

// Cursor is the terminal's active drawing position plus the pen state
// (current attributes applied to newly written cells) and the two
// designated character sets.
type Cursor struct {
	Row, Col int
	Visible  bool

	Template CellTemplate

	Charsets   [2]Charset
	ActiveG    CharsetIndex
	PendingWrap bool
}

// CellTemplate holds the attribute state that new characters inherit:
// the pen spec.md §3 describes as part of cursor state, independent of
// the cursor's position.
type CellTemplate struct {
	Attrs Attributes
}

// SavedCursor is the subset of Cursor state preserved by DECSC/restored
// by DECRC (and by the alternate-screen-buffer switch).
type SavedCursor struct {
	Row, Col  int
	Template  CellTemplate
	Charsets  [2]Charset
	ActiveG   CharsetIndex
	Valid     bool
}

// NewCursor returns a cursor at the origin with default attributes, both
// charsets set to ASCII, and visible.
func NewCursor() Cursor {
	return Cursor{
		Visible:  true,
		Template: CellTemplate{Attrs: DefaultAttributes()},
	}
}

// Save captures the cursor's saveable state.
func (c *Cursor) Save() SavedCursor {
	return SavedCursor{
		Row:      c.Row,
		Col:      c.Col,
		Template: c.Template,
		Charsets: c.Charsets,
		ActiveG:  c.ActiveG,
		Valid:    true,
	}
}

// Restore applies a previously saved cursor state, if it was ever saved.
func (c *Cursor) Restore(s SavedCursor) {
	if !s.Valid {
		return
	}
	c.Row = s.Row
	c.Col = s.Col
	c.Template = s.Template
	c.Charsets = s.Charsets
	c.ActiveG = s.ActiveG
	c.PendingWrap = false
}

// ActiveCharset returns the charset currently selected by SI/SO.
func (c *Cursor) ActiveCharset() Charset {
	return c.Charsets[c.ActiveG]
}

// translateGlyph maps an incoming rune through the active charset's
// substitution table. Only DEC special graphics (line-drawing) remaps
// anything; ASCII passes runes through unchanged.
func translateGlyph(cs Charset, r rune) rune {
	if cs != CharsetDECSpecialGraphics {
		return r
	}
	if mapped, ok := decSpecialGraphics[r]; ok {
		return mapped
	}
	return r
}

// decSpecialGraphics is the DEC special graphics / line-drawing charset
// substitution table for the 0x60-0x7e range, mapping ASCII source bytes
// to the box-drawing and symbol glyphs xterm's "ESC ( 0" designates.
var decSpecialGraphics = map[rune]rune{
	'`': '◆', // diamond
	'a': '▒', // checkerboard
	'b': '␉', // HT symbol
	'c': '␌', // FF symbol
	'd': '␍', // CR symbol
	'e': '␊', // LF symbol
	'f': '°', // degree
	'g': '±', // plus/minus
	'h': '␤', // NL symbol
	'i': '␋', // VT symbol
	'j': '┘', // bottom-right corner
	'k': '┐', // top-right corner
	'l': '┌', // top-left corner
	'm': '└', // bottom-left corner
	'n': '┼', // crossing lines
	'o': '⎺', // scan line 1
	'p': '⎻', // scan line 3
	'q': '─', // horizontal line
	'r': '⎼', // scan line 7
	's': '⎽', // scan line 9
	't': '├', // left tee
	'u': '┤', // right tee
	'v': '┴', // bottom tee
	'w': '┬', // top tee
	'x': '│', // vertical line
	'y': '≤', // less than or equal
	'z': '≥', // greater than or equal
	'{': 'π', // pi
	'|': '≠', // not equal
	'}': '£', // pound sterling
	'~': '·', // centered dot
}
