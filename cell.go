package vtcore

// Continuation is the special cell value marking a cell occupied by the
// right-hand columns of a multi-column character to its left. It carries no
// value of its own.
const Continuation int32 = -1

// Attributes holds the rendering state applied to a single cell: the flags
// from spec.md's Character cell definition plus the resolved fg/bg colors.
type Attributes struct {
	Bold       bool
	HalfBright bool
	Reverse    bool
	Cursor     bool
	Underscore bool
	Foreground Color
	Background Color
}

// DefaultAttributes returns the attribute set used to clear cells and to
// seed a freshly reset terminal: no flags, default foreground/background.
func DefaultAttributes() Attributes {
	return Attributes{
		Foreground: Color{PaletteIndex: ColorForeground},
		Background: Color{PaletteIndex: ColorBackground},
	}
}

// Cell is a single position in the terminal grid.
//
// Invariant (continuation): for any cell with Width = w > 1, the w-1 cells
// immediately to its right have Value == Continuation. No buffer operation
// may leave a Continuation cell without a width-owner to its left; edge
// breaking (see forceBreak in row.go) enforces this.
type Cell struct {
	Value int32
	Attrs Attributes
	Width uint8
}

// NewCell returns a blank (space) cell with default attributes and width 1.
func NewCell() Cell {
	return Cell{
		Value: ' ',
		Attrs: DefaultAttributes(),
		Width: 1,
	}
}

// IsContinuation reports whether this cell is the tail of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Value == Continuation
}

// IsBlank reports whether the cell's value is a space or zero; its
// attributes are not considered.
func (c Cell) IsBlank() bool {
	return c.Value == ' ' || c.Value == 0
}

// Rune returns the cell's value as a rune, or the replacement space for a
// continuation cell (callers that want raw values should read Value).
func (c Cell) Rune() rune {
	if c.Value <= 0 {
		return ' '
	}
	return rune(c.Value)
}
