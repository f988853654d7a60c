package vtcore

// CompositeOp selects the pixel-combining rule for a CFill/Copy
// instruction, mirroring the two operators spec.md §6 names.
type CompositeOp int

const (
	// OpSrc replaces the destination outright.
	OpSrc CompositeOp = iota
	// OpOver composites the source over the destination using its alpha.
	OpOver
)

// InstructionSink is the wire-protocol boundary spec.md §6 describes: an
// opaque receiver of terminal display instructions. A connected user,
// a test harness, or a recording sink can all implement it.
type InstructionSink interface {
	// Size announces the display's pixel dimensions.
	Size(width, height int) error
	// Rect selects a rectangle on a layer as the area the following
	// CFill paints.
	Rect(layer, x, y, w, h int) error
	// CFill paints the currently clipped rectangle with a flat color.
	CFill(op CompositeOp, layer int, c Color) error
	// Copy blits a rectangle from one layer to another.
	Copy(op CompositeOp, srcLayer, sx, sy, w, h, dstLayer, dx, dy int) error
	// Move repositions a layer without copying pixel data.
	Move(layer, x, y int) error
	// Shade applies a selection-highlight luminance blend to a rectangle.
	Shade(layer, x, y, w, h int, alpha uint8) error
	// Cursor positions the visible text cursor.
	Cursor(x, y int, visible bool) error
	// Pipe opens or writes to a named side-channel stream.
	Pipe(name string, data []byte) error
	// Blob transmits raw image/glyph data associated with a stream name.
	Blob(name string, data []byte) error
	// End closes a named stream.
	End(name string) error
	// Name assigns a human-readable title to the session.
	Name(title string) error
	// Sync marks the end of a coalesced frame at the given timestamp
	// (milliseconds since an arbitrary epoch chosen by the caller).
	Sync(timestampMs int64) error
	// Ack acknowledges a client-originated request, carrying a status
	// code and message (e.g. AckClientForbidden, AckResourceConflict).
	Ack(streamName string, code int, message string) error
}

// Ack status codes spec.md §6/§7 names explicitly.
const (
	AckSuccess          = 0
	AckClientForbidden  = 0x0107
	AckResourceConflict = 0x0201
)
