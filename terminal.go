package vtcore

import (
	"sync"
)

// Mode is a bitmask of terminal modes toggled by CSI ?h / CSI ?l and
// their non-DEC-private counterparts (CSI h / CSI l).
type Mode uint32

const (
	ModeAutoWrap Mode = 1 << iota
	ModeOriginMode
	ModeInsert
	ModeCursorKeysApp
	ModeAlternateScreen
	ModeMouseReportPress
	ModeMouseReportAny
	ModeMouseSGR
	ModeBracketedPaste
	ModeReverseVideo
	// ModeAutoCarriageReturn makes LF/VT/FF also perform a carriage
	// return, matching spec.md §4.3's "automatic_carriage_return"
	// behavior; enabled by default.
	ModeAutoCarriageReturn
)

// ScrollRegion is the DECSTBM top/bottom scroll margin, inclusive,
// zero-based against the visible screen.
type ScrollRegion struct {
	Top, Bottom int
}

// Terminal is the full emulator core described in spec.md §3/§4.4: VT100
// state machine, primary and alternate screen buffers, cursor, scroll
// region, tab stops, selection, and the optional recording sink, all
// guarded by a single mutex per the concurrency model in §5.
type Terminal struct {
	mu sync.Mutex

	rows, cols int
	scrollback int

	primary     *Buffer
	alternate   *Buffer
	active      *Buffer
	usingAlt    bool
	savedAlt    SavedCursor

	cursor      Cursor
	savedCursor SavedCursor

	region       ScrollRegion
	mode         Mode
	tabs         []bool
	scrollOffset int

	palette    *Palette
	foreground Color
	background Color

	parser parser

	selection Selection

	modified chan struct{}

	responder ResponseProvider
	bell      BellProvider
	title     TitleProvider
	clipboard ClipboardProvider
	recorder  RecordingProvider
	log       Logger

	display *Display

	pipeProvider PipeProvider
	pipes        map[string]PipeStream

	schemeAtInit string
}

// Option configures a Terminal at construction time, following the
// functional-options idiom the teacher uses throughout its constructor.
type Option func(*Terminal)

// WithSize sets the initial visible screen geometry.
func WithSize(rows, cols int) Option {
	return func(t *Terminal) {
		t.rows = rows
		t.cols = cols
	}
}

// WithScrollback sets the scrollback row capacity.
func WithScrollback(n int) Option {
	return func(t *Terminal) { t.scrollback = n }
}

// WithLogger installs a structured logger; defaults to a no-op logger.
func WithLogger(log Logger) Option {
	return func(t *Terminal) { t.log = log }
}

// WithResponse installs the sink that receives terminal-generated
// responses (DA/DSR replies, OSC queries).
func WithResponse(p ResponseProvider) Option {
	return func(t *Terminal) { t.responder = p }
}

// WithBell installs the bell notification sink.
func WithBell(p BellProvider) Option {
	return func(t *Terminal) { t.bell = p }
}

// WithTitle installs the window/icon title sink.
func WithTitle(p TitleProvider) Option {
	return func(t *Terminal) { t.title = p }
}

// WithClipboard installs the OSC 52 clipboard sink.
func WithClipboard(p ClipboardProvider) Option {
	return func(t *Terminal) { t.clipboard = p }
}

// WithRecording installs the typescript recording sink.
func WithRecording(p RecordingProvider) Option {
	return func(t *Terminal) { t.recorder = p }
}

// WithPipeProvider installs the sink backing OSC named pipe streams.
func WithPipeProvider(p PipeProvider) Option {
	return func(t *Terminal) { t.pipeProvider = p }
}

// WithColorScheme applies a parsed color-scheme spec at construction.
func WithColorScheme(scheme string) Option {
	return func(t *Terminal) { t.schemeAtInit = scheme }
}

// New constructs a Terminal ready to receive output bytes via
// FeedOutput. Default geometry is 24x80 with 1000 rows of scrollback.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		rows:       24,
		cols:       80,
		scrollback: 1000,
		log:        NewNopLogger(),
		responder:  NoopResponseProvider{},
		bell:       NoopBellProvider{},
		title:      NoopTitleProvider{},
		clipboard:  NoopClipboardProvider{},
		recorder:     NoopRecordingProvider{},
		pipeProvider: NoopPipeProvider{},
		modified:     make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(t)
	}

	t.foreground, t.background, t.palette = ParseColorScheme(t.log, t.schemeAtInit)
	t.primary = NewBuffer(t.rows, t.cols, t.scrollback, t.log)
	t.alternate = NewBuffer(t.rows, t.cols, 0, t.log)
	t.active = t.primary
	t.cursor = NewCursor()
	t.cursor.Template.Attrs.Foreground = t.foreground
	t.cursor.Template.Attrs.Background = t.background
	t.region = ScrollRegion{Top: 0, Bottom: t.rows - 1}
	t.mode = ModeAutoWrap | ModeAutoCarriageReturn
	t.resetTabs()
	t.parser = newParser(t)
	t.display = NewDisplay(t.rows, t.cols)

	return t
}

func (t *Terminal) resetTabs() {
	t.tabs = make([]bool, t.cols)
	for i := 0; i < len(t.tabs); i += 8 {
		t.tabs[i] = true
	}
}

// markModified signals the render goroutine that new content is ready,
// using a capacity-1 channel as a non-blocking condition variable.
func (t *Terminal) markModified() {
	select {
	case t.modified <- struct{}{}:
	default:
	}
}

// Modified returns the channel the render loop selects on; receiving
// from it (non-blocking due to capacity 1) indicates the terminal state
// changed since the last receive.
func (t *Terminal) Modified() <-chan struct{} {
	return t.modified
}

// FeedOutput feeds a chunk of PTY output through the character-stream
// state machine. Safe to call from a single PTY-reader goroutine; the
// internal mutex still guards against concurrent RenderFrame/SendKey
// calls from other goroutines.
func (t *Terminal) FeedOutput(data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, b := range data {
		t.parser.step(b)
	}
	t.recorder.Write(data)
	t.markModified()
}

// Resize changes the visible screen geometry, preserving content
// anchored at the top-left per spec.md §4.4.
func (t *Terminal) Resize(rows, cols int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = rows
	t.cols = cols
	t.primary.Resize(rows, cols)
	t.alternate.Resize(rows, cols)
	if t.cursor.Row >= rows {
		t.cursor.Row = rows - 1
	}
	if t.cursor.Col >= cols {
		t.cursor.Col = cols - 1
	}
	t.region = ScrollRegion{Top: 0, Bottom: rows - 1}
	t.resetTabs()
	t.display.Resize(rows, cols)
	t.markModified()
}

// SetScrollbackSize records a new scrollback row count. The primary
// buffer's capacity is fixed when the Terminal is constructed, so this
// call neither discards existing scrollback rows nor makes room for
// more.
func (t *Terminal) SetScrollbackSize(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scrollback = n
}

// ApplyColorScheme re-parses and applies a new color-scheme spec,
// re-deriving the default foreground/background and palette.
func (t *Terminal) ApplyColorScheme(scheme string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.foreground, t.background, t.palette = ParseColorScheme(t.log, scheme)
	t.markModified()
}

// SetCursorVisible toggles whether the cursor is rendered.
func (t *Terminal) SetCursorVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Visible = visible
	t.markModified()
}

// StartTypescript begins recording output to the given path prefix; see
// typescript.go for the on-disk format.
func (t *Terminal) StartTypescript(path, name string, createPath bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, err := NewTypescriptRecorder(path, name, createPath, t.log)
	if err != nil {
		return err
	}
	t.recorder = rec
	return nil
}

// RenderFrame drains the pending display diff and writes it to sink as a
// sequence of wire instructions, per spec.md §4.5.
func (t *Terminal) RenderFrame(sink InstructionSink) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.display.Flush(sink, t.active, t.cursor, t.selection, t.palette, t.foreground, t.background)
}

// cellTemplate returns the current pen attributes cursor writes inherit.
func (t *Terminal) cellTemplate() CellTemplate {
	return t.cursor.Template
}
