package vtcore

import (
	"strconv"
	"unicode/utf8"
)

// parserState names the state machine's current mode, replacing the
// original's function-pointer char_handler dispatch with a single
// integer switched on in step. Every per-state accumulator below is a
// field of the one parser instance a Terminal owns, never a package-
// level static.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCEscape
	stateG0Charset
	stateG1Charset
	stateCtrlFunc
	stateAPC
	stateAPCEscape
)

// parser is the character-stream state machine described in spec.md
// §4.3: one step(b byte) entry point, one state field, and the small
// set of accumulators each state needs while a sequence is in progress.
type parser struct {
	owner *Terminal

	state parserState

	csiParams  []int
	csiHasArg  bool
	csiPrivate byte // '?' for DEC-private sequences, 0 otherwise
	csiInter   byte

	osc []byte

	utf8Buf  [utf8.UTFMax]byte
	utf8Len  int
	utf8Need int
}

func newParser(owner *Terminal) parser {
	return parser{owner: owner}
}

// step consumes one input byte, advancing the state machine and
// applying any completed operation to the owning Terminal.
func (p *parser) step(b byte) {
	switch p.state {
	case stateGround:
		p.stepGround(b)
	case stateEscape:
		p.stepEscape(b)
	case stateCSI:
		p.stepCSI(b)
	case stateOSC:
		p.stepOSC(b)
	case stateOSCEscape:
		p.stepOSCEscape(b)
	case stateG0Charset:
		p.setCharset(CharsetG0, b)
		p.state = stateGround
	case stateG1Charset:
		p.setCharset(CharsetG1, b)
		p.state = stateGround
	case stateCtrlFunc:
		// The byte after ESC # selects a DEC line function; it is
		// absorbed without effect (the ESC # 8 alignment fill is not
		// performed).
		p.state = stateGround
	case stateAPC:
		if b == 0x07 {
			p.state = stateGround
		} else if b == 0x1b {
			p.state = stateAPCEscape
		}
	case stateAPCEscape:
		if b == '\\' {
			p.state = stateGround
		} else {
			p.state = stateAPC
		}
	}
}

func (p *parser) stepGround(b byte) {
	switch {
	case b == 0x1b:
		p.state = stateEscape
		return
	case b == '\r':
		p.owner.carriageReturn()
		return
	case b == '\n', b == '\v', b == '\f':
		if p.owner.mode&ModeAutoCarriageReturn != 0 {
			p.owner.carriageReturn()
		}
		p.owner.lineFeed()
		return
	case b == '\b':
		p.owner.backspace()
		return
	case b == '\t':
		p.owner.tab()
		return
	case b == 0x07:
		p.owner.bell.Bell()
		return
	case b == 0x0e: // SO
		p.owner.cursor.ActiveG = CharsetG1
		return
	case b == 0x0f: // SI
		p.owner.cursor.ActiveG = CharsetG0
		return
	case b < 0x20:
		return
	}

	p.feedUTF8(b)
}

// feedUTF8 accumulates bytes of a possibly multi-byte UTF-8 sequence,
// emitting '?' immediately on any malformed sequence per
// spec.md §7's ErrInputParse recovery policy (resume at the next byte,
// do not desynchronize the rest of the stream).
func (p *parser) feedUTF8(b byte) {
	if p.utf8Len == 0 {
		n := utf8SeqLen(b)
		if n == 0 {
			p.owner.log.Debug("invalid utf8 lead byte", "byte", b)
			p.owner.putRune('?')
			return
		}
		if n == 1 {
			p.owner.putRune(rune(b))
			return
		}
		p.utf8Buf[0] = b
		p.utf8Len = 1
		p.utf8Need = n
		return
	}

	if b&0xc0 != 0x80 {
		p.owner.log.Debug("invalid utf8 sequence")
		p.owner.putRune('?')
		p.utf8Len, p.utf8Need = 0, 0
		p.feedUTF8(b)
		return
	}

	p.utf8Buf[p.utf8Len] = b
	p.utf8Len++
	if p.utf8Len < p.utf8Need {
		return
	}

	r, size := utf8.DecodeRune(p.utf8Buf[:p.utf8Len])
	if r == utf8.RuneError && size <= 1 {
		p.owner.log.Debug("invalid utf8 sequence")
		p.owner.putRune('?')
	} else {
		p.owner.putRune(r)
	}
	p.utf8Len = 0
	p.utf8Need = 0
}

func utf8SeqLen(b byte) int {
	switch {
	case b&0x80 == 0:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	default:
		return 0
	}
}

func (p *parser) stepEscape(b byte) {
	switch b {
	case '[':
		p.csiParams = p.csiParams[:0]
		p.csiHasArg = false
		p.csiPrivate = 0
		p.csiInter = 0
		p.state = stateCSI
	case ']':
		p.osc = p.osc[:0]
		p.state = stateOSC
	case '(':
		p.state = stateG0Charset
	case ')':
		p.state = stateG1Charset
	case '#':
		p.state = stateCtrlFunc
	case '_', '^', 'P': // APC, PM, DCS: consumed until ST and discarded
		p.state = stateAPC
	case '7':
		p.owner.savedCursor = p.owner.cursor.Save()
		p.state = stateGround
	case '8':
		p.owner.cursor.Restore(p.owner.savedCursor)
		p.state = stateGround
	case 'D':
		p.owner.lineFeed()
		p.state = stateGround
	case 'M':
		p.owner.reverseLineFeed()
		p.state = stateGround
	case 'E':
		p.owner.carriageReturn()
		p.owner.lineFeed()
		p.state = stateGround
	case 'c':
		p.owner.fullReset()
		p.state = stateGround
	default:
		p.state = stateGround
	}
}

func (p *parser) setCharset(idx CharsetIndex, b byte) {
	switch b {
	case '0':
		p.owner.cursor.Charsets[idx] = CharsetDECSpecialGraphics
	default:
		p.owner.cursor.Charsets[idx] = CharsetASCII
	}
}

func (p *parser) stepCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		if !p.csiHasArg {
			p.csiParams = append(p.csiParams, 0)
			p.csiHasArg = true
		}
		last := len(p.csiParams) - 1
		p.csiParams[last] = p.csiParams[last]*10 + int(b-'0')
		return
	case b == ';':
		if !p.csiHasArg {
			p.csiParams = append(p.csiParams, 0)
		}
		p.csiHasArg = false
		return
	case b == '?' || b == '>' || b == '=':
		p.csiPrivate = b
		return
	case b >= 0x20 && b <= 0x2f:
		p.csiInter = b
		return
	case b >= 0x40 && b <= 0x7e:
		p.owner.dispatchCSI(b, p.csiParams, p.csiPrivate)
		p.state = stateGround
		return
	default:
		p.owner.log.Debug("unexpected byte in CSI sequence", "byte", b)
		p.state = stateGround
	}
}

func (p *parser) stepOSC(b byte) {
	switch b {
	case 0x07:
		p.owner.dispatchOSC(p.osc)
		p.state = stateGround
	case 0x1b:
		p.state = stateOSCEscape
	default:
		if len(p.osc) < 8192 {
			p.osc = append(p.osc, b)
		}
	}
}

func (p *parser) stepOSCEscape(b byte) {
	if b == '\\' {
		p.owner.dispatchOSC(p.osc)
	} else {
		p.osc = append(p.osc, 0x1b, b)
	}
	p.state = stateGround
}

// param returns the i'th CSI parameter, or def if absent/zero (the
// common "0 means default" convention for most CSI finals).
func param(params []int, i, def int) int {
	if i >= len(params) || params[i] == 0 {
		return def
	}
	return params[i]
}

// rawParam is like param but does not substitute a default for an
// explicit zero, for the handful of CSI finals (SGR, SM/RM) where 0 is
// a meaningful value.
func rawParam(params []int, i, def int) int {
	if i >= len(params) {
		return def
	}
	return params[i]
}

// --- Terminal-side operations dispatched by the parser ---

func (t *Terminal) putRune(r rune) {
	r = translateGlyph(t.cursor.ActiveCharset(), r)
	width := runeWidth(r)
	if width <= 0 {
		width = 1
	}

	if t.cursor.PendingWrap {
		if row := t.active.GetRow(t.cursor.Row); row != nil {
			row.Wrapped = true
		}
		t.carriageReturn()
		t.lineFeed()
		t.cursor.PendingWrap = false
	}

	if t.cursor.Col+width > t.cols {
		if t.mode&ModeAutoWrap != 0 {
			if row := t.active.GetRow(t.cursor.Row); row != nil {
				row.Wrapped = true
			}
			t.carriageReturn()
			t.lineFeed()
		} else {
			t.cursor.Col = t.cols - width
		}
	}

	cell := Cell{Value: int32(r), Width: uint8(width), Attrs: t.cursor.Template.Attrs}
	cells := []Cell{cell}
	for i := 1; i < width; i++ {
		cells = append(cells, Cell{Value: Continuation, Width: 0, Attrs: t.cursor.Template.Attrs})
	}
	if t.mode&ModeInsert != 0 {
		t.insertChars(width)
	}
	t.active.SetColumns(t.cursor.Row, t.cursor.Col, cells)

	if t.cursor.Col+width >= t.cols {
		t.cursor.Col = t.cols - 1
		t.cursor.PendingWrap = true
	} else {
		t.cursor.Col += width
	}
}

func (t *Terminal) carriageReturn() {
	t.cursor.Col = 0
	t.cursor.PendingWrap = false
}

func (t *Terminal) lineFeed() {
	if t.cursor.Row == t.region.Bottom {
		if t.region.Top == 0 && t.region.Bottom == t.rows-1 {
			t.active.ScrollUp(1)
			return
		}
		t.active.CopyRows(t.region.Top+1, t.region.Top, t.region.Bottom-t.region.Top)
		t.active.ClearRows(t.region.Bottom, 1)
		return
	}
	if t.cursor.Row < t.rows-1 {
		t.cursor.Row++
	}
}

func (t *Terminal) reverseLineFeed() {
	if t.cursor.Row == t.region.Top {
		t.active.CopyRows(t.region.Top, t.region.Top+1, t.region.Bottom-t.region.Top)
		t.active.ClearRows(t.region.Top, 1)
		return
	}
	if t.cursor.Row > 0 {
		t.cursor.Row--
	}
}

func (t *Terminal) backspace() {
	if t.cursor.Col > 0 {
		t.cursor.Col--
	}
	t.cursor.PendingWrap = false
}

func (t *Terminal) tab() {
	for c := t.cursor.Col + 1; c < t.cols; c++ {
		if c < len(t.tabs) && t.tabs[c] {
			t.cursor.Col = c
			return
		}
	}
	t.cursor.Col = t.cols - 1
}

func (t *Terminal) fullReset() {
	t.cursor = NewCursor()
	t.cursor.Template.Attrs.Foreground = t.foreground
	t.cursor.Template.Attrs.Background = t.background
	t.region = ScrollRegion{Top: 0, Bottom: t.rows - 1}
	t.mode = ModeAutoWrap | ModeAutoCarriageReturn
	t.resetTabs()
	t.active.ClearRows(0, t.rows)
}

func (t *Terminal) eraseInDisplay(mode int) {
	switch mode {
	case 0:
		t.eraseInLine(0)
		t.active.ClearRows(t.cursor.Row+1, t.rows-t.cursor.Row-1)
	case 1:
		t.eraseInLine(1)
		t.active.ClearRows(0, t.cursor.Row)
	case 2, 3:
		if mode == 3 {
			t.active.ScrollDown(t.active.ScrollbackLen())
		}
		t.active.ClearRows(0, t.rows)
	}
}

func (t *Terminal) eraseInLine(mode int) {
	row := t.active.GetRow(t.cursor.Row)
	if row == nil {
		return
	}
	blank := NewCell()
	blank.Attrs = t.cursor.Template.Attrs
	switch mode {
	case 0:
		for c := t.cursor.Col; c < len(row.Cells); c++ {
			row.Cells[c] = blank
		}
	case 1:
		for c := 0; c <= t.cursor.Col && c < len(row.Cells); c++ {
			row.Cells[c] = blank
		}
	case 2:
		row.Clear()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (t *Terminal) dispatchCSI(final byte, params []int, private byte) {
	switch final {
	case 'A':
		t.cursor.Row = clamp(t.cursor.Row-param(params, 0, 1), 0, t.rows-1)
	case 'B':
		t.cursor.Row = clamp(t.cursor.Row+param(params, 0, 1), 0, t.rows-1)
	case 'C':
		t.cursor.Col = clamp(t.cursor.Col+param(params, 0, 1), 0, t.cols-1)
	case 'D':
		t.cursor.Col = clamp(t.cursor.Col-param(params, 0, 1), 0, t.cols-1)
	case 'H', 'f':
		t.cursor.Row = clamp(param(params, 0, 1)-1, 0, t.rows-1)
		t.cursor.Col = clamp(param(params, 1, 1)-1, 0, t.cols-1)
		t.cursor.PendingWrap = false
	case 'G':
		t.cursor.Col = clamp(param(params, 0, 1)-1, 0, t.cols-1)
	case 'd':
		t.cursor.Row = clamp(param(params, 0, 1)-1, 0, t.rows-1)
	case 'J':
		t.eraseInDisplay(rawParam(params, 0, 0))
	case 'K':
		t.eraseInLine(rawParam(params, 0, 0))
	case 'L':
		n := param(params, 0, 1)
		t.active.CopyRows(t.cursor.Row, t.cursor.Row+n, t.region.Bottom-t.cursor.Row-n+1)
		t.active.ClearRows(t.cursor.Row, n)
	case 'M':
		n := param(params, 0, 1)
		t.active.CopyRows(t.cursor.Row+n, t.cursor.Row, t.region.Bottom-t.cursor.Row-n+1)
		t.active.ClearRows(t.region.Bottom-n+1, n)
	case 'P':
		t.deleteChars(param(params, 0, 1))
	case '@':
		t.insertChars(param(params, 0, 1))
	case 'X':
		t.eraseChars(param(params, 0, 1))
	case 'S':
		t.active.CopyRows(t.region.Top+param(params, 0, 1), t.region.Top, t.region.Bottom-t.region.Top)
	case 'T':
		t.active.CopyRows(t.region.Top, t.region.Top+param(params, 0, 1), t.region.Bottom-t.region.Top)
	case 'm':
		t.applySGR(params)
	case 'h':
		t.setModes(params, private, true)
	case 'l':
		t.setModes(params, private, false)
	case 'r':
		top := clamp(param(params, 0, 1)-1, 0, t.rows-1)
		bottom := clamp(param(params, 1, t.rows)-1, 0, t.rows-1)
		if top < bottom {
			t.region = ScrollRegion{Top: top, Bottom: bottom}
		}
		t.cursor.Row, t.cursor.Col = 0, 0
	case 's':
		t.savedCursor = t.cursor.Save()
	case 'u':
		t.cursor.Restore(t.savedCursor)
	case 'c':
		if private == '>' {
			t.responder.Respond([]byte("\x1b[>0;0;0c"))
		} else {
			t.responder.Respond([]byte("\x1b[?6c"))
		}
	case 'n':
		if rawParam(params, 0, 0) == 6 {
			seq := "\x1b[" + strconv.Itoa(t.cursor.Row+1) + ";" + strconv.Itoa(t.cursor.Col+1) + "R"
			t.responder.Respond([]byte(seq))
		}
	default:
		t.log.Debug("unhandled CSI final", "final", string(final))
		t.putRune('?')
	}
}

func (t *Terminal) deleteChars(n int) {
	row := t.active.GetRow(t.cursor.Row)
	if row == nil {
		return
	}
	remaining := len(row.Cells) - t.cursor.Col - n
	if remaining > 0 {
		t.active.CopyColumns(t.cursor.Row, t.cursor.Col+n, t.cursor.Col, remaining)
	}
	blanks := make([]Cell, n)
	for i := range blanks {
		blanks[i] = NewCell()
		blanks[i].Attrs = t.cursor.Template.Attrs
	}
	start := len(row.Cells) - n
	if start < t.cursor.Col {
		start = t.cursor.Col
	}
	t.active.SetColumns(t.cursor.Row, start, blanks[:len(row.Cells)-start])
}

func (t *Terminal) insertChars(n int) {
	row := t.active.GetRow(t.cursor.Row)
	if row == nil {
		return
	}
	span := len(row.Cells) - t.cursor.Col - n
	if span > 0 {
		t.active.CopyColumns(t.cursor.Row, t.cursor.Col, t.cursor.Col+n, span)
	}
	blanks := make([]Cell, n)
	for i := range blanks {
		blanks[i] = NewCell()
		blanks[i].Attrs = t.cursor.Template.Attrs
	}
	t.active.SetColumns(t.cursor.Row, t.cursor.Col, blanks)
}

func (t *Terminal) eraseChars(n int) {
	row := t.active.GetRow(t.cursor.Row)
	if row == nil {
		return
	}
	end := t.cursor.Col + n
	if end > len(row.Cells) {
		end = len(row.Cells)
	}
	blank := NewCell()
	blank.Attrs = t.cursor.Template.Attrs
	for c := t.cursor.Col; c < end; c++ {
		row.Cells[c] = blank
	}
}

func (t *Terminal) applySGR(params []int) {
	if len(params) == 0 {
		t.cursor.Template.Attrs = DefaultAttributes()
		return
	}
	a := &t.cursor.Template.Attrs
	for i := 0; i < len(params); i++ {
		code := rawParam(params, i, 0)
		switch {
		case code == 0:
			*a = DefaultAttributes()
		case code == 1:
			a.Bold = true
		case code == 2:
			a.HalfBright = true
		case code == 4:
			a.Underscore = true
		case code == 7:
			a.Reverse = true
		case code == 22:
			a.Bold, a.HalfBright = false, false
		case code == 24:
			a.Underscore = false
		case code == 27:
			a.Reverse = false
		case code >= 30 && code <= 37:
			a.Foreground = t.palette.Get(int(code - 30))
		case code == 38:
			i = t.applyExtendedColor(params, i, &a.Foreground)
		case code == 39:
			a.Foreground = Color{PaletteIndex: ColorForeground}
		case code >= 40 && code <= 47:
			a.Background = t.palette.Get(int(code - 40))
		case code == 48:
			i = t.applyExtendedColor(params, i, &a.Background)
		case code == 49:
			a.Background = Color{PaletteIndex: ColorBackground}
		case code >= 90 && code <= 97:
			a.Foreground = t.palette.Get(int(code-90) + 8)
		case code >= 100 && code <= 107:
			a.Background = t.palette.Get(int(code-100) + 8)
		}
	}
}

// applyExtendedColor parses the 256-color (38/48;5;N) or truecolor
// (38/48;2;R;G;B) SGR extension starting at index i (pointing at the 38
// or 48), returning the index of the last parameter consumed.
func (t *Terminal) applyExtendedColor(params []int, i int, target *Color) int {
	if i+1 >= len(params) {
		return i
	}
	switch rawParam(params, i+1, 0) {
	case 5:
		if i+2 < len(params) {
			*target = t.palette.Get(rawParam(params, i+2, 0))
			return i + 2
		}
	case 2:
		if i+4 < len(params) {
			*target = RGBColor(
				uint8(rawParam(params, i+2, 0)),
				uint8(rawParam(params, i+3, 0)),
				uint8(rawParam(params, i+4, 0)),
			)
			return i + 4
		}
	}
	return i
}

func (t *Terminal) setModes(params []int, private byte, enable bool) {
	for _, code := range params {
		if private == '?' {
			switch code {
			case 1:
				t.setMode(ModeCursorKeysApp, enable)
			case 6:
				t.setMode(ModeOriginMode, enable)
			case 7:
				t.setMode(ModeAutoWrap, enable)
			case 9, 1000:
				t.setMode(ModeMouseReportPress, enable)
			case 1002, 1003:
				t.setMode(ModeMouseReportAny, enable)
			case 1006:
				t.setMode(ModeMouseSGR, enable)
			case 1047, 1049:
				t.switchAlternateScreen(enable)
			case 2004:
				t.setMode(ModeBracketedPaste, enable)
			case 25:
				t.cursor.Visible = enable
			case 5:
				t.setMode(ModeReverseVideo, enable)
			}
		} else {
			switch code {
			case 4:
				t.setMode(ModeInsert, enable)
			}
		}
	}
}

func (t *Terminal) setMode(m Mode, enable bool) {
	if enable {
		t.mode |= m
	} else {
		t.mode &^= m
	}
}

func (t *Terminal) switchAlternateScreen(enable bool) {
	if enable == t.usingAlt {
		return
	}
	if enable {
		t.savedAlt = t.cursor.Save()
		t.active = t.alternate
		t.active.ClearRows(0, t.rows)
		t.usingAlt = true
	} else {
		t.active = t.primary
		t.cursor.Restore(t.savedAlt)
		t.usingAlt = false
	}
	t.mode ^= ModeAlternateScreen
}

func (t *Terminal) dispatchOSC(body []byte) {
	s := string(body)
	semi := -1
	for i, c := range s {
		if c == ';' {
			semi = i
			break
		}
	}
	if semi < 0 {
		return
	}
	code := s[:semi]
	arg := s[semi+1:]

	switch code {
	case "0", "1", "2":
		t.title.SetTitle(arg)
	case "52":
		parts := splitOnce(arg, ';')
		t.clipboard.CopyToClipboard([]byte(parts))
	case "482202":
		name := arg
		if t.pipes == nil {
			t.pipes = map[string]PipeStream{}
		}
		if _, exists := t.pipes[name]; exists {
			t.responder.Respond([]byte("\x1b]482202 conflict\x07"))
			return
		}
		stream, err := t.pipeProvider.OpenPipe(name)
		if err != nil {
			t.log.Warn("pipe open failed", "name", name, "error", err)
			return
		}
		t.pipes[name] = stream
	default:
		t.log.Debug("unhandled OSC", "code", code)
	}
}

func splitOnce(s string, sep byte) string {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[i+1:]
		}
	}
	return s
}
