package vtcore

// Keysym is an X11 keysym value, the key-identity encoding spec.md §4.4
// specifies for SendKey, matching what remote-desktop clients (VNC/RDP
// gateways) forward for non-printable keys.
type Keysym uint32

// The subset of X11 keysyms this terminal translates; values match the
// standard X11 keysymdef.h assignments.
const (
	KeyBackSpace Keysym = 0xFF08
	KeyTab       Keysym = 0xFF09
	KeyReturn    Keysym = 0xFF0D
	KeyEscape    Keysym = 0xFF1B
	KeyDelete    Keysym = 0xFFFF
	KeyHome      Keysym = 0xFF50
	KeyLeft      Keysym = 0xFF51
	KeyUp        Keysym = 0xFF52
	KeyRight     Keysym = 0xFF53
	KeyDown      Keysym = 0xFF54
	KeyPageUp    Keysym = 0xFF55
	KeyPageDown  Keysym = 0xFF56
	KeyEnd       Keysym = 0xFF57
	KeyInsert    Keysym = 0xFF63
	KeyF1        Keysym = 0xFFBE
	KeyF2        Keysym = 0xFFBF
	KeyF3        Keysym = 0xFFC0
	KeyF4        Keysym = 0xFFC1
	KeyF5        Keysym = 0xFFC2
	KeyF6        Keysym = 0xFFC3
	KeyF7        Keysym = 0xFFC4
	KeyF8        Keysym = 0xFFC5
	KeyF9        Keysym = 0xFFC6
	KeyF10       Keysym = 0xFFC7
	KeyF11       Keysym = 0xFFC8
	KeyF12       Keysym = 0xFFC9
	KeyShiftL    Keysym = 0xFFE1
	KeyShiftR    Keysym = 0xFFE2
	KeyControlL  Keysym = 0xFFE3
	KeyControlR  Keysym = 0xFFE4
	KeyAltL      Keysym = 0xFFE9
	KeyAltR      Keysym = 0xFFEA
)

// KeyEvent is a single key press/release reported by the client.
type KeyEvent struct {
	Sym     Keysym
	Pressed bool
}

var cursorKeyFinals = map[Keysym]byte{
	KeyUp:    'A',
	KeyDown:  'B',
	KeyRight: 'C',
	KeyLeft:  'D',
	KeyHome:  'H',
	KeyEnd:   'F',
}

var namedKeyEscapes = map[Keysym][]byte{
	KeyF1:  []byte("\x1bOP"),
	KeyF2:  []byte("\x1bOQ"),
	KeyF3:  []byte("\x1bOR"),
	KeyF4:  []byte("\x1bOS"),
	KeyF5:  []byte("\x1b[15~"),
	KeyF6:  []byte("\x1b[17~"),
	KeyF7:  []byte("\x1b[18~"),
	KeyF8:  []byte("\x1b[19~"),
	KeyF9:  []byte("\x1b[20~"),
	KeyF10: []byte("\x1b[21~"),
	KeyF11: []byte("\x1b[23~"),
	KeyF12: []byte("\x1b[24~"),
	KeyInsert: []byte("\x1b[2~"),
	KeyDelete: []byte("\x1b[3~"),
	KeyPageUp: []byte("\x1b[5~"),
	KeyPageDown: []byte("\x1b[6~"),
}

// SendKey translates a key event into the byte sequence a real terminal
// would emit and forwards it to the response provider (the caller
// connects that provider to the PTY's input side). Modifier keys
// themselves (shift, control, alt) emit nothing, and no modifier state
// is tracked, so no key is translated with Ctrl, Alt or Shift applied.
func (t *Terminal) SendKey(ev KeyEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev.Sym {
	case KeyShiftL, KeyShiftR, KeyControlL, KeyControlR, KeyAltL, KeyAltR:
		return
	}
	if !ev.Pressed {
		return
	}

	if final, ok := cursorKeyFinals[ev.Sym]; ok {
		prefix := byte('[')
		if t.mode&ModeCursorKeysApp != 0 {
			prefix = 'O'
		}
		t.responder.Respond([]byte{0x1b, prefix, final})
		return
	}

	if seq, ok := namedKeyEscapes[ev.Sym]; ok {
		t.responder.Respond(seq)
		return
	}

	switch ev.Sym {
	case KeyBackSpace:
		t.responder.Respond([]byte{0x7f})
	case KeyTab:
		t.responder.Respond([]byte{'\t'})
	case KeyReturn:
		t.responder.Respond([]byte{'\r'})
	case KeyEscape:
		t.responder.Respond([]byte{0x1b})
	default:
		if ev.Sym >= 0x20 && ev.Sym <= 0x7e {
			t.responder.Respond([]byte{byte(ev.Sym)})
		}
	}
}
