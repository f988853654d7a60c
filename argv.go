package vtcore

// ArgvMaxSize bounds a single named-parameter stream at 4096 bytes, per
// spec.md §6's "argv" side-channel limit.
const ArgvMaxSize = 4096

// argvAllowedNames lists the only parameter names a running program may
// reconfigure post-connection via the argv side-channel (VNC-style
// dynamic credential prompts).
var argvAllowedNames = map[string]bool{
	"username": true,
	"password": true,
}

// ArgvStream accumulates a single bounded named-parameter value sent
// over the argv side-channel. One stream may be open per name at a
// time; a second open before Close is a stream conflict.
type ArgvStream struct {
	name string
	buf  []byte
}

// ArgvRegistry tracks in-flight argv streams for one terminal session
// and dispatches completed values to a callback.
type ArgvRegistry struct {
	open    map[string]*ArgvStream
	onValue func(name string, value []byte)
	log     Logger
}

// NewArgvRegistry constructs a registry that calls onValue with each
// completed parameter's name and bytes.
func NewArgvRegistry(onValue func(name string, value []byte), log Logger) *ArgvRegistry {
	if log == nil {
		log = NewNopLogger()
	}
	return &ArgvRegistry{
		open:    map[string]*ArgvStream{},
		onValue: onValue,
		log:     log,
	}
}

// Open begins a new argv stream for name. Returns ErrStreamConflict if
// one is already open for that name, or a TerminalError wrapping
// ErrInvalidArgument (mapped by the caller to AckClientForbidden) if
// name isn't in argvAllowedNames.
func (r *ArgvRegistry) Open(name string) error {
	if !argvAllowedNames[name] {
		return newError(ErrInvalidArgument, "argv name not permitted: "+name, nil)
	}
	if _, exists := r.open[name]; exists {
		return newError(ErrStreamConflict, "argv stream already open: "+name, nil)
	}
	r.open[name] = &ArgvStream{name: name}
	return nil
}

// Append adds data to an open argv stream, refusing writes that would
// exceed ArgvMaxSize.
func (r *ArgvRegistry) Append(name string, data []byte) error {
	s, ok := r.open[name]
	if !ok {
		return newError(ErrInvalidArgument, "argv stream not open: "+name, nil)
	}
	if len(s.buf)+len(data) > ArgvMaxSize {
		delete(r.open, name)
		return newError(ErrResourceExhaustion, "argv stream exceeded size limit: "+name, nil)
	}
	s.buf = append(s.buf, data...)
	return nil
}

// Close finalizes an open argv stream, invoking onValue with the
// accumulated bytes.
func (r *ArgvRegistry) Close(name string) error {
	s, ok := r.open[name]
	if !ok {
		return newError(ErrInvalidArgument, "argv stream not open: "+name, nil)
	}
	delete(r.open, name)
	if r.onValue != nil {
		r.onValue(name, s.buf)
	}
	return nil
}
