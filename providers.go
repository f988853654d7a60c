package vtcore

// The provider interfaces below let a host application observe
// terminal-generated side effects (responses, bell, title changes,
// clipboard access, recording) without the core depending on any
// particular transport. Each has a Noop default so callers only supply
// the ones they care about, mirroring the teacher's provider pattern.

// ResponseProvider receives bytes the terminal itself generates: DA/DSR
// replies, OSC query answers, and the like, which must be written back
// to the PTY input side rather than rendered.
type ResponseProvider interface {
	Respond(data []byte)
}

// NoopResponseProvider discards responses.
type NoopResponseProvider struct{}

func (NoopResponseProvider) Respond(data []byte) {}

// BellProvider is notified when BEL (0x07) is received.
type BellProvider interface {
	Bell()
}

// NoopBellProvider ignores bell notifications.
type NoopBellProvider struct{}

func (NoopBellProvider) Bell() {}

// TitleProvider is notified when OSC 0/1/2 sets the window or icon
// title.
type TitleProvider interface {
	SetTitle(title string)
}

// NoopTitleProvider ignores title changes.
type NoopTitleProvider struct{}

func (NoopTitleProvider) SetTitle(title string) {}

// ClipboardProvider backs OSC 52 clipboard read/write requests.
type ClipboardProvider interface {
	CopyToClipboard(data []byte)
	ReadClipboard() []byte
}

// NoopClipboardProvider ignores writes and returns nothing on reads.
type NoopClipboardProvider struct{}

func (NoopClipboardProvider) CopyToClipboard(data []byte) {}
func (NoopClipboardProvider) ReadClipboard() []byte        { return nil }

// RecordingProvider receives a copy of every byte fed into the
// terminal's state machine, for typescript-style session recording.
type RecordingProvider interface {
	Write(data []byte)
	Close() error
}

// NoopRecordingProvider discards everything.
type NoopRecordingProvider struct{}

func (NoopRecordingProvider) Write(data []byte) {}
func (NoopRecordingProvider) Close() error       { return nil }

// PipeProvider backs OSC 482202-style named pipe streams opened by the
// running program (file download/upload redirection), keyed by stream
// name so a second open of the same name before Close is a stream
// conflict per spec.md §7.
type PipeProvider interface {
	OpenPipe(name string) (PipeStream, error)
}

// PipeStream is a single named data channel opened through PipeProvider.
type PipeStream interface {
	Write(data []byte) error
	Close() error
}

// NoopPipeProvider refuses every pipe open.
type NoopPipeProvider struct{}

func (NoopPipeProvider) OpenPipe(name string) (PipeStream, error) {
	return nil, newError(ErrStreamConflict, "no pipe provider installed", nil)
}
