package vtcore

import (
	"context"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// FrameDuration is the period of the render loop's ticker. Frames are
// flushed each time the Terminal signals a modification; the ticker
// neither delays nor batches those flushes.
const FrameDuration = 40 * time.Millisecond

// FrameQuiescence is a quiet-period length that the render loop does not
// use: it never waits for output to go quiet before flushing.
const FrameQuiescence = 10 * time.Millisecond

// Session orchestrates the three concurrent roles spec.md §5 describes
// around a Terminal: a PTY-reader goroutine feeding FeedOutput, a
// render-cadence goroutine flushing frames to one or more sinks, and
// (via SendKey/SendMouse, called directly by the caller's own per-user
// goroutines) the input side. A fatal error from the PTY reader or any
// sink cancels the whole group, matching the propagation policy in
// spec.md §7.
type Session struct {
	Terminal *Terminal
	Source   io.Reader
	Sinks    []InstructionSink
	Log      Logger
}

// NewSession wires a Terminal to a PTY-like byte source and one or more
// wire-protocol sinks.
func NewSession(t *Terminal, source io.Reader, sinks ...InstructionSink) *Session {
	return &Session{Terminal: t, Source: source, Sinks: sinks, Log: t.log}
}

// Run blocks until ctx is canceled or a fatal error occurs in either the
// reader or render goroutine, returning that error (context.Canceled is
// not itself treated as an error by callers that canceled ctx
// themselves).
func (s *Session) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.readLoop(ctx)
	})

	g.Go(func() error {
		return s.renderLoop(ctx)
	})

	return g.Wait()
}

func (s *Session) readLoop(ctx context.Context) error {
	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := s.Source.Read(buf)
		if n > 0 {
			s.Terminal.FeedOutput(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return newError(ErrUpstreamFailure, "PTY read failed", err)
		}
	}
}

func (s *Session) renderLoop(ctx context.Context) error {
	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Terminal.Modified():
			if err := s.flush(); err != nil {
				return err
			}
		case <-ticker.C:
		}
	}
}

func (s *Session) flush() error {
	for _, sink := range s.Sinks {
		if err := s.Terminal.RenderFrame(sink); err != nil {
			s.Log.Warn("render frame failed", "error", err)
			return newError(ErrUpstreamFailure, "render frame failed", err)
		}
	}
	return nil
}
