// Package vtcore implements the terminal emulator core for a
// remote-desktop gateway: a VT100/ANSI character-stream state machine,
// a scrollback-capable buffer model, and a display differ that
// coalesces screen changes into a wire-ready instruction stream.
//
// The package is organized the way the emulator's own data flows:
// bytes arrive through Terminal.FeedOutput, are interpreted by the
// parser in charhandler.go against the Buffer/Row/Cell model in
// buffer.go, row.go, and cell.go, and are exposed to a caller as
// diffed instructions via Terminal.RenderFrame and the InstructionSink
// interface in instructions.go. Key and mouse input travel the
// opposite direction through keys.go and mouse.go.
//
// A Terminal is constructed with New and a set of Options, and is safe
// for concurrent use: FeedOutput, SendKey, SendMouse, Resize, and
// RenderFrame may be called from different goroutines, all serialized
// by the Terminal's internal mutex. Session in session.go wires a
// Terminal to a PTY-like io.Reader and one or more InstructionSink
// implementations using golang.org/x/sync/errgroup, for callers that
// want the standard three-goroutine (reader, render, input) topology
// rather than driving the Terminal directly.
package vtcore
