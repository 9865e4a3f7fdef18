package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that drops everything written to it.
var Discard WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher creates a new flushable writer: in-memory buffers and the
// discard writer get a noop Flush; a writer that is already a WriteFlusher is
// returned as is; anything else is wrapped in a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == io.Discard {
		return Discard
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// LineTracker is a WriteFlusher that remembers whether the last byte written
// through it ended a line, so that an interactive prompt can start on a fresh
// line after output like "42" that did not.
type LineTracker struct {
	WriteFlusher
	partial bool
}

// TrackLines wraps wf in a LineTracker.
func TrackLines(wf WriteFlusher) *LineTracker {
	return &LineTracker{WriteFlusher: wf}
}

func (lt *LineTracker) Write(p []byte) (n int, err error) {
	n, err = lt.WriteFlusher.Write(p)
	if n > 0 {
		lt.partial = p[n-1] != '\n'
	}
	return n, err
}

// AtLineStart returns true if nothing, or a complete line, was last written.
func (lt *LineTracker) AtLineStart() bool { return !lt.partial }

// EndLine writes a newline if the last write left a partial line.
func (lt *LineTracker) EndLine() error {
	if !lt.partial {
		return nil
	}
	_, err := lt.Write([]byte{'\n'})
	return err
}
