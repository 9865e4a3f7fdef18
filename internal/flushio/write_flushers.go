package flushio

import "io"

// Tee returns a WriteFlusher that copies everything written to sink into
// transcript as well, as WithTee does for shell output.
// Discarded or missing sides are left out, and teeing onto a tee extends it
// rather than nesting.
func Tee(sink, transcript WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range []WriteFlusher{sink, transcript} {
		switch wf := wf.(type) {
		case nil:
		case tee:
			all = append(all, wf...)
		default:
			if wf != Discard {
				all = append(all, wf)
			}
		}
	}
	switch len(all) {
	case 0:
		return Discard
	case 1:
		return all[0]
	}
	return all
}

type tee []WriteFlusher

// Write stops at the first writer that fails or comes up short, so a broken
// transcript surfaces as an output error.
func (t tee) Write(p []byte) (int, error) {
	for _, wf := range t {
		if n, err := wf.Write(p); err != nil {
			return n, err
		} else if n < len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (t tee) Flush() (err error) {
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
