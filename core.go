package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/forsh/internal/fileinput"
	"github.com/jcorbin/forsh/internal/flushio"
)

// Core holds the VM's input and output plumbing.
type Core struct {
	logging
	in      fileinput.Input
	sink    flushio.WriteFlusher
	out     *flushio.LineTracker
	stderr  io.Writer
	closers []io.Closer
}

func (core *Core) Close() (err error) {
	if ferr := core.flush(); ferr != nil {
		err = ferr
	}
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	if cerr := core.in.Close(); err == nil {
		err = cerr
	}
	return err
}

func (core *Core) flush() error {
	if core.out == nil {
		return nil
	}
	return core.out.Flush()
}

func (core *Core) writeString(s string) error {
	_, err := io.WriteString(core.out, s)
	return err
}

func (core *Core) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(core.out, format, args...)
	return err
}

// endLine terminates any partially written output line, so that whatever is
// written next (a prompt, an error) starts on its own line.
func (core *Core) endLine() error {
	if core.out == nil {
		return nil
	}
	if err := core.out.EndLine(); err != nil {
		return err
	}
	return core.out.Flush()
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
