package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jcorbin/forsh/internal/fileinput"
	"github.com/jcorbin/forsh/internal/flushio"
	"github.com/jcorbin/forsh/internal/panicerr"
	"github.com/jcorbin/forsh/internal/shellexec"
)

func New(opts ...VMOption) *VM {
	var vm VM
	vm.registerBuiltins()
	defaultOptions.apply(&vm)
	VMOptions(opts).apply(&vm)
	vm.out = flushio.TrackLines(vm.sink)
	return &vm
}

// Eval evaluates one line of input. A construct left open by the line stays
// pending for the next call; an error abandons it.
func (vm *VM) Eval(ctx context.Context, line string) error {
	return vm.recovered(panicerr.Guard("forsh", func() error {
		return vm.eval(ctx, line)
	}))
}

// Run evaluates all queued input line by line, stopping at the first error,
// which is reported with the location of the line that caused it.
func (vm *VM) Run(ctx context.Context) error {
	return vm.recovered(panicerr.Recover("forsh", func() error {
		return vm.run(ctx)
	}))
}

// recovered logs the stack of a recovered panic and drops any construct or
// loop state the panic left behind.
func (vm *VM) recovered(err error) error {
	if stack := panicerr.PanicStack(err); stack != "" {
		vm.logf("!", "%v\n%s", err, stack)
		vm.abandon()
	}
	return err
}

func (vm *VM) run(ctx context.Context) error {
	for {
		line, err := vm.in.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}
		if err := vm.eval(ctx, line); err != nil {
			err = vm.in.WrapError(err)
			vm.in.Abandon()
			return err
		}
	}
	if vm.mode != nil {
		err := fmt.Errorf("unexpected end of input: unclosed %v", vm.mode.modeName())
		vm.abandon()
		return vm.in.WrapError(err)
	}
	return nil
}

func (vm *VM) eval(ctx context.Context, line string) error {
	vm.ctx = ctx
	defer func() { vm.ctx = nil }()
	err := vm.evalLine(line)
	if ferr := vm.flush(); err == nil {
		err = ferr
	}
	if err != nil {
		vm.abandon()
	}
	return err
}

// abandon drops any pending construct and loop state after an error.
func (vm *VM) abandon() {
	if vm.mode != nil {
		vm.logf("!", "abandon %v", vm.mode.modeName())
	}
	vm.mode = nil
	vm.frames = vm.frames[:0]
	vm.depth = 0
}

func WithInput(r io.Reader) VMOption { return withInput(r) }
func WithNamedInput(name string, r io.Reader) VMOption {
	return withInput(fileinput.NamedReader(name, r))
}
func WithOutput(w io.Writer) VMOption                          { return withOutput(w) }
func WithTee(w io.Writer) VMOption                             { return withTee(w) }
func WithStderr(w io.Writer) VMOption                          { return withStderr(w) }
func WithRunner(r shellexec.Runner) VMOption                   { return withRunner(r) }
func WithLookPath(f func(name string) (string, bool)) VMOption { return withLookPath(f) }
func WithMaxDepth(depth int) VMOption                          { return withMaxDepth(depth) }
func WithTraceLevel(level int) VMOption                        { return withTraceLevel(level) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

// Source queues r as further input for Run.
func (vm *VM) Source(r io.Reader) { withInput(r).apply(vm) }
