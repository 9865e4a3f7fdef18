package main

import (
	"io"

	"github.com/jcorbin/forsh/internal/flushio"
	"github.com/jcorbin/forsh/internal/shellexec"
)

type VMOption interface{ apply(vm *VM) }

type VMOptions []VMOption

func (opts VMOptions) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

var defaultOptions = VMOptions{
	withOutput(io.Discard),
	withStderr(io.Discard),
	withRunner(shellexec.Exec{}),
	withLookPath(shellexec.LookPath),
	withMaxDepth(defaultMaxDepth),
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stderrOption struct{ io.Writer }
type runnerOption struct{ shellexec.Runner }
type lookPathOption func(name string) (string, bool)
type maxDepthOption int
type traceLevelOption int

func withInput(r io.Reader) inputOption                         { return inputOption{r} }
func withOutput(w io.Writer) outputOption                       { return outputOption{w} }
func withTee(w io.Writer) teeOption                             { return teeOption{w} }
func withStderr(w io.Writer) stderrOption                       { return stderrOption{w} }
func withRunner(r shellexec.Runner) runnerOption                { return runnerOption{r} }
func withLookPath(f func(string) (string, bool)) lookPathOption { return lookPathOption(f) }
func withMaxDepth(depth int) maxDepthOption                     { return maxDepthOption(depth) }
func withTraceLevel(level int) traceLevelOption                 { return traceLevelOption(level) }

func (i inputOption) apply(vm *VM) {
	vm.in.Queue = append(vm.in.Queue, i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.sink != nil {
		vm.sink.Flush()
	}
	vm.sink = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.sink = flushio.Tee(vm.sink, flushio.NewWriteFlusher(o.Writer))
}

func (o stderrOption) apply(vm *VM) {
	vm.stderr = o.Writer
	if vm.stderr == nil {
		vm.stderr = io.Discard
	}
}

func (r runnerOption) apply(vm *VM) {
	vm.runner = r.Runner
}

func (f lookPathOption) apply(vm *VM) {
	vm.lookPath = f
}

func (depth maxDepthOption) apply(vm *VM) {
	if depth > 0 {
		vm.maxDepth = int(depth)
	}
}

func (level traceLevelOption) apply(vm *VM) {
	vm.setTraceLevel(int(level))
}
