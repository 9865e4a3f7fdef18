package main

import (
	"context"

	"github.com/jcorbin/forsh/internal/shellexec"
	"github.com/jcorbin/forsh/internal/token"
)

// VM is the interpreter state threaded through all evaluation.
type VM struct {
	Core

	ctx context.Context

	stack []Value
	dict  map[string]Word

	// mode is the construct currently consuming tokens, nil when tokens are
	// dispatched normally. It is one of *eachCollection, *loopCollection,
	// *definition, or *skipping.
	mode   mode
	frames []loopFrame

	lastExit int
	dirs     []string

	runner   shellexec.Runner
	lookPath func(name string) (string, bool)

	depth    int
	maxDepth int

	traceLevel int
	traceStep  int
}

const defaultMaxDepth = 4096

type mode interface{ modeName() string }

type skipTarget uint8

const (
	skipToElse skipTarget = iota
	skipToThen
)

// skipping discards tokens up to the matching else or then.
type skipping struct {
	target skipTarget
	depth  int
}

// definition collects the body of a word under definition.
type definition struct {
	name  string
	named bool
	body  []string
}

type loopKind uint8

const (
	beginUntil loopKind = iota
	beginWhile
	doLoop
	doPlusLoop
)

func (kind loopKind) String() string {
	switch kind {
	case beginUntil:
		return "begin-until"
	case beginWhile:
		return "begin-while"
	case doLoop:
		return "do-loop"
	case doPlusLoop:
		return "do-+loop"
	default:
		return "loop?"
	}
}

// loopCollection buffers a loop body until its closing keyword.
type loopCollection struct {
	kind  loopKind
	body  []token.Token
	depth int

	// whileAt is the body offset of the first depth-0 while, whiles counts
	// every depth-0 while seen.
	whileAt int
	whiles  int
}

// eachCollection buffers an each body over captured output text.
type eachCollection struct {
	text  string
	body  []token.Token
	depth int
}

func (*skipping) modeName() string   { return "if" }
func (*definition) modeName() string { return ":" }
func (lc *loopCollection) modeName() string {
	if lc.kind == doLoop {
		return "do"
	}
	return "begin"
}
func (*eachCollection) modeName() string { return "each" }

// loopFrame is one active loop execution; counted loops expose current to
// i and j.
type loopFrame struct {
	kind    loopKind
	start   int64
	limit   int64
	current int64
}

func (frame loopFrame) counted() bool {
	return frame.kind == doLoop || frame.kind == doPlusLoop
}

// Pending reports whether a construct is still open, so that more input is
// needed before it executes.
func (vm *VM) Pending() bool { return vm.mode != nil }

// Stack returns a copy of the current stack, bottom first.
func (vm *VM) Stack() []Value { return append([]Value(nil), vm.stack...) }

// LastExitCode returns the exit code recorded by the last external command.
func (vm *VM) LastExitCode() int { return vm.lastExit }

func (vm *VM) context() context.Context {
	if vm.ctx != nil {
		return vm.ctx
	}
	return context.Background()
}
