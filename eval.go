package main

import (
	"fmt"
	"strconv"

	"github.com/jcorbin/forsh/internal/token"
)

// evalLine evaluates one line of input. Constructs left open at the end of
// the line stay pending, so that evaluation resumes with the next line.
func (vm *VM) evalLine(line string) error {
	vm.traceStep = 0
	toks := token.Split(line)
	if vm.mode == nil && len(toks) >= 2 && toks[0].Is(":") {
		vm.logf(":", "define %v", toks[1].Text)
		vm.mode = &definition{name: toks[1].Text, named: true}
		toks = toks[2:]
	}
	return vm.evalTokens(toks)
}

func (vm *VM) evalTokens(toks []token.Token) error {
	for _, tok := range toks {
		if err := vm.evalToken(tok); err != nil {
			return err
		}
	}
	return nil
}

// evalToken routes a token to the pending construct, if any, or else
// dispatches it.
func (vm *VM) evalToken(tok token.Token) error {
	switch m := vm.mode.(type) {
	case *eachCollection:
		return vm.collectEach(m, tok)
	case *loopCollection:
		return vm.collectLoop(m, tok)
	case *definition:
		vm.collectDefinition(m, tok)
		return nil
	case *skipping:
		vm.skip(m, tok)
		return nil
	case nil:
	default:
		panic(fmt.Sprintf("invalid evaluation mode %T", m))
	}

	tracing := vm.traceLevel > 0
	var before []Value
	if tracing {
		before = vm.Stack()
	}
	err := vm.dispatch(tok)
	if tracing {
		vm.traceToken(tok, before)
	}
	return err
}

func (vm *VM) dispatch(tok token.Token) error {
	if !tok.Quoted {
		if handled, err := vm.keyword(tok.Text); handled {
			return err
		}
	}
	return vm.execute(tok)
}

// execute runs a token that opens no construct: integer literals, dictionary
// words, commands found on PATH, and glob patterns; anything else is pushed
// as a literal string.
func (vm *VM) execute(tok token.Token) error {
	if tok.Quoted {
		vm.push(Str(tok.Text))
		return nil
	}
	name := tok.Text
	if n, err := strconv.ParseInt(name, 10, 64); err == nil {
		vm.push(Int(n))
		return nil
	}
	if word, defined := vm.dict[name]; defined {
		return word.Exec(vm, name)
	}
	if path, found := vm.lookPath(name); found {
		vm.push(Str(path))
		return vm.execCommand("exec")
	}
	if hasGlobMeta(name) {
		if matches := expandGlob(name); len(matches) > 0 {
			for _, match := range matches {
				vm.push(Str(match))
			}
			return nil
		}
	}
	vm.push(Str(name))
	return nil
}

// replay evaluates a buffered token sequence on behalf of name, counting
// against the evaluation depth ceiling.
func (vm *VM) replay(name string, body []token.Token) error {
	if err := vm.context().Err(); err != nil {
		return err
	}
	if vm.depth >= vm.maxDepth {
		return wordErr(name, errDepth)
	}
	vm.depth++
	defer func() { vm.depth-- }()
	defer vm.withLogPrefix("\t")()
	return vm.evalTokens(body)
}

// replayBody replays one loop or each iteration; the body must close every
// construct it opens.
func (vm *VM) replayBody(name string, body []token.Token) error {
	if err := vm.replay(name, body); err != nil {
		return err
	}
	if vm.mode != nil {
		open := vm.mode.modeName()
		vm.mode = nil
		return wordErr(name, fmt.Errorf("unclosed %v in body", open))
	}
	return nil
}
