package main

import (
	"sort"

	"github.com/jcorbin/forsh/internal/token"
)

// Word is a dictionary entry, executed under the name it was found by.
type Word interface {
	Exec(vm *VM, name string) error
}

// Builtin is a native operation with its stack effect documentation.
type Builtin struct {
	Fn  func(vm *VM, name string) error
	Doc string
}

func (b Builtin) Exec(vm *VM, name string) error { return b.Fn(vm, name) }

// Defined is a user word: token texts replayed unquoted when it runs.
type Defined []string

func (def Defined) Exec(vm *VM, name string) error {
	body := make([]token.Token, len(def))
	for i, text := range def {
		body[i] = token.Word(text)
	}
	return vm.replay(name, body)
}

// ShellCmd is an external command bound by hash, cached as its full path.
type ShellCmd string

func (cmd ShellCmd) Exec(vm *VM, name string) error {
	vm.push(Str(string(cmd)))
	return vm.execCommand("exec")
}

type builtinDef struct {
	name string
	doc  string
	fn   func(vm *VM, name string) error
}

func (vm *VM) defineBuiltins(defs ...[]builtinDef) {
	if vm.dict == nil {
		vm.dict = make(map[string]Word)
	}
	for _, set := range defs {
		for _, def := range set {
			vm.dict[def.name] = Builtin{Fn: def.fn, Doc: def.doc}
		}
	}
}

// wordNames returns every dictionary name, sorted.
func (vm *VM) wordNames() []string {
	names := make([]string, 0, len(vm.dict))
	for name := range vm.dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (vm *VM) registerBuiltins() {
	vm.defineBuiltins(
		stackWords,
		mathWords,
		ioWords,
		loopWords,
		systemWords,
		envWords,
		helpWords,
	)
}
