package main

import (
	"fmt"
	"strings"

	"github.com/jcorbin/forsh/internal/token"
)

const maxTraceLevel = 3

// traceToken reports how a dispatched token changed the stack. Level 1
// reports what was popped and pushed, 2 adds the resulting stack, and 3 adds
// the word's documentation.
func (vm *VM) traceToken(tok token.Token, before []Value) {
	vm.traceStep++

	common := 0
	for common < len(before) && common < len(vm.stack) && before[common] == vm.stack[common] {
		common++
	}
	popped, pushed := before[common:], vm.stack[common:]

	var parts []string
	if len(popped) > 0 {
		items := make([]string, 0, len(popped))
		for i := len(popped) - 1; i >= 0; i-- {
			items = append(items, popped[i].brief())
		}
		parts = append(parts, "pop "+strings.Join(items, ", "))
	}
	if len(pushed) > 0 {
		items := make([]string, 0, len(pushed))
		for _, val := range pushed {
			items = append(items, val.brief())
		}
		parts = append(parts, "push "+strings.Join(items, ", "))
	}
	desc := "(no stack change)"
	if len(parts) > 0 {
		desc = strings.Join(parts, "; ")
	}

	fmt.Fprintf(vm.stderr, "  step %d %-20v -> %v\n", vm.traceStep, tok, desc)
	if vm.traceLevel >= 3 {
		if doc := vm.docOf(tok); doc != "" {
			fmt.Fprintf(vm.stderr, "  %28s %v\n", "", doc)
		}
	}
	if vm.traceLevel >= 2 {
		fmt.Fprintf(vm.stderr, "  %28s stack: %v\n", "", formatStack(vm.stack))
	}
}

func (vm *VM) docOf(tok token.Token) string {
	if tok.Quoted {
		return ""
	}
	switch word := vm.dict[tok.Text].(type) {
	case Builtin:
		return word.Doc
	case Defined:
		return "(user-defined word)"
	case ShellCmd:
		return "(command " + string(word) + ")"
	}
	return ""
}

func (vm *VM) setTraceLevel(level int) {
	vm.traceLevel = min(max(level, 0), maxTraceLevel)
}
