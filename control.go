package main

import "github.com/jcorbin/forsh/internal/token"

// keyword handles the construct keywords; handled is false for any other
// word.
func (vm *VM) keyword(word string) (handled bool, err error) {
	switch word {
	case "if":
		return true, vm.doIf()
	case "else":
		vm.logf(">", "else skip to then")
		vm.mode = &skipping{target: skipToThen}
	case "then":
	case ":":
		vm.mode = &definition{}
	case "begin":
		vm.logf(">", "begin collect")
		vm.mode = &loopCollection{kind: beginUntil, whileAt: -1}
	case "do":
		vm.logf(">", "do collect")
		vm.mode = &loopCollection{kind: doLoop, whileAt: -1}
	case "each":
		return true, vm.beginEach()
	case "until", "while", "repeat":
		return true, wordErr(word, errNoBegin)
	case "loop", "+loop":
		return true, wordErr(word, errNoDo)
	default:
		return false, nil
	}
	return true, nil
}

func (vm *VM) doIf() error {
	flag, err := vm.popInt("if")
	if err != nil {
		return err
	}
	if flag == 0 {
		vm.logf(">", "if skip to else")
		vm.mode = &skipping{target: skipToElse}
	}
	return nil
}

// skip discards a token inside a skipped branch, watching for the else or
// then that ends it.
func (vm *VM) skip(sk *skipping, tok token.Token) {
	if tok.Quoted {
		return
	}
	switch tok.Text {
	case "if":
		sk.depth++
	case "then":
		if sk.depth > 0 {
			sk.depth--
		} else {
			vm.logf("<", "then")
			vm.mode = nil
		}
	case "else":
		if sk.depth == 0 && sk.target == skipToElse {
			vm.logf("<", "else")
			vm.mode = nil
		}
	}
}
