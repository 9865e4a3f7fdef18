package main

import "strings"

const helpText = `forsh: a stack shell

Stack:        dup swap drop over rot clear .s
Printing:     . type
Arithmetic:   + - * / mod /mod */
Comparison:   = <> < > <= >=
Boolean:      and or not xor
Strings:      concat >output >string
Control:      if ... then   if ... else ... then
Loops:        begin ... until   begin ... while ... repeat
              start limit do ... loop   start limit do ... step +loop
              output each ... then      i j
Definitions:  : name ... ;
Commands:     exec ? hash
Files:        >file >>file
Environment:  getenv setenv unsetenv env-append env-prepend env
Directories:  cd pushd popd
Help:         words   "word" see   help   dump   trace

Unknown words are run as commands when found on PATH, with the stack as
their arguments and any output values as their input.
`

var helpWords = []builtinDef{
	{"words", "( -- ) List all words", func(vm *VM, name string) error {
		return vm.writeString(strings.Join(vm.wordNames(), " ") + "\n")
	}},

	{"help", "( -- ) Show help", func(vm *VM, name string) error {
		return vm.writeString(helpText)
	}},

	{"see", "( name -- ) Show word definition or documentation", func(vm *VM, name string) error {
		word, err := vm.popString(name)
		if err != nil {
			return err
		}
		return vm.writeString(vm.describe(word) + "\n")
	}},

	{"dump", "( -- ) Dump interpreter state", func(vm *VM, name string) error {
		vmDumper{vm: vm, out: vm.out}.dump()
		return nil
	}},

	{"trace", "( level -- ) Set evaluation trace level 0-3", func(vm *VM, name string) error {
		level, err := vm.popInt(name)
		if err != nil {
			return err
		}
		vm.setTraceLevel(int(level))
		return nil
	}},
}

func (vm *VM) describe(name string) string {
	switch word := vm.dict[name].(type) {
	case Builtin:
		if word.Doc == "" {
			return name + " is a builtin"
		}
		return name + ": " + word.Doc
	case Defined:
		if len(word) == 0 {
			return ": " + name + " ;"
		}
		return ": " + name + " " + strings.Join(word, " ") + " ;"
	case ShellCmd:
		return name + " is a shell command: " + string(word)
	default:
		return name + " is not defined"
	}
}
